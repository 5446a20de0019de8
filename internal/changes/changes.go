package changes

import (
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/jenkins-x-apps/jacoco2cobertura/internal/config"
	"github.com/jenkins-x-apps/jacoco2cobertura/internal/logging"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"path"
	"strings"
)

var (
	logger = logging.AppLogger().WithFields(log.Fields{"component": "changes"})
)

// ChangedFileStems returns the stems of the files changed between the configured merge request branches.
// An explicitly configured list of changed files takes precedence over git. Failures to compute the diff
// are logged and result in an empty list.
func ChangedFileStems(gitConfig config.GitConfig) []string {
	if explicit := gitConfig.ChangedFiles(); explicit != "" {
		return Stems(splitList(explicit), "")
	}

	if gitConfig.TargetBranch() == "" || gitConfig.SourceBranch() == "" {
		logger.Warn("merge request branches are not set, no class will be included")
		return []string{}
	}

	target := gitConfig.Remote() + "/" + gitConfig.TargetBranch()
	source := gitConfig.Remote() + "/" + gitConfig.SourceBranch()
	paths, err := DiffNames(gitConfig.Repository(), target, source)
	if err != nil {
		logger.Warnf("unable to determine changed files between %s and %s: %s", target, source, err)
		return []string{}
	}

	stems := Stems(paths, gitConfig.Extension())
	logger.Debugf("changed file stems between %s and %s: %v", target, source, stems)
	return stems
}

// DiffNames returns the paths of all files which differ between the trees of the from and to revisions,
// in the order git reports them. Deleted files are reported with their old path, renamed files with their new one.
func DiffNames(repositoryPath string, from string, to string) ([]string, error) {
	repository, err := git.PlainOpenWithOptions(repositoryPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open git repository %s", repositoryPath)
	}

	fromTree, err := resolveTree(repository, from)
	if err != nil {
		return nil, err
	}
	toTree, err := resolveTree(repository, to)
	if err != nil {
		return nil, err
	}

	changes, err := fromTree.Diff(toTree)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to diff %s..%s", from, to)
	}

	return changedPaths(changes), nil
}

// changedPaths lists the path of every change. A file deleted and added elsewhere with identical
// content is a rename and only reported with its new path, like git's default rename detection.
func changedPaths(changes object.Changes) []string {
	inserted := map[plumbing.Hash]bool{}
	for _, change := range changes {
		if change.From.Name == "" {
			inserted[change.To.TreeEntry.Hash] = true
		}
	}

	var paths []string
	for _, change := range changes {
		if change.To.Name == "" {
			if inserted[change.From.TreeEntry.Hash] {
				continue
			}
			paths = append(paths, change.From.Name)
			continue
		}
		paths = append(paths, change.To.Name)
	}
	return paths
}

func resolveTree(repository *git.Repository, revision string) (*object.Tree, error) {
	hash, err := repository.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return nil, errors.Wrapf(err, "unable to resolve revision %s", revision)
	}
	commit, err := repository.CommitObject(*hash)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load commit %s", hash)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load tree of commit %s", hash)
	}
	return tree, nil
}

// Stems reduces paths to their file stems: the base name up to its first '.'. If extension is not empty,
// only paths ending with it are kept.
func Stems(paths []string, extension string) []string {
	stems := []string{}
	for _, p := range paths {
		if extension != "" && !strings.HasSuffix(p, extension) {
			continue
		}
		base := path.Base(p)
		if i := strings.Index(base, "."); i >= 0 {
			base = base[:i]
		}
		if base == "" {
			continue
		}
		stems = append(stems, base)
	}
	return stems
}

func splitList(list string) []string {
	var items []string
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
