package changes

import (
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type fakeGitConfig struct {
	target       string
	source       string
	repository   string
	changedFiles string
}

func (c *fakeGitConfig) TargetBranch() string { return c.target }
func (c *fakeGitConfig) SourceBranch() string { return c.source }
func (c *fakeGitConfig) Remote() string       { return "origin" }
func (c *fakeGitConfig) Repository() string   { return c.repository }
func (c *fakeGitConfig) Extension() string    { return ".java" }
func (c *fakeGitConfig) ChangedFiles() string { return c.changedFiles }

// createRepository creates a repository with origin/master and origin/feature, where feature modifies
// Foo.java and README.md, adds Bar.java, deletes Baz.java and renames Same.java to Renamed.java.
func createRepository(t *testing.T) string {
	dir := t.TempDir()
	repository, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	worktree, err := repository.Worktree()
	require.NoError(t, err)

	commit := func(message string) plumbing.Hash {
		err := worktree.AddWithOptions(&git.AddOptions{All: true})
		require.NoError(t, err)
		hash, err := worktree.Commit(message, &git.CommitOptions{
			All:    true,
			Author: &object.Signature{Name: "jx", Email: "jx@example.com", When: time.Unix(1600000000, 0)},
		})
		require.NoError(t, err)
		return hash
	}
	write := func(name string, content string) {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, ioutil.WriteFile(p, []byte(content), 0644))
	}

	write("src/main/java/com/example/Foo.java", "class Foo {}")
	write("src/main/java/com/example/Baz.java", "class Baz {}")
	write("src/main/java/com/example/Same.java", "class Same {}")
	write("README.md", "# demo")
	master := commit("initial")

	write("src/main/java/com/example/Foo.java", "class Foo { int i; }")
	write("src/main/java/com/example/Bar.java", "class Bar {}")
	write("README.md", "# demo, changed")
	require.NoError(t, os.Remove(filepath.Join(dir, "src/main/java/com/example/Baz.java")))
	require.NoError(t, os.Rename(filepath.Join(dir, "src/main/java/com/example/Same.java"), filepath.Join(dir, "src/main/java/com/example/Renamed.java")))
	feature := commit("feature")

	require.NoError(t, repository.Storer.SetReference(plumbing.NewHashReference(plumbing.NewRemoteReferenceName("origin", "master"), master)))
	require.NoError(t, repository.Storer.SetReference(plumbing.NewHashReference(plumbing.NewRemoteReferenceName("origin", "feature"), feature)))
	return dir
}

func TestDiffNames(t *testing.T) {
	dir := createRepository(t)

	paths, err := DiffNames(dir, "origin/master", "origin/feature")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"README.md",
		"src/main/java/com/example/Bar.java",
		"src/main/java/com/example/Baz.java",
		"src/main/java/com/example/Foo.java",
		"src/main/java/com/example/Renamed.java",
	}, paths)
}

func TestDiffNamesUnknownRevision(t *testing.T) {
	dir := createRepository(t)

	_, err := DiffNames(dir, "origin/master", "origin/snafu")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "origin/snafu")
}

func TestDiffNamesNoRepository(t *testing.T) {
	_, err := DiffNames(t.TempDir(), "origin/master", "origin/feature")
	assert.Error(t, err)
}

func TestChangedFileStemsFromGit(t *testing.T) {
	dir := createRepository(t)

	stems := ChangedFileStems(&fakeGitConfig{target: "master", source: "feature", repository: dir})
	assert.ElementsMatch(t, []string{"Bar", "Baz", "Foo", "Renamed"}, stems)
}

func TestChangedFileStemsWithoutBranches(t *testing.T) {
	dir := createRepository(t)

	stems := ChangedFileStems(&fakeGitConfig{target: "master", repository: dir})
	assert.Empty(t, stems)
}

func TestChangedFileStemsGitFailure(t *testing.T) {
	stems := ChangedFileStems(&fakeGitConfig{target: "master", source: "feature", repository: t.TempDir()})
	assert.NotNil(t, stems)
	assert.Empty(t, stems)
}

func TestChangedFileStemsExplicit(t *testing.T) {
	stems := ChangedFileStems(&fakeGitConfig{changedFiles: "src/Foo.java, Bar ,,Baz.kt"})
	assert.Equal(t, []string{"Foo", "Bar", "Baz"}, stems)
}

func TestStems(t *testing.T) {
	var testCases = []struct {
		paths     []string
		extension string
		expected  []string
	}{
		{[]string{"a/b/Foo.java", "README.md", "Bar.java"}, ".java", []string{"Foo", "Bar"}},
		{[]string{"a/b/Foo.test.java"}, ".java", []string{"Foo"}},
		{[]string{"a/b/Foo.java", "README.md"}, "", []string{"Foo", "README"}},
		{[]string{".java"}, ".java", []string{}},
		{nil, ".java", []string{}},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.expected, Stems(testCase.paths, testCase.extension))
	}
}
