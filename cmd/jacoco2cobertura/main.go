package main

import (
	"fmt"
	"github.com/jenkins-x-apps/jacoco2cobertura/internal/changes"
	"github.com/jenkins-x-apps/jacoco2cobertura/internal/cobertura"
	"github.com/jenkins-x-apps/jacoco2cobertura/internal/config"
	"github.com/jenkins-x-apps/jacoco2cobertura/internal/convert"
	"github.com/jenkins-x-apps/jacoco2cobertura/internal/logging"
	"github.com/jenkins-x-apps/jacoco2cobertura/internal/report"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"io"
	"os"
	"strings"
)

const (
	usage = "Usage: " + logging.AppName + " FILENAME [SOURCE_ROOTS]"
)

var (
	logger = logging.AppLogger().WithFields(log.Fields{"component": "main"})
)

// usageError signals a missing FILENAME argument.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func main() {
	err := newRootCommand(config.NewConfiguration, os.Stdout).Execute()
	if err != nil {
		if _, ok := err.(*usageError); ok {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(1)
		}
		logger.Fatal(err)
	}
}

// newRootCommand creates the command. The configuration is only created once the arguments are
// known to be valid, so a missing FILENAME is reported as such even with an invalid environment.
func newRootCommand(newConfiguration func() (config.Configuration, error), out io.Writer) *cobra.Command {
	var changedFiles string
	var level string

	cmd := &cobra.Command{
		Use:   logging.AppName + " FILENAME [SOURCE_ROOTS]",
		Short: "Converts a JaCoCo XML report into a Cobertura XML report of the classes changed in a merge request",
		Long: `Converts a JaCoCo XML report into a Cobertura XML report written to stdout.

FILENAME is a path, a HTTP(S) URL or '-' for stdin. SOURCE_ROOTS is a single, newline separated
list of source roots and defaults to '.'. Only classes whose source files changed between
origin/$CI_MERGE_REQUEST_TARGET_BRANCH_NAME and origin/$CI_MERGE_REQUEST_SOURCE_BRANCH_NAME
are included.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return &usageError{msg: "FILENAME is required"}
			}
			// arguments after SOURCE_ROOTS are ignored
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := newConfiguration()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("changed-files") {
				if err := cfg.Set("ChangedFiles", changedFiles); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("log-level") {
				if err := cfg.Set("Level", level); err != nil {
					return err
				}
			}

			sourceRoots := []string{"."}
			if len(args) > 1 {
				sourceRoots = strings.Split(args[1], "\n")
			}
			return run(cfg, args[0], sourceRoots, out)
		},
	}

	cmd.Flags().StringVar(&changedFiles, "changed-files", "", "comma separated list of changed files, git is not consulted if set")
	cmd.Flags().StringVar(&level, "log-level", "", "log level, overrides LOG_LEVEL")
	return cmd
}

func run(cfg config.Configuration, source string, sourceRoots []string, out io.Writer) error {
	logging.SetLevel(cfg.Level())
	logger.Debugf("starting %s with config: %s", logging.AppName, cfg)

	changedFileStems := changes.ChangedFileStems(cfg)

	jacoco, err := report.RetrieveReport(source, cfg.HTTPRetries())
	if err != nil {
		return err
	}

	coverage, _ := (&convert.Converter{}).Convert(&jacoco, changedFileStems, sourceRoots)

	err = cobertura.Write(out, coverage)
	return errors.Wrap(err, "unable to write report to stdout")
}
