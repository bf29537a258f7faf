package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/corekit/core/log"
)

var (
	verbose bool
	logger  = log.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "jsonkit",
	Short: "Validate and reformat JSON documents",
	Long: `jsonkit works on JSON documents from files or stdin.

It reads the lenient dialect (comments, single quotes, unquoted keys,
trailing separators) and always writes canonical JSON.

Commands:
  validate - check documents and report syntax errors with position
  fmt      - pretty-print documents
  compact  - strip all insignificant whitespace`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger = log.NewWithConfig(log.Config{
				Level:  log.LevelDebug,
				Output: os.Stderr,
			}).WithName("jsonkit")
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// forEachInput feeds the named files, or stdin when no names are given,
// to fn one by one. Processing continues past per-file errors; the first
// error is returned at the end.
func forEachInput(args []string, fn func(name, content string) error) error {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("cannot read stdin: %w", err)
		}
		return fn("stdin", string(data))
	}

	var firstErr error
	for _, name := range args {
		data, err := os.ReadFile(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		logger.Debug("processing input", log.Field("file", name), log.Field("bytes", len(data)))
		if err := fn(name, string(data)); err != nil {
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
