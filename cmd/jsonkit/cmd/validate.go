package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/corekit/core/errorx"
	"github.com/msto63/corekit/core/jsonx"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file...]",
	Short: "Check JSON documents for syntax errors",
	Long: `Parses each document and reports OK or the first syntax error
with its line and column. Reads stdin when no files are given.

Exits non-zero when any document fails.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return forEachInput(args, func(name, content string) error {
			if _, err := jsonx.Parse(content); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %s\n", name, describeSyntaxError(err))
				return err
			}
			fmt.Printf("%s: OK\n", name)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// describeSyntaxError renders a parse error with position when available
func describeSyntaxError(err error) string {
	var e *errorx.Error
	if !errors.As(err, &e) {
		return err.Error()
	}

	line, hasLine := e.Detail("line")
	column, hasColumn := e.Detail("column")
	if hasLine && hasColumn {
		return fmt.Sprintf("%s (line %v, column %v)", e.Message(), line, column)
	}
	return e.Message()
}
