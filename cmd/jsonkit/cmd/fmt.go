package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/corekit/core/jsonx"
)

var indentWidth int

var fmtCmd = &cobra.Command{
	Use:   "fmt [file...]",
	Short: "Pretty-print JSON documents",
	Long: `Parses each document and writes it back indented. Reads stdin
when no files are given; output always goes to stdout.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return forEachInput(args, func(name, content string) error {
			value, err := jsonx.Parse(content)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %s\n", name, describeSyntaxError(err))
				return err
			}

			text, err := jsonx.Serialize(value, indentWidth)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
				return err
			}

			fmt.Println(text)
			return nil
		})
	},
}

func init() {
	fmtCmd.Flags().IntVar(&indentWidth, "indent", 2, "spaces per nesting level")
	rootCmd.AddCommand(fmtCmd)
}
