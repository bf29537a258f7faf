package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/corekit/core/jsonx"
)

var compactCmd = &cobra.Command{
	Use:   "compact [file...]",
	Short: "Strip insignificant whitespace from JSON documents",
	Long: `Parses each document and writes it back without whitespace or
comments, one document per line.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return forEachInput(args, func(name, content string) error {
			value, err := jsonx.Parse(content)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %s\n", name, describeSyntaxError(err))
				return err
			}

			text, err := jsonx.Serialize(value, 0)
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
	rootCmd.AddCommand(compactCmd)
}
