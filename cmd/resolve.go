package cmd

import (
	"fmt"

	"github.com/jsphweid/makamdex/pitch"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <note>...",
	Short: "Converts notes to all sharp pitch classes",
	Long: `Converts notes written without octave, like Bb9 or E#5, to their all
sharp pitch class.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, note := range args {
			pc, err := pitch.Resolve(note)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", note, pc)
		}
		return nil
	},
}
