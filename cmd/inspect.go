package cmd

import (
	"fmt"
	"os"

	"github.com/jsphweid/makamdex/chunk"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <snapshot>",
	Short: "Inspects a snapshot header",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		overview, err := chunk.ReadOverview(f)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "id: %v\n", overview.ID)
		fmt.Fprintf(out, "created: %v\n", overview.Created)
		fmt.Fprintf(out, "makam: %v\n", overview.Makam)
		fmt.Fprintf(out, "files: %v\n", overview.NumFiles)
		fmt.Fprintf(out, "notes: %v\n", overview.NumNotes)
		return nil
	},
}
