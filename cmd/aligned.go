package cmd

import (
	"fmt"

	"github.com/jsphweid/makamdex/model"
	"github.com/spf13/cobra"
)

var alignedOctave bool

func init() {
	alignedCmd.Flags().BoolVarP(&alignedOctave, "octave", "o", false, "keep the octave digit")
	rootCmd.AddCommand(alignedCmd)
}

var alignedCmd = &cobra.Command{
	Use:   "aligned [file]...",
	Short: "Prints notes with their durations",
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := inputPaths(args, 0)
		if err != nil {
			return err
		}
		res, err := newExtractor().ExtractAligned(cmd.Context(), paths, alignedOctave)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, path := range res.Paths {
			fmt.Fprintf(out, "%s (%v whole notes)\n", path, model.SumDurations(res.Durations[i]).RatString())
			for j, note := range res.Notes[i] {
				fmt.Fprintf(out, "  %-8s %s\n", note, res.Durations[i][j])
			}
		}
		return nil
	},
}
