package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/makamdex/util"
	"github.com/spf13/cobra"
)

var extractMakam string

func init() {
	extractCmd.Flags().StringVarP(&extractMakam, "makam", "m", "", "only files of this makam")
	rootCmd.AddCommand(extractCmd)
}

var extractCmd = &cobra.Command{
	Use:   "extract [file]...",
	Short: "Prints pitch classes per file and their counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := inputPaths(args, 0)
		if err != nil {
			return err
		}
		res, err := newExtractor().Extract(cmd.Context(), paths, extractMakam)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, path := range res.Paths {
			names := make([]string, len(res.Pitches[i]))
			for j, pc := range res.Pitches[i] {
				names[j] = string(pc)
			}
			fmt.Fprintf(out, "%s: %s\n", path, strings.Join(names, " "))
		}
		fmt.Fprintln(out)
		for _, pc := range util.TopN(res.Frequencies, 0) {
			fmt.Fprintf(out, "%-6s %d\n", pc, res.Frequencies[pc])
		}
		return nil
	},
}
