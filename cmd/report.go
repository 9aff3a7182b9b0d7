package cmd

import (
	"fmt"
	"io"
	"math/big"

	"github.com/jsphweid/makamdex/chunk"
	"github.com/jsphweid/makamdex/config"
	"github.com/jsphweid/makamdex/constants"
	"github.com/jsphweid/makamdex/model"
	"github.com/jsphweid/makamdex/util"
	"github.com/spf13/cobra"
)

var reportTop int

func init() {
	reportCmd.Flags().IntVarP(&reportTop, "top", "n", 10, "pitch classes to list")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report [snapshot]",
	Short: "Creates a report of a snapshot",
	Long:  `Creates a report of the given snapshot, or the latest one in the index directory.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) == 1 {
			path = args[0]
		} else {
			latest, err := chunk.Latest(config.IndexDir())
			if err != nil {
				return err
			}
			path = latest
		}

		snap, err := chunk.Read(path)
		if err != nil {
			return err
		}
		report(cmd.OutOrStdout(), snap, reportTop)
		return nil
	},
}

type snapshotReport struct {
	numFiles    int
	numNotes    int
	numRests    int
	numPitched  int
	numDistinct int
	total       *big.Rat
	makams      map[string]int
}

func analyzeSnapshot(snap *model.Snapshot) snapshotReport {
	r := snapshotReport{
		numFiles:    len(snap.Files),
		numDistinct: len(snap.Frequencies),
		total:       new(big.Rat),
		makams:      make(map[string]int),
	}
	for i, notes := range snap.Notes {
		r.numNotes += len(notes)
		for _, n := range notes {
			if n == constants.Silence {
				r.numRests++
			}
		}
		r.total.Add(r.total, model.SumDurations(snap.Durations[i]))
	}
	for _, seq := range snap.Pitches {
		r.numPitched += len(seq)
	}
	for _, m := range snap.Metadata {
		r.makams[m.Makam]++
	}
	return r
}

func report(out io.Writer, snap *model.Snapshot, top int) {
	r := analyzeSnapshot(snap)
	fmt.Fprintf(out, "snapshot: %v\n", snap.Overview.ID)
	fmt.Fprintf(out, "numFiles: %v\n", r.numFiles)
	fmt.Fprintf(out, "numNotes: %v (rests: %v, pitched: %v)\n", r.numNotes, r.numRests, r.numPitched)
	fmt.Fprintf(out, "total length in whole notes: %v\n", r.total.FloatString(2))
	fmt.Fprintf(out, "distinct pitch classes: %v\n", r.numDistinct)

	fmt.Fprintln(out, "top pitch classes:")
	for _, pc := range util.TopN(snap.Frequencies, top) {
		fmt.Fprintf(out, "  %-6s %v\n", pc, snap.Frequencies[pc])
	}
	fmt.Fprintln(out, "makams:")
	for _, m := range util.TopN(r.makams, 0) {
		fmt.Fprintf(out, "  %-12s %v\n", m, r.makams[m])
	}
}
