package cmd

import (
	"fmt"

	"github.com/jsphweid/makamdex/midi"
	"github.com/spf13/cobra"
)

var renderBPM float64

func init() {
	renderCmd.Flags().Float64Var(&renderBPM, "bpm", midi.DefaultRenderOptions().BPM, "tempo in quarter notes per minute")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <transcription> <out.mid>",
	Short: "Renders a transcription to MIDI",
	Long: `Renders a transcription to a standard MIDI file. Komma offsets are played
as pitch bends.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := newExtractor().ExtractAligned(cmd.Context(), args[:1], true)
		if err != nil {
			return err
		}

		opts := midi.DefaultRenderOptions()
		opts.BPM = renderBPM
		s, err := midi.Render(res.Notes[0], res.Durations[0], opts)
		if err != nil {
			return err
		}
		if err := s.WriteFile(args[1]); err != nil {
			return err
		}

		written, err := midi.ReadMidiFile(args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %v notes to %v\n", midi.NumNotes(written), args[1])
		return nil
	},
}
