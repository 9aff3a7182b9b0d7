package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/jsphweid/makamdex/config"
	"github.com/jsphweid/makamdex/constants"
	"github.com/jsphweid/makamdex/corpus"
	"github.com/jsphweid/makamdex/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "makamdex",
	Short: "Indexes SymbTr makam transcriptions",
	Long: `makamdex reads SymbTr transcriptions, resolves their komma accidentals
to sharp based pitch classes and builds searchable snapshots of the corpus.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		initLogger(config.Debug())
		return nil
	},
}

func Execute() {
	cobra.CheckErr(rootCmd.ExecuteContext(context.Background()))
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("corpus", "", "directory of SymbTr .txt files (MAKAMDEX_CORPUS_DIR)")
	flags.String("index-dir", "./out", "where snapshots are written (MAKAMDEX_INDEX_DIR)")
	flags.Int("workers", 1, "files read in parallel")
	flags.Bool("debug", false, "debug logging")

	v := config.Viper()
	v.BindPFlag(config.KeyCorpusDir, flags.Lookup("corpus"))
	v.BindPFlag(config.KeyIndexDir, flags.Lookup("index-dir"))
	v.BindPFlag(config.KeyWorkers, flags.Lookup("workers"))
	v.BindPFlag(config.KeyDebug, flags.Lookup("debug"))
}

func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})
	slog.SetDefault(slog.New(h))
}

func newExtractor(opts ...corpus.Option) *corpus.Extractor {
	opts = append([]corpus.Option{
		corpus.WithWorkers(config.Workers()),
		corpus.WithLogger(slog.Default()),
	}, opts...)
	return corpus.NewExtractor(opts...)
}

// inputPaths uses the files given on the command line, or every transcription
// under the corpus directory.
func inputPaths(args []string, maxNum int) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	dir := config.CorpusDir()
	if dir == "" {
		return nil, errors.New("no files given and no corpus directory set")
	}
	return util.GatherAllPaths(dir, constants.TranscriptionExt, maxNum)
}
