package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jsphweid/makamdex/bucket"
	"github.com/jsphweid/makamdex/chunk"
	"github.com/jsphweid/makamdex/config"
	"github.com/jsphweid/makamdex/corpus"
	"github.com/jsphweid/makamdex/db"
	"github.com/jsphweid/makamdex/file"
	"github.com/jsphweid/makamdex/model"
	"github.com/jsphweid/makamdex/store"
	"github.com/jsphweid/makamdex/util"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

type IndexOptions struct {
	MaxNum         int
	Makam          string
	SQLitePath     string
	RemoteMetadata bool
	Progress       bool
}

var indexOpts IndexOptions

func init() {
	flags := indexCmd.Flags()
	flags.StringVarP(&indexOpts.Makam, "makam", "m", "", "only index files of this makam")
	flags.StringVar(&indexOpts.SQLitePath, "sqlite", "", "also export the snapshot to this SQLite database")
	flags.BoolVar(&indexOpts.RemoteMetadata, "remote-metadata", false, "look up work metadata in DynamoDB")
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index [max files]",
	Short: "Creates a snapshot of the corpus",
	Long: `Reads every transcription in the corpus directory, resolves pitches and
durations and writes a snapshot to the index directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := indexOpts
		opts.Progress = true
		if len(args) == 1 {
			maxNum, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			opts.MaxNum = maxNum
		}

		snap, path, err := Index(cmd.Context(), opts)
		if err != nil {
			return err
		}
		fmt.Printf("Indexed %v files with %v notes into %v\n",
			snap.Overview.NumFiles, snap.Overview.NumNotes, path)
		return nil
	},
}

// Index builds a snapshot from the corpus directory and writes it to the
// index directory.
func Index(ctx context.Context, opts IndexOptions) (*model.Snapshot, string, error) {
	paths, err := inputPaths(nil, 0)
	if err != nil {
		return nil, "", err
	}
	paths = corpus.FilterByMakam(paths, opts.Makam)
	if opts.MaxNum > 0 && len(paths) > opts.MaxNum {
		paths = paths[:opts.MaxNum]
	}

	var extractorOpts []corpus.Option
	var progress *mpb.Progress
	var bar *mpb.Bar
	if opts.Progress {
		progress = mpb.New(mpb.WithOutput(os.Stderr), mpb.WithWidth(64))
		bar = progress.AddBar(int64(2*len(paths)),
			mpb.PrependDecorators(
				decor.Name("Indexing: "),
				decor.CountersNoUnit("%d / %d"),
			),
			mpb.AppendDecorators(
				decor.Percentage(),
			),
		)
		extractorOpts = append(extractorOpts, corpus.WithProgress(func(string) {
			bar.Increment()
		}))
	}

	snap, err := buildSnapshot(ctx, newExtractor(extractorOpts...), paths, opts)
	if progress != nil {
		if err != nil {
			bar.Abort(false)
		}
		progress.Wait()
	}
	if err != nil {
		return nil, "", err
	}

	path, err := chunk.Write(config.IndexDir(), snap)
	if err != nil {
		return nil, "", err
	}
	slog.Info("wrote snapshot", "path", path, "files", snap.Overview.NumFiles)

	if opts.SQLitePath != "" {
		if err := exportSQLite(ctx, opts.SQLitePath, snap); err != nil {
			return nil, "", err
		}
	}
	return snap, path, nil
}

func buildSnapshot(ctx context.Context, e *corpus.Extractor, paths []string, opts IndexOptions) (*model.Snapshot, error) {
	pitches, err := e.Extract(ctx, paths, "")
	if err != nil {
		return nil, err
	}
	aligned, err := e.ExtractAligned(ctx, paths, true)
	if err != nil {
		return nil, err
	}

	files := file.CreateFileNumMap(paths)
	metadata := make(map[model.FileNum]model.WorkMetadata, len(files))
	for num, path := range files {
		metadata[num] = file.ParseWorkName(path)
	}
	if opts.RemoteMetadata {
		if err := mergeRemoteMetadata(ctx, files, metadata); err != nil {
			return nil, err
		}
	}

	return &model.Snapshot{
		Overview:    chunk.NewOverview(opts.Makam),
		Files:       files,
		Metadata:    metadata,
		Pitches:     pitches.Pitches,
		Notes:       aligned.Notes,
		Durations:   aligned.Durations,
		Frequencies: pitches.Frequencies,
		Buckets:     bucket.Build(pitches.Pitches),
	}, nil
}

func mergeRemoteMetadata(ctx context.Context, files model.FileNumToPath, metadata map[model.FileNum]model.WorkMetadata) error {
	client, err := db.NewClient(db.Config{
		Endpoint: config.MetadataEndpoint(),
		Region:   config.MetadataRegion(),
	})
	if err != nil {
		return err
	}

	keys := metadataKeys(files, config.CorpusDir())
	remote, err := db.GetWorkMetadatas(ctx, client, config.MetadataTable(), util.GetKeys(keys))
	if err != nil {
		return err
	}
	applyRemoteMetadata(metadata, keys, remote)
	slog.Debug("merged remote metadata", "found", len(remote), "files", len(files))
	return nil
}

// metadataKeys names each file by its slash separated path under corpusDir,
// or by its base name when it lies outside. Later files with a key already
// taken are left out.
func metadataKeys(files model.FileNumToPath, corpusDir string) map[string]model.FileNum {
	res := make(map[string]model.FileNum, len(files))
	for _, num := range util.GetKeys(files) {
		path := files[num]
		key := filepath.Base(path)
		if corpusDir != "" {
			rel, err := filepath.Rel(corpusDir, path)
			if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
				key = filepath.ToSlash(rel)
			}
		}
		if prev, ok := res[key]; ok {
			slog.Warn("duplicate metadata key", "key", key, "kept", files[prev], "skipped", path)
			continue
		}
		res[key] = num
	}
	return res
}

func applyRemoteMetadata(metadata map[model.FileNum]model.WorkMetadata, keys map[string]model.FileNum, remote map[string]model.WorkMetadata) {
	for key, m := range remote {
		if num, ok := keys[key]; ok {
			metadata[num] = m
		}
	}
}

func exportSQLite(ctx context.Context, path string, snap *model.Snapshot) error {
	s, err := store.Open(path)
	if err != nil {
		return err
	}
	defer s.Close()
	if err := s.SaveSnapshot(ctx, snap); err != nil {
		return err
	}
	slog.Info("exported snapshot", "sqlite", path)
	return nil
}
