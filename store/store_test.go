package store

import (
	"context"
	"testing"

	"github.com/jsphweid/makamdex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot() *model.Snapshot {
	return &model.Snapshot{
		Overview: model.SnapshotOverview{ID: "abc", Makam: "hicaz"},
		Files:    model.FileNumToPath{0: "hicaz--sarki--aksak--a--b.txt", 1: "hicaz--pesrev.txt"},
		Metadata: map[model.FileNum]model.WorkMetadata{0: {Makam: "hicaz", Form: "sarki"}},
		Notes:    [][]string{{"A4", "Es"}, {"A4#5"}},
		Durations: [][]model.Duration{
			{{Num: 1, Den: 4}, {Num: 1, Den: 8}},
			{{Num: 3, Den: 16}},
		},
		Frequencies: model.FrequencyTable{"A": 1, "A#5": 1},
	}
}

func TestSaveAndRead(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.SaveSnapshot(ctx, snapshot()))

	freqs, err := s.Frequencies(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.FrequencyTable{"A": 1, "A#5": 1}, freqs)

	events, err := s.FileEvents(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []Event{
		{Index: 0, Note: "A4", Duration: model.Duration{Num: 1, Den: 4}},
		{Index: 1, Note: "Es", Duration: model.Duration{Num: 1, Den: 8}},
	}, events)
}

func TestSaveReplaces(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.SaveSnapshot(ctx, snapshot()))

	smaller := snapshot()
	smaller.Files = model.FileNumToPath{0: "rast.txt"}
	smaller.Notes = [][]string{{"G4"}}
	smaller.Durations = [][]model.Duration{{{Num: 1, Den: 2}}}
	smaller.Frequencies = model.FrequencyTable{"G": 1}
	require.NoError(t, s.SaveSnapshot(ctx, smaller))

	freqs, err := s.Frequencies(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.FrequencyTable{"G": 1}, freqs)

	events, err := s.FileEvents(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, events)
}
