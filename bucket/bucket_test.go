package bucket

import (
	"testing"

	"github.com/jsphweid/makamdex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var corpus = [][]model.PitchClass{
	{"A", "A#5", "G", "A", "A#5", "G"},
	{"G", "A"},
	{},
	{"D#5", "A", "A#5", "G", "F#4"},
}

func TestBuild(t *testing.T) {
	b := Build(corpus)

	assert := assert.New(t)
	assert.Equal([]model.Posting{{FileNum: 1, Index: 1}}, b["A"][2:3])
	assert.Len(b["A"], 4)
	assert.Equal([]model.Posting{{FileNum: 3, Index: 0}}, b["D#5"])
	assert.NotContains(b, model.PitchClass("C"))
}

func TestSearchFragment(t *testing.T) {
	b := Build(corpus)

	res, err := Search(b, corpus, []model.PitchClass{"A", "A#5", "G"})
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(map[model.FileNum][]uint32{0: {0, 3}, 3: {1}}, res)
	assert.Equal(3, NumMatches(res))
}

func TestSearchSingleAndMissing(t *testing.T) {
	b := Build(corpus)

	res, err := Search(b, corpus, []model.PitchClass{"F#4"})
	require.NoError(t, err)
	assert.Equal(t, map[model.FileNum][]uint32{3: {4}}, res)

	res, err = Search(b, corpus, []model.PitchClass{"A", "C"})
	require.NoError(t, err)
	assert.Empty(t, res)

	res, err = Search(b, corpus, []model.PitchClass{"G", "A", "A#5", "G", "A", "A#5", "G"})
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestSearchEmptyQuery(t *testing.T) {
	_, err := Search(Build(corpus), corpus, nil)
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestCreateKey(t *testing.T) {
	assert.Equal(t, "A-A#5-G", CreateKey([]model.PitchClass{"A", "A#5", "G"}))
}
