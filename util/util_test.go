package util

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatherAllPaths(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))
	for _, name := range []string{"b.txt", "a.txt", "sub/c.txt", "notes.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	paths, err := GatherAllPaths(dir, ".txt", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.txt"),
		filepath.Join(dir, "sub/c.txt"),
	}, paths)

	paths, err = GatherAllPaths(dir, ".txt", 2)
	require.NoError(t, err)
	assert.Len(t, paths, 2)
}

func TestBinaryRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	counts := map[string]int{"A": 2, "G#5": 1}
	require.NoError(t, EncodeBinary(&buf, counts))

	res, err := DecodeBinary[map[string]int](&buf)
	require.NoError(t, err)
	assert.Equal(t, counts, res)
}

func TestDecodeBinaryGarbage(t *testing.T) {
	_, err := DecodeBinary[map[string]int](strings.NewReader("not gob"))
	assert.Error(t, err)
}

func TestTopN(t *testing.T) {
	m := map[string]int{"A": 3, "G": 5, "B": 3, "C": 1}
	assert.Equal(t, []string{"G", "A", "B"}, TopN(m, 3))
	assert.Equal(t, []string{"G", "A", "B", "C"}, TopN(m, 0))
	assert.Equal(t, uint64(12), Sum([]int{3, 5, 3, 1}))
}
