package cmd

import (
	"path/filepath"
	"testing"

	"github.com/jsphweid/makamdex/model"
	"github.com/stretchr/testify/assert"
)

func TestMetadataKeys(t *testing.T) {
	corpusDir := filepath.Join("data", "symbtr")
	files := model.FileNumToPath{
		0: filepath.Join(corpusDir, "hicaz--sarki--aksak--a--b.txt"),
		1: filepath.Join(corpusDir, "extra", "hicaz--sarki--aksak--a--b.txt"),
		2: filepath.Join("elsewhere", "rast--pesrev.txt"),
		3: filepath.Join("other", "rast--pesrev.txt"),
	}

	keys := metadataKeys(files, corpusDir)
	assert.Equal(t, map[string]model.FileNum{
		"hicaz--sarki--aksak--a--b.txt":       0,
		"extra/hicaz--sarki--aksak--a--b.txt": 1,
		"rast--pesrev.txt":                    2,
	}, keys)
}

func TestApplyRemoteMetadataIgnoresUnknownKeys(t *testing.T) {
	metadata := map[model.FileNum]model.WorkMetadata{
		0: {Makam: "hicaz"},
	}
	keys := map[string]model.FileNum{"a.txt": 1}
	remote := map[string]model.WorkMetadata{
		"a.txt":       {Makam: "rast", Year: 1910},
		"missing.txt": {Makam: "saba"},
	}

	applyRemoteMetadata(metadata, keys, remote)
	assert.Equal(t, map[model.FileNum]model.WorkMetadata{
		0: {Makam: "hicaz"},
		1: {Makam: "rast", Year: 1910},
	}, metadata)
}
