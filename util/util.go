package util

import (
	"encoding/gob"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// GatherAllPaths walks root for files ending in ext, in lexical order. A
// maxNum of 0 means no limit.
func GatherAllPaths(root string, ext string, maxNum int) ([]string, error) {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(s, ext) {
			return nil
		}
		if maxNum != 0 && len(res) >= maxNum {
			return filepath.SkipAll
		}
		res = append(res, s)
		return nil
	}
	if err := filepath.WalkDir(root, walk); err != nil {
		return nil, errors.Wrapf(err, "could not walk %s", root)
	}
	return res, nil
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// EncodeBinary gob encodes data to w.
func EncodeBinary(w io.Writer, data any) error {
	return errors.Wrap(gob.NewEncoder(w).Encode(data), "could not encode binary")
}

func DecodeBinary[A any](r io.Reader) (A, error) {
	var data A
	if err := gob.NewDecoder(r).Decode(&data); err != nil {
		return data, errors.Wrap(err, "could not decode binary")
	}
	return data, nil
}

func Sum[A constraints.Integer](nums []A) uint64 {
	var total uint64
	for _, v := range nums {
		total += uint64(v)
	}
	return total
}

// TopN returns the keys with the highest counts, ties broken by key.
func TopN[A constraints.Ordered, B constraints.Integer](m map[A]B, n int) []A {
	keys := GetKeys(m)
	slices.SortStableFunc(keys, func(a, b A) bool {
		return m[a] > m[b]
	})
	if n > 0 && len(keys) > n {
		keys = keys[:n]
	}
	return keys
}
