package bucket

import (
	"errors"
	"strings"

	"github.com/jsphweid/makamdex/model"
	"github.com/jsphweid/makamdex/util"
	"golang.org/x/exp/slices"
)

var ErrEmptyQuery = errors.New("empty query")

// CreateKey joins a fragment into a single string, e.g. "A-A#5-G".
func CreateKey(pitches []model.PitchClass) string {
	parts := make([]string, len(pitches))
	for i, p := range pitches {
		parts[i] = string(p)
	}
	return strings.Join(parts, "-")
}

// Build posts every event of every file under its pitch class. Postings are
// ordered by file and then by position.
func Build(pitches [][]model.PitchClass) model.Buckets {
	res := make(model.Buckets)
	for fileNum, seq := range pitches {
		for i, pc := range seq {
			res[pc] = append(res[pc], model.Posting{FileNum: uint32(fileNum), Index: uint32(i)})
		}
	}
	return res
}

// Search finds every occurrence of query. Candidates come from the bucket of
// the rarest pitch in the query and are verified against the sequences.
func Search(buckets model.Buckets, pitches [][]model.PitchClass, query []model.PitchClass) (map[model.FileNum][]uint32, error) {
	if len(query) == 0 {
		return nil, ErrEmptyQuery
	}

	anchor := 0
	for i, pc := range query {
		if len(buckets[pc]) < len(buckets[query[anchor]]) {
			anchor = i
		}
	}

	res := make(map[model.FileNum][]uint32)
	for _, p := range buckets[query[anchor]] {
		if int(p.Index) < anchor || int(p.FileNum) >= len(pitches) {
			continue
		}
		start := int(p.Index) - anchor
		seq := pitches[p.FileNum]
		if start+len(query) > len(seq) {
			continue
		}
		if slices.Equal(seq[start:start+len(query)], query) {
			res[p.FileNum] = append(res[p.FileNum], uint32(start))
		}
	}
	return res, nil
}

// NumMatches counts the offsets of a search result.
func NumMatches(matches map[model.FileNum][]uint32) int {
	counts := make([]int, 0, len(matches))
	for _, offsets := range matches {
		counts = append(counts, len(offsets))
	}
	return int(util.Sum(counts))
}
