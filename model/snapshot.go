package model

import "time"

// SnapshotOverview is the header of a snapshot file and can be read without
// decoding the rest.
type SnapshotOverview struct {
	ID       string
	Created  time.Time
	Makam    string
	NumFiles int
	NumNotes int
	Filename string
}

type Snapshot struct {
	Overview    SnapshotOverview
	Files       FileNumToPath
	Metadata    map[FileNum]WorkMetadata
	Pitches     [][]PitchClass
	Notes       [][]string
	Durations   [][]Duration
	Frequencies FrequencyTable
	Buckets     Buckets
}
