package model

// PitchCorpus is the pitch only view of a set of transcriptions. Pitches is
// index aligned with Paths.
type PitchCorpus struct {
	Paths       []string
	Pitches     [][]PitchClass
	Frequencies FrequencyTable
}

// AlignedCorpus pairs every sounding line with its duration.
// len(Notes[i]) == len(Durations[i]) for every file.
type AlignedCorpus struct {
	Paths     []string
	Notes     [][]string
	Durations [][]Duration
}

type FileNum = uint32
type FileNumToPath = map[FileNum]string

type WorkMetadata struct {
	Makam    string `json:"makam"`
	Form     string `json:"form"`
	Usul     string `json:"usul"`
	Name     string `json:"name"`
	Composer string `json:"composer"`
	Year     uint   `json:"year,omitempty"`
}

type Posting struct {
	FileNum FileNum
	Index   uint32
}

// Buckets maps a pitch class to every place it occurs.
type Buckets = map[PitchClass][]Posting
