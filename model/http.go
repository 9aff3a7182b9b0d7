package model

type SearchResult struct {
	FileId   uint32        `json:"file_id"`
	Path     string        `json:"path"`
	Offsets  []uint32      `json:"offsets"`
	Metadata *WorkMetadata `json:"metadata"`
}

type SearchResponse struct {
	Query      string         `json:"query"`
	NumMatches int            `json:"num_matches"`
	NumFiles   int            `json:"num_files"`
	Results    []SearchResult `json:"results"`
}

type SearchRequestBody struct {
	Pitches []PitchClass `json:"pitches"`
}

type ResolveRequestBody struct {
	Notes []string `json:"notes"`
}

type ResolveResponse struct {
	PitchClasses []PitchClass `json:"pitch_classes"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
