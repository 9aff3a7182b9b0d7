package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/gorilla/mux"
	"github.com/jsphweid/makamdex/bucket"
	"github.com/jsphweid/makamdex/chunk"
	"github.com/jsphweid/makamdex/config"
	"github.com/jsphweid/makamdex/midi"
	"github.com/jsphweid/makamdex/model"
	"github.com/jsphweid/makamdex/pitch"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var (
	loadedMu sync.RWMutex
	loaded   *model.Snapshot

	reindexDelay = 2 * time.Second
	reindex      = debounce.New(reindexDelay)
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves search over the latest snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := LoadServeFiles(); err != nil {
			return err
		}
		addr := config.ServeAddr()
		slog.Info("serving", "addr", addr)
		return http.ListenAndServe(addr, NewRouter())
	},
}

// LoadServeFiles loads the latest snapshot from the index directory.
func LoadServeFiles() error {
	path, err := chunk.Latest(config.IndexDir())
	if err != nil {
		return err
	}
	snap, err := chunk.Read(path)
	if err != nil {
		return err
	}
	setLoaded(snap)
	slog.Info("loaded snapshot", "path", path, "files", len(snap.Files))
	return nil
}

func setLoaded(snap *model.Snapshot) {
	loadedMu.Lock()
	loaded = snap
	loadedMu.Unlock()
}

func getLoaded() *model.Snapshot {
	loadedMu.RLock()
	defer loadedMu.RUnlock()
	return loaded
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/search", HandleSearch).Methods("POST")
	router.HandleFunc("/resolve", HandleResolve).Methods("POST")
	router.HandleFunc("/frequencies", HandleFrequencies).Methods("GET")
	router.HandleFunc("/files/{id:[0-9]+}/midi", HandleFileMidi).Methods("GET")
	router.HandleFunc("/reindex", HandleReindex).Methods("POST")
	return cors.Default().Handler(router)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("could not encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

var errNoSnapshot = errors.New("no snapshot loaded")

func HandleSearch(w http.ResponseWriter, r *http.Request) {
	var input model.SearchRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	snap := getLoaded()
	if snap == nil {
		writeError(w, http.StatusServiceUnavailable, errNoSnapshot)
		return
	}

	matches, err := bucket.Search(snap.Buckets, snap.Pitches, input.Pitches)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	key := bucket.CreateKey(input.Pitches)
	slog.Debug("search", "query", key, "files", len(matches))

	res := model.SearchResponse{
		Query:      key,
		NumMatches: bucket.NumMatches(matches),
		NumFiles:   len(matches),
		Results:    make([]model.SearchResult, 0, len(matches)),
	}
	for fileNum, offsets := range matches {
		sr := model.SearchResult{
			FileId:  fileNum,
			Path:    snap.Files[fileNum],
			Offsets: offsets,
		}
		if m, ok := snap.Metadata[fileNum]; ok {
			sr.Metadata = &m
		}
		res.Results = append(res.Results, sr)
	}
	sort.Slice(res.Results, func(i, j int) bool {
		return res.Results[i].FileId < res.Results[j].FileId
	})
	writeJSON(w, http.StatusOK, res)
}

func HandleResolve(w http.ResponseWriter, r *http.Request) {
	var input model.ResolveRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res := model.ResolveResponse{PitchClasses: make([]model.PitchClass, 0, len(input.Notes))}
	for _, note := range input.Notes {
		pc, err := pitch.Resolve(note)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		res.PitchClasses = append(res.PitchClasses, pc)
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleFrequencies(w http.ResponseWriter, r *http.Request) {
	snap := getLoaded()
	if snap == nil {
		writeError(w, http.StatusServiceUnavailable, errNoSnapshot)
		return
	}
	writeJSON(w, http.StatusOK, snap.Frequencies)
}

func HandleFileMidi(w http.ResponseWriter, r *http.Request) {
	snap := getLoaded()
	if snap == nil {
		writeError(w, http.StatusServiceUnavailable, errNoSnapshot)
		return
	}
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil || int(id) >= len(snap.Notes) {
		writeError(w, http.StatusNotFound, errors.New("unknown file id"))
		return
	}

	s, err := midi.Render(snap.Notes[id], snap.Durations[id], midi.DefaultRenderOptions())
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	// ?offset=<ticks>&notes=<n> trims the rendering to an excerpt
	query := r.URL.Query()
	if query.Has("offset") || query.Has("notes") {
		offset, err := strconv.ParseUint(query.Get("offset"), 10, 64)
		if err != nil && query.Has("offset") {
			writeError(w, http.StatusBadRequest, errors.New("offset must be a tick count"))
			return
		}
		notes := len(snap.Notes[id])
		if query.Has("notes") {
			notes, err = strconv.Atoi(query.Get("notes"))
			if err != nil || notes < 1 {
				writeError(w, http.StatusBadRequest, errors.New("notes must be a positive integer"))
				return
			}
		}
		s = midi.Excerpt(s, offset, notes)
	}
	w.Header().Set("Content-Type", "audio/midi")
	if _, err := s.WriteTo(w); err != nil {
		slog.Error("could not write midi", "err", err)
	}
}

// HandleReindex schedules a rebuild of the snapshot. Requests arriving
// within reindexDelay of each other cause a single rebuild.
func HandleReindex(w http.ResponseWriter, r *http.Request) {
	makam := ""
	if snap := getLoaded(); snap != nil {
		makam = snap.Overview.Makam
	}
	reindex(func() {
		snap, path, err := Index(context.Background(), IndexOptions{Makam: makam})
		if err != nil {
			slog.Error("reindex failed", "err", err)
			return
		}
		setLoaded(snap)
		slog.Info("reindexed", "path", path)
	})
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "scheduled"})
}
