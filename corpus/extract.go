package corpus

import (
	"bufio"
	"context"

	"github.com/jsphweid/makamdex/model"
	"github.com/jsphweid/makamdex/pitch"
	"github.com/jsphweid/makamdex/record"
	"github.com/pkg/errors"
)

// Extract collects the pitch classes of every file belonging to makam (all
// files when makam is empty) and counts them across the set. Rests are left
// out.
func Extract(ctx context.Context, paths []string, makam string) (*model.PitchCorpus, error) {
	return defaultExtractor.Extract(ctx, paths, makam)
}

// ExtractAligned pairs each sounding line with its duration. Rests are kept
// as "Es".
func ExtractAligned(ctx context.Context, paths []string, withOctave bool) (*model.AlignedCorpus, error) {
	return defaultExtractor.ExtractAligned(ctx, paths, withOctave)
}

func (e *Extractor) Extract(ctx context.Context, paths []string, makam string) (*model.PitchCorpus, error) {
	paths = FilterByMakam(paths, makam)
	pitches := make([][]model.PitchClass, len(paths))
	partials := make([]model.FrequencyTable, len(paths))

	err := e.forEach(ctx, paths, func(i int, path string) error {
		seq, err := e.readPitches(path)
		if err != nil {
			return err
		}
		counts := make(model.FrequencyTable)
		for _, pc := range seq {
			counts[pc]++
		}
		pitches[i] = seq
		partials[i] = counts
		e.logger.Debug("extracted pitch classes", "path", path, "events", len(seq))
		return nil
	})
	if err != nil {
		return nil, err
	}

	freqs := make(model.FrequencyTable)
	for _, partial := range partials {
		for pc, n := range partial {
			freqs[pc] += n
		}
	}

	return &model.PitchCorpus{
		Paths:       paths,
		Pitches:     pitches,
		Frequencies: freqs,
	}, nil
}

func (e *Extractor) ExtractAligned(ctx context.Context, paths []string, withOctave bool) (*model.AlignedCorpus, error) {
	notes := make([][]string, len(paths))
	durations := make([][]model.Duration, len(paths))

	err := e.forEach(ctx, paths, func(i int, path string) error {
		sounds, durs, err := e.readSounds(path)
		if err != nil {
			return err
		}
		if len(sounds) != len(durs) {
			return &MismatchError{Path: path, Pitches: len(sounds), Durations: len(durs)}
		}
		labels := make([]string, len(sounds))
		for j, s := range sounds {
			labels[j] = pitch.Label(s, withOctave)
		}
		notes[i] = labels
		durations[i] = durs
		e.logger.Debug("extracted aligned notes", "path", path, "events", len(labels))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &model.AlignedCorpus{
		Paths:     append([]string(nil), paths...),
		Notes:     notes,
		Durations: durations,
	}, nil
}

// scan calls fn for every sounding line of path.
func (e *Extractor) scan(path string, fn func(rec record.Record) error) error {
	f, err := e.open(path)
	if err != nil {
		return errors.Wrapf(err, "could not open transcription %s", path)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		rec, ok, err := record.Parse(scanner.Text())
		if err != nil {
			return &LineError{Path: path, Line: lineNum, Err: err}
		}
		if !ok {
			continue
		}
		if err := fn(rec); err != nil {
			return &LineError{Path: path, Line: lineNum, Err: err}
		}
	}
	return errors.Wrapf(scanner.Err(), "could not read transcription %s", path)
}

func (e *Extractor) readPitches(path string) ([]model.PitchClass, error) {
	res := []model.PitchClass{}
	err := e.scan(path, func(rec record.Record) error {
		evt := rec.Event()
		if evt.Silent {
			return nil
		}
		pc, err := pitch.Resolve(evt.Note)
		if err != nil {
			return err
		}
		res = append(res, pc)
		return nil
	})
	return res, err
}

// readSounds keeps a note even when its duration fields are missing, so the
// caller can detect the misalignment.
func (e *Extractor) readSounds(path string) ([]model.Sound, []model.Duration, error) {
	sounds := []model.Sound{}
	durations := []model.Duration{}
	err := e.scan(path, func(rec record.Record) error {
		evt := rec.Event()
		if evt.Silent {
			sounds = append(sounds, model.Rest())
		} else {
			pc, err := pitch.Resolve(evt.Note)
			if err != nil {
				return err
			}
			sounds = append(sounds, model.Sound{PitchClass: pc, Octave: evt.Octave})
		}

		if !rec.HasDuration() {
			return nil
		}
		d, err := rec.Duration()
		if err != nil {
			return err
		}
		durations = append(durations, d)
		return nil
	})
	return sounds, durations, err
}
