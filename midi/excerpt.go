package midi

import (
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Excerpt copies mf keeping the first maxNotes note on/off pairs at or after
// ticksOffset. Other events are kept with their delta clamped to one tick.
func Excerpt(mf *smf.SMF, ticksOffset uint64, maxNotes int) *smf.SMF {
	res := smf.New()
	res.TimeFormat = mf.TimeFormat

	for _, track := range mf.Tracks {
		var newTrack smf.Track
		var absTicks uint64
		var numNoteOnOff int
	TrackEventLoop:
		for _, evt := range track {
			absTicks += uint64(evt.Delta)
			switch {
			case evt.Message.Is(midi.NoteOnMsg),
				evt.Message.Is(midi.NoteOffMsg):
				if absTicks < ticksOffset {
					continue
				}
				delta := evt.Delta
				if numNoteOnOff == 0 {
					delta = 0
				}
				newTrack.Add(delta, evt.Message)
				numNoteOnOff += 1
				if numNoteOnOff >= 2*maxNotes {
					break TrackEventLoop
				}
			default:
				newTrack.Add(min(evt.Delta, 1), evt.Message)
			}
		}
		newTrack.Close(0)
		res.Add(newTrack)
	}

	return res
}
