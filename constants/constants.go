package constants

// Kod values of SymbTr lines that carry a note or a rest.
var NoteLineCodes = []string{"1", "4", "7", "9", "10", "11", "12", "23", "24", "28", "44"}

// Silence doubles as the rest token in the transcription and the rest value in output.
const Silence = "Es"

// MakamSeparator follows the makam name in SymbTr filenames.
const MakamSeparator = "--"

const TranscriptionExt = ".txt"

// KommasPerOctave is the size of the pitch cycle.
const KommasPerOctave = 53

// field positions in a tab separated line
const (
	CodeField        = 1
	NoteField        = 3
	NumeratorField   = 6
	DenominatorField = 7
)

const TicksPerQuarter = 480

// DynamoDB BatchGetItem limit
const MetadataBatchSize = 100

const SnapshotExt = ".dat"

func IsNoteLineCode(code string) bool {
	for _, c := range NoteLineCodes {
		if c == code {
			return true
		}
	}
	return false
}
