package pitch

import "github.com/jsphweid/makamdex/constants"

// Letters in ascending cyclic order. The letter after F is G.
var Letters = [7]byte{'G', 'A', 'B', 'C', 'D', 'E', 'F'}

// Kommas[i] is the distance from Letters[i] up to the next letter.
var Kommas = [7]int{9, 9, 4, 9, 9, 4, 9}

// positions of each letter above G, filled from Kommas
var positions [7]int

func init() {
	total := 0
	for i, k := range Kommas {
		positions[i] = total
		total += k
	}
	if total != constants.KommasPerOctave {
		panic("pitch cycle does not close")
	}
}

// IndexOf returns the cycle position of letter, or -1.
func IndexOf(letter byte) int {
	for i, l := range Letters {
		if l == letter {
			return i
		}
	}
	return -1
}

func next(idx int) int {
	return (idx + 1) % len(Letters)
}

func prev(idx int) int {
	return (idx - 1 + len(Letters)) % len(Letters)
}

// LetterPosition is the komma distance of letter above G.
func LetterPosition(letter byte) (int, error) {
	idx := IndexOf(letter)
	if idx < 0 {
		return 0, &LetterError{Letter: letter}
	}
	return positions[idx], nil
}
