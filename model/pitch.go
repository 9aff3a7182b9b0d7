package model

import (
	"fmt"
	"math/big"
)

// PitchClass is a sharp based note name without octave, like "A", "D#5".
type PitchClass string

type FrequencyTable = map[PitchClass]int

// Sound is one sounding event after resolution. A rest has Silent set and
// nothing else.
type Sound struct {
	Silent     bool
	PitchClass PitchClass
	Octave     byte
}

func Rest() Sound {
	return Sound{Silent: true}
}

// Duration is the fraction of a whole note given on a line, kept as written.
type Duration struct {
	Num int64
	Den int64
}

func (d Duration) Rat() *big.Rat {
	return big.NewRat(d.Num, d.Den)
}

func (d Duration) String() string {
	return fmt.Sprintf("%d/%d", d.Num, d.Den)
}

func SumDurations(ds []Duration) *big.Rat {
	total := new(big.Rat)
	for _, d := range ds {
		total.Add(total, d.Rat())
	}
	return total
}
