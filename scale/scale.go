// Package scale realises the fixed scale and mode interval patterns as
// pitch-class sets.
package scale

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/musictheory/pcs"
)

type Type uint8

const (
	Diatonic Type = iota
	Acoustic
	Diminished
	WholeTone
	HarmonicMinor
	HarmonicMajor
	DoubleAugmentedHexatonic
	numTypes
)

var ErrUnknownType = errors.New("unknown scale type")

type pattern struct {
	name      string
	intervals []int
}

var scalePatterns = [numTypes]pattern{
	Diatonic:                 {"diatonic", []int{0, 2, 4, 5, 7, 9, 11}},
	Acoustic:                 {"acoustic", []int{0, 2, 4, 6, 7, 9, 10}},
	Diminished:               {"diminished", []int{0, 1, 3, 4, 6, 7, 9, 10}},
	WholeTone:                {"whole-tone", []int{0, 2, 4, 6, 8, 10}},
	HarmonicMinor:            {"harmonic-minor", []int{0, 2, 3, 5, 7, 8, 11}},
	HarmonicMajor:            {"harmonic-major", []int{0, 2, 4, 5, 7, 8, 11}},
	DoubleAugmentedHexatonic: {"double-augmented-hexatonic", []int{0, 3, 4, 7, 8, 11}},
}

var scaleMasks [numTypes]pcs.Set

func init() {
	for i, p := range scalePatterns {
		scaleMasks[i] = pcs.FromList(p.intervals)
	}
	for i, p := range modePatterns {
		modeMasks[i] = pcs.FromList(p.intervals)
	}
}

// Scale transposes the pattern of t to tonic. An unknown type yields the
// empty set.
func Scale(t Type, tonic pcs.PitchClass) pcs.Set {
	if t >= numTypes {
		return pcs.Empty
	}
	return scaleMasks[t].Transpose(int(tonic))
}

// Intervals returns a copy of the pattern of t.
func (t Type) Intervals() []int {
	if t >= numTypes {
		return nil
	}
	return append([]int(nil), scalePatterns[t].intervals...)
}

func (t Type) String() string {
	if t >= numTypes {
		return fmt.Sprintf("scale(%d)", uint8(t))
	}
	return scalePatterns[t].name
}

func Types() []Type {
	res := make([]Type, 0, numTypes)
	for t := Type(0); t < numTypes; t++ {
		res = append(res, t)
	}
	return res
}

// ParseType accepts the names printed by String, case-insensitively, with
// spaces or underscores in place of dashes.
func ParseType(raw string) (Type, error) {
	name := normalize(raw)
	for t := Type(0); t < numTypes; t++ {
		if scalePatterns[t].name == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, raw)
}

func normalize(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	name = strings.ReplaceAll(name, "_", "-")
	return strings.ReplaceAll(name, " ", "-")
}
