package chord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/musictheory/constants"
	"github.com/jsphweid/musictheory/pcs"
	"github.com/jsphweid/musictheory/setclass"
)

type Type uint8

const (
	Major Type = iota
	Minor
	Diminished
	Augmented
	numTypes
)

var ErrUnknownType = errors.New("unknown chord type")

var triads = [numTypes]struct {
	name      string
	intervals []int
}{
	Major:      {"Major", []int{0, 4, 7}},
	Minor:      {"Minor", []int{0, 3, 7}},
	Diminished: {"Diminished", []int{0, 3, 6}},
	Augmented:  {"Augmented", []int{0, 4, 8}},
}

var (
	triadMasks [numTypes]pcs.Set
	// keyed by setclass.PrimeForm, which tells major from minor
	triadByPrime = make(map[pcs.Set]Type, numTypes)
)

func init() {
	for t, triad := range triads {
		triadMasks[t] = pcs.FromList(triad.intervals)
		triadByPrime[setclass.PrimeForm(triadMasks[t])] = Type(t)
	}
}

// Chord builds the triad of quality t on root. An unknown type yields the
// empty set.
func Chord(t Type, root pcs.PitchClass) pcs.Set {
	if t >= numTypes {
		return pcs.Empty
	}
	return triadMasks[t].Transpose(int(root))
}

// Quality matches s against the triad qualities regardless of transposition.
func Quality(s pcs.Set) (Type, bool) {
	t, ok := triadByPrime[setclass.PrimeForm(s)]
	return t, ok
}

// Name returns "Major", "Minor", "Diminished" or "Augmented", or "" when s is
// none of them.
func Name(s pcs.Set) string {
	t, ok := Quality(s)
	if !ok {
		return ""
	}
	return triads[t].name
}

// Root finds the root and quality of a triad. The augmented triad divides
// the octave evenly, so its lowest pitch class is reported.
func Root(s pcs.Set) (pcs.PitchClass, Type, bool) {
	t, ok := Quality(s)
	if !ok {
		return 0, 0, false
	}
	for r := 0; r < constants.NumPitchClasses; r++ {
		if triadMasks[t].Transpose(r) == s.Valid() {
			return pcs.PitchClass(r), t, true
		}
	}
	return 0, 0, false
}

// Roots lists every root that builds s, three for an augmented triad.
func Roots(s pcs.Set) []pcs.PitchClass {
	t, ok := Quality(s)
	if !ok {
		return nil
	}
	var res []pcs.PitchClass
	for r := 0; r < constants.NumPitchClasses; r++ {
		if triadMasks[t].Transpose(r) == s.Valid() {
			res = append(res, pcs.PitchClass(r))
		}
	}
	return res
}

func (t Type) String() string {
	if t >= numTypes {
		return fmt.Sprintf("chord(%d)", uint8(t))
	}
	return triads[t].name
}

func (t Type) Intervals() []int {
	if t >= numTypes {
		return nil
	}
	return append([]int(nil), triads[t].intervals...)
}

func Types() []Type {
	return []Type{Major, Minor, Diminished, Augmented}
}

func ParseType(raw string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "major", "maj":
		return Major, nil
	case "minor", "min":
		return Minor, nil
	case "diminished", "dim", "°", "o":
		return Diminished, nil
	case "augmented", "aug", "+":
		return Augmented, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, raw)
}
