// Package pcs represents sets of pitch classes as 12-bit masks.
//
// Bit i of a Set is on when pitch class i (0 = C) is a member. Bits 12-15 are
// always zero. Every operation in this package is a pure function of its
// inputs and is safe for concurrent use.
package pcs

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/jsphweid/musictheory/constants"
	"github.com/jsphweid/musictheory/util"
)

type PitchClass = uint8

// Interval is a directed distance in semitones, 0-11.
type Interval = uint8

type Set uint16

const (
	Empty     Set = 0x000
	Chromatic Set = 0xFFF
)

var ErrInvalidSet = errors.New("invalid pitch-class set")

// FromList folds every entry, taken mod 12, into a set. Duplicates are
// idempotent and negative entries wrap.
func FromList(pitchClasses []int) Set {
	var s Set
	for _, p := range pitchClasses {
		s |= 1 << util.Mod(p, constants.NumPitchClasses)
	}
	return s
}

func FromPitchClasses(pitchClasses ...PitchClass) Set {
	var s Set
	for _, p := range pitchClasses {
		s |= 1 << (p % constants.NumPitchClasses)
	}
	return s
}

// FromMidi folds MIDI note numbers into their pitch classes.
func FromMidi(notes []uint8) Set {
	var s Set
	for _, n := range notes {
		s |= 1 << (n % constants.NumPitchClasses)
	}
	return s
}

// List returns the members in ascending order.
func (s Set) List() []PitchClass {
	res := make([]PitchClass, 0, s.Cardinality())
	s.Each(func(p PitchClass) {
		res = append(res, p)
	})
	return res
}

// Ints is List with plain ints, handy for JSON and tests.
func (s Set) Ints() []int {
	res := make([]int, 0, s.Cardinality())
	s.Each(func(p PitchClass) {
		res = append(res, int(p))
	})
	return res
}

// Each calls fn for every member in ascending order.
func (s Set) Each(fn func(PitchClass)) {
	m := uint16(s.Valid())
	for m != 0 {
		p := bits.TrailingZeros16(m)
		fn(PitchClass(p))
		m &= m - 1
	}
}

func (s Set) Cardinality() int {
	return bits.OnesCount16(uint16(s.Valid()))
}

func (s Set) Has(p PitchClass) bool {
	return s&(1<<(p%constants.NumPitchClasses)) != 0
}

// Valid clears the bits above pitch class 11.
func (s Set) Valid() Set {
	return s & Chromatic
}

func (s Set) String() string {
	return fmt.Sprintf("0x%03X", uint16(s.Valid()))
}

// Parse accepts a hex mask ("0x091", "091") or a comma separated list of
// pitch classes ("0,4,7"). An empty list ("" or "[]") is the empty set.
func Parse(raw string) (Set, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimSuffix(strings.TrimPrefix(raw, "["), "]")
	if raw == "" {
		return Empty, nil
	}

	if strings.Contains(raw, ",") || (!strings.HasPrefix(strings.ToLower(raw), "0x") && len(raw) <= 2) {
		var list []int
		for _, token := range strings.Split(raw, ",") {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			p, err := strconv.Atoi(token)
			if err != nil || p < 0 || p >= constants.NumPitchClasses {
				return Empty, fmt.Errorf("%w: bad pitch class %q", ErrInvalidSet, token)
			}
			list = append(list, p)
		}
		return FromList(list), nil
	}

	hex := strings.TrimPrefix(strings.ToLower(raw), "0x")
	v, err := strconv.ParseUint(hex, 16, 16)
	if err != nil {
		return Empty, fmt.Errorf("%w: %q", ErrInvalidSet, raw)
	}
	if Set(v) != Set(v).Valid() {
		return Empty, fmt.Errorf("%w: %q has bits above pitch class 11", ErrInvalidSet, raw)
	}
	return Set(v), nil
}
