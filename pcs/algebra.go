package pcs

import (
	"github.com/jsphweid/musictheory/constants"
	"github.com/jsphweid/musictheory/util"
)

// Transpose adds n semitones to every member. n is taken mod 12, so negative
// values transpose down and 12 is the identity.
func (s Set) Transpose(n int) Set {
	k := util.Mod(n, constants.NumPitchClasses)
	v := s.Valid()
	if k == 0 {
		return v
	}
	return ((v << k) | (v >> (constants.NumPitchClasses - k))) & Chromatic
}

// Invert reflects every member through pitch class 0: p becomes (12-p) mod 12.
func (s Set) Invert() Set {
	var res Set
	s.Each(func(p PitchClass) {
		res |= 1 << util.Mod(constants.NumPitchClasses-int(p), constants.NumPitchClasses)
	})
	return res
}

// InvertAround reflects through pitch class 0 and then transposes by axis,
// which is the inversion I_axis.
func (s Set) InvertAround(axis int) Set {
	return s.Invert().Transpose(axis)
}

func (s Set) Complement() Set {
	return ^s & Chromatic
}

func (s Set) IsSubsetOf(big Set) bool {
	return IsSubset(s, big)
}

func IsSubset(small, big Set) bool {
	return small&big == small
}

func (s Set) Union(other Set) Set {
	return (s | other).Valid()
}

func (s Set) Intersect(other Set) Set {
	return s & other & Chromatic
}

// IntervalClass is the unordered distance between two pitch classes, 0-6.
func IntervalClass(a, b PitchClass) int {
	d := util.Mod(int(a)-int(b), constants.NumPitchClasses)
	return util.Min(d, constants.NumPitchClasses-d)
}

// IntervalVector counts, for interval classes 1 through 6, the pairs of
// members that span them.
func (s Set) IntervalVector() [6]int {
	var res [6]int
	list := s.List()
	for i := 0; i < len(list); i++ {
		for j := i + 1; j < len(list); j++ {
			ic := IntervalClass(list[i], list[j])
			if ic > 0 {
				res[ic-1]++
			}
		}
	}
	return res
}
