package scale

import (
	"errors"
	"fmt"

	"github.com/jsphweid/musictheory/pcs"
)

type ModeType uint8

const (
	Ionian ModeType = iota
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Aeolian
	Locrian
	MelodicMinor
	DorianFlat2
	LydianAugmented
	LydianDominant
	MixolydianFlat6
	LocrianNatural2
	SuperLocrian
	HalfWhole
	WholeHalf
	WholeToneMode
	numModeTypes
)

var ErrUnknownMode = errors.New("unknown mode")

// Each mode owns its pattern; none are rotated from a parent at call time.
var modePatterns = [numModeTypes]pattern{
	Ionian:          {"ionian", []int{0, 2, 4, 5, 7, 9, 11}},
	Dorian:          {"dorian", []int{0, 2, 3, 5, 7, 9, 10}},
	Phrygian:        {"phrygian", []int{0, 1, 3, 5, 7, 8, 10}},
	Lydian:          {"lydian", []int{0, 2, 4, 6, 7, 9, 11}},
	Mixolydian:      {"mixolydian", []int{0, 2, 4, 5, 7, 9, 10}},
	Aeolian:         {"aeolian", []int{0, 2, 3, 5, 7, 8, 10}},
	Locrian:         {"locrian", []int{0, 1, 3, 5, 6, 8, 10}},
	MelodicMinor:    {"melodic-minor", []int{0, 2, 3, 5, 7, 9, 11}},
	DorianFlat2:     {"dorian-b2", []int{0, 1, 3, 5, 7, 9, 10}},
	LydianAugmented: {"lydian-augmented", []int{0, 2, 4, 6, 8, 9, 11}},
	LydianDominant:  {"lydian-dominant", []int{0, 2, 4, 6, 7, 9, 10}},
	MixolydianFlat6: {"mixolydian-b6", []int{0, 2, 4, 5, 7, 8, 10}},
	LocrianNatural2: {"locrian-natural-2", []int{0, 2, 3, 5, 6, 8, 10}},
	SuperLocrian:    {"super-locrian", []int{0, 1, 3, 4, 6, 8, 10}},
	HalfWhole:       {"half-whole", []int{0, 1, 3, 4, 6, 7, 9, 10}},
	WholeHalf:       {"whole-half", []int{0, 2, 3, 5, 6, 8, 9, 11}},
	WholeToneMode:   {"whole-tone", []int{0, 2, 4, 6, 8, 10}},
}

var modeMasks [numModeTypes]pcs.Set

// Mode transposes the pattern of t to root. An unknown mode yields the
// empty set.
func Mode(t ModeType, root pcs.PitchClass) pcs.Set {
	if t >= numModeTypes {
		return pcs.Empty
	}
	return modeMasks[t].Transpose(int(root))
}

func (t ModeType) Intervals() []int {
	if t >= numModeTypes {
		return nil
	}
	return append([]int(nil), modePatterns[t].intervals...)
}

func (t ModeType) String() string {
	if t >= numModeTypes {
		return fmt.Sprintf("mode(%d)", uint8(t))
	}
	return modePatterns[t].name
}

func ModeTypes() []ModeType {
	res := make([]ModeType, 0, numModeTypes)
	for t := ModeType(0); t < numModeTypes; t++ {
		res = append(res, t)
	}
	return res
}

func ParseModeType(raw string) (ModeType, error) {
	name := normalize(raw)
	for t := ModeType(0); t < numModeTypes; t++ {
		if modePatterns[t].name == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, raw)
}

// ModesOf lists the modes whose pattern, at some root, equals s.
func ModesOf(s pcs.Set) []ModeRoot {
	var res []ModeRoot
	for t := ModeType(0); t < numModeTypes; t++ {
		for root := 0; root < 12; root++ {
			if modeMasks[t].Transpose(root) == s.Valid() {
				res = append(res, ModeRoot{Mode: t, Root: pcs.PitchClass(root)})
			}
		}
	}
	return res
}

type ModeRoot struct {
	Mode ModeType
	Root pcs.PitchClass
}
