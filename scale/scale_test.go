package scale

import (
	"testing"

	"github.com/jsphweid/musictheory/pcs"
	"github.com/jsphweid/musictheory/setclass"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScale(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(pcs.Set(0xAB5), Scale(Diatonic, 0))
	assert.Equal(pcs.Set(0xAB5).Transpose(7), Scale(Diatonic, 7))
	assert.Equal(pcs.FromList([]int{0, 2, 4, 6, 8, 10}), Scale(WholeTone, 0))
	assert.Equal(pcs.FromList([]int{9, 11, 0, 2, 4, 5, 8}), Scale(HarmonicMinor, 9))
}

func TestScaleForteNumbers(t *testing.T) {
	cases := map[Type]string{
		Diatonic:                 "7-35",
		Acoustic:                 "7-34",
		Diminished:               "8-28",
		WholeTone:                "6-35",
		HarmonicMinor:            "7-32",
		HarmonicMajor:            "7-32",
		DoubleAugmentedHexatonic: "6-20",
	}
	for typ, want := range cases {
		assert.Equal(t, want, setclass.ForteNumber(Scale(typ, 0)), typ.String())
	}
}

func TestMode(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(pcs.FromList([]int{0, 2, 3, 5, 7, 9, 10}), Mode(Dorian, 0))
	assert.Equal(Scale(Diatonic, 0), Mode(Ionian, 0))
	assert.Equal(Scale(Acoustic, 0), Mode(LydianDominant, 0))
	assert.Equal(Scale(Diminished, 0), Mode(HalfWhole, 0))
}

func TestDiatonicModesAreRotationsOfIonian(t *testing.T) {
	// D dorian, E phrygian ... B locrian share C major's collection
	roots := map[ModeType]pcs.PitchClass{
		Ionian: 0, Dorian: 2, Phrygian: 4, Lydian: 5, Mixolydian: 7, Aeolian: 9, Locrian: 11,
	}
	for mode, root := range roots {
		assert.Equal(t, pcs.Set(0xAB5), Mode(mode, root), mode.String())
	}
}

func TestMelodicMinorFamilyShareOneCollection(t *testing.T) {
	roots := map[ModeType]pcs.PitchClass{
		MelodicMinor: 0, DorianFlat2: 2, LydianAugmented: 3, LydianDominant: 5,
		MixolydianFlat6: 7, LocrianNatural2: 9, SuperLocrian: 11,
	}
	for mode, root := range roots {
		assert.Equal(t, Mode(MelodicMinor, 0), Mode(mode, root), mode.String())
	}
}

func TestUnknownTypesYieldEmptySet(t *testing.T) {
	assert.Equal(t, pcs.Empty, Scale(Type(42), 0))
	assert.Equal(t, pcs.Empty, Mode(ModeType(42), 0))
	assert.Nil(t, Type(42).Intervals())
}

func TestParse(t *testing.T) {
	typ, err := ParseType("Harmonic Minor")
	require.NoError(t, err)
	assert.Equal(t, HarmonicMinor, typ)

	mode, err := ParseModeType("lydian_dominant")
	require.NoError(t, err)
	assert.Equal(t, LydianDominant, mode)

	_, err = ParseType("bebop")
	assert.ErrorIs(t, err, ErrUnknownType)
	_, err = ParseModeType("bebop")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestModesOf(t *testing.T) {
	found := ModesOf(pcs.Set(0xAB5))
	assert.Contains(t, found, ModeRoot{Mode: Ionian, Root: 0})
	assert.Contains(t, found, ModeRoot{Mode: Aeolian, Root: 9})
	assert.Len(t, found, 7)
}
