package fret

import (
	"testing"

	"github.com/jsphweid/musictheory/constants"
	"github.com/jsphweid/musictheory/pcs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFretToMIDI(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint8(40), FretToMIDI(0, 0, StandardTuning))
	assert.Equal(uint8(60), FretToMIDI(4, 1, StandardTuning))
	assert.Equal(uint8(88), FretToMIDI(5, 24, StandardTuning))
	assert.Equal(uint8(0), FretToMIDI(6, 0, StandardTuning))
}

func TestMIDIToFretPositions(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]Position{
		{String: 0, Fret: 20},
		{String: 1, Fret: 15},
		{String: 2, Fret: 10},
		{String: 3, Fret: 5},
		{String: 4, Fret: 1},
	}, MIDIToFretPositions(60, StandardTuning))
	assert.Equal([]Position{{String: 0, Fret: 0}}, MIDIToFretPositions(40, StandardTuning))
	assert.Equal([]Position{{String: 5, Fret: 24}}, MIDIToFretPositions(88, StandardTuning))
	assert.Empty(MIDIToFretPositions(39, StandardTuning))
	assert.Empty(MIDIToFretPositions(89, StandardTuning))
}

func TestPositionsRoundTrip(t *testing.T) {
	for note := 0; note < 128; note++ {
		for _, p := range MIDIToFretPositions(uint8(note), StandardTuning) {
			assert.LessOrEqual(t, int(p.Fret), constants.MaxFret)
			assert.Equal(t, uint8(note), FretToMIDI(p.String, p.Fret, StandardTuning))
		}
	}
}

func TestNotesAndSet(t *testing.T) {
	frets, err := ParseFingering("x32010")
	require.NoError(t, err)
	assert.Equal(t, []int8{Muted, 3, 2, 0, 1, 0}, frets)

	notes, err := Notes(frets, StandardTuning)
	require.NoError(t, err)
	assert.Equal(t, []uint8{48, 52, 55, 60, 64}, notes)

	s, err := SetOf(frets, StandardTuning)
	require.NoError(t, err)
	assert.Equal(t, pcs.Set(0x091), s)

	_, err = Notes([]int8{0, 0}, StandardTuning)
	assert.ErrorIs(t, err, ErrInvalidFingering)
	_, err = Notes([]int8{0, 0, 0, 0, 0, 25}, StandardTuning)
	assert.ErrorIs(t, err, ErrInvalidFingering)
}

func TestParseFingering(t *testing.T) {
	frets, err := ParseFingering("x, 12, 14, 14, 13, 12")
	require.NoError(t, err)
	assert.Equal(t, []int8{Muted, 12, 14, 14, 13, 12}, frets)

	for _, raw := range []string{"", "x3201", "x3201a", "0,0,0,0,0,30"} {
		_, err := ParseFingering(raw)
		assert.ErrorIs(t, err, ErrInvalidFingering, raw)
	}
}

func TestTuningFrom(t *testing.T) {
	tuning, err := TuningFrom([]uint8{38, 45, 50, 55, 59, 64})
	require.NoError(t, err)
	assert.Equal(t, uint8(38), tuning[0])

	_, err = TuningFrom([]uint8{40, 45})
	assert.ErrorIs(t, err, ErrInvalidTuning)
	_, err = TuningFrom([]uint8{40, 45, 50, 55, 59, 120})
	assert.ErrorIs(t, err, ErrInvalidTuning)
}

func TestNoteName(t *testing.T) {
	assert.Contains(t, NoteName(60), "C")
	assert.NotEqual(t, NoteName(60), NoteName(72))
}
