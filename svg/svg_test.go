package svg

import (
	"strings"
	"testing"

	"github.com/jsphweid/musictheory/chord"
	"github.com/jsphweid/musictheory/constants"
	"github.com/jsphweid/musictheory/fret"
	"github.com/jsphweid/musictheory/pcs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockOPTC(t *testing.T) {
	assert := assert.New(t)
	out := ClockOPTC(0x091)
	assert.True(strings.HasPrefix(out, "<svg"))
	assert.True(strings.HasSuffix(out, "</svg>"))
	assert.Contains(out, "<title>0x091</title>")
	assert.Contains(out, "<polygon")
	assert.Equal(3, strings.Count(out, `fill="`+stroke+`"`))

	empty := ClockOPTC(pcs.Empty)
	assert.NotContains(empty, "<polygon")
}

func TestFret(t *testing.T) {
	assert := assert.New(t)
	out := Fret([]int8{fret.Muted, 3, 2, 0, 1, 0})
	assert.True(strings.HasPrefix(out, "<svg"))
	assert.Contains(out, "<title>x-3-2-0-1-0</title>")
	assert.NotContains(out, "fr</text>")

	barre := Fret([]int8{fret.Muted, 12, 14, 14, 13, 12})
	assert.Contains(barre, ">12fr</text>")

	short := Fret([]int8{0, 2})
	assert.Contains(short, "<title>0-2-x-x-x-x</title>")
}

func TestChordStaff(t *testing.T) {
	assert := assert.New(t)
	out := ChordStaff(chord.Major, 0)
	assert.True(strings.HasPrefix(out, "<svg"))
	assert.Contains(out, "<title>C E G</title>")
	assert.Equal(3, strings.Count(out, "<ellipse"))
	assert.NotContains(out, "♯")

	aug := ChordStaff(chord.Augmented, 6)
	assert.Contains(aug, "<title>F# A# C##</title>")
	assert.Contains(aug, "♯♯")

	bad := ChordStaff(chord.Type(9), 0)
	assert.True(strings.HasPrefix(bad, "<svg"))
	assert.Zero(strings.Count(bad, "<ellipse"))
}

func TestStaffLedgerLine(t *testing.T) {
	// C4 sits on one ledger line below the staff; A4 needs none
	c := ChordStaff(chord.Major, 0)
	a := ChordStaff(chord.Minor, 9)
	assert.Equal(t, strings.Count(a, "<line")+1, strings.Count(c, "<line"))
}

func TestWriteVariants(t *testing.T) {
	buf := make([]byte, constants.SvgBufferSize)

	n, err := WriteClockOPTC(0x091, buf)
	require.NoError(t, err)
	assert.Equal(t, ClockOPTC(0x091), string(buf[:n]))

	n, err = WriteFret([]int8{fret.Muted, 3, 2, 0, 1, 0}, buf)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(buf[:n]), "<svg"))

	n, err = WriteChordStaff(chord.Major, 0, buf)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(buf[:n]), "<svg"))
}

func TestWriteBufferTooSmall(t *testing.T) {
	small := make([]byte, 16)
	n, err := WriteClockOPTC(0x091, small)
	assert.ErrorIs(t, err, ErrBufferTooSmall)
	assert.Zero(t, n)
	assert.Equal(t, make([]byte, 16), small)

	_, err = WriteFret([]int8{0, 0, 0, 0, 0, 0}, small)
	assert.ErrorIs(t, err, ErrBufferTooSmall)
	_, err = WriteChordStaff(chord.Minor, 0, nil)
	assert.ErrorIs(t, err, ErrBufferTooSmall)
}

func TestFretDoesNotMutateInput(t *testing.T) {
	frets := []int8{fret.Muted, 3, 2, 0, 1, 0}
	Fret(frets)
	assert.Equal(t, []int8{fret.Muted, 3, 2, 0, 1, 0}, frets)
}
