// Package key names pitch classes and triads relative to a key: note
// spelling, chord symbols and Roman numerals.
package key

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/musictheory/constants"
	"github.com/jsphweid/musictheory/pcs"
	"github.com/jsphweid/musictheory/scale"
	"github.com/jsphweid/musictheory/util"
)

type Quality uint8

const (
	Major Quality = iota
	Minor
)

var (
	ErrInvalidKey  = errors.New("invalid key")
	ErrInvalidNote = errors.New("invalid note name")
)

// Context is the key a naming call is made in. It is a plain value; callers
// build one per call.
type Context struct {
	Tonic   pcs.PitchClass
	Quality Quality
}

func (q Quality) String() string {
	if q == Minor {
		return "minor"
	}
	return "major"
}

// Mode returns the diatonic mode of the key: Ionian for major keys,
// Aeolian (natural minor) for minor keys.
func (c Context) Mode() scale.ModeType {
	if c.Quality == Minor {
		return scale.Aeolian
	}
	return scale.Ionian
}

func (c Context) Diatonic() pcs.Set {
	return scale.Mode(c.Mode(), c.Tonic)
}

// Degree returns the 0-based scale degree of pc, or false when pc is
// chromatic in the key.
func (c Context) Degree(pc pcs.PitchClass) (int, bool) {
	d := util.Mod(int(pc)-int(c.Tonic), constants.NumPitchClasses)
	for i, step := range c.Mode().Intervals() {
		if step == d {
			return i, true
		}
	}
	return 0, false
}

// RelativeMajor is the tonic of the major key sharing this key's signature.
func (c Context) RelativeMajor() pcs.PitchClass {
	if c.Quality == Minor {
		return (c.Tonic + 3) % constants.NumPitchClasses
	}
	return c.Tonic % constants.NumPitchClasses
}

// Fifths returns the key signature as a count of sharps (positive) or flats
// (negative), between -5 (Db major) and 6 (F# major).
func (c Context) Fifths() int {
	f := util.Mod(int(c.RelativeMajor())*7, constants.NumPitchClasses)
	if f > 6 {
		f -= constants.NumPitchClasses
	}
	return f
}

func (c Context) PrefersFlats() bool {
	return c.Fifths() < 0
}

func (c Context) String() string {
	return fmt.Sprintf("%s %s", SpellNote(c.Tonic, c), c.Quality)
}

// ParseContext reads keys written as "C major", "a minor", "F#m", "Bb" or
// "eb min". A bare note name is a major key.
func ParseContext(raw string) (Context, error) {
	fields := strings.Fields(strings.TrimSpace(raw))
	if len(fields) == 0 || len(fields) > 2 {
		return Context{}, fmt.Errorf("%w: %q", ErrInvalidKey, raw)
	}

	note := fields[0]
	quality := Major
	if len(fields) == 2 {
		switch strings.ToLower(fields[1]) {
		case "major", "maj":
		case "minor", "min":
			quality = Minor
		default:
			return Context{}, fmt.Errorf("%w: unknown quality %q", ErrInvalidKey, fields[1])
		}
	} else if len(note) > 1 && strings.HasSuffix(note, "m") {
		note = strings.TrimSuffix(note, "m")
		quality = Minor
	}

	tonic, err := ParseNote(note)
	if err != nil {
		return Context{}, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return Context{Tonic: tonic, Quality: quality}, nil
}

// ParseNote reads a letter followed by any number of '#' or 'b'.
func ParseNote(raw string) (pcs.PitchClass, error) {
	if raw == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidNote)
	}
	letter := strings.IndexByte(letters, strings.ToUpper(raw[:1])[0])
	if letter < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNote, raw)
	}
	pc := naturals[letter]
	for _, r := range raw[1:] {
		switch r {
		case '#', '♯':
			pc++
		case 'b', '♭':
			pc--
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidNote, raw)
		}
	}
	return pcs.PitchClass(util.Mod(pc, constants.NumPitchClasses)), nil
}
