// Package fret maps between guitar fretboard positions and MIDI notes.
package fret

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/musictheory/constants"
	"github.com/jsphweid/musictheory/pcs"
	"gitlab.com/gomidi/midi/v2"
)

// Tuning holds the open-string MIDI notes from the lowest string up.
type Tuning [constants.NumStrings]uint8

// E2 A2 D3 G3 B3 E4
var StandardTuning = Tuning{40, 45, 50, 55, 59, 64}

// Muted marks a string that is not played in a fingering.
const Muted int8 = -1

var (
	ErrInvalidTuning    = errors.New("invalid tuning")
	ErrInvalidFingering = errors.New("invalid fingering")
)

type Position struct {
	String uint8 `json:"string"`
	Fret   uint8 `json:"fret"`
}

// FretToMIDI returns the note sounded by string at fret. An out-of-range
// string gives 0.
func FretToMIDI(str uint8, fret uint8, tuning Tuning) uint8 {
	if int(str) >= constants.NumStrings {
		return 0
	}
	return tuning[str] + fret
}

// MIDIToFretPositions lists, in string order, every place note can be played
// at or below MaxFret.
func MIDIToFretPositions(note uint8, tuning Tuning) []Position {
	res := make([]Position, 0, constants.NumStrings)
	for str, open := range tuning {
		if note < open || int(note-open) > constants.MaxFret {
			continue
		}
		res = append(res, Position{String: uint8(str), Fret: note - open})
	}
	return res
}

// NoteName renders a MIDI note with its octave, e.g. "C5" for 60.
func NoteName(note uint8) string {
	return midi.Note(note).String()
}

// Notes returns the sounding notes of a fingering, one fret (or Muted) per
// string from the lowest string up.
func Notes(frets []int8, tuning Tuning) ([]uint8, error) {
	if len(frets) != constants.NumStrings {
		return nil, fmt.Errorf("%w: want %d strings, got %d", ErrInvalidFingering, constants.NumStrings, len(frets))
	}
	var res []uint8
	for str, f := range frets {
		switch {
		case f == Muted:
			continue
		case f < 0 || int(f) > constants.MaxFret:
			return nil, fmt.Errorf("%w: fret %d on string %d", ErrInvalidFingering, f, str)
		}
		res = append(res, FretToMIDI(uint8(str), uint8(f), tuning))
	}
	return res, nil
}

// SetOf folds a fingering into the pitch classes it sounds.
func SetOf(frets []int8, tuning Tuning) (pcs.Set, error) {
	notes, err := Notes(frets, tuning)
	if err != nil {
		return pcs.Empty, err
	}
	return pcs.FromMidi(notes), nil
}

// ParseFingering reads "x32010" or "x,3,2,0,1,0". The compact form only
// holds frets below 10.
func ParseFingering(raw string) ([]int8, error) {
	raw = strings.TrimSpace(raw)
	var parts []string
	if strings.Contains(raw, ",") {
		parts = strings.Split(raw, ",")
	} else {
		parts = strings.Split(raw, "")
	}
	if len(parts) != constants.NumStrings {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFingering, raw)
	}

	res := make([]int8, 0, constants.NumStrings)
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "x" || p == "X" || p == "-1" {
			res = append(res, Muted)
			continue
		}
		f, err := strconv.Atoi(p)
		if err != nil || f < 0 || f > constants.MaxFret {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFingering, raw)
		}
		res = append(res, int8(f))
	}
	return res, nil
}

// TuningFrom builds a tuning from exactly six open-string notes.
func TuningFrom(notes []uint8) (Tuning, error) {
	var t Tuning
	if len(notes) != constants.NumStrings {
		return t, fmt.Errorf("%w: want %d strings, got %d", ErrInvalidTuning, constants.NumStrings, len(notes))
	}
	for i, n := range notes {
		if n > 127-constants.MaxFret {
			return t, fmt.Errorf("%w: open note %d too high", ErrInvalidTuning, n)
		}
		t[i] = n
	}
	return t, nil
}

func (t Tuning) String() string {
	names := make([]string, 0, len(t))
	for _, n := range t {
		names = append(names, NoteName(n))
	}
	return strings.Join(names, " ")
}
