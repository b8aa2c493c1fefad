// Package analysis assembles the core packages' answers into the wire types
// served by the CLI, the HTTP API and the MIDI listener.
package analysis

import (
	"github.com/jsphweid/musictheory/chord"
	"github.com/jsphweid/musictheory/fret"
	"github.com/jsphweid/musictheory/key"
	"github.com/jsphweid/musictheory/model"
	"github.com/jsphweid/musictheory/pcs"
	"github.com/jsphweid/musictheory/setclass"
)

// Analyze describes notes. ctx may be nil, in which case the key-dependent
// fields are left empty.
func Analyze(notes model.Notes, ctx *key.Context) model.Analysis {
	s := pcs.FromMidi(notes)
	res := OfSet(s, ctx)
	for _, n := range notes {
		res.Notes = append(res.Notes, int(n))
		res.NoteNames = append(res.NoteNames, fret.NoteName(n))
	}
	return res
}

// OfSet is Analyze for a bare pitch-class set.
func OfSet(s pcs.Set, ctx *key.Context) model.Analysis {
	class := setclass.Classify(s)
	res := model.Analysis{
		Set:            class.Set.String(),
		PitchClasses:   class.Set.Ints(),
		PrimeForm:      class.PrimeForm.String(),
		FortePrime:     class.FortePrime.String(),
		ForteNumber:    class.ForteNumber,
		IntervalVector: class.IntervalVector,
		ClusterFree:    class.ClusterFree,
		Evenness:       class.Evenness,
		Chord:          chord.Name(s),
	}
	if ctx == nil {
		return res
	}
	res.Key = ctx.String()
	res.Spelled = key.SpellSet(s, *ctx)
	res.Symbol = key.ChordSymbol(s, *ctx)
	res.Roman = key.RomanNumeral(s, *ctx)
	return res
}

func Class(s pcs.Set) model.SetClass {
	c := setclass.Classify(s)
	return model.SetClass{
		Set:            c.Set.String(),
		PitchClasses:   c.Set.Ints(),
		Cardinality:    c.Cardinality,
		PrimeForm:      c.PrimeForm.String(),
		TnIPrimeForm:   c.TnIPrimeForm.String(),
		FortePrime:     c.FortePrime.String(),
		ForteNumber:    c.ForteNumber,
		IntervalVector: c.IntervalVector,
		ClusterFree:    c.ClusterFree,
		Symmetric:      c.Symmetric,
		Evenness:       c.Evenness,
	}
}

// Collection describes a named scale, mode or chord built on tonic, spelled
// in the major key of tonic.
func Collection(name string, s pcs.Set, tonic pcs.PitchClass) model.CollectionResponse {
	ctx := key.Context{Tonic: tonic, Quality: key.Major}
	return model.CollectionResponse{
		Name:         name,
		Set:          s.String(),
		PitchClasses: s.Ints(),
		Spelled:      key.SpellSet(s, ctx),
		ForteNumber:  setclass.ForteNumber(s),
	}
}

// ChordCollection is Collection for a triad, spelled in stacked thirds.
func ChordCollection(t chord.Type, root pcs.PitchClass) model.CollectionResponse {
	res := Collection(t.String(), chord.Chord(t, root), root)
	res.Spelled = nil
	for _, sp := range key.SpellChord(t, root) {
		res.Spelled = append(res.Spelled, sp.String())
	}
	return res
}

func Positions(note uint8, tuning fret.Tuning) model.FretResponse {
	res := model.FretResponse{
		Note:      note,
		Name:      fret.NoteName(note),
		Positions: []model.FretPosition{},
	}
	for _, p := range fret.MIDIToFretPositions(note, tuning) {
		res.Positions = append(res.Positions, model.FretPosition{String: p.String, Fret: p.Fret})
	}
	return res
}
