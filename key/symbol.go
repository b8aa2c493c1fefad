package key

import (
	"github.com/jsphweid/musictheory/chord"
	"github.com/jsphweid/musictheory/pcs"
)

var symbolSuffixes = map[chord.Type]string{
	chord.Major:      "",
	chord.Minor:      "m",
	chord.Diminished: "dim",
	chord.Augmented:  "aug",
}

// ChordSymbol writes a triad as a lead-sheet symbol spelled in ctx, such as
// "F#m" or "Bbaug". Sets that are not triads give "".
func ChordSymbol(chordSet pcs.Set, ctx Context) string {
	root, typ, ok := chord.Root(chordSet)
	if !ok {
		return ""
	}
	if typ == chord.Augmented {
		root = augmentedRoot(chordSet, ctx)
	}
	return SpellNote(root, ctx) + symbolSuffixes[typ]
}
