package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jsphweid/musictheory/analysis"
	"github.com/jsphweid/musictheory/fret"
	"github.com/spf13/cobra"
)

var fretKey string

func init() {
	fretChordCmd.Flags().StringVarP(&fretKey, "key", "k", "", "Key to name the chord in")
	fretCmd.AddCommand(fretPositionsCmd)
	fretCmd.AddCommand(fretChordCmd)
	rootCmd.AddCommand(fretCmd)
}

var fretCmd = &cobra.Command{
	Use:   "fret",
	Short: "Guitar fretboard lookups in the configured tuning",
}

func parseMidiNote(raw string) (uint8, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n > 127 {
		return 0, fmt.Errorf("invalid MIDI note %q", raw)
	}
	return uint8(n), nil
}

var fretPositionsCmd = &cobra.Command{
	Use:   "positions <midi note>",
	Short: "Lists every string and fret that plays a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := parseMidiNote(args[0])
		if err != nil {
			return err
		}
		res := analysis.Positions(note, cfg.Tuning())
		return output(cmd, res, func(w io.Writer) {
			fmt.Fprintf(w, "%s (%d) in %s\n", res.Name, res.Note, cfg.Tuning())
			for _, p := range res.Positions {
				fmt.Fprintf(w, "string %d fret %d\n", p.String+1, p.Fret)
			}
		})
	},
}

var fretChordCmd = &cobra.Command{
	Use:   "chord <fingering>",
	Short: "Names the chord a fingering such as x32010 sounds",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		frets, err := fret.ParseFingering(args[0])
		if err != nil {
			return err
		}
		notes, err := fret.Notes(frets, cfg.Tuning())
		if err != nil {
			return err
		}
		ctx, err := resolveKey(fretKey, cfg.Key)
		if err != nil {
			return err
		}
		res := analysis.Analyze(notes, &ctx)
		return output(cmd, res, func(w io.Writer) {
			fmt.Fprintf(w, "notes: %s\n", strings.Join(res.NoteNames, " "))
			fmt.Fprintf(w, "set: %s %v (%s)\n", res.Set, res.PitchClasses, res.ForteNumber)
			if res.Chord != "" {
				fmt.Fprintf(w, "chord: %s, %s in %s\n", res.Symbol, res.Roman, res.Key)
			}
		})
	},
}
