package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jsphweid/musictheory/analysis"
	"github.com/jsphweid/musictheory/chord"
	"github.com/jsphweid/musictheory/constants"
	"github.com/jsphweid/musictheory/key"
	"github.com/jsphweid/musictheory/model"
	"github.com/jsphweid/musictheory/pcs"
	"github.com/jsphweid/musictheory/scale"
	"github.com/jsphweid/musictheory/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scaleCmd)
	rootCmd.AddCommand(modeCmd)
	rootCmd.AddCommand(chordCmd)
}

// parsePitchClass reads a note name ("Eb") or a pitch-class number ("3").
func parsePitchClass(raw string) (pcs.PitchClass, error) {
	if n, err := strconv.Atoi(raw); err == nil {
		return pcs.PitchClass(util.Mod(n, constants.NumPitchClasses)), nil
	}
	return key.ParseNote(raw)
}

func printCollection(w io.Writer, c model.CollectionResponse) {
	fmt.Fprintf(w, "%s: %s %v\n", c.Name, c.Set, c.PitchClasses)
	fmt.Fprintf(w, "notes: %s\n", strings.Join(c.Spelled, " "))
	fmt.Fprintf(w, "forte number: %s\n", c.ForteNumber)
}

func printNames[T fmt.Stringer](w io.Writer, types []T) {
	for _, t := range types {
		fmt.Fprintln(w, t.String())
	}
}

var scaleCmd = &cobra.Command{
	Use:   "scale [type] [tonic]",
	Short: "Builds a scale, or lists the scale types",
	Args:  typeAndRoot,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			printNames(cmd.OutOrStdout(), scale.Types())
			return nil
		}
		t, err := scale.ParseType(args[0])
		if err != nil {
			return err
		}
		tonic, err := parsePitchClass(args[1])
		if err != nil {
			return err
		}
		res := analysis.Collection(t.String(), scale.Scale(t, tonic), tonic)
		return output(cmd, res, func(w io.Writer) { printCollection(w, res) })
	},
}

var modeCmd = &cobra.Command{
	Use:   "mode [type] [root]",
	Short: "Builds a mode, or lists the mode types",
	Args:  typeAndRoot,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			printNames(cmd.OutOrStdout(), scale.ModeTypes())
			return nil
		}
		t, err := scale.ParseModeType(args[0])
		if err != nil {
			return err
		}
		root, err := parsePitchClass(args[1])
		if err != nil {
			return err
		}
		res := analysis.Collection(t.String(), scale.Mode(t, root), root)
		return output(cmd, res, func(w io.Writer) { printCollection(w, res) })
	},
}

var chordCmd = &cobra.Command{
	Use:   "chord [type] [root]",
	Short: "Builds a triad, or lists the triad types",
	Args:  typeAndRoot,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			printNames(cmd.OutOrStdout(), chord.Types())
			return nil
		}
		t, err := chord.ParseType(args[0])
		if err != nil {
			return err
		}
		root, err := parsePitchClass(args[1])
		if err != nil {
			return err
		}
		res := analysis.ChordCollection(t, root)
		return output(cmd, res, func(w io.Writer) { printCollection(w, res) })
	},
}

// typeAndRoot accepts no arguments (list the types) or a type and a root.
func typeAndRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 1 || len(args) > 2 {
		return fmt.Errorf("%s takes a type and a root, or nothing", cmd.Name())
	}
	return nil
}
