package cmd

import (
	"fmt"
	"os"

	"github.com/jsphweid/musictheory/chord"
	"github.com/jsphweid/musictheory/fret"
	"github.com/jsphweid/musictheory/pcs"
	"github.com/jsphweid/musictheory/svg"
	"github.com/spf13/cobra"
)

var svgOut string

func init() {
	svgCmd.PersistentFlags().StringVarP(&svgOut, "out", "o", "", "Write to this file instead of stdout")
	svgCmd.AddCommand(svgClockCmd)
	svgCmd.AddCommand(svgFretCmd)
	svgCmd.AddCommand(svgStaffCmd)
	rootCmd.AddCommand(svgCmd)
}

var svgCmd = &cobra.Command{
	Use:   "svg",
	Short: "Renders diagrams as SVG",
}

func writeSvg(cmd *cobra.Command, doc string) error {
	if svgOut == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), doc)
		return err
	}
	if err := os.WriteFile(svgOut, []byte(doc), 0644); err != nil {
		return fmt.Errorf("write %s: %w", svgOut, err)
	}
	logger.Info("wrote svg", "path", svgOut, "bytes", len(doc))
	return nil
}

var svgClockCmd = &cobra.Command{
	Use:   "clock <set>",
	Short: "Draws a set on the pitch-class clock",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := pcs.Parse(args[0])
		if err != nil {
			return err
		}
		return writeSvg(cmd, svg.ClockOPTC(s))
	},
}

var svgFretCmd = &cobra.Command{
	Use:   "fret <fingering>",
	Short: "Draws a chord box for a fingering such as x32010",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		frets, err := fret.ParseFingering(args[0])
		if err != nil {
			return err
		}
		return writeSvg(cmd, svg.Fret(frets))
	},
}

var svgStaffCmd = &cobra.Command{
	Use:   "staff <type> <root>",
	Short: "Draws a triad on a treble staff",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := chord.ParseType(args[0])
		if err != nil {
			return err
		}
		root, err := parsePitchClass(args[1])
		if err != nil {
			return err
		}
		return writeSvg(cmd, svg.ChordStaff(t, root))
	},
}
