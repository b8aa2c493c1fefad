package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/musictheory/chord"
	"github.com/jsphweid/musictheory/key"
	"github.com/jsphweid/musictheory/model"
	"github.com/jsphweid/musictheory/pcs"
	"github.com/spf13/cobra"
)

const fallbackKey = "C major"

var (
	spellKey string
	romanKey string
)

func init() {
	spellCmd.Flags().StringVarP(&spellKey, "key", "k", "", "Key to name in, e.g. \"Eb major\" (default from config, else C major)")
	romanCmd.Flags().StringVarP(&romanKey, "key", "k", "", "Key to name in, e.g. \"a minor\" (default from config, else C major)")
	rootCmd.AddCommand(spellCmd)
	rootCmd.AddCommand(romanCmd)
}

// resolveKey picks raw, then the configured key, then C major.
func resolveKey(raw string, configured string) (key.Context, error) {
	switch {
	case raw != "":
	case configured != "":
		raw = configured
	default:
		raw = fallbackKey
	}
	return key.ParseContext(raw)
}

var spellCmd = &cobra.Command{
	Use:   "spell <pitch class>...",
	Short: "Spells pitch classes in a key",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := resolveKey(spellKey, cfg.Key)
		if err != nil {
			return err
		}
		var res []model.SpellResponse
		for _, arg := range args {
			pc, err := parsePitchClass(arg)
			if err != nil {
				return err
			}
			res = append(res, model.SpellResponse{
				PitchClass: int(pc),
				Key:        ctx.String(),
				Name:       key.SpellNote(pc, ctx),
			})
		}
		return output(cmd, res, func(w io.Writer) {
			names := make([]string, 0, len(res))
			for _, r := range res {
				names = append(names, r.Name)
			}
			fmt.Fprintln(w, strings.Join(names, " "))
		})
	},
}

var romanCmd = &cobra.Command{
	Use:   "roman <set>",
	Short: "Names a triad with a Roman numeral in a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := resolveKey(romanKey, cfg.Key)
		if err != nil {
			return err
		}
		s, err := pcs.Parse(args[0])
		if err != nil {
			return err
		}
		res := romanOf(s, ctx)
		if res.Roman == "" {
			return fmt.Errorf("%s is not a major, minor, diminished or augmented triad", s)
		}
		return output(cmd, res, func(w io.Writer) {
			fmt.Fprintf(w, "%s in %s: %s (%s)\n", res.Symbol, res.Key, res.Roman, res.Chord)
		})
	},
}

func romanOf(s pcs.Set, ctx key.Context) model.RomanResponse {
	return model.RomanResponse{
		Set:    s.String(),
		Key:    ctx.String(),
		Chord:  chord.Name(s),
		Symbol: key.ChordSymbol(s, ctx),
		Roman:  key.RomanNumeral(s, ctx),
	}
}
