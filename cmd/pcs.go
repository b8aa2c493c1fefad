package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/musictheory/analysis"
	"github.com/jsphweid/musictheory/pcs"
	"github.com/spf13/cobra"
)

var (
	transposeBy int
	invert      bool
	complement  bool
	subsetOf    string
)

func init() {
	pcsCmd.Flags().IntVarP(&transposeBy, "transpose", "t", 0, "Transpose by this many semitones")
	pcsCmd.Flags().BoolVarP(&invert, "invert", "i", false, "Invert around 0 (applied before transposing)")
	pcsCmd.Flags().BoolVar(&complement, "complement", false, "Take the complement (applied last)")
	pcsCmd.Flags().StringVar(&subsetOf, "subset-of", "", "Also report whether the result is a subset of this set")
	rootCmd.AddCommand(pcsCmd)
	rootCmd.AddCommand(classifyCmd)
}

type pcsResult struct {
	Set            string `json:"set"`
	PitchClasses   []int  `json:"pitch_classes"`
	Cardinality    int    `json:"cardinality"`
	IntervalVector [6]int `json:"interval_vector"`
	SubsetOf       *bool  `json:"subset_of,omitempty"`
}

// applyAlgebra inverts, then transposes, then complements s.
func applyAlgebra(s pcs.Set, invert bool, transpose int, complement bool) pcs.Set {
	if invert {
		s = s.Invert()
	}
	s = s.Transpose(transpose)
	if complement {
		s = s.Complement()
	}
	return s
}

func pcsResultOf(s pcs.Set) pcsResult {
	return pcsResult{
		Set:            s.String(),
		PitchClasses:   s.Ints(),
		Cardinality:    s.Cardinality(),
		IntervalVector: s.IntervalVector(),
	}
}

var pcsCmd = &cobra.Command{
	Use:   "pcs <set>",
	Short: "Applies set algebra to a pitch-class set",
	Long: `Applies set algebra to a pitch-class set. Sets are written as hex masks
(0x091) or pitch-class lists (0,4,7 or [0,4,7]).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := pcs.Parse(args[0])
		if err != nil {
			return err
		}
		s = applyAlgebra(s, invert, transposeBy, complement)
		res := pcsResultOf(s)
		if subsetOf != "" {
			big, err := pcs.Parse(subsetOf)
			if err != nil {
				return fmt.Errorf("--subset-of: %w", err)
			}
			is := pcs.IsSubset(s, big)
			res.SubsetOf = &is
		}

		return output(cmd, res, func(w io.Writer) {
			fmt.Fprintf(w, "%s %v\n", res.Set, res.PitchClasses)
			fmt.Fprintf(w, "cardinality: %d\n", res.Cardinality)
			fmt.Fprintf(w, "interval vector: %v\n", res.IntervalVector)
			if res.SubsetOf != nil {
				fmt.Fprintf(w, "subset of %s: %v\n", subsetOf, *res.SubsetOf)
			}
		})
	},
}

var classifyCmd = &cobra.Command{
	Use:   "classify <set>",
	Short: "Prints the prime forms, Forte number, cluster and evenness of a set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := pcs.Parse(args[0])
		if err != nil {
			return err
		}
		c := analysis.Class(s)
		return output(cmd, c, func(w io.Writer) {
			fmt.Fprintf(w, "set:             %s %v\n", c.Set, c.PitchClasses)
			fmt.Fprintf(w, "forte number:    %s\n", c.ForteNumber)
			fmt.Fprintf(w, "prime form:      %s\n", c.PrimeForm)
			fmt.Fprintf(w, "TnI prime form:  %s\n", c.TnIPrimeForm)
			fmt.Fprintf(w, "forte prime:     %s\n", c.FortePrime)
			fmt.Fprintf(w, "interval vector: %v\n", c.IntervalVector)
			fmt.Fprintf(w, "cluster free:    %v\n", c.ClusterFree)
			fmt.Fprintf(w, "symmetric:       %v\n", c.Symmetric)
			fmt.Fprintf(w, "evenness:        %.4f\n", c.Evenness)
		})
	},
}
