package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/musictheory/constants"
	"github.com/jsphweid/musictheory/pcs"
	"github.com/jsphweid/musictheory/setclass"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarizes the set-class catalog",
	Long: `Summarizes the set-class catalog: classes per cardinality, Z-related
classes, cluster-free sets and the most and least even class of each size.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := catalogReport()
		return output(cmd, r, func(w io.Writer) { printReport(w, r) })
	},
}

type cardinalityReport struct {
	Cardinality    int     `json:"cardinality"`
	Sets           int     `json:"sets"`
	TnClasses      int     `json:"tn_classes"`
	ForteClasses   int     `json:"forte_classes"`
	MostEven       string  `json:"most_even"`
	MostEvenValue  float64 `json:"most_even_value"`
	LeastEven      string  `json:"least_even"`
	LeastEvenValue float64 `json:"least_even_value"`
}

type catalogReportResult struct {
	NumTnClasses          int                 `json:"tn_classes"`
	NumForteClasses       int                 `json:"forte_classes"`
	SymmetricForteClasses int                 `json:"symmetric_forte_classes"`
	ZClasses              []string            `json:"z_classes"`
	ClusterFreeSets       int                 `json:"cluster_free_sets"`
	ClusterFreeClasses    int                 `json:"cluster_free_classes"`
	ClassesPerCardinality []cardinalityReport `json:"cardinalities"`
}

func catalogReport() catalogReportResult {
	var r catalogReportResult
	perCard := make([]cardinalityReport, constants.NumPitchClasses+1)
	for i := range perCard {
		perCard[i].Cardinality = i
	}

	tnClasses := make(map[pcs.Set]bool)
	clusterFreeClasses := make(map[pcs.Set]bool)
	for i := 0; i < constants.NumPitchClassSets; i++ {
		s := pcs.Set(i)
		perCard[s.Cardinality()].Sets++
		prime := setclass.PrimeForm(s)
		if !tnClasses[prime] {
			tnClasses[prime] = true
			perCard[s.Cardinality()].TnClasses++
		}
		if setclass.IsClusterFree(s) {
			r.ClusterFreeSets++
			clusterFreeClasses[setclass.TnIPrimeForm(s)] = true
		}
	}
	r.NumTnClasses = len(tnClasses)
	r.ClusterFreeClasses = len(clusterFreeClasses)

	for _, c := range setclass.ForteClasses() {
		r.NumForteClasses++
		if strings.Contains(c.ForteNumber, "Z") {
			r.ZClasses = append(r.ZClasses, c.ForteNumber)
		}
		if c.Symmetric {
			r.SymmetricForteClasses++
		}

		card := &perCard[c.Cardinality]
		first := card.ForteClasses == 0
		card.ForteClasses++
		if first || c.Evenness < card.MostEvenValue {
			card.MostEven, card.MostEvenValue = c.ForteNumber, c.Evenness
		}
		if first || c.Evenness > card.LeastEvenValue {
			card.LeastEven, card.LeastEvenValue = c.ForteNumber, c.Evenness
		}
	}
	r.ClassesPerCardinality = perCard
	return r
}

func printReport(w io.Writer, r catalogReportResult) {
	fmt.Fprintf(w, "transposition classes: %d\n", r.NumTnClasses)
	fmt.Fprintf(w, "forte classes: %d (%d inversionally symmetric)\n", r.NumForteClasses, r.SymmetricForteClasses)
	fmt.Fprintf(w, "z-related classes: %d\n", len(r.ZClasses))
	fmt.Fprintf(w, "cluster-free sets: %d in %d classes\n", r.ClusterFreeSets, r.ClusterFreeClasses)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%4s %6s %4s %6s  %-16s %-16s\n", "card", "sets", "Tn", "forte", "most even", "least even")
	for _, c := range r.ClassesPerCardinality {
		fmt.Fprintf(w, "%4d %6d %4d %6d  %-16s %-16s\n", c.Cardinality, c.Sets, c.TnClasses, c.ForteClasses,
			fmt.Sprintf("%s (%.3f)", c.MostEven, c.MostEvenValue),
			fmt.Sprintf("%s (%.3f)", c.LeastEven, c.LeastEvenValue))
	}
}
