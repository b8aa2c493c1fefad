package setclass

import "github.com/jsphweid/musictheory/pcs"

// Class gathers every classification of a single set.
type Class struct {
	Set            pcs.Set
	Cardinality    int
	PrimeForm      pcs.Set
	TnIPrimeForm   pcs.Set
	FortePrime     pcs.Set
	ForteNumber    string
	IntervalVector [6]int
	ClusterFree    bool
	Symmetric      bool
	Evenness       float64
}

func Classify(s pcs.Set) Class {
	s = s.Valid()
	return Class{
		Set:            s,
		Cardinality:    s.Cardinality(),
		PrimeForm:      PrimeForm(s),
		TnIPrimeForm:   TnIPrimeForm(s),
		FortePrime:     FortePrime(s),
		ForteNumber:    ForteNumber(s),
		IntervalVector: s.IntervalVector(),
		ClusterFree:    IsClusterFree(s),
		Symmetric:      IsSymmetric(s),
		Evenness:       EvennessDistance(s),
	}
}
