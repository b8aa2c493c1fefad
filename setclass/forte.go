package setclass

import (
	"fmt"

	"github.com/jsphweid/musictheory/pcs"
)

type forteEntry struct {
	Name  string
	Prime pcs.Set
}

var (
	// keyed by TnIPrimeForm
	forteByPacked = make(map[pcs.Set]forteEntry, len(forteCatalog))
	forteOverride = make(map[pcs.Set]pcs.Set, len(forteOverrides))
)

func init() {
	for _, o := range forteOverrides {
		forteOverride[pcs.FromList(o.packed)] = pcs.FromList(o.forte)
	}
	for _, e := range forteCatalog {
		prime := pcs.FromList(e.prime)
		key := TnIPrimeForm(prime)
		if _, dup := forteByPacked[key]; dup {
			panic(fmt.Sprintf("forte catalog lists %v twice", e.prime))
		}
		forteByPacked[key] = forteEntry{Name: e.name, Prime: prime}
	}
}

// FortePrime returns the prime form Forte's catalog prints for the set class
// of s. It agrees with TnIPrimeForm except for the classes in the override
// table; FortePrime(0x091) is {0,3,7}.
func FortePrime(s pcs.Set) pcs.Set {
	packed := TnIPrimeForm(s)
	if forte, ok := forteOverride[packed]; ok {
		return forte
	}
	return packed
}

// ForteNumber returns the catalog name of the set class of s, e.g. "3-11" or
// "6-Z29". Every set of the 12 pitch classes has one.
func ForteNumber(s pcs.Set) string {
	return forteByPacked[TnIPrimeForm(s)].Name
}

// ForteClasses returns the catalog in Forte's order.
func ForteClasses() []Class {
	res := make([]Class, 0, len(forteCatalog))
	for _, e := range forteCatalog {
		res = append(res, Classify(pcs.FromList(e.prime)))
	}
	return res
}
