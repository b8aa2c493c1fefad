package setclass

// forteCatalog lists every set class under Forte's numbering together with
// the prime form printed in his table. A class with 7 to 10 members shares
// its ordinal with its complement (7-35 is the complement of 5-35).
var forteCatalog = []struct {
	name  string
	prime []int
}{
	{"0-1", []int{}},
	{"1-1", []int{0}},
	{"2-1", []int{0, 1}},
	{"2-2", []int{0, 2}},
	{"2-3", []int{0, 3}},
	{"2-4", []int{0, 4}},
	{"2-5", []int{0, 5}},
	{"2-6", []int{0, 6}},
	{"3-1", []int{0, 1, 2}},
	{"3-2", []int{0, 1, 3}},
	{"3-3", []int{0, 1, 4}},
	{"3-4", []int{0, 1, 5}},
	{"3-5", []int{0, 1, 6}},
	{"3-6", []int{0, 2, 4}},
	{"3-7", []int{0, 2, 5}},
	{"3-8", []int{0, 2, 6}},
	{"3-9", []int{0, 2, 7}},
	{"3-10", []int{0, 3, 6}},
	{"3-11", []int{0, 3, 7}},
	{"3-12", []int{0, 4, 8}},
	{"4-1", []int{0, 1, 2, 3}},
	{"4-2", []int{0, 1, 2, 4}},
	{"4-3", []int{0, 1, 3, 4}},
	{"4-4", []int{0, 1, 2, 5}},
	{"4-5", []int{0, 1, 2, 6}},
	{"4-6", []int{0, 1, 2, 7}},
	{"4-7", []int{0, 1, 4, 5}},
	{"4-8", []int{0, 1, 5, 6}},
	{"4-9", []int{0, 1, 6, 7}},
	{"4-10", []int{0, 2, 3, 5}},
	{"4-11", []int{0, 1, 3, 5}},
	{"4-12", []int{0, 2, 3, 6}},
	{"4-13", []int{0, 1, 3, 6}},
	{"4-14", []int{0, 2, 3, 7}},
	{"4-Z15", []int{0, 1, 4, 6}},
	{"4-16", []int{0, 1, 5, 7}},
	{"4-17", []int{0, 3, 4, 7}},
	{"4-18", []int{0, 1, 4, 7}},
	{"4-19", []int{0, 1, 4, 8}},
	{"4-20", []int{0, 1, 5, 8}},
	{"4-21", []int{0, 2, 4, 6}},
	{"4-22", []int{0, 2, 4, 7}},
	{"4-23", []int{0, 2, 5, 7}},
	{"4-24", []int{0, 2, 4, 8}},
	{"4-25", []int{0, 2, 6, 8}},
	{"4-26", []int{0, 3, 5, 8}},
	{"4-27", []int{0, 2, 5, 8}},
	{"4-28", []int{0, 3, 6, 9}},
	{"4-Z29", []int{0, 1, 3, 7}},
	{"5-1", []int{0, 1, 2, 3, 4}},
	{"5-2", []int{0, 1, 2, 3, 5}},
	{"5-3", []int{0, 1, 2, 4, 5}},
	{"5-4", []int{0, 1, 2, 3, 6}},
	{"5-5", []int{0, 1, 2, 3, 7}},
	{"5-6", []int{0, 1, 2, 5, 6}},
	{"5-7", []int{0, 1, 2, 6, 7}},
	{"5-8", []int{0, 2, 3, 4, 6}},
	{"5-9", []int{0, 1, 2, 4, 6}},
	{"5-10", []int{0, 1, 3, 4, 6}},
	{"5-11", []int{0, 2, 3, 4, 7}},
	{"5-Z12", []int{0, 1, 3, 5, 6}},
	{"5-13", []int{0, 1, 2, 4, 8}},
	{"5-14", []int{0, 1, 2, 5, 7}},
	{"5-15", []int{0, 1, 2, 6, 8}},
	{"5-16", []int{0, 1, 3, 4, 7}},
	{"5-Z17", []int{0, 1, 3, 4, 8}},
	{"5-Z18", []int{0, 1, 4, 5, 7}},
	{"5-19", []int{0, 1, 3, 6, 7}},
	{"5-20", []int{0, 1, 3, 7, 8}},
	{"5-21", []int{0, 1, 4, 5, 8}},
	{"5-22", []int{0, 1, 4, 7, 8}},
	{"5-23", []int{0, 2, 3, 5, 7}},
	{"5-24", []int{0, 1, 3, 5, 7}},
	{"5-25", []int{0, 2, 3, 5, 8}},
	{"5-26", []int{0, 2, 4, 5, 8}},
	{"5-27", []int{0, 1, 3, 5, 8}},
	{"5-28", []int{0, 2, 3, 6, 8}},
	{"5-29", []int{0, 1, 3, 6, 8}},
	{"5-30", []int{0, 1, 4, 6, 8}},
	{"5-31", []int{0, 1, 3, 6, 9}},
	{"5-32", []int{0, 1, 4, 6, 9}},
	{"5-33", []int{0, 2, 4, 6, 8}},
	{"5-34", []int{0, 2, 4, 6, 9}},
	{"5-35", []int{0, 2, 4, 7, 9}},
	{"5-Z36", []int{0, 1, 2, 4, 7}},
	{"5-Z37", []int{0, 3, 4, 5, 8}},
	{"5-Z38", []int{0, 1, 2, 5, 8}},
	{"6-1", []int{0, 1, 2, 3, 4, 5}},
	{"6-2", []int{0, 1, 2, 3, 4, 6}},
	{"6-Z3", []int{0, 1, 2, 3, 5, 6}},
	{"6-Z4", []int{0, 1, 2, 4, 5, 6}},
	{"6-5", []int{0, 1, 2, 3, 6, 7}},
	{"6-Z6", []int{0, 1, 2, 5, 6, 7}},
	{"6-7", []int{0, 1, 2, 6, 7, 8}},
	{"6-8", []int{0, 2, 3, 4, 5, 7}},
	{"6-9", []int{0, 1, 2, 3, 5, 7}},
	{"6-Z10", []int{0, 1, 3, 4, 5, 7}},
	{"6-Z11", []int{0, 1, 2, 4, 5, 7}},
	{"6-Z12", []int{0, 1, 2, 4, 6, 7}},
	{"6-Z13", []int{0, 1, 3, 4, 6, 7}},
	{"6-14", []int{0, 1, 3, 4, 5, 8}},
	{"6-15", []int{0, 1, 2, 4, 5, 8}},
	{"6-16", []int{0, 1, 4, 5, 6, 8}},
	{"6-Z17", []int{0, 1, 2, 4, 7, 8}},
	{"6-18", []int{0, 1, 2, 5, 7, 8}},
	{"6-Z19", []int{0, 1, 3, 4, 7, 8}},
	{"6-20", []int{0, 1, 4, 5, 8, 9}},
	{"6-21", []int{0, 2, 3, 4, 6, 8}},
	{"6-22", []int{0, 1, 2, 4, 6, 8}},
	{"6-Z23", []int{0, 2, 3, 5, 6, 8}},
	{"6-Z24", []int{0, 1, 3, 4, 6, 8}},
	{"6-Z25", []int{0, 1, 3, 5, 6, 8}},
	{"6-Z26", []int{0, 1, 3, 5, 7, 8}},
	{"6-27", []int{0, 1, 3, 4, 6, 9}},
	{"6-Z28", []int{0, 1, 3, 5, 6, 9}},
	{"6-Z29", []int{0, 1, 3, 6, 8, 9}},
	{"6-30", []int{0, 1, 3, 6, 7, 9}},
	{"6-31", []int{0, 1, 3, 5, 8, 9}},
	{"6-32", []int{0, 2, 4, 5, 7, 9}},
	{"6-33", []int{0, 2, 3, 5, 7, 9}},
	{"6-34", []int{0, 1, 3, 5, 7, 9}},
	{"6-35", []int{0, 2, 4, 6, 8, 10}},
	{"6-Z36", []int{0, 1, 2, 3, 4, 7}},
	{"6-Z37", []int{0, 1, 2, 3, 4, 8}},
	{"6-Z38", []int{0, 1, 2, 3, 7, 8}},
	{"6-Z39", []int{0, 2, 3, 4, 5, 8}},
	{"6-Z40", []int{0, 1, 2, 3, 5, 8}},
	{"6-Z41", []int{0, 1, 2, 3, 6, 8}},
	{"6-Z42", []int{0, 1, 2, 3, 6, 9}},
	{"6-Z43", []int{0, 1, 2, 5, 6, 8}},
	{"6-Z44", []int{0, 1, 2, 5, 6, 9}},
	{"6-Z45", []int{0, 2, 3, 4, 6, 9}},
	{"6-Z46", []int{0, 1, 2, 4, 6, 9}},
	{"6-Z47", []int{0, 1, 2, 4, 7, 9}},
	{"6-Z48", []int{0, 1, 2, 5, 7, 9}},
	{"6-Z49", []int{0, 1, 3, 4, 7, 9}},
	{"6-Z50", []int{0, 1, 4, 6, 7, 9}},
	{"7-1", []int{0, 1, 2, 3, 4, 5, 6}},
	{"7-2", []int{0, 1, 2, 3, 4, 5, 7}},
	{"7-3", []int{0, 1, 2, 3, 4, 5, 8}},
	{"7-4", []int{0, 1, 2, 3, 4, 6, 7}},
	{"7-5", []int{0, 1, 2, 3, 5, 6, 7}},
	{"7-6", []int{0, 1, 2, 3, 4, 7, 8}},
	{"7-7", []int{0, 1, 2, 3, 6, 7, 8}},
	{"7-8", []int{0, 2, 3, 4, 5, 6, 8}},
	{"7-9", []int{0, 1, 2, 3, 4, 6, 8}},
	{"7-10", []int{0, 1, 2, 3, 4, 6, 9}},
	{"7-11", []int{0, 1, 3, 4, 5, 6, 8}},
	{"7-Z12", []int{0, 1, 2, 3, 4, 7, 9}},
	{"7-13", []int{0, 1, 2, 4, 5, 6, 8}},
	{"7-14", []int{0, 1, 2, 3, 5, 7, 8}},
	{"7-15", []int{0, 1, 2, 4, 6, 7, 8}},
	{"7-16", []int{0, 1, 2, 3, 5, 6, 9}},
	{"7-Z17", []int{0, 1, 2, 4, 5, 6, 9}},
	{"7-Z18", []int{0, 1, 2, 3, 5, 8, 9}},
	{"7-19", []int{0, 1, 2, 3, 6, 7, 9}},
	{"7-20", []int{0, 1, 2, 4, 7, 8, 9}},
	{"7-21", []int{0, 1, 2, 4, 5, 8, 9}},
	{"7-22", []int{0, 1, 2, 5, 6, 8, 9}},
	{"7-23", []int{0, 2, 3, 4, 5, 7, 9}},
	{"7-24", []int{0, 1, 2, 3, 5, 7, 9}},
	{"7-25", []int{0, 2, 3, 4, 6, 7, 9}},
	{"7-26", []int{0, 1, 3, 4, 5, 7, 9}},
	{"7-27", []int{0, 1, 2, 4, 5, 7, 9}},
	{"7-28", []int{0, 1, 3, 5, 6, 7, 9}},
	{"7-29", []int{0, 1, 2, 4, 6, 7, 9}},
	{"7-30", []int{0, 1, 2, 4, 6, 8, 9}},
	{"7-31", []int{0, 1, 3, 4, 6, 7, 9}},
	{"7-32", []int{0, 1, 3, 4, 6, 8, 9}},
	{"7-33", []int{0, 1, 2, 4, 6, 8, 10}},
	{"7-34", []int{0, 1, 3, 4, 6, 8, 10}},
	{"7-35", []int{0, 1, 3, 5, 6, 8, 10}},
	{"7-Z36", []int{0, 1, 2, 3, 5, 6, 8}},
	{"7-Z37", []int{0, 1, 3, 4, 5, 7, 8}},
	{"7-Z38", []int{0, 1, 2, 4, 5, 7, 8}},
	{"8-1", []int{0, 1, 2, 3, 4, 5, 6, 7}},
	{"8-2", []int{0, 1, 2, 3, 4, 5, 6, 8}},
	{"8-3", []int{0, 1, 2, 3, 4, 5, 6, 9}},
	{"8-4", []int{0, 1, 2, 3, 4, 5, 7, 8}},
	{"8-5", []int{0, 1, 2, 3, 4, 6, 7, 8}},
	{"8-6", []int{0, 1, 2, 3, 5, 6, 7, 8}},
	{"8-7", []int{0, 1, 2, 3, 4, 5, 8, 9}},
	{"8-8", []int{0, 1, 2, 3, 4, 7, 8, 9}},
	{"8-9", []int{0, 1, 2, 3, 6, 7, 8, 9}},
	{"8-10", []int{0, 2, 3, 4, 5, 6, 7, 9}},
	{"8-11", []int{0, 1, 2, 3, 4, 5, 7, 9}},
	{"8-12", []int{0, 1, 3, 4, 5, 6, 7, 9}},
	{"8-13", []int{0, 1, 2, 3, 4, 6, 7, 9}},
	{"8-14", []int{0, 1, 2, 4, 5, 6, 7, 9}},
	{"8-Z15", []int{0, 1, 2, 3, 4, 6, 8, 9}},
	{"8-16", []int{0, 1, 2, 3, 5, 7, 8, 9}},
	{"8-17", []int{0, 1, 3, 4, 5, 6, 8, 9}},
	{"8-18", []int{0, 1, 2, 3, 5, 6, 8, 9}},
	{"8-19", []int{0, 1, 2, 4, 5, 6, 8, 9}},
	{"8-20", []int{0, 1, 2, 4, 5, 7, 8, 9}},
	{"8-21", []int{0, 1, 2, 3, 4, 6, 8, 10}},
	{"8-22", []int{0, 1, 2, 3, 5, 6, 8, 10}},
	{"8-23", []int{0, 1, 2, 3, 5, 7, 8, 10}},
	{"8-24", []int{0, 1, 2, 4, 5, 6, 8, 10}},
	{"8-25", []int{0, 1, 2, 4, 6, 7, 8, 10}},
	{"8-26", []int{0, 1, 2, 4, 5, 7, 9, 10}},
	{"8-27", []int{0, 1, 2, 4, 5, 7, 8, 10}},
	{"8-28", []int{0, 1, 3, 4, 6, 7, 9, 10}},
	{"8-Z29", []int{0, 1, 2, 3, 5, 6, 7, 9}},
	{"9-1", []int{0, 1, 2, 3, 4, 5, 6, 7, 8}},
	{"9-2", []int{0, 1, 2, 3, 4, 5, 6, 7, 9}},
	{"9-3", []int{0, 1, 2, 3, 4, 5, 6, 8, 9}},
	{"9-4", []int{0, 1, 2, 3, 4, 5, 7, 8, 9}},
	{"9-5", []int{0, 1, 2, 3, 4, 6, 7, 8, 9}},
	{"9-6", []int{0, 1, 2, 3, 4, 5, 6, 8, 10}},
	{"9-7", []int{0, 1, 2, 3, 4, 5, 7, 8, 10}},
	{"9-8", []int{0, 1, 2, 3, 4, 6, 7, 8, 10}},
	{"9-9", []int{0, 1, 2, 3, 5, 6, 7, 8, 10}},
	{"9-10", []int{0, 1, 2, 3, 4, 6, 7, 9, 10}},
	{"9-11", []int{0, 1, 2, 3, 5, 6, 7, 9, 10}},
	{"9-12", []int{0, 1, 2, 4, 5, 6, 8, 9, 10}},
	{"10-1", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
	{"10-2", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 10}},
	{"10-3", []int{0, 1, 2, 3, 4, 5, 6, 7, 9, 10}},
	{"10-4", []int{0, 1, 2, 3, 4, 5, 6, 8, 9, 10}},
	{"10-5", []int{0, 1, 2, 3, 4, 5, 7, 8, 9, 10}},
	{"10-6", []int{0, 1, 2, 3, 4, 6, 7, 8, 9, 10}},
	{"11-1", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
	{"12-1", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
}

// forteOverrides maps the mask-minimal prime of a class to the form Forte
// published, for the classes where the two disagree.
var forteOverrides = map[string]struct{ packed, forte []int }{
	"5-20":  {[]int{0, 1, 5, 6, 8}, []int{0, 1, 3, 7, 8}},
	"6-Z29": {[]int{0, 2, 3, 6, 7, 9}, []int{0, 1, 3, 6, 8, 9}},
	"6-31":  {[]int{0, 1, 4, 5, 7, 9}, []int{0, 1, 3, 5, 8, 9}},
	"7-Z18": {[]int{0, 1, 4, 5, 6, 7, 9}, []int{0, 1, 2, 3, 5, 8, 9}},
	"7-20":  {[]int{0, 1, 2, 5, 6, 7, 9}, []int{0, 1, 2, 4, 7, 8, 9}},
	"8-26":  {[]int{0, 1, 3, 4, 5, 7, 8, 10}, []int{0, 1, 2, 4, 5, 7, 9, 10}},
}
