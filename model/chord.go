package model

// MIDI note numbers, as played
type Notes = []uint8

// Analysis is everything known about a group of notes, optionally in a key.
type Analysis struct {
	Notes          []int    `json:"notes,omitempty"`
	NoteNames      []string `json:"note_names,omitempty"`
	Set            string   `json:"set"`
	PitchClasses   []int    `json:"pitch_classes"`
	PrimeForm      string   `json:"prime_form"`
	FortePrime     string   `json:"forte_prime"`
	ForteNumber    string   `json:"forte_number"`
	IntervalVector [6]int   `json:"interval_vector"`
	ClusterFree    bool     `json:"cluster_free"`
	Evenness       float64  `json:"evenness"`
	Chord          string   `json:"chord,omitempty"`

	// only set when a key is given
	Key     string   `json:"key,omitempty"`
	Spelled []string `json:"spelled,omitempty"`
	Symbol  string   `json:"symbol,omitempty"`
	Roman   string   `json:"roman,omitempty"`
}

// SetClass is the wire form of a set classification.
type SetClass struct {
	Set            string  `json:"set"`
	PitchClasses   []int   `json:"pitch_classes"`
	Cardinality    int     `json:"cardinality"`
	PrimeForm      string  `json:"prime_form"`
	TnIPrimeForm   string  `json:"tni_prime_form"`
	FortePrime     string  `json:"forte_prime"`
	ForteNumber    string  `json:"forte_number"`
	IntervalVector [6]int  `json:"interval_vector"`
	ClusterFree    bool    `json:"cluster_free"`
	Symmetric      bool    `json:"symmetric"`
	Evenness       float64 `json:"evenness"`
}
