package model

type AnalyzeRequestBody struct {
	Notes Notes  `json:"notes"`
	Key   string `json:"key,omitempty"`
}

type CollectionResponse struct {
	Name         string   `json:"name"`
	Set          string   `json:"set"`
	PitchClasses []int    `json:"pitch_classes"`
	Spelled      []string `json:"spelled"`
	ForteNumber  string   `json:"forte_number"`
}

type SpellResponse struct {
	PitchClass int    `json:"pitch_class"`
	Key        string `json:"key"`
	Name       string `json:"name"`
}

type RomanResponse struct {
	Set    string `json:"set"`
	Key    string `json:"key"`
	Chord  string `json:"chord"`
	Symbol string `json:"symbol"`
	Roman  string `json:"roman"`
}

type FretPosition struct {
	String uint8 `json:"string"`
	Fret   uint8 `json:"fret"`
}

type FretResponse struct {
	Note      uint8          `json:"note"`
	Name      string         `json:"name"`
	Positions []FretPosition `json:"positions"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
