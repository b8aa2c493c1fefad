package constants

import (
	"os"
	"strconv"
	"time"
)

const NumPitchClasses = 12

// 0x000 through 0xFFF
const NumPitchClassSets = 1 << NumPitchClasses

const MaxFret = 24

const NumStrings = 6

// large enough for every diagram the svg package renders
const SvgBufferSize = 16 * 1024

const DefaultAddr = ":8080"

const DefaultDebounce = 150 * time.Millisecond

// GetAddr returns "" when LMT_ADDR is unset.
func GetAddr() string {
	return os.Getenv("LMT_ADDR")
}

func GetConfigPath() string {
	return os.Getenv("LMT_CONFIG")
}

// GetMidiPort returns -1 when LMT_MIDI_PORT is unset or not a number.
func GetMidiPort() int {
	raw := os.Getenv("LMT_MIDI_PORT")
	if raw == "" {
		return -1
	}
	port, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return port
}
