// Package config loads settings for the musictheory binary from YAML and the
// environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jsphweid/musictheory/constants"
	"github.com/jsphweid/musictheory/fret"
	"github.com/jsphweid/musictheory/key"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Midi   MidiConfig   `yaml:"midi"`
	Guitar GuitarConfig `yaml:"guitar"`
	// Key is the key analyses are named in when a request names none,
	// e.g. "C major". Empty leaves key-dependent fields out.
	Key string `yaml:"key"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	// AllowedOrigins for CORS; empty allows every origin
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type MidiConfig struct {
	// Port is the index of the MIDI in-port to listen on
	Port int `yaml:"port"`
	// Debounce is how long the held notes must stay unchanged before they
	// are analyzed
	Debounce time.Duration `yaml:"debounce"`
}

type GuitarConfig struct {
	// Tuning lists open-string MIDI notes, lowest string first
	Tuning []uint8 `yaml:"tuning"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: constants.DefaultAddr,
		},
		Midi: MidiConfig{
			Port:     0,
			Debounce: constants.DefaultDebounce,
		},
		Guitar: GuitarConfig{
			Tuning: append([]uint8(nil), fret.StandardTuning[:]...),
		},
	}
}

func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr is required")
	}
	if c.Midi.Port < 0 {
		return fmt.Errorf("midi.port must not be negative, got %d", c.Midi.Port)
	}
	if c.Midi.Debounce <= 0 {
		return errors.New("midi.debounce must be positive")
	}
	if _, err := fret.TuningFrom(c.Guitar.Tuning); err != nil {
		return fmt.Errorf("guitar.tuning: %w", err)
	}
	if c.Key != "" {
		if _, err := key.ParseContext(c.Key); err != nil {
			return fmt.Errorf("key: %w", err)
		}
	}
	return nil
}

func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}

// Merge copies the non-zero fields of other over c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Server.Addr != "" {
		c.Server.Addr = other.Server.Addr
	}
	if len(other.Server.AllowedOrigins) > 0 {
		c.Server.AllowedOrigins = other.Server.AllowedOrigins
	}
	if other.Midi.Port != 0 {
		c.Midi.Port = other.Midi.Port
	}
	if other.Midi.Debounce != 0 {
		c.Midi.Debounce = other.Midi.Debounce
	}
	if len(other.Guitar.Tuning) > 0 {
		c.Guitar.Tuning = other.Guitar.Tuning
	}
	if other.Key != "" {
		c.Key = other.Key
	}
}

// ApplyEnv overrides the address and MIDI port from LMT_ADDR and
// LMT_MIDI_PORT when they are set.
func (c *Config) ApplyEnv() {
	if addr := constants.GetAddr(); addr != "" {
		c.Server.Addr = addr
	}
	if port := constants.GetMidiPort(); port >= 0 {
		c.Midi.Port = port
	}
}

// Load layers defaults, the YAML file at path (or LMT_CONFIG when path is
// empty) and the environment, then validates the result.
func Load(path string, logger *slog.Logger) (*Config, error) {
	if logger == nil {
		logger = slog.Default()
	}
	config := DefaultConfig()

	if path == "" {
		path = constants.GetConfigPath()
	}
	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("Loaded config", slog.String("path", path))
		config.Merge(fileConfig)
	} else {
		logger.Debug("No config file given, using defaults")
	}

	config.ApplyEnv()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

func (c *Config) Tuning() fret.Tuning {
	t, err := fret.TuningFrom(c.Guitar.Tuning)
	if err != nil {
		return fret.StandardTuning
	}
	return t
}

// KeyContext returns nil when no default key is configured.
func (c *Config) KeyContext() *key.Context {
	if c.Key == "" {
		return nil
	}
	ctx, err := key.ParseContext(c.Key)
	if err != nil {
		return nil
	}
	return &ctx
}
