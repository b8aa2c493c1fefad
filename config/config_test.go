package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsphweid/musictheory/constants"
	"github.com/jsphweid/musictheory/fret"
	"github.com/jsphweid/musictheory/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	assert := assert.New(t)
	cfg := DefaultConfig()
	assert.Equal(constants.DefaultAddr, cfg.Server.Addr)
	assert.Equal(constants.DefaultDebounce, cfg.Midi.Debounce)
	assert.Equal(fret.StandardTuning, cfg.Tuning())
	assert.Nil(cfg.KeyContext())
	assert.NoError(cfg.Validate())

	cfg.Guitar.Tuning[0] = 38
	assert.Equal(uint8(40), fret.StandardTuning[0])
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid default config", func(c *Config) {}, false},
		{"missing addr", func(c *Config) { c.Server.Addr = "" }, true},
		{"negative port", func(c *Config) { c.Midi.Port = -2 }, true},
		{"zero debounce", func(c *Config) { c.Midi.Debounce = 0 }, true},
		{"short tuning", func(c *Config) { c.Guitar.Tuning = []uint8{40, 45} }, true},
		{"bad key", func(c *Config) { c.Key = "H major" }, true},
		{"good key", func(c *Config) { c.Key = "F# minor" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9090"
  allowed_origins: ["http://localhost:3000"]
midi:
  port: 2
  debounce: 80ms
guitar:
  tuning: [38, 45, 50, 55, 59, 64]
key: "D minor"
`)
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(":9090", cfg.Server.Addr)
	assert.Equal([]string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(2, cfg.Midi.Port)
	assert.Equal(80*time.Millisecond, cfg.Midi.Debounce)
	assert.Equal(uint8(38), cfg.Tuning()[0])
	assert.Equal(&key.Context{Tonic: 2, Quality: key.Minor}, cfg.KeyContext())
}

func TestLoadFromFileKeepsDefaults(t *testing.T) {
	cfg, err := LoadFromFile(writeConfig(t, "key: A minor\n"))
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultAddr, cfg.Server.Addr)
	assert.Equal(t, constants.DefaultDebounce, cfg.Midi.Debounce)
}

func TestLoadFromFileErrors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadFromFile(writeConfig(t, "server: [not, a, map"))
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Merge(&Config{Key: "Bb", Midi: MidiConfig{Port: 3}})
	assert.Equal(t, "Bb", cfg.Key)
	assert.Equal(t, 3, cfg.Midi.Port)
	assert.Equal(t, constants.DefaultAddr, cfg.Server.Addr)

	cfg.Merge(nil)
	assert.Equal(t, "Bb", cfg.Key)
}

func TestLoadAppliesEnv(t *testing.T) {
	path := writeConfig(t, "server:\n  addr: \":9090\"\n")
	t.Setenv("LMT_ADDR", ":7070")
	t.Setenv("LMT_MIDI_PORT", "4")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, 4, cfg.Midi.Port)
}

func TestLoadUsesConfigEnvPath(t *testing.T) {
	t.Setenv("LMT_CONFIG", writeConfig(t, "key: E minor\n"))
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "E minor", cfg.Key)
}

func TestLoadRejectsInvalid(t *testing.T) {
	_, err := Load(writeConfig(t, "midi:\n  debounce: -1s\n"), nil)
	assert.Error(t, err)
}
