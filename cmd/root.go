package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jsphweid/musictheory/config"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	asJSON     bool

	cfg    = config.DefaultConfig()
	logger = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "musictheory",
	Short: "Pitch-class sets, scales, chords and keys",
	Long: `musictheory computes with pitch-class sets: set algebra, prime forms and
Forte numbers, scales, modes and triads, note spelling and Roman numerals in
a key, guitar fretboard positions and SVG diagrams.

It also serves the same answers over HTTP and names chords played on a MIDI
keyboard.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = newLogger(cmd.ErrOrStderr(), logLevel)
		slog.SetDefault(logger)

		loaded, err := config.Load(configPath, logger)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML), defaults to $LMT_CONFIG")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Print results as JSON")
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newLogger(w io.Writer, level string) *slog.Logger {
	l := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}

// output prints v as JSON under --json, otherwise calls text.
func output(cmd *cobra.Command, v any, text func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	if !asJSON {
		text(w)
		return nil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}
