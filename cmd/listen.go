package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jsphweid/musictheory/midi"
	"github.com/spf13/cobra"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var (
	listenPort  int
	listenPorts bool
	listenKey   string
)

func init() {
	listenCmd.Flags().IntVarP(&listenPort, "port", "p", -1, "MIDI in-port number (default from config or $LMT_MIDI_PORT)")
	listenCmd.Flags().BoolVar(&listenPorts, "list", false, "List the MIDI in-ports and exit")
	listenCmd.Flags().StringVarP(&listenKey, "key", "k", "", "Key to name chords in")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names the chords held on a MIDI keyboard",
	Long: `Listens to a MIDI in-port and, once the held keys stop changing for the
configured debounce interval, logs the analysis of the chord they form.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if listenPorts {
			for i, name := range midi.InPorts() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", i, name)
			}
			return nil
		}

		port := cfg.Midi.Port
		if listenPort >= 0 {
			port = listenPort
		}
		keyCtx := cfg.KeyContext()
		if listenKey != "" {
			ctx, err := resolveKey(listenKey, cfg.Key)
			if err != nil {
				return err
			}
			keyCtx = &ctx
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		l := midi.NewListener(cfg.Midi.Debounce, keyCtx, nil, logger)
		return midi.Listen(ctx, port, l)
	},
}
