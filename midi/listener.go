// Package midi names the chord held on a live MIDI input.
package midi

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/musictheory/analysis"
	"github.com/jsphweid/musictheory/chord"
	"github.com/jsphweid/musictheory/key"
	"github.com/jsphweid/musictheory/model"
	gomidi "gitlab.com/gomidi/midi/v2"
)

// Listener tracks held keys and reports an analysis once they have stayed
// unchanged for the debounce interval. The driver callback and the debounced
// analysis run on different goroutines, so the held keys sit behind a mutex.
type Listener struct {
	mu       sync.Mutex
	onNotes  chord.OnNotes
	key      *key.Context
	debounce func(func())
	onChord  func(model.Analysis)
	logger   *slog.Logger
}

// NewListener calls onChord with the analysis of every settled, non-empty
// chord. keyCtx may be nil.
func NewListener(after time.Duration, keyCtx *key.Context, onChord func(model.Analysis), logger *slog.Logger) *Listener {
	if logger == nil {
		logger = slog.Default()
	}
	return &Listener{
		onNotes:  make(chord.OnNotes),
		key:      keyCtx,
		debounce: debounce.New(after),
		onChord:  onChord,
		logger:   logger,
	}
}

func (l *Listener) NoteOn(note uint8) {
	l.mu.Lock()
	l.onNotes[note] = true
	l.mu.Unlock()
	l.debounce(l.analyze)
}

func (l *Listener) NoteOff(note uint8) {
	l.mu.Lock()
	delete(l.onNotes, note)
	l.mu.Unlock()
	l.debounce(l.analyze)
}

// Held returns the pressed keys in ascending order.
func (l *Listener) Held() model.Notes {
	l.mu.Lock()
	defer l.mu.Unlock()
	return chord.HeldNotes(l.onNotes)
}

// Handle is the receive callback for gomidi's ListenTo.
func (l *Listener) Handle(msg gomidi.Message, timestampms int32) {
	var ch, note, vel uint8
	switch {
	case msg.GetNoteStart(&ch, &note, &vel):
		l.logger.Debug("note on", slog.Int("key", int(note)), slog.Int("velocity", int(vel)))
		l.NoteOn(note)
	case msg.GetNoteEnd(&ch, &note):
		l.logger.Debug("note off", slog.Int("key", int(note)))
		l.NoteOff(note)
	default:
		// ignore
	}
}

func (l *Listener) analyze() {
	held := l.Held()
	if len(held) == 0 {
		return
	}
	res := analysis.Analyze(held, l.key)
	l.logger.Info("chord",
		slog.String("key", chord.CreateChordKey(held)),
		slog.String("set", res.Set),
		slog.String("forte", res.ForteNumber),
		slog.String("chord", res.Chord),
		slog.String("roman", res.Roman))
	if l.onChord != nil {
		l.onChord(res)
	}
}

// InPorts lists the MIDI inputs the registered driver can see.
func InPorts() []string {
	var res []string
	for _, in := range gomidi.GetInPorts() {
		res = append(res, in.String())
	}
	return res
}

// Listen feeds in-port number port into l until ctx is done.
func Listen(ctx context.Context, port int, l *Listener) error {
	defer gomidi.CloseDriver()
	in, err := gomidi.InPort(port)
	if err != nil {
		return fmt.Errorf("open MIDI in-port %d: %w", port, err)
	}

	stop, err := gomidi.ListenTo(in, l.Handle)
	if err != nil {
		return fmt.Errorf("listen to %s: %w", in, err)
	}
	l.logger.Info("listening", slog.String("port", in.String()))

	<-ctx.Done()
	stop()
	return nil
}
