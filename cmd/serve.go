package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/musictheory/analysis"
	"github.com/jsphweid/musictheory/chord"
	"github.com/jsphweid/musictheory/config"
	"github.com/jsphweid/musictheory/constants"
	"github.com/jsphweid/musictheory/fret"
	"github.com/jsphweid/musictheory/key"
	"github.com/jsphweid/musictheory/model"
	"github.com/jsphweid/musictheory/pcs"
	"github.com/jsphweid/musictheory/scale"
	"github.com/jsphweid/musictheory/svg"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, $LMT_ADDR or :8080)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the library over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if serveAddr != "" {
			cfg.Server.Addr = serveAddr
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg, logger)
	},
}

func serve(ctx context.Context, c *config.Config, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              c.Server.Addr,
		Handler:           NewRouter(c, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving", slog.String("addr", c.Server.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen on %s: %w", c.Server.Addr, err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

type server struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewRouter builds the HTTP API: JSON answers for every query, SVG for the
// diagrams, CORS from the config and a request id on every response.
func NewRouter(c *config.Config, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	s := &server{cfg: c, logger: logger}

	router := mux.NewRouter().StrictSlash(true)
	router.Use(s.requestLogger)
	router.HandleFunc("/pcs/{set}", s.handlePcs).Methods(http.MethodGet)
	router.HandleFunc("/classify/{set}", s.handleClassify).Methods(http.MethodGet)
	router.HandleFunc("/scale/{type}/{tonic}", s.handleScale).Methods(http.MethodGet)
	router.HandleFunc("/mode/{type}/{root}", s.handleMode).Methods(http.MethodGet)
	router.HandleFunc("/chord/{type}/{root}", s.handleChord).Methods(http.MethodGet)
	router.HandleFunc("/spell/{pc}", s.handleSpell).Methods(http.MethodGet)
	router.HandleFunc("/roman/{set}", s.handleRoman).Methods(http.MethodGet)
	router.HandleFunc("/fret/{note}", s.handleFret).Methods(http.MethodGet)
	router.HandleFunc("/svg/clock/{set}", s.handleSvgClock).Methods(http.MethodGet)
	router.HandleFunc("/svg/fret/{fingering}", s.handleSvgFret).Methods(http.MethodGet)
	router.HandleFunc("/svg/staff/{type}/{root}", s.handleSvgStaff).Methods(http.MethodGet)
	router.HandleFunc("/analyze", s.handleAnalyze).Methods(http.MethodPost)

	if len(c.Server.AllowedOrigins) == 0 {
		return cors.Default().Handler(router)
	}
	return cors.New(cors.Options{
		AllowedOrigins: c.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}).Handler(router)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-Id", id)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			slog.String("id", id),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("duration", time.Since(start)))
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func serveSvg(w http.ResponseWriter, render func(buf []byte) (int, error)) {
	buf := make([]byte, constants.SvgBufferSize)
	n, err := render(buf)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(buf[:n])
}

// keyFrom reads the "key" query parameter, falling back to the configured
// key and then C major.
func (s *server) keyFrom(r *http.Request) (key.Context, error) {
	return resolveKey(r.URL.Query().Get("key"), s.cfg.Key)
}

func (s *server) handlePcs(w http.ResponseWriter, r *http.Request) {
	set, err := pcs.Parse(mux.Vars(r)["set"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	q := r.URL.Query()
	transpose := 0
	if raw := q.Get("transpose"); raw != "" {
		if transpose, err = strconv.Atoi(raw); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid transpose %q", raw))
			return
		}
	}
	set = applyAlgebra(set, q.Get("invert") == "true", transpose, q.Get("complement") == "true")
	writeJSON(w, pcsResultOf(set))
}

func (s *server) handleClassify(w http.ResponseWriter, r *http.Request) {
	set, err := pcs.Parse(mux.Vars(r)["set"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, analysis.Class(set))
}

func (s *server) handleScale(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	t, err := scale.ParseType(vars["type"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	tonic, err := parsePitchClass(vars["tonic"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, analysis.Collection(t.String(), scale.Scale(t, tonic), tonic))
}

func (s *server) handleMode(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	t, err := scale.ParseModeType(vars["type"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	root, err := parsePitchClass(vars["root"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, analysis.Collection(t.String(), scale.Mode(t, root), root))
}

func (s *server) handleChord(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	t, err := chord.ParseType(vars["type"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	root, err := parsePitchClass(vars["root"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, analysis.ChordCollection(t, root))
}

func (s *server) handleSpell(w http.ResponseWriter, r *http.Request) {
	ctx, err := s.keyFrom(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	pc, err := parsePitchClass(mux.Vars(r)["pc"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, model.SpellResponse{PitchClass: int(pc), Key: ctx.String(), Name: key.SpellNote(pc, ctx)})
}

func (s *server) handleRoman(w http.ResponseWriter, r *http.Request) {
	ctx, err := s.keyFrom(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	set, err := pcs.Parse(mux.Vars(r)["set"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, romanOf(set, ctx))
}

func (s *server) handleFret(w http.ResponseWriter, r *http.Request) {
	note, err := parseMidiNote(mux.Vars(r)["note"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, analysis.Positions(note, s.cfg.Tuning()))
}

func (s *server) handleSvgClock(w http.ResponseWriter, r *http.Request) {
	set, err := pcs.Parse(mux.Vars(r)["set"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	serveSvg(w, func(buf []byte) (int, error) { return svg.WriteClockOPTC(set, buf) })
}

func (s *server) handleSvgFret(w http.ResponseWriter, r *http.Request) {
	frets, err := fret.ParseFingering(mux.Vars(r)["fingering"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	serveSvg(w, func(buf []byte) (int, error) { return svg.WriteFret(frets, buf) })
}

func (s *server) handleSvgStaff(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	t, err := chord.ParseType(vars["type"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	root, err := parsePitchClass(vars["root"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	serveSvg(w, func(buf []byte) (int, error) { return svg.WriteChordStaff(t, root, buf) })
}

func (s *server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("read request body: %w", err))
		return
	}

	var input model.AnalyzeRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("could not unmarshal request body: %w", err))
		return
	}
	if len(input.Notes) == 0 {
		writeError(w, http.StatusBadRequest, errors.New("notes must not be empty"))
		return
	}

	ctx := s.cfg.KeyContext()
	if input.Key != "" {
		parsed, err := key.ParseContext(input.Key)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		ctx = &parsed
	}
	writeJSON(w, analysis.Analyze(input.Notes, ctx))
}
