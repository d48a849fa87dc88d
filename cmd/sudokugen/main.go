package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	httpadapter "svw.info/sudokugen/internal/adapters/http"
	"svw.info/sudokugen/internal/cache"
	"svw.info/sudokugen/internal/codec"
	"svw.info/sudokugen/internal/generator"
	"svw.info/sudokugen/internal/hint"
	"svw.info/sudokugen/internal/infrastructure/storage"
	"svw.info/sudokugen/internal/ports"
	"svw.info/sudokugen/internal/solver"
	"svw.info/sudokugen/internal/usecase"
	"svw.info/sudokugen/internal/validator"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration in a human-readable format.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		dur := time.Since(start)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", dur.Round(time.Millisecond),
		)
	})
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	store := flag.String("store", "sqlite", "persistence backend: sqlite|fs")
	persist := flag.String("persist-path", "./data", "save directory (fs) or database file (sqlite)")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	solverKind := flag.String("solver", "dlx", "solver to use: dlx|backtrack")
	cacheSize := flag.Int("cache-size", 256, "max cached puzzles (0 = unbounded)")
	flag.Parse()

	lvl := slog.LevelInfo
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))

	// Choose solver: DLX by default, backtracking as fallback via flag.
	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(*solverKind)) {
	case "backtrack", "backtracking":
		s = solver.NewBacktrackingSolver()
	default:
		s = solver.NewDLXSolver()
	}

	var st ports.Storage
	switch strings.ToLower(strings.TrimSpace(*store)) {
	case "fs":
		_ = os.MkdirAll(*persist, 0o755)
		st = storage.NewFS(*persist)
	default:
		db, err := storage.NewSQLite(*persist)
		if err != nil {
			logger.Error("open sqlite store", "path", *persist, "err", err)
			os.Exit(1)
		}
		st = db
	}
	defer st.Close()

	// Wire providers -> use cases -> HTTP adapter
	v := validator.New()
	uc := usecase.NewService(
		s,
		generator.NewPuzzleGenerator(s),
		v,
		hint.NewSingles(),
		st,
		cache.New(*cacheSize),
		codec.New(s, v),
	)
	h := httpadapter.New(uc)

	mux := http.NewServeMux()
	h.Register(mux)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", *addr, "store", *store, "persist", *persist, "solver", *solverKind)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
