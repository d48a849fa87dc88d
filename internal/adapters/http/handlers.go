package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"svw.info/sudokugen/internal/codec"
	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/generate", h.handleGenerate)
	mux.HandleFunc("/api/daily", h.handleDaily)
	mux.HandleFunc("/api/tournament", h.handleTournament)
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/export", h.handleExport)
	mux.HandleFunc("/api/import", h.handleImport)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
}

// statusFor maps core error kinds onto HTTP statuses: malformed input and
// contract violations are the client's fault, exhaustion is ours.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidDifficulty),
		errors.Is(err, domain.ErrInvalidGrid),
		errors.Is(err, domain.ErrUnsupportedFormat):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrValidationFailed):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
}

func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// ---- Generate / Daily / Tournament ----

type generateReq struct {
	Difficulty string `json:"difficulty"`
	Seed       int64  `json:"seed,omitempty"`
	Day        string `json:"day,omitempty"`
	Level      int    `json:"level,omitempty"`
}

type generateResp struct {
	Puzzle     domain.Grid `json:"puzzle"`
	Solution   domain.Grid `json:"solution"`
	Seed       int64       `json:"seed"`
	Difficulty string      `json:"difficulty"`
	ClueCount  int         `json:"clueCount"`
	Symmetry   string      `json:"symmetry"`
	DurationMs int64       `json:"durationMs"`
	Nodes      int         `json:"nodes"`
}

func decodeGenerateReq(w http.ResponseWriter, r *http.Request) (generateReq, domain.Difficulty, bool) {
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return req, 0, false
	}
	diff, err := domain.ParseDifficulty(req.Difficulty)
	if err != nil {
		writeErr(w, err)
		return req, 0, false
	}
	return req, diff, true
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	req, diff, ok := decodeGenerateReq(w, r)
	if !ok {
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano() // unseeded convenience path only
	}
	p, st, err := h.UC.Generate(r.Context(), diff, seed)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeGenerated(w, p, st.Duration.Milliseconds(), st.Nodes)
}

func (h *Handler) handleDaily(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	req, diff, ok := decodeGenerateReq(w, r)
	if !ok {
		return
	}
	day := req.Day
	if day == "" {
		day = time.Now().UTC().Format("2006-01-02")
	}
	p, st, err := h.UC.Daily(r.Context(), day, diff)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeGenerated(w, p, st.Duration.Milliseconds(), st.Nodes)
}

func (h *Handler) handleTournament(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	req, diff, ok := decodeGenerateReq(w, r)
	if !ok {
		return
	}
	p, st, err := h.UC.Tournament(r.Context(), req.Seed, req.Level, diff)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeGenerated(w, p, st.Duration.Milliseconds(), st.Nodes)
}

func writeGenerated(w http.ResponseWriter, p *domain.PuzzleResult, ms int64, nodes int) {
	writeJSON(w, http.StatusOK, generateResp{
		Puzzle:     p.Puzzle,
		Solution:   p.Solution,
		Seed:       p.Seed,
		Difficulty: p.Difficulty.String(),
		ClueCount:  p.ClueCount,
		Symmetry:   p.Symmetry.String(),
		DurationMs: ms,
		Nodes:      nodes,
	})
}

// ---- Solve ----

type gridReq struct {
	Grid domain.Grid `json:"grid"`
}

type solveResp struct {
	Grid       domain.Grid `json:"grid"`
	DurationMs int64       `json:"durationMs"`
	Nodes      int         `json:"nodes"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req gridReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	out, st, err := h.UC.Solve(r.Context(), &req.Grid)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, solveResp{Grid: *out, DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
}

// ---- Validate ----

type validateResp struct {
	OK        bool              `json:"ok"`
	Conflicts []domain.Position `json:"conflicts,omitempty"`
	Unique    *bool             `json:"unique,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req struct {
		Grid        domain.Grid `json:"grid"`
		CheckUnique bool        `json:"checkUnique,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), &req.Grid)
	if err != nil {
		writeErr(w, err)
		return
	}
	resp := validateResp{OK: ok, Conflicts: conflicts}
	if req.CheckUnique && ok {
		unique, _, err := h.UC.Unique(r.Context(), &req.Grid)
		if err != nil {
			writeErr(w, err)
			return
		}
		resp.Unique = &unique
	}
	writeJSON(w, http.StatusOK, resp)
}

// ---- Hint ----

type hintReq struct {
	Grid    domain.Grid `json:"grid"`
	MaxTier string      `json:"maxTier,omitempty"`
}

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
}

func parseTier(s string) domain.StrategyTier {
	switch s {
	case "pairs":
		return domain.StrategyPairs
	case "advanced":
		return domain.StrategyAdvanced
	case "xwing":
		return domain.StrategyXWing
	default:
		return domain.StrategySingles
	}
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req hintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	hh, ok, err := h.UC.Hint(r.Context(), &req.Grid, parseTier(req.MaxTier))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hintResp{Found: ok, Hint: hh})
}

// ---- Export / Import ----

type exportReq struct {
	Payload codec.Payload `json:"payload"`
	Format  string        `json:"format"`
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req exportReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	data, err := h.UC.Export(&req.Payload, codec.Format(req.Format))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"data": string(data)})
}

type importReq struct {
	Data   string `json:"data"`
	Format string `json:"format"`
}

func (h *Handler) handleImport(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req importReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	p, err := h.UC.Import(r.Context(), []byte(req.Data), codec.Format(req.Format))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// ---- Save / Load / List ----

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var p domain.PuzzleResult
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if p.GeneratedAt.IsZero() {
		p.GeneratedAt = time.Now().UTC()
	}
	if err := h.UC.Save(r.Context(), &p); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": p.ID})
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON or missing id"})
		return
	}
	p, err := h.UC.Load(r.Context(), req.ID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	ps, err := h.UC.List(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"puzzles": ps})
}
