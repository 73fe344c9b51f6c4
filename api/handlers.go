/*
handlers.go - HTTP API handlers for the saju engine

PURPOSE:
  Exposes the five-element engine and the saved profile store via REST
  API. Handles HTTP request/response, JSON serialization, validation, and
  delegates to the engine.

ENDPOINTS:
  Engine:
    GET    /api/health                       Liveness + evaluation year
    POST   /api/analyze                      Full analysis of a birth date
    POST   /api/compatibility                Score two birth dates

  Constitutions:
    GET    /api/constitutions                Catalog
    GET    /api/constitutions/{type}         One entry (name or code)

  Profiles:
    GET    /api/profiles                     List (?constitution=soeum)
    POST   /api/profiles                     Create, computing constitution
    GET    /api/profiles/stats               Count per constitution
    GET    /api/profiles/{id}                Get
    GET    /api/profiles/{id}/analysis       Analysis of a saved profile
    DELETE /api/profiles/{id}                Delete
    POST   /api/roster                       Import a YAML roster body

  Samples:
    GET    /api/samples                      List demo rosters
    GET    /api/samples/current              Last loaded sample
    POST   /api/samples/load                 Reset and load a sample
    POST   /api/samples/reset                Reset database

ARCHITECTURE:
  Handler struct holds all dependencies:
  - Store:  Saved profiles
  - Engine: Configured analyzer (evaluation year, allocator)
  - Logger: zap logger for server-side failures

REQUEST FLOW:
  1. Decode JSON body
  2. Validate struct tags
  3. Call the engine
  4. Serialize response

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid dates/hours
  - 404: Unknown profile, constitution or sample
  - 500: Internal errors (logged)

SECURITY NOTE:
  No authentication or authorization. All endpoints are public.

SEE ALSO:
  - dto.go: Request/response data structures
  - samples.go: Demo roster loaders
  - server.go: Router setup and middleware
*/
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/warp/saju-engine/roster"
	"github.com/warp/saju-engine/saju"
	"github.com/warp/saju-engine/sasang"
	"github.com/warp/saju-engine/store/sqlite"
)

// maxBodyBytes bounds JSON and roster request bodies.
const maxBodyBytes = 1 << 20

// defaultSubject names the reader when an analysis request has no name.
const defaultSubject = "당신"

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store  *sqlite.Store
	Engine *saju.Engine
	Logger *zap.Logger

	validate *validator.Validate

	mu            sync.RWMutex
	currentSample string
}

// NewHandler creates a new handler. A nil logger discards logs.
func NewHandler(store *sqlite.Store, engine *saju.Engine, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Store:    store,
		Engine:   engine,
		Logger:   logger,
		validate: newValidator(),
	}
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Health reports liveness and the year used for fortunes.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":          "ok",
		"evaluation_year": h.Engine.EvaluationYear(),
		"apportionment":   string(h.Engine.Method()),
	})
}

// =============================================================================
// ENGINE HANDLERS
// =============================================================================

// Analyze returns the chart, balance, health profile and fun facts.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	year := req.EvaluationYear
	if year == 0 {
		year = h.Engine.EvaluationYear()
	}

	a, err := h.Engine.AnalyzeForYear(req.BirthDate, req.BirthHour, year)
	if err != nil {
		h.engineError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAnalysisDTO(a, req.Name))
}

// Compatibility scores A against B. The order matters.
func (h *Handler) Compatibility(w http.ResponseWriter, r *http.Request) {
	var req CompatibilityRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	a, err := h.Engine.Analyze(req.A.BirthDate, req.A.BirthHour)
	if err != nil {
		h.engineError(w, r, fmt.Errorf("a: %w", err))
		return
	}
	b, err := h.Engine.Analyze(req.B.BirthDate, req.B.BirthHour)
	if err != nil {
		h.engineError(w, r, fmt.Errorf("b: %w", err))
		return
	}

	res := saju.CalculateCompatibility(a.Balance, b.Balance)
	ca, cb := a.Health.Constitution, b.Health.Constitution

	writeJSON(w, http.StatusOK, CompatibilityResponse{
		Score:            res.Score,
		Description:      res.Description,
		Details:          res.Details,
		ConstitutionPair: sasang.PairDescription(ca, cb),
		FunPoints:        sasang.FunPoints(ca, cb),
		A:                toAnalysisDTO(a, "첫째"),
		B:                toAnalysisDTO(b, "둘째"),
	})
}

func toAnalysisDTO(a saju.Analysis, name string) AnalysisDTO {
	if name == "" {
		name = defaultSubject
	}
	c := a.Health.Constitution
	dto := AnalysisDTO{
		Saju:             toChartDTO(a.Chart),
		Balance:          a.Balance,
		Health:           a.Health,
		ConstitutionName: c.Korean(),
		ConstitutionCode: string(c.Code()),
		FunFacts:         saju.FunFacts(c, a.Balance, name),
		Evidence:         saju.ConstitutionEvidence(c, name),
	}
	if info, ok := sasang.Get(c); ok {
		dto.Nickname = info.Nickname
	}
	return dto
}

// =============================================================================
// CONSTITUTION HANDLERS
// =============================================================================

// ListConstitutions returns the full catalog.
func (h *Handler) ListConstitutions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sasang.All())
}

// GetConstitution returns one catalog entry by name or code.
func (h *Handler) GetConstitution(w http.ResponseWriter, r *http.Request) {
	info, err := sasang.Lookup(chi.URLParam(r, "type"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Constitution not found", err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// =============================================================================
// PROFILE HANDLERS
// =============================================================================

// ListProfiles returns saved profiles, optionally filtered by constitution.
func (h *Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	var (
		profiles []sqlite.Profile
		err      error
	)

	if filter := r.URL.Query().Get("constitution"); filter != "" {
		c, perr := saju.ParseConstitution(filter)
		if perr != nil {
			writeError(w, http.StatusBadRequest, "Invalid constitution filter", perr)
			return
		}
		profiles, err = h.Store.ListByConstitution(r.Context(), c)
	} else {
		profiles, err = h.Store.ListProfiles(r.Context())
	}
	if err != nil {
		h.serverError(w, r, "Failed to list profiles", err)
		return
	}

	dtos := make([]ProfileDTO, len(profiles))
	for i, p := range profiles {
		dtos[i] = toProfileDTO(p)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// ProfileStats counts saved profiles per constitution.
func (h *Handler) ProfileStats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Store.CountByConstitution(r.Context())
	if err != nil {
		h.serverError(w, r, "Failed to count profiles", err)
		return
	}

	stats := ProfileStatsDTO{Counts: make(map[string]int, len(counts))}
	for c, n := range counts {
		stats.Counts[string(c)] = n
		stats.Total += n
	}
	writeJSON(w, http.StatusOK, stats)
}

// GetProfile returns a single profile.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	p, ok := h.loadProfile(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toProfileDTO(*p))
}

// GetProfileAnalysis analyzes a saved profile with the handler's engine.
func (h *Handler) GetProfileAnalysis(w http.ResponseWriter, r *http.Request) {
	p, ok := h.loadProfile(w, r)
	if !ok {
		return
	}

	a, err := h.Engine.Analyze(p.BirthDate, p.BirthHour)
	if err != nil {
		// Stored rows were validated on the way in.
		h.serverError(w, r, "Failed to analyze profile", err)
		return
	}
	writeJSON(w, http.StatusOK, toAnalysisDTO(a, p.Name))
}

// CreateProfile computes the constitution and saves the profile.
func (h *Handler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var req CreateProfileRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	c, err := h.Engine.Constitution(req.BirthDate, req.BirthHour)
	if err != nil {
		h.engineError(w, r, err)
		return
	}

	p := sqlite.Profile{
		ID:           req.ID,
		Name:         req.Name,
		Category:     req.Category,
		BirthDate:    req.BirthDate,
		BirthHour:    req.BirthHour,
		Constitution: c,
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	if err := h.Store.SaveProfile(r.Context(), p); err != nil {
		h.serverError(w, r, "Failed to create profile", err)
		return
	}

	saved, err := h.Store.GetProfile(r.Context(), p.ID)
	if err != nil || saved == nil {
		h.serverError(w, r, "Failed to reload profile", err)
		return
	}
	writeJSON(w, http.StatusCreated, toProfileDTO(*saved))
}

// DeleteProfile removes a profile.
func (h *Handler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	removed, err := h.Store.DeleteProfile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.serverError(w, r, "Failed to delete profile", err)
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "Profile not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ImportRoster saves every profile of a YAML roster body.
func (h *Handler) ImportRoster(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read roster body", err)
		return
	}

	parsed, err := roster.Parse(body)
	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, "Invalid roster", "invalid_roster", err)
		return
	}

	resp, err := h.importRoster(r.Context(), parsed)
	if err != nil {
		h.serverError(w, r, "Failed to import roster", err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) importRoster(ctx context.Context, parsed *roster.Roster) (*RosterImportResponse, error) {
	computed, err := roster.Compute(parsed, h.Engine)
	if err != nil {
		return nil, err
	}

	profiles := make([]sqlite.Profile, len(computed))
	for i, c := range computed {
		profiles[i] = sqlite.Profile{
			ID:           c.ID,
			Name:         c.Name,
			Category:     c.Category,
			BirthDate:    c.BirthDate,
			BirthHour:    c.BirthHour,
			Constitution: c.Constitution,
		}
	}
	if err := h.Store.SaveProfiles(ctx, profiles); err != nil {
		return nil, err
	}

	h.Logger.Info("roster imported",
		zap.Int("imported", len(profiles)),
		zap.Int("duplicates", parsed.Duplicates),
	)

	resp := &RosterImportResponse{
		Imported:   len(profiles),
		Duplicates: parsed.Duplicates,
		Profiles:   make([]ProfileDTO, len(profiles)),
	}
	for i, p := range profiles {
		resp.Profiles[i] = toProfileDTO(p)
	}
	return resp, nil
}

// ResetDatabase clears all profiles.
func (h *Handler) ResetDatabase(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Reset(r.Context()); err != nil {
		h.serverError(w, r, "Failed to reset database", err)
		return
	}

	h.mu.Lock()
	h.currentSample = ""
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) loadProfile(w http.ResponseWriter, r *http.Request) (*sqlite.Profile, bool) {
	p, err := h.Store.GetProfile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.serverError(w, r, "Failed to get profile", err)
		return nil, false
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "Profile not found", nil)
		return nil, false
	}
	return p, true
}

// =============================================================================
// HELPERS
// =============================================================================

// decodeAndValidate writes a 400 and returns false when the body is not
// valid JSON for v or fails v's validation tags.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return false
	}

	if err := h.validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
			writeJSON(w, http.StatusBadRequest, ErrorResponse{
				Error:   "Validation failed",
				Code:    "validation_failed",
				Details: fields,
			})
			return false
		}
		writeError(w, http.StatusBadRequest, "Validation failed", err)
		return false
	}
	return true
}

// engineError maps engine failures: bad input is 400, anything else 500.
func (h *Handler) engineError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, saju.ErrInvalidDateFormat):
		writeErrorCode(w, http.StatusBadRequest, "Invalid birth_date (use YYYY-MM-DD)", "invalid_date", err)
	case errors.Is(err, saju.ErrOutOfRangeHour):
		writeErrorCode(w, http.StatusBadRequest, "Invalid birth_hour (use 0-23)", "invalid_hour", err)
	default:
		h.serverError(w, r, "Analysis failed", err)
	}
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, message string, err error) {
	h.Logger.Error(message,
		zap.Error(err),
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.String("path", r.URL.Path),
	)
	writeError(w, http.StatusInternalServerError, message, err)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	writeErrorCode(w, status, message, "", err)
}

func writeErrorCode(w http.ResponseWriter, status int, message, code string, err error) {
	resp := ErrorResponse{Error: message, Code: code}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
