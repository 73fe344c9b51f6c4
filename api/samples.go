/*
samples.go - Built-in sample rosters for demos

PURPOSE:
  Provides pre-built rosters that populate the database with profiles so
  the profile and compatibility endpoints can be demonstrated without
  manual data entry.

AVAILABLE SAMPLES:
  kpop:     Idol groups (BTS, BLACKPINK, NewJeans), dates only
  athletes: Korean and global athletes, dates only
  team:     Fictional team with birth hours

HOW SAMPLES WORK:
 1. Reset database (clear all profiles)
 2. Parse the embedded YAML roster (roster.Parse)
 3. Compute constitutions with the handler's engine
 4. Save all profiles in one transaction

USAGE VIA API:
  POST /api/samples/load
  {"sample_id": "kpop"}

NOTE:
  Loading a sample resets the database. Only use in development/demo
  environments.

SEE ALSO:
  - samples/*.yaml: Sample data
  - roster/roster.go: Roster format
*/
package api

import (
	"context"
	"embed"
	"fmt"
	"net/http"

	"github.com/warp/saju-engine/roster"
)

//go:embed samples/*.yaml
var sampleFiles embed.FS

var samples = []SampleDTO{
	{
		ID:          "kpop",
		Name:        "K-pop Idols",
		Description: "BTS, BLACKPINK and NewJeans members",
		Category:    "kpop",
	},
	{
		ID:          "athletes",
		Name:        "Athletes",
		Description: "Korean and global sports stars",
		Category:    "athlete",
	},
	{
		ID:          "team",
		Name:        "Demo Team",
		Description: "Five fictional teammates with birth hours",
		Category:    "team",
	},
}

func findSample(id string) (SampleDTO, bool) {
	for _, s := range samples {
		if s.ID == id {
			return s, true
		}
	}
	return SampleDTO{}, false
}

// ListSamples returns the available samples.
func (h *Handler) ListSamples(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, samples)
}

// GetCurrentSample returns the last loaded sample, if any.
func (h *Handler) GetCurrentSample(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	current := h.currentSample
	h.mu.RUnlock()

	if current == "" {
		writeJSON(w, http.StatusOK, map[string]any{"sample": nil})
		return
	}
	s, _ := findSample(current)
	writeJSON(w, http.StatusOK, map[string]any{"sample": s})
}

// LoadSample resets the database and loads a sample roster.
func (h *Handler) LoadSample(w http.ResponseWriter, r *http.Request) {
	var req LoadSampleRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	if _, ok := findSample(req.SampleID); !ok {
		writeError(w, http.StatusNotFound, "Unknown sample: "+req.SampleID, nil)
		return
	}

	resp, err := h.loadSample(r.Context(), req.SampleID)
	if err != nil {
		h.serverError(w, r, "Failed to load sample", err)
		return
	}

	h.mu.Lock()
	h.currentSample = req.SampleID
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) loadSample(ctx context.Context, id string) (*RosterImportResponse, error) {
	data, err := sampleFiles.ReadFile("samples/" + id + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("sample %s: %w", id, err)
	}
	parsed, err := roster.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("sample %s: %w", id, err)
	}

	if err := h.Store.Reset(ctx); err != nil {
		return nil, err
	}
	return h.importRoster(ctx, parsed)
}
