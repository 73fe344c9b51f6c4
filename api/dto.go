/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's value types from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

TYPES:
  Analysis:
    BirthInput, AnalyzeRequest, AnalysisDTO, ChartDTO, PillarDTO

  Compatibility:
    CompatibilityRequest, CompatibilityResponse

  Profiles:
    ProfileDTO, CreateProfileRequest, ProfileStatsDTO, RosterImportResponse

  Samples:
    SampleDTO, LoadSampleRequest

VALIDATION:
  Request types carry go-playground/validator tags. Handlers run them
  before calling the engine, which then applies its own calendar checks.

SEE ALSO:
  - handlers.go: Uses these types
  - saju/types.go: Engine value types embedded in responses
*/
package api

import (
	"time"

	"github.com/warp/saju-engine/saju"
	"github.com/warp/saju-engine/store/sqlite"
)

// =============================================================================
// ANALYSIS
// =============================================================================

// BirthInput is a birth date with an optional hour.
type BirthInput struct {
	BirthDate string `json:"birth_date" validate:"required"`
	BirthHour *int   `json:"birth_hour,omitempty" validate:"omitempty,min=0,max=23"`
}

// AnalyzeRequest asks for a full analysis. Name personalizes the fun facts.
type AnalyzeRequest struct {
	BirthInput
	Name           string `json:"name,omitempty" validate:"max=200"`
	EvaluationYear int    `json:"evaluation_year,omitempty" validate:"omitempty,min=1,max=9999"`
}

// PillarDTO is one pillar with its display forms.
type PillarDTO struct {
	Stem     int             `json:"stem"`
	Branch   int             `json:"branch"`
	Text     string          `json:"text"`
	Hanja    string          `json:"hanja"`
	Elements [2]saju.Element `json:"elements"`
	Colors   [2]string       `json:"colors"`
}

// ChartDTO is the four-pillar chart.
type ChartDTO struct {
	Year        PillarDTO  `json:"year"`
	Month       PillarDTO  `json:"month"`
	Day         PillarDTO  `json:"day"`
	Hour        *PillarDTO `json:"hour,omitempty"`
	Zodiac      string     `json:"zodiac"`
	ZodiacEmoji string     `json:"zodiac_emoji"`
}

// AnalysisDTO is the response for an analysis.
type AnalysisDTO struct {
	Saju             ChartDTO            `json:"saju"`
	Balance          saju.ElementBalance `json:"balance"`
	Health           saju.HealthProfile  `json:"health"`
	ConstitutionName string              `json:"constitution_name"`
	ConstitutionCode string              `json:"constitution_code"`
	Nickname         string              `json:"nickname,omitempty"`
	FunFacts         []string            `json:"fun_facts"`
	Evidence         []string            `json:"evidence"`
}

// =============================================================================
// COMPATIBILITY
// =============================================================================

// CompatibilityRequest carries the two people being compared, in order.
type CompatibilityRequest struct {
	A BirthInput `json:"a"`
	B BirthInput `json:"b"`
}

// CompatibilityResponse is the score plus both analyses.
type CompatibilityResponse struct {
	Score            int         `json:"score"`
	Description      string      `json:"description"`
	Details          []string    `json:"details"`
	ConstitutionPair string      `json:"constitution_pair"`
	FunPoints        []string    `json:"fun_points"`
	A                AnalysisDTO `json:"a"`
	B                AnalysisDTO `json:"b"`
}

// =============================================================================
// PROFILES
// =============================================================================

// ProfileDTO represents a saved profile in API responses.
type ProfileDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category,omitempty"`
	BirthDate    string `json:"birth_date"`
	BirthHour    *int   `json:"birth_hour,omitempty"`
	Constitution string `json:"constitution"`
	Code         string `json:"code"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// CreateProfileRequest is the request to save a profile. A missing ID is
// replaced by a UUID.
type CreateProfileRequest struct {
	BirthInput
	ID       string `json:"id,omitempty" validate:"omitempty,max=128"`
	Name     string `json:"name" validate:"required,max=200"`
	Category string `json:"category,omitempty" validate:"omitempty,max=64"`
}

// ProfileStatsDTO counts saved profiles per constitution.
type ProfileStatsDTO struct {
	Total  int            `json:"total"`
	Counts map[string]int `json:"counts"`
}

// RosterImportResponse reports a roster import.
type RosterImportResponse struct {
	Imported   int          `json:"imported"`
	Duplicates int          `json:"duplicates"`
	Profiles   []ProfileDTO `json:"profiles"`
}

// =============================================================================
// SAMPLES
// =============================================================================

// SampleDTO describes a built-in sample roster.
type SampleDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// LoadSampleRequest selects a sample to load.
type LoadSampleRequest struct {
	SampleID string `json:"sample_id" validate:"required"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func toPillarDTO(p saju.Pillar) PillarDTO {
	return PillarDTO{
		Stem:     int(p.Stem),
		Branch:   int(p.Branch),
		Text:     p.Format(),
		Hanja:    p.FormatHanja(),
		Elements: p.Elements(),
		Colors:   p.Colors(),
	}
}

func toChartDTO(c saju.Chart) ChartDTO {
	dto := ChartDTO{
		Year:        toPillarDTO(c.Year),
		Month:       toPillarDTO(c.Month),
		Day:         toPillarDTO(c.Day),
		Zodiac:      c.Zodiac,
		ZodiacEmoji: c.ZodiacEmoji,
	}
	if c.Hour != nil {
		h := toPillarDTO(*c.Hour)
		dto.Hour = &h
	}
	return dto
}

func toProfileDTO(p sqlite.Profile) ProfileDTO {
	dto := ProfileDTO{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		BirthDate:    p.BirthDate,
		BirthHour:    p.BirthHour,
		Constitution: string(p.Constitution),
		Code:         string(p.Constitution.Code()),
	}
	if !p.CreatedAt.IsZero() {
		dto.CreatedAt = p.CreatedAt.Format(time.RFC3339)
	}
	return dto
}
