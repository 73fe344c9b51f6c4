/*
Package saju provides the four-pillar (사주) calculation engine.

PURPOSE:
  Converts a birth date (and optional birth hour) into the sexagenary
  year/month/day/hour pillars, aggregates those pillars into a five-element
  (오행) balance, and derives a constitution type, a health profile and
  pairwise compatibility from that balance.

KEY CONCEPTS IN THIS FILE (types.go):
  - Element: One of the five elements, in the fixed order 목 화 토 금 수
  - Stem / Branch: Indices into the 10 heavenly stems and 12 earthly branches
  - Pillar: A (stem, branch) pair
  - Chart: The four pillars of one birth moment
  - ElementBalance: Integer percentages per element, always summing to 100

DESIGN PRINCIPLES:
  1. Purity: No I/O, no clocks, no shared mutable state. Every exported
     function returns the same output for the same input and is safe for
     concurrent use.
  2. Exhaustive tables: Every index maps to exactly one element through a
     fixed array or an exhaustive switch on a typed enum.
  3. Precision: Pillar weights and constitution coefficients use
     decimal.Decimal; percentages are allocated with integer arithmetic.
  4. Eager validation: Malformed dates and out-of-range hours are rejected
     at the entry points (CalculateSaju, AnalyzeProfile, Engine).

USAGE:
  chart, err := saju.CalculateSaju("1990-01-01", saju.Hour(14))
  balance := saju.ElementBalanceOf(chart)
  health := saju.BuildHealthProfile(balance, 2026)

SEE ALSO:
  - pillar.go: Pillar arithmetic
  - balance.go: Weighted aggregation and percentage allocation
  - compatibility.go: Pairwise scoring
*/
package saju

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// =============================================================================
// ELEMENT - The five elements (오행)
// =============================================================================

// Element is one of the five elements. The zero value is Wood.
type Element int

const (
	Wood  Element = iota // 목
	Fire                 // 화
	Earth                // 토
	Metal                // 금
	Water                // 수
)

// NumElements is the number of elements.
const NumElements = 5

// Elements lists all elements in iteration order. Every tie-break in the
// engine that refers to "element order" uses this order.
var Elements = [NumElements]Element{Wood, Fire, Earth, Metal, Water}

// String returns the Korean syllable (목, 화, 토, 금, 수).
func (e Element) String() string {
	switch e {
	case Wood:
		return "목"
	case Fire:
		return "화"
	case Earth:
		return "토"
	case Metal:
		return "금"
	case Water:
		return "수"
	}
	return fmt.Sprintf("Element(%d)", int(e))
}

// Hanja returns the element's Chinese character.
func (e Element) Hanja() string {
	switch e {
	case Wood:
		return "木"
	case Fire:
		return "火"
	case Earth:
		return "土"
	case Metal:
		return "金"
	case Water:
		return "水"
	}
	return ""
}

// Name returns the display name, e.g. "木 (나무)".
func (e Element) Name() string {
	switch e {
	case Wood:
		return "木 (나무)"
	case Fire:
		return "火 (불)"
	case Earth:
		return "土 (흙)"
	case Metal:
		return "金 (쇠)"
	case Water:
		return "水 (물)"
	}
	return ""
}

// Color returns the element's foreground hex color.
func (e Element) Color() string {
	switch e {
	case Wood:
		return "#22c55e"
	case Fire:
		return "#ef4444"
	case Earth:
		return "#eab308"
	case Metal:
		return "#f8fafc"
	case Water:
		return "#3b82f6"
	}
	return ""
}

// Background returns the element's background hex color.
func (e Element) Background() string {
	switch e {
	case Wood:
		return "#dcfce7"
	case Fire:
		return "#fee2e2"
	case Earth:
		return "#fef9c3"
	case Metal:
		return "#f1f5f9"
	case Water:
		return "#dbeafe"
	}
	return ""
}

// Emoji returns the element's emoji.
func (e Element) Emoji() string {
	switch e {
	case Wood:
		return "🌳"
	case Fire:
		return "🔥"
	case Earth:
		return "⛰️"
	case Metal:
		return "⚔️"
	case Water:
		return "💧"
	}
	return ""
}

// Valid reports whether e is one of the five elements.
func (e Element) Valid() bool { return e >= Wood && e <= Water }

// ParseElement accepts the Korean syllable or the hanja.
func ParseElement(s string) (Element, error) {
	for _, e := range Elements {
		if s == e.String() || s == e.Hanja() {
			return e, nil
		}
	}
	return 0, fmt.Errorf("unknown element %q", s)
}

func (e Element) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("invalid element %d", int(e))
	}
	return []byte(e.String()), nil
}

func (e *Element) UnmarshalText(b []byte) error {
	parsed, err := ParseElement(string(b))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// =============================================================================
// PILLAR - Stem/branch pair
// =============================================================================

// Stem is an index into the ten heavenly stems (천간), 0 = 갑.
type Stem int

// Branch is an index into the twelve earthly branches (지지), 0 = 자.
type Branch int

const (
	NumStems    = 10
	NumBranches = 12
)

// Pillar is one (stem, branch) unit of a chart.
type Pillar struct {
	Stem   Stem   `json:"stem"`
	Branch Branch `json:"branch"`
}

// Chart is the full four-pillar result. Hour is nil when no birth hour
// was supplied.
type Chart struct {
	Year        Pillar  `json:"year"`
	Month       Pillar  `json:"month"`
	Day         Pillar  `json:"day"`
	Hour        *Pillar `json:"hour"`
	Zodiac      string  `json:"zodiac"`
	ZodiacEmoji string  `json:"zodiac_emoji"`
}

// Pillars returns the present pillars in year, month, day, hour order.
func (c Chart) Pillars() []Pillar {
	ps := []Pillar{c.Year, c.Month, c.Day}
	if c.Hour != nil {
		ps = append(ps, *c.Hour)
	}
	return ps
}

// =============================================================================
// ELEMENT BALANCE - Percentages per element
// =============================================================================

// ElementBalance holds one integer percentage per element, indexed by
// Element. Balances produced by the engine always sum to 100.
//
//	b := saju.ElementBalance{saju.Fire: 100}
type ElementBalance [NumElements]int

// Of returns the value for e.
func (b ElementBalance) Of(e Element) int { return b[e] }

// Sum returns the total across all elements.
func (b ElementBalance) Sum() int {
	total := 0
	for _, v := range b {
		total += v
	}
	return total
}

// Valid reports whether every value is non-negative and the total is 100.
func (b ElementBalance) Valid() bool {
	for _, v := range b {
		if v < 0 {
			return false
		}
	}
	return b.Sum() == 100
}

// Dominant returns the first element (in element order) holding the
// maximum value.
func (b ElementBalance) Dominant() Element {
	best := Wood
	for _, e := range Elements[1:] {
		if b[e] > b[best] {
			best = e
		}
	}
	return best
}

// Weakest returns the last element (in element order) holding the
// minimum value. This matches taking the tail of a stable descending sort.
func (b ElementBalance) Weakest() Element {
	worst := Wood
	for _, e := range Elements[1:] {
		if b[e] <= b[worst] {
			worst = e
		}
	}
	return worst
}

// MarshalJSON renders the balance as an object keyed by element syllable,
// in element order: {"목":20,"화":20,"토":20,"금":20,"수":20}.
func (b ElementBalance) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range Elements {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%q:%d", e.String(), b[e])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts an object keyed by element syllable or hanja.
// Missing elements are zero.
func (b *ElementBalance) UnmarshalJSON(data []byte) error {
	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var out ElementBalance
	for k, v := range raw {
		e, err := ParseElement(k)
		if err != nil {
			return err
		}
		out[e] = v
	}
	*b = out
	return nil
}

// =============================================================================
// CONSTITUTION - Four-type classification (사상체질)
// =============================================================================

// ConstitutionType is one of the four Sasang constitutions.
type ConstitutionType string

const (
	Taeyang ConstitutionType = "taeyang" // 태양인
	Soyang  ConstitutionType = "soyang"  // 소양인
	Taeeum  ConstitutionType = "taeeum"  // 태음인
	Soeum   ConstitutionType = "soeum"   // 소음인
)

// ConstitutionTypes lists the four types in tie-break order.
var ConstitutionTypes = [4]ConstitutionType{Taeyang, Soyang, Taeeum, Soeum}

// Valid reports whether c is one of the four types.
func (c ConstitutionType) Valid() bool {
	switch c {
	case Taeyang, Soyang, Taeeum, Soeum:
		return true
	}
	return false
}

// Korean returns the Korean name, e.g. 태양인.
func (c ConstitutionType) Korean() string {
	switch c {
	case Taeyang:
		return "태양인"
	case Soyang:
		return "소양인"
	case Taeeum:
		return "태음인"
	case Soeum:
		return "소음인"
	}
	return ""
}

// ConstitutionCode is the single-letter code used in rosters.
type ConstitutionCode string

const (
	CodeTaeyang ConstitutionCode = "T"
	CodeTaeeum  ConstitutionCode = "E"
	CodeSoyang  ConstitutionCode = "S"
	CodeSoeum   ConstitutionCode = "U"
)

// Code returns the roster code for c.
func (c ConstitutionType) Code() ConstitutionCode {
	switch c {
	case Taeyang:
		return CodeTaeyang
	case Soyang:
		return CodeSoyang
	case Taeeum:
		return CodeTaeeum
	case Soeum:
		return CodeSoeum
	}
	return ""
}

// Type maps a roster code back to its constitution.
func (c ConstitutionCode) Type() (ConstitutionType, bool) {
	switch c {
	case CodeTaeyang:
		return Taeyang, true
	case CodeSoyang:
		return Soyang, true
	case CodeTaeeum:
		return Taeeum, true
	case CodeSoeum:
		return Soeum, true
	}
	return "", false
}

// ParseConstitution accepts either the type name or the roster code.
func ParseConstitution(s string) (ConstitutionType, error) {
	if c := ConstitutionType(s); c.Valid() {
		return c, nil
	}
	if c, ok := ConstitutionCode(s).Type(); ok {
		return c, nil
	}
	return "", fmt.Errorf("unknown constitution %q", s)
}

// =============================================================================
// RESULTS
// =============================================================================

// HealthProfile is derived from a balance for a given evaluation year.
type HealthProfile struct {
	Constitution    ConstitutionType `json:"constitution"`
	DominantElement Element          `json:"dominant_element"`
	WeakElement     Element          `json:"weak_element"`
	StrongOrgan     string           `json:"strong_organ"`
	WeakOrgan       string           `json:"weak_organ"`
	YearFortune     string           `json:"year_fortune"`
	LuckyElement    Element          `json:"lucky_element"`
	EvaluationYear  int              `json:"evaluation_year"`
}

// CompatibilityResult is the outcome of scoring two balances.
type CompatibilityResult struct {
	Score       int      `json:"score"`
	Description string   `json:"description"`
	Details     []string `json:"details"`
}

// Analysis bundles a chart with its balance and health profile.
type Analysis struct {
	Chart   Chart          `json:"saju"`
	Balance ElementBalance `json:"balance"`
	Health  HealthProfile  `json:"health"`
}
