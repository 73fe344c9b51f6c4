package saju

import "fmt"

// =============================================================================
// ANALYSIS ENTRY POINTS
// =============================================================================

// AnalyzeProfile computes chart, balance and health profile in one call,
// evaluating the year fortune for the current calendar year.
func AnalyzeProfile(birthDate string, birthHour *int) (Analysis, error) {
	return AnalyzeProfileForYear(birthDate, birthHour, CurrentYear())
}

// AnalyzeProfileForYear is AnalyzeProfile with an explicit evaluation year.
func AnalyzeProfileForYear(birthDate string, birthHour *int, evaluationYear int) (Analysis, error) {
	return analyze(birthDate, birthHour, evaluationYear, MethodRoundToMax)
}

func analyze(birthDate string, birthHour *int, year int, method ApportionMethod) (Analysis, error) {
	chart, err := CalculateSaju(birthDate, birthHour)
	if err != nil {
		return Analysis{}, err
	}
	balance := elementBalance(chart, method)
	return Analysis{
		Chart:   chart,
		Balance: balance,
		Health:  BuildHealthProfile(balance, year),
	}, nil
}

// =============================================================================
// ENGINE - Configured entry points
// =============================================================================

// EngineConfig configures an Engine. The zero value reproduces the
// package-level functions.
type EngineConfig struct {
	// EvaluationYear fixes the year used for year fortunes. Zero means the
	// current year at call time.
	EvaluationYear int

	// Apportionment selects the percentage allocator ("round_max" or
	// "largest_remainder"). Empty means round_max.
	Apportionment string
}

// Engine is an immutable, configured analyzer. It is safe for concurrent use.
type Engine struct {
	evaluationYear int
	method         ApportionMethod
}

// NewEngine validates cfg and returns an Engine.
func NewEngine(cfg EngineConfig) (*Engine, error) {
	if cfg.EvaluationYear < 0 {
		return nil, fmt.Errorf("invalid evaluation year %d", cfg.EvaluationYear)
	}
	method, err := ParseApportionMethod(cfg.Apportionment)
	if err != nil {
		return nil, err
	}
	return &Engine{evaluationYear: cfg.EvaluationYear, method: method}, nil
}

// EvaluationYear returns the configured year, or the current year if none.
func (e *Engine) EvaluationYear() int {
	if e.evaluationYear == 0 {
		return CurrentYear()
	}
	return e.evaluationYear
}

// Method returns the configured allocator.
func (e *Engine) Method() ApportionMethod { return e.method }

// Analyze is AnalyzeProfile using the engine's configuration.
func (e *Engine) Analyze(birthDate string, birthHour *int) (Analysis, error) {
	return analyze(birthDate, birthHour, e.EvaluationYear(), e.method)
}

// AnalyzeForYear overrides the evaluation year for a single call.
func (e *Engine) AnalyzeForYear(birthDate string, birthHour *int, year int) (Analysis, error) {
	return analyze(birthDate, birthHour, year, e.method)
}

// Balance computes a chart's balance with the engine's allocator.
func (e *Engine) Balance(c Chart) ElementBalance {
	return elementBalance(c, e.method)
}

// Constitution is a shortcut for the constitution of a birth date.
func (e *Engine) Constitution(birthDate string, birthHour *int) (ConstitutionType, error) {
	chart, err := CalculateSaju(birthDate, birthHour)
	if err != nil {
		return "", err
	}
	return DeriveConstitution(e.Balance(chart)), nil
}

// =============================================================================
// AGE
// =============================================================================

// Age returns the international age (만 나이) on today.
func Age(birth, today Date) int {
	age := today.Year - birth.Year
	if today.Month < birth.Month || (today.Month == birth.Month && today.Day < birth.Day) {
		age--
	}
	return age
}

// KoreanAge returns the traditional counting age (세는 나이) in today's year.
func KoreanAge(birth, today Date) int {
	return today.Year - birth.Year + 1
}
