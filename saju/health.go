package saju

import "time"

// =============================================================================
// HEALTH PROFILE
// =============================================================================

// Year fortune texts (세운).
const (
	FortuneFavorable = "올해는 부족한 기운이 채워지는 행운의 해! 적극적으로 도전하세요."
	FortuneCaution   = "올해는 본래 강한 기운이 더 강해져요. 과욕은 금물, 균형이 중요합니다."
	FortuneNeutral   = "올해는 안정적인 흐름이에요. 꾸준한 건강관리가 빛을 발합니다."
)

// BuildHealthProfile derives the health profile of a balance as seen from
// evaluationYear. The lucky element (용신) is the weakest element.
func BuildHealthProfile(b ElementBalance, evaluationYear int) HealthProfile {
	dominant := b.Dominant()
	weak := b.Weakest()
	lucky := weak

	return HealthProfile{
		Constitution:    DeriveConstitution(b),
		DominantElement: dominant,
		WeakElement:     weak,
		StrongOrgan:     dominant.Organ().Primary,
		WeakOrgan:       weak.Organ().Primary,
		YearFortune:     YearFortune(evaluationYear, dominant, lucky),
		LuckyElement:    lucky,
		EvaluationYear:  evaluationYear,
	}
}

// YearFortune compares the evaluation year's stem and branch elements to
// the lucky and dominant elements. Only the stem is checked against the
// dominant element.
func YearFortune(year int, dominant, lucky Element) string {
	p := YearPillarOf(year)
	stemEl, branchEl := p.Stem.Element(), p.Branch.Element()

	switch {
	case stemEl == lucky || branchEl == lucky:
		return FortuneFavorable
	case stemEl == dominant:
		return FortuneCaution
	default:
		return FortuneNeutral
	}
}

// CurrentYear returns the local calendar year. Entry points that take no
// explicit evaluation year use it as their default.
func CurrentYear() int { return time.Now().Year() }
