/*
compatibility.go - Pairwise balance scoring (궁합)

SCORING (base 50):
  1. Complement   +3 per element with |A-B| > 20
  2. 상생 pairs    +5 per pair (목화 화토 토금 금수 수목) where either A[x]>25 and
                  B[y]>25 or A[y]>25 and B[x]>25
  3. 상극 pairs    -3 per pair (목토 토수 수화 화금 금목) where A[x]>30 and
                  B[y]>30. Directional: the reverse is not checked, so
                  Score(A,B) and Score(B,A) can differ.
  4. Similarity   + round(Σ(100-|A-B|) / 500 * 20)
  5. Clamp to [40, 99]
*/
package saju

import "fmt"

const (
	baseScore       = 50
	minScore        = 40
	maxScore        = 99
	complementDiff  = 20
	complementBonus = 3
	generatingMin   = 25
	generatingBonus = 5
	overcomingMin   = 30
	overcomingCost  = 3
	similarityScale = 20
)

type elementPair struct{ from, to Element }

// 상생: each element feeds the next.
var generatingPairs = [5]elementPair{
	{Wood, Fire}, {Fire, Earth}, {Earth, Metal}, {Metal, Water}, {Water, Wood},
}

// 상극: each element restrains the one two steps ahead.
var overcomingPairs = [5]elementPair{
	{Wood, Earth}, {Earth, Water}, {Water, Fire}, {Fire, Metal}, {Metal, Wood},
}

// FallbackDetail is emitted when no rule produced a detail.
const FallbackDetail = "서로 다른 오행 에너지를 가지고 있어요"

// CalculateCompatibility scores balance a against balance b. The result
// is not symmetric in its arguments.
func CalculateCompatibility(a, b ElementBalance) CompatibilityResult {
	score := baseScore
	var details []string

	for _, el := range Elements {
		if abs(a[el]-b[el]) > complementDiff {
			stronger := "둘째"
			if a[el] > b[el] {
				stronger = "첫째"
			}
			score += complementBonus
			details = append(details, fmt.Sprintf("%s %s(%s) 기운을 %s가 보완해줌",
				el.Emoji(), el, el.Hanja(), stronger))
		}
	}

	for _, p := range generatingPairs {
		if (a[p.from] > generatingMin && b[p.to] > generatingMin) ||
			(a[p.to] > generatingMin && b[p.from] > generatingMin) {
			score += generatingBonus
			details = append(details, fmt.Sprintf("%s→%s 상생: %s이 %s를 도와줌",
				p.from.Emoji(), p.to.Emoji(), p.from, p.to))
		}
	}

	for _, p := range overcomingPairs {
		if a[p.from] > overcomingMin && b[p.to] > overcomingMin {
			score -= overcomingCost
			details = append(details, fmt.Sprintf("%s⚡%s 상극: 의견 충돌 가능성",
				p.from.Emoji(), p.to.Emoji()))
		}
	}

	score += SimilarityBonus(a, b)
	score = min(maxScore, max(minScore, score))

	if len(details) == 0 {
		details = append(details, FallbackDetail)
	}

	return CompatibilityResult{
		Score:       score,
		Description: CompatibilityDescription(score),
		Details:     details,
	}
}

// SimilarityBonus is round(Σ(100-|a-b|)/500 * 20), in [0,20].
func SimilarityBonus(a, b ElementBalance) int {
	sum := 0
	for _, el := range Elements {
		sum += 100 - abs(a[el]-b[el])
	}
	// sum*20/500 = sum/25, rounded half up
	return floorDiv(2*sum+25, 50)
}

// CompatibilityDescription returns the band text for a score.
func CompatibilityDescription(score int) string {
	switch {
	case score >= 90:
		return "천생연분! 서로의 부족한 기운을 완벽히 채워주는 환상의 궁합"
	case score >= 80:
		return "아주 좋은 궁합! 함께하면 시너지가 폭발하는 사이"
	case score >= 70:
		return "좋은 궁합! 서로 다른 매력으로 끌리는 관계"
	case score >= 60:
		return "무난한 궁합! 노력하면 좋은 파트너가 될 수 있어요"
	case score >= 50:
		return "보통 궁합! 서로 이해하려는 노력이 필요해요"
	default:
		return "도전적인 궁합! 다름을 인정하면 성장의 기회가 될 수 있어요"
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
