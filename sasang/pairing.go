package sasang

import (
	"fmt"
	"slices"
	"strings"

	"github.com/warp/saju-engine/saju"
)

const maxFunPoints = 5

// PairDescription describes how a relates to b according to a's pairing
// table. Like the catalog itself, it is not symmetric.
func PairDescription(a, b saju.ConstitutionType) string {
	ca, cb := catalog[a], catalog[b]

	switch b {
	case ca.Compatibility.Best:
		return fmt.Sprintf("%s과 %s은 최고의 궁합! 서로의 부족한 기운을 완벽하게 채워줘요.", ca.Name, cb.Name)
	case ca.Compatibility.Good:
		return fmt.Sprintf("%s과 %s은 좋은 궁합! 함께하면 좋은 시너지를 냅니다.", ca.Name, cb.Name)
	case ca.Compatibility.Caution:
		return fmt.Sprintf("%s과 %s은 보완이 필요한 궁합. 서로의 다름을 이해하면 성장할 수 있어요.", ca.Name, cb.Name)
	}
	return fmt.Sprintf("%s과 %s은 비슷한 기운을 가진 동질 궁합이에요.", ca.Name, cb.Name)
}

// FunPoints returns up to five light-hearted remarks about a pair.
func FunPoints(a, b saju.ConstitutionType) []string {
	ca, cb := catalog[a], catalog[b]
	var points []string

	if (a == saju.Taeyang || a == saju.Soyang) && b == saju.Soeum {
		points = append(points, "🌡️ 에어컨 전쟁 발생 확률 99%! 한 쪽은 덥고 한 쪽은 추워요")
	}

	if slices.ContainsFunc(ca.GoodFoods, func(f string) bool { return slices.Contains(cb.BadFoods, f) }) {
		points = append(points, "🍽️ 식당 고를 때 의견 충돌 주의! 좋아하는 음식이 서로 다를 수 있어요")
	}

	if common := sharedExercises(ca, cb); len(common) > 0 {
		points = append(points, "🏃 함께 할 수 있는 운동: "+joinFirst(common, 2))
	}

	if pairIs(a, b, saju.Taeyang, saju.Soeum) {
		points = append(points, "🎭 불꽃 리더 × 감성 분석가 = 완벽한 팀! 추진력과 섬세함의 조합")
	}
	if pairIs(a, b, saju.Taeeum, saju.Soyang) {
		points = append(points, "🎯 듬직한 산 × 열정 파이터 = 안정과 활력의 밸런스!")
	}

	if a == saju.Soyang || b == saju.Soyang {
		points = append(points, "✈️ 여행 가면 소양인이 일정을 주도할 확률 높음")
	}
	if a == saju.Taeeum || b == saju.Taeeum {
		points = append(points, "🍖 여행 가면 태음인이 맛집을 찾아낼 확률 높음")
	}

	if len(points) > maxFunPoints {
		points = points[:maxFunPoints]
	}
	return points
}

// sharedExercises keeps a's order.
func sharedExercises(a, b Info) []string {
	var out []string
	for _, e := range a.Exercises {
		if slices.Contains(b.Exercises, e) {
			out = append(out, e)
		}
	}
	return out
}

func joinFirst(items []string, n int) string {
	return strings.Join(items[:min(n, len(items))], ", ")
}

// pairIs reports whether {a,b} is {x,y} in either order.
func pairIs(a, b, x, y saju.ConstitutionType) bool {
	return (a == x && b == y) || (a == y && b == x)
}
