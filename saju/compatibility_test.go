package saju_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/saju-engine/saju"
)

func TestCalculateCompatibility_IdenticalEvenBalances(t *testing.T) {
	// GIVEN: Two even balances; no diff > 20, nothing > 25
	even := bal(20, 20, 20, 20, 20)

	// WHEN: Scoring them
	res := saju.CalculateCompatibility(even, even)

	// THEN: 50 + similarity round(500/500*20) = 70
	assert.Equal(t, 70, res.Score)
	assert.Equal(t, "좋은 궁합! 서로 다른 매력으로 끌리는 관계", res.Description)
	assert.Equal(t, []string{saju.FallbackDetail}, res.Details)
}

func TestCalculateCompatibility_OvercomingIsDirectional(t *testing.T) {
	// GIVEN: A is wood-heavy, B is earth-heavy. 목 overcomes 토.
	a := bal(60, 10, 10, 10, 10)
	b := bal(10, 10, 60, 10, 10)

	ab := saju.CalculateCompatibility(a, b)
	ba := saju.CalculateCompatibility(b, a)

	// THEN: A→B: 50 + 3 + 3 (목, 토 complements) - 3 (목⚡토) + 16 = 69
	assert.Equal(t, 69, ab.Score)
	assert.Equal(t, []string{
		"🌳 목(木) 기운을 첫째가 보완해줌",
		"⛰️ 토(土) 기운을 둘째가 보완해줌",
		"🌳⚡⛰️ 상극: 의견 충돌 가능성",
	}, ab.Details)
	assert.Equal(t, "무난한 궁합! 노력하면 좋은 파트너가 될 수 있어요", ab.Description)

	// B→A: the penalty is not checked in reverse, so 72
	assert.Equal(t, 72, ba.Score)
	assert.Equal(t, []string{
		"🌳 목(木) 기운을 둘째가 보완해줌",
		"⛰️ 토(土) 기운을 첫째가 보완해줌",
	}, ba.Details)
	assert.NotEqual(t, ab.Score, ba.Score)
}

func TestCalculateCompatibility_GeneratingIsSymmetric(t *testing.T) {
	// 목 feeds 화: A strong in 목, B strong in 화
	a := bal(40, 15, 15, 15, 15)
	b := bal(15, 40, 15, 15, 15)

	ab := saju.CalculateCompatibility(a, b)
	ba := saju.CalculateCompatibility(b, a)

	// 50 + 3 + 3 + 5 (목→화) + round(450/25=18) = 79
	assert.Equal(t, 79, ab.Score)
	assert.Equal(t, ab.Score, ba.Score)
	assert.Contains(t, ab.Details, "🌳→🔥 상생: 목이 화를 도와줌")
	assert.Contains(t, ba.Details, "🌳→🔥 상생: 목이 화를 도와줌")
	assert.Equal(t, "좋은 궁합! 서로 다른 매력으로 끌리는 관계", ab.Description)
}

func TestCalculateCompatibility_ClampedLow(t *testing.T) {
	// Maximal distance with two overcoming hits keeps the score above 40
	a := bal(50, 0, 50, 0, 0)
	b := bal(0, 0, 50, 0, 50)
	res := saju.CalculateCompatibility(a, b)
	assert.GreaterOrEqual(t, res.Score, 40)
	assert.LessOrEqual(t, res.Score, 99)
}

func TestCalculateCompatibility_ScoreAlwaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	randomBalance := func() saju.ElementBalance {
		var raw [saju.NumElements]int64
		for i := range raw {
			raw[i] = rng.Int63n(50)
		}
		return saju.RoundToMax(raw)
	}

	for i := 0; i < 2000; i++ {
		a, b := randomBalance(), randomBalance()
		res := saju.CalculateCompatibility(a, b)
		require.GreaterOrEqual(t, res.Score, 40, "%v %v", a, b)
		require.LessOrEqual(t, res.Score, 99, "%v %v", a, b)
		require.NotEmpty(t, res.Details)
		require.Equal(t, saju.CompatibilityDescription(res.Score), res.Description)
	}
}

func TestSimilarityBonus(t *testing.T) {
	assert.Equal(t, 20, saju.SimilarityBonus(bal(20, 20, 20, 20, 20), bal(20, 20, 20, 20, 20)))
	// Σ = 500 - 200 = 300 → 12
	assert.Equal(t, 12, saju.SimilarityBonus(bal(100, 0, 0, 0, 0), bal(0, 100, 0, 0, 0)))
	// Σ = 486 → 19.44 → 19
	assert.Equal(t, 19, saju.SimilarityBonus(bal(20, 20, 20, 20, 20), bal(27, 20, 20, 20, 13)))
}

func TestCompatibilityDescription_Bands(t *testing.T) {
	assert.Equal(t, "천생연분! 서로의 부족한 기운을 완벽히 채워주는 환상의 궁합", saju.CompatibilityDescription(90))
	assert.Equal(t, "아주 좋은 궁합! 함께하면 시너지가 폭발하는 사이", saju.CompatibilityDescription(89))
	assert.Equal(t, "아주 좋은 궁합! 함께하면 시너지가 폭발하는 사이", saju.CompatibilityDescription(80))
	assert.Equal(t, "좋은 궁합! 서로 다른 매력으로 끌리는 관계", saju.CompatibilityDescription(70))
	assert.Equal(t, "무난한 궁합! 노력하면 좋은 파트너가 될 수 있어요", saju.CompatibilityDescription(60))
	assert.Equal(t, "보통 궁합! 서로 이해하려는 노력이 필요해요", saju.CompatibilityDescription(50))
	assert.Equal(t, "도전적인 궁합! 다름을 인정하면 성장의 기회가 될 수 있어요", saju.CompatibilityDescription(49))
}
