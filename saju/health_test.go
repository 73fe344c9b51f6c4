package saju_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/saju-engine/saju"
)

func TestBuildHealthProfile(t *testing.T) {
	// GIVEN: 1990-01-01 balance, 화 dominant, 목 and 금 tied at zero
	b := bal(0, 50, 34, 0, 16)

	// WHEN: Evaluated for 2026 (병오, both 화)
	h := saju.BuildHealthProfile(b, 2026)

	// THEN: The weak element is the LAST minimum in element order
	assert.Equal(t, saju.Soyang, h.Constitution)
	assert.Equal(t, saju.Fire, h.DominantElement)
	assert.Equal(t, saju.Metal, h.WeakElement)
	assert.Equal(t, saju.Metal, h.LuckyElement)
	assert.Equal(t, "심장(心)", h.StrongOrgan)
	assert.Equal(t, "폐(肺)", h.WeakOrgan)
	assert.Equal(t, 2026, h.EvaluationYear)

	// The year stem 병 is 화 = dominant → caution
	assert.Equal(t, saju.FortuneCaution, h.YearFortune)
}

func TestBuildHealthProfile_DominantTieTakesFirst(t *testing.T) {
	h := saju.BuildHealthProfile(bal(30, 30, 20, 10, 10), 2026)
	assert.Equal(t, saju.Wood, h.DominantElement)
	assert.Equal(t, saju.Water, h.WeakElement)
	assert.Equal(t, "간(肝)", h.StrongOrgan)
	assert.Equal(t, "신장(腎)", h.WeakOrgan)
}

func TestYearFortune(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		dominant saju.Element
		lucky    saju.Element
		want     string
	}{
		// 2030 경술: stem 금, branch 토
		{"stem matches lucky", 2030, saju.Fire, saju.Metal, saju.FortuneFavorable},
		{"branch matches lucky", 2030, saju.Fire, saju.Earth, saju.FortuneFavorable},
		{"stem matches dominant", 2030, saju.Metal, saju.Water, saju.FortuneCaution},
		// only the stem is compared with the dominant element
		{"branch matches dominant", 2030, saju.Earth, saju.Water, saju.FortuneNeutral},
		// 2025 을사: stem 목, branch 화
		{"neutral", 2025, saju.Fire, saju.Metal, saju.FortuneNeutral},
		{"lucky wins over dominant", 2025, saju.Wood, saju.Fire, saju.FortuneFavorable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, saju.YearFortune(tt.year, tt.dominant, tt.lucky))
		})
	}
}

func TestBuildHealthProfile_EvaluationYearChangesFortune(t *testing.T) {
	b := bal(0, 50, 34, 0, 16)
	assert.Equal(t, saju.FortuneCaution, saju.BuildHealthProfile(b, 2026).YearFortune)
	assert.Equal(t, saju.FortuneNeutral, saju.BuildHealthProfile(b, 2025).YearFortune)
	assert.Equal(t, saju.FortuneFavorable, saju.BuildHealthProfile(b, 2030).YearFortune)
}

func TestElementOrgans(t *testing.T) {
	want := map[saju.Element]saju.Organ{
		saju.Wood:  {Primary: "간(肝)", Paired: "담(膽)"},
		saju.Fire:  {Primary: "심장(心)", Paired: "소장(小腸)"},
		saju.Earth: {Primary: "비장(脾)", Paired: "위(胃)"},
		saju.Metal: {Primary: "폐(肺)", Paired: "대장(大腸)"},
		saju.Water: {Primary: "신장(腎)", Paired: "방광(膀胱)"},
	}
	for _, e := range saju.Elements {
		require.Contains(t, want, e)
		assert.Equal(t, want[e], e.Organ())
	}
}
