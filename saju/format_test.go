package saju_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warp/saju-engine/saju"
)

func TestPillarFormat(t *testing.T) {
	p := pillar(0, 0)
	assert.Equal(t, "갑자", p.Format())
	assert.Equal(t, "甲子", p.FormatHanja())
	assert.Equal(t, "갑자", p.String())

	p = pillar(9, 11)
	assert.Equal(t, "계해", p.Format())
	assert.Equal(t, "癸亥", p.FormatHanja())
	assert.Equal(t, [2]saju.Element{saju.Water, saju.Water}, p.Elements())
}

func TestPillarColors_MatchElements(t *testing.T) {
	// All 60 combinations in the cycle
	for i := 0; i < 60; i++ {
		p := pillar(i%10, i%12)
		els := p.Elements()
		colors := p.Colors()
		assert.Equal(t, els[0].Color(), colors[0], p.Format())
		assert.Equal(t, els[1].Color(), colors[1], p.Format())
		assert.Equal(t, p.Stem.Element(), els[0])
		assert.Equal(t, p.Branch.Element(), els[1])
	}
}

func TestPillarValid(t *testing.T) {
	assert.True(t, pillar(9, 11).Valid())
	assert.False(t, pillar(10, 0).Valid())
	assert.False(t, pillar(0, 12).Valid())
	assert.False(t, pillar(-1, 0).Valid())
}

func TestElementNames(t *testing.T) {
	want := []struct {
		korean, hanja string
	}{
		{"목", "木"}, {"화", "火"}, {"토", "土"}, {"금", "金"}, {"수", "水"},
	}
	for i, e := range saju.Elements {
		assert.Equal(t, want[i].korean, e.String())
		assert.Equal(t, want[i].hanja, e.Hanja())

		parsed, err := saju.ParseElement(e.Hanja())
		assert.NoError(t, err)
		assert.Equal(t, e, parsed)
	}
}
