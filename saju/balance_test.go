package saju_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/saju-engine/saju"
)

func raw(w, f, e, m, wa int64) [saju.NumElements]int64 {
	return [saju.NumElements]int64{w, f, e, m, wa}
}

func bal(w, f, e, m, wa int) saju.ElementBalance {
	return saju.ElementBalance{saju.Wood: w, saju.Fire: f, saju.Earth: e, saju.Metal: m, saju.Water: wa}
}

// =============================================================================
// ALLOCATION
// =============================================================================

func TestRoundToMax_ResidualGoesToMaximum(t *testing.T) {
	// GIVEN: raw totals 1,1,1,1,2 → 16.67 ×4 and 33.33
	// WHEN: Rounding gives 17,17,17,17,33 = 101
	b := saju.RoundToMax(raw(1, 1, 1, 1, 2))

	// THEN: The -1 residual lands on 수, the maximum, not an arbitrary element
	assert.Equal(t, bal(17, 17, 17, 17, 32), b)
	assert.Equal(t, 100, b.Sum())
}

func TestRoundToMax_PositiveResidual(t *testing.T) {
	// 20,37,22,0,15 of 94 rounds to 21,39,23,0,16 = 99
	assert.Equal(t, bal(21, 40, 23, 0, 16), saju.RoundToMax(raw(20, 37, 22, 0, 15)))
}

func TestRoundToMax_TieGoesToFirstElement(t *testing.T) {
	// 1,1,1 of 3 → 33 each = 99; 목 is the first maximum
	assert.Equal(t, bal(34, 33, 33, 0, 0), saju.RoundToMax(raw(1, 1, 1, 0, 0)))
}

func TestRoundToMax_ZeroTotal(t *testing.T) {
	assert.Equal(t, bal(100, 0, 0, 0, 0), saju.RoundToMax(raw(0, 0, 0, 0, 0)))
}

func TestLargestRemainder(t *testing.T) {
	tests := []struct {
		name string
		raw  [saju.NumElements]int64
		want saju.ElementBalance
	}{
		{"thirds", raw(1, 1, 1, 1, 2), bal(17, 17, 17, 16, 33)},
		{"tie by element order", raw(1, 1, 1, 0, 0), bal(34, 33, 33, 0, 0)},
		{"chart totals", raw(10, 37, 25, 10, 12), bal(11, 39, 26, 11, 13)},
		{"exact", raw(0, 0, 0, 0, 7), bal(0, 0, 0, 0, 100)},
		{"zero", raw(0, 0, 0, 0, 0), bal(100, 0, 0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := saju.LargestRemainder(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestLargestRemainder_DoesNotReorderElements(t *testing.T) {
	saju.LargestRemainder(raw(1, 2, 3, 4, 5))
	assert.Equal(t, [saju.NumElements]saju.Element{saju.Wood, saju.Fire, saju.Earth, saju.Metal, saju.Water}, saju.Elements)
}

func TestParseApportionMethod(t *testing.T) {
	m, err := saju.ParseApportionMethod("")
	require.NoError(t, err)
	assert.Equal(t, saju.MethodRoundToMax, m)

	m, err = saju.ParseApportionMethod("largest_remainder")
	require.NoError(t, err)
	assert.Equal(t, saju.MethodLargestRemainder, m)

	_, err = saju.ParseApportionMethod("dhondt")
	assert.ErrorIs(t, err, saju.ErrUnknownApportionment)
}

// =============================================================================
// CHART BALANCE
// =============================================================================

func TestElementBalanceOf_WeightsPillars(t *testing.T) {
	// 1990-01-01: 기사(토,화)×1.0 병자(화,수)×1.2 병술(화,토)×1.5
	chart, err := saju.CalculateSaju("1990-01-01", nil)
	require.NoError(t, err)

	totals := saju.RawElementTotals(chart)
	assert.Equal(t, "3.7", totals[saju.Fire].String())
	assert.Equal(t, "2.5", totals[saju.Earth].String())
	assert.Equal(t, "1.2", totals[saju.Water].String())
	assert.True(t, totals[saju.Wood].IsZero())

	assert.Equal(t, bal(0, 50, 34, 0, 16), saju.ElementBalanceOf(chart))
}

func TestElementBalanceOf_ResidualReconciliation(t *testing.T) {
	// GIVEN: A chart whose shares round to 101 (raw tenths 10,37,25,10,12)
	chart, err := saju.CalculateSaju("1990-01-01", saju.Hour(3))
	require.NoError(t, err)

	// THEN: 화 (39, the maximum) absorbs the -1
	assert.Equal(t, bal(11, 38, 27, 11, 13), saju.ElementBalanceOf(chart))
}

func TestElementBalanceOf_SyntheticChart(t *testing.T) {
	// GIVEN: 갑인 (목,목) year, 병오 (화,화) month, 임자 (수,수) day
	chart := saju.Chart{
		Year:  pillar(0, 2),
		Month: pillar(2, 6),
		Day:   pillar(8, 0),
	}
	// raw 2.0, 2.4, 0, 0, 3.0 of 7.4 → 27.03, 32.43, 40.54 → 27,32,41 = 100
	assert.Equal(t, bal(27, 32, 0, 0, 41), saju.ElementBalanceOf(chart))

	// With a 경신 (금,금) hour: 2.0, 2.4, 0, 2.0, 3.0 of 9.4
	// 21.28, 25.53, 21.28, 31.91 → 21,26,21,32 = 100
	hour := pillar(6, 8)
	chart.Hour = &hour
	assert.Equal(t, bal(21, 26, 0, 21, 32), saju.ElementBalanceOf(chart))
}

func TestElementBalanceOf_AlwaysSumsTo100(t *testing.T) {
	day := time.Date(1920, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2040, 12, 31, 0, 0, 0, 0, time.UTC)
	lr, err := saju.NewEngine(saju.EngineConfig{Apportionment: "largest_remainder"})
	require.NoError(t, err)

	for ; !day.After(end); day = day.AddDate(0, 0, 5) {
		for _, hour := range []*int{nil, saju.Hour(day.YearDay() % 24)} {
			chart, err := saju.CalculateSaju(day.Format("2006-01-02"), hour)
			require.NoError(t, err)

			for _, b := range []saju.ElementBalance{saju.ElementBalanceOf(chart), lr.Balance(chart)} {
				require.True(t, b.Valid(), "%s: %v", day.Format("2006-01-02"), b)
			}
		}
	}
}

// =============================================================================
// JSON
// =============================================================================

func TestElementBalance_JSON(t *testing.T) {
	b := bal(10, 20, 30, 25, 15)

	data, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, `{"목":10,"화":20,"토":30,"금":25,"수":15}`, string(data))

	var back saju.ElementBalance
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, b, back)

	require.NoError(t, json.Unmarshal([]byte(`{"火":100}`), &back))
	assert.Equal(t, bal(0, 100, 0, 0, 0), back)

	assert.Error(t, json.Unmarshal([]byte(`{"air":1}`), &back))
}
