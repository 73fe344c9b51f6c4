package saju_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/saju-engine/saju"
)

func pillar(stem, branch int) saju.Pillar {
	return saju.Pillar{Stem: saju.Stem(stem), Branch: saju.Branch(branch)}
}

// =============================================================================
// YEAR PILLAR
// =============================================================================

func TestCalculateSaju_BeforeIpchunUsesPreviousYear(t *testing.T) {
	// GIVEN: Jan 1 1990, before the Feb 4 boundary → solar year 1989
	// WHEN: Calculating without an hour
	chart, err := saju.CalculateSaju("1990-01-01", nil)
	require.NoError(t, err)

	// THEN: 1989 is 기사 (stem (9+6)%10=5, branch (9+8)%12=5)
	assert.Equal(t, pillar(5, 5), chart.Year)
	assert.Equal(t, "기사", chart.Year.Format())
	assert.Equal(t, "뱀", chart.Zodiac)
	assert.Equal(t, "🐍", chart.ZodiacEmoji)

	// Month 병자 (solar month 10, wraps Dec 7 → Jan 5), day 병술
	assert.Equal(t, pillar(2, 0), chart.Month)
	assert.Equal(t, pillar(2, 10), chart.Day)
	assert.Nil(t, chart.Hour)
}

func TestCalculateSaju_IpchunBoundaryStartsNewSegment(t *testing.T) {
	// GIVEN: Feb 4 2000 at 00:00, exactly on 입춘
	chart, err := saju.CalculateSaju("2000-02-04", saju.Hour(0))
	require.NoError(t, err)

	// THEN: year is 2000 (경진) and month is the first solar month (무인)
	assert.Equal(t, "경진", chart.Year.Format())
	assert.Equal(t, "庚辰", chart.Year.FormatHanja())
	assert.Equal(t, pillar(4, 2), chart.Month)
	assert.Equal(t, pillar(8, 0), chart.Day)

	// Hour 0 is 자시; day stem 임 (8%5=3) starts at 경
	require.NotNil(t, chart.Hour)
	assert.Equal(t, pillar(6, 0), *chart.Hour)
	assert.Equal(t, "용", chart.Zodiac)
}

func TestCalculateSaju_DayBeforeIpchun(t *testing.T) {
	chart, err := saju.CalculateSaju("2000-02-03", nil)
	require.NoError(t, err)

	assert.Equal(t, "기묘", chart.Year.Format())
	// Still in 축월 (solar month 11)
	assert.Equal(t, pillar(3, 1), chart.Month)
	assert.Equal(t, pillar(7, 11), chart.Day)
}

// =============================================================================
// MONTH PILLAR
// =============================================================================

func TestCalculateSaju_MonthBoundaries(t *testing.T) {
	tests := []struct {
		date  string
		month saju.Pillar
	}{
		{"2024-12-06", pillar(1, 11)}, // 을해: last day of 해월
		{"2024-12-07", pillar(2, 0)},  // 병자: 대설 boundary
		{"1994-09-12", pillar(9, 9)},  // 계유
		{"1988-03-05", pillar(0, 2)},  // 갑인: day before 경칩
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			chart, err := saju.CalculateSaju(tt.date, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.month, chart.Month)
		})
	}
}

func TestCalculateSaju_SolarMonthBranchesCoverYear(t *testing.T) {
	// Every boundary date starts the branch (i+2)%12.
	boundaries := []string{
		"2021-02-04", "2021-03-06", "2021-04-05", "2021-05-06", "2021-06-06", "2021-07-07",
		"2021-08-08", "2021-09-08", "2021-10-08", "2021-11-07", "2021-12-07", "2022-01-05",
	}
	for i, date := range boundaries {
		chart, err := saju.CalculateSaju(date, nil)
		require.NoError(t, err)
		assert.Equal(t, saju.Branch((i+2)%12), chart.Month.Branch, date)
	}
}

// =============================================================================
// DAY & HOUR PILLAR
// =============================================================================

func TestJulianDayNumber(t *testing.T) {
	assert.Equal(t, 2451545, saju.JulianDayNumber(2000, 1, 1))
	assert.Equal(t, 2447893, saju.JulianDayNumber(1990, 1, 1))
	assert.Equal(t, 1721426, saju.JulianDayNumber(1, 1, 1))
}

func TestCalculateSaju_HourBranches(t *testing.T) {
	tests := []struct {
		hour   int
		branch saju.Branch
	}{
		{23, 0}, {0, 0}, {1, 1}, {2, 1}, {3, 2}, {11, 6}, {12, 6}, {13, 7}, {21, 11}, {22, 11},
	}
	for _, tt := range tests {
		chart, err := saju.CalculateSaju("2000-02-04", saju.Hour(tt.hour))
		require.NoError(t, err)
		require.NotNil(t, chart.Hour)
		assert.Equal(t, tt.branch, chart.Hour.Branch, "hour %d", tt.hour)
		// 임 day: hour stems start at 경 (6)
		assert.Equal(t, saju.Stem((6+int(tt.branch))%10), chart.Hour.Stem, "hour %d", tt.hour)
	}
}

func TestCalculateSaju_IndicesAlwaysInRange(t *testing.T) {
	day := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2100, 12, 31, 0, 0, 0, 0, time.UTC)
	for ; !day.After(end); day = day.AddDate(0, 0, 7) {
		for _, hour := range []*int{nil, saju.Hour(day.Day() % 24)} {
			chart, err := saju.CalculateSaju(day.Format("2006-01-02"), hour)
			require.NoError(t, err)
			for _, p := range chart.Pillars() {
				require.True(t, p.Valid(), "%s: %+v", day.Format("2006-01-02"), p)
			}
			assert.Equal(t, hour != nil, chart.Hour != nil)
		}
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

func TestCalculateSaju_RejectsMalformedDates(t *testing.T) {
	for _, input := range []string{"", "1990", "1990/01/01", "1990-13-01", "2023-02-30", "0000-01-01", "90-01-01", "1990-1-1"} {
		t.Run(input, func(t *testing.T) {
			_, err := saju.CalculateSaju(input, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, saju.ErrInvalidDateFormat)
			assert.True(t, saju.IsClientError(err))

			var dateErr *saju.DateError
			require.True(t, errors.As(err, &dateErr))
			assert.Equal(t, input, dateErr.Input)
		})
	}
}

func TestCalculateSaju_RejectsOutOfRangeHour(t *testing.T) {
	for _, h := range []int{-1, 24, 100} {
		_, err := saju.CalculateSaju("1990-01-01", saju.Hour(h))
		require.Error(t, err)
		assert.ErrorIs(t, err, saju.ErrOutOfRangeHour)

		var hourErr *saju.HourError
		require.True(t, errors.As(err, &hourErr))
		assert.Equal(t, h, hourErr.Hour)
	}
}

func TestParseDate_LeapDay(t *testing.T) {
	d, err := saju.ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, saju.Date{Year: 2024, Month: 2, Day: 29}, d)
	assert.Equal(t, "2024-02-29", d.String())

	_, err = saju.ParseDate("2023-02-29")
	assert.ErrorIs(t, err, saju.ErrInvalidDateFormat)
}

func TestYearPillarOf_NegativeYearsStayInRange(t *testing.T) {
	p := saju.YearPillarOf(-7)
	assert.True(t, p.Valid())
}
