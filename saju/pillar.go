/*
pillar.go - Year, month, day and hour pillar arithmetic

PURPOSE:
  Maps a calendar date (and optional hour) to the four sexagenary pillars
  the way a conventional almanac (만세력) does, using fixed solar-term
  dates instead of true solar longitude.

RULES:
  Year:  The solar year starts on Feb 4 (입춘). Earlier dates belong to the
         previous year. stem = (y mod 10 + 6) mod 10, branch = (y mod 12 + 8) mod 12.
  Month: Solar month index i from the fixed boundary table; the boundary
         day itself belongs to the new month. branch = (i + 2) mod 12,
         stem = (monthStemOffset[yearStem mod 5] + i) mod 10.
  Day:   Index (JDN + 9) mod 60 into the sexagenary cycle.
  Hour:  branch = ((h + 1) mod 24) / 2, so 23:00-00:59 is 자시.
         stem = (hourStemOffset[dayStem mod 5] + branch) mod 10.
*/
package saju

import (
	"time"
)

// Date is a validated proleptic Gregorian calendar date.
type Date struct {
	Year  int
	Month int
	Day   int
}

const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string. Impossible days such as
// 2023-02-30 and years outside 1..9999 are rejected.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, &DateError{Input: s, Err: err}
	}
	if t.Year() < 1 {
		return Date{}, &DateError{Input: s}
	}
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, nil
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC).Format(dateLayout)
}

// Hour returns a pointer to h, for passing an optional birth hour.
func Hour(h int) *int { return &h }

// ValidateHour rejects hours outside [0,23]. A nil hour is valid.
func ValidateHour(hour *int) error {
	if hour != nil && (*hour < 0 || *hour > 23) {
		return &HourError{Hour: *hour}
	}
	return nil
}

// CalculateSaju computes the four pillars for a birth date and optional
// birth hour. The hour pillar is present iff birthHour is non-nil.
func CalculateSaju(birthDate string, birthHour *int) (Chart, error) {
	d, err := ParseDate(birthDate)
	if err != nil {
		return Chart{}, err
	}
	if err := ValidateHour(birthHour); err != nil {
		return Chart{}, err
	}
	return chartOf(d, birthHour), nil
}

func chartOf(d Date, hour *int) Chart {
	year := yearPillar(d)
	day := dayPillar(d)

	c := Chart{
		Year:        year,
		Month:       monthPillar(d, year.Stem),
		Day:         day,
		Zodiac:      year.Branch.Zodiac(),
		ZodiacEmoji: year.Branch.ZodiacEmoji(),
	}
	if hour != nil {
		h := hourPillar(day.Stem, *hour)
		c.Hour = &h
	}
	return c
}

// =============================================================================
// PILLARS
// =============================================================================

// solarYear returns the year whose 입춘 most recently preceded d.
func solarYear(d Date) int {
	if d.Month < 2 || (d.Month == 2 && d.Day < 4) {
		return d.Year - 1
	}
	return d.Year
}

// YearPillarOf returns the stem/branch for a solar year. It is the
// year-pillar formula without the 입춘 adjustment.
func YearPillarOf(year int) Pillar {
	return Pillar{
		Stem:   Stem(mod(mod(year, 10)+6, 10)),
		Branch: Branch(mod(mod(year, 12)+8, 12)),
	}
}

func yearPillar(d Date) Pillar {
	return YearPillarOf(solarYear(d))
}

func monthPillar(d Date, yearStem Stem) Pillar {
	i := solarMonthIndex(d.Month, d.Day)
	start := monthStemOffset[int(yearStem)%5]
	return Pillar{
		Stem:   Stem((int(start) + i) % NumStems),
		Branch: Branch((i + 2) % NumBranches),
	}
}

func dayPillar(d Date) Pillar {
	idx := mod(JulianDayNumber(d.Year, d.Month, d.Day)+9, 60)
	return Pillar{
		Stem:   Stem(idx % NumStems),
		Branch: Branch(idx % NumBranches),
	}
}

func hourPillar(dayStem Stem, hour int) Pillar {
	branch := ((hour + 1) % 24) / 2
	start := hourStemOffset[int(dayStem)%5]
	return Pillar{
		Stem:   Stem((int(start) + branch) % NumStems),
		Branch: Branch(branch),
	}
}

// =============================================================================
// CALENDAR ARITHMETIC
// =============================================================================

// solarMonthIndex returns which of the twelve solar months (0 = 인월) the
// given month/day falls into.
func solarMonthIndex(month, day int) int {
	onOrAfter := func(md monthDay) bool {
		return month > md.month || (month == md.month && day >= md.day)
	}
	before := func(md monthDay) bool {
		return month < md.month || (month == md.month && day < md.day)
	}

	for i, start := range solarTermStarts {
		next := solarTermStarts[(i+1)%len(solarTermStarts)]
		if start.month <= next.month {
			if onOrAfter(start) && before(next) {
				return i
			}
		} else if onOrAfter(start) || before(next) {
			// 대설 → 소한 crosses the year end
			return i
		}
	}
	return 0
}

// JulianDayNumber returns the JDN of a proleptic Gregorian date using
// integer floor division.
func JulianDayNumber(year, month, day int) int {
	a := floorDiv(14-month, 12)
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + floorDiv(153*m+2, 5) + 365*y +
		floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) - 32045
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// mod is the Euclidean remainder, always in [0,n).
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
