/*
balance.go - Weighted element aggregation and percentage allocation

PURPOSE:
  Turns a chart into an ElementBalance. Each pillar contributes its weight
  once for its stem's element and once for its branch's element:

    year  1.0
    month 1.2
    day   1.5   (일주, the "self" pillar)
    hour  1.0   (only when present)

  The raw totals are then allocated into integer percentages summing to
  exactly 100.

ALLOCATION:
  Weights carry one decimal place, so raw totals are converted to integer
  tenths and allocated without floating point.

  MethodRoundToMax (default):
    share = round_half_up(raw * 100 / total); any residual (+/-) goes to
    the first element holding the maximum share. Matches recorded results.

  MethodLargestRemainder:
    Hamilton's method: floor every share, then hand out the remaining
    points by descending remainder, ties in element order.

EXAMPLE:
  raw tenths {목:10, 화:37, 토:25, 금:10, 수:12} (total 94)
  rounded    {11, 39, 27, 11, 13} = 101
  round_max  {11, 38, 27, 11, 13}
*/
package saju

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// =============================================================================
// PILLAR WEIGHTS
// =============================================================================

var (
	WeightYear  = decimal.RequireFromString("1.0")
	WeightMonth = decimal.RequireFromString("1.2")
	WeightDay   = decimal.RequireFromString("1.5")
	WeightHour  = decimal.RequireFromString("1.0")
)

// RawElementTotals returns the weighted, unnormalized element totals.
func RawElementTotals(c Chart) [NumElements]decimal.Decimal {
	var totals [NumElements]decimal.Decimal
	for i := range totals {
		totals[i] = decimal.Zero
	}

	add := func(p Pillar, w decimal.Decimal) {
		totals[p.Stem.Element()] = totals[p.Stem.Element()].Add(w)
		totals[p.Branch.Element()] = totals[p.Branch.Element()].Add(w)
	}

	add(c.Year, WeightYear)
	add(c.Month, WeightMonth)
	add(c.Day, WeightDay)
	if c.Hour != nil {
		add(*c.Hour, WeightHour)
	}
	return totals
}

// =============================================================================
// APPORTIONMENT
// =============================================================================

// ApportionMethod selects how raw totals become integer percentages.
type ApportionMethod string

const (
	MethodRoundToMax       ApportionMethod = "round_max"
	MethodLargestRemainder ApportionMethod = "largest_remainder"
)

// ParseApportionMethod validates a method name. The empty string selects
// MethodRoundToMax.
func ParseApportionMethod(s string) (ApportionMethod, error) {
	switch ApportionMethod(s) {
	case "", MethodRoundToMax:
		return MethodRoundToMax, nil
	case MethodLargestRemainder:
		return MethodLargestRemainder, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownApportionment, s)
}

// Apply allocates raw non-negative totals with the selected method.
func (m ApportionMethod) Apply(raw [NumElements]int64) ElementBalance {
	if m == MethodLargestRemainder {
		return LargestRemainder(raw)
	}
	return RoundToMax(raw)
}

// RoundToMax rounds each share half-up and reconciles the rounding
// residual onto the first element holding the maximum rounded share.
// A zero total yields {목: 100}.
func RoundToMax(raw [NumElements]int64) ElementBalance {
	total := sumRaw(raw)

	var b ElementBalance
	if total > 0 {
		for i, v := range raw {
			b[i] = int((200*v + total) / (2 * total))
		}
	}
	if residual := 100 - b.Sum(); residual != 0 {
		b[b.Dominant()] += residual
	}
	return b
}

// LargestRemainder floors each share and distributes the remaining points
// to the largest remainders, ties in element order. A zero total yields
// {목: 100}.
func LargestRemainder(raw [NumElements]int64) ElementBalance {
	total := sumRaw(raw)

	var b ElementBalance
	if total <= 0 {
		b[Wood] = 100
		return b
	}

	var remainders [NumElements]int64
	for i, v := range raw {
		b[i] = int(100 * v / total)
		remainders[i] = 100 * v % total
	}

	order := Elements
	sort.SliceStable(order[:], func(i, j int) bool {
		return remainders[order[i]] > remainders[order[j]]
	})
	remaining := 100 - b.Sum()
	for k := 0; k < remaining; k++ {
		b[order[k]]++
	}
	return b
}

func sumRaw(raw [NumElements]int64) int64 {
	var total int64
	for _, v := range raw {
		total += v
	}
	return total
}

// =============================================================================
// BALANCE
// =============================================================================

// ElementBalanceOf computes the element balance of a chart using
// MethodRoundToMax.
func ElementBalanceOf(c Chart) ElementBalance {
	return elementBalance(c, MethodRoundToMax)
}

func elementBalance(c Chart, method ApportionMethod) ElementBalance {
	totals := RawElementTotals(c)

	var tenths [NumElements]int64
	for i, t := range totals {
		tenths[i] = t.Shift(1).IntPart()
	}
	return method.Apply(tenths)
}
