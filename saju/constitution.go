package saju

import "github.com/shopspring/decimal"

// =============================================================================
// CONSTITUTION SCORING
// =============================================================================
//
//   taeyang = 1.5·화 + 1.0·목 − 0.5·수
//   soyang  = 1.0·화 + 1.2·토 − 0.3·금 + 0.5·목
//   taeeum  = 1.5·토 + 1.0·금 − 0.3·목 + 0.3·수
//   soeum   = 1.5·수 + 1.0·금 − 0.5·화

type term struct {
	element Element
	coef    decimal.Decimal
}

func coef(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Indexed like ConstitutionTypes.
var constitutionTerms = [4][]term{
	/* taeyang */ {{Fire, coef("1.5")}, {Wood, coef("1.0")}, {Water, coef("-0.5")}},
	/* soyang */ {{Fire, coef("1.0")}, {Earth, coef("1.2")}, {Metal, coef("-0.3")}, {Wood, coef("0.5")}},
	/* taeeum */ {{Earth, coef("1.5")}, {Metal, coef("1.0")}, {Wood, coef("-0.3")}, {Water, coef("0.3")}},
	/* soeum */ {{Water, coef("1.5")}, {Metal, coef("1.0")}, {Fire, coef("-0.5")}},
}

// ConstitutionScore is one type's linear score.
type ConstitutionScore struct {
	Type  ConstitutionType
	Score decimal.Decimal
}

// ConstitutionScores returns the four scores in tie-break order.
func ConstitutionScores(b ElementBalance) [4]ConstitutionScore {
	var out [4]ConstitutionScore
	for i, c := range ConstitutionTypes {
		score := decimal.Zero
		for _, t := range constitutionTerms[i] {
			score = score.Add(t.coef.Mul(decimal.NewFromInt(int64(b[t.element]))))
		}
		out[i] = ConstitutionScore{Type: c, Score: score}
	}
	return out
}

// DeriveConstitution selects the highest-scoring type. Ties go to the
// earlier type in taeyang, soyang, taeeum, soeum order.
func DeriveConstitution(b ElementBalance) ConstitutionType {
	scores := ConstitutionScores(b)
	best := scores[0]
	for _, s := range scores[1:] {
		if s.Score.GreaterThan(best.Score) {
			best = s
		}
	}
	return best.Type
}
