package service

import (
	"math"

	"github.com/plateful/foodlog/internal/model"
)

// SumTotals reduces entries to their combined macro totals. Summation is
// purely additive, so any ordering of the same entries yields the same
// result. Damaged values (negative or non-finite) contribute zero so one
// bad historical row cannot blank out a whole day's totals.
func SumTotals(entries []model.LogEntry) model.Totals {
	var t model.Totals
	for _, e := range entries {
		if e.Calories > 0 {
			t.Calories += e.Calories
		}
		t.ProteinG += safeGrams(e.ProteinG)
		t.CarbsG += safeGrams(e.CarbsG)
		t.FatG += safeGrams(e.FatG)
	}
	return t
}

func safeGrams(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
