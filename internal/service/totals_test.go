package service_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/plateful/foodlog/internal/model"
	"github.com/plateful/foodlog/internal/service"
)

func TestSumTotalsEmptyIsZero(t *testing.T) {
	t.Parallel()
	got := service.SumTotals(nil)
	if got != (model.Totals{}) {
		t.Fatalf("expected zero totals, got %+v", got)
	}
	got = service.SumTotals([]model.LogEntry{})
	if got != (model.Totals{}) {
		t.Fatalf("expected zero totals for empty slice, got %+v", got)
	}
}

func TestSumTotalsAdds(t *testing.T) {
	t.Parallel()
	entries := []model.LogEntry{
		{Calories: 250, ProteinG: 8, CarbsG: 40, FatG: 6},
		{Calories: 250, ProteinG: 8, CarbsG: 40, FatG: 6},
		{Calories: 72, ProteinG: 6.3, CarbsG: 0.4, FatG: 4.8},
	}
	got := service.SumTotals(entries)
	if got.Calories != 572 {
		t.Fatalf("calories: got %d want 572", got.Calories)
	}
	if math.Abs(got.ProteinG-22.3) > 1e-9 || math.Abs(got.CarbsG-80.4) > 1e-9 || math.Abs(got.FatG-16.8) > 1e-9 {
		t.Fatalf("grams mismatch: %+v", got)
	}
}

func TestSumTotalsOrderIndependent(t *testing.T) {
	t.Parallel()
	entries := []model.LogEntry{
		{Calories: 100, ProteinG: 1.1, CarbsG: 2.2, FatG: 3.3},
		{Calories: 200, ProteinG: 4.4, CarbsG: 5.5, FatG: 6.6},
		{Calories: 300, ProteinG: 7.7, CarbsG: 8.8, FatG: 9.9},
		{Calories: 50, ProteinG: 0.5, CarbsG: 0.6, FatG: 0.7},
	}
	want := service.SumTotals(entries)

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]model.LogEntry, len(entries))
		copy(shuffled, entries)
		r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := service.SumTotals(shuffled)
		if got.Calories != want.Calories {
			t.Fatalf("calories differ across permutations: %d vs %d", got.Calories, want.Calories)
		}
		if math.Abs(got.ProteinG-want.ProteinG) > 1e-9 ||
			math.Abs(got.CarbsG-want.CarbsG) > 1e-9 ||
			math.Abs(got.FatG-want.FatG) > 1e-9 {
			t.Fatalf("gram totals differ across permutations: %+v vs %+v", got, want)
		}
	}
}

func TestSumTotalsTreatsDamagedValuesAsZero(t *testing.T) {
	t.Parallel()
	entries := []model.LogEntry{
		{Calories: 100, ProteinG: 10, CarbsG: 10, FatG: 10},
		{Calories: -50, ProteinG: math.NaN(), CarbsG: math.Inf(1), FatG: -3},
	}
	got := service.SumTotals(entries)
	want := model.Totals{Calories: 100, ProteinG: 10, CarbsG: 10, FatG: 10}
	if got != want {
		t.Fatalf("damaged values should contribute zero: got %+v want %+v", got, want)
	}
}
