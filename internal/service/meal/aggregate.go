package meal

import (
	"math"

	"github.com/platelog/platelog-backend/internal/domain"
	"github.com/platelog/platelog-backend/internal/service/meal/nutrition"
)

// DishTotals sums a single dish into unrounded totals.
//
// For an AI dish, weight and macros are summed across its ingredients.
// Per-ingredient energy prefers the explicit recognition value when present
// and positive, falling back to the Atwater derivation otherwise.
//
// For a user dish the scalars are taken directly; energy is always derived
// from macros because this variant has no stored energy.
func DishTotals(d domain.Dish) domain.DishTotals {
	var t domain.DishTotals

	switch d := d.(type) {
	case *domain.AIDish:
		for i := range d.Ingredients {
			ing := &d.Ingredients[i]
			t.WeightG += ing.WeightG
			t.ProteinG += ing.Macros.ProteinG
			t.FatG += ing.Macros.FatG
			t.CarbG += ing.Macros.CarbsG
			t.FiberG += ing.Macros.FiberG
			t.SodiumMg += ing.Macros.SodiumMg

			if ing.HasExplicitEnergy() {
				t.EnergyKJ += *ing.EnergyKJ
			} else {
				t.EnergyKJ += nutrition.KcalToKJ(nutrition.MacrosToKcal(
					ing.Macros.ProteinG, ing.Macros.FatG, ing.Macros.CarbsG))
			}
		}

	case *domain.UserDish:
		t.WeightG = d.WeightG
		t.ProteinG = d.ProteinG
		t.FatG = d.FatG
		t.CarbG = d.CarbG
		t.FiberG = d.FiberG
		t.SodiumMg = d.SodiumMg
		t.EnergyKJ = nutrition.KcalToKJ(nutrition.MacrosToKcal(d.ProteinG, d.FatG, d.CarbG))
	}

	return t
}

// MealTotals aggregates the enabled dishes into display-ready meal totals.
// Accumulation happens unrounded so per-dish rounding error does not
// compound; display rounding is applied once at the end. Energy keeps full
// kJ precision, and the kcal display value is derived from the unrounded kJ
// sum rather than from the rounded macros.
func MealTotals(dishes []domain.Dish) domain.MealTotals {
	var sum domain.DishTotals

	for _, d := range dishes {
		if !d.IsEnabled() {
			continue
		}
		t := DishTotals(d)
		sum.WeightG += t.WeightG
		sum.ProteinG += t.ProteinG
		sum.FatG += t.FatG
		sum.CarbG += t.CarbG
		sum.FiberG += t.FiberG
		sum.SodiumMg += t.SodiumMg
		sum.EnergyKJ += t.EnergyKJ
	}

	return domain.MealTotals{
		WeightG:           math.Round(sum.WeightG),
		ProteinG:          nutrition.Round1(sum.ProteinG),
		FatG:              nutrition.Round1(sum.FatG),
		CarbG:             nutrition.Round1(sum.CarbG),
		FiberG:            nutrition.Round1(sum.FiberG),
		SodiumMg:          math.Round(sum.SodiumMg),
		EnergyKJ:          sum.EnergyKJ,
		EnergyKcalDisplay: math.Round(nutrition.KJToKcal(sum.EnergyKJ)),
	}
}

// Recompute re-derives a record's totals from its enabled dishes.
func Recompute(record *domain.MealRecord) {
	record.Totals = MealTotals(record.Dishes)
}
