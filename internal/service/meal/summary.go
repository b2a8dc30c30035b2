package meal

import (
	"github.com/platelog/platelog-backend/internal/domain"
	"github.com/platelog/platelog-backend/internal/service/meal/nutrition"
)

// BuildSummary serializes the record's current state into the persistence
// payload. Only enabled dishes are included. AI-dish ingredients keep their
// recognition energy verbatim; user dishes are synthesized as a
// single-ingredient equivalent with macro-derived energy.
//
// The function reads but never mutates the record, so repeated calls without
// intervening edits produce structurally identical output — the UI relies on
// that to detect unsaved changes by structural comparison.
func BuildSummary(record *domain.MealRecord) *domain.Summary {
	totals := MealTotals(record.Dishes)

	dishes := make([]domain.SummaryDish, 0, len(record.Dishes))
	for _, d := range record.EnabledDishes() {
		switch d := d.(type) {
		case *domain.AIDish:
			dishes = append(dishes, summarizeAIDish(d))
		case *domain.UserDish:
			dishes = append(dishes, summarizeUserDish(d))
		}
	}

	labels := make([]string, len(record.CapturedLabels))
	copy(labels, record.CapturedLabels)

	return &domain.Summary{
		MealSummary: domain.MealSummary{
			MealName:      record.MealName,
			DietTime:      record.DietTime.String(),
			TotalEnergyKJ: nutrition.Round1(totals.EnergyKJ),
			TotalProteinG: totals.ProteinG,
			TotalFatG:     totals.FatG,
			TotalCarbsG:   totals.CarbG,
			TotalFiberG:   totals.FiberG,
			TotalSodiumMg: totals.SodiumMg,
		},
		Dishes:            dishes,
		CapturedLabels:    labels,
		ExtraImageSummary: record.ExtraImageSummary,
		OccurredAt:        record.OccurredAt,
	}
}

func summarizeAIDish(d *domain.AIDish) domain.SummaryDish {
	ingredients := make([]domain.SummaryIngredient, len(d.Ingredients))
	for i := range d.Ingredients {
		ing := &d.Ingredients[i]

		// Copy the energy pointer's value so the summary does not alias
		// mutable record state.
		var energy *float64
		if ing.EnergyKJ != nil {
			e := *ing.EnergyKJ
			energy = &e
		}

		ingredients[i] = domain.SummaryIngredient{
			Name:         ing.Name,
			WeightG:      ing.WeightG,
			WeightMethod: ing.WeightMethod.String(),
			DataSource:   ing.DataSource.String(),
			EnergyKJ:     energy,
			Macros:       ing.Macros,
		}
	}

	return domain.SummaryDish{
		StandardName: d.Name,
		Ingredients:  ingredients,
	}
}

func summarizeUserDish(d *domain.UserDish) domain.SummaryDish {
	energy := nutrition.Round1(nutrition.KcalToKJ(nutrition.MacrosToKcal(d.ProteinG, d.FatG, d.CarbG)))

	return domain.SummaryDish{
		StandardName: d.Name,
		Ingredients: []domain.SummaryIngredient{{
			Name:         d.Name,
			WeightG:      d.WeightG,
			WeightMethod: domain.WeightMethodUserEdit.String(),
			DataSource:   domain.DataSourceUserEdit.String(),
			EnergyKJ:     &energy,
			Macros: domain.NutrientVector{
				ProteinG: d.ProteinG,
				FatG:     d.FatG,
				CarbsG:   d.CarbG,
				FiberG:   d.FiberG,
				SodiumMg: d.SodiumMg,
			},
		}},
	}
}
