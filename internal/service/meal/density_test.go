package meal

import (
	"testing"

	"github.com/platelog/platelog-backend/internal/domain"
)

func TestInitDensity(t *testing.T) {
	t.Parallel()

	ing := &domain.Ingredient{
		WeightG: 150,
		Macros:  domain.NutrientVector{ProteinG: 30, FatG: 7.5, CarbsG: 15, FiberG: 3, SodiumMg: 300},
	}

	InitDensity(ing)

	if ing.Density == nil {
		t.Fatal("InitDensity did not set a profile")
	}
	if ing.Density.ProteinPerG != 0.2 {
		t.Errorf("ProteinPerG = %v, want 0.2", ing.Density.ProteinPerG)
	}
	if ing.Density.FatPerG != 0.05 {
		t.Errorf("FatPerG = %v, want 0.05", ing.Density.FatPerG)
	}
	if ing.Density.CarbsPerG != 0.1 {
		t.Errorf("CarbsPerG = %v, want 0.1", ing.Density.CarbsPerG)
	}
	if ing.Density.SodiumPerG != 2 {
		t.Errorf("SodiumPerG = %v, want 2", ing.Density.SodiumPerG)
	}
}

func TestInitDensity_RequiresPositiveWeight(t *testing.T) {
	t.Parallel()

	ing := &domain.Ingredient{
		WeightG: 0,
		Macros:  domain.NutrientVector{ProteinG: 30},
	}

	InitDensity(ing)

	if ing.Density != nil {
		t.Errorf("InitDensity with zero weight set a profile: %+v", ing.Density)
	}
}

func TestRefreshDensityField_UpdatesOnlyEditedRatio(t *testing.T) {
	t.Parallel()

	ing := &domain.Ingredient{
		WeightG: 100,
		Macros:  domain.NutrientVector{ProteinG: 20, FatG: 10},
	}
	InitDensity(ing)

	RefreshDensityField(ing, domain.IngredientFieldProteinG, 40)

	if ing.Density.ProteinPerG != 0.4 {
		t.Errorf("ProteinPerG = %v, want 0.4", ing.Density.ProteinPerG)
	}
	// Sibling ratio stays at the old snapshot.
	if ing.Density.FatPerG != 0.1 {
		t.Errorf("FatPerG = %v, want untouched 0.1", ing.Density.FatPerG)
	}
}

func TestRefreshDensityField_NoProfileIsNoop(t *testing.T) {
	t.Parallel()

	ing := &domain.Ingredient{WeightG: 100}

	RefreshDensityField(ing, domain.IngredientFieldProteinG, 40)

	if ing.Density != nil {
		t.Errorf("RefreshDensityField created a profile: %+v", ing.Density)
	}
}

func TestRefreshDensityField_ZeroWeightIsNoop(t *testing.T) {
	t.Parallel()

	ing := &domain.Ingredient{
		WeightG: 100,
		Macros:  domain.NutrientVector{ProteinG: 20},
	}
	InitDensity(ing)
	ing.WeightG = 0

	RefreshDensityField(ing, domain.IngredientFieldProteinG, 40)

	if ing.Density.ProteinPerG != 0.2 {
		t.Errorf("ProteinPerG = %v, want unchanged 0.2", ing.Density.ProteinPerG)
	}
}

func TestApplyDensity_ScalesMacros(t *testing.T) {
	t.Parallel()

	// 100g with 0.2 protein/g; rescaling to 150g gives 30g protein.
	ing := &domain.Ingredient{
		WeightG:           100,
		ProportionalScale: true,
		Macros:            domain.NutrientVector{ProteinG: 20, FatG: 5, CarbsG: 10, FiberG: 2, SodiumMg: 150},
	}
	InitDensity(ing)

	ApplyDensity(ing, 150)

	if ing.Macros.ProteinG != 30 {
		t.Errorf("ProteinG = %v, want 30", ing.Macros.ProteinG)
	}
	if ing.Macros.FatG != 7.5 {
		t.Errorf("FatG = %v, want 7.5", ing.Macros.FatG)
	}
	if ing.Macros.SodiumMg != 225 {
		t.Errorf("SodiumMg = %v, want 225", ing.Macros.SodiumMg)
	}
	// ApplyDensity leaves the weight to the caller.
	if ing.WeightG != 100 {
		t.Errorf("WeightG = %v, want 100 (unassigned)", ing.WeightG)
	}
}

func TestApplyDensity_RoundsToTwoDecimals(t *testing.T) {
	t.Parallel()

	ing := &domain.Ingredient{
		WeightG:           300,
		ProportionalScale: true,
		Macros:            domain.NutrientVector{ProteinG: 10}, // 0.0333.../g
	}
	InitDensity(ing)

	ApplyDensity(ing, 100)

	if ing.Macros.ProteinG != 3.33 {
		t.Errorf("ProteinG = %v, want 3.33", ing.Macros.ProteinG)
	}
}

func TestApplyDensity_Noops(t *testing.T) {
	t.Parallel()

	base := func() *domain.Ingredient {
		ing := &domain.Ingredient{
			WeightG: 100,
			Macros:  domain.NutrientVector{ProteinG: 20},
		}
		InitDensity(ing)
		return ing
	}

	tests := []struct {
		name  string
		ing   func() *domain.Ingredient
		newWt float64
	}{
		{
			name: "scaling disabled",
			ing: func() *domain.Ingredient {
				ing := base()
				ing.ProportionalScale = false
				return ing
			},
			newWt: 150,
		},
		{
			name: "no profile",
			ing: func() *domain.Ingredient {
				ing := base()
				ing.ProportionalScale = true
				ing.Density = nil
				return ing
			},
			newWt: 150,
		},
		{
			name: "zero weight",
			ing: func() *domain.Ingredient {
				ing := base()
				ing.ProportionalScale = true
				return ing
			},
			newWt: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ing := tt.ing()
			ApplyDensity(ing, tt.newWt)
			if ing.Macros.ProteinG != 20 {
				t.Errorf("ProteinG = %v, want unchanged 20", ing.Macros.ProteinG)
			}
		})
	}
}
