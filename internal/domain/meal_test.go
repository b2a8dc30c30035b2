package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestIngredient_HasExplicitEnergy(t *testing.T) {
	t.Parallel()

	positive := 523.0
	zero := 0.0
	negative := -10.0

	tests := []struct {
		name string
		ing  Ingredient
		want bool
	}{
		{"nil energy", Ingredient{EnergyKJ: nil}, false},
		{"positive energy", Ingredient{EnergyKJ: &positive}, true},
		{"zero energy treated as absent", Ingredient{EnergyKJ: &zero}, false},
		{"negative energy treated as absent", Ingredient{EnergyKJ: &negative}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ing.HasExplicitEnergy(); got != tt.want {
				t.Errorf("HasExplicitEnergy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAIDish_Ingredient(t *testing.T) {
	t.Parallel()

	dish := &AIDish{
		Ingredients: []Ingredient{{Name: "rice"}, {Name: "egg"}},
	}

	if got := dish.Ingredient(0); got == nil || got.Name != "rice" {
		t.Errorf("Ingredient(0) = %v, want rice", got)
	}
	if got := dish.Ingredient(1); got == nil || got.Name != "egg" {
		t.Errorf("Ingredient(1) = %v, want egg", got)
	}
	if got := dish.Ingredient(-1); got != nil {
		t.Errorf("Ingredient(-1) = %v, want nil", got)
	}
	if got := dish.Ingredient(2); got != nil {
		t.Errorf("Ingredient(2) = %v, want nil", got)
	}

	// The returned pointer aliases the backing slice.
	dish.Ingredient(0).WeightG = 120
	if dish.Ingredients[0].WeightG != 120 {
		t.Error("Ingredient(0) did not alias the backing slice")
	}
}

func TestMealRecord_FindDish(t *testing.T) {
	t.Parallel()

	aiID := uuid.New()
	userID := uuid.New()
	rec := &MealRecord{
		Dishes: []Dish{
			&AIDish{ID: aiID, Name: "fried rice", Enabled: true},
			&UserDish{ID: userID, Name: "milk", Enabled: true},
		},
	}

	if got := rec.FindDish(aiID); got == nil || got.DishName() != "fried rice" {
		t.Errorf("FindDish(aiID) = %v, want fried rice", got)
	}
	if got := rec.FindDish(userID); got == nil || got.DishName() != "milk" {
		t.Errorf("FindDish(userID) = %v, want milk", got)
	}
	if got := rec.FindDish(uuid.New()); got != nil {
		t.Errorf("FindDish(unknown) = %v, want nil", got)
	}
}

func TestMealRecord_EnabledDishes(t *testing.T) {
	t.Parallel()

	rec := &MealRecord{
		Dishes: []Dish{
			&AIDish{ID: uuid.New(), Name: "a", Enabled: true},
			&UserDish{ID: uuid.New(), Name: "b", Enabled: false},
			&UserDish{ID: uuid.New(), Name: "c", Enabled: true},
		},
	}

	got := rec.EnabledDishes()
	if len(got) != 2 {
		t.Fatalf("EnabledDishes() returned %d dishes, want 2", len(got))
	}
	if got[0].DishName() != "a" || got[1].DishName() != "c" {
		t.Errorf("EnabledDishes() order = [%s %s], want [a c]", got[0].DishName(), got[1].DishName())
	}
}

func TestDish_SetEnabled(t *testing.T) {
	t.Parallel()

	var d Dish = &AIDish{Enabled: true}
	d.SetEnabled(false)
	if d.IsEnabled() {
		t.Error("AIDish.SetEnabled(false) did not disable the dish")
	}

	d = &UserDish{Enabled: false}
	d.SetEnabled(true)
	if !d.IsEnabled() {
		t.Error("UserDish.SetEnabled(true) did not enable the dish")
	}
}
