package domain

import (
	"time"

	"github.com/google/uuid"
)

// NutrientVector holds the macro quantities of a single ingredient.
// All values are non-negative; grams, except sodium which is milligrams.
type NutrientVector struct {
	ProteinG float64 `json:"protein_g"`
	FatG     float64 `json:"fat_g"`
	CarbsG   float64 `json:"carbs_g"`
	FiberG   float64 `json:"fiber_g"`
	SodiumMg float64 `json:"sodium_mg"`
}

// DensityProfile is a cached snapshot of nutrient-per-gram ratios for an
// ingredient. It is a cache hint used for proportional rescaling, never an
// authoritative source: once created it persists until explicitly recomputed,
// even while proportional scaling is toggled off.
type DensityProfile struct {
	ProteinPerG float64 `json:"protein_per_g"`
	FatPerG     float64 `json:"fat_per_g"`
	CarbsPerG   float64 `json:"carbs_per_g"`
	FiberPerG   float64 `json:"fiber_per_g"`
	SodiumPerG  float64 `json:"sodium_per_g"`
}

// Ingredient is a named food component belonging to an AI-recognized dish.
type Ingredient struct {
	Name         string
	WeightG      float64
	Macros       NutrientVector
	// EnergyKJ is the explicit source energy from recognition, when known.
	// nil (or <= 0) means energy must be derived from macros.
	EnergyKJ     *float64
	DataSource   DataSource
	WeightMethod WeightMethod

	// ProportionalScale enables density-based rescaling of macros when the
	// ingredient's weight is edited.
	ProportionalScale bool
	Density           *DensityProfile
}

// HasExplicitEnergy reports whether the ingredient carries usable source
// energy. Zero and negative stored values are treated as absent.
func (i *Ingredient) HasExplicitEnergy() bool {
	return i.EnergyKJ != nil && *i.EnergyKJ > 0
}

// Dish is a closed sum type: a dish is either AI-recognized (*AIDish) or
// user-entered (*UserDish). Consumers dispatch with a type switch over the
// two concrete types.
type Dish interface {
	DishID() uuid.UUID
	DishName() string
	IsEnabled() bool
	SetEnabled(enabled bool)

	// isDish restricts implementations to this package.
	isDish()
}

// AIDish is a dish produced by AI recognition. Its name is immutable through
// the edit engine; only its ingredients are editable. AI dishes cannot be
// removed, only disabled.
type AIDish struct {
	ID          uuid.UUID
	Name        string
	Enabled     bool
	Ingredients []Ingredient
}

func (d *AIDish) DishID() uuid.UUID       { return d.ID }
func (d *AIDish) DishName() string        { return d.Name }
func (d *AIDish) IsEnabled() bool         { return d.Enabled }
func (d *AIDish) SetEnabled(enabled bool) { d.Enabled = enabled }
func (*AIDish) isDish()                   {}

// Ingredient returns a pointer to the ingredient at index, or nil if the
// index is out of range.
func (d *AIDish) Ingredient(index int) *Ingredient {
	if index < 0 || index >= len(d.Ingredients) {
		return nil
	}
	return &d.Ingredients[index]
}

// UserDish is a manually entered dish: a single scalar record with no
// ingredient breakdown. It has no stored energy; energy is always derived
// from its macros.
type UserDish struct {
	ID      uuid.UUID
	Name    string
	Enabled bool

	WeightG  float64
	ProteinG float64
	FatG     float64
	CarbG    float64
	FiberG   float64
	SodiumMg float64
}

func (d *UserDish) DishID() uuid.UUID       { return d.ID }
func (d *UserDish) DishName() string        { return d.Name }
func (d *UserDish) IsEnabled() bool         { return d.Enabled }
func (d *UserDish) SetEnabled(enabled bool) { d.Enabled = enabled }
func (*UserDish) isDish()                   {}

// DishTotals holds the unrounded nutrient sums of a single dish.
type DishTotals struct {
	WeightG  float64
	ProteinG float64
	FatG     float64
	CarbG    float64
	FiberG   float64
	SodiumMg float64
	EnergyKJ float64
}

// MealTotals holds the display-rounded nutrient sums over the enabled dishes
// of a meal. Macros carry one decimal place; sodium and weight are whole
// numbers. EnergyKJ keeps full precision; EnergyKcalDisplay is derived from
// the unrounded kJ sum, not from the rounded macros.
type MealTotals struct {
	WeightG           float64 `json:"weight_g"`
	ProteinG          float64 `json:"protein_g"`
	FatG              float64 `json:"fat_g"`
	CarbG             float64 `json:"carb_g"`
	FiberG            float64 `json:"fiber_g"`
	SodiumMg          float64 `json:"sodium_mg"`
	EnergyKJ          float64 `json:"energy_kj"`
	EnergyKcalDisplay float64 `json:"energy_kcal_display"`
}

// MealRecord is one logged meal: recognition metadata, an ordered dish
// sequence, and derived totals. Totals are never authoritative — they are
// recomputed from the enabled dishes after every mutation and on load.
type MealRecord struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	MealName          string
	DietTime          DietTime
	OccurredAt        time.Time
	CapturedLabels    []string
	ExtraImageSummary string

	Dishes []Dish
	Totals MealTotals

	// Dirty marks unsaved edits; cleared when the summary is persisted.
	Dirty bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FindDish returns the dish with the given id, or nil if absent.
func (r *MealRecord) FindDish(id uuid.UUID) Dish {
	for _, d := range r.Dishes {
		if d.DishID() == id {
			return d
		}
	}
	return nil
}

// EnabledDishes returns the dishes contributing to totals, in order.
func (r *MealRecord) EnabledDishes() []Dish {
	out := make([]Dish, 0, len(r.Dishes))
	for _, d := range r.Dishes {
		if d.IsEnabled() {
			out = append(out, d)
		}
	}
	return out
}
