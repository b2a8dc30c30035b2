package domain

import "time"

// Summary is the persistence-ready payload produced from an edited meal
// record. It is consumed programmatically by the storage collaborator; the
// JSON field names are the wire contract.
type Summary struct {
	MealSummary       MealSummary  `json:"meal_summary"`
	Dishes            []SummaryDish `json:"dishes"`
	CapturedLabels    []string      `json:"captured_labels"`
	ExtraImageSummary string        `json:"extra_image_summary"`
	OccurredAt        time.Time     `json:"occurred_at"`
}

// MealSummary holds the meal-level totals of a summary. Energy is rounded to
// one decimal; macros arrive already display-rounded from MealTotals.
type MealSummary struct {
	MealName      string  `json:"meal_name"`
	DietTime      string  `json:"diet_time"`
	TotalEnergyKJ float64 `json:"total_energy_kj"`
	TotalProteinG float64 `json:"total_protein_g"`
	TotalFatG     float64 `json:"total_fat_g"`
	TotalCarbsG   float64 `json:"total_carbs_g"`
	TotalFiberG   float64 `json:"total_fiber_g"`
	TotalSodiumMg float64 `json:"total_sodium_mg"`
}

// SummaryDish is one enabled dish of a summary. User dishes are serialized
// as a single-ingredient equivalent.
type SummaryDish struct {
	StandardName string              `json:"standard_name"`
	Ingredients  []SummaryIngredient `json:"ingredients"`
}

// SummaryIngredient is one ingredient of a summary dish. For AI-dish
// ingredients EnergyKJ preserves the recognition value verbatim (nil when
// the source carried none); for synthesized user-dish ingredients it is the
// macro-derived energy rounded to one decimal.
type SummaryIngredient struct {
	Name         string         `json:"name"`
	WeightG      float64        `json:"weight_g"`
	WeightMethod string         `json:"weight_method"`
	DataSource   string         `json:"data_source"`
	EnergyKJ     *float64       `json:"energy_kj"`
	Macros       NutrientVector `json:"macros"`
}
