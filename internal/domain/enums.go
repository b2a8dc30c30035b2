package domain

// DietTime identifies which meal of the day a record belongs to.
type DietTime string

const (
	DietTimeBreakfast DietTime = "breakfast"
	DietTimeLunch     DietTime = "lunch"
	DietTimeDinner    DietTime = "dinner"
	DietTimeSnack     DietTime = "snack"
)

func (d DietTime) String() string { return string(d) }

func (d DietTime) IsValid() bool {
	switch d {
	case DietTimeBreakfast, DietTimeLunch, DietTimeDinner, DietTimeSnack:
		return true
	}
	return false
}

// DataSource records where an ingredient's nutrient values came from.
// Values are wire-level: they appear verbatim in persisted summaries.
type DataSource string

const (
	DataSourceAIEstimate DataSource = "ai_estimate"
	DataSourceDatabase   DataSource = "database"
	DataSourceUserEdit   DataSource = "user_edit"
)

func (s DataSource) String() string { return string(s) }

func (s DataSource) IsValid() bool {
	switch s {
	case DataSourceAIEstimate, DataSourceDatabase, DataSourceUserEdit:
		return true
	}
	return false
}

// WeightMethod records how an ingredient's weight was determined.
type WeightMethod string

const (
	WeightMethodAIEstimate   WeightMethod = "ai_estimate"
	WeightMethodUserMeasured WeightMethod = "user_measured"
	WeightMethodUserEdit     WeightMethod = "user_edit"
)

func (m WeightMethod) String() string { return string(m) }

func (m WeightMethod) IsValid() bool {
	switch m {
	case WeightMethodAIEstimate, WeightMethodUserMeasured, WeightMethodUserEdit:
		return true
	}
	return false
}

// DishField identifies an editable scalar field of a user dish.
type DishField string

const (
	DishFieldName     DishField = "name"
	DishFieldWeight   DishField = "weight"
	DishFieldProtein  DishField = "protein"
	DishFieldFat      DishField = "fat"
	DishFieldCarb     DishField = "carb"
	DishFieldFiber    DishField = "fiber"
	DishFieldSodiumMg DishField = "sodium_mg"
)

func (f DishField) String() string { return string(f) }

func (f DishField) IsValid() bool {
	switch f {
	case DishFieldName, DishFieldWeight, DishFieldProtein, DishFieldFat,
		DishFieldCarb, DishFieldFiber, DishFieldSodiumMg:
		return true
	}
	return false
}

// IsNumeric reports whether the field holds a number (everything but name).
func (f DishField) IsNumeric() bool {
	return f != DishFieldName && f.IsValid()
}

// IngredientField identifies an editable field of an AI-dish ingredient.
type IngredientField string

const (
	IngredientFieldWeightG  IngredientField = "weight_g"
	IngredientFieldProteinG IngredientField = "protein_g"
	IngredientFieldFatG     IngredientField = "fat_g"
	IngredientFieldCarbsG   IngredientField = "carbs_g"
	IngredientFieldFiberG   IngredientField = "fiber_g"
	IngredientFieldSodiumMg IngredientField = "sodium_mg"
)

func (f IngredientField) String() string { return string(f) }

func (f IngredientField) IsValid() bool {
	switch f {
	case IngredientFieldWeightG, IngredientFieldProteinG, IngredientFieldFatG,
		IngredientFieldCarbsG, IngredientFieldFiberG, IngredientFieldSodiumMg:
		return true
	}
	return false
}
