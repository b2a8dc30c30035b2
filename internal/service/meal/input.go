package meal

import (
	"github.com/google/uuid"

	"github.com/platelog/platelog-backend/internal/domain"
)

// EditDishFieldInput holds the parameters for editing a dish-level field.
// Value is the raw UI input; numeric fields are parsed with a 0 fallback.
type EditDishFieldInput struct {
	DishID uuid.UUID
	Field  domain.DishField
	Value  string
}

// Validate checks all fields and collects all errors.
func (i *EditDishFieldInput) Validate() error {
	var errs []domain.FieldError

	if i.DishID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "dish_id", Message: "required"})
	}
	if !i.Field.IsValid() {
		errs = append(errs, domain.FieldError{Field: "field", Message: "unknown dish field"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// EditIngredientFieldInput holds the parameters for editing one field of an
// AI-dish ingredient, addressed by its position in the dish.
type EditIngredientFieldInput struct {
	DishID          uuid.UUID
	IngredientIndex int
	Field           domain.IngredientField
	Value           string
}

// Validate checks all fields and collects all errors.
func (i *EditIngredientFieldInput) Validate() error {
	var errs []domain.FieldError

	if i.DishID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "dish_id", Message: "required"})
	}
	if i.IngredientIndex < 0 {
		errs = append(errs, domain.FieldError{Field: "ingredient_index", Message: "must be non-negative"})
	}
	if !i.Field.IsValid() {
		errs = append(errs, domain.FieldError{Field: "field", Message: "unknown ingredient field"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ToggleScalingInput holds the parameters for flipping proportional scaling
// on an ingredient.
type ToggleScalingInput struct {
	DishID          uuid.UUID
	IngredientIndex int
}

// Validate checks all fields and collects all errors.
func (i *ToggleScalingInput) Validate() error {
	var errs []domain.FieldError

	if i.DishID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "dish_id", Message: "required"})
	}
	if i.IngredientIndex < 0 {
		errs = append(errs, domain.FieldError{Field: "ingredient_index", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ToggleDishInput holds the parameters for enabling or disabling a dish.
type ToggleDishInput struct {
	DishID  uuid.UUID
	Enabled bool
}

// Validate checks all fields and collects all errors.
func (i *ToggleDishInput) Validate() error {
	if i.DishID == uuid.Nil {
		return domain.NewValidationError("dish_id", "required")
	}
	return nil
}

// RemoveDishInput holds the parameters for removing a user dish.
type RemoveDishInput struct {
	DishID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *RemoveDishInput) Validate() error {
	if i.DishID == uuid.Nil {
		return domain.NewValidationError("dish_id", "required")
	}
	return nil
}
