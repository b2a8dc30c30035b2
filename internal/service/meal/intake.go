package meal

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/platelog/platelog-backend/internal/domain"
)

// RecognitionMeal is the upstream recognition payload consumed by the
// engine. Field names are the wire contract with the recognition
// collaborator.
type RecognitionMeal struct {
	MealName          string            `json:"meal_name"`
	DietTime          string            `json:"diet_time"`
	OccurredAt        time.Time         `json:"occurred_at"`
	CapturedLabels    []string          `json:"captured_labels"`
	ExtraImageSummary string            `json:"extra_image_summary"`
	Dishes            []RecognitionDish `json:"dishes"`
}

// RecognitionDish is one dish of the upstream payload. Source "ai" carries
// an ingredient breakdown; source "user" carries scalar nutrients.
type RecognitionDish struct {
	Name    string `json:"name"`
	Source  string `json:"source"`
	Enabled *bool  `json:"enabled"`

	Ingredients []RecognitionIngredient `json:"ingredients,omitempty"`

	Weight   float64 `json:"weight,omitempty"`
	Protein  float64 `json:"protein,omitempty"`
	Fat      float64 `json:"fat,omitempty"`
	Carb     float64 `json:"carb,omitempty"`
	Fiber    float64 `json:"fiber,omitempty"`
	SodiumMg float64 `json:"sodium_mg,omitempty"`
}

// RecognitionIngredient is one ingredient of an AI-recognized dish.
type RecognitionIngredient struct {
	Name         string   `json:"name"`
	WeightG      float64  `json:"weight_g"`
	WeightMethod string   `json:"weight_method"`
	DataSource   string   `json:"data_source"`
	EnergyKJ     *float64 `json:"energy_kj"`

	ProteinG float64 `json:"protein_g"`
	FatG     float64 `json:"fat_g"`
	CarbsG   float64 `json:"carbs_g"`
	FiberG   float64 `json:"fiber_g"`
	SodiumMg float64 `json:"sodium_mg"`
}

const (
	recognitionSourceAI   = "ai"
	recognitionSourceUser = "user"
)

// mapRecognitionMeal converts an upstream payload into a domain record.
// Numeric values are clamped to non-negative, enabled defaults to true, and
// structural problems are collected into a single ValidationError.
func (s *Service) mapRecognitionMeal(userID uuid.UUID, payload RecognitionMeal) (*domain.MealRecord, error) {
	var errs []domain.FieldError

	if payload.MealName == "" {
		errs = append(errs, domain.FieldError{Field: "meal_name", Message: "required"})
	}
	dietTime := domain.DietTime(payload.DietTime)
	if !dietTime.IsValid() {
		errs = append(errs, domain.FieldError{Field: "diet_time", Message: "must be breakfast, lunch, dinner, or snack"})
	}
	if len(payload.Dishes) > s.cfg.MaxDishesPerMeal {
		errs = append(errs, domain.FieldError{Field: "dishes", Message: "too many dishes"})
	}

	dishes := make([]domain.Dish, 0, len(payload.Dishes))
	for i, d := range payload.Dishes {
		switch d.Source {
		case recognitionSourceAI:
			if len(d.Ingredients) > s.cfg.MaxIngredientsPerDish {
				errs = append(errs, domain.FieldError{Field: "dishes", Message: "too many ingredients"})
				continue
			}
			dishes = append(dishes, mapAIDish(d))
		case recognitionSourceUser:
			dishes = append(dishes, mapUserDish(d))
		default:
			errs = append(errs, domain.FieldError{
				Field:   "dishes",
				Message: "unknown dish source at index " + strconv.Itoa(i),
			})
		}
	}

	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	occurredAt := payload.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	return &domain.MealRecord{
		ID:                uuid.New(),
		UserID:            userID,
		MealName:          payload.MealName,
		DietTime:          dietTime,
		OccurredAt:        occurredAt,
		CapturedLabels:    payload.CapturedLabels,
		ExtraImageSummary: payload.ExtraImageSummary,
		Dishes:            dishes,
	}, nil
}

func mapAIDish(d RecognitionDish) *domain.AIDish {
	ingredients := make([]domain.Ingredient, len(d.Ingredients))
	for i, ing := range d.Ingredients {
		var energy *float64
		if ing.EnergyKJ != nil && *ing.EnergyKJ > 0 {
			e := *ing.EnergyKJ
			energy = &e
		}

		weightMethod := domain.WeightMethod(ing.WeightMethod)
		if !weightMethod.IsValid() {
			weightMethod = domain.WeightMethodAIEstimate
		}
		dataSource := domain.DataSource(ing.DataSource)
		if !dataSource.IsValid() {
			dataSource = domain.DataSourceAIEstimate
		}

		ingredients[i] = domain.Ingredient{
			Name:         ing.Name,
			WeightG:      clampNonNegative(ing.WeightG),
			WeightMethod: weightMethod,
			DataSource:   dataSource,
			EnergyKJ:     energy,
			Macros: domain.NutrientVector{
				ProteinG: clampNonNegative(ing.ProteinG),
				FatG:     clampNonNegative(ing.FatG),
				CarbsG:   clampNonNegative(ing.CarbsG),
				FiberG:   clampNonNegative(ing.FiberG),
				SodiumMg: clampNonNegative(ing.SodiumMg),
			},
		}
	}

	return &domain.AIDish{
		ID:          uuid.New(),
		Name:        d.Name,
		Enabled:     enabledOrDefault(d.Enabled),
		Ingredients: ingredients,
	}
}

func mapUserDish(d RecognitionDish) *domain.UserDish {
	return &domain.UserDish{
		ID:       uuid.New(),
		Name:     d.Name,
		Enabled:  enabledOrDefault(d.Enabled),
		WeightG:  clampNonNegative(d.Weight),
		ProteinG: clampNonNegative(d.Protein),
		FatG:     clampNonNegative(d.Fat),
		CarbG:    clampNonNegative(d.Carb),
		FiberG:   clampNonNegative(d.Fiber),
		SodiumMg: clampNonNegative(d.SodiumMg),
	}
}

func enabledOrDefault(enabled *bool) bool {
	return enabled == nil || *enabled
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
