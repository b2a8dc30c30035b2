package mealrecord

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/platelog/platelog-backend/internal/domain"
)

// Dishes are persisted as a JSONB document: the dish sequence arrives as a
// document from recognition and is always read and written whole. The kind
// tag discriminates the two dish variants on the wire.
const (
	dishKindAI   = "ai"
	dishKindUser = "user"
)

type dishDoc struct {
	Kind    string    `json:"kind"`
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Enabled bool      `json:"enabled"`

	Ingredients []ingredientDoc `json:"ingredients,omitempty"`

	WeightG  float64 `json:"weight,omitempty"`
	ProteinG float64 `json:"protein,omitempty"`
	FatG     float64 `json:"fat,omitempty"`
	CarbG    float64 `json:"carb,omitempty"`
	FiberG   float64 `json:"fiber,omitempty"`
	SodiumMg float64 `json:"sodium_mg,omitempty"`
}

type ingredientDoc struct {
	Name              string                 `json:"name"`
	WeightG           float64                `json:"weight_g"`
	Macros            domain.NutrientVector  `json:"macros"`
	EnergyKJ          *float64               `json:"energy_kj,omitempty"`
	DataSource        string                 `json:"data_source"`
	WeightMethod      string                 `json:"weight_method"`
	ProportionalScale bool                   `json:"proportional_scale"`
	Density           *domain.DensityProfile `json:"density,omitempty"`
}

func encodeDishes(dishes []domain.Dish) ([]byte, error) {
	docs := make([]dishDoc, 0, len(dishes))

	for _, d := range dishes {
		switch d := d.(type) {
		case *domain.AIDish:
			ingredients := make([]ingredientDoc, len(d.Ingredients))
			for i, ing := range d.Ingredients {
				ingredients[i] = ingredientDoc{
					Name:              ing.Name,
					WeightG:           ing.WeightG,
					Macros:            ing.Macros,
					EnergyKJ:          ing.EnergyKJ,
					DataSource:        ing.DataSource.String(),
					WeightMethod:      ing.WeightMethod.String(),
					ProportionalScale: ing.ProportionalScale,
					Density:           ing.Density,
				}
			}
			docs = append(docs, dishDoc{
				Kind:        dishKindAI,
				ID:          d.ID,
				Name:        d.Name,
				Enabled:     d.Enabled,
				Ingredients: ingredients,
			})

		case *domain.UserDish:
			docs = append(docs, dishDoc{
				Kind:     dishKindUser,
				ID:       d.ID,
				Name:     d.Name,
				Enabled:  d.Enabled,
				WeightG:  d.WeightG,
				ProteinG: d.ProteinG,
				FatG:     d.FatG,
				CarbG:    d.CarbG,
				FiberG:   d.FiberG,
				SodiumMg: d.SodiumMg,
			})

		default:
			return nil, fmt.Errorf("encode dishes: unsupported dish type %T", d)
		}
	}

	return json.Marshal(docs)
}

func decodeDishes(data []byte) ([]domain.Dish, error) {
	var docs []dishDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("decode dishes: %w", err)
	}

	dishes := make([]domain.Dish, 0, len(docs))
	for _, doc := range docs {
		switch doc.Kind {
		case dishKindAI:
			ingredients := make([]domain.Ingredient, len(doc.Ingredients))
			for i, ing := range doc.Ingredients {
				ingredients[i] = domain.Ingredient{
					Name:              ing.Name,
					WeightG:           ing.WeightG,
					Macros:            ing.Macros,
					EnergyKJ:          ing.EnergyKJ,
					DataSource:        domain.DataSource(ing.DataSource),
					WeightMethod:      domain.WeightMethod(ing.WeightMethod),
					ProportionalScale: ing.ProportionalScale,
					Density:           ing.Density,
				}
			}
			dishes = append(dishes, &domain.AIDish{
				ID:          doc.ID,
				Name:        doc.Name,
				Enabled:     doc.Enabled,
				Ingredients: ingredients,
			})

		case dishKindUser:
			dishes = append(dishes, &domain.UserDish{
				ID:       doc.ID,
				Name:     doc.Name,
				Enabled:  doc.Enabled,
				WeightG:  doc.WeightG,
				ProteinG: doc.ProteinG,
				FatG:     doc.FatG,
				CarbG:    doc.CarbG,
				FiberG:   doc.FiberG,
				SodiumMg: doc.SodiumMg,
			})

		default:
			return nil, fmt.Errorf("decode dishes: unknown dish kind %q", doc.Kind)
		}
	}

	return dishes, nil
}
