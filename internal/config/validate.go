package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	// cleanenv's env-required accepts a present-but-empty variable, so the
	// emptiness check lives here.
	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}

	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("database.max_conns (%d) must be >= database.min_conns (%d)",
			c.Database.MaxConns, c.Database.MinConns)
	}

	if err := c.Meal.validate(); err != nil {
		return fmt.Errorf("meal: %w", err)
	}

	return nil
}

func (m *MealConfig) validate() error {
	if m.MaxDishesPerMeal <= 0 {
		return fmt.Errorf("max_dishes_per_meal must be > 0 (got %d)", m.MaxDishesPerMeal)
	}
	if m.MaxIngredientsPerDish <= 0 {
		return fmt.Errorf("max_ingredients_per_dish must be > 0 (got %d)", m.MaxIngredientsPerDish)
	}

	switch m.DefaultEnergyUnit {
	case "kcal", "kj":
	default:
		return fmt.Errorf("default_energy_unit must be kcal or kj (got %q)", m.DefaultEnergyUnit)
	}

	return nil
}
