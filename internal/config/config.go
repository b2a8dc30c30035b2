package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Meal     MealConfig     `yaml:"meal"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// MealConfig holds meal editing limits and display settings.
type MealConfig struct {
	MaxDishesPerMeal      int    `yaml:"max_dishes_per_meal"      env:"MEAL_MAX_DISHES_PER_MEAL"      env-default:"30"`
	MaxIngredientsPerDish int    `yaml:"max_ingredients_per_dish" env:"MEAL_MAX_INGREDIENTS_PER_DISH" env-default:"50"`
	DefaultEnergyUnit     string `yaml:"default_energy_unit"      env:"MEAL_DEFAULT_ENERGY_UNIT"      env-default:"kcal"`
}
