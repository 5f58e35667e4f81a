package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"hudspal/tracker/internal/domain"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Catalogs CatalogsConfig `mapstructure:"catalogs"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Goals    GoalsConfig    `mapstructure:"goals"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// CatalogsConfig points at the two delimited-text reference datasets.
type CatalogsConfig struct {
	NutritionURL string        `mapstructure:"nutrition_url"`
	ExerciseURL  string        `mapstructure:"exercise_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// JWTConfig defines JWT specific configuration
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

// GoalsConfig carries the default daily targets assigned to fabricated users.
type GoalsConfig struct {
	Calories     float64 `mapstructure:"calories"`
	Protein      float64 `mapstructure:"protein"`
	Carbs        float64 `mapstructure:"carbs"`
	Fat          float64 `mapstructure:"fat"`
	Water        float64 `mapstructure:"water"`
	Sleep        float64 `mapstructure:"sleep"`
	WeightTarget float64 `mapstructure:"weight_target"`
}

// Defaults converts the configured goal targets to the domain type.
func (g GoalsConfig) Defaults() domain.Goals {
	return domain.Goals{
		Calories:     g.Calories,
		Protein:      g.Protein,
		Carbs:        g.Carbs,
		Fat:          g.Fat,
		Water:        g.Water,
		Sleep:        g.Sleep,
		WeightTarget: g.WeightTarget,
	}
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment variables, e.g. catalogs.nutrition_url -> CATALOGS_NUTRITION_URL
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("catalogs.nutrition_url", "https://hebbkx1anhila5yf.public.blob.vercel-storage.com/nutrition_facts-WuHMtwNPhC6V24rBM4IpHTkTzmT6Oh.csv")
	viper.SetDefault("catalogs.exercise_url", "https://hebbkx1anhila5yf.public.blob.vercel-storage.com/exercises_progress_with_categories-qNUlDL96k5VmJXE0LB6YikfqJnbjLs.csv")
	viper.SetDefault("catalogs.timeout", "15s")
	viper.SetDefault("jwt.secret", "dev-secret-change-me")
	viper.SetDefault("jwt.expiration", "24h")
	viper.SetDefault("goals.calories", 2000)
	viper.SetDefault("goals.protein", 150)
	viper.SetDefault("goals.carbs", 250)
	viper.SetDefault("goals.fat", 67)
	viper.SetDefault("goals.water", 8)
	viper.SetDefault("goals.sleep", 8)
	viper.SetDefault("goals.weight_target", 150)

	err = viper.ReadInConfig()
	// A missing config file is fine; defaults and env vars cover everything.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
