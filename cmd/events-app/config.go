package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "EVENTS_APP"

// EnvCfg is read from EVENTS_APP_* variables. Each key also falls back to
// its unprefixed name, so a plain API_KEY is picked up.
type EnvCfg struct {
	DBDriver   string `envconfig:"DB_DRIVER" default:"postgres" validate:"oneof=postgres sqlite"`
	DBHost     string `envconfig:"DB_HOST" validate:"required_if=DBDriver postgres"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432" validate:"required_if=DBDriver postgres,gte=0,lte=65535"`
	DBUser     string `envconfig:"DB_USER" validate:"required_if=DBDriver postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" validate:"required_if=DBDriver postgres"`
	DBName     string `envconfig:"DB_NAME" validate:"required_if=DBDriver postgres"`
	DBPath     string `envconfig:"DB_PATH" default:"events.db" validate:"required_if=DBDriver sqlite"`

	Port int `envconfig:"PORT" default:"8080" validate:"gt=0,lte=65535"`

	APIKey         string `envconfig:"API_KEY"`
	HolidayBaseURL string `envconfig:"HOLIDAY_BASE_URL" default:"https://calendarific.com/api/v2" validate:"url"`
	HolidayCountry string `envconfig:"HOLIDAY_COUNTRY" default:"US" validate:"len=2,uppercase"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json" validate:"oneof=json console"`
	Debug     bool   `envconfig:"DEBUG"`
}

var validate = validator.New()

// loadConfig reads an optional .env file, then the environment.
func loadConfig(envFiles ...string) (EnvCfg, error) {

	err := godotenv.Load(envFiles...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return EnvCfg{}, fmt.Errorf("load env file: %w", err)
	}

	var cfg EnvCfg
	err = envconfig.Process(envPrefix, &cfg)
	if err != nil {
		return EnvCfg{}, err
	}

	err = validate.Struct(cfg)
	if err != nil {
		return EnvCfg{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func postgresDSN(cfg EnvCfg) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
	)
}
