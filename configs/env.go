package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Env struct {
	DatabaseURL        string        `env:"DATABASE_URL" validate:"required"`
	Port               int           `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`
	AllowedOrigins     string        `env:"ALLOWED_ORIGINS" envDefault:"*"`
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=trace debug info warn error"`
	ReadTimeout        time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s" validate:"gt=0"`
	WriteTimeout       time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s" validate:"gt=0"`
	RateLimitPerMinute int           `env:"RATE_LIMIT_PER_MINUTE" envDefault:"100" validate:"min=1"`
	SeedFile           string        `env:"SEED_FILE" envDefault:"data/holidays.yaml"`
}

// LoadEnv reads the given dotenv files (".env" when none is given) into the
// process environment, then parses and validates Env. Missing dotenv files
// are not an error; the variables may come from the real environment.
func LoadEnv(filenames ...string) (Env, error) {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Env{}, fmt.Errorf("failed to load env file: %w", err)
	}

	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("failed to parse env: %w", err)
	}

	if err := NewValidate().Struct(cfg); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
			return Env{}, fmt.Errorf("invalid env %s: failed on %q", validationErrs[0].Field(), validationErrs[0].Tag())
		}
		return Env{}, fmt.Errorf("invalid env: %w", err)
	}

	return cfg, nil
}
