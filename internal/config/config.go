package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port           string        `env:"PORT" envDefault:"3000"`
	DatabaseURL    string        `env:"DATABASE_URL,required"`
	JWTSecret      string        `env:"JWT_SECRET,required"`
	SessionTTL     time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:5173"`

	// Report mail sink. Leaving SMTPHost empty disables delivery; reports are
	// still accepted and logged.
	SMTPHost       string `env:"SMTP_HOST"`
	SMTPPort       int    `env:"SMTP_PORT" envDefault:"587"`
	AdminEmail     string `env:"ADMIN_EMAIL"`
	AdminEmailPass string `env:"ADMIN_EMAIL_PASS"`
}

// Load reads .env when present, then parses the environment. A missing .env
// is not an error; required variables are enforced by the parser.
func Load() (Config, error) {
	_ = godotenv.Load()
	return env.ParseAs[Config]()
}
