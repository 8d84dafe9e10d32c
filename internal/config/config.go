package config

import (
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	ProjectName string `env:"PROJECT_NAME" env-default:"NextHire"`
	HTTPAddr    string `env:"HTTP_ADDR" env-default:":8080"`
	DebugMode   bool   `env:"DEBUG_MODE" env-default:"false"`

	DatabaseURL string `env:"DATABASE_URL" env-required:"true"`
	RedisURL    string `env:"REDIS_URL"`

	// Comma-separated list of allowed CORS origins.
	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" env-default:"http://localhost:3000"`

	// Hard cap on the number of job rows. Creation returns 503 past it.
	MaxJobPostings int64 `env:"MAX_JOB_POSTINGS" env-default:"1000"`
}

// MustLoad reads configuration from the environment, honoring a local .env
// file when present. Panics on missing required values.
func MustLoad() *Config {
	_ = godotenv.Load(".env")

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic("failed to read config: " + err.Error())
	}
	return &cfg
}

// CORSOrigins splits CORSAllowedOrigins into a clean list.
func (c *Config) CORSOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
