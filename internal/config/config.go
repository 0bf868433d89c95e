package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"

	"github.com/csg33k/palmwatch/internal/domain"
)

// Config holds palmwatch settings, populated from the environment (and a
// .env file when present).
type Config struct {
	// BaseURL is the assessment service; submissions go to BaseURL + "/assess".
	BaseURL string `env:"PALMWATCH_BASE_URL,default=http://localhost:5000"`
	Profile string `env:"PALMWATCH_PROFILE,default=dashboard"`
	// Cities are the dashboard's selectable city keys, separated by commas
	// or spaces.
	Cities string `env:"PALMWATCH_CITIES,default=al_hassa qatif hofuf"`

	DBPath    string `env:"DB_PATH,default=palmwatch.db"`
	Port      string `env:"PORT,default=8080"`
	StaticDir string `env:"PALMWATCH_STATIC_DIR,default=web/static"`

	LogLevel    string `env:"LOG_LEVEL,default=info"`
	LogFormat   string `env:"LOG_FORMAT,default=text"`
	MetricsFile string `env:"METRICS_FILE"`
}

// Load reads .env (if any) and then the environment, applying defaults
// where unset. A missing .env file is reported through warn, not as an error.
func Load(warn func(msg string, args ...any)) (*Config, error) {
	if err := godotenv.Load(); err != nil && warn != nil {
		warn("error loading .env file", "err", err)
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("decode environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Profile {
	case domain.ProfileDashboard, domain.ProfileRisk:
	default:
		return fmt.Errorf("invalid PALMWATCH_PROFILE %q: want %s or %s", c.Profile, domain.ProfileDashboard, domain.ProfileRisk)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid LOG_LEVEL %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q", c.LogFormat)
	}
	if c.DBPath == "" {
		return errors.New("DB_PATH is required")
	}
	return nil
}

// CityKeys splits Cities into non-empty keys.
func (c *Config) CityKeys() []string {
	return strings.FieldsFunc(c.Cities, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}
