package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/draftboard/internal/platform/logging"
)

// Config stores runtime configuration for both binaries: the ranked-list
// generator and the draft board server.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	CORSAllowedOrigins []string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration

	SleeperUsername string
	SleeperBaseURL  string
	SleeperTimeout  time.Duration

	DataDir           string
	RankingsCSVPath   string
	SecondaryCSVPath  string
	OrderedRosterPath string
	OutputPath        string
	CuratedListsPath  string

	MatchMinScore   int
	IncludeDefenses bool

	LogLevel logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	sleeperTimeout, err := time.ParseDuration(getEnv("SLEEPER_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SLEEPER_TIMEOUT: %w", err)
	}
	if sleeperTimeout <= 0 {
		return Config{}, fmt.Errorf("SLEEPER_TIMEOUT must be > 0")
	}

	matchMinScore, err := getEnvAsInt("MATCH_MIN_SCORE", 80)
	if err != nil {
		return Config{}, fmt.Errorf("parse MATCH_MIN_SCORE: %w", err)
	}
	if matchMinScore < 0 || matchMinScore > 100 {
		return Config{}, fmt.Errorf("MATCH_MIN_SCORE must be between 0 and 100")
	}

	includeDefenses, err := strconv.ParseBool(getEnv("INCLUDE_DEFENSES", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse INCLUDE_DEFENSES: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	dataDir := strings.TrimSpace(getEnv("APP_DATA_DIR", "data"))
	if dataDir == "" {
		return Config{}, fmt.Errorf("APP_DATA_DIR cannot be empty")
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("APP_SERVICE_NAME", "draftboard"),
		ServiceVersion:     getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("APP_HTTP_ADDR", ":8080"),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		SleeperUsername:    strings.TrimSpace(getEnv("SLEEPER_USERNAME", "")),
		SleeperBaseURL:     strings.TrimSpace(getEnv("SLEEPER_BASE_URL", "https://api.sleeper.app/v1")),
		SleeperTimeout:     sleeperTimeout,
		DataDir:            dataDir,
		RankingsCSVPath:    strings.TrimSpace(getEnv("RANKINGS_CSV_PATH", "FantasyPros_Rankings.csv")),
		SecondaryCSVPath:   strings.TrimSpace(getEnv("SECONDARY_CSV_PATH", "")),
		OrderedRosterPath:  strings.TrimSpace(getEnv("ORDERED_ROSTER_PATH", "")),
		OutputPath:         strings.TrimSpace(getEnv("OUTPUT_CSV_PATH", "output.csv")),
		CuratedListsPath:   strings.TrimSpace(getEnv("CURATED_LISTS_PATH", "")),
		MatchMinScore:      matchMinScore,
		IncludeDefenses:    includeDefenses,
		LogLevel:           parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}

	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if cfg.RankingsCSVPath == "" {
		return Config{}, fmt.Errorf("RANKINGS_CSV_PATH cannot be empty")
	}
	if cfg.OutputPath == "" {
		return Config{}, fmt.Errorf("OUTPUT_CSV_PATH cannot be empty")
	}

	return cfg, nil
}

// RequireSleeperUsername enforces the one setting that has no sensible
// default. Only the generator calls it; the board server can run from a
// previously written output file.
func (c Config) RequireSleeperUsername() error {
	if c.SleeperUsername == "" {
		return fmt.Errorf("SLEEPER_USERNAME is required")
	}
	return nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
