package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
	"worldcup-scoreboard/internal/constants"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	ServerPort           string
	LogLevel             string
	DBPath               string
	FixturesURL          string
	ScoreboardURL        string
	FlagBaseURL          string
	PageTitle            string
	Location             *time.Location
	FlagProbeConcurrency int
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		DBPath:        getEnv("DB_PATH", "file:winners?mode=memory&cache=shared"),
		FixturesURL:   getEnv("FIXTURES_URL", "https://worldcupjson.net/matches/today"),
		ScoreboardURL: getEnv("SCOREBOARD_URL", "https://keepthescore.co/api/gcxzugpegbr/board/"),
		FlagBaseURL:   getEnv("FLAG_BASE_URL", "https://countryflagsapi.com/png"),
		PageTitle:     getEnv("PAGE_TITLE", "Bloopers Worldcup 2022"),
	}

	tz := getEnv("TIMEZONE", "Local")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", tz, err)
	}
	cfg.Location = loc

	concurrency := getEnv("FLAG_PROBE_CONCURRENCY", strconv.Itoa(constants.DefaultFlagProbeConcurrency))
	cfg.FlagProbeConcurrency, err = strconv.Atoi(concurrency)
	if err != nil || cfg.FlagProbeConcurrency < 1 {
		return nil, fmt.Errorf("FLAG_PROBE_CONCURRENCY must be a positive integer, got %q", concurrency)
	}

	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	logger.Info().
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Str("fixtures_url", cfg.FixturesURL).
		Str("scoreboard_url", cfg.ScoreboardURL).
		Str("flag_base_url", cfg.FlagBaseURL).
		Str("timezone", cfg.Location.String()).
		Int("flag_probe_concurrency", cfg.FlagProbeConcurrency).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var Module = fx.Provide(Load)
