package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"sprintcal/internal/sprint"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Defaults for the sprint cadence when nothing is configured: Tuesday
// releases, one week of development, one week of QA, three visible months.
const (
	DefaultWeekday       = 2
	DefaultDevDays       = 7
	DefaultQADays        = 7
	DefaultDisplayMonths = 3
)

// AppConfig holds the complete application configuration. The cadence inside
// it has already passed validation; the calculator core never re-checks it.
type AppConfig struct {
	Cadence           sprint.Cadence
	DisplayMonths     int
	DataPath          string
	LogDir            string
	EnableGanttCharts bool
}

// Load loads the configuration from .env files and environment variables.
// Cadence parameters are validated here, at the boundary, so malformed input
// is rejected with a descriptive error before any period arithmetic runs.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory (highest priority for MCP servers)
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory (useful for development/go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	// 3. Resolve data paths
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}

	logDir := os.Getenv("LOGS_FOLDER")
	if logDir == "" {
		logDir = filepath.Join(dataPath, "logs")
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Warn().Err(err).Str("path", logDir).Msg("Failed to create log directory")
	}

	// 4. Resolve and validate the cadence
	weekday, err := getEnvInt("SPRINT_WEEKDAY", DefaultWeekday)
	if err != nil {
		return nil, err
	}
	devDays, err := getEnvInt("SPRINT_DEV_DAYS", DefaultDevDays)
	if err != nil {
		return nil, err
	}
	qaDays, err := getEnvInt("SPRINT_QA_DAYS", DefaultQADays)
	if err != nil {
		return nil, err
	}
	months, err := getEnvInt("SPRINT_DISPLAY_MONTHS", DefaultDisplayMonths)
	if err != nil {
		return nil, err
	}
	if months < 1 {
		return nil, fmt.Errorf("SPRINT_DISPLAY_MONTHS must be at least 1, got %d", months)
	}

	cadence, err := sprint.NewCadence(weekday, devDays, qaDays)
	if err != nil {
		return nil, fmt.Errorf("invalid sprint cadence: %w", err)
	}

	return &AppConfig{
		Cadence:           cadence,
		DisplayMonths:     months,
		DataPath:          dataPath,
		LogDir:            logDir,
		EnableGanttCharts: getEnvBool("ENABLE_GANTT_CHARTS", false),
	}, nil
}

func getEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, value)
	}
	return n, nil
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
