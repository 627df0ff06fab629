package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	defaultSimulations = 10000
	maxSimulations     = 50000
	defaultMaxLag      = 5
	maxLagCap          = 20
	defaultConcurrency = 4
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	DataPath string
	LogDir   string
	// DrawsDir holds one <LOTTO_TYPE>.jsonl file per game.
	DrawsDir      string
	TierTableFile string
	// Tier is the subscription tier the server answers for.
	Tier                string
	SimulationCount     int
	SimulationSeed      int64
	MaxLag              int
	BatchConcurrency    int
	EnableMermaidCharts bool
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// The binary directory wins, which is what an MCP host launching us expects.
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}

	logDir := filepath.Join(dataPath, "logs")
	drawsDir := getEnv("DRAWS_DIR", filepath.Join(dataPath, "draws"))

	if err := os.MkdirAll(drawsDir, 0755); err != nil {
		log.Warn().Err(err).Str("path", drawsDir).Msg("Failed to create draws directory")
	}

	cfg := &AppConfig{
		DataPath:            dataPath,
		LogDir:              logDir,
		DrawsDir:            drawsDir,
		TierTableFile:       getEnv("TIER_TABLE_FILE", ""),
		Tier:                getEnv("TIER", "FREE"),
		SimulationCount:     getEnvInt("SIMULATION_COUNT", defaultSimulations),
		SimulationSeed:      getEnvInt64("SIMULATION_SEED", 0),
		MaxLag:              getEnvInt("MAX_AUTOCORRELATION_LAG", defaultMaxLag),
		BatchConcurrency:    getEnvInt("BATCH_CONCURRENCY", defaultConcurrency),
		EnableMermaidCharts: getEnvBool("ENABLE_MERMAID_CHARTS", false),
	}

	if cfg.SimulationCount <= 0 || cfg.SimulationCount > maxSimulations {
		log.Warn().Int("value", cfg.SimulationCount).Msg("SIMULATION_COUNT out of range, using default")
		cfg.SimulationCount = defaultSimulations
	}
	if cfg.MaxLag <= 0 {
		cfg.MaxLag = defaultMaxLag
	}
	if cfg.MaxLag > maxLagCap {
		log.Warn().Int("value", cfg.MaxLag).Int("cap", maxLagCap).Msg("MAX_AUTOCORRELATION_LAG capped")
		cfg.MaxLag = maxLagCap
	}
	if cfg.BatchConcurrency <= 0 {
		cfg.BatchConcurrency = defaultConcurrency
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Warn().Str("key", key).Str("value", value).Msg("Ignoring non-numeric setting")
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
		log.Warn().Str("key", key).Str("value", value).Msg("Ignoring non-numeric setting")
	}
	return fallback
}
