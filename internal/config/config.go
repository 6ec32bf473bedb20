package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/almanac/internal/contract"
	"github.com/alexanderramin/almanac/internal/wisdom"
	"github.com/joho/godotenv"
)

// EngineConfig holds the recommendation tuning knobs.
type EngineConfig struct {
	MaxSupporting     int
	MaxGlobalInsights int
	MinRelevance      float64
	Weights           wisdom.ScoringWeights
}

// Config holds all configuration for the almanac application.
type Config struct {
	DBPath string
	// KnowledgeBaseFile replaces the embedded corpus when set.
	KnowledgeBaseFile string
	LogLevel          string
	Engine            EngineConfig
}

// DefaultConfig returns a Config with sensible defaults.
// The database lives under ~/.almanac unless the home directory is unknown.
func DefaultConfig() Config {
	dbPath := "almanac.db"
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".almanac", "almanac.db")
	}
	return Config{
		DBPath:   dbPath,
		LogLevel: "warn",
		Engine: EngineConfig{
			MaxSupporting:     contract.DefaultMaxSupporting,
			MaxGlobalInsights: wisdom.DefaultMaxGlobalInsights,
			MinRelevance:      wisdom.MinRelevance,
			Weights:           wisdom.DefaultWeights(),
		},
	}
}

// envFiles are tried in order; the first one found is loaded.
var envFiles = []string{".env", "../.env", "../../.env"}

// Load reads an optional .env file and then applies ALMANAC_* environment
// variables over DefaultConfig. Variables already set in the environment
// take precedence over the .env file.
func Load() Config {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err == nil {
			break
		}
	}
	return LoadFromEnv()
}

// LoadFromEnv applies ALMANAC_* environment variables over DefaultConfig.
// Malformed or out-of-range values are ignored.
func LoadFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("ALMANAC_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("ALMANAC_KB_FILE"); v != "" {
		cfg.KnowledgeBaseFile = v
	}
	if v := os.Getenv("ALMANAC_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("ALMANAC_MAX_SUPPORTING"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Engine.MaxSupporting = n
		}
	}
	if v := os.Getenv("ALMANAC_MAX_GLOBAL_INSIGHTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Engine.MaxGlobalInsights = n
		}
	}
	if v := os.Getenv("ALMANAC_MIN_RELEVANCE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 && f < 1 {
			cfg.Engine.MinRelevance = f
		}
	}

	applyWeightEnv(&cfg.Engine.Weights.Situation, "ALMANAC_WEIGHT_SITUATION")
	applyWeightEnv(&cfg.Engine.Weights.Keywords, "ALMANAC_WEIGHT_KEYWORDS")
	applyWeightEnv(&cfg.Engine.Weights.Scenarios, "ALMANAC_WEIGHT_SCENARIOS")
	applyWeightEnv(&cfg.Engine.Weights.Affinity, "ALMANAC_WEIGHT_AFFINITY")
	applyWeightEnv(&cfg.Engine.Weights.Goals, "ALMANAC_WEIGHT_GOALS")

	return cfg
}

// EngineOptions converts the engine settings to wisdom.Options.
// Weights are normalized so a partial override still sums to 1.0.
func (c Config) EngineOptions() wisdom.Options {
	maxGlobal := c.Engine.MaxGlobalInsights
	if maxGlobal == 0 {
		// Options treats zero as "use the default"; negative disables insights.
		maxGlobal = -1
	}
	return wisdom.Options{
		Weights:           c.Engine.Weights.Normalized(),
		MaxSupporting:     c.Engine.MaxSupporting,
		MaxGlobalInsights: maxGlobal,
		MinRelevance:      c.Engine.MinRelevance,
	}
}

func applyWeightEnv(target *float64, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return
	}
	*target = f
}
