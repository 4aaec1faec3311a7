package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of the sales ledger tool.
type Config struct {
	// Reports
	ReportDir    string `yaml:"report_dir"`
	ReportName   string `yaml:"report_name"` // File name without extension
	RankingLimit int    `yaml:"ranking_limit"`

	// Session
	LoadSampleData bool `yaml:"load_sample_data"`

	// Observability
	LogLevel    string `yaml:"log_level"`
	MetricsFile string `yaml:"metrics_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ReportDir:      "relatorios",
		ReportName:     "relatorio_geral",
		RankingLimit:   5,
		LoadSampleData: true,
		LogLevel:       "info",
	}
}

// Load builds the configuration from defaults, a .env file, the environment
// and, when SALES_CONFIG names one, a YAML file. Later sources win.
func Load() (Config, error) {
	// A missing .env file is not an error
	_ = godotenv.Load()

	cfg := Default()
	cfg.ReportDir = getEnv("SALES_REPORT_DIR", cfg.ReportDir)
	cfg.ReportName = getEnv("SALES_REPORT_NAME", cfg.ReportName)
	cfg.RankingLimit = getEnvInt("SALES_RANKING_LIMIT", cfg.RankingLimit)
	cfg.LoadSampleData = getEnvBool("SALES_SAMPLE_DATA", cfg.LoadSampleData)
	cfg.LogLevel = getEnv("SALES_LOG_LEVEL", cfg.LogLevel)
	cfg.MetricsFile = getEnv("SALES_METRICS_FILE", cfg.MetricsFile)

	if path := os.Getenv("SALES_CONFIG"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// Validate validates the configuration and returns an error if invalid
func (c Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.ReportDir) == "" {
		problems = append(problems, "report directory is required")
	}
	if strings.TrimSpace(c.ReportName) == "" {
		problems = append(problems, "report name is required")
	} else if strings.ContainsAny(c.ReportName, `/\`) {
		problems = append(problems, fmt.Sprintf("invalid report name %q: must not contain path separators", c.ReportName))
	}
	if c.RankingLimit < 0 {
		problems = append(problems, fmt.Sprintf("invalid ranking limit %d: must not be negative", c.RankingLimit))
	}
	if _, err := c.Level(); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return errors.New("configuration validation failed: " + strings.Join(problems, "; "))
	}
	return nil
}

// Level returns the zerolog level named by LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(c.LogLevel)))
	if err != nil || c.LogLevel == "" {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return level, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
