package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Catalog struct {
		SemWisePath     string `yaml:"sem_wise_path" env:"CATALOG_SEM_WISE_PATH"`
		SlotWisePath    string `yaml:"slot_wise_path" env:"CATALOG_SLOT_WISE_PATH"`
		CourseTypesPath string `yaml:"course_types_path" env:"CATALOG_COURSE_TYPES_PATH"`
		// CachePath, when set, points at a pre-merged canonical CSV.
		// The loader reads it instead of re-merging the sources; the
		// build command writes it. Optional.
		CachePath string `yaml:"cache_path" env:"CATALOG_CACHE_PATH"`
	} `yaml:"catalog"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; defaults plus env cover the rest
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Catalog.SemWisePath = "data/sem_wise_details.csv"
	config.Catalog.SlotWisePath = "data/slotwise_details_cleaned.csv"
	config.Catalog.CourseTypesPath = "data/course_type.csv"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if strings.TrimSpace(config.Server.Port) == "" {
		return fmt.Errorf("server port is required")
	}

	// With a cache file the individual sources are not needed
	if config.Catalog.CachePath != "" {
		return nil
	}

	if config.Catalog.SemWisePath == "" {
		return fmt.Errorf("catalog sem_wise_path is required")
	}
	if config.Catalog.SlotWisePath == "" {
		return fmt.Errorf("catalog slot_wise_path is required")
	}
	if config.Catalog.CourseTypesPath == "" {
		return fmt.Errorf("catalog course_types_path is required")
	}

	return nil
}
