package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Input  InputConfig  `mapstructure:"input"`
	Output OutputConfig `mapstructure:"output"`
	Logger LoggerConfig `mapstructure:"logger"`
}

// InputConfig holds command file configuration
type InputConfig struct {
	Path string `mapstructure:"path"`
}

// OutputConfig holds bill output configuration
type OutputConfig struct {
	Format    string `mapstructure:"format"`     // text or excel
	ExcelPath string `mapstructure:"excel_path"` // used when format is excel
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Override with environment variables
	bindEnvVars()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Input defaults
	viper.SetDefault("input.path", "commands.txt")

	// Output defaults
	viper.SetDefault("output.format", "text")
	viper.SetDefault("output.excel_path", "bill.xlsx")

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.output_path", "stderr")
	viper.SetDefault("logger.format", "console")
}

// bindEnvVars binds environment variables to configuration
func bindEnvVars() {
	viper.BindEnv("input.path", "BILLING_INPUT_PATH")
	viper.BindEnv("output.format", "BILLING_OUTPUT_FORMAT")
	viper.BindEnv("output.excel_path", "BILLING_EXCEL_PATH")
	viper.BindEnv("logger.level", "BILLING_LOG_LEVEL")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Input.Path == "" {
		return fmt.Errorf("input.path is required")
	}

	switch c.Output.Format {
	case "text", "excel":
	default:
		return fmt.Errorf("output.format must be text or excel, got %q", c.Output.Format)
	}

	if c.Output.Format == "excel" && c.Output.ExcelPath == "" {
		return fmt.Errorf("output.excel_path is required for excel output")
	}

	return nil
}
