package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"ing2ofx/internal/ofx"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// LogConfig controls the level and format of the application log.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// CSVConfig controls how the ING export is read.
type CSVConfig struct {
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// OFXConfig carries the signon and statement constants written into every
// document.
type OFXConfig struct {
	BankID   string `mapstructure:"bank_id" yaml:"bank_id"`
	Currency string `mapstructure:"currency" yaml:"currency"`
	Org      string `mapstructure:"org" yaml:"org"`
	FID      string `mapstructure:"fid" yaml:"fid"`
}

// OutputConfig controls where documents end up.
type OutputConfig struct {
	Directory string `mapstructure:"directory" yaml:"directory"`
}

// CodesConfig points at the optional transaction code override file.
type CodesConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

// Config represents the complete application configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	CSV    CSVConfig    `mapstructure:"csv" yaml:"csv"`
	OFX    OFXConfig    `mapstructure:"ofx" yaml:"ofx"`
	Output OutputConfig `mapstructure:"output" yaml:"output"`
	Codes  CodesConfig  `mapstructure:"codes" yaml:"codes"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.ing2ofx")
	v.AddConfigPath(".ing2ofx")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("ING2OFX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// The unprefixed logging variables stay supported; the prefixed form
	// wins when both are set.
	_ = v.BindEnv("log.level", "ING2OFX_LOG_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv("log.format", "ING2OFX_LOG_FORMAT", "LOG_FORMAT")

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars
			Logger.Warnf("Error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// defaultConfig builds the configuration that applies when neither a config
// file nor environment variables are present.
func defaultConfig() *Config {
	v := viper.New()
	setDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		// The defaults are statically known to unmarshal.
		Logger.Errorf("Failed to build default configuration: %v", err)
	}
	return &config
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// CSV defaults
	v.SetDefault("csv.delimiter", ",")

	// OFX document defaults
	v.SetDefault("ofx.bank_id", ofx.DefaultBankID)
	v.SetDefault("ofx.currency", ofx.DefaultCurrency)
	v.SetDefault("ofx.org", ofx.DefaultOrg)
	v.SetDefault("ofx.fid", ofx.DefaultFID)

	// Output defaults
	v.SetDefault("output.directory", "ofx")

	// Code mapping defaults
	v.SetDefault("codes.file", "")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if utf8.RuneCountInString(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if utf8.RuneCountInString(config.OFX.Currency) != 3 {
		return fmt.Errorf("ofx.currency must be a three letter ISO 4217 code, got: %s", config.OFX.Currency)
	}

	if config.Output.Directory == "" {
		return fmt.Errorf("output.directory must not be empty")
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
