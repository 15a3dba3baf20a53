// Package config provides configuration loading for the converter: built-in
// defaults, an optional YAML config file, environment variables and an
// optional .env file.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	once sync.Once
	// Logger is the global logger instance shared across the application
	Logger = logrus.New()

	globalConfig *Config
	configOnce   sync.Once
)

// ConfigureLogging sets up logging based on environment variables and returns
// the configured logger. It is the minimal path used before the full
// configuration has been loaded.
func ConfigureLogging() *logrus.Logger {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		Logger.Warnf("Invalid log level '%s', using 'info'", logLevelStr)
		logLevel = logrus.InfoLevel
	}
	Logger.SetLevel(logLevel)

	logFormat := os.Getenv("LOG_FORMAT")
	if strings.ToLower(logFormat) == "json" {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return Logger
}

// LoadEnv loads environment variables from a .env file if one exists
func LoadEnv() {
	once.Do(func() {
		// Try to find .env file in current directory
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			// Try to find .env in parent directory (project root)
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				Logger.Debug("No .env file found, using environment variables")
				return
			}
		}

		if err := godotenv.Load(envFile); err != nil {
			Logger.Warnf("Error loading .env file: %v", err)
			return
		}
		Logger.Infof("Loaded environment variables from %s", envFile)
	})
}

// GetGlobalConfig returns the application configuration, initializing it on
// first use. A broken environment falls back to the built-in defaults with a
// warning rather than preventing the conversion.
func GetGlobalConfig() *Config {
	configOnce.Do(func() {
		// Minimal env-based logging first, so messages emitted while the
		// configuration itself loads already respect LOG_LEVEL.
		ConfigureLogging()

		var err error
		globalConfig, err = InitializeConfig()
		if err != nil {
			Logger.Warnf("Failed to initialize configuration, using defaults: %v", err)
			globalConfig = defaultConfig()
		}
		Logger = ConfigureLoggingFromConfig(globalConfig)
	})
	return globalConfig
}
