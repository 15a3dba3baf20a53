// Package store provides functionality for loading user-maintained mapping
// files from their standard locations.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// CodeStore loads the optional YAML file that overrides how bank transaction
// codes map onto OFX transaction types.
type CodeStore struct {
	CodesFile string
}

// NewCodeStore creates a new store for transaction code mappings.
func NewCodeStore(codesFile string) *CodeStore {
	return &CodeStore{
		CodesFile: codesFile,
	}
}

// FindConfigFile looks for a configuration file in standard locations
func (s *CodeStore) FindConfigFile(filename string) (string, error) {
	// Check if it's an absolute path
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	// Common locations to check for config files
	locations := []string{
		filename,                          // Current directory
		filepath.Join("config", filename), // ./config/ directory
	}

	// Try each location
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	// If still not found, check in user's home directory under .config/ing2ofx/
	homeDir, err := os.UserHomeDir()
	if err == nil {
		configDir := filepath.Join(homeDir, ".config", "ing2ofx")
		configPath := filepath.Join(configDir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadCodeMappings loads transaction code mappings from YAML. A missing file
// is not an error, the built-in mappings simply apply unchanged.
func (s *CodeStore) LoadCodeMappings() (map[string]string, error) {
	filename := s.CodesFile
	if filename == "" {
		filename = "codes.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("Code mappings file not found: %s", filename)
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("error resolving code mappings file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading code mappings file: %w", err)
	}

	var mappings map[string]string
	if err := yaml.Unmarshal(data, &mappings); err != nil {
		return nil, fmt.Errorf("error parsing code mappings: %w", err)
	}

	log.Debugf("Loaded %d code mappings from %s", len(mappings), filePath)
	return mappings, nil
}
