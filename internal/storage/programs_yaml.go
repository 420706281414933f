package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const programsFileName = "programs.yaml"

type yamlPrograms struct {
	Programs []string `yaml:"programs"`
}

// LoadPrograms reads the tracked executable paths in their stored
// order. A missing file yields an empty list; a malformed file yields
// an empty list along with the parse error so startup can degrade
// instead of failing.
func LoadPrograms(dir string) ([]string, error) {
	rawData, err := os.ReadFile(filepath.Join(dir, programsFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read programs file: %w", err)
	}

	var fileData yamlPrograms
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return nil, fmt.Errorf("parse programs yaml: %w", err)
	}
	return fileData.Programs, nil
}

// SavePrograms writes the full tracked set, preserving order.
func SavePrograms(dir string, paths []string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	serialized, err := yaml.Marshal(yamlPrograms{Programs: paths})
	if err != nil {
		return fmt.Errorf("marshal programs yaml: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, programsFileName), serialized, 0o644); err != nil {
		return fmt.Errorf("write programs file: %w", err)
	}

	return nil
}
