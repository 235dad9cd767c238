// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scenario

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/panchayat/models"
)

var ErrUnsupportedFormat = errors.New("unsupported scenario format")

// Load reads a scenario from a .yaml, .yml or .json file
func Load(path string) (models.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Scenario{}, fmt.Errorf("failed to read scenario: %w", err)
	}

	sc, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return models.Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return sc, nil
}

// Parse decodes scenario data; ext selects the format (".yaml", ".yml" or ".json")
func Parse(data []byte, ext string) (models.Scenario, error) {
	var sc models.Scenario

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &sc); err != nil {
			return models.Scenario{}, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&sc); err != nil {
			return models.Scenario{}, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return models.Scenario{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return sc, nil
}
