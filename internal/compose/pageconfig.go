package compose

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadPageConfig reads a YAML content file. Keys left out of the file keep
// the defaults; every supplied record is validated before it is returned.
// An empty path returns the zero PageConfig.
func LoadPageConfig(path string) (PageConfig, error) {
	if path == "" {
		return PageConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return PageConfig{}, fmt.Errorf("read content file %s: %w", path, err)
	}

	cfg, err := ParsePageConfig(data)
	if err != nil {
		return PageConfig{}, fmt.Errorf("content file %s: %w", path, err)
	}
	return cfg, nil
}

// ParsePageConfig decodes and validates a YAML content document. Unknown
// keys are rejected so that typos do not silently fall back to defaults.
func ParsePageConfig(data []byte) (PageConfig, error) {
	var cfg PageConfig

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return PageConfig{}, fmt.Errorf("parse: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return PageConfig{}, err
	}
	return cfg, nil
}
