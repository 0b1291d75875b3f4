package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	listkiterrors "github.com/alexisbeaulieu97/listkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a configuration file from disk, applies defaults,
// validates it and returns the resulting model.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, listkiterrors.NewParseError(path, 0, err)
	}
	return Parse(data, path)
}

// Parse decodes a configuration document. path is only used in errors.
func Parse(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, listkiterrors.NewParseError(path, extractLine(err), err)
	}

	applyDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when no file is given: a vertical
// list with a one-cell blue divider fed by the simulated source.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
