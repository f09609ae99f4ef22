package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It panics if the embedded
// document is broken, which can only happen at build time.
func Default() Config {
	var c Config
	if err := yaml.Unmarshal(defaultYAML, &c); err != nil {
		panic(fmt.Sprintf("config: embedded default.yaml: %v", err))
	}
	return c
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path yields the defaults. The result is validated.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := Decode(data, &c); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Decode overlays a YAML document onto c and validates the result.
func Decode(data []byte, c *Config) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	return nil
}

// Encode renders c back to YAML.
func Encode(c Config) ([]byte, error) {
	b, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return b, nil
}
