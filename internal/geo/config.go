package geo

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MapConfig overrides the projection bounds and marker colors from a YAML
// file, so the bounding box stays configuration rather than code.
type MapConfig struct {
	Bounds Bounds            `yaml:"bounds"`
	Colors map[string]string `yaml:"colors"`
}

// LoadConfig reads a map config file. The bounds must describe a non-empty
// rectangle; color entries are optional overrides keyed by lowercased type.
func LoadConfig(path string) (MapConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MapConfig{}, err
	}
	var cfg MapConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MapConfig{}, err
	}
	if cfg.Bounds.LatMax <= cfg.Bounds.LatMin || cfg.Bounds.LngMax <= cfg.Bounds.LngMin {
		return MapConfig{}, fmt.Errorf("map config %s: bounds describe an empty rectangle", path)
	}
	return cfg, nil
}

// Palette resolves a marker color function from the config overrides,
// falling back to the built-in mapping.
func (c MapConfig) Palette() func(string) string {
	if len(c.Colors) == 0 {
		return MarkerColor
	}
	return func(violationType string) string {
		if color, ok := c.Colors[normalizeType(violationType)]; ok {
			return color
		}
		return MarkerColor(violationType)
	}
}
