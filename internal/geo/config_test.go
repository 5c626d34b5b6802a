package geo

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
bounds:
  lat_min: 10.0
  lat_max: 11.0
  lng_min: 20.0
  lng_max: 21.0
colors:
  "gas leak": "#8b5cf6"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Bounds.LatMin != 10.0 || cfg.Bounds.LngMax != 21.0 {
		t.Errorf("unexpected bounds: %+v", cfg.Bounds)
	}

	color := cfg.Palette()
	if got := color("Gas Leak"); got != "#8b5cf6" {
		t.Errorf("override color = %s", got)
	}
	if got := color("Fire Detected"); got != ColorFire {
		t.Errorf("built-in fallback = %s, want %s", got, ColorFire)
	}
}

func TestLoadConfigRejectsEmptyRectangle(t *testing.T) {
	path := writeConfig(t, `
bounds:
  lat_min: 11.0
  lat_max: 10.0
  lng_min: 20.0
  lng_max: 21.0
`)
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for inverted bounds")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
