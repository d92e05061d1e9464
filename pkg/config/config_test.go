package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/edgebend/pkg/curve"
	"github.com/matzehuels/edgebend/pkg/errors"
)

func TestParse(t *testing.T) {
	input := `
dist = 0.3
precision = 40
polarity = "random"
seed = 42
workers = 4
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Dist == nil || *cfg.Dist != 0.3 {
		t.Errorf("Dist = %v, want 0.3", cfg.Dist)
	}
	if cfg.Precision == nil || *cfg.Precision != 40 {
		t.Errorf("Precision = %v, want 40", cfg.Precision)
	}
	if cfg.Polarity != "random" {
		t.Errorf("Polarity = %q, want random", cfg.Polarity)
	}
	if cfg.Seed == nil || *cfg.Seed != 42 {
		t.Errorf("Seed = %v, want 42", cfg.Seed)
	}
	if cfg.Workers == nil || *cfg.Workers != 4 {
		t.Errorf("Workers = %v, want 4", cfg.Workers)
	}
}

func TestParsePartial(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`precision = 50`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Dist != nil {
		t.Errorf("absent dist parsed as %v, want nil", *cfg.Dist)
	}

	opts := curve.DefaultOptions()
	cfg.Apply(&opts)
	if opts.Precision != 50 {
		t.Errorf("Precision = %d, want 50", opts.Precision)
	}
	if opts.Dist != 0.2 {
		t.Errorf("absent key overrode default: Dist = %v", opts.Dist)
	}
	if opts.Polarity != curve.PolarityFixed {
		t.Errorf("absent key overrode default: Polarity = %v", opts.Polarity)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "malformed TOML", input: `dist = =`},
		{name: "unknown polarity", input: `polarity = "clockwise"`},
		{name: "wrong type", input: `precision = "many"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error code = %v, want INVALID_CONFIG", errors.GetCode(err))
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFilename)
	if err := os.WriteFile(path, []byte("dist = 0.25\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Dist == nil || *cfg.Dist != 0.25 {
		t.Errorf("Dist = %v, want 0.25", cfg.Dist)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}
