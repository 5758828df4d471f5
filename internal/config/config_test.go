package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/phanxgames/panzoom"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != panzoom.DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("maxScale: 12\npanDuration: 1s\neaseOutOfBounds: false\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := panzoom.DefaultConfig()
	want.MaxScale = 12
	want.PanDuration = time.Second
	want.EaseOutOfBounds = false
	if cfg != want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		invalid bool
	}{
		{"bad yaml", "maxScale: [1, 2", false},
		{"bad duration", "boundsDuration: soon", true},
		{"negative scale", "maxScale: -1", true},
		{"momentum too large", "momentumPower: 1.5", true},
		{"negative duration", "scrollDuration: -5ms", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, panzoom.ErrInvalidConfig); got != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalidConfig) = %v, want %v (err: %v)", got, tt.invalid, err)
			}
		})
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	cfg := panzoom.DefaultConfig()
	cfg.MaxScale = 40
	cfg.MomentumPower = 0.05
	cfg.ScrollDuration = 250 * time.Millisecond
	cfg.UseConstraint = false
	cfg.Debug = true

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Errorf("roundtrip = %+v, want %+v", got, cfg)
	}
}

func TestMarshalWritesDurationStrings(t *testing.T) {
	data, err := Marshal(panzoom.DefaultConfig())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for _, want := range []string{"boundsDuration: 166ms", "panDuration: 833ms", "maxScale: 70"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("output missing %q:\n%s", want, data)
		}
	}
}

// File is the only serialised form of panzoom.Config: every Config field
// needs a tagged File counterpart and Config itself carries no yaml tags.
func TestFileCoversConfig(t *testing.T) {
	cfgType := reflect.TypeOf(panzoom.Config{})
	fileType := reflect.TypeOf(File{})
	if cfgType.NumField() != fileType.NumField() {
		t.Errorf("Config has %d fields, File has %d", cfgType.NumField(), fileType.NumField())
	}
	for i := 0; i < cfgType.NumField(); i++ {
		f := cfgType.Field(i)
		if tag, ok := f.Tag.Lookup("yaml"); ok {
			t.Errorf("panzoom.Config.%s has yaml tag %q", f.Name, tag)
		}
		ff, ok := fileType.FieldByName(f.Name)
		if !ok {
			t.Errorf("File has no field for Config.%s", f.Name)
			continue
		}
		if ff.Tag.Get("yaml") == "" {
			t.Errorf("File.%s has no yaml tag", f.Name)
		}
	}
}

func TestLoadUnreadable(t *testing.T) {
	dir := t.TempDir()
	// A directory cannot be read as a file.
	if err := os.Mkdir(filepath.Join(dir, "cfg.yaml"), 0o755); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(filepath.Join(dir, "cfg.yaml")); err == nil {
		t.Error("expected error reading a directory")
	}
}
