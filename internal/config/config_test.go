package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"studentcard/internal/config"
)

func TestLoadDefaultsWhenNoFileExists(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("STUDENTCARD_LOG_LEVEL", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if !strings.HasSuffix(resolved, filepath.Join(".config", "studentcard", "config.toml")) {
		t.Fatalf("unexpected resolved path %q", resolved)
	}
	if *cfg != config.Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadReadsFileAndNormalizes(t *testing.T) {
	t.Setenv("STUDENTCARD_LOG_LEVEL", "")
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "[logging]\nformat = \" JSON \"\nlevel = \"Debug\"\n\n[output]\ncolor = \"never\"\nformat = \"yaml\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected file at %q to be used, got %q exists=%v", path, resolved, exists)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging config: %+v", cfg.Logging)
	}
	if cfg.Output.Color != config.ColorNever || cfg.Output.Format != "yaml" {
		t.Fatalf("unexpected output config: %+v", cfg.Output)
	}
}

func TestLoadFindsProjectConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	project := t.TempDir()
	t.Chdir(project)
	if err := os.WriteFile("studentcard.toml", []byte("[output]\nformat = \"toml\"\n"), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}

	cfg, _, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected project config to be found")
	}
	if cfg.Output.Format != "toml" {
		t.Fatalf("expected toml output format, got %q", cfg.Output.Format)
	}
}

func TestEnvOverridesLogLevel(t *testing.T) {
	t.Setenv("STUDENTCARD_LOG_LEVEL", "ERROR")
	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Level != "error" {
		t.Fatalf("expected env level override, got %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("STUDENTCARD_LOG_LEVEL", "")
	cases := map[string]string{
		"logging.format": "[logging]\nformat = \"xml\"\n",
		"logging.level":  "[logging]\nlevel = \"loud\"\n",
		"output.color":   "[output]\ncolor = \"rainbow\"\n",
		"output.format":  "[output]\nformat = \"csv\"\n",
	}
	for key, content := range cases {
		t.Run(key, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatalf("expected validation error for %s", key)
			}
			if !strings.Contains(err.Error(), key) {
				t.Fatalf("expected error to mention %s, got %v", key, err)
			}
		})
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[output]\ncolour = \"never\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected unknown key to be rejected")
	}
}

func TestCreateSampleProducesValidConfig(t *testing.T) {
	t.Setenv("STUDENTCARD_LOG_LEVEL", "")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	var parsed config.Config
	if err := toml.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("sample is not valid TOML: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if *cfg != config.Default() {
		t.Fatalf("sample should match defaults, got %+v", cfg)
	}
}

func TestEncodeRoundTrips(t *testing.T) {
	cfg := config.Default()
	cfg.Output.Format = "yaml"
	b, err := cfg.Encode()
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	var parsed config.Config
	if err := toml.Unmarshal(b, &parsed); err != nil {
		t.Fatalf("unmarshal encoded config: %v", err)
	}
	if parsed != cfg {
		t.Fatalf("encoded config did not round trip: %+v", parsed)
	}
}

func TestExpandPathHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := config.ExpandPath("~/cards/out.json")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if got != filepath.Join(home, "cards", "out.json") {
		t.Fatalf("unexpected expansion %q", got)
	}
}
