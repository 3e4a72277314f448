package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "docscheck.yaml")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadConfig_RootOverrideFillsEmptyFileValue(t *testing.T) {
	t.Setenv("DOCSCHECK_TEST_UNSET_ROOT", "")
	p := writeConfig(t, "docs:\n  root: ${DOCSCHECK_TEST_UNSET_ROOT}\n")

	cfg, err := loadConfig(p, true, ".", false)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Docs.Root != "." {
		t.Errorf("root = %q, want %q", cfg.Docs.Root, ".")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("config with overridden root should validate: %v", err)
	}
}

func TestLoadConfig_EmptyRootWithoutOverrideFailsValidation(t *testing.T) {
	t.Setenv("DOCSCHECK_TEST_UNSET_ROOT", "")
	p := writeConfig(t, "docs:\n  root: ${DOCSCHECK_TEST_UNSET_ROOT}\n")

	cfg, err := loadConfig(p, true, "", false)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("empty root should fail validation")
	}
}

func TestLoadConfig_MissingOptionalFileUsesDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"), false, "", true)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Docs.Root != "." || !cfg.Watch.Enabled {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"), true, "", false)
	if err == nil || !strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("err = %v", err)
	}
}

func TestLoadConfig_ExampleFileWithRootFlag(t *testing.T) {
	t.Setenv("DOCSCHECK_ROOT", "")
	cfg, err := loadConfig(filepath.Join("..", "..", "docscheck.example.yaml"), true, ".", false)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("example config with --root should validate: %v", err)
	}
	if len(cfg.LegacyPaths) != 4 {
		t.Errorf("legacy paths = %d, want 4", len(cfg.LegacyPaths))
	}
}
