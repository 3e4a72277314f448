package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type sample struct {
	Name  string   `yaml:"name"`
	Items []string `yaml:"items"`
	Level int      `yaml:"level"`
}

var errEmptyName = errors.New("name is empty")

func (s *sample) Validate() error {
	if s.Name == "" {
		return errEmptyName
	}
	return nil
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	p := writeConfig(t, "name: docs\n")
	s := sample{Items: []string{"README.md"}, Level: 3}
	if err := Load(p, &s); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Name != "docs" || s.Level != 3 || len(s.Items) != 1 {
		t.Errorf("unexpected config: %+v", s)
	}
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("DOCSCHECK_TEST_NAME", "from-env")
	p := writeConfig(t, "name: ${DOCSCHECK_TEST_NAME}\n")
	var s sample
	if err := Load(p, &s); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Name != "from-env" {
		t.Errorf("name = %q, want from-env", s.Name)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	var s sample
	err := Load(filepath.Join(t.TempDir(), "nope.yaml"), &s)
	if err == nil || !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("err = %v", err)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	p := writeConfig(t, "name: [unclosed\n")
	var s sample
	err := Load(p, &s)
	if err == nil || !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("err = %v", err)
	}
}

func TestLoad_RunsValidation(t *testing.T) {
	p := writeConfig(t, "level: 2\n")
	var s sample
	if err := Load(p, &s); !errors.Is(err, errEmptyName) {
		t.Errorf("err = %v, want %v", err, errEmptyName)
	}
}

func TestLoadOptional_MissingFileKeepsDefaults(t *testing.T) {
	s := sample{Name: "default"}
	if err := LoadOptional(filepath.Join(t.TempDir(), "nope.yaml"), &s); err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if s.Name != "default" {
		t.Errorf("name = %q, want default", s.Name)
	}
}

func TestLoadOptional_MissingFileStillValidates(t *testing.T) {
	var s sample
	if err := LoadOptional(filepath.Join(t.TempDir(), "nope.yaml"), &s); !errors.Is(err, errEmptyName) {
		t.Errorf("err = %v, want %v", err, errEmptyName)
	}
}

func TestLoadOptional_ReadsExistingFile(t *testing.T) {
	p := writeConfig(t, "name: present\n")
	s := sample{Name: "default"}
	if err := LoadOptional(p, &s); err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if s.Name != "present" {
		t.Errorf("name = %q, want present", s.Name)
	}
}

func TestRead_SkipsValidation(t *testing.T) {
	p := writeConfig(t, "level: 2\n")
	var s sample
	if err := Read(p, &s); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if s.Level != 2 {
		t.Errorf("level = %d, want 2", s.Level)
	}
}

func TestReadOptional_MissingFile(t *testing.T) {
	var s sample
	if err := ReadOptional(filepath.Join(t.TempDir(), "nope.yaml"), &s); err != nil {
		t.Fatalf("ReadOptional: %v", err)
	}
}
