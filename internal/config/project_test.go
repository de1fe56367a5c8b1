// Where: cli/internal/config/project_test.go
// What: Tests for ragcraft.yml helpers.
// Why: Ensure project records round-trip correctly.
package config

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestProjectConfigRoundTrip(t *testing.T) {
	path := ProjectConfigPath(t.TempDir())
	cfg := ProjectConfig{
		App: AppConfig{
			Name:     "demo-chat",
			Backend:  "backend",
			Frontend: "frontend",
		},
		Stack: Stack{
			Framework:   "fastapi",
			VectorStore: "qdrant",
			Model:       "gpt-4o-mini",
			Port:        8000,
		},
		DataSources: []string{"./docs"},
	}

	if err := SaveProjectConfig(path, cfg); err != nil {
		t.Fatalf("save project config: %v", err)
	}

	loaded, err := LoadProjectConfig(path)
	if err != nil {
		t.Fatalf("load project config: %v", err)
	}

	if !reflect.DeepEqual(cfg, loaded) {
		t.Fatalf("config mismatch: expected %#v, got %#v", cfg, loaded)
	}
}

func TestSaveProjectConfigCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", FileName)
	if err := SaveProjectConfig(path, ProjectConfig{}); err != nil {
		t.Fatalf("save project config: %v", err)
	}
	if _, err := LoadProjectConfig(path); err != nil {
		t.Fatalf("load project config: %v", err)
	}
}
