// Where: cli/internal/config/project.go
// What: ragcraft.yml load/save helpers.
// Why: Record the choices a project was scaffolded with, next to its code.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the project record written at each scaffolded project root.
const FileName = "ragcraft.yml"

// ProjectConfig captures the data produced at scaffold time.
type ProjectConfig struct {
	App         AppConfig `yaml:"app"`
	Stack       Stack     `yaml:"stack"`
	DataSources []string  `yaml:"data_sources,omitempty"`
}

// AppConfig contains the application name and generated layout.
type AppConfig struct {
	Name     string `yaml:"name"`
	Backend  string `yaml:"backend"`
	Frontend string `yaml:"frontend"`
}

// Stack describes the model and infrastructure choices.
type Stack struct {
	Framework   string `yaml:"framework"`
	VectorStore string `yaml:"vector_store"`
	Model       string `yaml:"model"`
	Port        int    `yaml:"port"`
}

// ProjectConfigPath returns the record path for a project root.
func ProjectConfigPath(root string) string {
	return filepath.Join(root, FileName)
}

// LoadProjectConfig reads and parses a project record.
func LoadProjectConfig(path string) (ProjectConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return ProjectConfig{}, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return ProjectConfig{}, err
	}
	return cfg, nil
}

// SaveProjectConfig writes a ProjectConfig to the specified path.
func SaveProjectConfig(path string, cfg ProjectConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, payload, 0o644)
}
