package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk YAML form of a scene with its discovery metadata
type File struct {
	Name        string `yaml:"name,omitempty"`
	Description string `yaml:"description,omitempty"`
	Group       string `yaml:"group,omitempty"`
	Scene       `yaml:",inline"`
}

// ReadFile parses a scene file including its metadata
func ReadFile(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("failed to parse scene file %s: %w", path, err)
	}
	return &f, nil
}

// Load reads a YAML scene file
func Load(path string) (*Scene, error) {
	f, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := f.Scene
	return &s, nil
}

// Save writes a scene to path as YAML
func Save(path string, s *Scene) error {
	return WriteFile(path, &File{Scene: *s})
}

// WriteFile writes a scene file including its metadata
func WriteFile(path string, f *File) error {
	b, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to encode scene: %w", err)
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("failed to write scene file: %w", err)
	}
	return nil
}
