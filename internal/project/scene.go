package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/loshunter/HeroByte-sub004/internal/model"
)

// SaveScene writes a scene to the given path as indented JSON.
// It creates parent directories if they do not exist.
func SaveScene(path string, scene model.Scene) error {
	if scene.Drawings == nil {
		scene.Drawings = []model.Drawing{}
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create scene directory: %w", err)
	}
	data, err := json.MarshalIndent(scene, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scene: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write scene file: %w", err)
	}
	return nil
}

// LoadScene reads a scene from the given path. Drawings with an unknown type
// are rejected. Drawings without an ID, or repeating an earlier drawing's ID,
// are given a fresh one.
func LoadScene(path string) (model.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Scene{}, fmt.Errorf("failed to read scene file: %w", err)
	}
	var scene model.Scene
	if err := json.Unmarshal(data, &scene); err != nil {
		return model.Scene{}, fmt.Errorf("failed to parse scene file: %w", err)
	}
	if scene.Drawings == nil {
		scene.Drawings = []model.Drawing{}
	}

	seen := make(map[string]bool, len(scene.Drawings))
	for i, d := range scene.Drawings {
		if !d.Type.Valid() {
			return model.Scene{}, fmt.Errorf("invalid scene file: drawing %d has unknown type %q", i, d.Type)
		}
		if d.Points == nil {
			return model.Scene{}, fmt.Errorf("invalid scene file: drawing %d has no points", i)
		}
		for scene.Drawings[i].ID == "" || seen[scene.Drawings[i].ID] {
			scene.Drawings[i].ID = model.NewDrawing(d.Type).ID
		}
		seen[scene.Drawings[i].ID] = true
	}
	return scene, nil
}
