package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/loshunter/HeroByte-sub004/internal/board"
)

// OpLogVersion is written into every op log file.
const OpLogVersion = "1.0.0"

// OpLog is the on-disk record of the ops produced by one eraser run.
type OpLog struct {
	Version   string      `json:"version"`
	CreatedAt string      `json:"created_at"`
	Site      string      `json:"site"`
	Stats     board.Stats `json:"stats"`
	Ops       []board.Op  `json:"ops"`
}

// SaveOpLog writes the ops issued by site to a JSON file at path.
func SaveOpLog(path, site string, ops []board.Op, stats board.Stats) error {
	if ops == nil {
		ops = []board.Op{}
	}
	log := OpLog{
		Version:   OpLogVersion,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Site:      site,
		Stats:     stats,
		Ops:       ops,
	}
	data, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal op log: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create op log directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write op log: %w", err)
	}
	return nil
}

// LoadOpLog reads an op log written by SaveOpLog.
func LoadOpLog(path string) (OpLog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return OpLog{}, fmt.Errorf("failed to read op log: %w", err)
	}
	var log OpLog
	if err := json.Unmarshal(data, &log); err != nil {
		return OpLog{}, fmt.Errorf("failed to parse op log: %w", err)
	}
	if log.Version == "" {
		return OpLog{}, fmt.Errorf("invalid op log: missing version field")
	}
	if log.Ops == nil {
		log.Ops = []board.Op{}
	}
	return log, nil
}
