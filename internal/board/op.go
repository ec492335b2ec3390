package board

import "github.com/loshunter/HeroByte-sub004/internal/model"

// OpType is the kind of change an Op makes to a scene.
type OpType string

const (
	OpInsertDrawing OpType = "insert_drawing"
	OpDeleteDrawing OpType = "delete_drawing"
)

// Op is one change to the scene, ordered by Lamport timestamp.
type Op struct {
	Type      OpType         `json:"type"`
	DrawingID string         `json:"drawing_id"`
	Drawing   *model.Drawing `json:"drawing,omitempty"` // set for inserts
	Lamport   uint64         `json:"lamport"`
	Site      string         `json:"site"`
}
