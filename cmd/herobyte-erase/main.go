// herobyte-erase: apply an eraser stroke to a HeroByte scene file
//
// Reads a scene (JSON) and a recorded eraser path (CSV or Excel), runs the
// erasure engine over every drawing and writes the updated scene plus an op
// log describing the deletes and inserts that were applied.
//
// Build:
//   go build -o herobyte-erase ./cmd/herobyte-erase
//
// Usage:
//   herobyte-erase erase --scene map.json --path stroke.csv
//   herobyte-erase import-dxf dungeon.dxf map.json
//   herobyte-erase config init

package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
