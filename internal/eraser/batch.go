package eraser

import (
	"runtime"
	"sync"

	"github.com/loshunter/HeroByte-sub004/internal/geometry"
	"github.com/loshunter/HeroByte-sub004/internal/model"
)

// Outcome is the result for one drawing of a batch evaluation.
type Outcome struct {
	Index     int    // Position of the drawing in the input slice
	DrawingID string // ID of the evaluated drawing
	Result    Result
}

// EvaluateAll evaluates every drawing against one eraser stroke using a pool
// of workers. Outcomes are returned in input order. workers <= 0 means one per
// CPU.
func EvaluateAll(drawings []model.Drawing, e model.EraserStroke, workers int) []Outcome {
	outcomes := make([]Outcome, len(drawings))
	if len(drawings) == 0 {
		return outcomes
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(drawings) {
		workers = len(drawings)
	}

	path := geometry.NewEraserPath(e.Points)

	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				d := drawings[idx]
				outcomes[idx] = Outcome{
					Index:     idx,
					DrawingID: d.ID,
					Result:    evaluate(d, path, e.Width),
				}
			}
		}()
	}

	for i := range drawings {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return outcomes
}

// Summary counts outcomes by kind.
type Summary struct {
	None     int `json:"none"`
	Deleted  int `json:"deleted"`
	Split    int `json:"split"`
	Segments int `json:"segments"`
}

// Summarize tallies a batch of outcomes.
func Summarize(outcomes []Outcome) Summary {
	var s Summary
	for _, o := range outcomes {
		switch o.Result.Kind {
		case KindDelete:
			s.Deleted++
		case KindPartial:
			s.Split++
			s.Segments += len(o.Result.Segments)
		default:
			s.None++
		}
	}
	return s
}
