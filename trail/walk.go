package trail

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/tilegrid/grid"
)

// frame is one pending stack entry.
type frame struct {
	at    grid.Coord
	depth int
}

// walker encapsulates state during a Walk.
type walker struct {
	m    *Map
	opts WalkOptions
	res  *WalkResult
	seen map[grid.Coord]bool // End coordinates already recorded
}

// Walk expands every path from start under the one-step-up rule.
// It uses an explicit stack and does not memoize: a coordinate reached by
// several paths is visited and expanded once per path, so Arrivals counts
// distinct trails. Steps are explored in grid.Directions order.
// Returns ErrStartOutOfBounds if start is off the map, or the wrapped
// OnVisit error, together with the partial result.
func (m *Map) Walk(start grid.Coord, opts ...Option) (*WalkResult, error) {
	// 1. Validate start
	if !m.g.InBounds(start) {
		return nil, ErrStartOutOfBounds
	}

	// 2. Apply options
	wopts := DefaultOptions()
	for _, fn := range opts {
		fn(&wopts)
	}

	w := &walker{
		m:    m,
		opts: wopts,
		res:  &WalkResult{Graph: make(Graph)},
		seen: make(map[grid.Coord]bool),
	}

	// 3. Traverse
	err := w.run(start)

	// 4. Summarize
	w.opts.Logger.LogAttrs(context.Background(), slog.LevelDebug, "trail walk",
		slog.String("start", start.String()),
		slog.Int("visits", w.res.Visits),
		slog.Int("arrivals", w.res.Arrivals),
		slog.Int("ends", len(w.res.Ends)),
		slog.Bool("aborted", err != nil),
	)

	return w.res, err
}

func (w *walker) run(start grid.Coord) error {
	stack := []frame{{at: start}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		t, _ := w.m.g.TileAt(f.at)
		w.res.Visits++

		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(f.at, t); err != nil {
				return fmt.Errorf("trail: OnVisit hook for %v: %w", f.at, err)
			}
		}

		if t.Kind() == KindEnd {
			w.res.Arrivals++
			if !w.seen[f.at] {
				w.seen[f.at] = true
				w.res.Ends = append(w.res.Ends, f.at)
			}
		}

		if w.opts.MaxDepth >= 0 && f.depth >= w.opts.MaxDepth {
			continue
		}

		steps := w.m.PossibleSteps(f.at)
		if steps == nil {
			steps = []grid.Coord{}
		}
		w.res.Graph[f.at] = steps

		// Push in reverse so the first direction is popped first.
		for i := len(steps) - 1; i >= 0; i-- {
			stack = append(stack, frame{at: steps[i], depth: f.depth + 1})
		}
	}

	return nil
}
