package celldeco

import (
	"context"
	"log/slog"
)

// run is the state of one decoration kind: closed, or open since start.
type run struct {
	start Cell
	open  bool
}

// Tracker merges decorated cells into rectangles during one rendering pass.
//
// Cells are fed in traversal order with Update. A run of one decoration stays
// open while the cells share its line, carry the decoration, keep the start
// foreground and sit in the column right after the previous cell. When a run
// breaks, one rectangle spanning the whole run is emitted. Rects flushes the
// runs that are still open and returns every rectangle.
//
// A Tracker is single use and not safe for concurrent use.
type Tracker struct {
	rects []ColoredRect
	runs  [numDecorations]run

	// last is valid once hasLast is set by the first Update.
	last    Cell
	hasLast bool

	metrics Metrics
	size    SizeInfo
	logger  *slog.Logger

	emitted int
	pushed  int
	done    bool
}

// NewTracker creates a tracker for one rendering pass.
//
// The metrics and size are not validated here; use NewRenderer to validate
// them once at startup.
func NewTracker(m Metrics, s SizeInfo, opts ...TrackerOption) *Tracker {
	o := defaultTrackerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newTracker(m, s, o)
}

func newTracker(m Metrics, s SizeInfo, o trackerOptions) *Tracker {
	t := &Tracker{
		metrics: m,
		size:    s,
		logger:  o.logger,
	}
	if o.capacity > 0 {
		t.rects = make([]ColoredRect, 0, o.capacity)
	}
	return t
}

// Update advances every decoration run by one cell.
func (t *Tracker) Update(c Cell) {
	t.checkDone()

	for k := range numDecorations {
		r := &t.runs[k]
		if r.open {
			if t.continues(r.start, c, k) {
				continue
			}
			t.emit(r.start, k)
		}
		*r = run{start: c, open: c.Flags.Has(k)}
	}

	t.last = c
	t.hasLast = true
}

// continues reports whether c extends the run of k that began at start.
// Adjacency is checked against the previous cell, not the run length.
func (t *Tracker) continues(start, c Cell, k Decoration) bool {
	return c.Line == start.Line &&
		c.Flags.Has(k) &&
		c.Fg == start.Fg &&
		c.Column == t.last.Column+1
}

// emit closes the run of k at the last processed cell.
func (t *Tracker) emit(start Cell, k Decoration) {
	t.rects = append(t.rects, MapRun(start, t.last, k, t.metrics, t.size))
	t.emitted++
}

// Push appends a rectangle that bypasses run merging, such as a cursor or a
// selection highlight. It does not affect open runs.
func (t *Tracker) Push(r Rect, c RGBA) {
	t.checkDone()
	t.rects = append(t.rects, ColoredRect{Rect: r, Color: c})
	t.pushed++
}

// Open reports whether a run of decoration d is currently open.
func (t *Tracker) Open(d Decoration) bool {
	return t.runs[d].open
}

// LastCell returns the most recently processed cell. The second result is
// false until the first Update.
func (t *Tracker) LastCell() (Cell, bool) {
	return t.last, t.hasLast
}

// Rects flushes the open runs against the last processed cell and returns
// all rectangles in accumulation order.
//
// The tracker must not be used after Rects.
func (t *Tracker) Rects() []ColoredRect {
	t.checkDone()
	t.done = true

	for k := range numDecorations {
		r := &t.runs[k]
		if !r.open {
			continue
		}
		// A run can only be open after an Update, so last is set.
		t.emit(r.start, k)
		r.open = false
	}

	t.log().LogAttrs(context.Background(), slog.LevelDebug, "celldeco: pass finished",
		slog.Int("runs", t.emitted),
		slog.Int("pushed", t.pushed),
		slog.Int("rects", len(t.rects)),
	)

	rects := t.rects
	t.rects = nil
	return rects
}

func (t *Tracker) log() *slog.Logger {
	if t.logger != nil {
		return t.logger
	}
	return Logger()
}

// checkDone panics if the tracker has already been finalized.
func (t *Tracker) checkDone() {
	if t.done {
		panic("celldeco: Tracker used after Rects")
	}
}
