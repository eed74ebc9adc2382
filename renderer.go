package celldeco

import (
	"context"
	"iter"
	"log/slog"
)

// Renderer holds validated metrics and cell geometry shared by every
// rendering pass. It is immutable and safe for concurrent use; each pass gets
// its own Tracker.
type Renderer struct {
	metrics Metrics
	size    SizeInfo
	opts    trackerOptions
}

// NewRenderer validates the metrics and cell size and returns a renderer.
// Invalid configuration is reported here, never in the middle of a pass.
func NewRenderer(m Metrics, s SizeInfo, opts ...TrackerOption) (*Renderer, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	o := defaultTrackerOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Renderer{metrics: m, size: s, opts: o}
	r.log().LogAttrs(context.Background(), slog.LevelInfo, "celldeco: renderer ready",
		slog.Float64("cellWidth", s.CellWidth),
		slog.Float64("cellHeight", s.CellHeight),
		slog.Float64("descent", m.Descent),
	)
	return r, nil
}

// Metrics returns the renderer's font metrics.
func (r *Renderer) Metrics() Metrics { return r.metrics }

// Size returns the renderer's cell geometry.
func (r *Renderer) Size() SizeInfo { return r.size }

// Begin starts a new rendering pass.
func (r *Renderer) Begin() *Tracker {
	return newTracker(r.metrics, r.size, r.opts)
}

// Render runs a whole pass over cells and appends the extra rectangles
// unmodified after the cells are processed.
func (r *Renderer) Render(cells iter.Seq[Cell], extra ...ColoredRect) []ColoredRect {
	t := r.Begin()
	for c := range cells {
		t.Update(c)
	}
	for _, cr := range extra {
		t.Push(cr.Rect, cr.Color)
	}
	return t.Rects()
}

func (r *Renderer) log() *slog.Logger {
	if r.opts.logger != nil {
		return r.opts.logger
	}
	return Logger()
}
