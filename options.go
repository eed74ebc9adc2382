package celldeco

import "log/slog"

// TrackerOption configures a Tracker or a Renderer.
//
// Example:
//
//	tr := celldeco.NewTracker(metrics, size, celldeco.WithCapacity(64))
type TrackerOption func(*trackerOptions)

// trackerOptions holds optional configuration for Tracker creation.
type trackerOptions struct {
	capacity int
	logger   *slog.Logger
}

// defaultTrackerOptions returns the default tracker options.
func defaultTrackerOptions() trackerOptions {
	return trackerOptions{
		capacity: 0,   // grow on demand
		logger:   nil, // package logger
	}
}

// WithCapacity pre-sizes the rectangle list for n entries.
// Negative values are treated as zero.
func WithCapacity(n int) TrackerOption {
	return func(o *trackerOptions) {
		o.capacity = max(n, 0)
	}
}

// WithLogger overrides the package logger for one tracker or renderer.
// A nil logger selects the package logger again.
func WithLogger(l *slog.Logger) TrackerOption {
	return func(o *trackerOptions) {
		o.logger = l
	}
}
