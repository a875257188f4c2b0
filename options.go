package cull

import "log/slog"

// TrackerOption configures a Tracker during creation.
//
// Example:
//
//	tr := cull.NewTracker(cull.NewRect(0, 0, 800, 600), cull.IdentityTransform(),
//	    cull.WithLogger(logger),
//	    cull.WithStackCapacity(32))
type TrackerOption func(*trackerOptions)

// trackerOptions holds optional configuration for Tracker creation.
type trackerOptions struct {
	logger        *slog.Logger
	stackCapacity int
}

// defaultStackCapacity is the number of save levels preallocated when no
// capacity is given.
const defaultStackCapacity = 8

// defaultTrackerOptions returns the default tracker options.
func defaultTrackerOptions() trackerOptions {
	return trackerOptions{
		logger:        nil, // falls back to Logger() at log time
		stackCapacity: defaultStackCapacity,
	}
}

// WithLogger sets the logger a Tracker reports contract violations and
// transform promotions to. Without it the package logger is used.
func WithLogger(l *slog.Logger) TrackerOption {
	return func(o *trackerOptions) {
		o.logger = l
	}
}

// WithStackCapacity preallocates room for n save levels, so saves up to that
// depth do not allocate. Values below 1 are ignored.
func WithStackCapacity(n int) TrackerOption {
	return func(o *trackerOptions) {
		if n > 0 {
			o.stackCapacity = n
		}
	}
}
