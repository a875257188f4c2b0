package recording

import "log/slog"

// RecorderOption configures a Recorder during creation.
//
// Example:
//
//	rec := recording.NewRecorder(cullRect,
//	    recording.WithRecordCulling(true),
//	    recording.WithRecorderLogger(logger))
type RecorderOption func(*recorderOptions)

// recorderOptions holds optional configuration for Recorder creation.
type recorderOptions struct {
	recordCulling bool
	logger        *slog.Logger // nil means cull.Logger() at log time
}

// defaultRecorderOptions returns the default recorder options.
func defaultRecorderOptions() recorderOptions {
	return recorderOptions{}
}

// WithRecordCulling drops draws that are already invisible when they are
// recorded. Dropped draws are counted by Recorder.Culled and
// Recording.Culled.
func WithRecordCulling(enabled bool) RecorderOption {
	return func(o *recorderOptions) {
		o.recordCulling = enabled
	}
}

// WithRecorderLogger sets the logger used by the recorder and its tracker.
func WithRecorderLogger(l *slog.Logger) RecorderOption {
	return func(o *recorderOptions) {
		o.logger = l
	}
}
