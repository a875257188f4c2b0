package recording

import "errors"

var (
	// ErrInvalidPath is returned by Playback when a command references a
	// path that is not in the resource pool.
	ErrInvalidPath = errors.New("recording: invalid path reference")

	// ErrUnsupportedCommand is returned by Playback for command types it
	// does not know how to replay.
	ErrUnsupportedCommand = errors.New("recording: unsupported command")

	// ErrUnknownBackend is returned by NewBackend for names nothing was
	// registered under.
	ErrUnknownBackend = errors.New("recording: unknown backend")
)
