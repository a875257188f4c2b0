package recording

import "github.com/gogpu/cull"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// State commands
	CmdSave           CommandType = iota // Push a save level
	CmdRestore                           // Pop a save level
	CmdRestoreToCount                    // Pop to a given depth
	CmdConcat                            // Right-multiply the transform
	CmdSetTransform                      // Replace the transform

	// Clip commands
	CmdClipRect  // Clip to a rectangle
	CmdClipRRect // Clip to a rounded rectangle
	CmdClipPath  // Clip to a path

	// Drawing commands
	CmdDrawRect  // Draw a rectangle
	CmdDrawRRect // Draw a rounded rectangle
	CmdDrawPath  // Draw a path
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSave:           "Save",
	CmdRestore:        "Restore",
	CmdRestoreToCount: "RestoreToCount",
	CmdConcat:         "Concat",
	CmdSetTransform:   "SetTransform",
	CmdClipRect:       "ClipRect",
	CmdClipRRect:      "ClipRRect",
	CmdClipPath:       "ClipPath",
	CmdDrawRect:       "DrawRect",
	CmdDrawRRect:      "DrawRRect",
	CmdDrawPath:       "DrawPath",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// IsDraw returns true for commands that produce output.
func (c CommandType) IsDraw() bool {
	return c >= CmdDrawRect && c <= CmdDrawPath
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// --------------------------------------------------------------------------
// Reference Types
// --------------------------------------------------------------------------

// PathRef is a reference to a path in the resource pool.
// The zero value is a valid reference to the first path (if any).
type PathRef uint32

// InvalidRef is the sentinel value for an invalid reference.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference points to a valid path.
func (r PathRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// SaveCommand pushes a copy of the current transform and cull rect.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand pops the current save level.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// RestoreToCountCommand pops save levels until the depth is Count.
type RestoreToCountCommand struct {
	Count int
}

// Type implements Command.
func (RestoreToCountCommand) Type() CommandType { return CmdRestoreToCount }

// ConcatCommand right-multiplies the current transform.
type ConcatCommand struct {
	Transform cull.Transform
}

// Type implements Command.
func (ConcatCommand) Type() CommandType { return CmdConcat }

// SetTransformCommand replaces the current transform.
type SetTransformCommand struct {
	Transform cull.Transform
}

// Type implements Command.
func (SetTransformCommand) Type() CommandType { return CmdSetTransform }

// --------------------------------------------------------------------------
// Clip Commands
// --------------------------------------------------------------------------

// ClipRectCommand clips to a rectangle in local space.
type ClipRectCommand struct {
	Rect cull.Rect
	Op   cull.ClipOp
	AA   bool
}

// Type implements Command.
func (ClipRectCommand) Type() CommandType { return CmdClipRect }

// ClipRRectCommand clips to a rounded rectangle in local space.
type ClipRRectCommand struct {
	RRect cull.RRect
	Op    cull.ClipOp
	AA    bool
}

// Type implements Command.
func (ClipRRectCommand) Type() CommandType { return CmdClipRRect }

// ClipPathCommand clips to a pooled path in local space.
type ClipPathCommand struct {
	Path PathRef
	Op   cull.ClipOp
	AA   bool
}

// Type implements Command.
func (ClipPathCommand) Type() CommandType { return CmdClipPath }

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// DrawRectCommand draws a rectangle.
type DrawRectCommand struct {
	Rect cull.Rect
}

// Type implements Command.
func (DrawRectCommand) Type() CommandType { return CmdDrawRect }

// DrawRRectCommand draws a rounded rectangle.
type DrawRRectCommand struct {
	RRect cull.RRect
}

// Type implements Command.
func (DrawRRectCommand) Type() CommandType { return CmdDrawRRect }

// DrawPathCommand draws a pooled path.
type DrawPathCommand struct {
	Path PathRef
}

// Type implements Command.
func (DrawPathCommand) Type() CommandType { return CmdDrawPath }

// --------------------------------------------------------------------------
// Resolved Shapes
// --------------------------------------------------------------------------

// ShapeKind identifies which field of a Shape is set.
type ShapeKind uint8

const (
	ShapeRect ShapeKind = iota
	ShapeRRect
	ShapePath
)

// String returns the name of the shape kind.
func (k ShapeKind) String() string {
	switch k {
	case ShapeRect:
		return "Rect"
	case ShapeRRect:
		return "RRect"
	case ShapePath:
		return "Path"
	default:
		return "Unknown"
	}
}

// Shape is a clip or draw shape with path references resolved against
// the recording's resource pool. Only the field selected by Kind is set.
type Shape struct {
	Kind  ShapeKind
	Rect  cull.Rect
	RRect cull.RRect
	Path  *cull.Path
}

// Bounds returns the local-space bounds of the shape.
func (s Shape) Bounds() cull.Rect {
	switch s.Kind {
	case ShapeRect:
		return s.Rect
	case ShapeRRect:
		return s.RRect.Bounds()
	case ShapePath:
		if s.Path != nil {
			return s.Path.Bounds()
		}
	}
	return cull.Rect{}
}

// IsInverse returns true if the shape covers everything outside its
// outline. Only paths can be inverse filled.
func (s Shape) IsInverse() bool {
	return s.Kind == ShapePath && s.Path != nil && s.Path.IsInverseFillType()
}

// ClipShape is the shape passed to Backend.Clip.
type ClipShape = Shape

// DrawCommand is a draw that survived culling during playback.
type DrawCommand struct {
	// Shape is the drawn shape in local space.
	Shape Shape

	// Index is the position of the draw among all draw commands of the
	// recording, counting culled ones.
	Index int
}
