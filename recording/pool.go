package recording

import "github.com/gogpu/cull"

// ResourcePool stores the paths referenced by recording commands.
// Each Add operation clones the path to keep the recording immutable.
//
// ResourcePool is not safe for concurrent use. If concurrent access is needed,
// external synchronization must be provided.
type ResourcePool struct {
	paths []*cull.Path
}

// NewResourcePool creates an empty resource pool with pre-allocated capacity.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		paths: make([]*cull.Path, 0, 64),
	}
}

// AddPath adds a path to the pool and returns its reference.
// The path is cloned to ensure immutability of the recording.
// A nil path is not stored; the returned reference is invalid.
func (p *ResourcePool) AddPath(path *cull.Path) PathRef {
	if path == nil {
		return PathRef(InvalidRef)
	}
	p.paths = append(p.paths, path.Clone())
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return PathRef(uint32(len(p.paths) - 1))
}

// GetPath returns the path for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetPath(ref PathRef) *cull.Path {
	if !ref.IsValid() || int(ref) >= len(p.paths) {
		return nil
	}
	return p.paths[ref]
}

// PathCount returns the number of paths in the pool.
func (p *ResourcePool) PathCount() int {
	return len(p.paths)
}

// Clear removes all resources from the pool.
// This does not release the underlying memory; use NewResourcePool for that.
func (p *ResourcePool) Clear() {
	p.paths = p.paths[:0]
}

// Clone creates a deep copy of the resource pool.
func (p *ResourcePool) Clone() *ResourcePool {
	clone := &ResourcePool{
		paths: make([]*cull.Path, len(p.paths)),
	}
	for i, path := range p.paths {
		clone.paths[i] = path.Clone()
	}
	return clone
}
