package pipeline

import (
	"slices"
	"sort"
)

type entry struct {
	mod     Modifier
	enabled bool
}

type opKind int

const (
	opAdd opKind = iota
	opRemove
	opEnable
	opDisable
)

type pendingOp struct {
	kind opKind
	mod  Modifier
}

// Registry holds the attached modifiers in phase order.
//
// Sorting is deferred: a dirty flag is set when the set changes and the
// stable sort by phase runs once, right before the next pass. Mutations
// requested while a pass is iterating are buffered and applied after it.
type Registry struct {
	entries   []entry
	dirty     bool
	iterating bool
	pending   []pendingOp
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add attaches and enables a modifier. Adding one already present is a no-op.
func (r *Registry) Add(m Modifier) {
	if m == nil {
		return
	}
	if r.iterating {
		r.pending = append(r.pending, pendingOp{kind: opAdd, mod: m})
		return
	}
	if r.indexOf(m) >= 0 {
		return
	}

	r.entries = append(r.entries, entry{mod: m, enabled: true})
	m.ResetModifier()

	if len(r.entries) >= 2 {
		r.dirty = true
	}
}

// Remove disables and detaches a modifier. Removing an absent one is a no-op.
func (r *Registry) Remove(m Modifier) {
	if m == nil {
		return
	}
	if r.iterating {
		r.pending = append(r.pending, pendingOp{kind: opRemove, mod: m})
		return
	}
	i := r.indexOf(m)
	if i < 0 {
		return
	}

	if r.entries[i].enabled {
		m.ResetModifier()
	}
	r.entries = slices.Delete(r.entries, i, i+1)
}

// SetEnabled toggles a modifier. Both transitions reset it; setting the
// current value again does nothing.
func (r *Registry) SetEnabled(m Modifier, enabled bool) {
	if m == nil {
		return
	}
	if r.iterating {
		kind := opDisable
		if enabled {
			kind = opEnable
		}
		r.pending = append(r.pending, pendingOp{kind: kind, mod: m})
		return
	}
	i := r.indexOf(m)
	if i < 0 || r.entries[i].enabled == enabled {
		return
	}

	r.entries[i].enabled = enabled
	m.ResetModifier()
}

// Enabled reports whether m is attached and enabled.
func (r *Registry) Enabled(m Modifier) bool {
	i := r.indexOf(m)
	return i >= 0 && r.entries[i].enabled
}

// Contains reports whether m is attached.
func (r *Registry) Contains(m Modifier) bool {
	return r.indexOf(m) >= 0
}

// Len returns the number of attached modifiers.
func (r *Registry) Len() int {
	return len(r.entries)
}

// MarkDirty forces a re-sort before the next pass, e.g. after a phase change.
func (r *Registry) MarkDirty() {
	if len(r.entries) >= 2 {
		r.dirty = true
	}
}

// Modifiers returns the attached modifiers in execution order.
func (r *Registry) Modifiers() []Modifier {
	r.sortIfDirty()
	out := make([]Modifier, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.mod
	}
	return out
}

// ForEachEnabled calls fn for every enabled modifier in phase order.
// Add/Remove/SetEnabled calls made from fn take effect after the pass.
func (r *Registry) ForEachEnabled(fn func(Modifier)) {
	r.sortIfDirty()

	r.iterating = true
	for _, e := range r.entries {
		if e.enabled {
			fn(e.mod)
		}
	}
	r.iterating = false

	r.flushPending()
}

func (r *Registry) sortIfDirty() {
	if !r.dirty {
		return
	}
	r.dirty = false
	if len(r.entries) < 2 {
		return
	}

	sort.SliceStable(r.entries, func(i, j int) bool {
		return r.entries[i].mod.Phase() < r.entries[j].mod.Phase()
	})
}

func (r *Registry) flushPending() {
	if len(r.pending) == 0 {
		return
	}
	ops := r.pending
	r.pending = nil

	for _, op := range ops {
		switch op.kind {
		case opAdd:
			r.Add(op.mod)
		case opRemove:
			r.Remove(op.mod)
		case opEnable:
			r.SetEnabled(op.mod, true)
		case opDisable:
			r.SetEnabled(op.mod, false)
		}
	}
}

func (r *Registry) indexOf(m Modifier) int {
	for i, e := range r.entries {
		if e.mod == m {
			return i
		}
	}
	return -1
}

// Find returns the first attached modifier of type T.
func Find[T Modifier](r *Registry) (T, bool) {
	for _, e := range r.entries {
		if t, ok := e.mod.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}
