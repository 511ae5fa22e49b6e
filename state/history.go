// Copyright 2026 The Neml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package state implements the named heterogeneous storage of internal
// (secondary) variables at a material point
package state

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/MDARIFULHASAN/neml/tsr"
)

// History stores the internal variables of a material point in one flat
// contiguous buffer. Each variable has a unique name, a storage kind and
// an offset assigned in registration order.
//
// A history either owns its buffer (allocating and growing it as
// variables are registered) or borrows a buffer managed by an external
// caller (see SetData). The mode is fixed at construction. A borrowing
// history is invalidated the moment the external buffer is freed or
// resized by its owner; views obtained from any history are invalidated
// by subsequent registrations on it.
type History struct {
	owns  bool                // this history owns its buffer
	size  int                 // total number of storage components
	data  la.Vector           // flat buffer; nil until SetData for borrowing mode
	loc   map[string]int      // name => offset
	kinds map[string]tsr.Kind // name => storage kind; same key set as loc
	names []string            // registration order
}

// NewHistory returns a new empty history. With owning=true the history
// allocates and grows its own buffer; otherwise it expects an external
// buffer via SetData.
func NewHistory(owning bool) *History {
	return &History{
		owns:  owning,
		loc:   make(map[string]int),
		kinds: make(map[string]tsr.Kind),
	}
}

// Owns tells whether this history owns its buffer
func (o *History) Owns() bool { return o.owns }

// Size returns the total number of storage components of all registered
// variables; i.e. the required buffer length
func (o *History) Size() int { return o.size }

// NumVars returns the number of registered variables
func (o *History) NumVars() int { return len(o.names) }

// Add registers a new variable. The offset is the current total size;
// registration order therefore determines the layout. In owning mode the
// buffer grows, preserving existing values and zero-filling the new
// slots. In borrowing mode the buffer is never reallocated: growing past
// the length of an already attached buffer is an error.
// Registering a name twice is an error and leaves the history unchanged.
func (o *History) Add(name string, kind tsr.Kind) error {
	if _, ok := o.loc[name]; ok {
		return chk.Err("history already has a variable named %q", name)
	}
	n := tsr.Size(kind)
	if !o.owns && o.data != nil && o.size+n > len(o.data) {
		return chk.Err("history cannot grow to %d components: external buffer has %d", o.size+n, len(o.data))
	}
	o.loc[name] = o.size
	o.kinds[name] = kind
	o.names = append(o.names, name)
	o.size += n
	if o.owns {
		o.data = append(o.data, make(la.Vector, n)...)
	}
	return nil
}

// SetData attaches an externally managed buffer to a borrowing history.
// The buffer is not copied and ownership is not transferred; subsequent
// accesses read and write through it. The caller must keep the buffer
// alive and must not resize it while this history references it.
func (o *History) SetData(v la.Vector) error {
	if o.owns {
		return chk.Err("cannot attach external buffer to an owning history")
	}
	if len(v) < o.size {
		return chk.Err("external buffer with %d components is too short for history requiring %d", len(v), o.size)
	}
	o.data = v
	return nil
}

// CopyData copies Size() values from v into the buffer this history
// currently references, leaving the schema untouched. Valid in either
// mode; in borrowing mode it mutates the borrowed buffer.
func (o *History) CopyData(v la.Vector) error {
	if len(v) < o.size {
		return chk.Err("source with %d components is too short for history requiring %d", len(v), o.size)
	}
	if o.data == nil && o.size > 0 {
		return chk.Err("history has no buffer attached")
	}
	copy(o.data[:o.size], v)
	return nil
}

// Access returns the raw buffer for bulk interchange with numeric
// routines. Callers must not change the layout assumptions, only values.
func (o *History) Access() la.Vector {
	return o.data
}

// Names returns the variable names in registration (offset) order
func (o *History) Names() []string { return o.names }

// Offset returns the buffer offset of a variable
func (o *History) Offset(name string) (int, error) {
	off, ok := o.loc[name]
	if !ok {
		return 0, chk.Err("history does not have a variable named %q", name)
	}
	return off, nil
}

// KindOf returns the storage kind of a variable
func (o *History) KindOf(name string) (tsr.Kind, error) {
	kind, ok := o.kinds[name]
	if !ok {
		return 0, chk.Err("history does not have a variable named %q", name)
	}
	return kind, nil
}

// Compatible tells whether other has exactly the same layout as this
// history: same names, same kinds, same offsets
func (o *History) Compatible(other *History) bool {
	if other == nil || o.size != other.size || len(o.loc) != len(other.loc) {
		return false
	}
	for name, off := range o.loc {
		if otherOff, ok := other.loc[name]; !ok || otherOff != off {
			return false
		}
		if o.kinds[name] != other.kinds[name] {
			return false
		}
	}
	return true
}

// Scale multiplies every component of the buffer by s, regardless of
// variable boundaries
func (o *History) Scale(s float64) {
	for i := 0; i < o.size; i++ {
		o.data[i] *= s
	}
}

// Zero fills the components of all registered variables with zeros
func (o *History) Zero() {
	for i := 0; i < o.size; i++ {
		o.data[i] = 0
	}
}

// Accumulate adds the values of other into this history, element-wise.
// The two histories must be layout-compatible; on mismatch an error is
// returned and this history is left unchanged.
func (o *History) Accumulate(other *History) error {
	if !o.Compatible(other) {
		return chk.Err("histories are not layout-compatible: cannot accumulate")
	}
	if o.size == 0 {
		return nil
	}
	la.VecAdd(o.data[:o.size], 1, o.data[:o.size], 1, other.data[:other.size])
	return nil
}

// Set copies the values of other into this history. The two histories
// must be layout-compatible; on mismatch an error is returned and this
// history is left unchanged.
func (o *History) Set(other *History) error {
	if !o.Compatible(other) {
		return chk.Err("histories are not layout-compatible: cannot set values")
	}
	if o.size > 0 {
		copy(o.data[:o.size], other.data[:other.size])
	}
	return nil
}

// GetCopy returns an independent owning deep copy of this history: same
// schema, freshly allocated buffer, values copied element-for-element.
// Copying a borrowing history that has no buffer attached yields a
// zeroed owning history with the same schema.
func (o *History) GetCopy() *History {
	c := NewHistory(true)
	c.size = o.size
	c.names = append(c.names, o.names...)
	for name, off := range o.loc {
		c.loc[name] = off
	}
	for name, kind := range o.kinds {
		c.kinds[name] = kind
	}
	c.data = la.NewVector(o.size)
	if o.data != nil {
		copy(c.data, o.data[:o.size])
	}
	return c
}
