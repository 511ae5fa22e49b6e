// Copyright 2026 The Neml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"github.com/cpmech/gosl/chk"

	"github.com/MDARIFULHASAN/neml/tsr"
)

// view constrains the tensor types that can be read out of a history:
// named float64 slices carrying their own storage kind. Types outside
// the closed kind set do not satisfy the constraint and fail to compile.
type view interface {
	~[]float64
	StorageKind() tsr.Kind
}

// Get returns a view of type T over the components of a variable. The
// view aliases the history's buffer: reads and writes through it reach
// the underlying storage directly. The variable must exist and must
// have been registered with the storage kind of T; both conditions are
// checked on every call.
// A view is invalidated by any subsequent Add on its source history.
func Get[T view](o *History, name string) (T, error) {
	var res T
	off, ok := o.loc[name]
	if !ok {
		return res, chk.Err("history does not have a variable named %q", name)
	}
	kind := res.StorageKind()
	if o.kinds[name] != kind {
		return res, chk.Err("variable %q is stored as %v: cannot access it as %v", name, o.kinds[name], kind)
	}
	n := tsr.Size(kind)
	return T(o.data[off : off+n : off+n]), nil
}

// GetScalar returns a reference to the slot of a scalar variable.
// Assignment through the returned pointer mutates the history in place.
// The same existence and kind checks of Get apply.
func GetScalar(o *History, name string) (*float64, error) {
	off, ok := o.loc[name]
	if !ok {
		return nil, chk.Err("history does not have a variable named %q", name)
	}
	if o.kinds[name] != tsr.KindScalar {
		return nil, chk.Err("variable %q is stored as %v: cannot access it as %v", name, o.kinds[name], tsr.KindScalar)
	}
	return &o.data[off], nil
}
