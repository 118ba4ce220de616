// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package errs defines the classes of errors reported by the truss analysis
package errs

import (
	"errors"
	"fmt"
)

// error classes. test with errors.Is
var (
	ErrGeometry  = errors.New("geometry error")   // degenerate element, duplicate ids, unknown nodes
	ErrMaterial  = errors.New("material error")   // non-positive E or A, unknown material or section
	ErrDimension = errors.New("dimension error")  // DOF index out of range, mismatched sizes
	ErrSupport   = errors.New("support error")    // duplicate or conflicting constraints
	ErrSingular  = errors.New("singular system") // under-constrained or unstable structure
)

// Geometry returns a new error of class ErrGeometry
func Geometry(msg string, prm ...interface{}) error { return wrap(ErrGeometry, msg, prm) }

// Material returns a new error of class ErrMaterial
func Material(msg string, prm ...interface{}) error { return wrap(ErrMaterial, msg, prm) }

// Dimension returns a new error of class ErrDimension
func Dimension(msg string, prm ...interface{}) error { return wrap(ErrDimension, msg, prm) }

// Support returns a new error of class ErrSupport
func Support(msg string, prm ...interface{}) error { return wrap(ErrSupport, msg, prm) }

// Singular returns a new error of class ErrSingular
func Singular(msg string, prm ...interface{}) error { return wrap(ErrSingular, msg, prm) }

func wrap(class error, msg string, prm []interface{}) error {
	return fmt.Errorf("%w: %s", class, fmt.Sprintf(msg, prm...))
}
