// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/strfem/gotruss/ele"
	"github.com/strfem/gotruss/errs"

	"gonum.org/v1/gonum/mat"
)

// AssembleK assembles the global stiffness matrix from element matrices.
// The result does not depend on the order of elements
func AssembleK(ny int, elems []ele.Element) (Kb *mat.SymDense, err error) {
	if ny < 1 {
		return nil, errs.Dimension("global matrix needs at least one equation. ny=%d is invalid", ny)
	}
	Kb = mat.NewSymDense(ny, nil)
	for _, e := range elems {
		err = e.AddToKb(Kb)
		if err != nil {
			return nil, err
		}
	}
	return
}

// AssembleF assembles the global vector of forces. The result does not depend on the order of forces
func AssembleF(ny int, nbcs *PtNaturalBcs) (fb []float64, err error) {
	fb = make([]float64, ny)
	err = nbcs.AddToRhs(fb)
	if err != nil {
		return nil, err
	}
	return
}
