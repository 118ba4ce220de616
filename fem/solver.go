// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/strfem/gotruss/errs"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// LinSol solves the reduced system Kff ⋅ Uf = rhs with a Cholesky factorisation.
// The factorisation is computed once and reused for every right-hand side
type LinSol struct {
	CondMax float64       // maximum allowed condition number of Kff
	ResTol  float64       // maximum allowed relative residual
	Kff     *mat.SymDense // matrix of free equations; nil if there are no free equations
	Cond    float64       // estimated condition number of Kff
	chol    mat.Cholesky  // factorisation
}

// NewLinSol factorises Kff
//  Note: Kff == nil means that there are no free equations
func NewLinSol(Kff *mat.SymDense, condMax, resTol float64) (o *LinSol, err error) {
	o = &LinSol{CondMax: condMax, ResTol: resTol, Kff: Kff}
	if Kff == nil {
		return
	}
	if ok := o.chol.Factorize(Kff); !ok {
		return nil, errs.Singular("matrix of free equations is not positive definite: the structure is unstable or not sufficiently supported")
	}
	o.Cond = o.chol.Cond()
	if math.IsNaN(o.Cond) || o.Cond > condMax {
		return nil, errs.Singular("matrix of free equations is ill-conditioned (cond=%g > %g): the structure is unstable or not sufficiently supported", o.Cond, condMax)
	}
	return
}

// Solve solves Kff ⋅ Uf = rhs and returns the relative residual ‖Kff⋅Uf - rhs‖ / ‖rhs‖
// (absolute if rhs is zero)
func (o *LinSol) Solve(rhs []float64) (Uf []float64, resid float64, err error) {

	// no free equations
	if o.Kff == nil {
		if len(rhs) != 0 {
			return nil, 0, errs.Dimension("there are no free equations but rhs has size %d", len(rhs))
		}
		return []float64{}, 0, nil
	}

	// check
	n := o.Kff.SymmetricDim()
	if len(rhs) != n {
		return nil, 0, errs.Dimension("rhs must have size %d. %d is invalid", n, len(rhs))
	}

	// solve
	b := mat.NewVecDense(n, rhs)
	var x mat.VecDense
	err = o.chol.SolveVecTo(&x, b)
	if err != nil {
		return nil, 0, errs.Singular("linear solver failed:\n%v", err)
	}
	Uf = x.RawVector().Data

	// residual
	var r mat.VecDense
	r.MulVec(o.Kff, &x)
	r.SubVec(&r, b)
	resid = floats.Norm(r.RawVector().Data, 2)
	if nrm := floats.Norm(rhs, 2); nrm > 0 {
		resid /= nrm
	}
	if math.IsNaN(resid) || resid > o.ResTol {
		return nil, resid, errs.Singular("residual of linear solution is too large (%g > %g)", resid, o.ResTol)
	}
	return
}
