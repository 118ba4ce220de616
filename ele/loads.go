// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/strfem/gotruss/errs"

// PointLoad computes the equivalent nodal loads of a force f applied at distance a from the start node
//
//   fe = [ f⋅(L-a)/L, f⋅a/L ]
//
// Transverse components go to the nodes; the bar carries axial forces only
func (o *Bar) PointLoad(a float64, f []float64) (fe []float64, err error) {
	if len(f) != o.Ndim {
		return nil, errs.Dimension("bar %d: point load must have %d components. %d is invalid", o.Eid, o.Ndim, len(f))
	}
	if a < 0 || a > o.L {
		return nil, errs.Geometry("bar %d: point load position a=%g is outside [0, %g]", o.Eid, a, o.L)
	}
	N0, N1 := o.shape(a)
	fe = make([]float64, o.Nu)
	for i := 0; i < o.Ndim; i++ {
		fe[i] = N0 * f[i]
		fe[o.Ndim+i] = N1 * f[i]
	}
	return
}

// DistLoad computes the equivalent nodal loads of a load per unit length varying linearly
// from q0 at distance a to q1 at distance b from the start node. a = b = 0 means the whole bar
//
//   fe_k = ∫ q(x) N_k(x) dx   for x in [a, b]
//
// The integrand is quadratic, thus Simpson's rule is exact
func (o *Bar) DistLoad(a, b float64, q0, q1 []float64) (fe []float64, err error) {

	// check
	if len(q0) != o.Ndim || len(q1) != o.Ndim {
		return nil, errs.Dimension("bar %d: distributed load must have %d components. %d and %d are invalid", o.Eid, o.Ndim, len(q0), len(q1))
	}
	if a == 0 && b == 0 {
		b = o.L
	}
	if a < 0 || b > o.L || a >= b {
		return nil, errs.Geometry("bar %d: distributed load span [%g, %g] is invalid for L=%g", o.Eid, a, b, o.L)
	}

	// Simpson's rule
	m := (a + b) / 2.0
	h := (b - a) / 6.0
	xs := []float64{a, m, b}
	ws := []float64{h, 4.0 * h, h}
	fe = make([]float64, o.Nu)
	for p, x := range xs {
		N0, N1 := o.shape(x)
		t := (x - a) / (b - a)
		for i := 0; i < o.Ndim; i++ {
			q := q0[i] + (q1[i]-q0[i])*t
			fe[i] += ws[p] * q * N0
			fe[o.Ndim+i] += ws[p] * q * N1
		}
	}
	return
}

// shape returns the linear shape functions at distance x from the start node
func (o *Bar) shape(x float64) (N0, N1 float64) {
	N1 = x / o.L
	N0 = 1.0 - N1
	return
}
