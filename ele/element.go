// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements finite elements
package ele

import "gonum.org/v1/gonum/mat"

// Element defines what all elements must implement
type Element interface {
	Id() int                              // returns the element Id
	SetEqs(eqs [][]int) (err error)       // set equations. eqs[m][i] is the equation of dof i of local node m
	AddToKb(Kb *mat.SymDense) (err error) // adds element K to global matrix Kb
}

// CanOutputForces defines elements that compute internal forces from nodal displacements
type CanOutputForces interface {
	AxialForce(U []float64) float64 // axial force (tension is positive)
	CalcSig(U []float64) float64    // axial stress
	CalcEps(U []float64) float64    // axial strain
}
