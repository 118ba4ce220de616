// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"

	"github.com/strfem/gotruss/errs"

	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
)

// Bar represents a pin-jointed bar element (for axial loads only) with 2 nodes only and
// simply implemented with constant stiffness matrix; i.e. no numerical integration is needed
//
//   local system: one axial displacement per node
//
//     Klocal = α ⋅ [ 1  -1 ]     α = E A / L
//                  [-1   1 ]
//
//   global system: ndim displacements per node
//
//     K = Tᵀ ⋅ Klocal ⋅ T = α ⋅ [ c⊗c  -c⊗c ]     c = (x_end - x_start) / L
//                               [-c⊗c   c⊗c ]
//
type Bar struct {

	// basic data
	Eid  int         // element id
	X    [][]float64 // matrix of nodal coordinates [ndim][nnode]
	Nu   int         // total number of unknowns == 2 * ndim
	Ndim int         // space dimension

	// parameters and properties
	E     float64   // Young's modulus
	A     float64   // cross-sectional area
	L     float64   // length of bar
	Alpha float64   // axial stiffness E A / L
	Cos   []float64 // [ndim] direction cosines

	// matrices
	Klocal [][]float64 // [2][2] element matrix in the local system
	T      [][]float64 // [2][nu] transformation matrix: global system => system aligned to bar
	K      [][]float64 // [nu][nu] element K matrix

	// problem variables
	Umap []int // assembly map (location array/element equations)
}

// NewBar returns a new bar element
//  Input:
//   id -- element id
//   x  -- [ndim][2] coordinates of start (column 0) and end (column 1) nodes
//   E  -- Young's modulus
//   A  -- cross-sectional area
func NewBar(id int, x [][]float64, E, A float64) (o *Bar, err error) {

	// check
	ndim := len(x)
	if ndim != 2 && ndim != 3 {
		return nil, errs.Dimension("bar %d: coordinates matrix must have 2 or 3 rows. %d is invalid", id, ndim)
	}
	for i := 0; i < ndim; i++ {
		if len(x[i]) != 2 {
			return nil, errs.Dimension("bar %d: coordinates matrix must have 2 columns. row %d has %d", id, i, len(x[i]))
		}
	}
	if E <= 0 {
		return nil, errs.Material("bar %d: Young's modulus must be positive. E=%g is invalid", id, E)
	}
	if A <= 0 {
		return nil, errs.Material("bar %d: area must be positive. A=%g is invalid", id, A)
	}

	// basic data
	o = new(Bar)
	o.Eid = id
	o.X = x
	o.Ndim = ndim
	o.Nu = 2 * ndim
	o.E = E
	o.A = A

	// geometry
	var sum float64
	for i := 0; i < ndim; i++ {
		d := x[i][1] - x[i][0]
		sum += d * d
	}
	o.L = math.Sqrt(sum)
	if o.L == 0 {
		return nil, errs.Geometry("bar %d has zero length", id)
	}
	o.Cos = make([]float64, ndim)
	for i := 0; i < ndim; i++ {
		o.Cos[i] = (x[i][1] - x[i][0]) / o.L
	}

	// global-to-local transformation matrix
	o.T = utl.Alloc(2, o.Nu)
	for i := 0; i < ndim; i++ {
		o.T[0][i] = o.Cos[i]
		o.T[1][ndim+i] = o.Cos[i]
	}

	// local matrix
	o.Alpha = E * A / o.L
	o.Klocal = [][]float64{
		{+o.Alpha, -o.Alpha},
		{-o.Alpha, +o.Alpha},
	}

	// K matrix
	o.K = utl.Alloc(o.Nu, o.Nu)
	for i := 0; i < ndim; i++ {
		for j := 0; j < ndim; j++ {
			kij := o.Alpha * o.Cos[i] * o.Cos[j]
			o.K[i][j] = +kij
			o.K[i][ndim+j] = -kij
			o.K[ndim+i][j] = -kij
			o.K[ndim+i][ndim+j] = +kij
		}
	}
	return
}

// implementation ///////////////////////////////////////////////////////////////////////////////////

// Id returns the element Id
func (o *Bar) Id() int { return o.Eid }

// SetEqs set equations
func (o *Bar) SetEqs(eqs [][]int) (err error) {
	if len(eqs) != 2 {
		return errs.Dimension("bar %d: equations of 2 nodes are required. %d given", o.Eid, len(eqs))
	}
	umap := make([]int, o.Nu)
	for m := 0; m < 2; m++ {
		if len(eqs[m]) != o.Ndim {
			return errs.Dimension("bar %d: node %d needs %d equations. %d given", o.Eid, m, o.Ndim, len(eqs[m]))
		}
		for i := 0; i < o.Ndim; i++ {
			r := i + m*o.Ndim
			umap[r] = eqs[m][i]
		}
	}
	o.Umap = umap
	return
}

// AddToKb adds element K to global matrix Kb
func (o *Bar) AddToKb(Kb *mat.SymDense) (err error) {
	err = o.checkUmap(Kb.SymmetricDim())
	if err != nil {
		return
	}
	for i, I := range o.Umap {
		for j := i; j < o.Nu; j++ {
			J := o.Umap[j]
			Kb.SetSym(I, J, Kb.At(I, J)+o.K[i][j])
		}
	}
	return
}

// AddToRhs adds element vector fe (e.g. equivalent nodal loads) to global vector fb
func (o *Bar) AddToRhs(fb, fe []float64) (err error) {
	if len(fe) != o.Nu {
		return errs.Dimension("bar %d: element vector must have size %d. %d is invalid", o.Eid, o.Nu, len(fe))
	}
	err = o.checkUmap(len(fb))
	if err != nil {
		return
	}
	for i, I := range o.Umap {
		fb[I] += fe[i]
	}
	return
}

// specific methods /////////////////////////////////////////////////////////////////////////////////

// Elongation computes the change of length of bar for given nodal displacements
func (o *Bar) Elongation(U []float64) (δ float64) {
	for i := 0; i < o.Ndim; i++ {
		δ += o.Cos[i] * (U[o.Umap[o.Ndim+i]] - U[o.Umap[i]])
	}
	return
}

// AxialForce computes the axial force (tension is positive) for given nodal displacements
func (o *Bar) AxialForce(U []float64) float64 {
	return o.Alpha * o.Elongation(U)
}

// CalcEps computes the axial strain for given nodal displacements
func (o *Bar) CalcEps(U []float64) float64 {
	return o.Elongation(U) / o.L
}

// CalcSig computes the axial stress for given nodal displacements
func (o *Bar) CalcSig(U []float64) float64 {
	return o.AxialForce(U) / o.A
}

// Centroid returns the coordinates of the middle point of bar
func (o *Bar) Centroid() (C []float64) {
	C = make([]float64, o.Ndim)
	for i := 0; i < o.Ndim; i++ {
		C[i] = (o.X[i][0] + o.X[i][1]) / 2.0
	}
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// checkUmap checks that equations were set and are within [0, n)
func (o *Bar) checkUmap(n int) (err error) {
	if len(o.Umap) != o.Nu {
		return errs.Dimension("bar %d: equations have not been set", o.Eid)
	}
	for _, I := range o.Umap {
		if I < 0 || I >= n {
			return errs.Dimension("bar %d: equation %d is outside [0, %d)", o.Eid, I, n)
		}
	}
	return
}
