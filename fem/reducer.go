// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/strfem/gotruss/errs"

	"gonum.org/v1/gonum/mat"
)

// Partition holds the splitting of equations into free (f) and constrained (c) ones
//
//   [ Kff  Kfc ] [ Uf ]   [ Ff ]
//   [          ] [    ] = [    ]
//   [ Kcf  Kcc ] [ Uc ]   [ Fc ]
//
type Partition struct {
	Ny       int       // total number of equations
	Free     []int     // free equations (ascending)
	Fixed    []int     // constrained equations (ascending)
	Uc       []float64 // [len(Fixed)] prescribed values
	Eq2free  []int     // [ny] equation => index in Free or -1
	Eq2fixed []int     // [ny] equation => index in Fixed or -1
}

// Nf returns the number of free equations
func (o *Partition) Nf() int { return len(o.Free) }

// Nc returns the number of constrained equations
func (o *Partition) Nc() int { return len(o.Fixed) }

// Join returns the full vector of displacements U from the free values Uf and the prescribed values Uc
func (o *Partition) Join(Uf []float64) (U []float64, err error) {
	if len(Uf) != o.Nf() {
		return nil, errs.Dimension("vector of free values must have size %d. %d is invalid", o.Nf(), len(Uf))
	}
	U = make([]float64, o.Ny)
	for i, I := range o.Free {
		U[I] = Uf[i]
	}
	for i, I := range o.Fixed {
		U[I] = o.Uc[i]
	}
	return
}

// Reduce extracts the reduced system for the free equations
//  Output:
//   Kff -- [nf][nf] symmetric; nil if nf == 0
//   Kfc -- [nf][nc]; nil if nf == 0 or nc == 0
//   Ff  -- [nf] forces at free equations
//   Uc  -- [nc] prescribed values
func Reduce(K *mat.SymDense, F []float64, part *Partition) (Kff *mat.SymDense, Kfc *mat.Dense, Ff, Uc []float64, err error) {

	// check
	if K.SymmetricDim() != part.Ny {
		err = errs.Dimension("global matrix must have size %d. %d is invalid", part.Ny, K.SymmetricDim())
		return
	}
	if len(F) != part.Ny {
		err = errs.Dimension("global vector must have size %d. %d is invalid", part.Ny, len(F))
		return
	}

	// vectors
	nf, nc := part.Nf(), part.Nc()
	Ff = make([]float64, nf)
	for i, I := range part.Free {
		Ff[i] = F[I]
	}
	Uc = make([]float64, nc)
	copy(Uc, part.Uc)

	// matrices
	if nf == 0 {
		return
	}
	Kff = ReduceKff(K, part)
	if nc > 0 {
		Kfc = mat.NewDense(nf, nc, nil)
		for i, I := range part.Free {
			for j, J := range part.Fixed {
				Kfc.Set(i, j, K.At(I, J))
			}
		}
	}
	return
}

// ReduceKff extracts the symmetric matrix corresponding to free equations. part.Free must not be empty
func ReduceKff(K *mat.SymDense, part *Partition) (Kff *mat.SymDense) {
	nf := part.Nf()
	Kff = mat.NewSymDense(nf, nil)
	for i, I := range part.Free {
		for j := i; j < nf; j++ {
			Kff.SetSym(i, j, K.At(I, part.Free[j]))
		}
	}
	return
}
