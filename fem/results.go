// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/strfem/gotruss/errs"

	"gonum.org/v1/gonum/mat"
)

// Results holds the solution of one load case or combination
type Results struct {
	Name  string    // name of load case or combination
	F     []float64 // [ny] external forces
	U     []float64 // [ny] displacements
	R     []float64 // [nc] reactions at constrained equations; aligned with Partition.Fixed
	Rspr  []float64 // [nspr] reactions of springs; aligned with EssentialBcs.Springs
	N     []float64 // [nbars] axial forces; aligned with Domain.Bars
	Sig   []float64 // [nbars] axial stresses
	Eps   []float64 // [nbars] axial strains
	Resid float64   // relative residual of linear solution
}

// Reactions computes the reactions at constrained equations
//
//   Rc = Kcf ⋅ Uf + Kcc ⋅ Uc - Fc
//
func Reactions(K *mat.SymDense, U, F []float64, part *Partition) (R []float64, err error) {
	if K.SymmetricDim() != part.Ny || len(U) != part.Ny || len(F) != part.Ny {
		return nil, errs.Dimension("sizes of K, U and F must be equal to %d. %d, %d and %d are invalid", part.Ny, K.SymmetricDim(), len(U), len(F))
	}
	R = make([]float64, part.Nc())
	for i, I := range part.Fixed {
		for J := 0; J < part.Ny; J++ {
			R[i] += K.At(I, J) * U[J]
		}
		R[i] -= F[I]
	}
	return
}

// NodeReaction returns the reaction at node (supports plus springs) in spatial order
func (o *Domain) NodeReaction(res *Results, nid int) (r []float64) {
	nod := o.Vid2node[nid]
	if nod == nil {
		return nil
	}
	r = make([]float64, len(nod.Dofs))
	for i, dof := range nod.Dofs {
		if k := o.Part.Eq2fixed[dof.Eq]; k >= 0 {
			r[i] += res.R[k]
		}
	}
	for k, spr := range o.EssenBcs.Springs {
		if spr.Nid == nid {
			for i, dof := range nod.Dofs {
				if dof.Eq == spr.Eq {
					r[i] += res.Rspr[k]
				}
			}
		}
	}
	return
}

// SumForces returns the sum of external forces and reactions (supports plus springs) in each
// direction. It is zero for a structure in equilibrium
func SumForces(dom *Domain, res *Results) (sum []float64) {
	sum = make([]float64, len(dom.Info.Ykeys))
	idx := make(map[string]int)
	for i, key := range dom.Info.Ykeys {
		idx[key] = i
	}
	for eq, dof := range dom.Eq2dof {
		sum[idx[dof.Key]] += res.F[eq]
	}
	for i, I := range dom.Part.Fixed {
		sum[idx[dom.Eq2dof[I].Key]] += res.R[i]
	}
	for k, spr := range dom.EssenBcs.Springs {
		sum[idx[spr.Key]] += res.Rspr[k]
	}
	return
}
