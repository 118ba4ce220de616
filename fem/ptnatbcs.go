// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/strfem/gotruss/errs"

	"github.com/cpmech/gosl/io"
)

// PtNaturalBc holds information on point natural boundary conditions such as
// prescribed forces at nodes
type PtNaturalBc struct {
	Key string  // dof key such as 'ux', 'uy'
	Nid int     // node id
	Eq  int     // equation number
	Val float64 // value of force
}

// PtNaturalBcs is a set of prescribed forces. Forces on the same equation add up
type PtNaturalBcs struct {
	Bcs []*PtNaturalBc
}

// Reset initialises internal structures
func (o *PtNaturalBcs) Reset() {
	o.Bcs = make([]*PtNaturalBc, 0)
}

// Set adds a new prescribed force
//  key -- dof key such as "ux", "uy"
func (o *PtNaturalBcs) Set(key string, nod *Node, val float64) (err error) {
	dof := nod.GetDof(key)
	if dof == nil {
		return errs.Dimension("node %d does not have dof %q to receive a force", nod.Vert.Id, key)
	}
	o.Bcs = append(o.Bcs, &PtNaturalBc{key, nod.Vert.Id, dof.Eq, val})
	return
}

// AddToRhs adds prescribed forces to fb
func (o *PtNaturalBcs) AddToRhs(fb []float64) (err error) {
	for _, p := range o.Bcs {
		if p.Eq < 0 || p.Eq >= len(fb) {
			return errs.Dimension("force equation %d is outside [0, %d)", p.Eq, len(fb))
		}
	}
	for _, p := range o.Bcs {
		fb[p.Eq] += p.Val
	}
	return
}

// List returns a simple list of prescribed forces
func (o *PtNaturalBcs) List() (l string) {
	l = "\n==================================================================\n"
	l += io.Sf("%8s%8s%8s%25s\n", "eq", "node", "key", "value")
	l += "------------------------------------------------------------------\n"
	for _, p := range o.Bcs {
		l += io.Sf("%8d%8d%8s%25.13f\n", p.Eq, p.Nid, p.Key, p.Val)
	}
	l += "==================================================================\n"
	return
}
