// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/strfem/gotruss/errs"

	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// EssentialBc holds information about a prescribed displacement at a node
type EssentialBc struct {
	Key string  // dof key such as 'ux', 'uy'
	Nid int     // node id
	Eq  int     // equation number
	Val float64 // prescribed value
}

// EbcArray is an array of EssentialBc's
type EbcArray []*EssentialBc

// Spring holds information about an elastic support at a node
type Spring struct {
	Key string  // dof key such as 'ux', 'uy'
	Nid int     // node id
	Eq  int     // equation number
	K   float64 // stiffness
}

// EssentialBcs implements a structure to record the definition of essential bcs (supports).
// Constrained equations are removed from the system by partitioning; springs remain free
type EssentialBcs struct {
	Bcs     EbcArray             // prescribed displacements
	Springs []*Spring            // elastic supports
	eq2bc   map[int]*EssentialBc // equation => bc
	eq2spr  map[int]*Spring      // equation => spring
}

// Init initialises this structure
func (o *EssentialBcs) Init() {
	o.Bcs = make([]*EssentialBc, 0)
	o.Springs = make([]*Spring, 0)
	o.eq2bc = make(map[int]*EssentialBc)
	o.eq2spr = make(map[int]*Spring)
}

// Set sets a prescribed displacement
//  key -- dof key such as "ux", "uy"
//  nod -- node
//  val -- prescribed value; e.g. 0 for rigid supports
//  Note: a dof cannot be constrained twice, even with the same value
func (o *EssentialBcs) Set(key string, nod *Node, val float64) (err error) {
	dof := nod.GetDof(key)
	if dof == nil {
		return errs.Support("node %d does not have dof %q", nod.Vert.Id, key)
	}
	if bc, ok := o.eq2bc[dof.Eq]; ok {
		return errs.Support("dof %q of node %d is constrained twice (values %g and %g)", key, nod.Vert.Id, bc.Val, val)
	}
	if _, ok := o.eq2spr[dof.Eq]; ok {
		return errs.Support("dof %q of node %d has a spring and cannot be constrained", key, nod.Vert.Id)
	}
	bc := &EssentialBc{key, nod.Vert.Id, dof.Eq, val}
	o.Bcs = append(o.Bcs, bc)
	o.eq2bc[dof.Eq] = bc
	return
}

// SetSpring sets an elastic support
//  key -- dof key such as "ux", "uy"
//  nod -- node
//  k   -- stiffness (must be positive)
func (o *EssentialBcs) SetSpring(key string, nod *Node, k float64) (err error) {
	dof := nod.GetDof(key)
	if dof == nil {
		return errs.Support("node %d does not have dof %q", nod.Vert.Id, key)
	}
	if k <= 0 {
		return errs.Support("spring at dof %q of node %d must have positive stiffness. k=%g is invalid", key, nod.Vert.Id, k)
	}
	if _, ok := o.eq2spr[dof.Eq]; ok {
		return errs.Support("dof %q of node %d has two springs", key, nod.Vert.Id)
	}
	if _, ok := o.eq2bc[dof.Eq]; ok {
		return errs.Support("dof %q of node %d is constrained and cannot have a spring", key, nod.Vert.Id)
	}
	spr := &Spring{key, nod.Vert.Id, dof.Eq, k}
	o.Springs = append(o.Springs, spr)
	o.eq2spr[dof.Eq] = spr
	return
}

// Build sorts bcs and returns the partition of the ny equations into free and constrained ones
func (o *EssentialBcs) Build(ny int) (part *Partition, err error) {

	// sort bcs and springs by equation number
	sort.Sort(o.Bcs)
	sort.Slice(o.Springs, func(i, j int) bool { return o.Springs[i].Eq < o.Springs[j].Eq })

	// partition
	part = &Partition{Ny: ny}
	part.Eq2free = make([]int, ny)
	part.Eq2fixed = make([]int, ny)
	for eq := 0; eq < ny; eq++ {
		part.Eq2free[eq] = -1
		part.Eq2fixed[eq] = -1
	}
	for _, bc := range o.Bcs {
		if bc.Eq < 0 || bc.Eq >= ny {
			return nil, errs.Dimension("constrained equation %d is outside [0, %d)", bc.Eq, ny)
		}
		part.Eq2fixed[bc.Eq] = len(part.Fixed)
		part.Fixed = append(part.Fixed, bc.Eq)
		part.Uc = append(part.Uc, bc.Val)
	}
	for eq := 0; eq < ny; eq++ {
		if part.Eq2fixed[eq] < 0 {
			part.Eq2free[eq] = len(part.Free)
			part.Free = append(part.Free, eq)
		}
	}
	return
}

// AddSpringsToKb adds the stiffness of springs to the diagonal of global matrix Kb
func (o *EssentialBcs) AddSpringsToKb(Kb *mat.SymDense) (err error) {
	n := Kb.SymmetricDim()
	for _, spr := range o.Springs {
		if spr.Eq < 0 || spr.Eq >= n {
			return errs.Dimension("spring equation %d is outside [0, %d)", spr.Eq, n)
		}
		Kb.SetSym(spr.Eq, spr.Eq, Kb.At(spr.Eq, spr.Eq)+spr.K)
	}
	return
}

// List returns a simple list of bcs and springs
func (o *EssentialBcs) List() (l string) {
	l = "\n==================================================================\n"
	l += io.Sf("%8s%8s%8s%25s%15s\n", "eq", "node", "key", "value", "type")
	l += "------------------------------------------------------------------\n"
	for _, bc := range o.Bcs {
		l += io.Sf("%8d%8d%8s%25.13f%15s\n", bc.Eq, bc.Nid, bc.Key, bc.Val, "prescribed")
	}
	for _, spr := range o.Springs {
		l += io.Sf("%8d%8d%8s%25.13f%15s\n", spr.Eq, spr.Nid, spr.Key, spr.K, "spring")
	}
	l += "==================================================================\n"
	return
}

// functions to implement Sort interface
func (o EbcArray) Len() int           { return len(o) }
func (o EbcArray) Swap(i, j int)      { o[i], o[j] = o[j], o[i] }
func (o EbcArray) Less(i, j int) bool { return o[i].Eq < o[j].Eq }
