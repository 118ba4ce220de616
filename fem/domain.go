// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/strfem/gotruss/ele"
	"github.com/strfem/gotruss/errs"
	"github.com/strfem/gotruss/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/sourcegraph/conc/pool"
)

// Domain holds all Nodes and Elements of a truss model with their equation numbers
// and boundary conditions
type Domain struct {

	// input data
	Mdl  *inp.Model // validated input data
	Info *ele.Info  // dofs and keys of bars

	// nodes and elements
	Nodes    []*Node          // nodes sorted by id. Note: indices in Nodes do NOT correspond to Ids => use Vid2node
	Elems    []ele.Element    // elements in the same order as the input
	Bars     []*ele.Bar       // the same elements as Elems; bars only
	Vid2node map[int]*Node    // node id => node
	Eid2bar  map[int]*ele.Bar // element id => bar
	Eq2dof   []*Dof           // [ny] equation => dof
	Eq2node  []*Node          // [ny] equation => node

	// supports
	EssenBcs EssentialBcs // prescribed displacements and springs
	Part     *Partition   // free and constrained equations

	// dimensions
	Ny int // total number of equations
}

// NewDomain numbers the equations, allocates elements and sets supports
//  Input:
//   mdl      -- validated model
//   nworkers -- number of goroutines used to formulate elements. <= 1 means serial
//  Note: every node receives ndim equations, numbered by node id (ascending) and then by
//  direction (ux, uy, uz)
func NewDomain(mdl *inp.Model, nworkers int) (o *Domain, err error) {

	// new domain
	o = new(Domain)
	o.Mdl = mdl
	o.Info, err = ele.GetInfo(mdl.Ndim)
	if err != nil {
		return nil, err
	}

	// nodes and equations
	var eq int // current equation number => total number of equations @ end of loop
	o.Vid2node = make(map[int]*Node)
	for _, nid := range mdl.NodeIds() {
		nod := NewNode(mdl.Nid2node[nid])
		for _, ukey := range o.Info.Ykeys {
			eq = nod.AddDofAndEq(ukey, eq)
		}
		o.Vid2node[nid] = nod
		o.Nodes = append(o.Nodes, nod)
	}
	o.Ny = eq
	o.Eq2dof = make([]*Dof, o.Ny)
	o.Eq2node = make([]*Node, o.Ny)
	for _, nod := range o.Nodes {
		for _, dof := range nod.Dofs {
			o.Eq2dof[dof.Eq] = dof
			o.Eq2node[dof.Eq] = nod
		}
	}

	// elements
	o.Bars = make([]*ele.Bar, len(mdl.Elems))
	if nworkers > 1 {
		p := pool.New().WithMaxGoroutines(nworkers).WithErrors().WithFirstError()
		for i := range mdl.Elems {
			i := i
			p.Go(func() error { return o.allocBar(i) })
		}
		err = p.Wait()
	} else {
		for i := range mdl.Elems {
			err = o.allocBar(i)
			if err != nil {
				break
			}
		}
	}
	if err != nil {
		return nil, err
	}
	o.Elems = make([]ele.Element, len(o.Bars))
	o.Eid2bar = make(map[int]*ele.Bar)
	for i, bar := range o.Bars {
		o.Elems[i] = bar
		o.Eid2bar[bar.Id()] = bar
	}

	// supports
	o.EssenBcs.Init()
	for _, s := range mdl.Supports {
		nod := o.Vid2node[s.Node]
		if nod == nil {
			return nil, errs.Support("support refers to unknown node %d", s.Node)
		}
		keys, vals, err := s.Prescribed(mdl.Ndim)
		if err != nil {
			return nil, err
		}
		for i, key := range keys {
			err = o.EssenBcs.Set(key, nod, vals[i])
			if err != nil {
				return nil, err
			}
		}
		skeys := make([]string, 0, len(s.Springs))
		for key := range s.Springs {
			skeys = append(skeys, key)
		}
		sort.Strings(skeys)
		for _, key := range skeys {
			err = o.EssenBcs.SetSpring(key, nod, s.Springs[key])
			if err != nil {
				return nil, err
			}
		}
	}
	o.Part, err = o.EssenBcs.Build(o.Ny)
	if err != nil {
		return nil, err
	}
	return
}

// SetLoads adds the loads of a load case multiplied by factor to nbcs.
// Loads along bars are converted to equivalent nodal loads
func (o *Domain) SetLoads(nbcs *PtNaturalBcs, lc *inp.LoadCase, factor float64) (err error) {

	// nodal loads
	for _, l := range lc.Nodal {
		nod := o.Vid2node[l.Node]
		if nod == nil {
			return errs.Geometry("load case %q: nodal load refers to unknown node %d", lc.Name, l.Node)
		}
		err = o.setNodeForces(nbcs, nod, l.Forces(), factor)
		if err != nil {
			return
		}
	}

	// point loads along bars
	for _, l := range lc.Point {
		bar := o.Eid2bar[l.Elem]
		if bar == nil {
			return errs.Geometry("load case %q: point load refers to unknown element %d", lc.Name, l.Elem)
		}
		fe, err := bar.PointLoad(l.At, l.F(o.Mdl.Ndim))
		if err != nil {
			return err
		}
		err = o.setElemForces(nbcs, l.Elem, fe, factor)
		if err != nil {
			return err
		}
	}

	// distributed loads along bars
	for _, l := range lc.Dist {
		bar := o.Eid2bar[l.Elem]
		if bar == nil {
			return errs.Geometry("load case %q: distributed load refers to unknown element %d", lc.Name, l.Elem)
		}
		fe, err := bar.DistLoad(l.X0, l.X1, l.Q0, l.Q1)
		if err != nil {
			return err
		}
		err = o.setElemForces(nbcs, l.Elem, fe, factor)
		if err != nil {
			return err
		}
	}
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// allocBar allocates bar corresponding to the i-th input element and sets its equations
func (o *Domain) allocBar(i int) (err error) {
	e := o.Mdl.Elems[i]
	bar, err := ele.NewBar(e.Id, o.Mdl.ElemX(e), e.Material.E, e.Section.A)
	if err != nil {
		return
	}
	eqs := make([][]int, 2)
	for m, nid := range e.Verts {
		nod := o.Vid2node[nid]
		if nod == nil {
			return errs.Geometry("element %d refers to unknown node %d", e.Id, nid)
		}
		eqs[m] = make([]int, len(o.Info.Dofs[m]))
		for i, ukey := range o.Info.Dofs[m] {
			eqs[m][i] = nod.GetEq(ukey)
			if eqs[m][i] < 0 {
				return errs.Dimension("element %d: node %d does not have dof %q", e.Id, nid, ukey)
			}
		}
	}
	err = bar.SetEqs(eqs)
	if err != nil {
		return
	}
	o.Bars[i] = bar
	return
}

// setNodeForces sets forces at node. fmap maps force keys ("fx", "fy", "fz") to values
func (o *Domain) setNodeForces(nbcs *PtNaturalBcs, nod *Node, fmap map[string]float64, factor float64) (err error) {
	for fkey := range fmap {
		if _, ok := o.Info.F2Y[fkey]; !ok {
			return errs.Dimension("force %q at node %d is invalid for ndim=%d", fkey, nod.Vert.Id, o.Mdl.Ndim)
		}
	}
	for _, ukey := range o.Info.Ykeys {
		val := fmap[o.Info.Y2F[ukey]]
		if val == 0 {
			continue
		}
		err = nbcs.Set(ukey, nod, factor*val)
		if err != nil {
			return
		}
	}
	return
}

// setElemForces sets equivalent nodal forces of an element
func (o *Domain) setElemForces(nbcs *PtNaturalBcs, eid int, fe []float64, factor float64) (err error) {
	e := o.Mdl.Eid2elem[eid]
	ndim := o.Mdl.Ndim
	chk.IntAssert(len(fe), 2*ndim)
	for m, nid := range e.Verts {
		fmap := make(map[string]float64)
		for i, ukey := range o.Info.Dofs[m] {
			fmap[o.Info.Y2F[ukey]] = fe[m*ndim+i]
		}
		err = o.setNodeForces(nbcs, o.Vid2node[nid], fmap, factor)
		if err != nil {
			return
		}
	}
	return
}
