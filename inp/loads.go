// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"sort"

	"github.com/strfem/gotruss/errs"
)

// ukeys holds the translational DOF keys in spatial order
var ukeys = []string{"ux", "uy", "uz"}

// fkeys holds the force keys in spatial order
var fkeys = []string{"fx", "fy", "fz"}

// Support holds data of a support at a node
//
//  Type: "pinned" and "fixed" prescribe zero displacement in all directions (bars have no rotations);
//        "roller" prescribes zero displacement along Dir (default: last direction; i.e. "uy" in 2D and "uz" in 3D)
//  Keys: prescribed displacements; e.g. {"ux": 0, "uy": -0.001}. may be combined with a Type with no repeated keys
//  Springs: elastic supports; e.g. {"uy": 1e5}. the spring stiffness is added to the global matrix
type Support struct {
	Node    int                `json:"node"`    // node id
	Type    string             `json:"type"`    // preset; "pinned", "fixed", "roller" or empty
	Dir     string             `json:"dir"`     // constrained direction of roller
	Keys    map[string]float64 `json:"keys"`    // prescribed displacements
	Springs map[string]float64 `json:"springs"` // spring stiffnesses
}

// Prescribed returns the prescribed displacements of this support sorted by key (ux, uy, uz)
func (o *Support) Prescribed(ndim int) (keys []string, vals []float64, err error) {

	// preset
	vmap := make(map[string]float64)
	switch o.Type {
	case "":
	case "pinned", "fixed":
		for _, key := range ukeys[:ndim] {
			vmap[key] = 0
		}
	case "roller":
		dir := o.Dir
		if dir == "" {
			dir = ukeys[ndim-1]
		}
		if !validKey(dir, ndim) {
			return nil, nil, errs.Support("roller at node %d has invalid direction %q", o.Node, dir)
		}
		vmap[dir] = 0
	default:
		return nil, nil, errs.Support("support type %q at node %d is unavailable", o.Type, o.Node)
	}

	// explicit keys
	for key, val := range o.Keys {
		if !validKey(key, ndim) {
			return nil, nil, errs.Support("support at node %d has invalid key %q", o.Node, key)
		}
		if _, ok := vmap[key]; ok {
			return nil, nil, errs.Support("support at node %d prescribes %q twice", o.Node, key)
		}
		vmap[key] = val
	}

	// results
	for _, key := range ukeys[:ndim] {
		if val, ok := vmap[key]; ok {
			keys = append(keys, key)
			vals = append(vals, val)
		}
	}
	return
}

// LoadCase holds a named set of loads
type LoadCase struct {
	Name  string       `json:"name"`  // name of load case; e.g. "dead"
	Desc  string       `json:"desc"`  // description
	Nodal []*NodalLoad `json:"nodal"` // loads applied at nodes
	Point []*PointLoad `json:"point"` // concentrated loads applied along bars
	Dist  []*DistLoad  `json:"dist"`  // distributed loads applied along bars
}

// NodalLoad holds a force applied at a node (global axes)
type NodalLoad struct {
	Node int     `json:"node"` // node id
	Fx   float64 `json:"fx"`   // x-component
	Fy   float64 `json:"fy"`   // y-component
	Fz   float64 `json:"fz"`   // z-component
}

// Forces returns the non-zero force components keyed by "fx", "fy" and "fz"
func (o *NodalLoad) Forces() (fmap map[string]float64) {
	fmap = make(map[string]float64)
	for i, f := range []float64{o.Fx, o.Fy, o.Fz} {
		if f != 0 {
			fmap[fkeys[i]] = f
		}
	}
	return
}

// PointLoad holds a force applied at a point of a bar (global axes)
type PointLoad struct {
	Elem int     `json:"elem"` // element id
	At   float64 `json:"at"`   // distance from start node
	Fx   float64 `json:"fx"`   // x-component
	Fy   float64 `json:"fy"`   // y-component
	Fz   float64 `json:"fz"`   // z-component
}

// F returns the force components
func (o *PointLoad) F(ndim int) []float64 {
	return []float64{o.Fx, o.Fy, o.Fz}[:ndim]
}

// DistLoad holds a load per unit length varying linearly from Q0 at X0 to Q1 at X1 (global axes).
// X0 = X1 = 0 means the whole bar
type DistLoad struct {
	Elem int       `json:"elem"` // element id
	X0   float64   `json:"x0"`   // distance from start node where load begins
	X1   float64   `json:"x1"`   // distance from start node where load ends
	Q0   []float64 `json:"q0"`   // load components at X0 (size == ndim)
	Q1   []float64 `json:"q1"`   // load components at X1 (size == ndim)
}

// Combination holds factors multiplying load cases
type Combination struct {
	Name    string             `json:"name"`    // name of combination; e.g. "ULS1"
	Factors map[string]float64 `json:"factors"` // load case name => factor
}

// Cases returns the names of combined load cases sorted alphabetically
func (o *Combination) Cases() (names []string) {
	for name := range o.Factors {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////

func validKey(key string, ndim int) bool {
	for _, k := range ukeys[:ndim] {
		if key == k {
			return true
		}
	}
	return false
}

// check checks loads against model entities
func (o *LoadCase) check(mdl *Model) (err error) {
	for _, l := range o.Nodal {
		if _, ok := mdl.Nid2node[l.Node]; !ok {
			return errs.Geometry("load case %q: nodal load refers to unknown node %d", o.Name, l.Node)
		}
		if mdl.Ndim == 2 && l.Fz != 0 {
			return errs.Dimension("load case %q: nodal load at node %d has fz != 0 in 2D", o.Name, l.Node)
		}
	}
	for _, l := range o.Point {
		e, ok := mdl.Eid2elem[l.Elem]
		if !ok {
			return errs.Geometry("load case %q: point load refers to unknown element %d", o.Name, l.Elem)
		}
		if l.At < 0 || l.At > e.L {
			return errs.Geometry("load case %q: point load position %g is outside element %d with L=%g", o.Name, l.At, l.Elem, e.L)
		}
		if mdl.Ndim == 2 && l.Fz != 0 {
			return errs.Dimension("load case %q: point load on element %d has fz != 0 in 2D", o.Name, l.Elem)
		}
	}
	for _, l := range o.Dist {
		e, ok := mdl.Eid2elem[l.Elem]
		if !ok {
			return errs.Geometry("load case %q: distributed load refers to unknown element %d", o.Name, l.Elem)
		}
		if len(l.Q0) != mdl.Ndim || len(l.Q1) != mdl.Ndim {
			return errs.Dimension("load case %q: distributed load on element %d needs %d components", o.Name, l.Elem, mdl.Ndim)
		}
		whole := l.X0 == 0 && l.X1 == 0
		if l.X0 < 0 || l.X1 > e.L || (!whole && l.X0 >= l.X1) {
			return errs.Geometry("load case %q: distributed load span [%g, %g] is invalid for element %d with L=%g", o.Name, l.X0, l.X1, l.Elem, e.L)
		}
	}
	return
}
