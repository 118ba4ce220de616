// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/strfem/gotruss/inp"

// Dof holds information about a degree-of-freedom == solution variable
type Dof struct {
	Key string // primary variable key. e.g. "ux"
	Eq  int    // equation number
}

// Node holds node dofs information
type Node struct {
	Vert *inp.Node // pointer to input node
	Dofs []*Dof    // degrees-of-freedom == solution variables
}

// NewNode allocates a new Node
func NewNode(v *inp.Node) *Node {
	return &Node{Vert: v}
}

// AddDofAndEq adds a new dof and respective equation to node if it does not exist yet.
// It returns the next available equation number
func (o *Node) AddDofAndEq(ukey string, eqNumber int) (nextEqNumber int) {
	nextEqNumber = eqNumber
	if o.GetDof(ukey) == nil {
		o.Dofs = append(o.Dofs, &Dof{ukey, eqNumber})
		nextEqNumber++
	}
	return
}

// GetDof returns the Dof structure for given Dof name (ukey)
//  Note: returns nil if not found
func (o *Node) GetDof(ukey string) *Dof {
	for _, dof := range o.Dofs {
		if dof.Key == ukey {
			return dof
		}
	}
	return nil
}

// GetEq returns the equation number for given Dof name (ukey)
//  Note: returns -1 if not found
func (o *Node) GetEq(ukey string) (eqNumber int) {
	if dof := o.GetDof(ukey); dof != nil {
		return dof.Eq
	}
	return -1
}
