// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of results of truss analyses
package out

import (
	"sort"

	"github.com/strfem/gotruss/fem"

	"github.com/cpmech/gosl/io"
)

// constants
var (
	NumFmt = "%15.6e" // format of numbers in reports
	Line   = "==================================================================\n"
	Dashes = "------------------------------------------------------------------\n"
)

// Report returns tables with displacements, reactions and internal forces
func Report(dom *fem.Domain, res *fem.Results) (l string) {

	// header
	l = "\n" + Line
	l += io.Sf(" %s\n", res.Name)
	if desc := dom.Mdl.Data.Desc; desc != "" {
		l += io.Sf(" %s\n", desc)
	}
	l += io.Sf(" residual = %g\n", res.Resid)

	// displacements
	l += Dashes
	l += io.Sf("%8s", "node")
	for _, key := range dom.Info.Ykeys {
		l += io.Sf("%15s", key)
	}
	l += "\n" + Dashes
	for _, nod := range dom.Nodes {
		l += io.Sf("%8d", nod.Vert.Id)
		for _, dof := range nod.Dofs {
			l += io.Sf(NumFmt, res.U[dof.Eq])
		}
		l += "\n"
	}

	// reactions
	l += Dashes
	l += io.Sf("%8s", "node")
	for _, key := range dom.Info.Ykeys {
		l += io.Sf("%15s", "r"+key[1:])
	}
	l += "\n" + Dashes
	for _, nid := range SupportedNodes(dom) {
		l += io.Sf("%8d", nid)
		for _, r := range dom.NodeReaction(res, nid) {
			l += io.Sf(NumFmt, r)
		}
		l += "\n"
	}
	sum := fem.SumForces(dom, res)
	l += io.Sf("%8s", "Σ")
	for _, s := range sum {
		l += io.Sf(NumFmt, s)
	}
	l += "\n"

	// internal forces
	l += Dashes
	l += io.Sf("%8s", "elem")
	for _, key := range dom.Info.Ykeys {
		l += io.Sf("%15s", key[1:]+"c")
	}
	l += io.Sf("%15s%15s%15s\n", "N", "sig", "eps")
	l += Dashes
	for i, bar := range dom.Bars {
		l += io.Sf("%8d", bar.Id())
		for _, x := range bar.Centroid() {
			l += io.Sf(NumFmt, x)
		}
		l += io.Sf(NumFmt+NumFmt+NumFmt+"\n", res.N[i], res.Sig[i], res.Eps[i])
	}
	l += Line
	return
}

// SupportedNodes returns the ids of nodes with constrained equations or springs in ascending order
func SupportedNodes(dom *fem.Domain) (nids []int) {
	set := make(map[int]bool)
	for _, eq := range dom.Part.Fixed {
		set[dom.Eq2node[eq].Vert.Id] = true
	}
	for _, spr := range dom.EssenBcs.Springs {
		set[spr.Nid] = true
	}
	for nid := range set {
		nids = append(nids, nid)
	}
	sort.Ints(nids)
	return
}
