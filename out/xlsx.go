// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/strfem/gotruss/fem"

	"github.com/cpmech/gosl/chk"
	"github.com/xuri/excelize/v2"
)

// names of sheets
const (
	SheetDisp      = "Displacements"
	SheetReactions = "Reactions"
	SheetForces    = "Forces"
)

// WriteXlsx writes the results of all load cases and combinations to a workbook with
// one sheet for displacements, one for reactions and one for internal forces
func WriteXlsx(fnpath string, dom *fem.Domain, results []*fem.Results) (err error) {

	// new workbook
	f := excelize.NewFile()
	defer f.Close()
	err = f.SetSheetName("Sheet1", SheetDisp)
	if err != nil {
		return chk.Err("cannot rename sheet:\n%v", err)
	}
	for _, name := range []string{SheetReactions, SheetForces} {
		if _, err = f.NewSheet(name); err != nil {
			return chk.Err("cannot create sheet %q:\n%v", name, err)
		}
	}

	// headers
	hdisp := []interface{}{"case", "node"}
	hreac := []interface{}{"case", "node"}
	for _, key := range dom.Info.Ykeys {
		hdisp = append(hdisp, key)
		hreac = append(hreac, "r"+key[1:])
	}
	hforc := []interface{}{"case", "elem"}
	for _, key := range dom.Info.Ykeys {
		hforc = append(hforc, key[1:]+"c")
	}
	hforc = append(hforc, "N", "sig", "eps")

	// rows
	w := newWriter(f)
	w.row(SheetDisp, hdisp)
	w.row(SheetReactions, hreac)
	w.row(SheetForces, hforc)
	supported := SupportedNodes(dom)
	for _, res := range results {
		for _, nod := range dom.Nodes {
			vals := []interface{}{res.Name, nod.Vert.Id}
			for _, dof := range nod.Dofs {
				vals = append(vals, res.U[dof.Eq])
			}
			w.row(SheetDisp, vals)
		}
		for _, nid := range supported {
			vals := []interface{}{res.Name, nid}
			for _, r := range dom.NodeReaction(res, nid) {
				vals = append(vals, r)
			}
			w.row(SheetReactions, vals)
		}
		for i, bar := range dom.Bars {
			vals := []interface{}{res.Name, bar.Id()}
			for _, x := range bar.Centroid() {
				vals = append(vals, x)
			}
			w.row(SheetForces, append(vals, res.N[i], res.Sig[i], res.Eps[i]))
		}
	}
	if w.err != nil {
		return w.err
	}

	// save
	err = f.SaveAs(fnpath)
	if err != nil {
		return chk.Err("cannot save workbook %q:\n%v", fnpath, err)
	}
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// writer appends rows to sheets and keeps the first error
type writer struct {
	f    *excelize.File
	next map[string]int // sheet => next row (1-based)
	err  error
}

func newWriter(f *excelize.File) *writer {
	return &writer{f: f, next: make(map[string]int)}
}

func (o *writer) row(sheet string, vals []interface{}) {
	if o.err != nil {
		return
	}
	if o.next[sheet] == 0 {
		o.next[sheet] = 1
	}
	cell, err := excelize.CoordinatesToCellName(1, o.next[sheet])
	if err != nil {
		o.err = chk.Err("cannot compute cell name:\n%v", err)
		return
	}
	err = o.f.SetSheetRow(sheet, cell, &vals)
	if err != nil {
		o.err = chk.Err("cannot write row %d of sheet %q:\n%v", o.next[sheet], sheet, err)
		return
	}
	o.next[sheet]++
}
