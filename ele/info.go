// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/strfem/gotruss/errs"

// Info holds all information required to number the equations of an element
type Info struct {
	Dofs  [][]string        // solution variables PER NODE. ex for 2 nodes: [["ux", "uy"], ["ux", "uy"]]
	Ykeys []string          // solution variables of one node in spatial order
	Y2F   map[string]string // maps "y" keys to "f" keys. ex: "ux" => "fx"
	F2Y   map[string]string // maps "f" keys to "y" keys. ex: "fx" => "ux"
}

// GetInfo returns the information of bar elements in ndim space dimensions
func GetInfo(ndim int) (info *Info, err error) {

	// solution variables
	var ykeys []string
	switch ndim {
	case 2:
		ykeys = []string{"ux", "uy"}
	case 3:
		ykeys = []string{"ux", "uy", "uz"}
	default:
		return nil, errs.Dimension("bars need ndim = 2 or 3. ndim=%d is invalid", ndim)
	}
	info = new(Info)
	info.Ykeys = ykeys
	info.Dofs = [][]string{ykeys, ykeys}

	// maps
	info.Y2F = map[string]string{"ux": "fx", "uy": "fy", "uz": "fz"}
	info.F2Y = make(map[string]string)
	for _, y := range ykeys {
		info.F2Y[info.Y2F[y]] = y
	}
	return
}
