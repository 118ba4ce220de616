// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/strfem/gotruss/ana"
	"github.com/strfem/gotruss/errs"
)

// Material holds material data
type Material struct {

	// input
	Name  string   `json:"name"`  // name of material
	Ref   string   `json:"ref"`   // reference material; e.g. "steel", "aluminum". optional
	Extra string   `json:"extra"` // extra information about this material
	E     float64  `json:"E"`     // Young's modulus. overrides Ref
	Nu    *float64 `json:"nu"`    // Poisson's coefficient. overrides Ref. nil means Ref's value or 0
	G     float64  `json:"G"`     // shear modulus. 0 means E/(2(1+ν))
	Rho   *float64 `json:"rho"`   // density. overrides Ref. nil means Ref's value or 0

	// derived
	Desc string // description of reference material, if any
}

// Init sets parameters from the reference material (if any) and checks values
func (o *Material) Init(unitPres string) (err error) {

	// reference material
	var nu, rho float64
	if o.Ref != "" {
		var ref ana.Material
		err = ref.Init(o.Ref, unitPres)
		if err != nil {
			return
		}
		o.Desc = ref.Desc
		if o.E == 0 {
			o.E = ref.E
		}
		nu, rho = ref.Nu, ref.Rho
	}
	if o.Nu == nil {
		o.Nu = &nu
	}
	if o.Rho == nil {
		o.Rho = &rho
	}

	// check
	if o.E <= 0 {
		return errs.Material("material %q: Young's modulus must be positive. E=%g is invalid", o.Name, o.E)
	}
	if *o.Nu <= -1 || *o.Nu >= 0.5 {
		return errs.Material("material %q: Poisson's coefficient must be in (-1, 0.5). nu=%g is invalid", o.Name, *o.Nu)
	}
	if *o.Rho < 0 {
		return errs.Material("material %q: density must not be negative. rho=%g is invalid", o.Name, *o.Rho)
	}

	// derived
	if o.G == 0 {
		o.G = o.E / (2.0 * (1.0 + *o.Nu))
	}
	return
}

// Section holds cross-section data
type Section struct {

	// input
	Name  string  `json:"name"`  // name of section
	Shape string  `json:"shape"` // "rectangle", "circle", "triangle" or "I-beam". optional
	A     float64 `json:"A"`     // cross-sectional area. overrides Shape
	Wid   float64 `json:"wid"`   // width of shape
	Hei   float64 `json:"hei"`   // height of shape
	Tf    float64 `json:"tf"`    // flange thickness of I-beam
	Tw    float64 `json:"tw"`    // web thickness of I-beam
	Rad   float64 `json:"rad"`   // radius of circle

	// derived
	I22  float64 // major moment of inertia (zero if A is given directly)
	I11  float64 // minor moment of inertia (zero if A is given directly)
	Desc string  // summary of shape, if any
}

// Init computes the area from the shape (if any) and checks values
func (o *Section) Init(unitLen string) (err error) {
	if o.Shape != "" {
		var cs ana.CrossSection
		err = cs.Init(o.Shape, unitLen, o.Wid, o.Hei, o.Tf, o.Tw, o.Rad)
		if err != nil {
			return
		}
		if o.A == 0 {
			o.A = cs.A
		}
		o.I22, o.I11 = cs.I22, cs.I11
		o.Desc = cs.String()
	}
	if o.A <= 0 {
		return errs.Material("section %q: area must be positive. A=%g is invalid", o.Name, o.A)
	}
	return
}
