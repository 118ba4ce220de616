// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"errors"
	"math"
	"testing"

	"github.com/strfem/gotruss/errs"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_sections01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sections01. typical cross-sections")

	var rect CrossSection
	b, h := 4.0, 6.0
	err := rect.Init("rectangle", "in", b, h, 0, 0, 0)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	io.Pforan("4 x 6 rectangle: %v\n", &rect)
	chk.Float64(tst, "rect: A  ", 1e-17, rect.A, 24.0)
	chk.Float64(tst, "rect: I22", 1e-17, rect.I22, 72.0)
	chk.Float64(tst, "rect: I11", 1e-17, rect.I11, 32.0)
	chk.Float64(tst, "rect: Jtt", 1e-11, rect.Jtt, 75.1249382716)

	b, h = 4.0, 4.0
	rect.Init("rectangle", "in", b, h, 0, 0, 0)
	chk.Float64(tst, "rect: A  ", 1e-17, rect.A, 16.0)
	chk.Float64(tst, "rect: I22", 1e-13, rect.I22, 21.3333333333333)
	chk.Float64(tst, "rect: I11", 1e-13, rect.I11, 21.3333333333333)
	chk.Float64(tst, "rect: Jtt", 1e-17, rect.Jtt, 36.0)

	var ibeam CrossSection
	b, h = 4.0, 6.0
	tf, tw := 0.5, 0.3
	ibeam.Init("I-beam", "in", b, h, tf, tw, 0)
	io.Pforan("4 x 6 I-beam: %v\n", &ibeam)
	chk.Float64(tst, "I-beam: A  ", 1e-15, ibeam.A, 5.5)
	chk.Float64(tst, "I-beam: I22", 1e-10, ibeam.I22, 33.4583333333)
	chk.Float64(tst, "I-beam: I11", 1e-10, ibeam.I11, 5.3445833333)
	chk.Float64(tst, "I-beam: Jtt", 1e-10, ibeam.Jtt, 0.3783333333)

	var circle CrossSection
	r := 1.0
	circle.Init("circle", "m", 0, 0, 0, 0, r)
	chk.Float64(tst, "circle: A  ", 1e-17, circle.A, math.Pi)
	chk.Float64(tst, "circle: I22", 1e-10, circle.I22, 0.7853981634)
	chk.Float64(tst, "circle: I11", 1e-10, circle.I11, 0.7853981634)
	chk.Float64(tst, "circle: Jtt", 1e-11, circle.Jtt, 1.5707963268)

	var tri CrossSection
	b, h = 6.0, 3.0
	tri.Init("triangle", "m", b, h, 0, 0, 0)
	chk.Float64(tst, "triangle: A  ", 1e-15, tri.A, 9.0)
	chk.Float64(tst, "triangle: I22", 1e-14, tri.I22, 4.5)
	chk.Float64(tst, "triangle: I11", 1e-14, tri.I11, 13.5)
	chk.Float64(tst, "triangle: Jtt", 1e-14, tri.Jtt, 18.0)
}

func Test_sections02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sections02. invalid cross-sections")

	var sec CrossSection
	for _, c := range []struct {
		typ              string
		wid, hei, tf, tw float64
		rad              float64
	}{
		{"rectangle", 0, 1, 0, 0, 0},
		{"circle", 0, 0, 0, 0, -1},
		{"triangle", 1, 0, 0, 0, 0},
		{"I-beam", 4, 1, 0.5, 0.3, 0},
		{"hexagon", 1, 1, 0, 0, 0},
	} {
		err := sec.Init(c.typ, "m", c.wid, c.hei, c.tf, c.tw, c.rad)
		if !errors.Is(err, errs.ErrMaterial) {
			tst.Errorf("%s: MaterialError expected. got %v", c.typ, err)
		}
	}
}

func Test_materials01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("materials01. reference materials parameters")

	var mat Material
	err := mat.Init("steel", "MPa")
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	chk.Float64(tst, "steel: E [MPa]", 1e-17, mat.E, 200000.0)
	chk.Float64(tst, "steel: G [MPa]", 1e-10, mat.G, 200000.0/2.64)

	err = mat.Init("steel", "Pa")
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	chk.Float64(tst, "steel: E [Pa]", 1e-3, mat.E, 200e9)
	chk.Float64(tst, "steel: ρ [kg/m³]", 1e-10, mat.Rho, 7850.0)
	chk.String(tst, mat.UnitDens, "kg/m³")

	err = mat.Init("aluminum", "GPa")
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	chk.Float64(tst, "aluminum: E [GPa]", 1e-12, mat.E, 73.1)

	if err = mat.Init("unobtainium", "MPa"); !errors.Is(err, errs.ErrMaterial) {
		tst.Errorf("MaterialError expected for unknown material. got %v", err)
	}
	if err = mat.Init("steel", "psi"); !errors.Is(err, errs.ErrMaterial) {
		tst.Errorf("MaterialError expected for unknown unit. got %v", err)
	}
}
