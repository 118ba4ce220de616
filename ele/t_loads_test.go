// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"errors"
	"testing"

	"github.com/strfem/gotruss/errs"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_loads01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loads01. equivalent nodal loads")

	o, err := NewBar(1, [][]float64{{0, 3}, {0, 4}}, 1000, 1)
	if err != nil {
		tst.Errorf("NewBar failed:\n%v", err)
		return
	}

	fe, err := o.PointLoad(1, []float64{0, -10})
	if err != nil {
		tst.Errorf("PointLoad failed:\n%v", err)
		return
	}
	io.Pforan("point: fe = %v\n", fe)
	chk.Array(tst, "point", 1e-15, fe, []float64{0, -8, 0, -2})

	fe, err = o.DistLoad(0, 0, []float64{0, -2}, []float64{0, -2})
	if err != nil {
		tst.Errorf("DistLoad failed:\n%v", err)
		return
	}
	chk.Array(tst, "uniform", 1e-14, fe, []float64{0, -5, 0, -5})

	fe, _ = o.DistLoad(0, 5, []float64{0, 0}, []float64{0, -6})
	chk.Array(tst, "triangular", 1e-14, fe, []float64{0, -5, 0, -10})

	fe, _ = o.DistLoad(1, 3, []float64{-3, -3}, []float64{-3, -3})
	chk.Array(tst, "partial", 1e-14, fe, []float64{-3.6, -3.6, -2.4, -2.4})

	// scatter
	err = o.SetEqs([][]int{{2, 3}, {0, 1}})
	if err != nil {
		tst.Errorf("SetEqs failed:\n%v", err)
		return
	}
	fb := make([]float64, 4)
	err = o.AddToRhs(fb, fe)
	if err != nil {
		tst.Errorf("AddToRhs failed:\n%v", err)
		return
	}
	chk.Array(tst, "fb", 1e-14, fb, []float64{-2.4, -2.4, -3.6, -3.6})
}

func Test_loads02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loads02. invalid loads")

	o, err := NewBar(1, [][]float64{{0, 3}, {0, 4}}, 1000, 1)
	if err != nil {
		tst.Errorf("NewBar failed:\n%v", err)
		return
	}
	_, err = o.PointLoad(6, []float64{0, -10})
	if !errors.Is(err, errs.ErrGeometry) {
		tst.Errorf("GeometryError expected. got %v", err)
	}
	_, err = o.PointLoad(1, []float64{0, -10, 0})
	if !errors.Is(err, errs.ErrDimension) {
		tst.Errorf("DimensionError expected. got %v", err)
	}
	_, err = o.DistLoad(3, 1, []float64{0, 1}, []float64{0, 1})
	if !errors.Is(err, errs.ErrGeometry) {
		tst.Errorf("GeometryError expected. got %v", err)
	}
	_, err = o.DistLoad(0, 5.5, []float64{0, 1}, []float64{0, 1})
	if !errors.Is(err, errs.ErrGeometry) {
		tst.Errorf("GeometryError expected. got %v", err)
	}
	_, err = o.DistLoad(0, 0, []float64{1}, []float64{0, 1})
	if !errors.Is(err, errs.ErrDimension) {
		tst.Errorf("DimensionError expected. got %v", err)
	}
}
