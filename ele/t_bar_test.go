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
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_info01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("info01. dofs of bars")

	info, err := GetInfo(2)
	if err != nil {
		tst.Errorf("GetInfo failed:\n%v", err)
		return
	}
	for _, dof := range info.Dofs {
		chk.Strings(tst, "2D dofs", dof, []string{"ux", "uy"})
	}
	chk.String(tst, info.F2Y["fy"], "uy")
	if _, ok := info.F2Y["fz"]; ok {
		tst.Errorf("fz should not be available in 2D")
	}

	info, err = GetInfo(3)
	if err != nil {
		tst.Errorf("GetInfo failed:\n%v", err)
		return
	}
	chk.Strings(tst, "3D ykeys", info.Ykeys, []string{"ux", "uy", "uz"})
	chk.String(tst, info.Y2F["uz"], "fz")

	_, err = GetInfo(1)
	if !errors.Is(err, errs.ErrDimension) {
		tst.Errorf("DimensionError expected. got %v", err)
	}
}

func Test_bar01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bar01. horizontal bar in 2D")

	o, err := NewBar(1, [][]float64{{0, 2}, {0, 0}}, 200e9, 1e-3)
	if err != nil {
		tst.Errorf("NewBar failed:\n%v", err)
		return
	}
	io.Pforan("K = %v\n", o.K)
	chk.Float64(tst, "L", 1e-17, o.L, 2)
	chk.Float64(tst, "α", 1e-7, o.Alpha, 1e8)
	chk.Array(tst, "cos", 1e-17, o.Cos, []float64{1, 0})
	chk.Deep2(tst, "Klocal", 1e-7, o.Klocal, [][]float64{{1e8, -1e8}, {-1e8, 1e8}})
	chk.Deep2(tst, "K", 1e-7, o.K, [][]float64{
		{+1e8, 0, -1e8, 0},
		{0, 0, 0, 0},
		{-1e8, 0, +1e8, 0},
		{0, 0, 0, 0},
	})
}

func Test_bar02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bar02. inclined bar in 3D")

	o, err := NewBar(2, [][]float64{{1, 3}, {2, 5}, {3, 9}}, 7, 2)
	if err != nil {
		tst.Errorf("NewBar failed:\n%v", err)
		return
	}
	chk.Float64(tst, "L", 1e-15, o.L, 7)
	chk.Float64(tst, "α", 1e-15, o.Alpha, 2)
	chk.Array(tst, "cos", 1e-15, o.Cos, []float64{2.0 / 7.0, 3.0 / 7.0, 6.0 / 7.0})

	// K = Tᵀ ⋅ Klocal ⋅ T
	KT := utl.Alloc(o.Nu, o.Nu)
	for i := 0; i < o.Nu; i++ {
		for j := 0; j < o.Nu; j++ {
			for m := 0; m < 2; m++ {
				for n := 0; n < 2; n++ {
					KT[i][j] += o.T[m][i] * o.Klocal[m][n] * o.T[n][j]
				}
			}
		}
	}
	chk.Deep2(tst, "K == Tᵀ⋅Klocal⋅T", 1e-15, o.K, KT)

	// symmetry and rigid body translation
	for i := 0; i < o.Nu; i++ {
		var sum float64
		for j := 0; j < o.Nu; j++ {
			chk.Float64(tst, io.Sf("K[%d][%d]-K[%d][%d]", i, j, j, i), 1e-17, o.K[i][j]-o.K[j][i], 0)
			sum += o.K[i][j]
		}
		chk.Float64(tst, io.Sf("(K⋅1)[%d]", i), 1e-15, sum, 0)
	}
	chk.Float64(tst, "K[2][2]", 1e-15, o.K[2][2], 2.0*36.0/49.0)
	chk.Float64(tst, "K[0][4]", 1e-15, o.K[0][4], -2.0*6.0/49.0)
}

func Test_bar03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bar03. invalid bars")

	for _, c := range []struct {
		desc  string
		x     [][]float64
		E, A  float64
		class error
	}{
		{"1D", [][]float64{{0, 1}}, 1, 1, errs.ErrDimension},
		{"3 nodes", [][]float64{{0, 1, 2}, {0, 0, 0}}, 1, 1, errs.ErrDimension},
		{"zero E", [][]float64{{0, 1}, {0, 0}}, 0, 1, errs.ErrMaterial},
		{"negative A", [][]float64{{0, 1}, {0, 0}}, 1, -1, errs.ErrMaterial},
		{"zero length", [][]float64{{1, 1}, {2, 2}, {3, 3}}, 1, 1, errs.ErrGeometry},
	} {
		_, err := NewBar(1, c.x, c.E, c.A)
		if !errors.Is(err, c.class) {
			tst.Errorf("%s: error of class %v expected. got %v", c.desc, c.class, err)
		}
	}
}

func Test_bar04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bar04. axial force, strain and stress")

	o, err := NewBar(1, [][]float64{{0, 3}, {0, 4}}, 100, 0.5)
	if err != nil {
		tst.Errorf("NewBar failed:\n%v", err)
		return
	}
	err = o.SetEqs([][]int{{0, 1}, {2, 3}})
	if err != nil {
		tst.Errorf("SetEqs failed:\n%v", err)
		return
	}

	// stretching along the axis
	U := []float64{0, 0, 0.3, 0.4}
	chk.Float64(tst, "δ", 1e-15, o.Elongation(U), 0.5)
	chk.Float64(tst, "N", 1e-14, o.AxialForce(U), 5)
	chk.Float64(tst, "ε", 1e-15, o.CalcEps(U), 0.1)
	chk.Float64(tst, "σ", 1e-13, o.CalcSig(U), 10)

	// perpendicular motion does not stretch the bar
	U = []float64{0, 0, -0.4, 0.3}
	chk.Float64(tst, "N (perpendicular)", 1e-15, o.AxialForce(U), 0)

	// rigid translation
	U = []float64{1, 2, 1, 2}
	chk.Float64(tst, "N (translation)", 1e-15, o.AxialForce(U), 0)
	chk.Array(tst, "centroid", 1e-15, o.Centroid(), []float64{1.5, 2})
}

func Test_bar05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bar05. assembly into global matrix")

	o, err := NewBar(1, [][]float64{{0, 3}, {0, 4}}, 100, 0.5)
	if err != nil {
		tst.Errorf("NewBar failed:\n%v", err)
		return
	}

	// equations not set
	Kb := mat.NewSymDense(6, nil)
	err = o.AddToKb(Kb)
	if !errors.Is(err, errs.ErrDimension) {
		tst.Errorf("DimensionError expected. got %v", err)
	}
	err = o.SetEqs([][]int{{4, 5}})
	if !errors.Is(err, errs.ErrDimension) {
		tst.Errorf("DimensionError expected. got %v", err)
	}

	// reversed equations
	err = o.SetEqs([][]int{{4, 5}, {0, 1}})
	if err != nil {
		tst.Errorf("SetEqs failed:\n%v", err)
		return
	}
	chk.Ints(tst, "Umap", o.Umap, []int{4, 5, 0, 1})
	for k := 0; k < 2; k++ {
		err = o.AddToKb(Kb)
		if err != nil {
			tst.Errorf("AddToKb failed:\n%v", err)
			return
		}
	}
	for i, I := range o.Umap {
		for j, J := range o.Umap {
			chk.Float64(tst, io.Sf("Kb[%d][%d]", I, J), 1e-14, Kb.At(I, J), 2*o.K[i][j])
		}
	}
	chk.Float64(tst, "Kb[2][2]", 1e-17, Kb.At(2, 2), 0)

	// out of range
	small := mat.NewSymDense(4, nil)
	err = o.AddToKb(small)
	if !errors.Is(err, errs.ErrDimension) {
		tst.Errorf("DimensionError expected. got %v", err)
	}
	err = o.AddToRhs(make([]float64, 4), make([]float64, 4))
	if !errors.Is(err, errs.ErrDimension) {
		tst.Errorf("DimensionError expected. got %v", err)
	}
	err = o.AddToRhs(make([]float64, 6), make([]float64, 3))
	if !errors.Is(err, errs.ErrDimension) {
		tst.Errorf("DimensionError expected. got %v", err)
	}
}
