// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"errors"
	"testing"

	"github.com/strfem/gotruss/errs"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_axialbar01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("axialbar01. bar fixed at one end")

	u, N, R := AxialBar(1e4, 2.0, 200e9, 1e-3)
	chk.Float64(tst, "u", 1e-17, u, 1e-4)
	chk.Float64(tst, "N", 1e-17, N, 1e4)
	chk.Float64(tst, "R", 1e-17, R, -1e4)
}

func Test_twobarjoint01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("twobarjoint01. bracket with horizontal and inclined bars")

	var sol TwoBarJoint
	err := sol.Init([2]float64{0, 0}, [2]float64{0, 3}, [2]float64{4, 0}, 1000, 1000, [2]float64{0, -10})
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	io.Pforan("Na = %v  Nb = %v  U = %v\n", sol.Na, sol.Nb, sol.U)
	chk.Float64(tst, "La", 1e-15, sol.La, 4)
	chk.Float64(tst, "Lb", 1e-15, sol.Lb, 5)
	chk.Float64(tst, "Na", 1e-13, sol.Na, -40.0/3.0)
	chk.Float64(tst, "Nb", 1e-13, sol.Nb, 50.0/3.0)

	// elongations: δa = -160/3000, δb = 250/3000
	δa := -160.0 / 3000.0
	δb := 250.0 / 3000.0
	chk.Float64(tst, "ux", 1e-15, sol.U[0], δa)
	chk.Float64(tst, "uy", 1e-15, sol.U[1], (0.8*δa-δb)/0.6)

	// equilibrium
	chk.Float64(tst, "ΣFx", 1e-13, sol.Ra[0]+sol.Rb[0]+0, 0)
	chk.Float64(tst, "ΣFy", 1e-13, sol.Ra[1]+sol.Rb[1]-10, 0)
	chk.Array(tst, "Ra", 1e-13, sol.Ra[:], []float64{40.0 / 3.0, 0})
	chk.Array(tst, "Rb", 1e-13, sol.Rb[:], []float64{-40.0 / 3.0, 10})
}

func Test_twobarjoint02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("twobarjoint02. collinear bars")

	var sol TwoBarJoint
	err := sol.Init([2]float64{0, 0}, [2]float64{2, 0}, [2]float64{1, 0}, 1, 1, [2]float64{0, -1})
	if !errors.Is(err, errs.ErrSingular) {
		tst.Errorf("SingularSystemError expected. got %v", err)
	}
}

func Test_tripod01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tripod01. three bars meeting at loaded apex")

	N, uz := Tripod(3, 4, 1000, -12)
	chk.Float64(tst, "N", 1e-14, N, -5)
	chk.Float64(tst, "uz", 1e-15, uz, -0.03125)
}
