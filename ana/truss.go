// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/strfem/gotruss/errs"
)

// AxialBar computes the solution of a bar fixed at one end and loaded axially at the other one
//  Input:
//   P -- axial load (positive means tension)
//   L -- length
//   E -- Young's modulus
//   A -- cross-sectional area
//  Output:
//   u -- displacement of loaded end along the bar axis
//   N -- axial force
//   R -- reaction at fixed end along the bar axis
func AxialBar(P, L, E, A float64) (u, N, R float64) {
	u = P * L / (E * A)
	N = P
	R = -P
	return
}

// TwoBarJoint holds the solution of a 2D joint connected to two pinned supports by two bars
//
//     Xa o              bar "a" connects Xa and Xj
//         \             bar "b" connects Xb and Xj
//          \
//           o Xj --> P
//          /
//         /
//     Xb o
//
type TwoBarJoint struct {
	Na, Nb float64    // axial forces (tension is positive)
	La, Lb float64    // lengths
	U      [2]float64 // displacement of joint
	Ra, Rb [2]float64 // reactions at supports a and b
}

// Init solves the joint by the method of joints and the compatibility of elongations
//  Input:
//   xa, xb -- coordinates of supports
//   xj     -- coordinates of joint
//   EAa    -- axial stiffness (E*A) of bar a
//   EAb    -- axial stiffness (E*A) of bar b
//   P      -- load applied at joint
func (o *TwoBarJoint) Init(xa, xb, xj [2]float64, EAa, EAb float64, P [2]float64) (err error) {

	// unit vectors from joint to supports
	o.La = math.Hypot(xa[0]-xj[0], xa[1]-xj[1])
	o.Lb = math.Hypot(xb[0]-xj[0], xb[1]-xj[1])
	if o.La == 0 || o.Lb == 0 {
		return errs.Geometry("bars of joint must have positive lengths. La=%g, Lb=%g", o.La, o.Lb)
	}
	ea := [2]float64{(xa[0] - xj[0]) / o.La, (xa[1] - xj[1]) / o.La}
	eb := [2]float64{(xb[0] - xj[0]) / o.Lb, (xb[1] - xj[1]) / o.Lb}

	// equilibrium: Na・ea + Nb・eb + P = 0
	det := ea[0]*eb[1] - eb[0]*ea[1]
	if math.Abs(det) < 1e-14 {
		return errs.Singular("bars of joint are collinear")
	}
	o.Na = (-P[0]*eb[1] + P[1]*eb[0]) / det
	o.Nb = (-ea[0]*P[1] + ea[1]*P[0]) / det

	// compatibility: -ea・u = δa and -eb・u = δb
	δa := o.Na * o.La / EAa
	δb := o.Nb * o.Lb / EAb
	o.U[0] = (-δa*eb[1] + δb*ea[1]) / det
	o.U[1] = (-ea[0]*δb + eb[0]*δa) / det

	// reactions
	for i := 0; i < 2; i++ {
		o.Ra[i] = o.Na * ea[i]
		o.Rb[i] = o.Nb * eb[i]
	}
	return
}

// Tripod computes the solution of three equal bars connecting a loaded apex to three pinned
// supports equally spaced on a horizontal circle
//  Input:
//   r  -- radius of circle with supports
//   h  -- height of apex above the supports
//   EA -- axial stiffness (E*A) of each bar
//   P  -- vertical load at apex (positive means upwards)
//  Output:
//   N  -- axial force in each bar
//   uz -- vertical displacement of apex
func Tripod(r, h, EA, P float64) (N, uz float64) {
	L := math.Sqrt(r*r + h*h)
	N = P * L / (3.0 * h)
	uz = N * L * L / (EA * h)
	return
}
