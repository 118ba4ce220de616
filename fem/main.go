// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the linear static analysis of trusses by the finite element method
package fem

import (
	"time"

	"github.com/strfem/gotruss/ele"
	"github.com/strfem/gotruss/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// Settings holds options of the analysis
type Settings struct {
	CondMax  float64 // maximum allowed condition number of the matrix of free equations
	ResTol   float64 // maximum allowed relative residual of linear solutions
	Nworkers int     // number of goroutines to formulate elements. <= 1 means serial
	Verbose  bool    // show messages
}

// DefaultSettings returns the default settings
func DefaultSettings() Settings {
	return Settings{
		CondMax:  1e12,
		ResTol:   1e-9,
		Nworkers: 1,
	}
}

// Main holds all data for a linear static analysis using the finite element method.
// The global matrix is assembled and factorised once and reused for all load cases
type Main struct {
	Mdl     *inp.Model    // input data
	Dom     *Domain       // nodes, elements and supports
	Set     Settings      // settings
	K       *mat.SymDense // global stiffness matrix, including springs
	Kff     *mat.SymDense // matrix of free equations; nil if there are no free equations
	Kfc     *mat.Dense    // coupling between free and constrained equations; nil if nf or nc are zero
	LinSol  *LinSol       // factorised Kff
	ShowMsg bool          // show messages
}

// NewMain builds the domain, assembles the global matrix, reduces it and factorises it
func NewMain(mdl *inp.Model, set Settings) (o *Main, err error) {

	// new Main object
	o = new(Main)
	o.Mdl = mdl
	o.Set = set
	o.ShowMsg = set.Verbose

	// domain
	o.Dom, err = NewDomain(mdl, set.Nworkers)
	if err != nil {
		return nil, err
	}
	if o.ShowMsg {
		io.Pf("> Domain allocated\n")
		io.Pf(">> Number of nodes = %d\n", len(o.Dom.Nodes))
		io.Pf(">> Number of elements = %d\n", len(o.Dom.Elems))
		io.Pf(">> Number of equations = %d (free = %d, constrained = %d)\n", o.Dom.Ny, o.Dom.Part.Nf(), o.Dom.Part.Nc())
		for _, sec := range mdl.Sections {
			if sec.Desc != "" {
				io.Pf(">> Section %q = %s\n", sec.Name, sec.Desc)
			}
		}
		io.Pf("%v", o.Dom.EssenBcs.List())
	}

	// global matrix
	o.K, err = AssembleK(o.Dom.Ny, o.Dom.Elems)
	if err != nil {
		return nil, err
	}
	err = o.Dom.EssenBcs.AddSpringsToKb(o.K)
	if err != nil {
		return nil, err
	}

	// reduced system and factorisation
	zero := make([]float64, o.Dom.Ny)
	o.Kff, o.Kfc, _, _, err = Reduce(o.K, zero, o.Dom.Part)
	if err != nil {
		return nil, err
	}
	o.LinSol, err = NewLinSol(o.Kff, set.CondMax, set.ResTol)
	if err != nil {
		return nil, err
	}
	if o.ShowMsg {
		io.Pf("> Global matrix factorised (cond = %g)\n", o.LinSol.Cond)
	}
	return
}

// Run solves all load cases (in input order) and then all combinations.
// A single unloaded case named "default" is solved if there are no load cases
func (o *Main) Run() (results []*Results, err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// unloaded structure
	if len(o.Mdl.LoadCases) == 0 {
		var nbcs PtNaturalBcs
		nbcs.Reset()
		res, err := o.Solve("default", &nbcs)
		if err != nil {
			return nil, err
		}
		return []*Results{res}, nil
	}

	// load cases
	for _, lc := range o.Mdl.LoadCases {
		res, err := o.SolveCase(lc)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	// combinations
	for _, c := range o.Mdl.Combos {
		res, err := o.SolveCombination(c)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return
}

// SolveCase solves one load case
func (o *Main) SolveCase(lc *inp.LoadCase) (res *Results, err error) {
	var nbcs PtNaturalBcs
	nbcs.Reset()
	err = o.Dom.SetLoads(&nbcs, lc, 1)
	if err != nil {
		return
	}
	return o.Solve(lc.Name, &nbcs)
}

// SolveCombination solves the loads of all load cases multiplied by the factors of a combination.
// Prescribed displacements are not multiplied
func (o *Main) SolveCombination(c *inp.Combination) (res *Results, err error) {
	var nbcs PtNaturalBcs
	nbcs.Reset()
	for _, name := range c.Cases() {
		lc, ok := o.Mdl.CaseDb[name]
		if !ok {
			return nil, chk.Err("combination %q refers to unknown load case %q", c.Name, name)
		}
		err = o.Dom.SetLoads(&nbcs, lc, c.Factors[name])
		if err != nil {
			return
		}
	}
	return o.Solve(c.Name, &nbcs)
}

// Solve solves the system for the forces in nbcs and computes reactions and internal forces
func (o *Main) Solve(name string, nbcs *PtNaturalBcs) (res *Results, err error) {

	// forces
	part := o.Dom.Part
	res = &Results{Name: name}
	res.F, err = AssembleF(o.Dom.Ny, nbcs)
	if err != nil {
		return nil, err
	}

	// rhs = Ff - Kfc ⋅ Uc
	rhs := make([]float64, part.Nf())
	for i, I := range part.Free {
		rhs[i] = res.F[I]
		if o.Kfc != nil {
			for j := range part.Fixed {
				rhs[i] -= o.Kfc.At(i, j) * part.Uc[j]
			}
		}
	}

	// solve
	Uf, resid, err := o.LinSol.Solve(rhs)
	if err != nil {
		return nil, err
	}
	res.Resid = resid
	res.U, err = part.Join(Uf)
	if err != nil {
		return nil, err
	}

	// reactions
	res.R, err = Reactions(o.K, res.U, res.F, part)
	if err != nil {
		return nil, err
	}
	res.Rspr = make([]float64, len(o.Dom.EssenBcs.Springs))
	for k, spr := range o.Dom.EssenBcs.Springs {
		res.Rspr[k] = -spr.K * res.U[spr.Eq]
	}

	// internal forces
	nbars := len(o.Dom.Elems)
	res.N = make([]float64, nbars)
	res.Sig = make([]float64, nbars)
	res.Eps = make([]float64, nbars)
	for i, elem := range o.Dom.Elems {
		if e, ok := elem.(ele.CanOutputForces); ok {
			res.N[i] = e.AxialForce(res.U)
			res.Sig[i] = e.CalcSig(res.U)
			res.Eps[i] = e.CalcEps(res.U)
		}
	}
	if o.ShowMsg {
		io.Pf("%v", nbcs.List())
		io.Pf("> %q solved (residual = %g)\n", name, resid)
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// onexit prints final message with cpu time
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}
	return prevErr
}
