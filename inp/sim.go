// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data of a truss model read from a JSON file
package inp

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/strfem/gotruss/errs"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// CoordTol is the resolution of coordinates: nodes whose coordinates round to the same
// multiples of CoordTol coincide
var CoordTol = 1e-6

// Data holds global data for the analysis
type Data struct {
	Desc     string `json:"desc"`     // description of analysis
	Ndim     int    `json:"ndim"`     // space dimension: 2 or 3. 0 means 2
	UnitLen  string `json:"unitlen"`  // unit of length used by section shapes; e.g. "m"
	UnitPres string `json:"unitpres"` // unit of pressure used by reference materials; e.g. "Pa"
}

// Node holds node data
type Node struct {
	Id  int       `json:"id"`  // identifier
	Tag int       `json:"tag"` // tag (optional)
	C   []float64 `json:"c"`   // coordinates (size == ndim)
}

// Elem holds bar data
type Elem struct {

	// input
	Id    int    `json:"id"`    // identifier
	Tag   int    `json:"tag"`   // tag (optional)
	Verts [2]int `json:"verts"` // ids of start and end nodes
	Mat   string `json:"mat"`   // name of material
	Sec   string `json:"sec"`   // name of section

	// derived
	Material *Material // material
	Section  *Section  // cross-section
	L        float64   // length
}

// Model holds all input data of a truss model
type Model struct {

	// input
	Data      Data           `json:"data"`         // global data
	Materials []*Material    `json:"materials"`    // materials
	Sections  []*Section     `json:"sections"`     // cross-sections
	Nodes     []*Node        `json:"nodes"`        // nodes
	Elems     []*Elem        `json:"elems"`        // bars
	Supports  []*Support     `json:"supports"`     // supports
	LoadCases []*LoadCase    `json:"loadcases"`    // load cases
	Combos    []*Combination `json:"combinations"` // load combinations

	// derived
	Key      string               // filename key; e.g. bracket.json => bracket
	Ndim     int                  // space dimension
	Nid2node map[int]*Node        // node id => node
	Eid2elem map[int]*Elem        // element id => element
	MatDb    map[string]*Material // material name => material
	SecDb    map[string]*Section  // section name => section
	CaseDb   map[string]*LoadCase // load case name => load case
}

// ReadModel reads and validates a model from a JSON file
func ReadModel(fnpath string) (o *Model, err error) {

	// read file
	b, err := os.ReadFile(fnpath)
	if err != nil {
		return nil, chk.Err("ReadModel: cannot read model file %q:\n%v", fnpath, err)
	}

	// decode and check
	o, err = ParseModel(b)
	if err != nil {
		return nil, err
	}
	o.Key = io.FnKey(filepath.Base(fnpath))
	return
}

// ParseModel decodes and validates a model from JSON data
func ParseModel(b []byte) (o *Model, err error) {
	o = new(Model)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("ParseModel: cannot unmarshal model:\n%v", err)
	}
	err = o.Init()
	if err != nil {
		return nil, err
	}
	return
}

// Init sets default values, validates input data and computes derived quantities.
// It may be called on models built programmatically
func (o *Model) Init() (err error) {

	// defaults
	if o.Data.Ndim == 0 {
		o.Data.Ndim = 2
	}
	if o.Data.UnitLen == "" {
		o.Data.UnitLen = "m"
	}
	if o.Data.UnitPres == "" {
		o.Data.UnitPres = "Pa"
	}
	if o.Data.Ndim != 2 && o.Data.Ndim != 3 {
		return errs.Dimension("space dimension must be 2 or 3. ndim=%d is invalid", o.Data.Ndim)
	}
	o.Ndim = o.Data.Ndim

	// materials
	o.MatDb = make(map[string]*Material)
	for _, m := range o.Materials {
		if _, ok := o.MatDb[m.Name]; ok {
			return errs.Material("material %q is defined more than once", m.Name)
		}
		err = m.Init(o.Data.UnitPres)
		if err != nil {
			return
		}
		o.MatDb[m.Name] = m
	}

	// sections
	o.SecDb = make(map[string]*Section)
	for _, s := range o.Sections {
		if _, ok := o.SecDb[s.Name]; ok {
			return errs.Material("section %q is defined more than once", s.Name)
		}
		err = s.Init(o.Data.UnitLen)
		if err != nil {
			return
		}
		o.SecDb[s.Name] = s
	}

	// nodes
	o.Nid2node = make(map[int]*Node)
	pt2nid := make(map[[3]int64]int)
	for _, n := range o.Nodes {
		if _, ok := o.Nid2node[n.Id]; ok {
			return errs.Geometry("node id %d is duplicated", n.Id)
		}
		if len(n.C) != o.Ndim {
			return errs.Dimension("node %d has %d coordinates but ndim=%d", n.Id, len(n.C), o.Ndim)
		}
		pt := pointKey(n.C)
		if nid, ok := pt2nid[pt]; ok {
			return errs.Geometry("nodes %d and %d coincide at %v (tolerance=%g)", nid, n.Id, n.C, CoordTol)
		}
		pt2nid[pt] = n.Id
		o.Nid2node[n.Id] = n
	}

	// elements
	o.Eid2elem = make(map[int]*Elem)
	pair2eid := make(map[[2]int]int)
	for _, e := range o.Elems {
		if _, ok := o.Eid2elem[e.Id]; ok {
			return errs.Geometry("element id %d is duplicated", e.Id)
		}
		if e.Verts[0] == e.Verts[1] {
			return errs.Geometry("element %d connects node %d to itself", e.Id, e.Verts[0])
		}
		pair := [2]int{e.Verts[0], e.Verts[1]}
		if pair[0] > pair[1] {
			pair[0], pair[1] = pair[1], pair[0]
		}
		if eid, ok := pair2eid[pair]; ok {
			return errs.Geometry("elements %d and %d connect the same nodes %d and %d", eid, e.Id, pair[0], pair[1])
		}
		pair2eid[pair] = e.Id
		for _, nid := range e.Verts {
			if _, ok := o.Nid2node[nid]; !ok {
				return errs.Geometry("element %d refers to unknown node %d", e.Id, nid)
			}
		}
		e.L = o.Distance(e.Verts[0], e.Verts[1])
		if e.L == 0 {
			return errs.Geometry("element %d has zero length. nodes %d and %d coincide", e.Id, e.Verts[0], e.Verts[1])
		}
		var ok bool
		if e.Material, ok = o.MatDb[e.Mat]; !ok {
			return errs.Material("element %d refers to unknown material %q", e.Id, e.Mat)
		}
		if e.Section, ok = o.SecDb[e.Sec]; !ok {
			return errs.Material("element %d refers to unknown section %q", e.Id, e.Sec)
		}
		o.Eid2elem[e.Id] = e
	}

	// supports
	for _, s := range o.Supports {
		if _, ok := o.Nid2node[s.Node]; !ok {
			return errs.Support("support refers to unknown node %d", s.Node)
		}
	}

	// load cases
	o.CaseDb = make(map[string]*LoadCase)
	for _, lc := range o.LoadCases {
		if _, ok := o.CaseDb[lc.Name]; ok {
			return chk.Err("load case %q is defined more than once", lc.Name)
		}
		err = lc.check(o)
		if err != nil {
			return
		}
		o.CaseDb[lc.Name] = lc
	}

	// combinations
	names := make(map[string]bool)
	for _, c := range o.Combos {
		if names[c.Name] || o.CaseDb[c.Name] != nil {
			return chk.Err("combination name %q is already in use", c.Name)
		}
		names[c.Name] = true
		for _, key := range c.Cases() {
			if _, ok := o.CaseDb[key]; !ok {
				return chk.Err("combination %q refers to unknown load case %q", c.Name, key)
			}
		}
	}
	return
}

// pointKey returns the coordinates rounded to CoordTol
func pointKey(c []float64) (key [3]int64) {
	for i, x := range c {
		key[i] = int64(math.Round(x / CoordTol))
	}
	return
}

// Distance returns the distance between two nodes
func (o *Model) Distance(nidA, nidB int) float64 {
	a, b := o.Nid2node[nidA].C, o.Nid2node[nidB].C
	var sum float64
	for i := range a {
		sum += (b[i] - a[i]) * (b[i] - a[i])
	}
	return math.Sqrt(sum)
}

// ElemX returns the coordinates of the start and end nodes of an element as x[ndim][2]
func (o *Model) ElemX(e *Elem) (x [][]float64) {
	x = make([][]float64, o.Ndim)
	for i := 0; i < o.Ndim; i++ {
		x[i] = []float64{o.Nid2node[e.Verts[0]].C[i], o.Nid2node[e.Verts[1]].C[i]}
	}
	return
}

// NodeIds returns the ids of all nodes in ascending order
func (o *Model) NodeIds() (ids []int) {
	ids = make([]int, 0, len(o.Nodes))
	for _, n := range o.Nodes {
		ids = append(ids, n.Id)
	}
	sort.Ints(ids)
	return
}
