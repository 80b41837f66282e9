// Copyright 2017 The Gomat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from .mat (materials) files.
// A materials file holds named eos, yield and law definitions; laws refer
// to their collaborators by name, through keycodes in the "extra" field.
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gomat/meos"
	"github.com/cpmech/gomat/mlaw"
	"github.com/cpmech/gomat/myield"
	"github.com/cpmech/gomat/qty"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Material holds material data
type Material struct {

	// input
	Name  string     `json:"name"`  // name of material
	Type  string     `json:"type"`  // type of material; e.g. "law", "eos", "yield"
	Model string     `json:"model"` // name of model; e.g. "mises-eos", "bulk", "vm-sat"
	Extra string     `json:"extra"` // extra information; e.g. "!e:water !y:metal1-y"
	Prms  dbf.Params `json:"prms"`  // prms holds all model parameters of this material

	// derived
	Law   mlaw.Model   // pointer to actual law
	Eos   meos.Model   // pointer to actual equation of state
	Yield myield.Model // pointer to actual yield function
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Functions FuncsData `json:"functions"` // all functions
	Materials MatsData  `json:"materials"` // all materials

	// derived
	Laws   map[string]*Material // subset with materials/models: constitutive laws
	Eoss   map[string]*Material // subset with materials/models: equations of state
	Yields map[string]*Material // subset with materials/models: yield functions
}

// ReadMat reads all materials data from a .mat JSON file. Equations of
// state and yield functions are allocated and initialised first; laws are
// initialised last, under constraint c, after their collaborators are wired
func ReadMat(dir, fn string, c qty.Constraint) (mdb *MatDb, err error) {

	// new database
	mdb = new(MatDb)

	// read file
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, chk.Err("cannot parse materials file %q: %v", fn, err)
	}

	// subsets
	mdb.Laws = make(map[string]*Material)
	mdb.Eoss = make(map[string]*Material)
	mdb.Yields = make(map[string]*Material)
	for _, m := range mdb.Materials {
		switch m.Type {
		case "law":
			mdb.Laws[m.Name] = m
		case "eos":
			mdb.Eoss[m.Name] = m
		case "yield":
			mdb.Yields[m.Name] = m
		default:
			err = chk.Err("material type %q is incorrect; options are \"law\", \"eos\" and \"yield\"", m.Type)
			return
		}
	}

	// alloc/init: equations of state
	for _, m := range mdb.Eoss {
		m.Eos, err = meos.New(m.Model)
		if err != nil {
			return
		}
		err = m.Eos.Init(m.Prms)
		if err != nil {
			err = chk.Err("cannot initialise eos material %q: %v", m.Name, err)
			return
		}
	}

	// alloc/init: yield functions
	for _, m := range mdb.Yields {
		m.Yield, err = myield.New(m.Model)
		if err != nil {
			return
		}
		err = m.Yield.Init(m.Prms)
		if err != nil {
			err = chk.Err("cannot initialise yield material %q: %v", m.Name, err)
			return
		}
	}

	// alloc/init: laws, wiring the collaborators referenced in extra
	for _, m := range mdb.Laws {
		m.Law, err = mlaw.New(m.Model)
		if err != nil {
			return
		}
		if law, isMises := m.Law.(*mlaw.MisesEOS); isMises {
			ename, found := io.Keycode(m.Extra, "e")
			if !found {
				err = chk.Err("material %q (%q) needs an eos reference in extra; e.g. \"!e:water\"", m.Name, m.Model)
				return
			}
			yname, found := io.Keycode(m.Extra, "y")
			if !found {
				err = chk.Err("material %q (%q) needs a yield reference in extra; e.g. \"!y:metal1-y\"", m.Name, m.Model)
				return
			}
			e, ok := mdb.Eoss[ename]
			if !ok {
				err = chk.Err("material %q references unknown eos material %q", m.Name, ename)
				return
			}
			y, ok := mdb.Yields[yname]
			if !ok {
				err = chk.Err("material %q references unknown yield material %q", m.Name, yname)
				return
			}
			law.SetModels(e.Eos, y.Yield)
		}
		err = m.Law.Init(c, m.Prms)
		if err != nil {
			err = chk.Err("cannot initialise law material %q: %v", m.Name, err)
			return
		}
	}
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// GetLaw returns the initialised law held by the material named name
func (o MatDb) GetLaw(name string) (mlaw.Model, error) {
	m, ok := o.Laws[name]
	if !ok {
		return nil, chk.Err("cannot find law material named %q", name)
	}
	return m.Law, nil
}

// String prints one material
func (o *Material) String() string {
	l := io.Sf("    {\n      \"name\"  : %q,\n      \"type\"  : %q,\n      \"model\" : %q,\n      \"extra\" : %q,\n      \"prms\"  : [\n", o.Name, o.Type, o.Model, o.Extra)
	for i, p := range o.Prms {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("        {\"n\":%q, \"v\":%v}", p.N, p.V)
	}
	l += "\n      ]\n    }"
	return l
}

// String prints materials
func (o MatsData) String() string {
	l := "  \"materials\" : [\n"
	for i, m := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", m)
	}
	l += "\n  ]"
	return l
}

// String outputs all materials
func (o MatDb) String() string {
	return io.Sf("{\n%v,\n%v\n}", o.Functions, o.Materials)
}
