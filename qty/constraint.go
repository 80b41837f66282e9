// Copyright 2017 The Gomat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qty

import "github.com/cpmech/gosl/chk"

// Constraint selects the vector-length convention of reduced (Mandel)
// quantities. It never changes algorithmic behaviour; laws that require a
// particular convention must reject the others during Init.
type Constraint int

const (
	UniaxialStrain Constraint = iota // 1D, lateral strains fixed
	UniaxialStress                   // 1D, lateral stresses zero
	PlaneStrain                      // 2D, out-of-plane strain zero
	PlaneStress                      // 2D, out-of-plane stress zero
	Full                             // 3D
)

var constraintNames = []string{"ustrain", "ustress", "pstrain", "pstress", "full"}

// String returns the short name of this constraint
func (c Constraint) String() string {
	if c < UniaxialStrain || c > Full {
		chk.Panic("constraint %d is invalid", int(c))
	}
	return constraintNames[c]
}

// GDim returns the geometric dimension under this constraint
func (c Constraint) GDim() int {
	switch c {
	case UniaxialStrain, UniaxialStress:
		return 1
	case PlaneStrain, PlaneStress:
		return 2
	case Full:
		return 3
	}
	chk.Panic("constraint %d is invalid", int(c))
	return 0
}

// QDim returns the length of reduced stress/strain vectors under this constraint
func (c Constraint) QDim() int {
	switch c {
	case UniaxialStrain, UniaxialStress:
		return 1
	case PlaneStrain, PlaneStress:
		return 4
	case Full:
		return 6
	}
	chk.Panic("constraint %d is invalid", int(c))
	return 0
}

// GetConstraint returns the constraint with the given short name; "3d" is
// accepted as an alias of "full"
func GetConstraint(name string) (Constraint, error) {
	if name == "3d" {
		return Full, nil
	}
	for i, n := range constraintNames {
		if n == name {
			return Constraint(i), nil
		}
	}
	return Full, chk.Err("constraint %q is unknown; options are \"ustrain\", \"ustress\", \"pstrain\", \"pstress\", \"full\" (or \"3d\")", name)
}
