// Copyright 2017 The Gomat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mlaw

import "github.com/cpmech/gosl/io"

// ErrConv reports the failure of a local iterative solve at one point. The
// data of that point is left in a non-committed trial state; other points
// are unaffected.
type ErrConv struct {
	Law   string  // name of the law
	What  string  // which local solve failed
	Point int     // index of the point
	It    int     // iterations performed
	Resid float64 // residual after the last iteration
}

// Error returns a message with the full context of the failure
func (o *ErrConv) Error() string {
	return io.Sf("%s: %s at point %d did not converge after %d iterations (residual = %g)", o.Law, o.What, o.Point, o.It, o.Resid)
}
