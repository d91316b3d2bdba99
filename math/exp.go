// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"math"

	"github.com/db47h/decnum"
)

// Exp returns e**x rounded to c.
//
// The result is computed in binary floating-point and is accurate to about 15
// significant digits. It always signals Inexact and Rounded, except for the
// exact results Exp(0) = 1, Exp(-Infinity) = 0 and Exp(Infinity) = Infinity.
func Exp(c *decnum.Context, x decnum.Decimal) decnum.Decimal {
	// special cases
	switch {
	case x.IsNaN():
		return c.Plus(x)
	case x.IsInf():
		if x.Signbit() {
			return decnum.Decimal{}
		}
		return x
	case x.IsZero():
		return one
	}

	// e**x = 10**t, with t = x×log10(e) = k + f, k integer and 0 <= f < 1.
	t := x.Float64() * math.Log10E
	switch {
	case t > float64(c.Emax)+1:
		return overflow(c, false)
	case t < float64(c.Etiny())-1:
		return underflow(c, false)
	}
	k := math.Floor(t)
	return fromFloat(c, math.Pow(10, t-k), int(k))
}
