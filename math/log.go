// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"math"
	"math/big"

	"github.com/db47h/decnum"
)

// Ln returns the natural logarithm of x rounded to c.
//
// The result is computed in binary floating-point and is accurate to about 15
// significant digits. Ln(1) = 0 is exact; any other finite result signals
// Inexact and Rounded. The logarithm of a negative number is an invalid
// operation, Ln(±0) is -Infinity.
func Ln(c *decnum.Context, x decnum.Decimal) decnum.Decimal {
	if r, ok := logSpecial(c, x); ok {
		return r
	}
	if decnum.Equal(x, one) {
		return decnum.Decimal{}
	}
	m, e := split(x)
	return fromFloat(c, math.Log(m)+float64(e)*math.Ln10, 0)
}

// Log10 returns the base 10 logarithm of x rounded to c.
//
// If x is an exact power of ten, the result is exact. Otherwise it is computed
// in binary floating-point as for Ln.
func Log10(c *decnum.Context, x decnum.Decimal) decnum.Decimal {
	if r, ok := logSpecial(c, x); ok {
		return r
	}
	if isPow10(x) {
		return c.Round(decnum.New(int64(x.Adjusted()), 0))
	}
	m, e := split(x)
	return fromFloat(c, math.Log10(m)+float64(e), 0)
}

// logSpecial handles NaNs, infinities, zeros and negative operands of
// logarithms.
func logSpecial(c *decnum.Context, x decnum.Decimal) (decnum.Decimal, bool) {
	switch {
	case x.IsNaN():
		return c.Plus(x), true
	case x.IsZero():
		return decnum.Inf(true), true
	case x.Signbit():
		c.Flags |= decnum.InvalidOperation
		return decnum.NaN(false, nil), true
	case x.IsInf():
		return x, true
	}
	return decnum.Decimal{}, false
}

// isPow10 reports whether the finite, positive x is an integral power of
// ten.
func isPow10(x decnum.Decimal) bool {
	m := x.Coefficient()
	var r big.Int
	for m.Cmp(bigOne) > 0 {
		m.QuoRem(m, bigTen, &r)
		if r.Sign() != 0 {
			return false
		}
	}
	return m.Cmp(bigOne) == 0
}
