// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import "github.com/db47h/decnum"

// FMA returns x×y+u, computed with only one rounding. (That is, FMA performs
// the fused multiply-add of x, y, and u.)
//
// This function is a proxy for c.FMA(x, y, u).
func FMA(c *decnum.Context, x, y, u decnum.Decimal) decnum.Decimal {
	return c.FMA(x, y, u)
}

// Sqrt returns the square root of x rounded to c using the round-half-even
// rule. The square root of a negative non-zero number is an invalid
// operation.
//
// This function is a proxy for c.Sqrt(x).
func Sqrt(c *decnum.Context, x decnum.Decimal) decnum.Decimal {
	return c.Sqrt(x)
}
