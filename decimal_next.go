// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decnum

// NextUp returns the smallest value representable in c that is greater than
// x. NextUp(+Inf) is +Inf and NextUp(-Inf) is the most negative finite value.
// Only a signaling NaN operand signals a condition.
func (c *Context) NextUp(x Decimal) Decimal {
	return c.next(x, false)
}

// NextDown returns the largest value representable in c that is less than
// x. NextDown(-Inf) is -Inf and NextDown(+Inf) is the largest finite value.
// Only a signaling NaN operand signals a condition.
func (c *Context) NextDown(x Decimal) Decimal {
	return c.next(x, true)
}

func (c *Context) next(x Decimal, down bool) Decimal {
	switch x.form {
	case qnan, snan:
		r, _ := c.quietNaNs(x)
		return r
	case inf:
		if x.neg == down {
			return x
		}
		return c.maxFinite(x.neg)
	}
	// work on a copy of c, discarding its flags
	w := *c
	w.Flags = 0
	w.Rounding = Ceiling
	if down {
		w.Rounding = Floor
	}
	if r := w.Round(x); cmp(r, x) != 0 {
		return r
	}
	// a value below the smallest subnormal, so that rounding toward the
	// requested direction steps by exactly one unit in the last place.
	tiny := Decimal{coef: bigOne, exp: w.Etiny() - 1, dig: 1, neg: down}
	return w.add(x, tiny)
}

// NextToward returns the value representable in c that is closest to x in
// the direction of y. If x and y are numerically equal, the result is x with
// the sign of y.
//
// Unlike NextUp and NextDown, NextToward signals Overflow when the result is
// infinite, and Underflow and Subnormal when it is subnormal or zero, along
// with Inexact and Rounded.
func (c *Context) NextToward(x, y Decimal) Decimal {
	if r, ok := c.quietNaNs(x, y); ok {
		return r
	}
	var r Decimal
	switch cmp(x, y) {
	case 0:
		return CopySign(x, y)
	case -1:
		r = c.NextUp(x)
	default:
		r = c.NextDown(x)
	}
	switch {
	case r.form == inf:
		c.signal(Overflow | Inexact | Rounded)
	case r.Adjusted() < c.Emin:
		c.signal(Underflow | Subnormal | Inexact | Rounded)
		if r.IsZero() {
			c.signal(Clamped)
		}
	}
	return r
}
