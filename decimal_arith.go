// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decnum

import "math/big"

// nans handles NaN operands of arithmetic operations. If any operand is a
// signaling NaN, it signals InvalidOperation and returns the first one,
// quieted. Otherwise, if any operand is a quiet NaN, it signals
// InvalidOperation and returns the first one. ok is false if no operand is a
// NaN.
func (c *Context) nans(xs ...Decimal) (r Decimal, ok bool) {
	for _, x := range xs {
		if x.form == snan {
			c.signal(InvalidOperation)
			return c.quiet(x), true
		}
	}
	for _, x := range xs {
		if x.form == qnan {
			c.signal(InvalidOperation)
			return c.fixNaN(x), true
		}
	}
	return Decimal{}, false
}

// quietNaNs is like nans, except that quiet NaNs propagate without signaling
// InvalidOperation.
func (c *Context) quietNaNs(xs ...Decimal) (r Decimal, ok bool) {
	for _, x := range xs {
		if x.form == snan {
			c.signal(InvalidOperation)
			return c.quiet(x), true
		}
	}
	for _, x := range xs {
		if x.form == qnan {
			return c.fixNaN(x), true
		}
	}
	return Decimal{}, false
}

// Add returns the rounded sum x+y.
//
// Adding infinities of opposite signs signals InvalidOperation and returns
// NaN. The sum of two zeros is a zero with the smaller exponent, negative
// only if both are negative (or if either is, when rounding toward Floor).
func (c *Context) Add(x, y Decimal) Decimal {
	if x.form != finite || y.form != finite {
		if r, ok := c.nans(x, y); ok {
			return r
		}
	}
	return c.add(x, y)
}

// Sub returns the rounded difference x-y.
func (c *Context) Sub(x, y Decimal) Decimal {
	if x.form != finite || y.form != finite {
		if r, ok := c.nans(x, y); ok {
			return r
		}
	}
	return c.add(x, CopyNegate(y))
}

// add adds x and y, which must not be NaNs. The operands need not fit in c.
func (c *Context) add(x, y Decimal) Decimal {
	if x.form == inf {
		if y.form == inf && x.neg != y.neg {
			return c.invalid()
		}
		return x
	}
	if y.form == inf {
		return y
	}

	exp := min(x.exp, y.exp)
	negZero := c.Rounding == Floor && x.neg != y.neg
	xz, yz := x.IsZero(), y.IsZero()
	switch {
	case xz && yz:
		return c.fix((x.neg && y.neg) || negZero, bigZero, exp)
	case xz:
		// y unchanged, at the ideal exponent if it does not cost digits
		exp = max(exp, y.exp-c.Precision-1)
		r, _ := rescale(y, exp, c.Rounding)
		return c.fix(r.neg, r.coeff(), r.exp)
	case yz:
		exp = max(exp, x.exp-c.Precision-1)
		r, _ := rescale(x, exp, c.Rounding)
		return c.fix(r.neg, r.coeff(), r.exp)
	}

	xc, yc, exp := align(x, y, c.Precision)
	if x.neg == y.neg {
		return c.fix(x.neg, xc.Add(xc, yc), exp)
	}
	switch xc.Cmp(yc) {
	case 0:
		return c.fix(negZero, bigZero, exp)
	case 1:
		return c.fix(x.neg, xc.Sub(xc, yc), exp)
	}
	return c.fix(y.neg, yc.Sub(yc, xc), exp)
}

// align returns the coefficients of x and y, both non-zero and finite,
// scaled to a common exponent. When one operand is so small that it only
// affects rounding of the result, it is replaced by a single digit of the
// same sign placed below the precision of the larger operand. Both returned
// integers are freshly allocated.
func align(x, y Decimal, prec int) (xc, yc *big.Int, exp int) {
	swap := x.exp < y.exp
	if swap {
		x, y = y, x
	}
	// x has the larger exponent
	exp = x.exp + min(-1, x.dig-prec-2)
	if y.dig+y.exp-1 < exp {
		yc = big.NewInt(1)
	} else {
		yc = new(big.Int).Set(y.coef)
		exp = y.exp
	}
	xc = shl10(x.coef, x.exp-exp)
	if swap {
		return yc, xc, exp
	}
	return xc, yc, exp
}

// Mul returns the rounded product x×y.
//
// Multiplying an infinity by zero signals InvalidOperation and returns NaN.
func (c *Context) Mul(x, y Decimal) Decimal {
	neg := x.neg != y.neg
	if x.form != finite || y.form != finite {
		if r, ok := c.nans(x, y); ok {
			return r
		}
		if x.form == inf && y.IsZero() || y.form == inf && x.IsZero() {
			return c.invalid()
		}
		return Inf(neg)
	}
	exp := addExp(x.exp, y.exp)
	if x.IsZero() || y.IsZero() {
		return c.fix(neg, bigZero, exp)
	}
	return c.fix(neg, new(big.Int).Mul(x.coef, y.coef), exp)
}

// FMA returns x×y+u, computed with only one rounding. That is, FMA performs
// the fused multiply-add of x, y, and u.
func (c *Context) FMA(x, y, u Decimal) Decimal {
	if x.form != finite || y.form != finite || u.form != finite {
		if r, ok := c.nans(x, y, u); ok {
			return r
		}
	}
	var p Decimal
	neg := x.neg != y.neg
	switch {
	case x.form == inf || y.form == inf:
		if x.IsZero() || y.IsZero() {
			return c.invalid()
		}
		p = Inf(neg)
	case x.IsZero() || y.IsZero():
		p = Decimal{neg: neg, exp: addExp(x.exp, y.exp), dig: 1}
	default:
		p = newDecimal(neg, new(big.Int).Mul(x.coef, y.coef), addExp(x.exp, y.exp))
	}
	return c.add(p, u)
}

// Plus returns x rounded to c, as 0+x. A zero result is positive unless c
// rounds toward Floor.
func (c *Context) Plus(x Decimal) Decimal {
	if x.IsNaN() {
		r, _ := c.quietNaNs(x)
		return r
	}
	if x.IsZero() && c.Rounding != Floor {
		x.neg = false
	}
	return c.Round(x)
}

// Neg returns -x rounded to c, as 0-x. A zero result is positive unless c
// rounds toward Floor.
func (c *Context) Neg(x Decimal) Decimal {
	if x.IsNaN() {
		r, _ := c.quietNaNs(x)
		return r
	}
	if x.IsZero() && c.Rounding != Floor {
		x.neg = false
	} else {
		x.neg = !x.neg
	}
	return c.Round(x)
}

// Abs returns |x| rounded to c.
func (c *Context) Abs(x Decimal) Decimal {
	if x.IsNaN() {
		r, _ := c.quietNaNs(x)
		return r
	}
	if x.neg {
		return c.Neg(x)
	}
	return c.Plus(x)
}
