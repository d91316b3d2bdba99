// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decnum

import "math/big"

// Quo returns the rounded quotient x/y.
//
// Division of zero by zero, or of an infinity by an infinity, signals
// InvalidOperation and returns NaN. Division of a non-zero finite value by
// zero signals DivisionByZero and returns a signed infinity. Division by an
// infinity returns a zero with the smallest exponent of c and signals
// Clamped.
//
// Exact results have the exponent closest to x.Exponent()-y.Exponent() that
// does not require more than c.Precision digits.
func (c *Context) Quo(x, y Decimal) Decimal {
	neg := x.neg != y.neg
	if x.form != finite || y.form != finite {
		if r, ok := c.nans(x, y); ok {
			return r
		}
		switch {
		case x.form == inf && y.form == inf:
			return c.invalid()
		case x.form == inf:
			return Inf(neg)
		}
		c.signal(Clamped)
		return Decimal{neg: neg, exp: c.Etiny(), dig: 1}
	}

	if y.IsZero() {
		if x.IsZero() {
			return c.invalid()
		}
		c.signal(DivisionByZero)
		return Inf(neg)
	}
	ideal := addExp(x.exp, -y.exp)
	if x.IsZero() {
		return c.fix(neg, bigZero, ideal)
	}

	// scale the dividend so that the quotient has Precision+1 or
	// Precision+2 digits.
	shift := y.dig - x.dig + c.Precision + 1
	exp := addExp(ideal, -shift)
	var q, r big.Int
	if shift >= 0 {
		q.QuoRem(shl10(x.coef, shift), y.coef, &r)
	} else {
		q.QuoRem(x.coef, shl10(y.coef, -shift), &r)
	}
	if r.Sign() != 0 {
		// make the last digit sticky so that rounding sees an inexact
		// result.
		if lastDigit(&q)%5 == 0 {
			q.Add(&q, bigOne)
		}
	} else if exp < ideal {
		var n int
		if q.Sign() != 0 {
			var s *big.Int
			s, n = stripZeros(&q, ideal-exp)
			q.Set(s)
		}
		exp += n
	}
	return c.fix(neg, &q, exp)
}

// QuoInteger returns the integer part of x/y, truncated toward zero, with an
// exponent of 0.
//
// If the integer part needs more than c.Precision digits, QuoInteger signals
// InvalidOperation and returns NaN.
func (c *Context) QuoInteger(x, y Decimal) Decimal {
	neg := x.neg != y.neg
	if x.form != finite || y.form != finite {
		if r, ok := c.nans(x, y); ok {
			return r
		}
		if x.form == inf {
			if y.form == inf {
				return c.invalid()
			}
			return Inf(neg)
		}
	}
	if y.IsZero() {
		if x.IsZero() {
			return c.invalid()
		}
		c.signal(DivisionByZero)
		return Inf(neg)
	}
	q, _, ok := c.divmod(x, y)
	if !ok {
		return c.invalid()
	}
	return q
}

// Rem returns the remainder x - y×n where n is the integer part of x/y,
// truncated toward zero. The sign of a non-zero result is the sign of x.
//
// Rem signals InvalidOperation and returns NaN if x is infinite, if y is
// zero, or if n needs more than c.Precision digits.
func (c *Context) Rem(x, y Decimal) Decimal {
	if x.form != finite || y.form != finite {
		if r, ok := c.nans(x, y); ok {
			return r
		}
		if x.form == inf {
			return c.invalid()
		}
	}
	if y.IsZero() {
		return c.invalid()
	}
	_, r, ok := c.divmod(x, y)
	if !ok {
		return c.invalid()
	}
	return c.fix(r.neg, r.coeff(), r.exp)
}

// divmod returns the integer quotient and the remainder of x/y. x must be
// finite, y non-zero. ok is false if the quotient does not fit in
// c.Precision digits.
func (c *Context) divmod(x, y Decimal) (q, r Decimal, ok bool) {
	neg := x.neg != y.neg
	ideal := x.exp
	if y.form != inf {
		ideal = min(x.exp, y.exp)
	}
	expdiff := addExp(x.Adjusted(), -y.Adjusted())
	if x.IsZero() || y.form == inf || expdiff <= -2 {
		r, _ = rescale(x, ideal, c.Rounding)
		return Decimal{neg: neg, dig: 1}, r, true
	}
	if expdiff > c.Precision {
		return Decimal{}, Decimal{}, false
	}
	xc, yc := alignExact(x, y)
	qc, rc := xc.QuoRem(xc, yc, new(big.Int))
	if qc.Cmp(pow10(c.Precision)) >= 0 {
		return Decimal{}, Decimal{}, false
	}
	return newDecimal(neg, qc, 0), newDecimal(x.neg, rc, ideal), true
}

// alignExact returns the coefficients of the finite values x and y scaled to
// the smaller of their exponents.
func alignExact(x, y Decimal) (xc, yc *big.Int) {
	if x.exp >= y.exp {
		return shl10(x.coeff(), x.exp-y.exp), new(big.Int).Set(y.coeff())
	}
	return new(big.Int).Set(x.coeff()), shl10(y.coeff(), y.exp-x.exp)
}

// RemNear returns x - y×n where n is the integer nearest to x/y, with ties
// resolved to an even n. The result may be negative even if x is positive.
//
// RemNear signals InvalidOperation and returns NaN if x is infinite, if y is
// zero, or if n needs more than c.Precision digits.
func (c *Context) RemNear(x, y Decimal) Decimal {
	if x.form != finite || y.form != finite {
		if r, ok := c.nans(x, y); ok {
			return r
		}
		if x.form == inf {
			return c.invalid()
		}
		// y infinite
		return c.Round(x)
	}
	if y.IsZero() {
		return c.invalid()
	}
	ideal := min(x.exp, y.exp)
	if x.IsZero() {
		return c.fix(x.neg, bigZero, ideal)
	}
	expdiff := addExp(x.Adjusted(), -y.Adjusted())
	if expdiff >= c.Precision+1 {
		return c.invalid()
	}
	if expdiff <= -2 {
		r, _ := rescale(x, ideal, c.Rounding)
		return c.fix(r.neg, r.coeff(), r.exp)
	}

	xc, yc := alignExact(x, y)
	q, r := xc.QuoRem(xc, yc, new(big.Int))
	// pick the nearest multiple: 2r + (q&1) > y
	t := new(big.Int).Lsh(r, 1)
	if q.Bit(0) != 0 {
		t.Add(t, bigOne)
	}
	if t.Cmp(yc) > 0 {
		r.Sub(r, yc)
		q.Add(q, bigOne)
	}
	if q.Cmp(pow10(c.Precision)) >= 0 {
		return c.invalid()
	}
	neg := x.neg
	if r.Sign() < 0 {
		neg = !neg
		r.Neg(r)
	}
	return c.fix(neg, r, ideal)
}
