// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decnum

import "math/big"

// Quantize returns x rounded or padded so that its exponent is the exponent
// of y.
//
// Quantize signals InvalidOperation and returns NaN if exactly one of x and
// y is infinite, if y's exponent is outside [c.Etiny(), c.Emax], or if the
// result would need more than c.Precision digits.
func (c *Context) Quantize(x, y Decimal) Decimal {
	if x.form != finite || y.form != finite {
		if r, ok := c.nans(x, y); ok {
			return r
		}
		if x.form == inf && y.form == inf {
			return x
		}
		return c.invalid()
	}
	return c.quantize(x, y.exp)
}

// QuantizeExp is like Quantize with a target exponent given as an integer.
func (c *Context) QuantizeExp(x Decimal, exp int) Decimal {
	if x.form != finite {
		if r, ok := c.nans(x); ok {
			return r
		}
		return c.invalid()
	}
	return c.quantize(x, exp)
}

func (c *Context) quantize(x Decimal, exp int) Decimal {
	if exp < c.Etiny() || exp > c.Emax {
		return c.invalid()
	}
	if x.IsZero() {
		return c.fix(x.neg, bigZero, exp)
	}
	adj := x.Adjusted()
	if adj > c.Emax || adj-exp+1 > c.Precision {
		return c.invalid()
	}
	r, changed := rescale(x, exp, c.Rounding)
	if r.Adjusted() > c.Emax || r.Digits() > c.Precision {
		return c.invalid()
	}
	if !r.IsZero() && r.Adjusted() < c.Emin {
		c.signal(Subnormal)
	}
	if r.exp > x.exp {
		if changed != 0 {
			c.signal(Inexact)
		}
		c.signal(Rounded)
	}
	return c.fix(r.neg, r.coeff(), r.exp)
}

// ToIntegral returns x rounded to an integer using c.Rounding. Only
// InvalidOperation may be signaled, for a signaling NaN operand.
func (c *Context) ToIntegral(x Decimal) Decimal {
	if x.IsNaN() {
		r, _ := c.quietNaNs(x)
		return r
	}
	if x.form == inf || x.exp >= 0 {
		return x
	}
	r, _ := rescale(x, 0, c.Rounding)
	return r
}

// ToIntegralExact is like ToIntegral but signals Inexact and Rounded as
// needed.
func (c *Context) ToIntegralExact(x Decimal) Decimal {
	if x.IsNaN() {
		r, _ := c.quietNaNs(x)
		return r
	}
	if x.form == inf || x.exp >= 0 {
		return x
	}
	if x.IsZero() {
		return Decimal{neg: x.neg, dig: 1}
	}
	r, changed := rescale(x, 0, c.Rounding)
	if changed != 0 {
		c.signal(Inexact)
	}
	c.signal(Rounded)
	return r
}

// Reduce returns x rounded to c with trailing zeros removed from its
// coefficient, and a zero result reduced to an exponent of 0.
func (c *Context) Reduce(x Decimal) Decimal {
	if x.IsNaN() {
		r, _ := c.quietNaNs(x)
		return r
	}
	r := c.Round(x)
	if r.form == inf {
		return r
	}
	if r.IsZero() {
		return Decimal{neg: r.neg, dig: 1}
	}
	coef, n := stripZeros(r.coef, c.expMax()-r.exp)
	if n == 0 {
		return r
	}
	return newDecimal(r.neg, coef, r.exp+n)
}

// Logb returns the adjusted exponent of x as a Decimal, rounded to c.
//
// Logb(±Inf) is +Inf. Logb(0) signals DivisionByZero and returns -Inf.
func (c *Context) Logb(x Decimal) Decimal {
	if x.IsNaN() {
		r, _ := c.quietNaNs(x)
		return r
	}
	if x.form == inf {
		return Inf(false)
	}
	if x.IsZero() {
		c.signal(DivisionByZero)
		return Inf(true)
	}
	a := x.Adjusted()
	neg := a < 0
	if neg {
		a = -a
	}
	return c.fix(neg, new(big.Int).SetInt64(int64(a)), 0)
}

// ScaleB returns x×10**y, rounded to c. y must be an integer with an exponent
// of 0 within ±2×(c.Emax+c.Precision), otherwise ScaleB signals
// InvalidOperation and returns NaN.
func (c *Context) ScaleB(x, y Decimal) Decimal {
	if x.form != finite || y.form != finite {
		if r, ok := c.nans(x, y); ok {
			return r
		}
	}
	n, ok := intOperand(y)
	lim := 2 * (c.Emax + c.Precision)
	if !ok || n < -lim || n > lim {
		return c.invalid()
	}
	if x.form == inf {
		return x
	}
	return c.fix(x.neg, x.coeff(), addExp(x.exp, n))
}

// Shift returns the coefficient of x, taken modulo 10**c.Precision, shifted
// left by y digits if y is positive, right if negative. Digits shifted out
// are lost and the result keeps at most c.Precision digits. The exponent and
// sign are unchanged. y must be an integer with an exponent of 0 in
// [-c.Precision, c.Precision], otherwise Shift signals InvalidOperation and
// returns NaN.
func (c *Context) Shift(x, y Decimal) Decimal {
	if x.form != finite || y.form != finite {
		if r, ok := c.nans(x, y); ok {
			return r
		}
	}
	n, ok := intOperand(y)
	if !ok || n < -c.Precision || n > c.Precision {
		return c.invalid()
	}
	if x.form == inf {
		return x
	}
	m := pow10(c.Precision)
	coef := x.coeff()
	if coef.Cmp(m) >= 0 {
		coef = new(big.Int).Rem(coef, m)
	}
	switch {
	case n < 0:
		coef = shr10(coef, -n)
	case n > 0:
		coef = shl10(coef, n)
		coef.Rem(coef, m)
	}
	return newDecimal(x.neg, coef, x.exp)
}

// intOperand returns the value of x if x is a finite integer with an exponent
// of 0 that fits in an int.
func intOperand(x Decimal) (int, bool) {
	if x.form != finite || x.exp != 0 {
		return 0, false
	}
	c := x.coeff()
	if !c.IsInt64() || c.Int64() > MaxEmax*4 {
		return 0, false
	}
	n := int(c.Int64())
	if x.neg {
		n = -n
	}
	return n, true
}
