// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"math/big"
	"strconv"

	"github.com/db47h/decnum"
)

// constants
var (
	one     = decnum.New(1, 0)
	two     = decnum.New(2, 0)
	four    = decnum.New(4, 0)
	half    = decnum.New(5, -1)
	quarter = decnum.New(25, -2)

	bigOne = big.NewInt(1)
	bigTen = big.NewInt(10)
)

// guardDigits is the number of extra digits carried by work contexts.
const guardDigits = 10

// workContext returns a context with prec digits of precision, HalfEven
// rounding, the widest exponent range and no traps.
func workContext(prec int) decnum.Context {
	return decnum.Context{
		Precision: prec,
		Rounding:  decnum.HalfEven,
		Emax:      decnum.MaxEmax,
		Emin:      decnum.MinEmin,
	}
}

// fromFloat returns f×10**e rounded to c, where f is a finite float64. The
// result of a transcendental function is never exact: Inexact
// and Rounded are always signaled.
func fromFloat(c *decnum.Context, f float64, e int) decnum.Decimal {
	d := decnum.NewFromFloat64(f)
	c.Flags |= decnum.Inexact | decnum.Rounded
	return c.Round(decnum.NewFromBigInt(signed(d), d.Exponent()+e))
}

// overflow returns the result of an operation whose value overflows c.
func overflow(c *decnum.Context, neg bool) decnum.Decimal {
	d := decnum.New(1, c.Emax+1)
	if neg {
		d = decnum.CopyNegate(d)
	}
	return c.Round(d)
}

// underflow returns the result of an operation whose value is too tiny for
// c.
func underflow(c *decnum.Context, neg bool) decnum.Decimal {
	d := decnum.New(1, c.Etiny()-2)
	if neg {
		d = decnum.CopyNegate(d)
	}
	return c.Round(d)
}

// signed returns the signed coefficient of the finite x.
func signed(x decnum.Decimal) *big.Int {
	m := x.Coefficient()
	if x.Signbit() {
		m.Neg(m)
	}
	return m
}

// split returns the finite, non-zero, positive x as m×10**e, with m in
// [1, 10).
func split(x decnum.Decimal) (m float64, e int) {
	e = x.Adjusted()
	return decnum.NewFromBigInt(x.Coefficient(), 1-x.Digits()).Float64(), e
}

// pow returns x**n computed with c. The caller is responsible for allocating
// guard digits.
func pow(c *decnum.Context, x decnum.Decimal, n uint64) decnum.Decimal {
	if n == 0 {
		return one
	}
	y := one
	for n > 1 {
		if n%2 != 0 {
			y = c.Mul(y, x)
		}
		x = c.Mul(x, x)
		n >>= 1
	}
	return c.Mul(x, y)
}

// Pow returns x**n rounded to c.
//
// 0**0 and Infinity**0 are invalid operations. A negative n computes the
// reciprocal of x**-n, so that 0**-n is Infinity.
func Pow(c *decnum.Context, x decnum.Decimal, n int) decnum.Decimal {
	switch {
	case x.IsNaN():
		return c.Plus(x)
	case n == 0:
		if x.IsZero() || x.IsInf() {
			c.Flags |= decnum.InvalidOperation
			return decnum.NaN(false, nil)
		}
		return one
	}

	neg := n < 0
	u := uint64(n)
	if neg {
		u = -u
	}

	w := workContext(c.Precision + len(strconv.FormatUint(u, 10)) + 3)
	z := pow(&w, x, u)
	if neg {
		if z.IsZero() {
			z = decnum.Inf(z.Signbit())
		} else {
			z = w.Quo(one, z)
		}
	}
	c.Flags |= w.Flags & (decnum.InvalidOperation | decnum.Inexact | decnum.Rounded)
	return c.Round(z)
}
