// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decnum

import "math/big"

// Sqrt returns the square root of x, correctly rounded to c's precision
// using HalfEven regardless of c.Rounding.
//
// The square root of a negative non-zero value signals InvalidOperation and
// returns NaN. Following IEEE754-2008, √±0 = ±0, with an exponent of
// ⌊x.Exponent()/2⌋. Exact results have the exponent closest to that ideal
// exponent.
func (c *Context) Sqrt(x Decimal) Decimal {
	switch x.form {
	case qnan, snan:
		r, _ := c.quietNaNs(x)
		return r
	case inf:
		if !x.neg {
			return x
		}
		return c.invalid()
	}
	if x.IsZero() {
		return c.fix(x.neg, bigZero, x.exp>>1)
	}
	if x.neg {
		return c.invalid()
	}

	// Compute √(x.coef·10**x.exp) as
	//   √(coef)·10**(½exp)     if exp is even
	//   √(10·coef)·10**(⌊½exp⌋)   if exp is odd
	// with coef scaled by 100**shift so that the integer square root has
	// exactly Precision+1 digits.
	prec := c.Precision + 1
	e := x.exp >> 1
	var (
		coef = x.coef
		l    int // number of base 100 digits of coef
	)
	if x.exp&1 != 0 {
		coef = shl10(coef, 1)
		l = x.dig>>1 + 1
	} else {
		l = (x.dig + 1) >> 1
	}
	shift := prec - l
	exact := true
	if shift >= 0 {
		coef = shl10(coef, 2*shift)
	} else {
		var r big.Int
		coef, _ = new(big.Int).QuoRem(coef, pow10(-2*shift), &r)
		exact = r.Sign() == 0
	}
	e -= shift

	n := new(big.Int).Sqrt(coef)
	if exact {
		exact = new(big.Int).Mul(n, n).Cmp(coef) == 0
	}
	if exact {
		// back to the ideal exponent
		if shift >= 0 {
			n.Quo(n, pow10(shift))
		} else {
			n.Mul(n, pow10(-shift))
		}
		e += shift
	} else if lastDigit(n)%5 == 0 {
		// sticky digit for correct rounding
		n.Add(n, bigOne)
	}

	mode := c.Rounding
	c.Rounding = HalfEven
	r := c.fix(false, n, e)
	c.Rounding = mode
	return r
}
