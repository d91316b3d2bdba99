// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decnum

import (
	"math"
	"math/big"
)

// Round returns x rounded to c's precision and exponent range.
//
// Infinities are returned unchanged. NaN payloads that do not fit in
// Precision digits (Precision-1 if c.Clamp is set) are truncated to their
// least significant digits. Finite values are rounded according to
// c.Rounding, signaling Rounded and Inexact when digits are discarded,
// Overflow when the adjusted exponent exceeds Emax, Subnormal and Underflow
// for tiny results, and Clamped when the exponent has to be changed to fit.
func (c *Context) Round(x Decimal) Decimal {
	switch x.form {
	case inf:
		return x
	case qnan, snan:
		return c.fixNaN(x)
	}
	return c.fix(x.neg, x.coeff(), x.exp)
}

// fixNaN truncates the payload of x to fit in c.
func (c *Context) fixNaN(x Decimal) Decimal {
	max := c.Precision
	if c.Clamp {
		max--
	}
	if x.coef == nil || x.dig <= max {
		return x
	}
	p := new(big.Int).Rem(x.coef, pow10(max))
	return newNaN(x.form, x.neg, p)
}

// quiet returns x as a quiet NaN, with its payload fitted to c.
func (c *Context) quiet(x Decimal) Decimal {
	x.form = qnan
	return c.fixNaN(x)
}

// addExp returns a+b saturated to the int32 range. Results that far out
// overflow or underflow any context.
func addExp(a, b int) int {
	s := int64(a) + int64(b)
	if s > math.MaxInt32 {
		return math.MaxInt32
	}
	if s < math.MinInt32 {
		return math.MinInt32
	}
	return int(s)
}

// fix rounds ±coef×10**exp to c and returns the result. coef may be owned
// by the result and must not be modified afterwards.
func (c *Context) fix(neg bool, coef *big.Int, exp int) Decimal {
	etiny, etop := c.Etiny(), c.Etop()

	if coef.Sign() == 0 {
		e := exp
		if e < etiny {
			e = etiny
		} else if em := c.expMax(); e > em {
			e = em
		}
		if e != exp {
			c.signal(Clamped)
		}
		return Decimal{neg: neg, exp: e, dig: 1}
	}

	ndig := numDigits(coef)
	// smallest exponent for which the value fits in Precision digits
	expMin := ndig + exp - c.Precision
	if expMin > etop {
		c.signal(Overflow | Inexact | Rounded)
		return c.overflow(neg)
	}
	subnormal := expMin < etiny
	if subnormal {
		expMin = etiny
	}

	if exp < expMin {
		keep := ndig + exp - expMin
		if keep < 0 {
			// the value is below half an ulp of 10**expMin.
			coef, exp, ndig, keep = bigOne, expMin-1, 1, 0
		}
		q, changed := roundCoef(c.Rounding, neg, coef, ndig-keep)
		if changed > 0 {
			q.Add(q, bigOne)
			if q.Cmp(pow10(c.Precision)) >= 0 {
				q.Quo(q, bigTen)
				expMin++
			}
		}
		var r Decimal
		if expMin > etop {
			c.signal(Overflow | Inexact | Rounded)
			r = c.overflow(neg)
		} else {
			r = newDecimal(neg, q, expMin)
		}
		if changed != 0 && subnormal {
			c.signal(Underflow)
		}
		if subnormal {
			c.signal(Subnormal)
		}
		if changed != 0 {
			c.signal(Inexact)
		}
		c.signal(Rounded)
		if r.IsZero() {
			c.signal(Clamped)
		}
		return r
	}

	if subnormal {
		c.signal(Subnormal)
	}
	if c.Clamp && exp > etop {
		c.signal(Clamped)
		return newDecimal(neg, shl10(coef, exp-etop), etop)
	}
	return Decimal{coef: coef, exp: exp, dig: ndig, neg: neg}
}

// overflow returns the result of an overflow with the given sign.
func (c *Context) overflow(neg bool) Decimal {
	switch c.Rounding {
	case HalfEven, HalfUp, HalfDown, Up:
		return Inf(neg)
	case Ceiling:
		if !neg {
			return Inf(false)
		}
	case Floor:
		if neg {
			return Inf(true)
		}
	}
	return c.maxFinite(neg)
}

// maxFinite returns the largest finite value of c with the given sign.
func (c *Context) maxFinite(neg bool) Decimal {
	m := new(big.Int).Sub(pow10(c.Precision), bigOne)
	return Decimal{coef: m, exp: c.Etop(), dig: c.Precision, neg: neg}
}

// roundCoef drops the n least significant digits of coef (n > 0) and returns
// the truncated coefficient along with the rounding decision: 1 if the
// result must be incremented, -1 if it must not but non-zero digits were
// discarded, and 0 if the discarded digits were all zero. The returned
// integer is freshly allocated.
func roundCoef(mode RoundingMode, neg bool, coef *big.Int, n int) (*big.Int, int) {
	q, r := new(big.Int).QuoRem(coef, pow10(n), new(big.Int))
	if r.Sign() == 0 {
		return q, 0
	}
	var inc bool
	switch mode {
	case Down:
		// nothing to do
	case Up:
		inc = true
	case Ceiling:
		inc = !neg
	case Floor:
		inc = neg
	case Round05Up:
		d := lastDigit(q)
		inc = d == 0 || d == 5
	default:
		// compare the remainder with half a unit of the last kept digit
		half := r.Lsh(r, 1).Cmp(pow10(n))
		switch mode {
		case HalfUp:
			inc = half >= 0
		case HalfDown:
			inc = half > 0
		case HalfEven:
			inc = half > 0 || half == 0 && q.Bit(0) != 0
		default:
			panic("unreachable")
		}
	}
	if inc {
		return q, 1
	}
	return q, -1
}

// rescale returns x with its coefficient adjusted so that its exponent is
// exp, rounding with the given mode if digits need to be discarded. It
// returns the rounding decision as roundCoef does. x must be finite.
func rescale(x Decimal, exp int, mode RoundingMode) (Decimal, int) {
	if x.IsZero() {
		return Decimal{neg: x.neg, exp: exp, dig: 1}, 0
	}
	if x.exp >= exp {
		return newDecimal(x.neg, shl10(x.coef, x.exp-exp), exp), 0
	}
	coef, ndig := x.coef, x.dig
	keep := ndig + x.exp - exp
	if keep < 0 {
		coef, ndig, keep = bigOne, 1, 0
	}
	q, changed := roundCoef(mode, x.neg, coef, ndig-keep)
	if changed > 0 {
		q.Add(q, bigOne)
	}
	return newDecimal(x.neg, q, exp), changed
}
