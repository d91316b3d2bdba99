// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decnum

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y (incl. -0 == 0, -Inf == -Inf, and +Inf == +Inf)
//	+1 if x >  y
//
// A NaN compares greater than any non-NaN value and is never equal to
// anything: if x is a NaN the result is +1, otherwise if y is a NaN the
// result is -1. A signaling NaN operand signals InvalidOperation.
func (c *Context) Cmp(x, y Decimal) int {
	if x.form == snan || y.form == snan {
		c.signal(InvalidOperation)
	}
	switch {
	case x.IsNaN():
		return 1
	case y.IsNaN():
		return -1
	}
	return cmp(x, y)
}

// Compare compares x and y and returns the result as a Decimal: -1, 0 or 1.
// If either operand is a NaN, the result is a NaN; signaling NaNs signal
// InvalidOperation.
func (c *Context) Compare(x, y Decimal) Decimal {
	if r, ok := c.quietNaNs(x, y); ok {
		return r
	}
	return New(int64(cmp(x, y)), 0)
}

// CompareSignal is like Compare but signals InvalidOperation for quiet NaN
// operands too.
func (c *Context) CompareSignal(x, y Decimal) Decimal {
	if r, ok := c.nans(x, y); ok {
		return r
	}
	return New(int64(cmp(x, y)), 0)
}

// Equal reports whether x and y are numerically equal. NaNs are never equal
// to anything. Equal never signals.
func Equal(x, y Decimal) bool {
	if x.IsNaN() || y.IsNaN() {
		return false
	}
	return cmp(x, y) == 0
}

// cmp compares two non-NaN values numerically.
func cmp(x, y Decimal) int {
	if x.form == inf || y.form == inf {
		xi, yi := infSign(x), infSign(y)
		switch {
		case xi == yi:
			return 0
		case xi < yi:
			return -1
		}
		return 1
	}
	xz, yz := x.IsZero(), y.IsZero()
	switch {
	case xz && yz:
		return 0
	case xz:
		return -signOf(y.neg)
	case yz:
		return signOf(x.neg)
	case x.neg != y.neg:
		return signOf(x.neg)
	}
	s := signOf(x.neg)
	return s * cmpMag(x, y)
}

// cmpMag compares the magnitudes of the finite non-zero values x and y.
func cmpMag(x, y Decimal) int {
	xa, ya := x.Adjusted(), y.Adjusted()
	switch {
	case xa > ya:
		return 1
	case xa < ya:
		return -1
	}
	if x.exp == y.exp {
		return x.coef.Cmp(y.coef)
	}
	xc, yc := alignExact(x, y)
	return xc.Cmp(yc)
}

// infSign returns -1 for -Inf, 1 for +Inf and 0 otherwise.
func infSign(x Decimal) int {
	if x.form != inf {
		return 0
	}
	return signOf(x.neg)
}

func signOf(neg bool) int {
	if neg {
		return -1
	}
	return 1
}

// CompareTotal compares x and y using their abstract representation. It
// defines a total order on all values, including NaNs and zeros with
// different signs or exponents:
//
//	-NaN < -sNaN < -Inf < negative finite values < -0 < +0 < positive
//	finite values < +Inf < +sNaN < +NaN
//
// NaNs of the same kind are ordered by payload. Numerically equal finite
// values are ordered by exponent: for positive values, the smaller exponent
// comes first. CompareTotal never signals.
func CompareTotal(x, y Decimal) int {
	switch {
	case x.neg && !y.neg:
		return -1
	case !x.neg && y.neg:
		return 1
	}
	s := signOf(x.neg)
	xn, yn := nanRank(x), nanRank(y)
	if xn != 0 || yn != 0 {
		if xn == yn {
			return s * x.coeff().Cmp(y.coeff())
		}
		if xn > yn {
			return s
		}
		return -s
	}
	if r := cmp(x, y); r != 0 {
		return r
	}
	switch {
	case x.form == inf:
		return 0
	case x.exp < y.exp:
		return -s
	case x.exp > y.exp:
		return s
	}
	return 0
}

// CompareTotalMag is like CompareTotal but ignores the signs of x and y.
func CompareTotalMag(x, y Decimal) int {
	return CompareTotal(CopyAbs(x), CopyAbs(y))
}

// nanRank returns 2 for quiet NaNs, 1 for signaling NaNs and 0 otherwise.
func nanRank(x Decimal) int {
	switch x.form {
	case qnan:
		return 2
	case snan:
		return 1
	}
	return 0
}

// Max returns the larger of x and y, rounded to c.
//
// If exactly one operand is a quiet NaN, the other operand is returned. If
// both are quiet NaNs or either is a signaling NaN, the result is a NaN as
// for arithmetic operations. Numerically equal operands are ordered by
// CompareTotal, so that Max(-0, +0) is +0 and Max(1, 1.0) is 1.
func (c *Context) Max(x, y Decimal) Decimal {
	return c.minmax(x, y, false, false)
}

// Min returns the smaller of x and y, rounded to c. NaN operands and equal
// operands are handled as in Max, so that Min(-0, +0) is -0 and Min(1, 1.0)
// is 1.0.
func (c *Context) Min(x, y Decimal) Decimal {
	return c.minmax(x, y, true, false)
}

// MaxMag is like Max but compares the absolute values of x and y.
func (c *Context) MaxMag(x, y Decimal) Decimal {
	return c.minmax(x, y, false, true)
}

// MinMag is like Min but compares the absolute values of x and y.
func (c *Context) MinMag(x, y Decimal) Decimal {
	return c.minmax(x, y, true, true)
}

func (c *Context) minmax(x, y Decimal, min, mag bool) Decimal {
	if x.IsNaN() || y.IsNaN() {
		switch {
		case x.form == qnan && !y.IsNaN():
			return c.Round(y)
		case y.form == qnan && !x.IsNaN():
			return c.Round(x)
		}
		r, _ := c.quietNaNs(x, y)
		return r
	}
	var r int
	if mag {
		r = cmp(CopyAbs(x), CopyAbs(y))
	} else {
		r = cmp(x, y)
	}
	if r == 0 {
		r = CompareTotal(x, y)
	}
	if min {
		r = -r
	}
	if r < 0 {
		return c.Round(y)
	}
	return c.Round(x)
}
