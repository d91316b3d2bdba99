// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decnum

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

// A Decimal is an immutable arbitrary-precision decimal floating-point value:
// ±coefficient×10**exponent, ±Infinity, or a quiet or signaling NaN with an
// optional integer payload.
//
// The zero value for a Decimal is 0. Decimal values may be copied and shared
// freely, including between goroutines.
type Decimal struct {
	coef *big.Int // nil means 0
	exp  int
	dig  int // digits of coef; 0 means not computed (zero value)
	form form
	neg  bool
}

// newDecimal returns a finite Decimal. coef is not copied and must not be
// modified afterwards.
func newDecimal(neg bool, coef *big.Int, exp int) Decimal {
	if coef.Sign() == 0 {
		return Decimal{neg: neg, exp: exp, dig: 1}
	}
	return Decimal{coef: coef, exp: exp, dig: numDigits(coef), neg: neg}
}

// New returns a new Decimal with value coef×10**exp. New panics with an
// error wrapping ErrRange if |exp| > 2100000000.
func New(coef int64, exp int) Decimal {
	checkExp(exp)
	c := new(big.Int).SetInt64(coef)
	neg := c.Sign() < 0
	return newDecimal(neg, c.Abs(c), exp)
}

// NewFromBigInt returns a new Decimal with value coef×10**exp. coef is
// copied. Like New, it panics if exp is out of range.
func NewFromBigInt(coef *big.Int, exp int) Decimal {
	checkExp(exp)
	return newDecimal(coef.Sign() < 0, new(big.Int).Abs(coef), exp)
}

func checkExp(exp int) {
	if exp < -maxExp || exp > maxExp {
		panic(errors.WithMessagef(ErrRange, "decnum: exponent %d", exp))
	}
}

// Inf returns +Inf if signbit is not set, -Inf otherwise.
func Inf(signbit bool) Decimal {
	return Decimal{form: inf, neg: signbit}
}

// NaN returns a quiet NaN with the given sign and payload. A nil payload
// is 0. The absolute value of payload is used.
func NaN(signbit bool, payload *big.Int) Decimal {
	return newNaN(qnan, signbit, payload)
}

// SNaN returns a signaling NaN with the given sign and payload. A nil
// payload is 0. The absolute value of payload is used.
func SNaN(signbit bool, payload *big.Int) Decimal {
	return newNaN(snan, signbit, payload)
}

func newNaN(f form, signbit bool, payload *big.Int) Decimal {
	d := Decimal{form: f, neg: signbit}
	if payload != nil && payload.Sign() != 0 {
		d.coef = new(big.Int).Abs(payload)
		d.dig = numDigits(d.coef)
	}
	return d
}

// coeff returns x's coefficient or payload. The result must not be modified.
func (x Decimal) coeff() *big.Int {
	if x.coef == nil {
		return bigZero
	}
	return x.coef
}

// Sign returns:
//
//	-1 if x <   0
//	 0 if x is ±0 or NaN
//	+1 if x >   0
func (x Decimal) Sign() int {
	if x.IsNaN() || x.IsZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Signbit reports whether x is negative, negative zero or has its sign bit
// set if x is a NaN.
func (x Decimal) Signbit() bool {
	return x.neg
}

// Exponent returns the exponent of x. The result is 0 for infinities and NaNs.
func (x Decimal) Exponent() int {
	if x.form != finite {
		return 0
	}
	return x.exp
}

// Coefficient returns a copy of the coefficient of x. The result is 0 for
// infinities and NaNs.
func (x Decimal) Coefficient() *big.Int {
	if x.form != finite {
		return new(big.Int)
	}
	return new(big.Int).Set(x.coeff())
}

// Payload returns a copy of x's payload and true if x is a NaN. Otherwise it
// returns nil, false.
func (x Decimal) Payload() (*big.Int, bool) {
	if !x.IsNaN() {
		return nil, false
	}
	return new(big.Int).Set(x.coeff()), true
}

// Digits returns the number of decimal digits of x's coefficient, or of its
// payload if x is a NaN. Zero has one digit, and so do infinities.
func (x Decimal) Digits() int {
	if x.dig == 0 {
		return 1
	}
	return x.dig
}

// Adjusted returns the adjusted exponent of x: Exponent() + Digits() - 1,
// that is the exponent of x in scientific notation. The result is 0 for
// infinities and NaNs.
func (x Decimal) Adjusted() int {
	if x.form != finite {
		return 0
	}
	return x.exp + x.Digits() - 1
}

// IsZero reports whether x is +0 or -0.
func (x Decimal) IsZero() bool {
	return x.form == finite && (x.coef == nil || x.coef.Sign() == 0)
}

// IsFinite reports whether x is neither infinite nor a NaN.
func (x Decimal) IsFinite() bool {
	return x.form == finite
}

// IsInf reports whether x is +Inf or -Inf.
func (x Decimal) IsInf() bool {
	return x.form == inf
}

// IsNaN reports whether x is a quiet or signaling NaN.
func (x Decimal) IsNaN() bool {
	return x.form == qnan || x.form == snan
}

// IsQNaN reports whether x is a quiet NaN.
func (x Decimal) IsQNaN() bool {
	return x.form == qnan
}

// IsSNaN reports whether x is a signaling NaN.
func (x Decimal) IsSNaN() bool {
	return x.form == snan
}

// IsSpecial reports whether x is an infinity or a NaN.
func (x Decimal) IsSpecial() bool {
	return x.form != finite
}

// IsCanonical reports whether x is canonical. All Decimal values are.
func (x Decimal) IsCanonical() bool {
	return true
}

// IsInt reports whether x is a finite integer.
func (x Decimal) IsInt() bool {
	if x.form != finite {
		return false
	}
	if x.exp >= 0 || x.IsZero() {
		return true
	}
	return trailingZeros(x.coef) >= -x.exp
}

// Int64 returns the integer value of x and true if x is an integer that fits
// in an int64. Otherwise it returns 0, false.
func (x Decimal) Int64() (int64, bool) {
	if !x.IsInt() {
		return 0, false
	}
	if x.IsZero() {
		return 0, true
	}
	// |x| < 10**19 is required for an int64
	if x.Adjusted() >= digitsPerWord {
		return 0, false
	}
	var c *big.Int
	if x.exp >= 0 {
		c = shl10(x.coef, x.exp)
	} else {
		c = shr10(x.coef, -x.exp)
	}
	if x.neg {
		c.Neg(c)
	}
	if !c.IsInt64() {
		return 0, false
	}
	return c.Int64(), true
}

// IsNormal reports whether x is a finite non-zero value whose adjusted
// exponent is at least c.Emin.
func (c *Context) IsNormal(x Decimal) bool {
	if x.form != finite || x.IsZero() {
		return false
	}
	return x.Adjusted() >= c.Emin
}

// IsSubnormal reports whether x is a finite non-zero value whose adjusted
// exponent is less than c.Emin.
func (c *Context) IsSubnormal(x Decimal) bool {
	if x.form != finite || x.IsZero() {
		return false
	}
	return x.Adjusted() < c.Emin
}

// Class returns the class of x: one of "sNaN", "NaN", "-Infinity",
// "-Normal", "-Subnormal", "-Zero", "+Zero", "+Subnormal", "+Normal" or
// "+Infinity".
func (c *Context) Class(x Decimal) string {
	switch x.form {
	case snan:
		return "sNaN"
	case qnan:
		return "NaN"
	}
	sign := "+"
	if x.neg {
		sign = "-"
	}
	switch {
	case x.form == inf:
		return sign + "Infinity"
	case x.IsZero():
		return sign + "Zero"
	case c.IsSubnormal(x):
		return sign + "Subnormal"
	}
	return sign + "Normal"
}

// CopyAbs returns x with its sign cleared. No rounding and no flags.
func CopyAbs(x Decimal) Decimal {
	x.neg = false
	return x
}

// CopyNegate returns x with its sign inverted. No rounding and no flags.
func CopyNegate(x Decimal) Decimal {
	x.neg = !x.neg
	return x
}

// CopySign returns x with the sign of y. No rounding and no flags.
func CopySign(x, y Decimal) Decimal {
	x.neg = y.neg
	return x
}

// SameQuantum reports whether x and y have the same exponent, or are both
// infinite, or are both NaNs.
func SameQuantum(x, y Decimal) bool {
	switch {
	case x.IsNaN() || y.IsNaN():
		return x.IsNaN() && y.IsNaN()
	case x.form == inf || y.form == inf:
		return x.form == y.form
	}
	return x.exp == y.exp
}

func (x Decimal) validate() {
	switch x.form {
	case finite:
		if x.coef != nil && x.coef.Sign() < 0 {
			panic(fmt.Sprintf("negative coefficient %s", x.coef))
		}
		if d := numDigits(x.coeff()); x.Digits() != d {
			panic(fmt.Sprintf("digit count %d != real digit count %d for %s", x.dig, d, x.Abstract()))
		}
	case inf:
		if x.coef != nil {
			panic("infinity with a coefficient")
		}
	case qnan, snan:
		if x.coef != nil && x.coef.Sign() <= 0 {
			panic(fmt.Sprintf("invalid NaN payload %s", x.coef))
		}
	default:
		panic(fmt.Sprintf("invalid form %d", x.form))
	}
}
