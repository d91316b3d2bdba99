// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interchange

import (
	"math/big"

	"github.com/db47h/decnum"
)

// A format describes the binary integer decimal (BID) layout of an IEEE 754
// decimal interchange format of a given width.
//
// The most significant bit is the sign. For finite values, if the next two
// bits are not 11, they start an ebits wide biased exponent followed by the
// coefficient. Otherwise, the exponent follows the 11 prefix and the
// coefficient is 100 followed by the remaining bits. 11110 denotes an
// infinity and 11111 a NaN, signaling if the next bit is set, with its
// payload in the trailing significand field.
type format struct {
	bits  int // storage width k
	ebits int // exponent field width
	bias  int
	prec  int
}

var (
	format32  = format{bits: 32, ebits: 8, bias: 101, prec: 7}
	format64  = format{bits: 64, ebits: 10, bias: 398, prec: 16}
	format128 = format{bits: 128, ebits: 14, bias: 6176, prec: 34}
)

const (
	infBits  = 0x1e // 11110
	nanBits  = 0x1f // 11111
	qnanBits = 0x3e // 111110
	snanBits = 0x3f // 111111
)

// coefBits returns the width of the coefficient field when the combination
// field does not start with 11.
func (f *format) coefBits() int { return f.bits - 1 - f.ebits }

// trailingBits returns the width of the trailing significand field.
func (f *format) trailingBits() int { return f.bits - 4 - f.ebits }

// context returns the context matching f, with the rounding mode of c.
func (f *format) context(c *decnum.Context) decnum.Context {
	w, err := decnum.IEEEContext(f.bits)
	if err != nil {
		panic(err)
	}
	w.Rounding = c.Rounding
	return w
}

// encode rounds x to f and stores its big-endian encoding in dst. Conditions
// signaled by rounding are added to c.Flags.
func (f *format) encode(dst []byte, x decnum.Decimal, c *decnum.Context) {
	w := f.context(c)
	r := w.Round(x)
	c.Flags |= w.Flags

	v := new(big.Int)
	switch {
	case r.IsInf():
		v.Lsh(big.NewInt(infBits), uint(f.bits-6))
	case r.IsNaN():
		top := int64(qnanBits)
		if r.IsSNaN() {
			top = snanBits
		}
		p, _ := r.Payload()
		v.Lsh(big.NewInt(top), uint(f.bits-7))
		v.Or(v, p)
	default:
		coef := r.Coefficient()
		e := big.NewInt(int64(r.Exponent() + f.bias))
		if coef.BitLen() <= f.coefBits() {
			v.Lsh(e, uint(f.coefBits()))
			v.Or(v, coef)
		} else {
			n := uint(f.bits - 3 - f.ebits)
			v.Lsh(big.NewInt(3), uint(f.ebits))
			v.Or(v, e)
			v.Lsh(v, n)
			v.Or(v, field(coef, 0, n))
		}
	}
	if r.Signbit() {
		v.SetBit(v, f.bits-1, 1)
	}
	v.FillBytes(dst)
}

// decode returns the value encoded in the big-endian src. Non-canonical
// coefficients and payloads decode as zero.
func (f *format) decode(src []byte) decnum.Decimal {
	v := new(big.Int).SetBytes(src)
	neg := v.Bit(f.bits-1) != 0
	comb := field(v, uint(f.bits-6), 5).Int64()

	var r decnum.Decimal
	switch {
	case comb == infBits:
		return decnum.Inf(neg)
	case comb == nanBits:
		p := field(v, 0, uint(f.trailingBits()))
		if p.Cmp(pow10(f.prec-1)) >= 0 {
			p.SetInt64(0)
		}
		if v.Bit(f.bits-7) != 0 {
			return decnum.SNaN(neg, p)
		}
		return decnum.NaN(neg, p)
	case comb>>3 == 3:
		n := uint(f.bits - 3 - f.ebits)
		e := field(v, n, uint(f.ebits)).Int64()
		coef := field(v, 0, n)
		coef.SetBit(coef, f.coefBits(), 1)
		r = f.finite(coef, e)
	default:
		n := uint(f.coefBits())
		r = f.finite(field(v, 0, n), field(v, n, uint(f.ebits)).Int64())
	}
	if neg {
		r = decnum.CopyNegate(r)
	}
	return r
}

// finite returns coef×10**(e-bias), or zero if coef has more than prec
// digits.
func (f *format) finite(coef *big.Int, e int64) decnum.Decimal {
	if coef.Cmp(pow10(f.prec)) >= 0 {
		coef.SetInt64(0)
	}
	return decnum.NewFromBigInt(coef, int(e)-f.bias)
}

// field returns the n bits of v starting at bit shift.
func field(v *big.Int, shift, n uint) *big.Int {
	mask := new(big.Int).Lsh(big.NewInt(1), n)
	mask.Sub(mask, big.NewInt(1))
	r := new(big.Int).Rsh(v, shift)
	return r.And(r, mask)
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
