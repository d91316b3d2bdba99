// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Decimal-to-string conversion functions.

package decnum

import (
	"fmt"
	"strconv"
)

var _ fmt.Formatter = &decimalZero // *Decimal must implement fmt.Formatter

// String returns x in scientific notation, as specified by the to-scientific-
// string operation of the General Decimal Arithmetic specification: no
// exponent if x's exponent is <= 0 and its adjusted exponent is >= -6,
// otherwise one digit before the decimal point and an explicit exponent.
// For instance New(123, -5) is "0.00123" and New(123, -10) is "1.23E-8".
//
// Infinities are "Infinity" and NaNs "NaN" or "sNaN", followed by their
// payload if non-zero. A negative sign is prefixed with '-'.
func (x Decimal) String() string {
	return string(x.appendSci(nil, false, 'E'))
}

// EngString returns x in engineering notation: like String, but with an
// exponent that is a multiple of three.
func (x Decimal) EngString() string {
	return string(x.appendSci(nil, true, 'E'))
}

// Abstract returns the abstract representation of x: [sign,coefficient,exponent]
// for finite values, [sign,inf] for infinities, [sign,qNaN] or [sign,sNaN]
// for NaNs, followed by ",payload" if the payload is non-zero. sign is 0 or 1.
func (x Decimal) Abstract() string {
	buf := make([]byte, 0, 16)
	buf = append(buf, '[')
	if x.neg {
		buf = append(buf, '1')
	} else {
		buf = append(buf, '0')
	}
	buf = append(buf, ',')
	switch x.form {
	case inf:
		buf = append(buf, "inf"...)
	case qnan, snan:
		if x.form == qnan {
			buf = append(buf, "qNaN"...)
		} else {
			buf = append(buf, "sNaN"...)
		}
		if x.coef != nil {
			buf = append(buf, ',')
			buf = x.coef.Append(buf, 10)
		}
	default:
		buf = x.coeff().Append(buf, 10)
		buf = append(buf, ',')
		buf = strconv.AppendInt(buf, int64(x.exp), 10)
	}
	return string(append(buf, ']'))
}

// appendSpecial appends the representation of a non-finite x to buf.
func (x Decimal) appendSpecial(buf []byte) []byte {
	switch x.form {
	case inf:
		return append(buf, "Infinity"...)
	case snan:
		buf = append(buf, 's')
	}
	buf = append(buf, "NaN"...)
	if x.coef != nil {
		buf = x.coef.Append(buf, 10)
	}
	return buf
}

func (x Decimal) appendSci(buf []byte, eng bool, e byte) []byte {
	if x.neg {
		buf = append(buf, '-')
	}
	if x.form != finite {
		return x.appendSpecial(buf)
	}
	digits := x.coeff().Append(nil, 10)
	// number of digits of the coefficient left of the decimal point
	left := x.exp + len(digits)
	var dot int
	switch {
	case x.exp <= 0 && left > -6:
		dot = left
	case !eng:
		dot = 1
	case x.IsZero():
		dot = floorMod(left+1, 3) - 1
	default:
		dot = floorMod(left-1, 3) + 1
	}
	buf = appendDigits(buf, digits, dot)
	if left != dot {
		buf = appendExp(buf, e, left-dot)
	}
	return buf
}

// appendDigits appends digits to buf with a decimal point inserted after
// dot digits, padding with zeros as needed.
func appendDigits(buf []byte, digits []byte, dot int) []byte {
	switch {
	case dot <= 0:
		buf = append(buf, '0', '.')
		buf = appendZeros(buf, -dot)
		buf = append(buf, digits...)
	case dot >= len(digits):
		buf = append(buf, digits...)
		buf = appendZeros(buf, dot-len(digits))
	default:
		buf = append(buf, digits[:dot]...)
		buf = append(buf, '.')
		buf = append(buf, digits[dot:]...)
	}
	return buf
}

func appendZeros(buf []byte, n int) []byte {
	for ; n > 0; n-- {
		buf = append(buf, '0')
	}
	return buf
}

func appendExp(buf []byte, e byte, exp int) []byte {
	buf = append(buf, e)
	if exp >= 0 {
		buf = append(buf, '+')
	}
	return strconv.AppendInt(buf, int64(exp), 10)
}

// roundSig returns the finite x rounded HalfEven or padded to exactly n > 0
// significant digits.
func roundSig(x Decimal, n int) Decimal {
	r, _ := rescale(x, x.exp+x.Digits()-n, HalfEven)
	if r.Digits() > n {
		// carry, as in 9.99 -> 10.0
		r = newDecimal(r.neg, shr10(r.coef, 1), r.exp+1)
	}
	return r
}

// Text converts x to a string according to the given format and precision
// prec. The format is one of:
//
//	'e'	-d.dddde±d, with prec digits after the point
//	'E'	-d.ddddE±d, with prec digits after the point
//	'f'	-ddddd.dddd, no exponent, with prec digits after the point
//	'g'	like String, with prec significant digits and a lowercase exponent
//	'G'	like String, with prec significant digits
//	's'	String; prec is ignored
//
// A negative prec means as many digits as needed to represent x exactly.
// Rounding, if any, is HalfEven. Infinities and NaNs are formatted as by
// String.
func (x Decimal) Text(format byte, prec int) string {
	return string(x.Append(make([]byte, 0, 16), format, prec))
}

// Append appends to buf the string form of x, as generated by x.Text, and
// returns the extended buffer.
func (x Decimal) Append(buf []byte, format byte, prec int) []byte {
	if x.form != finite {
		if x.neg {
			buf = append(buf, '-')
		}
		return x.appendSpecial(buf)
	}
	switch format {
	case 'e', 'E':
		if x.neg {
			buf = append(buf, '-')
		}
		if x.IsZero() {
			// zeros keep their quantum: 0E-2 is 0.00e+0
			if prec < 0 {
				prec = 0
			}
			buf = appendDigits(buf, appendZeros(nil, prec+1), 1)
			return appendExp(buf, format, x.exp+prec)
		}
		if prec >= 0 {
			x = roundSig(x, prec+1)
		}
		digits := x.coeff().Append(nil, 10)
		buf = appendDigits(buf, digits, 1)
		return appendExp(buf, format, x.Adjusted())
	case 'f':
		if prec >= 0 && x.exp != -prec {
			x, _ = rescale(x, -prec, HalfEven)
		} else if x.IsZero() && x.exp > 0 {
			x.exp = 0
		}
		if x.neg {
			buf = append(buf, '-')
		}
		digits := x.coeff().Append(nil, 10)
		return appendDigits(buf, digits, x.exp+len(digits))
	case 'g', 'G':
		if prec == 0 {
			prec = 1
		}
		if prec > 0 && x.Digits() > prec {
			x = roundSig(x, prec)
		}
		e := byte('E')
		if format == 'g' {
			e = 'e'
		}
		return x.appendSci(buf, false, e)
	case 's':
		return x.appendSci(buf, false, 'E')
	}
	return append(buf, '%', format)
}

// Format implements fmt.Formatter. It accepts the formats 'e', 'E', 'f', 'F',
// 'g', 'G' and 's' as described for x.Text, with 'v' being the same as 's'.
// The precision is used if specified, otherwise all digits are printed.
// Format also supports width and the '+', ' ', '-' and '0' flags.
func (x Decimal) Format(s fmt.State, format rune) {
	prec, hasPrec := s.Precision()
	if !hasPrec {
		prec = -1
	}

	switch format {
	case 'e', 'E', 'f', 'g', 'G', 's':
		// nothing to do
	case 'F':
		format = 'f'
	case 'v':
		format = 's'
	default:
		fmt.Fprintf(s, "%%!%c(decnum.Decimal=%s)", format, x.String())
		return
	}

	buf := x.Append(make([]byte, 0, 16), byte(format), prec)

	var sign string
	switch {
	case buf[0] == '-':
		sign = "-"
		buf = buf[1:]
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	var padding int
	if width, hasWidth := s.Width(); hasWidth && width > len(sign)+len(buf) {
		padding = width - len(sign) - len(buf)
	}

	switch {
	case s.Flag('0') && x.IsFinite():
		// 0-padding on left
		writeMultiple(s, sign, 1)
		writeMultiple(s, "0", padding)
		s.Write(buf)
	case s.Flag('-'):
		// padding on right
		writeMultiple(s, sign, 1)
		s.Write(buf)
		writeMultiple(s, " ", padding)
	default:
		// padding on left
		writeMultiple(s, " ", padding)
		writeMultiple(s, sign, 1)
		s.Write(buf)
	}
}

// write count copies of text to s
func writeMultiple(s fmt.State, text string, count int) {
	if len(text) > 0 {
		b := []byte(text)
		for ; count > 0; count-- {
			s.Write(b)
		}
	}
}
