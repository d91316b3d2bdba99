// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements string-to-Decimal conversion functions.

package decnum

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parse parses s, which must be a decimal literal, and returns the
// corresponding Decimal. The value is exact: no rounding is performed.
//
// The literal grammar is:
//
//	literal   = [sign] ( number | special ) .
//	sign      = "+" | "-" .
//	number    = digits [ "." [ digits ] ] [ exponent ] | "." digits [ exponent ] .
//	exponent  = ( "e" | "E" ) [ sign ] digits .
//	special   = "Inf" | "Infinity" | [ "s" ] "NaN" [ digits ] .
//
// Special tokens are case-insensitive. The optional digits following a NaN
// are its payload. The entire string, not just a prefix, must be valid.
//
// The returned error wraps ErrSyntax or ErrRange.
func Parse(s string) (Decimal, error) {
	r := strings.NewReader(s)
	d, err := scan(r)
	if err == nil && r.Len() > 0 {
		err = errors.WithMessagef(ErrSyntax, "unexpected character %q", s[len(s)-r.Len()])
	}
	if err != nil {
		return Decimal{}, errors.Wrapf(err, "decnum: parsing %q", s)
	}
	return d, nil
}

// MustParse is like Parse but panics if s cannot be parsed. It simplifies
// safe initialization of global variables holding decimal constants.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewFromString parses s as Parse does and returns the result rounded to c.
// If s is not a valid literal, or if it is a NaN whose payload does not fit
// in c, NewFromString signals InvalidOperation and returns NaN.
func (c *Context) NewFromString(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		return c.invalid()
	}
	if d.IsNaN() {
		max := c.Precision
		if c.Clamp {
			max--
		}
		if d.coef != nil && d.dig > max {
			return c.invalid()
		}
		return d
	}
	return c.Round(d)
}

// NewFromFloat64 returns the Decimal with the shortest representation that
// rounds to f as a float64. NaNs and infinities are converted to the
// corresponding quiet NaN or infinity.
func NewFromFloat64(f float64) Decimal {
	switch {
	case math.IsNaN(f):
		return Decimal{form: qnan, neg: math.Signbit(f)}
	case math.IsInf(f, 0):
		return Inf(f < 0)
	}
	d, err := Parse(strconv.FormatFloat(f, 'e', -1, 64))
	if err != nil {
		panic(fmt.Sprintf("decnum: cannot convert float64 %v: %v", f, err))
	}
	return d
}

// Float64 returns the float64 value nearest to x. Signaling NaNs convert to
// a quiet float64 NaN.
func (x Decimal) Float64() float64 {
	switch x.form {
	case qnan, snan:
		return math.NaN()
	case inf:
		return math.Inf(signOf(x.neg))
	}
	f, err := strconv.ParseFloat(x.String(), 64)
	if err != nil {
		// out of range: f is ±Inf or ±0
		var ne *strconv.NumError
		if !errors.As(err, &ne) || ne.Err != strconv.ErrRange {
			panic(err)
		}
	}
	return f
}

// scan reads a decimal literal from r.
func scan(r io.ByteScanner) (d Decimal, err error) {
	if d.neg, err = scanSign(r); err != nil {
		if err == io.EOF {
			err = errNoDigits
		}
		return
	}

	ch, err := r.ReadByte()
	if err != nil {
		if err == io.EOF {
			err = errNoDigits
		}
		return
	}
	_ = r.UnreadByte()
	if ('0' <= ch && ch <= '9') || ch == '.' {
		var (
			coef *big.Int
			exp  int64
			e    int64
		)
		if coef, exp, err = scanCoefficient(r); err != nil {
			return
		}
		if e, err = scanExponent(r); err != nil {
			return
		}
		// exp <= 0 here
		if e < math.MinInt64-exp {
			return d, errors.WithMessage(ErrRange, "exponent")
		}
		exp += e
		if exp < -maxExp || exp > maxExp {
			return d, errors.WithMessage(ErrRange, "exponent")
		}
		return newDecimal(d.neg, coef, int(exp)), nil
	}
	return scanSpecial(r, d.neg)
}

// scanCoefficient reads digits with an optional decimal point and returns
// the coefficient along with the exponent implied by the position of the
// point.
func scanCoefficient(r io.ByteScanner) (coef *big.Int, exp int64, err error) {
	var (
		buf      []byte
		dot      = false
		frac     int64
		hasDigit = false
		ch       byte
	)
	for {
		if ch, err = r.ReadByte(); err != nil {
			if err == io.EOF {
				err = nil
			}
			break
		}
		if ch == '.' && !dot {
			dot = true
			continue
		}
		if ch < '0' || ch > '9' {
			_ = r.UnreadByte()
			break
		}
		hasDigit = true
		if dot {
			frac++
		}
		// skip leading zeros
		if len(buf) == 0 && ch == '0' {
			continue
		}
		buf = append(buf, ch)
	}
	if err != nil {
		return nil, 0, err
	}
	if !hasDigit {
		return nil, 0, errNoDigits
	}
	coef = new(big.Int)
	if len(buf) > 0 {
		if _, ok := coef.SetString(string(buf), 10); !ok {
			return nil, 0, errors.WithStack(ErrSyntax)
		}
	}
	return coef, -frac, nil
}

// scanSpecial reads one of the special value tokens Inf, Infinity, NaN and
// sNaN, the latter two being optionally followed by a payload.
func scanSpecial(r io.ByteScanner, neg bool) (Decimal, error) {
	var tok []byte
	for {
		ch, err := r.ReadByte()
		if err != nil {
			if err != io.EOF {
				return Decimal{}, err
			}
			break
		}
		if (ch < 'a' || ch > 'z') && (ch < 'A' || ch > 'Z') {
			_ = r.UnreadByte()
			break
		}
		tok = append(tok, ch)
	}
	var f form
	switch strings.ToLower(string(tok)) {
	case "inf", "infinity":
		return Inf(neg), nil
	case "nan":
		f = qnan
	case "snan":
		f = snan
	default:
		return Decimal{}, errors.WithMessagef(ErrSyntax, "unknown token %q", tok)
	}
	var payload []byte
	for {
		ch, err := r.ReadByte()
		if err != nil {
			if err != io.EOF {
				return Decimal{}, err
			}
			break
		}
		if ch < '0' || ch > '9' {
			_ = r.UnreadByte()
			break
		}
		if len(payload) == 0 && ch == '0' {
			continue
		}
		payload = append(payload, ch)
	}
	if len(payload) == 0 {
		return Decimal{form: f, neg: neg}, nil
	}
	p, ok := new(big.Int).SetString(string(payload), 10)
	if !ok {
		return Decimal{}, errors.WithStack(ErrSyntax)
	}
	return newNaN(f, neg, p), nil
}

var decimalZero Decimal

var _ fmt.Scanner = &decimalZero // *Decimal must implement fmt.Scanner

// Scan is a support routine for fmt.Scanner; it sets z to the value of
// the scanned number. It accepts the decimal literals accepted by Parse,
// special values included, for any verb.
func (z *Decimal) Scan(s fmt.ScanState, ch rune) error {
	s.SkipSpace()
	d, err := scan(byteReader{s})
	if err != nil {
		return err
	}
	*z = d
	return nil
}
