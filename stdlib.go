// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file holds the basic types and constants shared by Decimal and Context,
// and scanning helpers modeled after math/big.

package decnum

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Exponent and precision limits.
const (
	MaxEmax      = 999999999  // largest supported Emax
	MinEmin      = -999999999 // smallest supported Emin
	MaxPrecision = 999999999  // largest supported precision

	// exponents of finite operands are within ±maxExp, which is above
	// MaxEmax+MaxPrecision and below math.MaxInt32.
	maxExp = 2100000000
)

// Internal representation: the coefficient of a finite Decimal x is stored
// in x.coef, nil meaning 0. For NaNs, x.coef holds the payload.
//
// x                 form      neg      coef         exp
// ----------------------------------------------------------
// ±0                finite    sign     nil or 0     exponent
// 0 < |x| < +Inf    finite    sign     coefficient  exponent
// ±Inf              inf       sign     -            -
// NaN               qnan      sign     payload      -
// sNaN              snan      sign     payload      -

// A form value describes the internal representation.
type form byte

// The form value order is relevant - do not change!
const (
	finite form = iota
	inf
	qnan
	snan
)

// RoundingMode determines how a Decimal value is rounded to the precision of
// a Context.
type RoundingMode byte

// These constants define supported rounding modes.
const (
	HalfEven  RoundingMode = iota // == IEEE 754-2008 roundTiesToEven
	HalfUp                        // == IEEE 754-2008 roundTiesToAway
	HalfDown                      // no IEEE 754-2008 equivalent
	Down                          // == IEEE 754-2008 roundTowardZero
	Up                            // no IEEE 754-2008 equivalent
	Ceiling                       // == IEEE 754-2008 roundTowardPositive
	Floor                         // == IEEE 754-2008 roundTowardNegative
	Round05Up                     // round away from zero if the last digit would be 0 or 5
)

var roundingModeNames = [...]string{
	HalfEven:  "HalfEven",
	HalfUp:    "HalfUp",
	HalfDown:  "HalfDown",
	Down:      "Down",
	Up:        "Up",
	Ceiling:   "Ceiling",
	Floor:     "Floor",
	Round05Up: "Round05Up",
}

func (m RoundingMode) String() string {
	if int(m) < len(roundingModeNames) {
		return roundingModeNames[m]
	}
	return "RoundingMode(" + strconv.Itoa(int(m)) + ")"
}

// byteReader is a local wrapper around fmt.ScanState;
// it implements the ByteReader interface.
type byteReader struct {
	fmt.ScanState
}

func (r byteReader) ReadByte() (byte, error) {
	ch, size, err := r.ReadRune()
	if size != 1 && err == nil {
		err = fmt.Errorf("invalid rune %#U", ch)
	}
	return byte(ch), err
}

func (r byteReader) UnreadByte() error {
	return r.UnreadRune()
}

// scan errors
var (
	// ErrSyntax indicates that a value does not have the right syntax for a
	// decimal literal.
	ErrSyntax = errors.New("invalid syntax")
	// ErrRange indicates that a value is out of the supported range.
	ErrRange = errors.New("value out of range")

	errNoDigits = errors.WithMessage(ErrSyntax, "number has no digits")
)

func scanSign(r io.ByteScanner) (neg bool, err error) {
	var ch byte
	if ch, err = r.ReadByte(); err != nil {
		return false, err
	}
	switch ch {
	case '-':
		neg = true
	case '+':
		// nothing to do
	default:
		_ = r.UnreadByte()
	}
	return
}

// scanExponent scans an optional exponent of the form [eE][+-]digits.
func scanExponent(r io.ByteScanner) (exp int64, err error) {
	// one char look-ahead
	ch, err := r.ReadByte()
	if err != nil {
		if err == io.EOF {
			err = nil
		}
		return 0, err
	}

	// exponent char
	switch ch {
	case 'e', 'E':
		// ok
	default:
		_ = r.UnreadByte() // ch does not belong to exponent anymore
		return 0, nil
	}

	// sign
	var digits []byte
	ch, err = r.ReadByte()
	if err == nil && (ch == '+' || ch == '-') {
		if ch == '-' {
			digits = append(digits, '-')
		}
		ch, err = r.ReadByte()
	}

	// exponent value
	hasDigits := false
	for err == nil {
		if '0' <= ch && ch <= '9' {
			digits = append(digits, ch)
			hasDigits = true
		} else {
			_ = r.UnreadByte() // ch does not belong to number anymore
			break
		}
		ch, err = r.ReadByte()
	}

	if err == io.EOF {
		err = nil
	}
	if err == nil && !hasDigits {
		err = errNoDigits
	}
	if err == nil {
		exp, err = strconv.ParseInt(string(digits), 10, 64)
		if err != nil {
			err = errors.WithMessage(ErrRange, "exponent")
		}
	}
	return
}

// floorMod returns x mod y in [0, y). y must be positive.
func floorMod(x, y int) int {
	m := x % y
	if m < 0 {
		m += y
	}
	return m
}
