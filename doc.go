// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package decnum implements arbitrary-precision decimal floating-point
arithmetic following the General Decimal Arithmetic specification, which is
also the decimal arithmetic of IEEE 754-2008.

A Decimal is an immutable value: a sign, a coefficient of any number of
decimal digits and a decimal exponent, or one of the special values ±Infinity,
quiet NaN and signaling NaN (NaNs carry an optional integer payload). Unlike
binary floating-point, a Decimal keeps trailing zeros: 1.0 and 1.00 are equal
but distinct values, with exponents -1 and -2.

The zero value for a Decimal corresponds to 0. Thus, new values can be declared
in the usual ways and denote 0 without further initialization:

	var x decnum.Decimal // x is 0

Other values are created with New, NewFromBigInt, Parse or MustParse:

	x := decnum.New(123, -2)         // x is 1.23
	y := decnum.MustParse("-4.5E+3") // y is -4500

Arithmetic operations are methods of a Context, which holds the precision,
rounding mode and exponent range of results, and records exceptional
conditions in a flag register:

	ctx := decnum.DefaultContext()
	z := ctx.Quo(decnum.New(1, 0), decnum.New(3, 0)) // 0.3333333333333333333333333333
	if ctx.Flags&decnum.Inexact != 0 {
		// z was rounded
	}

Operations never panic and never return errors. Exceptional results are
expressed as values (NaN for invalid operations, ±Infinity for overflows and
divisions by zero) together with conditions accumulated in Context.Flags,
which are only cleared by the caller. Context.Err reports the conditions that
are set in Context.Traps as an error.

Contexts are plain values: there is no global default context. A Context must
not be shared between goroutines, but Decimal values can.

Notational convention: operands are named x, y and u, and the receiver of
operations is the context c.

String conversions use the scientific notation of that standard (String),
engineering notation (EngString), or the abstract representation used in
tests (Abstract). Decimal implements fmt.Formatter, fmt.Scanner,
encoding.TextMarshaler and encoding.TextUnmarshaler, and gob encoding.
*/
package decnum
