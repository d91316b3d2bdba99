// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interchange implements the IEEE 754-2008 decimal32, decimal64 and
// decimal128 interchange formats, using the binary integer decimal (BID)
// encoding of the coefficient.
//
// Encoding rounds a decnum.Decimal to the precision and exponent range of the
// format (7, 16 and 34 digits respectively), folding down exponents above
// the format's maximum as IEEEContext does. The conditions signaled by the
// rounding are added to the flags of the caller's context. Decoding is
// exact.
//
// Values are stored in big-endian byte order.
package interchange

import (
	"encoding/binary"

	"github.com/db47h/decnum"
)

// Decimal32 is a decimal32 value.
type Decimal32 [4]byte

// Decimal64 is a decimal64 value.
type Decimal64 [8]byte

// Decimal128 is a decimal128 value.
type Decimal128 [16]byte

// Encode32 returns x rounded to the decimal32 format, using c.Rounding.
func Encode32(x decnum.Decimal, c *decnum.Context) (d Decimal32) {
	format32.encode(d[:], x, c)
	return d
}

// Decode returns the value of d.
func (d Decimal32) Decode() decnum.Decimal {
	return format32.decode(d[:])
}

// Bits returns the bit pattern of d.
func (d Decimal32) Bits() uint32 {
	return binary.BigEndian.Uint32(d[:])
}

// FromBits32 returns the Decimal32 with bit pattern b.
func FromBits32(b uint32) (d Decimal32) {
	binary.BigEndian.PutUint32(d[:], b)
	return d
}

// String returns the value of d in scientific notation.
func (d Decimal32) String() string { return d.Decode().String() }

// Encode64 returns x rounded to the decimal64 format, using c.Rounding.
func Encode64(x decnum.Decimal, c *decnum.Context) (d Decimal64) {
	format64.encode(d[:], x, c)
	return d
}

// Decode returns the value of d.
func (d Decimal64) Decode() decnum.Decimal {
	return format64.decode(d[:])
}

// Bits returns the bit pattern of d.
func (d Decimal64) Bits() uint64 {
	return binary.BigEndian.Uint64(d[:])
}

// FromBits64 returns the Decimal64 with bit pattern b.
func FromBits64(b uint64) (d Decimal64) {
	binary.BigEndian.PutUint64(d[:], b)
	return d
}

// String returns the value of d in scientific notation.
func (d Decimal64) String() string { return d.Decode().String() }

// Encode128 returns x rounded to the decimal128 format, using c.Rounding.
func Encode128(x decnum.Decimal, c *decnum.Context) (d Decimal128) {
	format128.encode(d[:], x, c)
	return d
}

// Decode returns the value of d.
func (d Decimal128) Decode() decnum.Decimal {
	return format128.decode(d[:])
}

// Bits returns the high and low 64 bits of d.
func (d Decimal128) Bits() (hi, lo uint64) {
	return binary.BigEndian.Uint64(d[:8]), binary.BigEndian.Uint64(d[8:])
}

// FromBits128 returns the Decimal128 whose high and low 64 bits are hi and
// lo.
func FromBits128(hi, lo uint64) (d Decimal128) {
	binary.BigEndian.PutUint64(d[:8], hi)
	binary.BigEndian.PutUint64(d[8:], lo)
	return d
}

// String returns the value of d in scientific notation.
func (d Decimal128) String() string { return d.Decode().String() }
