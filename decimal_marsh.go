// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Decimals.

package decnum

import (
	"encoding/binary"
	"math/big"

	"github.com/pkg/errors"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const decimalGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface.
//
// The encoding is a version byte, a byte holding the form and sign of x, the
// exponent as a varint (finite values only), and the big-endian bytes of the
// coefficient or payload.
func (x Decimal) GobEncode() ([]byte, error) {
	buf := make([]byte, 2, 2+binary.MaxVarintLen64+len(x.coeff().Bits())*8)
	buf[0] = decimalGobVersion
	b := byte(x.form&3) << 1
	if x.neg {
		b |= 1
	}
	buf[1] = b
	if x.form == finite {
		buf = binary.AppendVarint(buf, int64(x.exp))
	}
	return append(buf, x.coeff().Bytes()...), nil
}

// GobDecode implements the gob.GobDecoder interface. The result is exact.
func (z *Decimal) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Decimal{}
		return nil
	}
	if buf[0] != decimalGobVersion {
		return errors.Errorf("Decimal.GobDecode: encoding version %d not supported", buf[0])
	}
	if len(buf) < 2 {
		return errors.New("Decimal.GobDecode: buffer too small")
	}
	f := form((buf[1] >> 1) & 3)
	neg := buf[1]&1 != 0
	buf = buf[2:]
	exp := int64(0)
	if f == finite {
		var n int
		exp, n = binary.Varint(buf)
		if n <= 0 || exp < -maxExp || exp > maxExp {
			return errors.New("Decimal.GobDecode: invalid exponent")
		}
		buf = buf[n:]
	}
	coef := new(big.Int).SetBytes(buf)
	switch f {
	case finite:
		*z = newDecimal(neg, coef, int(exp))
	case inf:
		*z = Inf(neg)
	default:
		*z = newNaN(f, neg, coef)
	}
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface. The value is
// marshaled in scientific notation, as returned by String.
func (x Decimal) MarshalText() (text []byte, err error) {
	return x.appendSci(nil, false, 'E'), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The
// result is exact.
func (z *Decimal) UnmarshalText(text []byte) error {
	d, err := Parse(string(text))
	if err != nil {
		return errors.Wrapf(err, "decnum: cannot unmarshal %q into a *decnum.Decimal", text)
	}
	*z = d
	return nil
}
