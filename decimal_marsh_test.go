// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decnum

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var marshalTests = []string{
	"0",
	"-0",
	"0E-7",
	"-0E+12",
	"1",
	"-1.50",
	"123456789012345678901234567890.123456789",
	"1.23E-8",
	"9.999999999E+999999",
	"1E-1000000",
	"Infinity",
	"-Infinity",
	"NaN",
	"-NaN42",
	"sNaN",
	"-sNaN123456789012345678901234567890",
}

func TestDecimalGobEncoding(t *testing.T) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	dec := gob.NewDecoder(&buf)
	for _, s := range marshalTests {
		x := MustParse(s)
		buf.Reset()
		require.NoError(t, enc.Encode(x), s)
		var r Decimal
		require.NoError(t, dec.Decode(&r), s)
		assert.Equal(t, x.Abstract(), r.Abstract(), s)
		r.validate()
	}
}

func TestDecimalGobEncodingStruct(t *testing.T) {
	type T struct {
		A, B Decimal
		C    []Decimal
	}
	in := T{A: MustParse("-2.5"), C: []Decimal{Inf(true), New(7, -3), {}}}
	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(in))
	var out T
	require.NoError(t, gob.NewDecoder(&buf).Decode(&out))
	assert.Equal(t, "-2.5", out.A.String())
	assert.Equal(t, "0", out.B.String())
	require.Len(t, out.C, 3)
	assert.Equal(t, "-Infinity", out.C[0].String())
	assert.Equal(t, "0.007", out.C[1].String())
	assert.Equal(t, "0", out.C[2].String())
}

func TestDecimalGobDecodeErrors(t *testing.T) {
	var z Decimal
	assert.NoError(t, z.GobDecode(nil))
	assert.True(t, z.IsZero())

	err := z.GobDecode([]byte{2, 0})
	assert.EqualError(t, err, "Decimal.GobDecode: encoding version 2 not supported")
	assert.Error(t, z.GobDecode([]byte{decimalGobVersion}))
	// finite value with a truncated exponent
	assert.Error(t, z.GobDecode([]byte{decimalGobVersion, 0, 0x80}))
}

func TestDecimalTextMarshaling(t *testing.T) {
	for _, s := range marshalTests {
		x := MustParse(s)
		text, err := x.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, x.String(), string(text))
		var r Decimal
		require.NoError(t, r.UnmarshalText(text))
		assert.Equal(t, x.Abstract(), r.Abstract(), s)
	}

	var r Decimal
	err := r.UnmarshalText([]byte("1.2.3"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `decnum: cannot unmarshal "1.2.3" into a *decnum.Decimal`)
}

func TestDecimalJSON(t *testing.T) {
	type T struct {
		Price Decimal `json:"price"`
	}
	b, err := json.Marshal(T{Price: New(123, -10)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"price":"1.23E-8"}`, string(b))

	var v T
	require.NoError(t, json.Unmarshal([]byte(`{"price":"-45.60"}`), &v))
	assert.Equal(t, "[1,4560,-2]", v.Price.Abstract())
	assert.Error(t, json.Unmarshal([]byte(`{"price":"forty"}`), &v))
}
