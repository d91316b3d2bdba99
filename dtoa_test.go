// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decnum

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecimalString(t *testing.T) {
	for _, d := range []struct {
		coef     int64
		exp      int
		sci, eng string
	}{
		{123, 0, "123", "123"},
		{-123, 0, "-123", "-123"},
		{123, 1, "1.23E+3", "1.23E+3"},
		{123, 3, "1.23E+5", "123E+3"},
		{123, -1, "12.3", "12.3"},
		{123, -5, "0.00123", "0.00123"},
		{123, -10, "1.23E-8", "12.3E-9"},
		{-123, -12, "-1.23E-10", "-123E-12"},
		{0, 0, "0", "0"},
		{0, -2, "0.00", "0.00"},
		{0, 2, "0E+2", "0.0E+3"},
		{0, 1, "0E+1", "0.00E+3"},
		{0, 3, "0E+3", "0E+3"},
		{0, 4, "0E+4", "0.00E+6"},
		{0, -7, "0E-7", "0.0E-6"},
		{0, -8, "0E-8", "0.00E-6"},
		{5, -6, "0.000005", "0.000005"},
		{50, -7, "0.0000050", "0.0000050"},
		{5, -7, "5E-7", "500E-9"},
		{7, 1, "7E+1", "70"},
		{1, 6, "1E+6", "1E+6"},
	} {
		x := New(d.coef, d.exp)
		assert.Equal(t, d.sci, x.String(), "String(%s)", x.Abstract())
		assert.Equal(t, d.eng, x.EngString(), "EngString(%s)", x.Abstract())
		// the scientific form parses back to the same value, the engineering
		// form to an equal one
		assert.Equal(t, x.Abstract(), MustParse(x.String()).Abstract())
		assert.True(t, Equal(x, MustParse(x.EngString())), x.EngString())
	}
	assert.Equal(t, "-0", MustParse("-0").String())
	assert.Equal(t, "-0E+3", MustParse("-0E3").String())
}

func TestSpecialString(t *testing.T) {
	for _, d := range []struct {
		s, want, abstract string
	}{
		{"Inf", "Infinity", "[0,inf]"},
		{"-Infinity", "-Infinity", "[1,inf]"},
		{"NaN", "NaN", "[0,qNaN]"},
		{"-NaN", "-NaN", "[1,qNaN]"},
		{"NaN123", "NaN123", "[0,qNaN,123]"},
		{"sNaN", "sNaN", "[0,sNaN]"},
		{"-sNaN45", "-sNaN45", "[1,sNaN,45]"},
	} {
		x := MustParse(d.s)
		assert.Equal(t, d.want, x.String())
		assert.Equal(t, d.want, x.EngString())
		assert.Equal(t, d.abstract, x.Abstract())
	}
}

func TestDecimalText(t *testing.T) {
	for _, d := range []struct {
		x      string
		format byte
		prec   int
		want   string
	}{
		{"1234.5678", 'e', 2, "1.23e+3"},
		{"1234.5678", 'E', -1, "1.2345678E+3"},
		{"1234.5678", 'e', 0, "1e+3"},
		{"1234.5678", 'f', 2, "1234.57"},
		{"1234.5678", 'f', 0, "1235"},
		{"1234.5678", 'f', 6, "1234.567800"},
		{"1234.5678", 'f', -1, "1234.5678"},
		{"1234.5678", 'g', 3, "1.23e+3"},
		{"1234.5678", 'G', -1, "1234.5678"},
		{"1234.5678", 's', 2, "1234.5678"},
		{"0.00123", 'e', -1, "1.23e-3"},
		{"9.99", 'e', 1, "1.0e+1"},
		{"9.96", 'g', 2, "10"},
		{"123456", 'g', 2, "1.2e+5"},
		{"-0.5", 'f', 0, "-0"},
		{"2.5", 'f', 0, "2"},
		{"0E-2", 'e', 2, "0.00e+0"},
		{"0", 'e', 2, "0.00e+2"},
		{"0E-2", 'e', -1, "0e-2"},
		{"-0E+5", 'f', -1, "-0"},
		{"-0E+5", 'f', 2, "-0.00"},
		{"-0E+5", 'g', -1, "-0e+5"},
		{"0.000", 'g', 3, "0.000"},
		{"12E+3", 'f', -1, "12000"},
		{"-Inf", 'f', 2, "-Infinity"},
		{"NaN7", 'e', 2, "NaN7"},
		{"1", 'x', 2, "%x"},
	} {
		x := MustParse(d.x)
		assert.Equal(t, d.want, x.Text(d.format, d.prec), "%s.Text(%c, %d)", d.x, d.format, d.prec)
	}
}

func TestDecimalFormat(t *testing.T) {
	x := MustParse("1234.5678")
	for _, d := range []struct {
		format string
		x      Decimal
		want   string
	}{
		{"%v", x, "1234.5678"},
		{"%s", x, "1234.5678"},
		{"%10.2f", x, "   1234.57"},
		{"%-10.2f|", x, "1234.57   |"},
		{"%010.2f", x, "0001234.57"},
		{"%+.1f", x, "+1234.6"},
		{"%.1F", x, "1234.6"},
		{"% g", x, " 1234.5678"},
		{"%.3e", x, "1.235e+3"},
		{"%E", x, "1.2345678E+3"},
		{"%+v", CopyNegate(x), "-1234.5678"},
		{"%010.1f", CopyNegate(x), "-0001234.6"},
		{"%10v", Inf(true), " -Infinity"},
		{"%010v", Inf(false), "  Infinity"},
		{"%v", MustParse("sNaN2"), "sNaN2"},
		{"%d", x, "%!d(decnum.Decimal=1234.5678)"},
		{"%v", New(123, -10), "1.23E-8"},
	} {
		assert.Equal(t, d.want, fmt.Sprintf(d.format, d.x), d.format)
	}
}
