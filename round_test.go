// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decnum

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

var roundingModes = [...]RoundingMode{HalfEven, HalfUp, HalfDown, Down, Up, Ceiling, Floor, Round05Up}

func TestRoundingModeString(t *testing.T) {
	want := [...]string{"HalfEven", "HalfUp", "HalfDown", "Down", "Up", "Ceiling", "Floor", "Round05Up"}
	for i, m := range roundingModes {
		assert.Equal(t, want[i], m.String())
	}
}

func TestDecimalRound(t *testing.T) {
	for _, d := range []struct {
		prec int
		x    string
		want [len(roundingModes)]string
	}{
		{3, "12345", [8]string{"1.23E+4", "1.23E+4", "1.23E+4", "1.23E+4", "1.24E+4", "1.24E+4", "1.23E+4", "1.23E+4"}},
		{3, "12355", [8]string{"1.24E+4", "1.24E+4", "1.24E+4", "1.23E+4", "1.24E+4", "1.24E+4", "1.23E+4", "1.23E+4"}},
		{3, "-12345", [8]string{"-1.23E+4", "-1.23E+4", "-1.23E+4", "-1.23E+4", "-1.24E+4", "-1.23E+4", "-1.24E+4", "-1.23E+4"}},
		{3, "12341", [8]string{"1.23E+4", "1.23E+4", "1.23E+4", "1.23E+4", "1.24E+4", "1.24E+4", "1.23E+4", "1.23E+4"}},
		{3, "-12349", [8]string{"-1.23E+4", "-1.23E+4", "-1.23E+4", "-1.23E+4", "-1.24E+4", "-1.23E+4", "-1.24E+4", "-1.23E+4"}},
		{3, "10001", [8]string{"1.00E+4", "1.00E+4", "1.00E+4", "1.00E+4", "1.01E+4", "1.01E+4", "1.00E+4", "1.01E+4"}},
		{3, "10051", [8]string{"1.01E+4", "1.01E+4", "1.01E+4", "1.00E+4", "1.01E+4", "1.01E+4", "1.00E+4", "1.01E+4"}},
		{3, "99999", [8]string{"1.00E+5", "1.00E+5", "1.00E+5", "9.99E+4", "1.00E+5", "1.00E+5", "9.99E+4", "9.99E+4"}},
		{3, "-99999", [8]string{"-1.00E+5", "-1.00E+5", "-1.00E+5", "-9.99E+4", "-1.00E+5", "-9.99E+4", "-1.00E+5", "-9.99E+4"}},
		{3, "12.34", [8]string{"12.3", "12.3", "12.3", "12.3", "12.4", "12.4", "12.3", "12.3"}},
		{4, "12345", [8]string{"1.234E+4", "1.235E+4", "1.234E+4", "1.234E+4", "1.235E+4", "1.235E+4", "1.234E+4", "1.234E+4"}},
		{4, "12355", [8]string{"1.236E+4", "1.236E+4", "1.235E+4", "1.235E+4", "1.236E+4", "1.236E+4", "1.235E+4", "1.236E+4"}},
		{4, "-12345", [8]string{"-1.234E+4", "-1.235E+4", "-1.234E+4", "-1.234E+4", "-1.235E+4", "-1.234E+4", "-1.235E+4", "-1.234E+4"}},
		{4, "12345.000001", [8]string{"1.235E+4", "1.235E+4", "1.235E+4", "1.234E+4", "1.235E+4", "1.235E+4", "1.234E+4", "1.234E+4"}},
		{4, "1.0015", [8]string{"1.002", "1.002", "1.001", "1.001", "1.002", "1.002", "1.001", "1.001"}},
		{4, "-0.00012345", [8]string{"-0.0001234", "-0.0001235", "-0.0001234", "-0.0001234", "-0.0001235", "-0.0001234", "-0.0001235", "-0.0001234"}},
		{4, "12340", [8]string{"1.234E+4", "1.234E+4", "1.234E+4", "1.234E+4", "1.234E+4", "1.234E+4", "1.234E+4", "1.234E+4"}},
		{4, "1234", [8]string{"1234", "1234", "1234", "1234", "1234", "1234", "1234", "1234"}},
	} {
		for i, mode := range roundingModes {
			c := Context{Precision: d.prec, Rounding: mode, Emax: 999, Emin: -999}
			x := MustParse(d.x)
			r := c.Round(x)
			r.validate()
			assert.Equal(t, d.want[i], r.String(), "Round(%s) prec %d %s", d.x, d.prec, mode)

			// conditions
			var want Condition
			if !Equal(r, x) {
				want = Inexact | Rounded
			} else if r.Digits() < x.Digits() {
				want = Rounded
			}
			assert.Equal(t, want, c.Flags, "Round(%s) prec %d %s flags", d.x, d.prec, mode)
		}
	}
}

func TestRoundAbstract(t *testing.T) {
	c := Context{Precision: 3, Rounding: HalfEven, Emax: 999, Emin: -999}
	assert.Equal(t, "[0,124,1]", c.Round(New(1245, 0)).Abstract())
	assert.Equal(t, "[0,124,1]", c.Round(New(1235, 0)).Abstract())
	assert.Equal(t, "[1,100,2]", c.Round(New(-9999, 0)).Abstract())
}

func TestRoundOverflow(t *testing.T) {
	for _, d := range []struct {
		x    string
		want [len(roundingModes)]string
	}{
		{"1E+1000", [...]string{"Infinity", "Infinity", "Infinity", "9.99E+999", "Infinity", "Infinity", "9.99E+999", "9.99E+999"}},
		{"-1E+1000", [...]string{"-Infinity", "-Infinity", "-Infinity", "-9.99E+999", "-Infinity", "-9.99E+999", "-Infinity", "-9.99E+999"}},
		{"9.995E+999", [...]string{"Infinity", "Infinity", "9.99E+999", "9.99E+999", "Infinity", "Infinity", "9.99E+999", "9.99E+999"}},
	} {
		for i, mode := range roundingModes {
			c := Context{Precision: 3, Rounding: mode, Emax: 999, Emin: -999}
			r := c.Round(MustParse(d.x))
			assert.Equal(t, d.want[i], r.String(), "Round(%s) %s", d.x, mode)
			if d.x == "9.995E+999" && r.IsFinite() {
				assert.Equal(t, Inexact|Rounded, c.Flags, "Round(%s) %s flags", d.x, mode)
			} else {
				assert.Equal(t, Overflow|Inexact|Rounded, c.Flags, "Round(%s) %s flags", d.x, mode)
			}
		}
	}
}

func TestRoundSubnormal(t *testing.T) {
	const underflow = Underflow | Subnormal | Inexact | Rounded
	for _, d := range []struct {
		x     string
		want  string
		flags Condition
	}{
		{"1E-1001", "1E-1001", Subnormal},
		{"1.5E-1001", "2E-1001", underflow},
		{"0.5E-1001", "0E-1001", underflow | Clamped},
		{"1.23E-1000", "1.2E-1000", underflow},
		{"-1E-1003", "-0E-1001", underflow | Clamped},
		{"1.00E-1000", "1.0E-1000", Subnormal | Rounded},
		{"0E-2000", "0E-1001", Clamped},
	} {
		c := Context{Precision: 3, Rounding: HalfEven, Emax: 999, Emin: -999}
		r := c.Round(MustParse(d.x))
		assert.Equal(t, d.want, r.String(), d.x)
		assert.Equal(t, d.flags, c.Flags, "%s flags: %s", d.x, c.Flags)
	}
}

func TestRoundClamp(t *testing.T) {
	for _, d := range []struct {
		x     string
		want  string
		flags Condition
	}{
		{"1E+999", "[0,100,997]", Clamped},
		{"1.2E+999", "[0,120,997]", Clamped},
		{"0E+1000", "[0,0,997]", Clamped},
		{"12E+996", "[0,12,996]", 0},
	} {
		c := Context{Precision: 3, Rounding: HalfEven, Emax: 999, Emin: -999, Clamp: true}
		r := c.Round(MustParse(d.x))
		assert.Equal(t, d.want, r.Abstract(), d.x)
		assert.Equal(t, d.flags, c.Flags, "%s flags: %s", d.x, c.Flags)
	}
}

func TestRoundNaN(t *testing.T) {
	c := Context{Precision: 3, Rounding: HalfEven, Emax: 999, Emin: -999}
	assert.Equal(t, "NaN345", c.Round(MustParse("NaN12345")).String())
	assert.Equal(t, "-sNaN5", c.Round(MustParse("-sNaN5")).String())
	assert.Equal(t, "-Infinity", c.Round(Inf(true)).String())
	c.Clamp = true
	assert.Equal(t, "NaN45", c.Round(MustParse("NaN12345")).String())
	assert.Equal(t, "NaN", c.Round(MustParse("NaN100")).String())
	assert.Zero(t, c.Flags)
}

func TestExponentLimits(t *testing.T) {
	const (
		underflow = Underflow | Subnormal | Inexact | Rounded | Clamped
		overflow  = Overflow | Inexact | Rounded
	)
	tiny, huge := New(1, -maxExp), New(-1, maxExp)
	for _, d := range []struct {
		name  string
		op    func(c *Context) Decimal
		want  string
		flags Condition
	}{
		{"Round(tiny)", func(c *Context) Decimal { return c.Round(tiny) }, "0E-1007", underflow},
		{"Round(huge)", func(c *Context) Decimal { return c.Round(huge) }, "-Infinity", overflow},
		{"tiny×tiny", func(c *Context) Decimal { return c.Mul(tiny, tiny) }, "0E-1007", underflow},
		{"huge×huge", func(c *Context) Decimal { return c.Mul(huge, huge) }, "Infinity", overflow},
		{"tiny×huge", func(c *Context) Decimal { return c.Mul(tiny, huge) }, "-1", 0},
		{"0×tiny", func(c *Context) Decimal { return c.Mul(New(0, -maxExp), tiny) }, "0E-1007", Clamped},
		{"tiny/huge", func(c *Context) Decimal { return c.Quo(tiny, huge) }, "-0E-1007", underflow},
		{"huge/tiny", func(c *Context) Decimal { return c.Quo(huge, tiny) }, "-Infinity", overflow},
		{"FMA(huge, huge, 1)", func(c *Context) Decimal { return c.FMA(huge, huge, New(1, 0)) }, "Infinity", overflow},
		{"FMA(tiny, tiny, 1)", func(c *Context) Decimal { return c.FMA(tiny, tiny, New(1, 0)) }, "1.00000000", Inexact | Rounded},
		{"huge%tiny", func(c *Context) Decimal { return c.Rem(huge, tiny) }, "NaN", InvalidOperation},
		{"tiny%huge", func(c *Context) Decimal { return c.Rem(tiny, huge) }, "0E-1007", underflow},
		{"ScaleB(huge)", func(c *Context) Decimal { return c.ScaleB(huge, New(2*999+18, 0)) }, "-Infinity", overflow},
	} {
		c := ExtendedContext()
		r := d.op(&c)
		assert.Equal(t, d.want, r.String(), d.name)
		assert.Equal(t, d.flags, c.Flags, "%s flags: %s", d.name, c.Flags)
	}

	assert.Panics(t, func() { New(1, maxExp+1) })
	assert.Panics(t, func() { New(1, -maxExp-1) })
	assert.Panics(t, func() { NewFromBigInt(big.NewInt(-5), maxExp+1) })
	assert.NotPanics(t, func() { NewFromBigInt(big.NewInt(-5), -maxExp) })
}
