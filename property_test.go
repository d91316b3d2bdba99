// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decnum

import (
	"math/rand"
	"sort"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var specialLiterals = []string{"0", "-0", "0E-5", "0E+3", "Inf", "-Inf", "NaN", "-NaN3", "sNaN", "-sNaN1"}

func randOperands(rnd *rand.Rand, n int) []Decimal {
	xs := make([]Decimal, 0, n+len(specialLiterals))
	for _, s := range specialLiterals {
		xs = append(xs, MustParse(s))
	}
	for len(xs) < cap(xs) {
		xs = append(xs, MustParse(randLiteral(rnd, 20, 30)))
	}
	return xs
}

func TestStringRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, x := range randOperands(rnd, 500) {
		for _, s := range []string{x.String(), x.EngString()} {
			y, err := Parse(s)
			require.NoError(t, err)
			if x.IsNaN() {
				// NaNs have no quantum to preserve
				assert.Empty(t, gocmp.Diff(x.Abstract(), y.Abstract()), s)
				continue
			}
			assert.True(t, Equal(x, y), "%s: got %v, want %v", s, y, x)
			if s == x.String() {
				assert.Empty(t, gocmp.Diff(x.Abstract(), y.Abstract()), s)
			}
		}
	}
}

func TestCommutativity(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	xs := randOperands(rnd, 60)
	c := ExtendedContext()
	for _, x := range xs {
		for _, y := range xs {
			// the first NaN operand wins
			if x.IsNaN() && y.IsNaN() {
				continue
			}
			assert.Equal(t, c.Add(x, y).String(), c.Add(y, x).String(), "%v + %v", x, y)
			assert.Equal(t, c.Mul(x, y).String(), c.Mul(y, x).String(), "%v × %v", x, y)
		}
	}
}

func TestQuantizeIdempotent(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	c := ExtendedContext()
	for i := 0; i < 1000; i++ {
		x := MustParse(randLiteral(rnd, 9, 8))
		y := MustParse(randLiteral(rnd, 1, 8))
		c.ClearFlags()
		q := c.Quantize(x, y)
		if q.IsNaN() {
			assert.Equal(t, InvalidOperation, c.Flags&InvalidOperation, "Quantize(%v, %v)", x, y)
			continue
		}
		require.True(t, SameQuantum(q, y), "Quantize(%v, %v) = %v", x, y, q)
		c.ClearFlags()
		assert.Equal(t, q.String(), c.Quantize(q, y).String())
		assert.Zero(t, c.Flags&(Inexact|Rounded))
	}
}

func TestReducePreservesValue(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))
	c := wideContext(20)
	for i := 0; i < 500; i++ {
		x := MustParse(randLiteral(rnd, 20, 30))
		r := c.Reduce(x)
		require.True(t, Equal(x, r), "Reduce(%v) = %v", x, r)
		if !r.IsZero() {
			assert.NotZero(t, lastDigit(r.Coefficient()), "Reduce(%v) = %v", x, r)
		}
	}
}

func TestCompareTotalOrder(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	xs := randOperands(rnd, 200)
	// duplicate some values with different quanta
	for i := 0; i < 20; i++ {
		x := xs[len(specialLiterals)+i]
		xs = append(xs, newDecimal(x.neg, shl10(x.coef, 2), x.exp-2))
	}
	sort.Slice(xs, func(i, j int) bool { return CompareTotal(xs[i], xs[j]) < 0 })
	for i := range xs {
		assert.Zero(t, CompareTotal(xs[i], xs[i]))
		for j := i + 1; j < len(xs); j++ {
			r := CompareTotal(xs[i], xs[j])
			require.LessOrEqual(t, r, 0, "%s vs %s", xs[i].Abstract(), xs[j].Abstract())
			require.Equal(t, -r, CompareTotal(xs[j], xs[i]))
			if r == 0 {
				require.Empty(t, gocmp.Diff(xs[i].Abstract(), xs[j].Abstract()))
			}
		}
	}
}
