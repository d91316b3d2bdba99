// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides sticky-error contexts for Decimals.
//
// All factory functions of the form
//
//	func (c *Context) NewT(x T) decnum.Decimal
//
// create a new decnum.Decimal set to the value of x, rounded using c's
// precision and rounding mode.
//
// Operators of the form
//
//	func (c *Context) UnaryOp(x decnum.Decimal) decnum.Decimal
//	func (c *Context) BinaryOp(x, y decnum.Decimal) decnum.Decimal
//
// return the result of the corresponding decnum.Context operation.
//
// A Context catches trapped conditions: if an operation signals a condition
// that is in the context's traps, the operation returns a quiet NaN and
// further operations with the context are no-ops returning NaN until
// (*Context).Err is called to check for errors.
package context

import (
	"math/big"

	"github.com/db47h/decnum"
)

// A Context is a wrapper around decnum.Context that turns trapped conditions
// into a sticky error.
type Context struct {
	ctx decnum.Context
	err error
}

// New creates a new context with the given precision and rounding mode,
// trapping decnum.DefaultTraps. If prec is 0, it is set to the precision of
// decnum.DefaultContext.
func New(prec int, mode decnum.RoundingMode) *Context {
	return Wrap(decnum.DefaultContext()).SetMode(mode).SetPrec(prec)
}

// Wrap returns a new Context using a copy of dc for all operations.
func Wrap(dc decnum.Context) *Context {
	return &Context{ctx: dc}
}

// Mode returns the rounding mode of c.
func (c *Context) Mode() decnum.RoundingMode {
	return c.ctx.Rounding
}

// Prec returns the precision of c in decimal digits.
func (c *Context) Prec() int {
	return c.ctx.Precision
}

// SetMode sets c's rounding mode to mode and returns c.
func (c *Context) SetMode(mode decnum.RoundingMode) *Context {
	c.ctx.Rounding = mode
	return c
}

// SetPrec sets c's precision to prec and returns c.
//
// If prec > decnum.MaxPrecision, it is set to decnum.MaxPrecision. If prec
// <= 0, it is set to the precision of decnum.DefaultContext.
func (c *Context) SetPrec(prec int) *Context {
	// special case
	if prec <= 0 {
		prec = decnum.DefaultContext().Precision
	}
	// general case
	if prec > decnum.MaxPrecision {
		prec = decnum.MaxPrecision
	}
	c.ctx.Precision = prec
	return c
}

// SetTraps sets the conditions trapped by c and returns c.
func (c *Context) SetTraps(traps decnum.Condition) *Context {
	c.ctx.Traps = traps
	return c
}

// Flags returns all the conditions signaled by operations performed with c.
func (c *Context) Flags() decnum.Condition {
	return c.ctx.Flags
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// apply runs op with c's decimal context. Conditions signaled by op that c
// traps set the sticky error.
func (c *Context) apply(op func(dc *decnum.Context) decnum.Decimal) decnum.Decimal {
	if c.err != nil {
		return decnum.NaN(false, nil)
	}
	flags := c.ctx.Flags
	c.ctx.Flags = 0
	r := op(&c.ctx)
	err := c.ctx.Err()
	c.ctx.Flags |= flags
	if err != nil {
		c.err = err
		return decnum.NaN(false, nil)
	}
	return r
}

// NewInt64 returns a new decnum.Decimal set to the (possibly rounded) value
// of x.
func (c *Context) NewInt64(x int64) decnum.Decimal {
	return c.Round(decnum.New(x, 0))
}

// NewInt returns a new decnum.Decimal set to the (possibly rounded) value of
// x.
func (c *Context) NewInt(x *big.Int) decnum.Decimal {
	return c.Round(decnum.NewFromBigInt(x, 0))
}

// NewFloat64 returns a new decnum.Decimal set to the (possibly rounded) value
// of x.
func (c *Context) NewFloat64(x float64) decnum.Decimal {
	return c.Round(decnum.NewFromFloat64(x))
}

// NewString returns a new decnum.Decimal set to the (possibly rounded) value
// of the decimal literal s. An invalid literal sets the error state if c traps
// decnum.InvalidOperation.
func (c *Context) NewString(s string) decnum.Decimal {
	return c.apply(func(dc *decnum.Context) decnum.Decimal { return dc.NewFromString(s) })
}

// Round returns x rounded using c's precision and rounding mode.
func (c *Context) Round(x decnum.Decimal) decnum.Decimal {
	return c.apply(func(dc *decnum.Context) decnum.Decimal { return dc.Round(x) })
}

// Add returns the rounded sum x+y.
func (c *Context) Add(x, y decnum.Decimal) decnum.Decimal {
	return c.apply(func(dc *decnum.Context) decnum.Decimal { return dc.Add(x, y) })
}

// Sub returns the rounded difference x-y.
func (c *Context) Sub(x, y decnum.Decimal) decnum.Decimal {
	return c.apply(func(dc *decnum.Context) decnum.Decimal { return dc.Sub(x, y) })
}

// Mul returns the rounded product x×y.
func (c *Context) Mul(x, y decnum.Decimal) decnum.Decimal {
	return c.apply(func(dc *decnum.Context) decnum.Decimal { return dc.Mul(x, y) })
}

// FMA returns x×y+u, computed with only one rounding. That is, FMA performs
// the fused multiply-add of x, y, and u.
func (c *Context) FMA(x, y, u decnum.Decimal) decnum.Decimal {
	return c.apply(func(dc *decnum.Context) decnum.Decimal { return dc.FMA(x, y, u) })
}

// Quo returns the rounded quotient x/y.
func (c *Context) Quo(x, y decnum.Decimal) decnum.Decimal {
	return c.apply(func(dc *decnum.Context) decnum.Decimal { return dc.Quo(x, y) })
}

// QuoInteger returns the integer part of x/y.
func (c *Context) QuoInteger(x, y decnum.Decimal) decnum.Decimal {
	return c.apply(func(dc *decnum.Context) decnum.Decimal { return dc.QuoInteger(x, y) })
}

// Rem returns the remainder of the truncated division x/y.
func (c *Context) Rem(x, y decnum.Decimal) decnum.Decimal {
	return c.apply(func(dc *decnum.Context) decnum.Decimal { return dc.Rem(x, y) })
}

// Quantize returns x with the exponent of y.
func (c *Context) Quantize(x, y decnum.Decimal) decnum.Decimal {
	return c.apply(func(dc *decnum.Context) decnum.Decimal { return dc.Quantize(x, y) })
}

// Neg returns the rounded value of x with its sign negated.
func (c *Context) Neg(x decnum.Decimal) decnum.Decimal {
	return c.apply(func(dc *decnum.Context) decnum.Decimal { return dc.Neg(x) })
}

// Abs returns the rounded value |x| (the absolute value of x).
func (c *Context) Abs(x decnum.Decimal) decnum.Decimal {
	return c.apply(func(dc *decnum.Context) decnum.Decimal { return dc.Abs(x) })
}

// Sqrt returns the rounded square root of x.
func (c *Context) Sqrt(x decnum.Decimal) decnum.Decimal {
	return c.apply(func(dc *decnum.Context) decnum.Decimal { return dc.Sqrt(x) })
}

// Cmp compares x and y as decnum.Context.Cmp does. It returns 0 once c is in
// an error state.
func (c *Context) Cmp(x, y decnum.Decimal) int {
	var r int
	c.apply(func(dc *decnum.Context) decnum.Decimal {
		r = dc.Cmp(x, y)
		return decnum.Decimal{}
	})
	return r
}
