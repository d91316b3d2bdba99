// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decnum

import (
	"strings"

	"github.com/pkg/errors"
)

// A Condition is a set of exceptional conditions signaled by operations.
type Condition uint32

// Conditions, in the order in which String lists them.
const (
	InvalidOperation Condition = 1 << iota
	DivisionByZero
	Overflow
	Underflow
	Inexact
	Rounded
	Subnormal
	Clamped
)

var conditionNames = [...]struct {
	c    Condition
	name string
	msg  string
}{
	{InvalidOperation, "InvalidOperation", "invalid operation"},
	{DivisionByZero, "DivisionByZero", "division by zero"},
	{Overflow, "Overflow", "overflow"},
	{Underflow, "Underflow", "underflow"},
	{Inexact, "Inexact", "inexact result"},
	{Rounded, "Rounded", "rounded result"},
	{Subnormal, "Subnormal", "subnormal result"},
	{Clamped, "Clamped", "exponent clamped"},
}

// String returns the names of the conditions in c separated by '|', or "0" if
// c is empty.
func (c Condition) String() string {
	if c == 0 {
		return "0"
	}
	var b strings.Builder
	for _, n := range conditionNames {
		if c&n.c == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(n.name)
	}
	return b.String()
}

// A ConditionError reports trapped conditions.
type ConditionError struct {
	Condition Condition
}

func (e *ConditionError) Error() string {
	var msgs []string
	for _, n := range conditionNames {
		if e.Condition&n.c != 0 {
			msgs = append(msgs, n.msg)
		}
	}
	return "decnum: " + strings.Join(msgs, ", ")
}

// A Context holds the precision, rounding mode and exponent range used by
// arithmetic operations, and a register of the conditions they signaled.
//
// Operations are methods of *Context and never return errors: exceptional
// conditions are accumulated in Flags until the caller clears them. A Context
// must not be used concurrently by several goroutines.
type Context struct {
	// Precision is the maximum number of significant digits of a result.
	Precision int
	// Rounding is the rounding mode applied to inexact results.
	Rounding RoundingMode
	// Emax and Emin are the bounds of the adjusted exponent of normal
	// values.
	Emax, Emin int
	// Clamp limits the exponent of results to Etop, padding coefficients with
	// zeros when needed, as IEEE 754 interchange formats require.
	Clamp bool
	// Traps is the set of conditions reported by Err.
	Traps Condition
	// Flags accumulates the conditions signaled by operations.
	Flags Condition
}

// DefaultTraps is the set of conditions trapped by DefaultContext.
const DefaultTraps = InvalidOperation | DivisionByZero | Overflow

// DefaultContext returns a new context with a precision of 28 digits, rounding
// HalfEven and exponents in [-999999, 999999].
func DefaultContext() Context {
	return Context{
		Precision: 28,
		Rounding:  HalfEven,
		Emax:      999999,
		Emin:      -999999,
		Traps:     DefaultTraps,
	}
}

// BasicContext returns the basic default context of the General Decimal
// Arithmetic specification: precision 9, rounding HalfUp, and all conditions
// but Inexact, Rounded and Subnormal trapped.
func BasicContext() Context {
	return Context{
		Precision: 9,
		Rounding:  HalfUp,
		Emax:      999,
		Emin:      -999,
		Traps:     InvalidOperation | DivisionByZero | Overflow | Underflow | Clamped,
	}
}

// ExtendedContext returns the extended default context of the General
// Decimal Arithmetic specification: precision 9, rounding HalfEven, no traps.
func ExtendedContext() Context {
	return Context{
		Precision: 9,
		Rounding:  HalfEven,
		Emax:      999,
		Emin:      -999,
	}
}

// IEEEContext returns a context for the IEEE 754 decimal interchange format
// of the given width in bits, which must be a positive multiple of 32 no
// larger than 512.
func IEEEContext(bits int) (Context, error) {
	if bits <= 0 || bits > 512 || bits%32 != 0 {
		return Context{}, errors.Errorf("decnum: unsupported interchange format width %d", bits)
	}
	emax := 3 << uint(bits/16+3)
	return Context{
		Precision: 9*bits/32 - 2,
		Rounding:  HalfEven,
		Emax:      emax,
		Emin:      1 - emax,
		Clamp:     true,
	}, nil
}

// Validate checks that c's precision and exponent range are within supported
// limits.
func (c *Context) Validate() error {
	switch {
	case c.Precision < 1 || c.Precision > MaxPrecision:
		return errors.Wrapf(ErrRange, "decnum: precision %d", c.Precision)
	case c.Emax < 0 || c.Emax > MaxEmax:
		return errors.Wrapf(ErrRange, "decnum: Emax %d", c.Emax)
	case c.Emin > 0 || c.Emin < MinEmin:
		return errors.Wrapf(ErrRange, "decnum: Emin %d", c.Emin)
	case c.Rounding > Round05Up:
		return errors.Errorf("decnum: invalid rounding mode %d", c.Rounding)
	}
	return nil
}

// Etiny returns the smallest exponent of a subnormal value: Emin - Precision + 1.
func (c *Context) Etiny() int { return c.Emin - c.Precision + 1 }

// Etop returns the largest exponent of a value with Precision digits:
// Emax - Precision + 1.
func (c *Context) Etop() int { return c.Emax - c.Precision + 1 }

// ClearFlags clears the condition register of c.
func (c *Context) ClearFlags() { c.Flags = 0 }

// Err returns a *ConditionError if any trapped condition has been signaled,
// nil otherwise. Flags are left unchanged.
func (c *Context) Err() error {
	if t := c.Flags & c.Traps; t != 0 {
		return &ConditionError{Condition: t}
	}
	return nil
}

func (c *Context) signal(cond Condition) {
	c.Flags |= cond
}

// invalid signals InvalidOperation and returns a quiet NaN.
func (c *Context) invalid() Decimal {
	c.signal(InvalidOperation)
	return Decimal{form: qnan}
}

// expMax returns the largest exponent a result may have.
func (c *Context) expMax() int {
	if c.Clamp {
		return c.Etop()
	}
	return c.Emax
}
