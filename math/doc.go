// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math provides mathematical functions for decnum.Decimal values.
//
// Pi and Pow are computed with decimal arithmetic and are correctly rounded
// for all practical purposes. Exp, Ln and Log10 are computed in binary
// floating-point: they are convenience functions accurate to about 15
// significant digits, regardless of the context precision.
//
// All functions take the context used for rounding the result and
// accumulating conditions as their first argument.
package math
