// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"sync"

	"github.com/db47h/decnum"
)

// widest value of π computed so far
var piCache struct {
	sync.Mutex
	prec int
	v    decnum.Decimal
}

// Pi returns π rounded to c. It signals Inexact and Rounded.
func Pi(c *decnum.Context) decnum.Decimal {
	piCache.Lock()
	if piCache.prec < c.Precision+guardDigits {
		piCache.prec = c.Precision + guardDigits
		piCache.v = pi(piCache.prec)
	}
	v := piCache.v
	piCache.Unlock()
	return c.Round(v)
}

// pi computes π with the Gauss-Legendre algorithm to prec decimal digits of
// precision.
func pi(prec int) decnum.Decimal {
	w := workContext(prec)
	var (
		a       = one
		b       = w.Quo(one, w.Sqrt(two))
		t       = quarter
		p       = one
		epsilon = decnum.New(1, 1-prec)
	)

	for {
		u := a                       // a_n
		a = w.Mul(w.Add(a, b), half) // a_n+1
		b = w.Sqrt(w.Mul(u, b))      // b_n+1

		// t = t - p×(a_n - a_n+1)²
		d := w.Sub(u, a)
		t = w.Sub(t, w.Mul(w.Mul(d, d), p))

		if w.Cmp(decnum.CopyAbs(w.Sub(a, b)), epsilon) <= 0 {
			break
		}

		p = w.Mul(p, two)
	}
	s := w.Add(a, b)
	return w.Quo(w.Mul(s, s), w.Mul(t, four))
}
