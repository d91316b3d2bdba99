// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decnum

import (
	"math/big"
	"sync"
)

// Coefficients are stored as non-negative *big.Int values. Once stored in a
// Decimal, a coefficient is never modified: every function in this file
// returns a freshly allocated result and leaves its arguments alone.

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
	bigTen  = big.NewInt(10)
)

// digitsPerWord is the number of decimal digits that always fit in a uint64.
const digitsPerWord = 19

// pow10Cached is the largest power of ten kept in the cache.
const pow10Cached = 1024

var pow10Cache = struct {
	sync.RWMutex
	tab []*big.Int
}{tab: []*big.Int{bigOne, bigTen}}

// pow10 returns 10**n. The result is shared and must not be modified.
func pow10(n int) *big.Int {
	if n < 0 {
		panic("decnum: negative power of ten")
	}
	if n > pow10Cached {
		return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
	}
	pow10Cache.RLock()
	if n < len(pow10Cache.tab) {
		p := pow10Cache.tab[n]
		pow10Cache.RUnlock()
		return p
	}
	pow10Cache.RUnlock()

	pow10Cache.Lock()
	defer pow10Cache.Unlock()
	for len(pow10Cache.tab) <= n {
		p := pow10Cache.tab[len(pow10Cache.tab)-1]
		pow10Cache.tab = append(pow10Cache.tab, new(big.Int).Mul(p, bigTen))
	}
	return pow10Cache.tab[n]
}

// numDigits returns the number of decimal digits of x. The result is 1 for
// x == 0.
func numDigits(x *big.Int) int {
	if x.IsUint64() {
		if d := mag(x.Uint64()); d > 0 {
			return d
		}
		return 1
	}
	// log10(2) ~= 0.30103. The estimate is exact or off by one.
	d := int(float64(x.BitLen()-1)*0.30102999566398119521) + 1
	if x.CmpAbs(pow10(d-1)) < 0 {
		return d - 1
	}
	if x.CmpAbs(pow10(d)) >= 0 {
		return d + 1
	}
	return d
}

// trailingZeros returns the number of trailing decimal zeros of x. x must not
// be zero.
func trailingZeros(x *big.Int) int {
	if x.IsUint64() {
		return dec64TrailingZeros(x.Uint64())
	}
	var (
		n    int
		q    = new(big.Int).Set(x)
		r    = new(big.Int)
		word = pow10(digitsPerWord)
	)
	for {
		q.QuoRem(q, word, r)
		if r.Sign() != 0 {
			return n + dec64TrailingZeros(r.Uint64())
		}
		n += digitsPerWord
	}
}

// shl10 returns x*10**n.
func shl10(x *big.Int, n int) *big.Int {
	if n == 0 {
		return new(big.Int).Set(x)
	}
	return new(big.Int).Mul(x, pow10(n))
}

// shr10 returns x/10**n, truncated.
func shr10(x *big.Int, n int) *big.Int {
	if n == 0 {
		return new(big.Int).Set(x)
	}
	return new(big.Int).Quo(x, pow10(n))
}

// stripZeros removes up to max trailing zeros from x and returns the new
// coefficient along with the number of digits removed.
func stripZeros(x *big.Int, max int) (*big.Int, int) {
	if x.Sign() == 0 || max <= 0 {
		return x, 0
	}
	n := trailingZeros(x)
	if n > max {
		n = max
	}
	if n == 0 {
		return x, 0
	}
	return shr10(x, n), n
}

// lastDigit returns x mod 10.
func lastDigit(x *big.Int) uint {
	if x.IsUint64() {
		return uint(x.Uint64() % 10)
	}
	return uint(new(big.Int).Rem(x, bigTen).Uint64())
}
