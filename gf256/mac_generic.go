// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package gf256

// mulAccGeneric is the scalar fallback tier: one split-nibble table lookup
// per byte, one XOR per byte. It is always available and also services the
// tail of every wider tier.
func mulAccGeneric(acc, v []byte, lo, hi *[16]byte) {
	for i, b := range v {
		acc[i] ^= lo[b&0x0f] ^ hi[b>>4]
	}
}

// xorInto computes acc[i] ^= v[i], the scalar==1 fast path shared by every
// tier (no table lookup needed).
func xorInto(acc, v []byte) {
	n := len(v)
	w := wordXor(acc, v)
	for i := w; i < n; i++ {
		acc[i] ^= v[i]
	}
}
