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

// Package gf256 implements arithmetic over the Galois field GF(2^8) with
// reduction polynomial x^8+x^4+x^3+x+1 (0x11B), the field used throughout
// this module's random linear network coding engine.
package gf256

// poly is the reduction polynomial x^8+x^4+x^3+x+1.
const poly = 0x11B

// generator is the multiplicative generator used to build the log/exp tables.
const generator = 3

// log maps a non-zero field element to its discrete log base generator.
// log[0] is never dereferenced; mul/div guard the zero case explicitly.
var log [256]byte

// exp maps a discrete log (mod 255, doubled for wraparound-free lookups) back
// to its field element. exp[255] == 1, exp[k+255] == exp[k].
var exp [512]byte

// inv maps a field element to its multiplicative inverse; inv[0] = 0 by
// convention (never meaningfully multiplied against).
var inv [256]byte

// lowMul and highMul are the split-nibble multiply tables used by the vector
// MAC dispatch tiers: for scalar s and byte b with low nibble lo and high
// nibble hi, s*b == lowMul[s][lo] ^ highMul[s][hi].
var lowMul [256][16]byte
var highMul [256][16]byte

func init() {
	buildLogExpTables()
	buildInvTable()
	buildSplitMulTables()
}

func buildLogExpTables() {
	x := byte(1)
	for i := 0; i < 255; i++ {
		exp[i] = x
		log[x] = byte(i)
		x = gfMulNoTable(x, generator)
	}
	for i := 255; i < 512; i++ {
		exp[i] = exp[i-255]
	}
}

func buildInvTable() {
	for x := 1; x < 256; x++ {
		l := int(log[x])
		inv[x] = exp[255-l]
	}
}

func buildSplitMulTables() {
	for s := 0; s < 256; s++ {
		for nibble := 0; nibble < 16; nibble++ {
			lowMul[s][nibble] = mulDirect(byte(s), byte(nibble))
			highMul[s][nibble] = mulDirect(byte(s), byte(nibble<<4))
		}
	}
}

// gfMulNoTable multiplies two field elements via the shift-and-reduce
// construction, used only while the log/exp tables themselves are being
// built (they are not yet available to multiply through).
func gfMulNoTable(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		hiBitSet := a&0x80 != 0
		a <<= 1
		if hiBitSet {
			a ^= byte(poly & 0xFF)
		}
		b >>= 1
	}
	return p
}

// mulDirect is mulDirect via the shift-and-reduce construction; used to seed
// the split-nibble tables before log/exp lookups are trustworthy for every
// input (notably 0).
func mulDirect(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return gfMulNoTable(a, b)
}
