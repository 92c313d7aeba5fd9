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

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillRandom fills b with pseudo-random bytes drawn from rng. math/rand/v2's
// Rand intentionally drops the old io.Reader-shaped Read method, so tests
// that want byte slices fill them a word at a time.
func fillRandom(rng *rand.Rand, b []byte) {
	for i := 0; i < len(b); i += 8 {
		var buf [8]byte
		v := rng.Uint64()
		for j := 0; j < 8; j++ {
			buf[j] = byte(v >> (8 * j))
		}
		copy(b[i:], buf[:])
	}
}

func TestScalarBasics(t *testing.T) {
	assert.Equal(t, byte(0), Mul(0, 200))
	assert.Equal(t, byte(0), Mul(200, 0))
	for x := 1; x < 256; x++ {
		assert.Equal(t, byte(x), Mul(1, byte(x)))
		assert.Equal(t, byte(1), Mul(byte(x), Inv(byte(x))), "x=%d", x)
	}
	assert.Equal(t, byte(0xFF), Add(0x0F, 0xF0))
	assert.Equal(t, byte(0), Add(0x42, 0x42))
}

// TestFieldLaws property-tests associativity and distributivity over
// 10,000 random triples.
func TestFieldLaws(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	const samples = 10000
	for i := 0; i < samples; i++ {
		a := byte(rng.IntN(256))
		b := byte(rng.IntN(256))
		c := byte(rng.IntN(256))

		require.Equal(t, Mul(Mul(a, b), c), Mul(a, Mul(b, c)), "associativity a=%d b=%d c=%d", a, b, c)
		require.Equal(t, Mul(a, Add(b, c)), Add(Mul(a, b), Mul(a, c)), "distributivity a=%d b=%d c=%d", a, b, c)
		require.Equal(t, Add(a, b), Add(b, a), "commutative add a=%d b=%d", a, b)
		require.Equal(t, Mul(a, b), Mul(b, a), "commutative mul a=%d b=%d", a, b)

		if a != 0 {
			require.Equal(t, b, Div(Mul(a, b), a), "div undoes mul a=%d b=%d", a, b)
		}
	}
}

// TestMulAccumulateParity checks that MulAccumulate (whichever tier the
// process selected) agrees byte-for-byte with the always-correct generic
// scalar reference, for random (scalar, length) including lengths that
// straddle tier block boundaries.
func TestMulAccumulateParity(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	lengths := []int{0, 1, 2, 15, 16, 17, 31, 32, 33, 63, 64, 65, 100, 257, 1000}

	for _, n := range lengths {
		for trial := 0; trial < 8; trial++ {
			scalar := byte(rng.IntN(256))
			v := make([]byte, n)
			fillRandom(rng, v)

			got := make([]byte, n)
			fillRandom(rng, got)
			want := make([]byte, n)
			copy(want, got)

			MulAccumulate(got, v, scalar)
			mulAccGeneric(want, v, &lowMul[scalar], &highMul[scalar])

			require.Equal(t, want, got, "scalar=%d len=%d tier=%s", scalar, n, Tier())
		}
	}
}

func TestScaleMatchesMulAccumulateFromZero(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	v := make([]byte, 200)
	fillRandom(rng, v)
	scalar := byte(rng.IntN(256))

	scaled := make([]byte, len(v))
	Scale(scaled, v, scalar)

	acc := make([]byte, len(v))
	MulAccumulate(acc, v, scalar)

	assert.Equal(t, acc, scaled)
}

func TestLogExpTableRoundTrip(t *testing.T) {
	for x := 1; x < 256; x++ {
		assert.Equal(t, byte(x), exp[int(log[byte(x)])])
	}
}
