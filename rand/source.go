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

// Package rand abstracts the randomness collaborator consumed by the
// coefficient sampler, grounded on the fill-bytes Entropy interface
// xtaci/kcp-go uses for packet-header nonces.
package rand

import (
	"crypto/rand"
	mrand "math/rand/v2"
)

// Source fills b with bytes the caller treats as uniformly random. Unlike
// kcp-go's Entropy.Fill (which is fire-and-forget), Fill returns an error:
// the coefficient sampler treats a failed fill as fatal, so the
// collaborator must be able to report failure.
type Source interface {
	Fill(b []byte) error
}

// CryptoSource fills from crypto/rand.Reader, the default, production
// randomness source.
type CryptoSource struct{}

// Fill implements Source using crypto/rand.Reader.
func (CryptoSource) Fill(b []byte) error {
	_, err := rand.Read(b)
	return err
}

// MathSource fills from a seedable math/rand/v2 generator, for deterministic
// tests that need reproducible coding vectors.
type MathSource struct {
	Rng *mrand.Rand
}

// NewMathSource returns a MathSource seeded deterministically from seed1/seed2.
func NewMathSource(seed1, seed2 uint64) *MathSource {
	return &MathSource{Rng: mrand.New(mrand.NewPCG(seed1, seed2))}
}

// Fill implements Source by drawing bytes a word at a time from the
// underlying generator.
func (m *MathSource) Fill(b []byte) error {
	for i := 0; i < len(b); i += 8 {
		v := m.Rng.Uint64()
		for j := 0; j < 8 && i+j < len(b); j++ {
			b[i+j] = byte(v >> (8 * j))
		}
	}
	return nil
}
