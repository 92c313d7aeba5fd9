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
	"runtime"
	"sync"

	"golang.org/x/sys/cpu"
)

// tier identifies a vector×scalar dispatch path. Wider tiers process more
// bytes per inner-loop iteration through the same split-nibble tables;
// tierGeneric is always available and is the tail-handling path for every
// other tier.
type tier int

const (
	tierGeneric tier = iota
	tierWide16
	tierWide32
	tierWide64
)

var (
	dispatchOnce sync.Once
	activeTier   tier
)

// selectTier picks the widest tier the running CPU supports. It runs once
// per process and is cached in activeTier, mirroring the one-shot capability
// snapshot klauspost/reedsolomon's options.go takes via cpuid.CPU.Supports.
func selectTier() tier {
	dispatchOnce.Do(func() {
		switch {
		case runtime.GOARCH == "amd64" && cpu.X86.HasAVX512BW:
			activeTier = tierWide64
		case runtime.GOARCH == "amd64" && cpu.X86.HasAVX2:
			activeTier = tierWide32
		case runtime.GOARCH == "amd64" && cpu.X86.HasSSSE3:
			activeTier = tierWide16
		case runtime.GOARCH == "arm64" && cpu.ARM64.HasASIMD:
			activeTier = tierWide16
		default:
			activeTier = tierGeneric
		}
	})
	return activeTier
}

// Tier reports the name of the dispatch path this process has selected for
// MulAccumulate/Scale. It exists for diagnostics and tests; callers never
// need to branch on it.
func Tier() string {
	switch selectTier() {
	case tierWide64:
		return "wide64"
	case tierWide32:
		return "wide32"
	case tierWide16:
		return "wide16"
	default:
		return "generic"
	}
}

// MulAccumulate computes acc[i] ^= scalar*v[i] for every byte in v, writing
// the result into acc. acc and v must have equal length; arbitrary lengths
// (including ones not a multiple of the active tier's block size) are
// tolerated, with the remainder handled by the generic scalar path.
func MulAccumulate(acc, v []byte, scalar byte) {
	if len(acc) != len(v) {
		panic("gf256: MulAccumulate requires acc and v of equal length")
	}
	if scalar == 0 || len(v) == 0 {
		return
	}
	if scalar == 1 {
		xorInto(acc, v)
		return
	}

	lo := &lowMul[scalar]
	hi := &highMul[scalar]

	switch selectTier() {
	case tierWide64:
		mulAccWide(acc, v, lo, hi, 64)
	case tierWide32:
		mulAccWide(acc, v, lo, hi, 32)
	case tierWide16:
		mulAccWide(acc, v, lo, hi, 16)
	default:
		mulAccGeneric(acc, v, lo, hi)
	}
}

// Scale computes dst[i] = scalar*v[i], overwriting dst. dst and v must have
// equal length.
func Scale(dst, v []byte, scalar byte) {
	if len(dst) != len(v) {
		panic("gf256: Scale requires dst and v of equal length")
	}
	if scalar == 0 {
		for i := range dst {
			dst[i] = 0
		}
		return
	}
	if scalar == 1 {
		copy(dst, v)
		return
	}
	lo := &lowMul[scalar]
	hi := &highMul[scalar]
	for i, b := range v {
		dst[i] = lo[b&0x0f] ^ hi[b>>4]
	}
}
