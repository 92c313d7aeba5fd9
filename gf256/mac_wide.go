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
	"unsafe"
)

// wordSize and supportsUnaligned mirror templexxx/xorsimd's portable XOR
// fallback: architectures listed here tolerate unaligned word loads/stores,
// so the accumulate half of the MAC can be done wordSize bytes at a time
// instead of one byte at a time.
const wordSize = int(unsafe.Sizeof(uintptr(0)))

var supportsUnaligned = func() bool {
	switch runtime.GOARCH {
	case "amd64", "arm64", "386", "ppc64", "ppc64le", "s390x":
		return true
	default:
		return false
	}
}()

// mulAccWide processes v in blocks of blockSize bytes: it builds a
// block-sized lookup buffer through the split-nibble tables (the portable
// stand-in for a 128/256/512-bit PSHUFB-style shuffle) and XORs it into acc
// wordSize bytes at a time. The remainder shorter than blockSize falls back
// to the generic byte-at-a-time path.
func mulAccWide(acc, v []byte, lo, hi *[16]byte, blockSize int) {
	n := len(v)
	var buf [64]byte // large enough for the widest tier (tierWide64)

	full := n - n%blockSize
	for off := 0; off < full; off += blockSize {
		chunkV := v[off : off+blockSize]
		chunkAcc := acc[off : off+blockSize]
		block := buf[:blockSize]
		for i, b := range chunkV {
			block[i] = lo[b&0x0f] ^ hi[b>>4]
		}
		xorInto(chunkAcc, block)
	}

	if full < n {
		mulAccGeneric(acc[full:], v[full:], lo, hi)
	}
}

// wordXor XORs acc[i] ^= v[i] for as many whole machine words as fit,
// returning the number of bytes consumed. The caller handles the remainder.
func wordXor(acc, v []byte) int {
	n := len(v)
	if !supportsUnaligned || n < wordSize {
		return 0
	}
	words := n / wordSize
	wordBytes := words * wordSize

	aw := unsafe.Slice((*uintptr)(unsafe.Pointer(&acc[0])), words)
	vw := unsafe.Slice((*uintptr)(unsafe.Pointer(&v[0])), words)

	for i := 0; i < words; i++ {
		aw[i] ^= vw[i]
	}
	return wordBytes
}
