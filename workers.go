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

package rlnc

import (
	"golang.org/x/sync/errgroup"

	"github.com/itzmeanjan/rlnc-sub000/gf256"
)

// combine computes out[i] = Σ coeffs[j]*rows[j][i] over GF(2^8), where out
// is a zeroed accumulator and each rows[j] is a slice of the same length
// (piece_size bytes from the Encoder, coded_piece_size bytes from the
// Recoder). When workers <= 1 or there are too few rows to
// split usefully, it runs sequentially; otherwise it partitions the rows
// across an errgroup-bounded fork-join pool, each worker accumulating into
// its own scratch slice of a single pre-allocated slab, joined with a final
// sequential XOR-reduce so the result matches the sequential path exactly.
//
// Grounded on reedsolomon.go's goroutine-bounded split (o.maxGoroutines),
// expressed with golang.org/x/sync/errgroup in place of a raw WaitGroup.
func combine(out []byte, coeffs []byte, rows [][]byte, workers int) {
	n := len(rows)
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 || n <= 1 {
		combineRange(out, coeffs, rows, 0, n)
		return
	}

	pieceSize := len(out)
	slab := make([]byte, workers*pieceSize)

	var g errgroup.Group
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		partial := slab[w*pieceSize : (w+1)*pieceSize]
		g.Go(func() error {
			combineRange(partial, coeffs, rows, lo, hi)
			return nil
		})
	}
	_ = g.Wait()

	for w := 0; w < workers; w++ {
		gf256.MulAccumulate(out, slab[w*pieceSize:(w+1)*pieceSize], 1)
	}
}

// combineRange accumulates rows[lo:hi] scaled by coeffs[lo:hi] into out.
func combineRange(out []byte, coeffs []byte, rows [][]byte, lo, hi int) {
	for i := lo; i < hi; i++ {
		c := coeffs[i]
		if c == 0 {
			continue
		}
		gf256.MulAccumulate(out, rows[i], c)
	}
}
