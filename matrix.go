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
	"github.com/pkg/errors"

	"github.com/itzmeanjan/rlnc-sub000/gf256"
	"github.com/itzmeanjan/rlnc-sub000/piece"
)

// noPivot marks a column with no assigned row yet.
const noPivot = -1

// matrix is the online RREF engine: a flat, row-major buffer of up to n
// rows, each coded_piece_size bytes wide, always held in reduced
// row-echelon form with respect to its coding-vector prefix. Grounded on
// reedsolomon.go's flat row-major matrix construction (result[r][c] = ...)
// adapted from a static generator matrix to an incrementally built one.
//
// matrix is not safe for concurrent use: addPiece mutates shared rows via
// back-elimination, so the fork-join worker pool is never applied here.
type matrix struct {
	geom  piece.Geometry
	rowW  int
	buf   []byte
	pivot []int // column -> row index, or noPivot
	rank  int
}

func newMatrix(geom piece.Geometry) *matrix {
	n := geom.N
	rowW := geom.CodedPieceSize()
	pivot := make([]int, n)
	for i := range pivot {
		pivot[i] = noPivot
	}
	return &matrix{
		geom:  geom,
		rowW:  rowW,
		buf:   make([]byte, n*rowW),
		pivot: pivot,
		rank:  0,
	}
}

func (m *matrix) row(i int) []byte {
	return m.buf[i*m.rowW : (i+1)*m.rowW]
}

func (m *matrix) full() bool {
	return m.rank == m.geom.N
}

// addPiece ingests one coded piece, forward-reducing it against the current
// pivots and, if it increases rank, back-eliminating every existing row so
// the RREF invariant holds again immediately. Returns whether the piece was
// useful (increased rank). Useless pieces (linearly dependent on what's
// already held, including the all-zero coding vector) never mutate state.
func (m *matrix) addPiece(p []byte) (bool, error) {
	if len(p) != m.rowW {
		return false, errors.Wrapf(ErrInvalidPieceLength, "want %d got %d", m.rowW, len(p))
	}
	if m.full() {
		return false, ErrDecoderAlreadyFull
	}

	w := make([]byte, m.rowW)
	copy(w, p)

	n := m.geom.N
	for j := 0; j < n; j++ {
		if w[j] == 0 {
			continue
		}

		if r := m.pivot[j]; r != noPivot {
			scale := w[j]
			gf256.MulAccumulate(w, m.row(r), scale)
			continue
		}

		// Pivot found at column j: normalize so w[j] == 1.
		invScale := gf256.Inv(w[j])
		gf256.Scale(w, w, invScale)

		// Back-eliminate every existing row so column j becomes a clean
		// pivot column (RREF, not just REF).
		for r := 0; r < m.rank; r++ {
			existing := m.row(r)
			scale2 := existing[j]
			if scale2 == 0 {
				continue
			}
			gf256.MulAccumulate(existing, w, scale2)
		}

		slot := m.rank
		copy(m.row(slot), w)
		m.pivot[j] = slot
		m.rank++
		return true, nil
	}

	return false, nil
}

// symbolsByColumn returns the j-th original piece's recovered symbol block,
// valid only once m.full().
func (m *matrix) symbolsByColumn(j int) []byte {
	r := m.pivot[j]
	return m.row(r)[m.geom.N:]
}
