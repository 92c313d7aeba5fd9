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

	"github.com/itzmeanjan/rlnc-sub000/piece"
	"github.com/itzmeanjan/rlnc-sub000/rand"
)

// Recoder owns a buffer of m already-coded pieces and emits further coded
// pieces by sampling a length-m coefficient vector and linearly combining
// the received pieces, without decoding. Because a coded piece's
// coding-vector prefix and symbol suffix both transform linearly,
// recombining whole rows (coding vector and symbols together) yields a
// correct coding vector in the original basis for free; no separate
// bookkeeping of "effective" coefficients is needed.
type Recoder struct {
	received [][]byte // m rows, each codedPieceSize bytes
	geom     piece.Geometry
	opts     codingOptions
}

// NewRecoder copies the m received coded pieces into a Recoder. n is the
// original piece count (used only to report CodedPieceSize-shaped errors
// consistently with Encoder; the recoder itself works over whatever coded
// pieces it's handed, independent of how many of them there are relative
// to n). pieceSize is the symbol-block size carried out of band alongside n.
func NewRecoder(receivedPieces [][]byte, n, pieceSize int, opts ...RecoderOption) (*Recoder, error) {
	if len(receivedPieces) == 0 {
		return nil, ErrEmptyRecoderInput
	}
	geom := piece.Geometry{N: n, PieceSize: pieceSize}
	want := geom.CodedPieceSize()

	received := make([][]byte, len(receivedPieces))
	for i, p := range receivedPieces {
		if len(p) != want {
			return nil, errors.Wrapf(ErrInvalidPieceLength, "row %d: want %d got %d", i, want, len(p))
		}
		row := make([]byte, want)
		copy(row, p)
		received[i] = row
	}

	o := defaultCodingOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Recoder{received: received, geom: geom, opts: o}, nil
}

// M returns the number of received pieces this recoder holds.
func (r *Recoder) M() int { return len(r.received) }

// CodedPieceSize returns n + piece_size, the length of every coded piece
// this recoder consumes and produces.
func (r *Recoder) CodedPieceSize() int { return r.geom.CodedPieceSize() }

// Recode samples a fresh random length-m coefficient vector and returns a
// recoded piece. If the recoder was constructed with WithRecoderScratch and
// the supplied buffer is still sized CodedPieceSize(), that buffer is reused
// in place of a fresh allocation; otherwise one is allocated.
func (r *Recoder) Recode(src rand.Source) ([]byte, error) {
	out := r.opts.scratch
	if len(out) != r.geom.CodedPieceSize() {
		out = make([]byte, r.geom.CodedPieceSize())
	}
	if err := r.RecodeWithBuf(src, out); err != nil {
		return nil, err
	}
	return out, nil
}

// RecodeWithBuf is Recode, writing into a caller-supplied buffer. len(out)
// must equal CodedPieceSize().
func (r *Recoder) RecodeWithBuf(src rand.Source, out []byte) error {
	if len(out) != r.geom.CodedPieceSize() {
		return errors.Wrapf(ErrInvalidPieceLength, "want %d got %d", r.geom.CodedPieceSize(), len(out))
	}

	coeffs := make([]byte, len(r.received))
	if err := sampleCoefficients(src, coeffs); err != nil {
		return err
	}

	for i := range out {
		out[i] = 0
	}
	combine(out, coeffs, r.received, r.opts.workers)
	return nil
}
