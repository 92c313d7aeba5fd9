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

// Encoder owns a padded copy of the original data and emits coded pieces by
// sampling a random coding vector and forming its linear combination with
// the original pieces. An Encoder is immutable after construction and safe
// for concurrent use by multiple goroutines calling
// Code/CodeWithBuf/CodeWithCodingVector independently (each call only reads
// e.padded and writes its own output buffer), except that on an Encoder
// built with WithEncoderScratch every Code call writes into, and returns,
// that one shared buffer.
type Encoder struct {
	padded []byte
	geom   piece.Geometry
	opts   codingOptions
}

// NewEncoder derives the piece geometry from len(data) and n via
// piece.NewGeometry, pads data to it, and returns an Encoder ready to
// produce coded pieces. n must be at least 2 and data at least 1 byte.
func NewEncoder(data []byte, n int, opts ...EncoderOption) (*Encoder, error) {
	geom, err := piece.NewGeometry(len(data), n)
	if err != nil {
		return nil, err
	}

	o := defaultCodingOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Encoder{
		padded: piece.Pad(data, geom),
		geom:   geom,
		opts:   o,
	}, nil
}

// N returns the number of original pieces.
func (e *Encoder) N() int { return e.geom.N }

// PieceSize returns the size in bytes of a piece's symbol block.
func (e *Encoder) PieceSize() int { return e.geom.PieceSize }

// CodedPieceSize returns n + piece_size, the length of every coded piece
// this encoder produces.
func (e *Encoder) CodedPieceSize() int { return e.geom.CodedPieceSize() }

// Code samples a fresh random coding vector and returns a coded piece. If
// the encoder was constructed with WithEncoderScratch and the supplied
// buffer is still sized CodedPieceSize(), that buffer is reused in place of
// a fresh allocation; otherwise one is allocated.
func (e *Encoder) Code(src rand.Source) ([]byte, error) {
	out := e.opts.scratch
	if len(out) != e.geom.CodedPieceSize() {
		out = make([]byte, e.geom.CodedPieceSize())
	}
	if err := e.CodeWithBuf(src, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CodeWithBuf is Code, writing into a caller-supplied buffer. len(out) must
// equal CodedPieceSize().
func (e *Encoder) CodeWithBuf(src rand.Source, out []byte) error {
	if len(out) != e.geom.CodedPieceSize() {
		return errors.Wrapf(ErrInvalidPieceLength, "want %d got %d", e.geom.CodedPieceSize(), len(out))
	}
	n := e.geom.N
	if err := sampleCoefficients(src, out[:n]); err != nil {
		return err
	}
	return e.combineWithCodingVector(out)
}

// CodeWithCodingVector is the deterministic variant: the caller supplies
// the coding vector c explicitly (used by tests and by Recoder internals).
// c is written into out's leading n bytes if it isn't already there.
func (e *Encoder) CodeWithCodingVector(out []byte, c []byte) error {
	if len(out) != e.geom.CodedPieceSize() {
		return errors.Wrapf(ErrInvalidPieceLength, "want %d got %d", e.geom.CodedPieceSize(), len(out))
	}
	if len(c) != e.geom.N {
		return errors.Wrapf(ErrInvalidCodingVectorLength, "want %d got %d", e.geom.N, len(c))
	}
	copy(out[:e.geom.N], c)
	return e.combineWithCodingVector(out)
}

// combineWithCodingVector assumes out[:n] already holds the coding vector
// and fills out[n:] with the resulting linear combination of original
// pieces.
func (e *Encoder) combineWithCodingVector(out []byte) error {
	n := e.geom.N
	symbols := out[n:]
	for i := range symbols {
		symbols[i] = 0
	}

	rows := make([][]byte, n)
	for i := 0; i < n; i++ {
		rows[i] = piece.OriginalPiece(e.padded, e.geom, i)
	}

	combine(symbols, out[:n], rows, e.opts.workers)
	return nil
}
