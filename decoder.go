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
	"github.com/itzmeanjan/rlnc-sub000/piece"
)

// Decoder is the facade over the online RREF engine: it validates incoming
// coded pieces, delegates to the matrix, reports progress, and once rank
// reaches n materializes the original bytes, stripping the padding marker.
type Decoder struct {
	geom       piece.Geometry
	dataLen    int // original, unpadded length; only meaningful if known
	m          *matrix
	lastUseful bool
}

// NewDecoder creates a Decoder for n pieces of the given piece_size. Both
// values must be communicated out of band: a coded piece carries its coding
// vector and symbol block, nothing else.
func NewDecoder(n, pieceSize int) *Decoder {
	geom := piece.Geometry{N: n, PieceSize: pieceSize}
	return &Decoder{
		geom: geom,
		m:    newMatrix(geom),
	}
}

// N returns the configured piece count.
func (d *Decoder) N() int { return d.geom.N }

// PieceSize returns the configured symbol-block size.
func (d *Decoder) PieceSize() int { return d.geom.PieceSize }

// CodedPieceSize returns n + piece_size.
func (d *Decoder) CodedPieceSize() int { return d.geom.CodedPieceSize() }

// Rank returns the number of linearly independent pieces ingested so far.
func (d *Decoder) Rank() int { return d.m.rank }

// IsComplete reports whether rank has reached n.
func (d *Decoder) IsComplete() bool { return d.m.full() }

// IsUsefulLast reports whether the most recently ingested piece increased
// rank.
func (d *Decoder) IsUsefulLast() bool { return d.lastUseful }

// AddPiece ingests one coded piece. It returns whether the piece was
// useful (increased rank). Ingesting after IsComplete returns
// ErrDecoderAlreadyFull; a piece of the wrong length returns
// ErrInvalidPieceLength. A piece that is merely linearly dependent on what
// is already held is not an error; it is classified not-useful.
func (d *Decoder) AddPiece(p []byte) (bool, error) {
	useful, err := d.m.addPiece(p)
	if err != nil {
		return false, err
	}
	d.lastUseful = useful
	return useful, nil
}

// IntoData materializes the original data once decoding is complete: the n
// symbol blocks are concatenated in pivot-column order and the padding
// marker is stripped. Calling it before IsComplete returns ErrNotYetComplete.
func (d *Decoder) IntoData() ([]byte, error) {
	if !d.m.full() {
		return nil, ErrNotYetComplete
	}

	padded := make([]byte, d.geom.PaddedSize())
	for j := 0; j < d.geom.N; j++ {
		copy(padded[j*d.geom.PieceSize:(j+1)*d.geom.PieceSize], d.m.symbolsByColumn(j))
	}

	return piece.Unpad(padded, d.geom)
}
