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

// Package piece implements the canonical on-wire layout of a coded piece,
// a coding vector followed by a coded symbol block, and the padding
// contract that lets a decoder recover the exact original byte length.
package piece

import "github.com/pkg/errors"

// sentinel marks the first byte of padding; everything at or after it
// (scanning from the tail) is discarded on unpad.
const sentinel = 0x01

// MinPieceCount and MaxPieceCount bound the number of pieces the original
// data is split into. MaxPieceCount is a soft guideline: larger values still
// work correctly, they are simply unconventional for a GF(2^8) coding
// vector, whose coefficients already span the field's full byte range.
const (
	MinPieceCount = 2
	MaxPieceCount = 256
)

// Sentinel error values for the geometry/padding taxonomy. They are declared
// with github.com/pkg/errors so callers can wrap them with call-site
// context while still matching them with errors.Is.
var (
	ErrInvalidPieceCount = errors.New("piece: n outside allowed range [2, 256]")
	ErrInvalidDataLength = errors.New("piece: data length must be >= 1")
	ErrMalformedPadding  = errors.New("piece: no sentinel byte found while unpadding")
)

// Geometry fixes the shape every component downstream of a given (data
// length, piece count) pair agrees on: how many pieces, how large each
// piece's symbol block is, and therefore how large a coded piece is.
type Geometry struct {
	N         int
	PieceSize int
}

// NewGeometry computes the piece geometry for an original data length of
// dataLen bytes split into n pieces: piece_size = ceil((dataLen+1) / n),
// the "+1" reserving room for the padding sentinel after the data.
func NewGeometry(dataLen, n int) (Geometry, error) {
	if n < MinPieceCount {
		return Geometry{}, errors.Wrapf(ErrInvalidPieceCount, "n=%d", n)
	}
	if dataLen < 1 {
		return Geometry{}, errors.Wrapf(ErrInvalidDataLength, "dataLen=%d", dataLen)
	}
	pieceSize := (dataLen + 1 + n - 1) / n
	if pieceSize < 1 {
		return Geometry{}, errors.Wrapf(ErrInvalidDataLength, "derived piece_size=%d for dataLen=%d n=%d", pieceSize, dataLen, n)
	}
	return Geometry{N: n, PieceSize: pieceSize}, nil
}

// CodedPieceSize returns n + piece_size, the length of every coded piece
// produced or consumed under this geometry.
func (g Geometry) CodedPieceSize() int {
	return g.N + g.PieceSize
}

// PaddedSize returns n * piece_size, the size of the padded working buffer.
func (g Geometry) PaddedSize() int {
	return g.N * g.PieceSize
}

// Pad returns a new buffer of size g.PaddedSize() containing data, a
// sentinel byte, and zero filler. The caller guarantees len(data) is the
// dataLen used to derive g.
func Pad(data []byte, g Geometry) []byte {
	buf := make([]byte, g.PaddedSize())
	n := copy(buf, data)
	buf[n] = sentinel
	return buf
}

// OriginalPiece returns the i-th original piece (a slice into the padded
// buffer, not a copy) under geometry g.
func OriginalPiece(padded []byte, g Geometry, i int) []byte {
	return padded[i*g.PieceSize : (i+1)*g.PieceSize]
}

// Unpad reverses Pad: given the concatenation of all n recovered symbol
// blocks (n*piece_size bytes, i.e. g.PaddedSize()), it scans from the tail
// for the sentinel byte and returns everything strictly before it.
//
// Pad leaves at most n-1 zero bytes after the sentinel, so the scan covers
// the last max(piece_size, n) bytes. If no non-zero byte is found within
// them, or the first non-zero byte found isn't the sentinel, padding is
// malformed.
func Unpad(padded []byte, g Geometry) ([]byte, error) {
	window := g.PieceSize
	if g.N > window {
		window = g.N
	}
	limit := len(padded) - window
	if limit < 0 {
		limit = 0
	}
	for i := len(padded) - 1; i >= limit; i-- {
		if padded[i] == 0 {
			continue
		}
		if padded[i] != sentinel {
			return nil, errors.Wrapf(ErrMalformedPadding, "byte 0x%02x at offset %d is not the sentinel", padded[i], i)
		}
		return padded[:i], nil
	}
	return nil, errors.Wrapf(ErrMalformedPadding, "no non-zero byte within last %d bytes", window)
}
