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

package piece

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeometrySplitsDataAcrossPieces(t *testing.T) {
	// 16 data bytes plus the padding sentinel split across 4 pieces:
	// piece_size = ceil(17/4) = 5.
	g, err := NewGeometry(16, 4)
	require.NoError(t, err)
	assert.Equal(t, 5, g.PieceSize)
	assert.Equal(t, 20, g.PaddedSize())
	assert.Equal(t, 9, g.CodedPieceSize())
}

func TestNewGeometrySinglePaddingByteFillsWholePiece(t *testing.T) {
	// A single data byte plus its sentinel exactly fills a 1-byte piece
	// when split across 2 pieces.
	g, err := NewGeometry(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, g.PieceSize)
}

func TestNewGeometryRejectsBadInputs(t *testing.T) {
	_, err := NewGeometry(10, 1)
	assert.True(t, errors.Is(err, ErrInvalidPieceCount))

	_, err = NewGeometry(0, 4)
	assert.True(t, errors.Is(err, ErrInvalidDataLength))
}

func TestPadUnpadRoundTripS1(t *testing.T) {
	data := []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F}
	g, err := NewGeometry(len(data), 4)
	require.NoError(t, err)

	padded := Pad(data, g)
	want := append(append([]byte{}, data...), 0x01, 0x00, 0x00, 0x00)
	assert.Equal(t, want, padded)

	recovered, err := Unpad(padded, g)
	require.NoError(t, err)
	assert.Equal(t, data, recovered)
}

func TestPadUnpadRoundTripS2(t *testing.T) {
	data := []byte{0xAA}
	g, err := NewGeometry(len(data), 2)
	require.NoError(t, err)

	padded := Pad(data, g)
	assert.Equal(t, []byte{0xAA, 0x01}, padded)

	recovered, err := Unpad(padded, g)
	require.NoError(t, err)
	assert.Equal(t, data, recovered)
}

func TestUnpadRejectsSentinelLessTail(t *testing.T) {
	g := Geometry{N: 4, PieceSize: 2}
	padded := make([]byte, g.PaddedSize())
	_, err := Unpad(padded, g)
	assert.True(t, errors.Is(err, ErrMalformedPadding))
}

func TestOriginalPieceSlicesPaddedBuffer(t *testing.T) {
	data := []byte("hello world!!")
	g, err := NewGeometry(len(data), 2)
	require.NoError(t, err)
	padded := Pad(data, g)

	p0 := OriginalPiece(padded, g, 0)
	p1 := OriginalPiece(padded, g, 1)
	assert.Equal(t, padded[:g.PieceSize], p0)
	assert.Equal(t, padded[g.PieceSize:2*g.PieceSize], p1)
}
