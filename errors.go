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
)

// Sentinel errors for the encoder/recoder/decoder taxonomy. They are
// declared with github.com/pkg/errors so call sites can wrap them with
// context via errors.Wrap while remaining comparable with errors.Is.
var (
	// ErrInvalidPieceCount re-exports piece.ErrInvalidPieceCount for callers
	// that only import this package.
	ErrInvalidPieceCount = piece.ErrInvalidPieceCount
	// ErrInvalidDataLength re-exports piece.ErrInvalidDataLength.
	ErrInvalidDataLength = piece.ErrInvalidDataLength
	// ErrMalformedPadding re-exports piece.ErrMalformedPadding.
	ErrMalformedPadding = piece.ErrMalformedPadding

	ErrInvalidPieceLength        = errors.New("rlnc: buffer has the wrong coded-piece length")
	ErrInvalidCodingVectorLength = errors.New("rlnc: explicit coding vector has the wrong length")
	ErrEmptyRecoderInput         = errors.New("rlnc: recoder constructed with zero received pieces")
	ErrDecoderAlreadyFull        = errors.New("rlnc: add_piece called after rank reached n")
	ErrNotYetComplete            = errors.New("rlnc: into_data called before rank reached n")
)
