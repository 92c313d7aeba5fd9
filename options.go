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

// codingOptions holds the functional-option state shared by Encoder and
// Recoder, grounded on klauspost/reedsolomon's Option/options pattern
// (reedsolomon/options.go).
type codingOptions struct {
	workers int
	scratch []byte
}

func defaultCodingOptions() codingOptions {
	return codingOptions{workers: 1}
}

// EncoderOption configures an Encoder at construction time.
type EncoderOption func(*codingOptions)

// RecoderOption configures a Recoder at construction time.
type RecoderOption func(*codingOptions)

// WithEncoderWorkers enables fork-join parallel MAC accumulation across the
// given number of worker goroutines. Values <= 1 disable parallelism (the
// default).
func WithEncoderWorkers(n int) EncoderOption {
	return func(o *codingOptions) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithEncoderScratch lets a caller supply a reusable buffer of exactly
// CodedPieceSize() bytes. Code writes into it in place of allocating a
// fresh buffer on every call, as long as its length still matches; a
// mismatched or nil buffer falls back to allocating. CodeWithBuf always
// writes into the buffer its caller passes.
func WithEncoderScratch(buf []byte) EncoderOption {
	return func(o *codingOptions) {
		o.scratch = buf
	}
}

// WithRecoderWorkers is WithEncoderWorkers for a Recoder.
func WithRecoderWorkers(n int) RecoderOption {
	return func(o *codingOptions) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithRecoderScratch is WithEncoderScratch for a Recoder.
func WithRecoderScratch(buf []byte) RecoderOption {
	return func(o *codingOptions) {
		o.scratch = buf
	}
}
