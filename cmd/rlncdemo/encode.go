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

package main

import (
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/itzmeanjan/rlnc-sub000"
	rlncrand "github.com/itzmeanjan/rlnc-sub000/rand"
)

var encodeCommand = cli.Command{
	Name:  "encode",
	Usage: "split a file into n original pieces and emit coded pieces",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "in", Usage: "input file to encode"},
		cli.StringFlag{Name: "out", Usage: "directory to write coded pieces into"},
		cli.IntFlag{Name: "pieces,n", Value: 8, Usage: "number of original pieces to split the file into"},
		cli.IntFlag{Name: "count,c", Value: 0, Usage: "number of coded pieces to emit, 0 means pieces+4 (a small decode overhead)"},
		cli.IntFlag{Name: "workers", Value: 1, Usage: "worker goroutines for the fork-join MAC accumulation"},
	},
	Action: func(c *cli.Context) error {
		in := c.String("in")
		out := c.String("out")
		if in == "" || out == "" {
			return errors.New("encode: both -in and -out are required")
		}

		data, err := os.ReadFile(in)
		if err != nil {
			return errors.Wrapf(err, "read %s", in)
		}

		n := c.Int("pieces")
		count := c.Int("count")
		if count <= 0 {
			count = n + 4
		}

		enc, err := rlnc.NewEncoder(data, n, rlnc.WithEncoderWorkers(c.Int("workers")))
		if err != nil {
			return errors.Wrap(err, "construct encoder")
		}

		log.Println("input:", in, "bytes:", len(data))
		log.Println("pieces:", enc.N(), "piece_size:", enc.PieceSize(), "coded_piece_size:", enc.CodedPieceSize())
		log.Println("emitting", count, "coded pieces into", out)

		src := rlncrand.CryptoSource{}
		for i := 0; i < count; i++ {
			p, err := enc.Code(src)
			if err != nil {
				return errors.Wrapf(err, "code piece %d", i)
			}
			if err := writePiece(out, i, p); err != nil {
				return err
			}
		}
		return nil
	},
}
