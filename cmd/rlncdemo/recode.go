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

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/itzmeanjan/rlnc-sub000"
	rlncrand "github.com/itzmeanjan/rlnc-sub000/rand"
)

var recodeCommand = cli.Command{
	Name:  "recode",
	Usage: "take coded pieces a relay received and emit further coded pieces, without decoding",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "in", Usage: "directory of received coded piece files"},
		cli.StringFlag{Name: "out", Usage: "directory to write recoded pieces into"},
		cli.IntFlag{Name: "pieces,n", Usage: "original piece count, as chosen at encode time"},
		cli.IntFlag{Name: "piece-size", Usage: "piece_size, as reported by rlncdemo encode"},
		cli.IntFlag{Name: "count,c", Value: 4, Usage: "number of recoded pieces to emit"},
		cli.IntFlag{Name: "workers", Value: 1, Usage: "worker goroutines for the fork-join MAC accumulation"},
	},
	Action: func(c *cli.Context) error {
		in := c.String("in")
		out := c.String("out")
		n := c.Int("pieces")
		pieceSize := c.Int("piece-size")
		if in == "" || out == "" || n == 0 || pieceSize == 0 {
			return errors.New("recode: -in, -out, -pieces and -piece-size are all required")
		}

		probe := rlnc.NewDecoder(n, pieceSize)
		received, err := readPieces(in, probe.CodedPieceSize())
		if err != nil {
			return err
		}

		rec, err := rlnc.NewRecoder(received, n, pieceSize, rlnc.WithRecoderWorkers(c.Int("workers")))
		if err != nil {
			return errors.Wrap(err, "construct recoder")
		}

		log.Println("recoding from", rec.M(), "received pieces, emitting", c.Int("count"))

		src := rlncrand.CryptoSource{}
		for i := 0; i < c.Int("count"); i++ {
			p, err := rec.Recode(src)
			if err != nil {
				return errors.Wrapf(err, "recode piece %d", i)
			}
			if err := writePiece(out, i, p); err != nil {
				return err
			}
		}
		return nil
	},
}
