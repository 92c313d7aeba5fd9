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

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/itzmeanjan/rlnc-sub000"
)

var decodeCommand = cli.Command{
	Name:  "decode",
	Usage: "reassemble original data from whatever coded pieces are found in a directory",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "in", Usage: "directory of coded piece files"},
		cli.StringFlag{Name: "out", Usage: "file to write the recovered data into"},
		cli.IntFlag{Name: "pieces,n", Usage: "original piece count, as chosen at encode time"},
		cli.IntFlag{Name: "piece-size", Usage: "piece_size, as reported by rlncdemo encode"},
	},
	Action: func(c *cli.Context) error {
		in := c.String("in")
		out := c.String("out")
		n := c.Int("pieces")
		pieceSize := c.Int("piece-size")
		if in == "" || out == "" || n == 0 || pieceSize == 0 {
			return errors.New("decode: -in, -out, -pieces and -piece-size are all required")
		}

		dec := rlnc.NewDecoder(n, pieceSize)
		pieces, err := readPieces(in, dec.CodedPieceSize())
		if err != nil {
			return err
		}

		log.Println("found", len(pieces), "coded pieces in", in)

		useful := 0
		for i, p := range pieces {
			ok, err := dec.AddPiece(p)
			if err != nil {
				return errors.Wrapf(err, "add piece %d", i)
			}
			if ok {
				useful++
			}
			if dec.IsComplete() {
				break
			}
		}

		log.Println("rank:", dec.Rank(), "/", n, "useful pieces ingested:", useful)
		if !dec.IsComplete() {
			color.Red("decode incomplete: rank %d of %d, feed more coded pieces", dec.Rank(), n)
			return errors.New("decode: insufficient rank")
		}

		data, err := dec.IntoData()
		if err != nil {
			return errors.Wrap(err, "reassemble data")
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return errors.Wrapf(err, "write %s", out)
		}

		color.Green("recovered %d bytes into %s", len(data), out)
		return nil
	},
}
