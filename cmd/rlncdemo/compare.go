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
	"bytes"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/klauspost/reedsolomon"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/itzmeanjan/rlnc-sub000"
	rlncrand "github.com/itzmeanjan/rlnc-sub000/rand"
)

// compareCommand runs the same file through rlnc's rateless coding and
// klauspost/reedsolomon's fixed-rate erasure coding, reporting how long each
// takes to encode and reconstruct under a simulated piece loss. rlnc never
// needs to know in advance which pieces were lost; reedsolomon does, via
// nil-ing out the missing shards before Reconstruct.
var compareCommand = cli.Command{
	Name:  "compare",
	Usage: "compare rlnc against klauspost/reedsolomon on the same input",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "in", Usage: "input file"},
		cli.IntFlag{Name: "pieces,n", Value: 10, Usage: "data shards / original pieces"},
		cli.IntFlag{Name: "parity,p", Value: 3, Usage: "reedsolomon parity shards"},
		cli.IntFlag{Name: "lose,l", Value: 3, Usage: "shards to simulate losing, must be <= parity for reedsolomon to recover"},
	},
	Action: func(c *cli.Context) error {
		in := c.String("in")
		if in == "" {
			return errors.New("compare: -in is required")
		}
		data, err := os.ReadFile(in)
		if err != nil {
			return errors.Wrapf(err, "read %s", in)
		}

		n := c.Int("pieces")
		parity := c.Int("parity")
		lose := c.Int("lose")

		rlncElapsed, err := runRLNC(data, n, lose)
		if err != nil {
			return errors.Wrap(err, "rlnc run")
		}

		rsElapsed, err := runReedSolomon(data, n, parity, lose)
		if err != nil {
			return errors.Wrap(err, "reedsolomon run")
		}

		log.Println("input bytes:", len(data))
		color.Cyan("rlnc:         %v (rateless, %d original pieces, tolerates any loss pattern)", rlncElapsed, n)
		color.Cyan("reedsolomon:  %v (%d data + %d parity shards, tolerates up to %d lost)", rsElapsed, n, parity, parity)
		return nil
	},
}

func runRLNC(data []byte, n, lose int) (time.Duration, error) {
	start := time.Now()

	enc, err := rlnc.NewEncoder(data, n)
	if err != nil {
		return 0, errors.Wrap(err, "construct encoder")
	}

	src := rlncrand.CryptoSource{}
	dec := rlnc.NewDecoder(enc.N(), enc.PieceSize())

	// simulate losing the first `lose` coded pieces by simply not feeding
	// them to the decoder; rlnc keeps coding fresh pieces until rank == n.
	for i := 0; i < lose; i++ {
		if _, err := enc.Code(src); err != nil {
			return 0, errors.Wrap(err, "discard lost piece")
		}
	}

	for !dec.IsComplete() {
		p, err := enc.Code(src)
		if err != nil {
			return 0, errors.Wrap(err, "code piece")
		}
		if _, err := dec.AddPiece(p); err != nil {
			return 0, errors.Wrap(err, "add piece")
		}
	}

	got, err := dec.IntoData()
	if err != nil {
		return 0, errors.Wrap(err, "reassemble")
	}
	if !bytes.Equal(got, data) {
		return 0, errors.New("rlnc: round trip mismatch")
	}

	return time.Since(start), nil
}

func runReedSolomon(data []byte, dataShards, parityShards, lose int) (time.Duration, error) {
	if lose > parityShards {
		return 0, errors.Errorf("reedsolomon: cannot recover from losing %d shards with only %d parity", lose, parityShards)
	}

	start := time.Now()

	enc, err := reedsolomon.New(dataShards, parityShards)
	if err != nil {
		return 0, errors.Wrap(err, "construct encoder")
	}

	shards, err := enc.Split(data)
	if err != nil {
		return 0, errors.Wrap(err, "split")
	}
	if err := enc.Encode(shards); err != nil {
		return 0, errors.Wrap(err, "encode parity")
	}

	for i := 0; i < lose; i++ {
		shards[i] = nil
	}
	if err := enc.Reconstruct(shards); err != nil {
		return 0, errors.Wrap(err, "reconstruct")
	}

	var buf bytes.Buffer
	if err := enc.Join(&buf, shards, len(data)); err != nil {
		return 0, errors.Wrap(err, "join")
	}
	if !bytes.Equal(buf.Bytes(), data) {
		return 0, errors.New("reedsolomon: round trip mismatch")
	}

	return time.Since(start), nil
}
