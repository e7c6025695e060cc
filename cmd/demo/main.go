// Command demo decodes a position, prints it, and lists the pseudo-legal
// moves, optionally restricted to a set of piece identities.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"chess-core/board"
	"chess-core/fen"
	"chess-core/render"
)

func main() {
	fenFlag := flag.String("fen", fen.StartPosition, "position text (defaults to initial position)")
	piecesFlag := flag.String("pieces", "", "comma-separated piece letters to generate for (e.g. P,n); empty means all")
	verbose := flag.Bool("verbose", false, "print the board with each move highlighted")
	svgOut := flag.String("svg", "", "write the position as SVG to this file")
	flag.Parse()

	b, err := board.Decode(*fenFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode error: %v\n", err)
		os.Exit(2)
	}

	fmt.Println(b.Draw())

	var moves []board.Move
	if *piecesFlag == "" {
		moves = b.GenerateMoves()
	} else {
		pieces, err := parsePieces(*piecesFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(2)
		}
		moves = b.GenerateMovesFor(pieces...)
	}

	for _, m := range moves {
		fmt.Println(m)
	}
	fmt.Printf("%d moves\n", len(moves))

	if *verbose {
		for _, m := range moves {
			fmt.Println()
			fmt.Println(m)
			fmt.Println(b.DrawWithMove(m))
		}
	}

	if *svgOut != "" {
		f, err := os.Create(*svgOut)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating svg file: %v\n", err)
			os.Exit(2)
		}
		render.SVG(f, b)
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "closing svg file: %v\n", err)
			os.Exit(2)
		}
	}
}

func parsePieces(list string) ([]board.Piece, error) {
	var pieces []board.Piece
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if len(part) != 1 {
			return nil, fmt.Errorf("bad piece letter %q", part)
		}
		p, err := board.PieceFromChar(part[0])
		if err != nil {
			return nil, err
		}
		pieces = append(pieces, p)
	}
	return pieces, nil
}
