// Package render draws board positions as SVG images.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"chess-core/board"
)

const (
	cellSize = 64
	margin   = 24
)

const (
	lightFill     = "fill:#f0d9b5"
	darkFill      = "fill:#b58863"
	highlightFill = "fill:#cdd26a"
	glyphStyle    = "font-size:44px;text-anchor:middle;font-family:sans-serif"
	labelStyle    = "font-size:14px;text-anchor:middle;font-family:sans-serif;fill:#666"
)

// SVG writes the position as an SVG board, rank 8 on top.
func SVG(w io.Writer, b *board.Board) {
	render(w, b, nil)
}

// SVGWithMove writes the position with the move's source and destination
// squares highlighted.
func SVGWithMove(w io.Writer, b *board.Board, m board.Move) {
	render(w, b, &m)
}

func render(w io.Writer, b *board.Board, highlight *board.Move) {
	size := 8*cellSize + 2*margin
	canvas := svg.New(w)
	canvas.Start(size, size)

	for rank := 7; rank >= 0; rank-- {
		y := margin + (7-rank)*cellSize
		for file := 0; file < 8; file++ {
			sq := board.Square(rank*8 + file)
			x := margin + file*cellSize

			fill := darkFill
			if (rank+file)%2 == 1 {
				fill = lightFill
			}
			if highlight != nil && (sq == highlight.From || sq == highlight.To) {
				fill = highlightFill
			}
			canvas.Rect(x, y, cellSize, cellSize, fill)

			if p := b.PieceAt(sq); p != board.NoPiece {
				canvas.Text(x+cellSize/2, y+cellSize-16, string(p.Glyph()), glyphStyle)
			}
		}
	}

	for file := 0; file < 8; file++ {
		x := margin + file*cellSize + cellSize/2
		canvas.Text(x, margin+8*cellSize+18, string(rune('a'+file)), labelStyle)
	}
	for rank := 0; rank < 8; rank++ {
		y := margin + (7-rank)*cellSize + cellSize/2 + 5
		canvas.Text(margin/2, y, fmt.Sprintf("%d", rank+1), labelStyle)
	}

	canvas.End()
}
