package main

import (
	"strings"

	"github.com/fatih/color"

	"chessforge/engine"
)

var (
	lightSquare = color.New(color.BgWhite, color.FgBlack)
	darkSquare  = color.New(color.BgHiBlack, color.FgWhite)
)

// renderBoard draws an 8x8 board top-down (rank 8 first), alternating
// light/dark background colors via fatih/color the way daystram-gambit
// pulls in the same library for its own terminal output, since nothing in
// the retrieved corpus prints a colored board directly for us to copy
// verbatim.
func renderBoard(b *engine.Board) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sq := engine.NewSquare(rank, file)
			p := b.PieceAt(sq)
			text := " " + p.String() + " "
			if (rank+file)%2 == 0 {
				sb.WriteString(darkSquare.Sprint(text))
			} else {
				sb.WriteString(lightSquare.Sprint(text))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
