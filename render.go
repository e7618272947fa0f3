package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/maplefeline/slowchess/chess"
)

var (
	lightSquare = color.New(color.BgWhite, color.FgBlack)
	darkSquare  = color.New(color.BgGreen, color.FgBlack)
	moveSquare  = color.New(color.BgYellow, color.FgBlack)
	statusLine  = color.New(color.Bold)
)

// renderBoard draws rank 8 at the top, marking the squares of last.
func renderBoard(w io.Writer, board *chess.Board, last *chess.Move) {
	for row := 0; row < 8; row++ {
		fmt.Fprintf(w, "%d ", 8-row)
		for col := 0; col < 8; col++ {
			pos := chess.Position{Row: row, Col: col}
			cell := " "
			if piece, ok := board.Get(pos); ok {
				cell = string(piece.Symbol())
			}
			paint := lightSquare
			if (row+col)%2 == 1 {
				paint = darkSquare
			}
			if last != nil && (last.From == pos || last.To == pos) {
				paint = moveSquare
			}
			paint.Fprint(w, " "+cell+" ")
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "   a  b  c  d  e  f  g  h")
	statusLine.Fprintln(w, status(board))
}

func status(board *chess.Board) string {
	history := board.MoveHistory()
	last := ""
	if len(history) > 0 {
		last = fmt.Sprintf(" after %d.%s", (len(history)+1)/2, history[len(history)-1])
	}
	switch board.State() {
	case chess.Checkmate:
		return fmt.Sprintf("checkmate, %s wins%s", board.Turn().Opposite(), last)
	case chess.Stalemate:
		return "stalemate" + last
	case chess.Check:
		return fmt.Sprintf("%s to move, in check%s", board.Turn(), last)
	default:
		return fmt.Sprintf("%s to move%s", board.Turn(), last)
	}
}
