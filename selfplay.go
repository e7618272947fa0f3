package main

import (
	"io"

	"github.com/apex/log"

	"github.com/maplefeline/slowchess/chess"
)

// selfplay lets a play both sides, rendering every position to w, until the
// game ends or maxMoves plies were played.
func selfplay(w io.Writer, a agent, maxMoves, difficulty int) *chess.Board {
	board := chess.NewBoard()
	renderBoard(w, board, nil)
	for ply := 0; ply < maxMoves && !board.State().Terminal(); ply++ {
		move, ok := a.decide(board, difficulty)
		if !ok || !board.Play(move) {
			log.WithField("move", move).Error("agent produced no playable move")
			break
		}
		renderBoard(w, board, &move)
	}
	log.WithField("moves", len(board.MoveHistory())).WithField("state", board.State()).Info("self-play finished")
	return board
}
