package main

import (
	"crypto/rand"
	"math/big"
	"time"

	"github.com/apex/log"
	"github.com/montanaflynn/stats"

	"github.com/maplefeline/slowchess/chess"
)

// agent picks a move for the side to move by scoring every legal move.
type agent struct {
	// percentile widens the choice to every move scoring at or above it;
	// 100 plays the single best move.
	percentile float64
	random     func(n int) int
}

var opponent = newAgent(100)

func newAgent(percentile float64) agent {
	return agent{percentile: percentile, random: randomInt}
}

// blunderChance is the percentage of moves picked at random per difficulty.
var blunderChance = map[int]int{
	1: 40,
	2: 20,
	3: 8,
}

const centerBonus = 20

func randomInt(n int) int {
	choice, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		log.WithError(err).Error("error")
		panic(err)
	}
	return int(choice.Int64())
}

func center(pos chess.Position) bool {
	return (pos.Row == 3 || pos.Row == 4) && (pos.Col == 3 || pos.Col == 4)
}

func enPassant(board *chess.Board, move chess.Move) bool {
	piece, ok := board.Get(move.From)
	target, set := board.EnPassant()
	return ok && set && piece.Kind == chess.Pawn && move.To == target
}

// score is the captured material, a bonus for the four center squares and a
// random tiebreak below 30.
func (a agent) score(board *chess.Board, move chess.Move) int {
	score := 0
	if captured, ok := board.Get(move.To); ok {
		score += captured.Kind.Value()
	} else if enPassant(board, move) {
		score += chess.Pawn.Value()
	}
	if center(move.To) {
		score += centerBonus
	}
	return score + a.random(30)
}

func (a agent) decide(board *chess.Board, difficulty int) (chess.Move, bool) {
	moves := board.Moves()
	if len(moves) == 0 {
		return chess.Move{}, false
	}
	if chance := blunderChance[difficulty]; len(moves) > 1 && a.random(100) < chance {
		return moves[a.random(len(moves))], true
	}
	scores := make([]int, len(moves))
	best := 0
	for i, move := range moves {
		scores[i] = a.score(board, move)
		if scores[i] > scores[best] {
			best = i
		}
	}
	if a.percentile >= 100 {
		return moves[best], true
	}
	percentile, err := stats.Percentile(stats.LoadRawData(scores), a.percentile)
	if err != nil {
		log.WithError(err).WithField("percentile", a.percentile).Error("error")
		return moves[best], true
	}
	choices := make([]chess.Move, 0, len(moves))
	for i, move := range moves {
		if float64(scores[i]) >= percentile {
			choices = append(choices, move)
		}
	}
	if len(choices) == 0 {
		return moves[best], true
	}
	return choices[a.random(len(choices))], true
}

func agentIdle(interval time.Duration) error {
	games, err := store.stale(time.Now().Add(-interval))
	if err != nil {
		return err
	}
	for _, game := range games {
		if _, err := withGame(game.GameID, (*Game).pokeAgent); err != nil {
			return err
		}
	}
	return nil
}
