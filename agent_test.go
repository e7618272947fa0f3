package main

import (
	"encoding/json"

	. "gopkg.in/check.v1"

	"github.com/maplefeline/slowchess/chess"
)

type AgentSuite struct{}

var _ = Suite(&AgentSuite{})

func always(choice int) func(int) int {
	return func(int) int { return choice }
}

func move(c *C, s string) chess.Move {
	m, err := chess.ParseMove(s)
	c.Assert(err, IsNil)
	return m
}

func played(c *C, moves ...string) *chess.Board {
	board := chess.NewBoard()
	for _, m := range moves {
		c.Assert(board.Play(move(c, m)), Equals, true, Commentf("move %s", m))
	}
	return board
}

func decoded(c *C, message string) *chess.Board {
	var board chess.Board
	c.Assert(json.Unmarshal([]byte(message), &board), IsNil)
	return &board
}

func (s *AgentSuite) TestScore(c *C) {
	a := agent{percentile: 100, random: always(0)}
	board := played(c, "e2e4", "d7d5")
	c.Assert(a.score(board, move(c, "e4d5")), Equals, chess.Pawn.Value()+centerBonus)
	c.Assert(a.score(board, move(c, "d2d4")), Equals, centerBonus)
	c.Assert(a.score(board, move(c, "a2a3")), Equals, 0)

	a.random = always(29)
	c.Assert(a.score(board, move(c, "a2a3")), Equals, 29)
}

func (s *AgentSuite) TestScoreEnPassant(c *C) {
	a := agent{percentile: 100, random: always(0)}
	board := played(c, "e2e4", "a7a6", "e4e5", "d7d5")
	c.Assert(a.score(board, move(c, "e5d6")), Equals, chess.Pawn.Value())
	c.Assert(a.score(board, move(c, "e5e6")), Equals, 0)
	m, ok := a.decide(board, maxDifficulty)
	c.Assert(ok, Equals, true)
	c.Assert(m, Equals, move(c, "e5d6"))
}

func (s *AgentSuite) TestDecideTakesMaterial(c *C) {
	a := agent{percentile: 100, random: always(0)}
	m, ok := a.decide(played(c, "e2e4", "d7d5"), maxDifficulty)
	c.Assert(ok, Equals, true)
	c.Assert(m, Equals, move(c, "e4d5"))

	board := decoded(c, `{"Squares":["....k...","........","........","...q.r..","........","....N...","........","....K..."]}`)
	m, ok = a.decide(board, maxDifficulty)
	c.Assert(ok, Equals, true)
	c.Assert(m, Equals, move(c, "e3d5"))
}

func (s *AgentSuite) TestDecidePrefersCenter(c *C) {
	a := agent{percentile: 100, random: always(0)}
	m, ok := a.decide(chess.NewBoard(), maxDifficulty)
	c.Assert(ok, Equals, true)
	c.Assert(m, Equals, move(c, "d2d4"))
}

func (s *AgentSuite) TestDecideBlunders(c *C) {
	a := agent{percentile: 100, random: always(0)}
	for difficulty := minDifficulty; difficulty <= defaultDifficulty; difficulty++ {
		m, ok := a.decide(chess.NewBoard(), difficulty)
		c.Assert(ok, Equals, true)
		c.Assert(m, Equals, move(c, "a2a3"), Commentf("difficulty %d", difficulty))
	}
	for difficulty := defaultDifficulty + 1; difficulty <= maxDifficulty; difficulty++ {
		m, _ := a.decide(chess.NewBoard(), difficulty)
		c.Assert(m, Equals, move(c, "d2d4"), Commentf("difficulty %d", difficulty))
	}
}

func (s *AgentSuite) TestDecidePercentile(c *C) {
	a := agent{percentile: 95, random: lastChoice}
	m, ok := a.decide(chess.NewBoard(), maxDifficulty)
	c.Assert(ok, Equals, true)
	c.Assert(m, Equals, move(c, "e2e4"))

	a.random = always(0)
	m, ok = a.decide(chess.NewBoard(), maxDifficulty)
	c.Assert(ok, Equals, true)
	c.Assert(m, Equals, move(c, "d2d4"))
}

func (s *AgentSuite) TestDecideSingleMoveNeverBlunders(c *C) {
	a := agent{percentile: 100, random: func(n int) int {
		c.Assert(n, Not(Equals), 1)
		return 0
	}}
	board := decoded(c, `{"Squares":["k.......","........","K.......","........","........","........","........",".r......"]}`)
	m, ok := a.decide(board, minDifficulty)
	c.Assert(ok, Equals, true)
	c.Assert(m, Equals, move(c, "a6a5"))
}

func (s *AgentSuite) TestDecideFinishedGame(c *C) {
	a := newAgent(100)
	board := played(c, "f2f3", "e7e5", "g2g4", "d8h4")
	c.Assert(board.State(), Equals, chess.Checkmate)
	_, ok := a.decide(board, maxDifficulty)
	c.Assert(ok, Equals, false)
}

func (s *AgentSuite) TestRandomInt(c *C) {
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		n := randomInt(4)
		c.Assert(n >= 0 && n < 4, Equals, true)
		seen[n] = true
	}
	c.Assert(len(seen), greaterThan, 1)
}

func (s *AgentSuite) TestNewAgent(c *C) {
	a := newAgent(75)
	c.Assert(a.percentile, Equals, 75.0)
	c.Assert(a.random, NotNil)
}
