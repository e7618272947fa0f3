package chess

import (
	"encoding/json"
	"errors"

	. "gopkg.in/check.v1"
)

type FmtSuite struct{}

var _ = Suite(&FmtSuite{})

func (s *FmtSuite) TestParsePosition(c *C) {
	pos, err := ParsePosition("a8")
	c.Assert(err, IsNil)
	c.Assert(pos, Equals, Position{Row: 0, Col: 0})
	pos, err = ParsePosition("h1")
	c.Assert(err, IsNil)
	c.Assert(pos, Equals, Position{Row: 7, Col: 7})
	c.Assert(pos.String(), Equals, "h1")

	for _, bad := range []string{"", "e", "e9", "i1", "e0", "E4", "e44"} {
		_, err := ParsePosition(bad)
		c.Assert(errors.Is(err, ErrFormat), Equals, true, Commentf("%s", bad))
	}
	c.Assert(Position{Row: 9, Col: -1}.String(), Equals, "(9,-1)")
}

func (s *FmtSuite) TestParseMove(c *C) {
	move, err := ParseMove("g1f3")
	c.Assert(err, IsNil)
	c.Assert(move, Equals, Move{From: Position{7, 6}, To: Position{5, 5}})
	c.Assert(move.String(), Equals, "g1f3")
	_, err = ParseMove("g1f")
	c.Assert(err, ErrorMatches, `invalid format: move "g1f"`)
	_, err = ParseMove("g1z3")
	c.Assert(err, ErrorMatches, `invalid format: square "z3"`)
}

func (s *FmtSuite) TestMoveJSON(c *C) {
	bytes, err := json.Marshal([]Move{{From: Position{6, 4}, To: Position{4, 4}}})
	c.Assert(err, IsNil)
	c.Assert(string(bytes), Equals, `["e2e4"]`)
	var moves []Move
	c.Assert(json.Unmarshal(bytes, &moves), IsNil)
	c.Assert(moves, DeepEquals, []Move{{From: Position{6, 4}, To: Position{4, 4}}})
}

func (s *FmtSuite) TestBoardJSON(c *C) {
	board := NewBoard()
	play(c, board, "e2e4", "d7d5")
	bytes, err := json.Marshal(board)
	c.Assert(err, IsNil)
	c.Assert(string(bytes), Equals, `{"Squares":["rnbqkbnr","ppp.pppp","........","...p....","....P...","........","PPPP.PPP","RNBQKBNR"],`+
		`"Turn":"white","State":"playing","MoveHistory":["e4","d5"],`+
		`"Castling":{"WhiteKing":true,"WhiteQueen":true,"BlackKing":true,"BlackQueen":true},"EnPassant":"d6"}`)

	var decoded Board
	c.Assert(json.Unmarshal(bytes, &decoded), IsNil)
	c.Assert(&decoded, deepDiff, board)
	// The decoded board keeps playing by the same rules.
	c.Assert(decoded.LegalMoves(Position{4, 4}), DeepEquals, []Position{{3, 4}, {3, 3}})
}

func (s *FmtSuite) TestBoardValueScan(c *C) {
	board := NewBoard()
	play(c, board, "g1f3")
	value, err := board.Value()
	c.Assert(err, IsNil)
	text, ok := value.(string)
	c.Assert(ok, Equals, true)

	var scanned Board
	c.Assert(scanned.Scan(text), IsNil)
	c.Assert(&scanned, deepDiff, board)
	var scannedBytes Board
	c.Assert(scannedBytes.Scan([]byte(text)), IsNil)
	c.Assert(&scannedBytes, deepDiff, board)
	c.Assert(scanned.Scan(42), ErrorMatches, "invalid format: scanning 42")
}

func (s *FmtSuite) TestBoardJSONErrors(c *C) {
	var board Board
	c.Assert(json.Unmarshal([]byte(`{"Squares":["........"]}`), &board), ErrorMatches, "invalid format: board is not length 8: 1")
	rows := `["rnbqkbnr","pppppppp","........","........","........","........","PPPPPPPP","RNBQKBN"]`
	c.Assert(json.Unmarshal([]byte(`{"Squares":`+rows+`}`), &board), ErrorMatches, "invalid format: row 7 is not length 8: 7")
	rows = `["rnbqkbnr","pppppppp","........","...x....","........","........","PPPPPPPP","RNBQKBNR"]`
	c.Assert(json.Unmarshal([]byte(`{"Squares":`+rows+`}`), &board), ErrorMatches, `invalid format: unknown piece 'x' at d5`)
	rows = `["rnbq.bnr","pppppppp","........","........","........","........","PPPPPPPP","RNBQKBNR"]`
	c.Assert(json.Unmarshal([]byte(`{"Squares":`+rows+`}`), &board), ErrorMatches, "invalid format: want one king per side, got 1 white 0 black")
	rows = `["rnbqkbnr","pppppppp","........","........","........","........","PPPPPPPP","RNBQKBNR"]`
	c.Assert(json.Unmarshal([]byte(`{"Squares":`+rows+`,"Turn":"red"}`), &board), ErrorMatches, `invalid format: color "red"`)
}

func (s *FmtSuite) TestBoardString(c *C) {
	c.Assert(NewBoard().String(), Equals, ""+
		"8 rnbqkbnr\n"+
		"7 pppppppp\n"+
		"6 ........\n"+
		"5 ........\n"+
		"4 ........\n"+
		"3 ........\n"+
		"2 PPPPPPPP\n"+
		"1 RNBQKBNR\n"+
		"  abcdefgh\n")
}

func (s *FmtSuite) TestSymbols(c *C) {
	c.Assert(Piece{Kind: Knight, Color: White}.Symbol(), Equals, '♘')
	c.Assert(Piece{Kind: Knight, Color: Black}.Symbol(), Equals, '♞')
	c.Assert(Piece{Kind: Queen, Color: Black}.Letter(), Equals, 'q')
	c.Assert(Queen.Value(), Equals, 900)
	c.Assert(King.Value(), Equals, 0)
	c.Assert(White.Opposite(), Equals, Black)
	c.Assert(Black.Opposite(), Equals, White)
	c.Assert(Checkmate.Terminal(), Equals, true)
	c.Assert(Check.Terminal(), Equals, false)
}
