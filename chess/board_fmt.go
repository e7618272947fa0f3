package chess

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrFormat is wrapped by every decoding error in this package.
var ErrFormat = errors.New("invalid format")

func (pos Position) String() string {
	if !pos.Valid() {
		return fmt.Sprintf("(%d,%d)", pos.Row, pos.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+pos.Col, 8-pos.Row)
}

// ParsePosition parses an algebraic square such as "e4".
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Position{}, fmt.Errorf("%w: square %q", ErrFormat, s)
	}
	return Position{Row: 8 - int(s[1]-'0'), Col: int(s[0] - 'a')}, nil
}

func (pos Position) MarshalJSON() ([]byte, error) {
	return json.Marshal(pos.String())
}

func (pos *Position) UnmarshalJSON(bytes []byte) error {
	var s string
	if err := json.Unmarshal(bytes, &s); err != nil {
		return err
	}
	p, err := ParsePosition(s)
	if err != nil {
		return err
	}
	*pos = p
	return nil
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseMove parses the coordinate form "e2e4".
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return Move{}, fmt.Errorf("%w: move %q", ErrFormat, s)
	}
	from, err := ParsePosition(s[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParsePosition(s[2:])
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}

func (m Move) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Move) UnmarshalJSON(bytes []byte) error {
	var s string
	if err := json.Unmarshal(bytes, &s); err != nil {
		return err
	}
	move, err := ParseMove(s)
	if err != nil {
		return err
	}
	*m = move
	return nil
}

func (color Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(color.String())
}

func (color *Color) UnmarshalJSON(bytes []byte) error {
	var s string
	if err := json.Unmarshal(bytes, &s); err != nil {
		return err
	}
	switch s {
	case "white":
		*color = White
	case "black":
		*color = Black
	default:
		return fmt.Errorf("%w: color %q", ErrFormat, s)
	}
	return nil
}

func (state GameState) MarshalJSON() ([]byte, error) {
	return json.Marshal(state.String())
}

func (state *GameState) UnmarshalJSON(bytes []byte) error {
	var s string
	if err := json.Unmarshal(bytes, &s); err != nil {
		return err
	}
	for value, name := range stateNames {
		if name == s {
			*state = value
			return nil
		}
	}
	return fmt.Errorf("%w: state %q", ErrFormat, s)
}

type boardJSON struct {
	Squares     []string
	Turn        Color
	State       GameState
	MoveHistory []string
	Castling    CastlingRights
	EnPassant   *Position
}

// rows renders the grid as 8 strings, rank 8 first, '.' for empty squares.
func (board *Board) rows() []string {
	rows := make([]string, 0, 8)
	for _, row := range board.squares {
		var sb strings.Builder
		for _, square := range row {
			if square.Occupied {
				sb.WriteRune(square.Letter())
			} else {
				sb.WriteByte('.')
			}
		}
		rows = append(rows, sb.String())
	}
	return rows
}

func (board Board) MarshalJSON() ([]byte, error) {
	message := boardJSON{
		Squares:     board.rows(),
		Turn:        board.turn,
		State:       board.state,
		MoveHistory: board.MoveHistory(),
		Castling:    board.castling,
	}
	if board.hasEP {
		ep := board.enPassant
		message.EnPassant = &ep
	}
	return json.Marshal(message)
}

// UnmarshalJSON checks the shape of the encoded board but not that it is
// reachable by play.
func (board *Board) UnmarshalJSON(bytes []byte) error {
	var message boardJSON
	if err := json.Unmarshal(bytes, &message); err != nil {
		return err
	}
	if len(message.Squares) != 8 {
		return fmt.Errorf("%w: board is not length 8: %d", ErrFormat, len(message.Squares))
	}
	var decoded Board
	kings := map[Color]int{}
	for row, line := range message.Squares {
		if len(line) != 8 {
			return fmt.Errorf("%w: row %d is not length 8: %d", ErrFormat, row, len(line))
		}
		for col, letter := range line {
			if letter == '.' {
				continue
			}
			color := White
			if letter >= 'a' && letter <= 'z' {
				color = Black
				letter = letter - 'a' + 'A'
			}
			kind, ok := letterToKind[letter]
			if !ok {
				return fmt.Errorf("%w: unknown piece %q at %s", ErrFormat, line[col], Position{row, col})
			}
			if kind == King {
				kings[color]++
			}
			decoded.squares[row][col] = occupied(kind, color)
		}
	}
	if kings[White] != 1 || kings[Black] != 1 {
		return fmt.Errorf("%w: want one king per side, got %d white %d black", ErrFormat, kings[White], kings[Black])
	}
	decoded.turn = message.Turn
	decoded.state = message.State
	decoded.history = message.MoveHistory
	if decoded.history == nil {
		decoded.history = []string{}
	}
	decoded.castling = message.Castling
	if message.EnPassant != nil {
		decoded.enPassant = *message.EnPassant
		decoded.hasEP = true
	}
	*board = decoded
	return nil
}

// Value stores the board as its JSON text.
func (board Board) Value() (driver.Value, error) {
	bytes, err := board.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

func (board *Board) Scan(cell interface{}) error {
	switch cell := cell.(type) {
	case string:
		return board.UnmarshalJSON([]byte(cell))
	case []byte:
		return board.UnmarshalJSON(cell)
	default:
		return fmt.Errorf("%w: scanning %#v", ErrFormat, cell)
	}
}

func (board *Board) String() string {
	var sb strings.Builder
	for row, line := range board.rows() {
		fmt.Fprintf(&sb, "%d %s\n", 8-row, line)
	}
	sb.WriteString("  abcdefgh\n")
	return sb.String()
}
