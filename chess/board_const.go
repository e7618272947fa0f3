package chess

// Color is the side a piece belongs to.
type Color uint8

const (
	White Color = iota
	Black
)

// Opposite opposite.
func (color Color) Opposite() Color {
	if color == White {
		return Black
	}
	return White
}

func (color Color) String() string {
	if color == White {
		return "white"
	}
	return "black"
}

// homeRow is the back rank of color.
func (color Color) homeRow() int {
	if color == White {
		return 7
	}
	return 0
}

// forward is the row delta a pawn of color advances by.
func (color Color) forward() int {
	if color == White {
		return -1
	}
	return 1
}

// pawnRow is the row pawns of color start on.
func (color Color) pawnRow() int {
	if color == White {
		return 6
	}
	return 1
}

// PieceKind kind.
type PieceKind uint8

const (
	King PieceKind = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// Value is the material a capture of this kind is worth.
func (kind PieceKind) Value() int {
	switch kind {
	case Queen:
		return 900
	case Rook:
		return 500
	case Bishop, Knight:
		return 300
	case Pawn:
		return 100
	default:
		return 0
	}
}

func (kind PieceKind) String() string {
	return kindNames[kind]
}

var kindNames = map[PieceKind]string{
	King:   "king",
	Queen:  "queen",
	Rook:   "rook",
	Bishop: "bishop",
	Knight: "knight",
	Pawn:   "pawn",
}

var kindToLetter = map[PieceKind]rune{
	King:   'K',
	Queen:  'Q',
	Rook:   'R',
	Bishop: 'B',
	Knight: 'N',
	Pawn:   'P',
}

var letterToKind = map[rune]PieceKind{
	'K': King,
	'Q': Queen,
	'R': Rook,
	'B': Bishop,
	'N': Knight,
	'P': Pawn,
}

var valueToPieceWhite = map[PieceKind]rune{
	King:   '♔',
	Queen:  '♕',
	Rook:   '♖',
	Bishop: '♗',
	Knight: '♘',
	Pawn:   '♙',
}

var valueToPieceBlack = map[PieceKind]rune{
	King:   '♚',
	Queen:  '♛',
	Rook:   '♜',
	Bishop: '♝',
	Knight: '♞',
	Pawn:   '♟',
}

var backRank = [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

type direction struct {
	row, col int
}

var (
	rookDirections   = []direction{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	bishopDirections = []direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirections  = append(append([]direction{}, rookDirections...), bishopDirections...)
	knightJumps      = []direction{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingSteps        = queenDirections
)

// GameState is derived after every move from check status and move availability.
type GameState uint8

const (
	Playing GameState = iota
	Check
	Checkmate
	Stalemate
)

var stateNames = map[GameState]string{
	Playing:   "playing",
	Check:     "check",
	Checkmate: "checkmate",
	Stalemate: "stalemate",
}

func (state GameState) String() string {
	return stateNames[state]
}

// Terminal reports whether no further moves are accepted.
func (state GameState) Terminal() bool {
	return state == Checkmate || state == Stalemate
}
