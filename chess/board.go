// Package chess implements the rules of a single game of chess with a
// simplified move notation. It performs no I/O and is not safe for concurrent
// mutation; the owner of a Board must serialise access to it.
package chess

// Piece piece.
type Piece struct {
	Kind  PieceKind
	Color Color
}

// Symbol is the unicode glyph of the piece.
func (piece Piece) Symbol() rune {
	if piece.Color == White {
		return valueToPieceWhite[piece.Kind]
	}
	return valueToPieceBlack[piece.Kind]
}

// Letter is the FEN letter of the piece, upper case for white.
func (piece Piece) Letter() rune {
	letter := kindToLetter[piece.Kind]
	if piece.Color == Black {
		return letter - 'A' + 'a'
	}
	return letter
}

// Square is an optional piece.
type Square struct {
	Piece
	Occupied bool
}

func occupied(kind PieceKind, color Color) Square {
	return Square{Piece: Piece{Kind: kind, Color: color}, Occupied: true}
}

// Position is a (row, column) pair. Row 0 is rank 8, column 0 is file a.
type Position struct {
	Row, Col int
}

// Valid reports whether the position lies on the board.
func (pos Position) Valid() bool {
	return pos.Row >= 0 && pos.Row < 8 && pos.Col >= 0 && pos.Col < 8
}

func (pos Position) offset(d direction) Position {
	return Position{Row: pos.Row + d.row, Col: pos.Col + d.col}
}

// Move is a source and destination pair.
type Move struct {
	From, To Position
}

// CastlingRights only ever go from true to false.
type CastlingRights struct {
	WhiteKing, WhiteQueen bool
	BlackKing, BlackQueen bool
}

func (rights CastlingRights) sides(color Color) (kingside, queenside bool) {
	if color == White {
		return rights.WhiteKing, rights.WhiteQueen
	}
	return rights.BlackKing, rights.BlackQueen
}

func (rights *CastlingRights) revokeColor(color Color) {
	if color == White {
		rights.WhiteKing, rights.WhiteQueen = false, false
	} else {
		rights.BlackKing, rights.BlackQueen = false, false
	}
}

// revokeSquare drops the right tied to the rook originally standing on pos.
func (rights *CastlingRights) revokeSquare(pos Position) {
	switch pos {
	case Position{7, 7}:
		rights.WhiteKing = false
	case Position{7, 0}:
		rights.WhiteQueen = false
	case Position{0, 7}:
		rights.BlackKing = false
	case Position{0, 0}:
		rights.BlackQueen = false
	}
}

// Board is the state of one game. Use NewBoard; the zero value is an empty
// board and is only useful as a decoding target.
type Board struct {
	squares   [8][8]Square
	turn      Color
	state     GameState
	history   []string
	castling  CastlingRights
	enPassant Position
	hasEP     bool
}

// NewBoard returns the standard starting position with white to move.
func NewBoard() *Board {
	board := &Board{
		turn:     White,
		state:    Playing,
		history:  make([]string, 0, 64),
		castling: CastlingRights{true, true, true, true},
	}
	for col, kind := range backRank {
		board.squares[0][col] = occupied(kind, Black)
		board.squares[1][col] = occupied(Pawn, Black)
		board.squares[6][col] = occupied(Pawn, White)
		board.squares[7][col] = occupied(kind, White)
	}
	return board
}

// Get returns the piece on pos. Positions off the board are empty.
func (board *Board) Get(pos Position) (Piece, bool) {
	if !pos.Valid() {
		return Piece{}, false
	}
	square := board.squares[pos.Row][pos.Col]
	return square.Piece, square.Occupied
}

func (board *Board) empty(pos Position) bool {
	_, ok := board.Get(pos)
	return !ok
}

func (board *Board) set(pos Position, square Square) {
	board.squares[pos.Row][pos.Col] = square
}

// Turn is the side to move.
func (board *Board) Turn() Color {
	return board.turn
}

// State state.
func (board *Board) State() GameState {
	return board.state
}

// MoveHistory returns a copy of the notation of every move played.
func (board *Board) MoveHistory() []string {
	history := make([]string, len(board.history))
	copy(history, board.history)
	return history
}

// Castling castling.
func (board *Board) Castling() CastlingRights {
	return board.castling
}

// EnPassant returns the square a pawn may capture into on this move only.
func (board *Board) EnPassant() (Position, bool) {
	return board.enPassant, board.hasEP
}

// Clone returns a deep copy.
func (board *Board) Clone() *Board {
	clone := *board
	clone.history = board.MoveHistory()
	return &clone
}

// Pieces counts the pieces of color on the board.
func (board *Board) Pieces(color Color) int {
	count := 0
	for _, row := range board.squares {
		for _, square := range row {
			if square.Occupied && square.Color == color {
				count++
			}
		}
	}
	return count
}
