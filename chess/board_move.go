package chess

import "fmt"

// MakeMove plays from -> to for the side to move. It returns false, leaving
// the board untouched, when the move is not in LegalMoves(from).
func (board *Board) MakeMove(from, to Position) bool {
	piece, ok := board.Get(from)
	if !ok || piece.Color != board.turn || !to.Valid() {
		return false
	}
	if !contains(board.LegalMoves(from), to) {
		return false
	}

	notation := board.notation(from, to)

	if piece.Kind == Pawn && board.hasEP && to == board.enPassant {
		board.set(Position{Row: from.Row, Col: to.Col}, Square{})
	}

	board.hasEP = false
	if piece.Kind == Pawn && abs(from.Row-to.Row) == 2 {
		board.enPassant = Position{Row: (from.Row + to.Row) / 2, Col: from.Col}
		board.hasEP = true
	}

	if piece.Kind == King && abs(from.Col-to.Col) == 2 {
		if to.Col == 6 {
			board.relocate(Position{from.Row, 7}, Position{from.Row, 5})
		} else {
			board.relocate(Position{from.Row, 0}, Position{from.Row, 3})
		}
	}

	if piece.Kind == King {
		board.castling.revokeColor(piece.Color)
	}
	board.castling.revokeSquare(from)
	board.castling.revokeSquare(to)

	board.relocate(from, to)

	if piece.Kind == Pawn && to.Row == piece.Color.Opposite().homeRow() {
		board.set(to, occupied(Queen, piece.Color))
	}

	board.history = append(board.history, notation)
	board.turn = board.turn.Opposite()
	board.updateState()
	return true
}

// Play is MakeMove for a Move value.
func (board *Board) Play(move Move) bool {
	return board.MakeMove(move.From, move.To)
}

func (board *Board) updateState() {
	hasMoves := board.hasLegalMove(board.turn)
	check := board.InCheck(board.turn)
	switch {
	case check && hasMoves:
		board.state = Check
	case check:
		board.state = Checkmate
	case hasMoves:
		board.state = Playing
	default:
		board.state = Stalemate
	}
}

// notation renders from -> to against the position before the move: piece
// letter (none for pawns), "x" when the destination is occupied, then the
// destination square.
func (board *Board) notation(from, to Position) string {
	piece, ok := board.Get(from)
	if !ok {
		return fmt.Sprintf("%s→%s", from, to)
	}
	letter := ""
	if piece.Kind != Pawn {
		letter = string(kindToLetter[piece.Kind])
	}
	capture := ""
	if !board.empty(to) {
		capture = "x"
	}
	return letter + capture + to.String()
}

func contains(positions []Position, pos Position) bool {
	for _, p := range positions {
		if p == pos {
			return true
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
