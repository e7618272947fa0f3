package chess

// PieceMoves returns the pseudo-legal destinations of the piece on pos. It
// does not consider whether the move leaves the mover's king attacked.
func (board *Board) PieceMoves(pos Position) []Position {
	piece, ok := board.Get(pos)
	if !ok {
		return nil
	}
	moves := make([]Position, 0, 28)
	switch piece.Kind {
	case Pawn:
		moves = board.movesForPawn(moves, piece, pos)
	case Knight:
		moves = board.movesForSteps(moves, piece, pos, knightJumps)
	case King:
		moves = board.movesForSteps(moves, piece, pos, kingSteps)
		moves = board.movesForCastling(moves, piece, pos)
	case Rook:
		moves = board.movesForSlide(moves, piece, pos, rookDirections)
	case Bishop:
		moves = board.movesForSlide(moves, piece, pos, bishopDirections)
	case Queen:
		moves = board.movesForSlide(moves, piece, pos, queenDirections)
	}
	return moves
}

func (board *Board) movesForPawn(moves []Position, piece Piece, start Position) []Position {
	dir := piece.Color.forward()
	one := Position{Row: start.Row + dir, Col: start.Col}
	if one.Valid() && board.empty(one) {
		moves = append(moves, one)
		two := Position{Row: start.Row + 2*dir, Col: start.Col}
		if start.Row == piece.Color.pawnRow() && board.empty(two) {
			moves = append(moves, two)
		}
	}
	for _, dc := range []int{-1, 1} {
		end := Position{Row: start.Row + dir, Col: start.Col + dc}
		if !end.Valid() {
			continue
		}
		if target, ok := board.Get(end); ok && target.Color != piece.Color {
			moves = append(moves, end)
		} else if board.hasEP && board.enPassant == end {
			moves = append(moves, end)
		}
	}
	return moves
}

func (board *Board) movesForSteps(moves []Position, piece Piece, start Position, steps []direction) []Position {
	for _, step := range steps {
		end := start.offset(step)
		if !end.Valid() {
			continue
		}
		if target, ok := board.Get(end); ok && target.Color == piece.Color {
			continue
		}
		moves = append(moves, end)
	}
	return moves
}

// movesForCastling offers the two-square king move when the king is home, the
// right is intact, the path to the rook is clear and neither the king's square
// nor the square it crosses is attacked. The landing square is left to the
// legality filter.
func (board *Board) movesForCastling(moves []Position, piece Piece, start Position) []Position {
	row := piece.Color.homeRow()
	if start != (Position{Row: row, Col: 4}) {
		return moves
	}
	enemy := piece.Color.Opposite()
	kingside, queenside := board.castling.sides(piece.Color)
	if kingside && board.empty(Position{row, 5}) && board.empty(Position{row, 6}) &&
		!board.IsAttacked(start, enemy) && !board.IsAttacked(Position{row, 5}, enemy) {
		moves = append(moves, Position{row, 6})
	}
	if queenside && board.empty(Position{row, 3}) && board.empty(Position{row, 2}) && board.empty(Position{row, 1}) &&
		!board.IsAttacked(start, enemy) && !board.IsAttacked(Position{row, 3}, enemy) {
		moves = append(moves, Position{row, 2})
	}
	return moves
}

func (board *Board) movesForSlide(moves []Position, piece Piece, start Position, directions []direction) []Position {
	for _, dir := range directions {
		for end := start.offset(dir); end.Valid(); end = end.offset(dir) {
			target, ok := board.Get(end)
			if ok {
				if target.Color != piece.Color {
					moves = append(moves, end)
				}
				break
			}
			moves = append(moves, end)
		}
	}
	return moves
}

// LegalMoves returns the destinations the side to move may play from pos. It
// is empty for an empty square, an opponent's piece, an off-board position
// and for every square once the game has ended.
func (board *Board) LegalMoves(pos Position) []Position {
	if board.state.Terminal() {
		return nil
	}
	piece, ok := board.Get(pos)
	if !ok || piece.Color != board.turn {
		return nil
	}
	return board.legalMoves(pos, piece)
}

// legalMoves filters PieceMoves by relocating the piece on a copy of the
// grid and discarding destinations that leave its own king attacked.
func (board *Board) legalMoves(pos Position, piece Piece) []Position {
	candidates := board.PieceMoves(pos)
	moves := candidates[:0]
	for _, to := range candidates {
		test := *board
		test.relocate(pos, to)
		if !test.InCheck(piece.Color) {
			moves = append(moves, to)
		}
	}
	return moves
}

// Moves returns every legal move of the side to move in row-major order of
// the source square.
func (board *Board) Moves() []Move {
	if board.state.Terminal() {
		return nil
	}
	var moves []Move
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			from := Position{Row: row, Col: col}
			for _, to := range board.LegalMoves(from) {
				moves = append(moves, Move{From: from, To: to})
			}
		}
	}
	return moves
}

func (board *Board) hasLegalMove(color Color) bool {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			from := Position{Row: row, Col: col}
			if piece, ok := board.Get(from); ok && piece.Color == color && len(board.legalMoves(from, piece)) > 0 {
				return true
			}
		}
	}
	return false
}

func (board *Board) relocate(from, to Position) {
	board.set(to, board.squares[from.Row][from.Col])
	board.set(from, Square{})
}
