package chess

// IsAttacked reports whether any piece of by attacks pos. Pawns and kings
// are expanded here directly so that attack detection never re-enters the
// castling generation in PieceMoves.
func (board *Board) IsAttacked(pos Position, by Color) bool {
	if !pos.Valid() {
		return false
	}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			square := board.squares[row][col]
			if !square.Occupied || square.Color != by {
				continue
			}
			from := Position{Row: row, Col: col}
			switch square.Kind {
			case Pawn:
				if pawnAttacks(from, by, pos) {
					return true
				}
			case King:
				if kingAttacks(from, pos) {
					return true
				}
			default:
				for _, to := range board.PieceMoves(from) {
					if to == pos {
						return true
					}
				}
			}
		}
	}
	return false
}

func pawnAttacks(from Position, color Color, target Position) bool {
	return target.Row == from.Row+color.forward() && (target.Col == from.Col-1 || target.Col == from.Col+1)
}

func kingAttacks(from, target Position) bool {
	dr, dc := target.Row-from.Row, target.Col-from.Col
	return from != target && dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1
}

func (board *Board) findKing(color Color) (Position, bool) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			square := board.squares[row][col]
			if square.Occupied && square.Kind == King && square.Color == color {
				return Position{Row: row, Col: col}, true
			}
		}
	}
	return Position{}, false
}

// InCheck reports whether the king of color is attacked. A board without
// that king is never in check.
func (board *Board) InCheck(color Color) bool {
	king, ok := board.findKing(color)
	return ok && board.IsAttacked(king, color.Opposite())
}
