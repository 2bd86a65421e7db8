package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

// Direction sets, listed in generation order.
var (
	straightDirs = [][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	diagonalDirs = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirs    = [][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	knightJumps  = [][2]int{{1, 2}, {2, 1}, {-1, 2}, {-2, 1}, {1, -2}, {2, -1}, {-1, -2}, {-2, -1}}
)

// pseudoMoves generates the moves of the piece on from without the
// self-check filter. Attack detection is built on this, so it must never
// consult check state itself.
func (p *Position) pseudoMoves(from chess.Square) []CandidateMove {
	piece := p.At(from)
	if piece.Empty() {
		return nil
	}

	switch piece.Kind {
	case chess.Pawn:
		return p.pawnMoves(from, piece.Colour)
	case chess.Knight:
		return p.stepMoves(from, piece.Colour, knightJumps)
	case chess.Bishop:
		return p.slidingMoves(from, piece.Colour, diagonalDirs)
	case chess.Rook:
		return p.slidingMoves(from, piece.Colour, straightDirs)
	case chess.Queen:
		return p.slidingMoves(from, piece.Colour, queenDirs)
	case chess.King:
		return p.stepMoves(from, piece.Colour, queenDirs)
	}
	return nil
}

// pawnMoves generates pushes, diagonal captures and en passant.
func (p *Position) pawnMoves(from chess.Square, colour chess.Colour) []CandidateMove {
	var moves []CandidateMove
	dir := chess.ColourOffset(colour)

	// Forward
	one := from.Offset(0, dir)
	if one.Valid() && p.At(one).Empty() {
		moves = append(moves, CandidateMove{To: one})

		// Double push from the starting rank
		two := from.Offset(0, 2*dir)
		if from.Rank == chess.PawnStartRank(colour) && two.Valid() && p.At(two).Empty() {
			moves = append(moves, CandidateMove{To: two})
		}
	}

	// Diagonal captures
	for _, df := range []int{-1, 1} {
		diag := from.Offset(df, dir)
		if !diag.Valid() {
			continue
		}
		if target := p.At(diag); !target.Empty() && target.Colour != colour {
			moves = append(moves, CandidateMove{To: diag, Capture: target.ID})
		}
	}

	if m, ok := p.enPassant(from, colour); ok {
		moves = append(moves, m)
	}
	return moves
}

// enPassant returns the en passant capture available to the pawn on from.
// It is available only straight after an adjacent enemy pawn advanced two
// squares to this pawn's rank.
func (p *Position) enPassant(from chess.Square, colour chess.Colour) (CandidateMove, bool) {
	last, ok := p.LastMove()
	if !ok || !last.isDoublePawnPush() {
		return CandidateMove{}, false
	}
	if last.To.Rank != from.Rank || abs(last.To.File-from.File) != 1 {
		return CandidateMove{}, false
	}
	// The record may be stale; the pawn must still stand where it landed.
	victim := p.At(last.To)
	if victim.ID != last.Piece || victim.Colour == colour {
		return CandidateMove{}, false
	}
	to := chess.Sq(last.To.File, from.Rank+chess.ColourOffset(colour))
	if !to.Valid() {
		return CandidateMove{}, false
	}
	return CandidateMove{To: to, Capture: victim.ID}, true
}

// slidingMoves ray-casts along each direction until the edge, an own piece,
// or an enemy piece (which is captured).
func (p *Position) slidingMoves(from chess.Square, colour chess.Colour, dirs [][2]int) []CandidateMove {
	var moves []CandidateMove
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.Valid() {
			target := p.At(to)
			if !target.Empty() {
				if target.Colour != colour {
					moves = append(moves, CandidateMove{To: to, Capture: target.ID})
				}
				break // Blocked
			}
			moves = append(moves, CandidateMove{To: to})
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// stepMoves generates single-step moves for knights and kings.
func (p *Position) stepMoves(from chess.Square, colour chess.Colour, offsets [][2]int) []CandidateMove {
	var moves []CandidateMove
	for _, offset := range offsets {
		to := from.Offset(offset[0], offset[1])
		if !to.Valid() {
			continue
		}
		target := p.At(to)
		switch {
		case target.Empty():
			moves = append(moves, CandidateMove{To: to})
		case target.Colour != colour:
			moves = append(moves, CandidateMove{To: to, Capture: target.ID})
		}
	}
	return moves
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
