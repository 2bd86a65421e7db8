package engine

import (
	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// LegalMoves returns the candidate moves of a piece in generation order.
// With skipCheckFilter the moves are not checked for exposing the mover's
// own king; attack detection uses that form.
func (e *Engine) LegalMoves(id PieceID, skipCheckFilter bool) ([]CandidateMove, error) {
	p, ok := e.store.Get(id)
	if !ok {
		return nil, errors.Wrapf(errors.ErrPieceNotFound, "legal moves of piece %d", id)
	}
	pos := e.Position()
	return pos.Moves(p.Square, skipCheckFilter), nil
}

// Attackers returns the enemy pieces whose unfiltered moves reach the target's square.
func (e *Engine) Attackers(id PieceID) ([]PieceID, error) {
	p, ok := e.store.Get(id)
	if !ok {
		return nil, errors.Wrapf(errors.ErrPieceNotFound, "attackers of piece %d", id)
	}
	pos := e.Position()
	return pos.Attackers(p.Square, p.Colour), nil
}

// InCheck reports whether the colour's king is attacked. A colour with no
// king on the board is not in check.
func (e *Engine) InCheck(colour chess.Colour) bool {
	king, ok := e.FindKing(colour)
	if !ok {
		return false
	}
	attackers, err := e.Attackers(king)
	return err == nil && len(attackers) > 0
}

// IsCheckmated reports whether the king is attacked, cannot move, and no
// piece of its colour has a legal move. Unknown handles are never checkmated.
func (e *Engine) IsCheckmated(king PieceID) bool {
	p, ok := e.store.Get(king)
	if !ok {
		return false
	}
	pos := e.Position()
	return pos.IsCheckmated(p.Square)
}

// IsStalemated reports whether the king is not attacked and no piece of its
// colour, the king included, has a legal move.
func (e *Engine) IsStalemated(king PieceID) bool {
	p, ok := e.store.Get(king)
	if !ok {
		return false
	}
	pos := e.Position()
	return pos.IsStalemated(p.Square)
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func (e *Engine) HasLegalMoves(colour chess.Colour) bool {
	pos := e.Position()
	return pos.HasLegalMoves(colour)
}
