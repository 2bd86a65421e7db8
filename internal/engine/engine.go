// Package engine implements the chessboard rules engine: the piece store, the
// move history, legal move generation, attack detection and the checkmate and
// stalemate tests.
//
// An Engine is not safe for concurrent use. Callers embedding it in a
// concurrent host must serialize access, one game per Engine.
package engine

import (
	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// backRankOrder is the starting order of the pieces on each back rank, file a to h.
var backRankOrder = [chess.BoardSize]chess.Kind{
	chess.Rook, chess.Knight, chess.Bishop, chess.King,
	chess.Queen, chess.Bishop, chess.Knight, chess.Rook,
}

// Engine owns a PieceStore and the move history.
type Engine struct {
	store   *PieceStore
	history []MoveRecord
}

// New creates an engine holding the standard starting position.
func New() *Engine {
	e := NewEmpty()
	e.Reset()
	return e
}

// NewEmpty creates an engine with no pieces and no history.
func NewEmpty() *Engine {
	return &Engine{store: NewPieceStore()}
}

// Reset clears the board and history and sets up the starting position.
func (e *Engine) Reset() {
	e.Clear()
	for file := 0; file < chess.BoardSize; file++ {
		e.mustAdd(chess.Pawn, chess.White, chess.Sq(file, chess.PawnStartRank(chess.White)))
		e.mustAdd(chess.Pawn, chess.Black, chess.Sq(file, chess.PawnStartRank(chess.Black)))
		e.mustAdd(backRankOrder[file], chess.White, chess.Sq(file, chess.BackRank(chess.White)))
		e.mustAdd(backRankOrder[file], chess.Black, chess.Sq(file, chess.BackRank(chess.Black)))
	}
}

// mustAdd adds a piece to a square known to be empty.
func (e *Engine) mustAdd(kind chess.Kind, colour chess.Colour, sq chess.Square) {
	if _, err := e.store.Add(kind, colour, sq); err != nil {
		panic(err)
	}
}

// Clear removes every piece and empties the history.
func (e *Engine) Clear() {
	e.store.Clear()
	e.history = nil
}

// AddPiece creates a piece on an empty square.
func (e *Engine) AddPiece(kind chess.Kind, colour chess.Colour, sq chess.Square) (PieceID, error) {
	return e.store.Add(kind, colour, sq)
}

// RemovePiece removes a piece from the board. It reports whether the piece
// was live; removing it again is a no-op.
func (e *Engine) RemovePiece(id PieceID) bool {
	return e.store.Remove(id)
}

// MovePiece records the move and relocates the piece. The destination must
// be empty: a captured piece is removed by an explicit RemovePiece first.
func (e *Engine) MovePiece(id PieceID, to chess.Square) error {
	p, ok := e.store.Get(id)
	if !ok {
		return errors.Wrapf(errors.ErrPieceNotFound, "move piece %d", id)
	}
	if err := e.store.Relocate(id, to); err != nil {
		return err
	}
	e.history = append(e.history, MoveRecord{
		Piece:  id,
		Kind:   p.Kind,
		Colour: p.Colour,
		From:   p.Square,
		To:     to,
	})
	return nil
}

// PromotePiece changes a piece's kind in place. Identity and square are unchanged.
func (e *Engine) PromotePiece(id PieceID, kind chess.Kind) error {
	return e.store.SetKind(id, kind)
}

// Piece returns the live piece with the given handle.
func (e *Engine) Piece(id PieceID) (Piece, bool) {
	return e.store.Get(id)
}

// PieceAt returns the piece on sq, if any.
func (e *Engine) PieceAt(sq chess.Square) (Piece, bool) {
	id := e.store.At(sq)
	if id == NoPiece {
		return Piece{}, false
	}
	return e.store.Get(id)
}

// Pieces returns every live piece in insertion order.
func (e *Engine) Pieces() []Piece {
	return e.store.Pieces()
}

// PiecesOf returns the live pieces of one colour in insertion order.
func (e *Engine) PiecesOf(colour chess.Colour) []Piece {
	var out []Piece
	for _, p := range e.store.Pieces() {
		if p.Colour == colour {
			out = append(out, p)
		}
	}
	return out
}

// FindKing returns the first king of the colour in insertion order.
// A board may transiently hold no such king; callers must check ok.
func (e *Engine) FindKing(colour chess.Colour) (PieceID, bool) {
	for _, p := range e.store.Pieces() {
		if p.Kind == chess.King && p.Colour == colour {
			return p.ID, true
		}
	}
	return NoPiece, false
}

// History returns a copy of the move history, oldest first.
func (e *Engine) History() []MoveRecord {
	out := make([]MoveRecord, len(e.history))
	copy(out, e.history)
	return out
}

// LastMove returns the most recent move record.
func (e *Engine) LastMove() (MoveRecord, bool) {
	if len(e.history) == 0 {
		return MoveRecord{}, false
	}
	return e.history[len(e.history)-1], true
}

// Position returns an immutable snapshot of the board and latest move.
func (e *Engine) Position() Position {
	var pos Position
	for _, p := range e.store.Pieces() {
		pos.place(p.Square, Occupant{ID: p.ID, Kind: p.Kind, Colour: p.Colour})
	}
	pos.last, pos.hasLast = e.LastMove()
	return pos
}
