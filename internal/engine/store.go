package engine

import (
	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// PieceID is a stable handle to a piece. Handles are never reused by the
// store that issued them, so a handle to a removed piece stays distinct
// from every live piece.
type PieceID int

// NoPiece is the zero handle; it never names a piece.
const NoPiece PieceID = 0

// Piece is a snapshot of a live piece.
type Piece struct {
	ID     PieceID      `json:"id"`
	Kind   chess.Kind   `json:"kind"`
	Colour chess.Colour `json:"colour"`
	Square chess.Square `json:"square"`
}

// String returns a short description such as "white knight on g1".
func (p Piece) String() string {
	return p.Colour.String() + " " + p.Kind.String() + " on " + p.Square.String()
}

// pieceRecord is an arena slot.
type pieceRecord struct {
	Piece
	live bool
}

// PieceStore is the set of live pieces and the squares they stand on.
// It holds at most one piece per square and iterates in insertion order.
// It knows nothing about chess rules.
type PieceStore struct {
	// base is the number of handles issued before the arena was last cleared.
	base    PieceID
	records []pieceRecord
	order   []PieceID
	grid    [chess.BoardSize][chess.BoardSize]PieceID
}

// NewPieceStore creates an empty store.
func NewPieceStore() *PieceStore {
	return &PieceStore{}
}

// record returns the arena slot for id, or nil for stale or foreign handles.
func (s *PieceStore) record(id PieceID) *pieceRecord {
	idx := int(id-s.base) - 1
	if idx < 0 || idx >= len(s.records) {
		return nil
	}
	return &s.records[idx]
}

// Add places a new piece on an empty square and returns its handle.
func (s *PieceStore) Add(kind chess.Kind, colour chess.Colour, sq chess.Square) (PieceID, error) {
	if kind < chess.Pawn || kind > chess.King {
		return NoPiece, errors.Wrapf(errors.ErrInvalidKind, "add %v", kind)
	}
	if !colour.Valid() {
		return NoPiece, errors.Wrapf(errors.ErrInvalidColour, "add colour %d", int(colour))
	}
	if !sq.Valid() {
		return NoPiece, errors.Wrapf(errors.ErrOutOfBounds, "add %v", sq)
	}
	if s.grid[sq.File][sq.Rank] != NoPiece {
		return NoPiece, errors.Wrapf(errors.ErrSquareOccupied, "add %v %v on %v", colour, kind, sq)
	}

	id := s.base + PieceID(len(s.records)) + 1
	s.records = append(s.records, pieceRecord{
		Piece: Piece{ID: id, Kind: kind, Colour: colour, Square: sq},
		live:  true,
	})
	s.order = append(s.order, id)
	s.grid[sq.File][sq.Rank] = id
	return id, nil
}

// Remove deletes a piece. It reports whether a live piece was removed;
// removing an absent piece is a no-op.
func (s *PieceStore) Remove(id PieceID) bool {
	rec := s.record(id)
	if rec == nil || !rec.live {
		return false
	}
	rec.live = false
	s.grid[rec.Square.File][rec.Square.Rank] = NoPiece
	for i, other := range s.order {
		if other == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the live piece with the given handle.
func (s *PieceStore) Get(id PieceID) (Piece, bool) {
	rec := s.record(id)
	if rec == nil || !rec.live {
		return Piece{}, false
	}
	return rec.Piece, true
}

// At returns the handle of the piece on sq, or NoPiece.
func (s *PieceStore) At(sq chess.Square) PieceID {
	if !sq.Valid() {
		return NoPiece
	}
	return s.grid[sq.File][sq.Rank]
}

// Relocate moves a live piece to an empty square.
func (s *PieceStore) Relocate(id PieceID, to chess.Square) error {
	rec := s.record(id)
	if rec == nil || !rec.live {
		return errors.Wrapf(errors.ErrPieceNotFound, "relocate piece %d", id)
	}
	if !to.Valid() {
		return errors.Wrapf(errors.ErrOutOfBounds, "relocate %v to %v", rec.Piece, to)
	}
	if occupant := s.grid[to.File][to.Rank]; occupant != NoPiece && occupant != id {
		return errors.Wrapf(errors.ErrSquareOccupied, "relocate %v to %v", rec.Piece, to)
	}
	s.grid[rec.Square.File][rec.Square.Rank] = NoPiece
	s.grid[to.File][to.Rank] = id
	rec.Square = to
	return nil
}

// SetKind changes the kind of a live piece in place.
func (s *PieceStore) SetKind(id PieceID, kind chess.Kind) error {
	rec := s.record(id)
	if rec == nil || !rec.live {
		return errors.Wrapf(errors.ErrPieceNotFound, "set kind of piece %d", id)
	}
	if kind < chess.Pawn || kind > chess.King {
		return errors.Wrapf(errors.ErrInvalidKind, "set kind of %v to %v", rec.Piece, kind)
	}
	rec.Kind = kind
	return nil
}

// Len returns the number of live pieces.
func (s *PieceStore) Len() int {
	return len(s.order)
}

// Pieces returns the live pieces in insertion order.
func (s *PieceStore) Pieces() []Piece {
	out := make([]Piece, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.record(id).Piece)
	}
	return out
}

// Clear removes every piece. Handles issued before Clear stay invalid forever.
func (s *PieceStore) Clear() {
	s.base += PieceID(len(s.records))
	s.records = s.records[:0]
	s.order = s.order[:0]
	s.grid = [chess.BoardSize][chess.BoardSize]PieceID{}
}
