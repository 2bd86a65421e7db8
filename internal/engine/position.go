package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

// Occupant describes the piece standing on a square of a Position.
type Occupant struct {
	ID     PieceID
	Kind   chess.Kind
	Colour chess.Colour
}

// Empty reports whether the occupant is the absence of a piece.
func (o Occupant) Empty() bool {
	return o.ID == NoPiece
}

// MoveRecord is one entry of the move history.
type MoveRecord struct {
	Piece  PieceID      `json:"piece"`
	Kind   chess.Kind   `json:"kind"`
	Colour chess.Colour `json:"colour"`
	From   chess.Square `json:"from"`
	To     chess.Square `json:"to"`
}

// isDoublePawnPush reports whether the record is a two-square pawn advance.
func (r MoveRecord) isDoublePawnPush() bool {
	return r.Kind == chess.Pawn && r.From.File == r.To.File && abs(r.To.Rank-r.From.Rank) == 2
}

// CandidateMove is a destination a piece may move to. Capture names the piece
// removed by the move; for en passant it does not stand on To.
type CandidateMove struct {
	To      chess.Square `json:"to"`
	Capture PieceID      `json:"capture,omitempty"`
}

// IsCapture returns true if the move removes an enemy piece.
func (m CandidateMove) IsCapture() bool {
	return m.Capture != NoPiece
}

// Position is an immutable snapshot of the board plus the latest move
// record. Every method has a value receiver or returns a fresh Position,
// so hypothetical moves never touch the live store and Positions may be
// shared between goroutines.
type Position struct {
	squares [chess.BoardSize][chess.BoardSize]Occupant
	last    MoveRecord
	hasLast bool
}

// At returns the occupant of sq. Off-board squares are empty.
func (p *Position) At(sq chess.Square) Occupant {
	if !sq.Valid() {
		return Occupant{}
	}
	return p.squares[sq.File][sq.Rank]
}

// LastMove returns the most recent move record, if any.
func (p *Position) LastMove() (MoveRecord, bool) {
	return p.last, p.hasLast
}

// place puts an occupant on a square.
func (p *Position) place(sq chess.Square, o Occupant) {
	p.squares[sq.File][sq.Rank] = o
}

// find returns the square of the piece with the given handle.
func (p *Position) find(id PieceID) (chess.Square, bool) {
	if id == NoPiece {
		return chess.Square{}, false
	}
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			if p.squares[file][rank].ID == id {
				return chess.Sq(file, rank), true
			}
		}
	}
	return chess.Square{}, false
}

// KingSquare returns the square of a colour's king. With more than one king
// the earliest placed one (lowest handle) wins, matching Engine.FindKing.
func (p *Position) KingSquare(colour chess.Colour) (chess.Square, bool) {
	var best chess.Square
	bestID := NoPiece
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			o := p.squares[file][rank]
			if o.Empty() || o.Kind != chess.King || o.Colour != colour {
				continue
			}
			if bestID == NoPiece || o.ID < bestID {
				best, bestID = chess.Sq(file, rank), o.ID
			}
		}
	}
	return best, bestID != NoPiece
}

// Apply returns the position after the piece on from makes move m: the
// captured piece (wherever it stands) is removed, the mover relocated, and
// the move recorded as the latest history entry. The receiver is unchanged.
func (p Position) Apply(from chess.Square, m CandidateMove) Position {
	mover := p.At(from)
	if mover.Empty() {
		return p
	}
	if m.IsCapture() {
		if sq, ok := p.find(m.Capture); ok {
			p.place(sq, Occupant{})
		}
	}
	p.place(from, Occupant{})
	p.place(m.To, mover)
	p.last = MoveRecord{Piece: mover.ID, Kind: mover.Kind, Colour: mover.Colour, From: from, To: m.To}
	p.hasLast = true
	return p
}

// withKind returns the position with the piece on sq changed to kind.
func (p Position) withKind(sq chess.Square, kind chess.Kind) Position {
	if o := p.At(sq); !o.Empty() {
		o.Kind = kind
		p.place(sq, o)
	}
	return p
}

// Attackers returns every piece of the other colour whose unfiltered moves
// reach target, in file-major board order. The target square need not be
// occupied; colour names the defending side.
func (p *Position) Attackers(target chess.Square, colour chess.Colour) []PieceID {
	var attackers []PieceID
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			o := p.squares[file][rank]
			if o.Empty() || o.Colour == colour {
				continue
			}
			for _, m := range p.pseudoMoves(chess.Sq(file, rank)) {
				if m.To == target {
					attackers = append(attackers, o.ID)
					break
				}
			}
		}
	}
	return attackers
}

// InCheck reports whether a colour's king is attacked. A side without a king is never in check.
func (p *Position) InCheck(colour chess.Colour) bool {
	king, ok := p.KingSquare(colour)
	if !ok {
		return false
	}
	return len(p.Attackers(king, colour)) > 0
}

// Moves returns the candidate moves of the piece on from. With
// skipCheckFilter the raw moves are returned; otherwise moves that leave
// the mover's own king attacked are dropped.
func (p *Position) Moves(from chess.Square, skipCheckFilter bool) []CandidateMove {
	raw := p.pseudoMoves(from)
	if skipCheckFilter || len(raw) == 0 {
		return raw
	}

	mover := p.At(from)
	colour := mover.Colour
	legal := raw[:0]
	for _, m := range raw {
		next := p.Apply(from, m)
		var exposed bool
		if mover.Kind == chess.King {
			// The king that moved, not whichever king InCheck would pick.
			exposed = len(next.Attackers(m.To, colour)) > 0
		} else {
			exposed = next.InCheck(colour)
		}
		if !exposed {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func (p *Position) HasLegalMoves(colour chess.Colour) bool {
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			o := p.squares[file][rank]
			if o.Empty() || o.Colour != colour {
				continue
			}
			if len(p.Moves(chess.Sq(file, rank), false)) > 0 {
				return true
			}
		}
	}
	return false
}

// IsCheckmated reports whether the king on sq is attacked with no escape
// and no ally able to resolve the check.
func (p *Position) IsCheckmated(sq chess.Square) bool {
	king := p.At(sq)
	if king.Empty() {
		return false
	}
	if len(p.Attackers(sq, king.Colour)) == 0 {
		return false
	}
	if len(p.Moves(sq, false)) > 0 {
		return false
	}
	// Every ally move is already self-check filtered, so any one resolves the check.
	return !p.HasLegalMoves(king.Colour)
}

// IsStalemated reports whether the king on sq is not attacked and its side has no legal move.
func (p *Position) IsStalemated(sq chess.Square) bool {
	king := p.At(sq)
	if king.Empty() {
		return false
	}
	if len(p.Attackers(sq, king.Colour)) > 0 {
		return false
	}
	return !p.HasLegalMoves(king.Colour)
}
