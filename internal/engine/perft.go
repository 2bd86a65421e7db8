package engine

import (
	"sort"

	"github.com/lgbarn/chessboard-go/internal/chess"
)

// Move is a candidate move together with the square it starts from.
type Move struct {
	From chess.Square `json:"from"`
	CandidateMove
}

// String returns the move in long algebraic form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// AllMoves returns every legal move of a colour, in file-major order of the moving pieces.
func (p *Position) AllMoves(colour chess.Colour) []Move {
	var moves []Move
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			o := p.squares[file][rank]
			if o.Empty() || o.Colour != colour {
				continue
			}
			from := chess.Sq(file, rank)
			for _, m := range p.Moves(from, false) {
				moves = append(moves, Move{From: from, CandidateMove: m})
			}
		}
	}
	return moves
}

// Play applies a move for move-tree walks: a pawn reaching the last rank is
// promoted to a queen, which the engine itself leaves to the caller.
func (p Position) Play(m Move) Position {
	mover := p.At(m.From)
	next := p.Apply(m.From, m.CandidateMove)
	if mover.Kind == chess.Pawn && m.To.Rank == chess.PromotionRank(mover.Colour) {
		next = next.withKind(m.To, chess.Queen)
	}
	return next
}

// Perft counts the leaf nodes of the legal move tree of the given depth,
// with colour to move at the root.
func Perft(p Position, colour chess.Colour, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := p.AllMoves(colour)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += Perft(p.Play(m), colour.Opposite(), depth-1)
	}
	return nodes
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  Move   `json:"move"`
	Nodes uint64 `json:"nodes"`
}

// Divide returns the perft count below each root move, sorted by move text.
func Divide(p Position, colour chess.Colour, depth int) []DivideEntry {
	if depth < 1 {
		return nil
	}
	var entries []DivideEntry
	for _, m := range p.AllMoves(colour) {
		entries = append(entries, DivideEntry{
			Move:  m,
			Nodes: Perft(p.Play(m), colour.Opposite(), depth-1),
		})
	}
	SortDivide(entries)
	return entries
}

// SortDivide orders divide entries by move text.
func SortDivide(entries []DivideEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Move.String() < entries[j].Move.String()
	})
}
