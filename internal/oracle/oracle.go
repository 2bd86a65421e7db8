// Package oracle counts legal moves with github.com/notnil/chess, an
// independent move generator, so the engine's results can be cross-checked.
//
// The engine does not castle and leaves promotion choice to its caller, so
// the oracle drops castling moves and counts a promotion once (as a queen).
package oracle

import (
	"fmt"
	"sort"

	"github.com/notnil/chess"

	"github.com/lgbarn/chessboard-go/internal/errors"
)

// position parses a FEN string into a notnil position.
func position(fen string) (*chess.Position, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
	}
	return chess.NewGame(opt).Position(), nil
}

// supported reports whether the engine generates an equivalent of m.
func supported(m *chess.Move) bool {
	if m.HasTag(chess.KingSideCastle) || m.HasTag(chess.QueenSideCastle) {
		return false
	}
	return m.Promo() == chess.NoPieceType || m.Promo() == chess.Queen
}

// moves returns the supported legal moves of a position.
func moves(pos *chess.Position) []*chess.Move {
	var out []*chess.Move
	for _, m := range pos.ValidMoves() {
		if supported(m) {
			out = append(out, m)
		}
	}
	return out
}

// perft counts leaf nodes below pos.
func perft(pos *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	ms := moves(pos)
	if depth == 1 {
		return uint64(len(ms))
	}
	var nodes uint64
	for _, m := range ms {
		nodes += perft(pos.Update(m), depth-1)
	}
	return nodes
}

// Perft counts the leaf nodes of the move tree of the given depth from fen.
func Perft(fen string, depth int) (uint64, error) {
	pos, err := position(fen)
	if err != nil {
		return 0, err
	}
	return perft(pos, depth), nil
}

// Divide returns the node count below each root move, keyed by long
// algebraic move text without a promotion suffix (e.g. "e2e4").
func Divide(fen string, depth int) (map[string]uint64, error) {
	pos, err := position(fen)
	if err != nil {
		return nil, err
	}
	out := make(map[string]uint64)
	if depth < 1 {
		return out, nil
	}
	for _, m := range moves(pos) {
		out[moveText(m)] = perft(pos.Update(m), depth-1)
	}
	return out, nil
}

// LegalMoves returns the sorted long algebraic text of the root moves.
func LegalMoves(fen string) ([]string, error) {
	pos, err := position(fen)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, m := range moves(pos) {
		out = append(out, moveText(m))
	}
	sort.Strings(out)
	return out, nil
}

// moveText renders a move as from and to squares.
func moveText(m *chess.Move) string {
	return m.S1().String() + m.S2().String()
}

// Replay plays UCI moves from fen and returns the resulting piece placement,
// the first field of a FEN string.
func Replay(fen string, uciMoves []string) (string, error) {
	pos, err := position(fen)
	if err != nil {
		return "", err
	}
	for i, text := range uciMoves {
		m, err := chess.UCINotation{}.Decode(pos, text)
		if err != nil {
			return "", fmt.Errorf("move %d %q: %v: %w", i+1, text, err, errors.ErrIllegalMove)
		}
		legal, ok := validMove(pos, m)
		if !ok {
			return "", fmt.Errorf("move %d %q: %w", i+1, text, errors.ErrIllegalMove)
		}
		pos = pos.Update(legal)
	}
	return pos.Board().String(), nil
}

// validMove finds the legal move of pos matching the squares and promotion of m.
func validMove(pos *chess.Position, m *chess.Move) (*chess.Move, bool) {
	for _, v := range pos.ValidMoves() {
		if v.S1() == m.S1() && v.S2() == m.S2() && v.Promo() == m.Promo() {
			return v, true
		}
	}
	return nil, false
}
