// Package output renders game state as a board diagram, FEN or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/game"
)

// emptySquare marks a vacant square in the board diagram.
const emptySquare = '.'

// BoardString renders the engine's board, rank 8 at the top. White pieces
// are uppercase FEN letters, black pieces lowercase.
func BoardString(e *engine.Engine, coordinates bool) string {
	var sb strings.Builder
	for rank := chess.MaxCoord; rank >= chess.MinCoord; rank-- {
		if coordinates {
			sb.WriteByte(byte(chess.RankBase + rank))
			sb.WriteByte(' ')
		}
		for file := chess.MinCoord; file <= chess.MaxCoord; file++ {
			if file > chess.MinCoord {
				sb.WriteByte(' ')
			}
			if p, ok := e.PieceAt(chess.Sq(file, rank)); ok {
				sb.WriteByte(engine.PieceLetter(p.Kind, p.Colour))
			} else {
				sb.WriteByte(emptySquare)
			}
		}
		sb.WriteByte('\n')
	}
	if coordinates {
		sb.WriteString("  ")
		for file := chess.MinCoord; file <= chess.MaxCoord; file++ {
			if file > chess.MinCoord {
				sb.WriteByte(' ')
			}
			sb.WriteByte(byte(chess.FileBase + file))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// StatusLine summarises whose turn it is and the game status.
func StatusLine(s *game.Session) string {
	switch s.Status() {
	case game.StatusCheckmate:
		return fmt.Sprintf("checkmate, %s wins", s.Winner())
	case game.StatusStalemate:
		return "stalemate"
	case game.StatusCheck:
		return fmt.Sprintf("%s to move, in check", s.Turn())
	default:
		return fmt.Sprintf("%s to move", s.Turn())
	}
}

// WriteBoard writes the board diagram followed by the status line.
func WriteBoard(w io.Writer, s *game.Session, coordinates bool) error {
	_, err := fmt.Fprintf(w, "%s%s\n", BoardString(s.Engine(), coordinates), StatusLine(s))
	return err
}

// WriteMoves writes the destinations of candidate moves on one line, marking captures with "x".
func WriteMoves(w io.Writer, from chess.Square, moves []engine.CandidateMove) error {
	names := make([]string, 0, len(moves))
	for _, m := range moves {
		if m.IsCapture() {
			names = append(names, "x"+m.To.String())
		} else {
			names = append(names, m.To.String())
		}
	}
	_, err := fmt.Fprintf(w, "%s: %s\n", from, strings.Join(names, " "))
	return err
}

// WriteDivide writes one "move: nodes" line per root move and the total.
func WriteDivide(w io.Writer, entries []engine.DivideEntry) error {
	var total uint64
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s: %d\n", e.Move, e.Nodes); err != nil {
			return err
		}
		total += e.Nodes
	}
	_, err := fmt.Fprintf(w, "\nNodes searched: %d\n", total)
	return err
}
