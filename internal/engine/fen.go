package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// InitialFEN is the FEN string for the engine's starting position. The king
// starts on the d-file and the queen on the e-file for both colours, and
// castling is never available.
const InitialFEN = "rnbkqbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBKQBNR w - - 0 1"

// ConvertFENCharToKind converts a FEN character to a piece kind.
func ConvertFENCharToKind(c byte) chess.Kind {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.NoKind
	}
}

// PieceLetter returns the FEN letter for a piece: uppercase for White.
func PieceLetter(kind chess.Kind, colour chess.Colour) byte {
	letter := kind.Letter()
	if colour == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewEngineFromFEN creates an engine from a FEN string and returns it with
// the side to move. Castling and clock fields are accepted and ignored. An
// en passant field becomes a synthetic last move record so the capture is
// generated exactly as after a real two-square push.
func NewEngineFromFEN(fen string) (*Engine, chess.Colour, error) {
	e := NewEmpty()
	toMove, err := e.LoadFEN(fen)
	if err != nil {
		return nil, chess.White, err
	}
	return e, toMove, nil
}

// LoadFEN replaces the engine state with the position described by fen.
// On error the engine is left unchanged.
func (e *Engine) LoadFEN(fen string) (chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	fresh := NewEmpty()
	fresh.store.base = e.store.base + PieceID(len(e.store.records))

	if err := parsePiecePositions(fresh, parts[0]); err != nil {
		return chess.White, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return chess.White, err
	}

	if err := parseEnPassant(fresh, parts); err != nil {
		return chess.White, err
	}

	e.store = fresh.store
	e.history = fresh.history
	return toMove, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(e *Engine, positions string) error {
	rows := strings.Split(positions, "/")
	if len(rows) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(rows), errors.ErrInvalidFEN)
	}

	for i, row := range rows {
		rank := chess.MaxCoord - i
		file := 0
		for _, c := range row {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				kind := ConvertFENCharToKind(byte(c))
				if kind == chess.NoKind {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if file > chess.MaxCoord {
					return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				if _, err := e.store.Add(kind, colour, chess.Sq(file, rank)); err != nil {
					return fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
				}
				file++
			}
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// parseEnPassant turns the en passant target square into the two-square
// pawn push that produced it.
func parseEnPassant(e *Engine, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	target, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fmt.Errorf("en passant square %q: %w", parts[3], errors.ErrInvalidFEN)
	}

	var pusher chess.Colour
	switch target.Rank {
	case 2:
		pusher = chess.White
	case 5:
		pusher = chess.Black
	default:
		return fmt.Errorf("en passant square %s on wrong rank: %w", target, errors.ErrInvalidFEN)
	}

	dir := chess.ColourOffset(pusher)
	to := target.Offset(0, dir)
	pawn, ok := e.PieceAt(to)
	if !ok || pawn.Kind != chess.Pawn || pawn.Colour != pusher {
		return fmt.Errorf("no pawn behind en passant square %s: %w", target, errors.ErrInvalidFEN)
	}
	e.history = append(e.history, MoveRecord{
		Piece:  pawn.ID,
		Kind:   chess.Pawn,
		Colour: pusher,
		From:   target.Offset(0, -dir),
		To:     to,
	})
	return nil
}

// FEN converts the engine state to a FEN string. The side to move is
// supplied by the caller since the engine does not track turns.
func (e *Engine) FEN(toMove chess.Colour) string {
	var sb strings.Builder

	writePiecePositions(&sb, e)
	sb.WriteByte(' ')
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteString(" - ")
	writeEnPassant(&sb, e, toMove)
	fmt.Fprintf(&sb, " 0 %d", 1+len(e.history)/2)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, e *Engine) {
	for rank := chess.MaxCoord; rank >= chess.MinCoord; rank-- {
		emptyCount := 0
		for file := chess.MinCoord; file <= chess.MaxCoord; file++ {
			p, ok := e.PieceAt(chess.Sq(file, rank))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(PieceLetter(p.Kind, p.Colour))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > chess.MinCoord {
			sb.WriteByte('/')
		}
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, e *Engine, toMove chess.Colour) {
	last, ok := e.LastMove()
	if !ok || !last.isDoublePawnPush() || last.Colour == toMove {
		sb.WriteByte('-')
		return
	}
	sb.WriteString(chess.Sq(last.To.File, (last.From.Rank+last.To.Rank)/2).String())
}
