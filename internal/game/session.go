// Package game runs a two-player game on top of the rules engine.
//
// The engine has no notion of turns or promotion choice; a Session adds
// both. After every move the side to move is evaluated: a checkmated king is
// removed from the board, a stalemate removes both kings, and the game is
// over until it is reset.
package game

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// Status is the state of the side to move.
type Status int

const (
	StatusActive Status = iota
	StatusCheck
	StatusCheckmate
	StatusStalemate
)

var statusNames = []string{"active", "check", "checkmate", "stalemate"}

// String returns the lowercase name of the status.
func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Terminal reports whether no further moves may be played.
func (s Status) Terminal() bool {
	return s == StatusCheckmate || s == StatusStalemate
}

// Outcome describes one played move and the state it left behind.
type Outcome struct {
	Ply       int           `json:"ply"`
	Move      engine.Move   `json:"move"`
	Piece     engine.Piece  `json:"piece"`
	Captured  *engine.Piece `json:"captured,omitempty"`
	Promotion chess.Kind    `json:"promotion,omitempty"`
	Check     bool          `json:"check"`
	Status    Status        `json:"status"`
	Winner    string        `json:"winner,omitempty"`
	Reset     bool          `json:"reset,omitempty"`
}

// Session is one game: an engine, the colour to move and the game status.
// It is not safe for concurrent use.
type Session struct {
	engine    *engine.Engine
	start     string
	turn      chess.Colour
	startTurn chess.Colour
	status    Status
	winner    string
	ply       int
	autoReset bool
	log       io.Writer
}

// Option configures a Session.
type Option func(*Session)

// WithAutoReset makes the session start a new game as soon as one ends.
func WithAutoReset(on bool) Option {
	return func(s *Session) {
		s.autoReset = on
	}
}

// WithLog sets the writer that receives one line per played move.
func WithLog(w io.Writer) Option {
	return func(s *Session) {
		if w != nil {
			s.log = w
		}
	}
}

// New creates a session at the starting position with White to move.
func New(opts ...Option) *Session {
	s := &Session{
		engine: engine.New(),
		start:  engine.InitialFEN,
		log:    io.Discard,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromFEN creates a session from a FEN position. Reset returns to that position.
func NewFromFEN(fen string, opts ...Option) (*Session, error) {
	e, toMove, err := engine.NewEngineFromFEN(fen)
	if err != nil {
		return nil, err
	}
	s := New(opts...)
	s.engine = e
	s.start = fen
	s.turn = toMove
	s.startTurn = toMove
	s.evaluate()
	return s, nil
}

// Engine returns the underlying engine. Callers must not mutate it.
func (s *Session) Engine() *engine.Engine {
	return s.engine
}

// Turn returns the colour to move.
func (s *Session) Turn() chess.Colour {
	return s.turn
}

// Status returns the state of the side to move.
func (s *Session) Status() Status {
	return s.status
}

// Winner returns the winning colour's name after a checkmate, or "".
func (s *Session) Winner() string {
	return s.winner
}

// Ply returns the number of moves played since the last reset.
func (s *Session) Ply() int {
	return s.ply
}

// FEN returns the current position with the colour to move.
func (s *Session) FEN() string {
	return s.engine.FEN(s.turn)
}

// History returns the moves played, oldest first.
func (s *Session) History() []engine.MoveRecord {
	return s.engine.History()
}

// Reset restores the starting position and clears the game status.
func (s *Session) Reset() {
	if s.start == engine.InitialFEN {
		s.engine.Reset()
	} else if _, err := s.engine.LoadFEN(s.start); err != nil {
		// The start position was validated when the session was created.
		panic(err)
	}
	s.turn = s.startTurn
	s.ply = 0
	s.winner = ""
	s.status = StatusActive
	s.evaluate()
	fmt.Fprintln(s.log, "new game")
}

// Select returns the legal moves of the piece on sq. Only the side to move may select.
func (s *Session) Select(sq chess.Square) ([]engine.CandidateMove, error) {
	if s.status.Terminal() {
		return nil, errors.ErrGameOver
	}
	p, ok := s.engine.PieceAt(sq)
	if !ok {
		return nil, &errors.MoveError{Err: errors.ErrPieceNotFound, From: sq.String()}
	}
	if p.Colour != s.turn {
		return nil, &errors.MoveError{Err: errors.ErrNotYourTurn, From: sq.String(), Piece: p.String()}
	}
	return s.engine.LegalMoves(p.ID, false)
}

// Moves returns every legal move of the side to move.
func (s *Session) Moves() []engine.Move {
	if s.status.Terminal() {
		return nil
	}
	pos := s.engine.Position()
	return pos.AllMoves(s.turn)
}

// Play moves the piece on from to to. A pawn reaching the last rank needs a
// promotion kind; promo must be chess.NoKind for every other move.
func (s *Session) Play(from, to chess.Square, promo chess.Kind) (Outcome, error) {
	moveErr := func(err error, piece string) error {
		return &errors.MoveError{Err: err, Ply: s.ply + 1, From: from.String(), To: to.String(), Piece: piece}
	}

	if s.status.Terminal() {
		return Outcome{}, moveErr(errors.ErrGameOver, "")
	}
	mover, ok := s.engine.PieceAt(from)
	if !ok {
		return Outcome{}, moveErr(errors.ErrPieceNotFound, "")
	}
	if mover.Colour != s.turn {
		return Outcome{}, moveErr(errors.ErrNotYourTurn, mover.String())
	}

	candidates, err := s.engine.LegalMoves(mover.ID, false)
	if err != nil {
		return Outcome{}, moveErr(err, mover.String())
	}
	var move engine.CandidateMove
	found := false
	for _, c := range candidates {
		if c.To == to {
			move, found = c, true
			break
		}
	}
	if !found {
		return Outcome{}, moveErr(errors.ErrIllegalMove, mover.String())
	}

	promoting := mover.Kind == chess.Pawn && to.Rank == chess.PromotionRank(mover.Colour)
	switch {
	case promoting && !chess.IsPromotionKind(promo):
		return Outcome{}, moveErr(errors.ErrPromotionRequired, mover.String())
	case !promoting && promo != chess.NoKind:
		return Outcome{}, moveErr(errors.ErrInvalidKind, mover.String())
	}

	out := Outcome{Ply: s.ply + 1, Move: engine.Move{From: from, CandidateMove: move}}
	if move.IsCapture() {
		if captured, ok := s.engine.Piece(move.Capture); ok {
			out.Captured = &captured
		}
		s.engine.RemovePiece(move.Capture)
	}
	if err := s.engine.MovePiece(mover.ID, to); err != nil {
		return Outcome{}, moveErr(err, mover.String())
	}
	if promoting {
		if err := s.engine.PromotePiece(mover.ID, promo); err != nil {
			return Outcome{}, moveErr(err, mover.String())
		}
		out.Promotion = promo
	}
	out.Piece, _ = s.engine.Piece(mover.ID)

	s.ply++
	s.turn = s.turn.Opposite()
	s.evaluate()

	out.Check = s.status == StatusCheck || s.status == StatusCheckmate
	out.Status = s.status
	out.Winner = s.winner
	fmt.Fprintf(s.log, "ply %d: %s %s-%s %s\n", out.Ply, mover, from, to, s.status)

	if s.status.Terminal() && s.autoReset {
		s.Reset()
		out.Reset = true
	}
	return out, nil
}

// PlayText plays a move given in long algebraic text such as "e2e4" or "e7e8q".
func (s *Session) PlayText(text string) (Outcome, error) {
	from, to, promo, err := ParseMove(text)
	if err != nil {
		return Outcome{}, err
	}
	return s.Play(from, to, promo)
}

// evaluate updates the status for the side to move, removing kings when
// the game has ended.
func (s *Session) evaluate() {
	king, ok := s.engine.FindKing(s.turn)
	if !ok {
		s.status = StatusActive
		return
	}

	switch {
	case s.engine.IsCheckmated(king):
		s.engine.RemovePiece(king)
		s.status = StatusCheckmate
		s.winner = s.turn.Opposite().String()
	case s.engine.IsStalemated(king):
		s.engine.RemovePiece(king)
		if other, ok := s.engine.FindKing(s.turn.Opposite()); ok {
			s.engine.RemovePiece(other)
		}
		s.status = StatusStalemate
	case s.engine.InCheck(s.turn):
		s.status = StatusCheck
	default:
		s.status = StatusActive
	}
}

// ParseMove parses long algebraic move text: two squares and an optional
// promotion letter, e.g. "e2e4" or "a7a8n".
func ParseMove(text string) (from, to chess.Square, promo chess.Kind, err error) {
	if len(text) != 4 && len(text) != 5 {
		return from, to, promo, fmt.Errorf("move %q: %w", text, errors.ErrIllegalMove)
	}
	if from, err = chess.ParseSquare(text[0:2]); err != nil {
		return from, to, promo, fmt.Errorf("move %q: %v: %w", text, err, errors.ErrIllegalMove)
	}
	if to, err = chess.ParseSquare(text[2:4]); err != nil {
		return from, to, promo, fmt.Errorf("move %q: %v: %w", text, err, errors.ErrIllegalMove)
	}
	if len(text) == 5 {
		kind, ok := chess.ParseKind(text[4:])
		if !ok || !chess.IsPromotionKind(kind) {
			return from, to, promo, fmt.Errorf("move %q: bad promotion: %w", text, errors.ErrInvalidKind)
		}
		promo = kind
	}
	return from, to, promo, nil
}
