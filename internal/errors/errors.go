// Package errors provides sentinel errors and error types for the chessboard engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidOperation is the root of every precondition violation raised by
// the engine. The more specific sentinels below match it through errors.Is().
var ErrInvalidOperation = errors.New("invalid operation")

// Sentinel errors for common failure conditions.
var (
	// ErrPieceNotFound indicates a piece handle that is not live in the store.
	ErrPieceNotFound error = &opError{msg: "piece not found"}

	// ErrSquareOccupied indicates a target square already holds a piece.
	ErrSquareOccupied error = &opError{msg: "square occupied"}

	// ErrOutOfBounds indicates a coordinate off the board.
	ErrOutOfBounds error = &opError{msg: "square out of bounds"}

	// ErrInvalidKind indicates an unusable piece kind for the operation.
	ErrInvalidKind error = &opError{msg: "invalid piece kind"}

	// ErrInvalidColour indicates a colour other than white or black.
	ErrInvalidColour error = &opError{msg: "invalid colour"}

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrPromotionRequired indicates a pawn reached the last rank without a promotion choice.
	ErrPromotionRequired = errors.New("promotion piece required")

	// ErrNotYourTurn indicates an attempt to move the opponent's piece.
	ErrNotYourTurn = errors.New("not your turn")

	// ErrGameOver indicates play after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// opError is a precondition sentinel that also matches ErrInvalidOperation.
type opError struct {
	msg string
}

func (e *opError) Error() string { return e.msg }

// Is lets errors.Is(err, ErrInvalidOperation) succeed for every opError.
func (e *opError) Is(target error) bool {
	return target == ErrInvalidOperation
}

// MoveError wraps errors with move context: ply number and squares involved.
// It implements the error interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err   error  // The underlying error
	Ply   int    // 1-based ply the move would have been (0 if not applicable)
	From  string // Source square (if known)
	To    string // Destination square (if known)
	Piece string // Piece description (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}
	switch {
	case e.From != "" && e.To != "":
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	case e.From != "":
		parts = append(parts, fmt.Sprintf("square %s", e.From))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
