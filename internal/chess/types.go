// Package chess provides core chess types shared by the rules engine and its collaborators.
package chess

import (
	"fmt"
	"strings"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// MarshalText encodes the colour by name.
func (c Colour) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Valid reports whether c is White or Black.
func (c Colour) Valid() bool {
	return c == White || c == Black
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota // No piece
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindNames = []string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// ParseKind converts a kind name ("queen") or letter ("q", "Q") to a Kind.
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(s)
	for k := Pawn; k <= King; k++ {
		if s == kindNames[k] || (len(s) == 1 && s[0] == k.Letter()+('a'-'A')) {
			return k, true
		}
	}
	return NoKind, false
}

// IsPromotionKind reports whether a pawn may be promoted to k.
func IsPromotionKind(k Kind) bool {
	switch k {
	case Knight, Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

// Constants for board dimensions.
const (
	BoardSize = 8
	MinCoord  = 0
	MaxCoord  = BoardSize - 1

	FileBase = 'a'
	RankBase = '1'
)

// InBounds reports whether both coordinates lie on the board.
func InBounds(file, rank int) bool {
	return file >= MinCoord && file <= MaxCoord && rank >= MinCoord && rank <= MaxCoord
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// PawnStartRank returns the rank a colour's pawns start on.
func PawnStartRank(colour Colour) int {
	if colour == White {
		return 1
	}
	return 6
}

// PromotionRank returns the last rank from a colour's point of view.
func PromotionRank(colour Colour) int {
	if colour == White {
		return MaxCoord
	}
	return MinCoord
}

// BackRank returns the rank a colour's pieces start on.
func BackRank(colour Colour) int {
	if colour == White {
		return MinCoord
	}
	return MaxCoord
}

// Square is a board coordinate. File 0 is the a-file, rank 0 is the first rank.
type Square struct {
	File int `json:"file"`
	Rank int `json:"rank"`
}

// Sq is shorthand for constructing a Square.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// Valid reports whether the square is on the board.
func (s Square) Valid() bool {
	return InBounds(s.File, s.Rank)
}

// Offset returns the square shifted by df files and dr ranks. The result may be off the board.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
	}
	return string([]byte{byte(FileBase + s.File), byte(RankBase + s.Rank)})
}

// ParseSquare converts an algebraic square name such as "e4" to a Square.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, fmt.Errorf("invalid square %q", name)
	}
	file := int(name[0]) - FileBase
	if name[0] >= 'A' && name[0] <= 'H' {
		file = int(name[0]) - 'A'
	}
	rank := int(name[1]) - RankBase
	if !InBounds(file, rank) {
		return Square{}, fmt.Errorf("invalid square %q", name)
	}
	return Square{File: file, Rank: rank}, nil
}
