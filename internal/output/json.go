package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/game"
)

// JSONState represents a game position in JSON format.
type JSONState struct {
	FEN     string              `json:"fen"`
	Turn    string              `json:"turn"`
	Status  string              `json:"status"`
	Winner  string              `json:"winner,omitempty"`
	Ply     int                 `json:"ply"`
	Pieces  []JSONPiece         `json:"pieces"`
	History []JSONMove          `json:"history,omitempty"`
	Moves   map[string][]string `json:"moves,omitempty"`
}

// JSONPiece represents a piece in JSON format.
type JSONPiece struct {
	ID     engine.PieceID `json:"id"`
	Kind   string         `json:"kind"`
	Colour string         `json:"colour"`
	Square string         `json:"square"`
}

// JSONMove represents a history entry in JSON format.
type JSONMove struct {
	Ply    int    `json:"ply"`
	Colour string `json:"colour"`
	Piece  string `json:"piece"`
	From   string `json:"from"`
	To     string `json:"to"`
	UCI    string `json:"uci"`
}

// JSONOutcome represents the result of playing one move.
type JSONOutcome struct {
	Ply       int        `json:"ply"`
	UCI       string     `json:"uci"`
	Piece     JSONPiece  `json:"piece"`
	Captured  *JSONPiece `json:"captured,omitempty"`
	Promotion string     `json:"promotion,omitempty"`
	Check     bool       `json:"check"`
	Status    string     `json:"status"`
	Winner    string     `json:"winner,omitempty"`
	Reset     bool       `json:"reset,omitempty"`
}

// JSONDivide represents a perft run in JSON format.
type JSONDivide struct {
	FEN   string            `json:"fen"`
	Depth int               `json:"depth"`
	Nodes uint64            `json:"nodes"`
	Moves map[string]uint64 `json:"moves,omitempty"`
}

// JSONOutput holds multiple states for array output.
type JSONOutput struct {
	States []*JSONState `json:"states"`
}

// PieceToJSON converts an engine piece to JSON format.
func PieceToJSON(p engine.Piece) JSONPiece {
	return JSONPiece{
		ID:     p.ID,
		Kind:   p.Kind.String(),
		Colour: p.Colour.String(),
		Square: p.Square.String(),
	}
}

// StateToJSON converts a session to JSON format.
func StateToJSON(s *game.Session, cfg *config.OutputConfig) *JSONState {
	js := &JSONState{
		FEN:    s.FEN(),
		Turn:   s.Turn().String(),
		Status: s.Status().String(),
		Winner: s.Winner(),
		Ply:    s.Ply(),
		Pieces: make([]JSONPiece, 0, len(s.Engine().Pieces())),
	}
	for _, p := range s.Engine().Pieces() {
		js.Pieces = append(js.Pieces, PieceToJSON(p))
	}

	if cfg.ShowHistory {
		for i, r := range s.History() {
			js.History = append(js.History, JSONMove{
				Ply:    i + 1,
				Colour: r.Colour.String(),
				Piece:  r.Kind.String(),
				From:   r.From.String(),
				To:     r.To.String(),
				UCI:    r.From.String() + r.To.String(),
			})
		}
	}

	if cfg.ShowMoves {
		js.Moves = make(map[string][]string)
		for _, m := range s.Moves() {
			from := m.From.String()
			js.Moves[from] = append(js.Moves[from], m.To.String())
		}
	}
	return js
}

// OutcomeToJSON converts a played move to JSON format.
func OutcomeToJSON(o game.Outcome) *JSONOutcome {
	jo := &JSONOutcome{
		Ply:    o.Ply,
		UCI:    o.Move.String(),
		Piece:  PieceToJSON(o.Piece),
		Check:  o.Check,
		Status: o.Status.String(),
		Winner: o.Winner,
		Reset:  o.Reset,
	}
	if o.Captured != nil {
		captured := PieceToJSON(*o.Captured)
		jo.Captured = &captured
	}
	if o.Promotion != chess.NoKind {
		jo.Promotion = o.Promotion.String()
		jo.UCI += strings.ToLower(string(rune(o.Promotion.Letter())))
	}
	return jo
}

// DivideToJSON converts divide entries to JSON format.
func DivideToJSON(fen string, depth int, entries []engine.DivideEntry) *JSONDivide {
	jd := &JSONDivide{FEN: fen, Depth: depth, Moves: make(map[string]uint64, len(entries))}
	for _, e := range entries {
		jd.Moves[e.Move.String()] = e.Nodes
		jd.Nodes += e.Nodes
	}
	return jd
}

// writeJSON encodes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// OutputStateJSON outputs a single state in JSON format.
func OutputStateJSON(s *game.Session, cfg *config.Config) error {
	return writeJSON(cfg.OutputFile, StateToJSON(s, &cfg.Output))
}

// OutputDivideJSON outputs a perft result in JSON format.
func OutputDivideJSON(w io.Writer, fen string, depth int, entries []engine.DivideEntry) error {
	return writeJSON(w, DivideToJSON(fen, depth, entries))
}
