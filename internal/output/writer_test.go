package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/game"
)

func playTestGame(t *testing.T, moves ...string) *game.Session {
	t.Helper()
	s := game.New()
	for _, m := range moves {
		if _, err := s.PlayText(m); err != nil {
			t.Fatalf("PlayText(%q) failed: %v", m, err)
		}
	}
	return s
}

// TestBoardString verifies the diagram layout
func TestBoardString(t *testing.T) {
	want := strings.Join([]string{
		"8 r n b k q b n r",
		"7 p p p p p p p p",
		"6 . . . . . . . .",
		"5 . . . . . . . .",
		"4 . . . . P . . .",
		"3 . . . . . . . .",
		"2 P P P P . P P P",
		"1 R N B K Q B N R",
		"  a b c d e f g h",
		"",
	}, "\n")

	s := playTestGame(t, "e2e4")
	if diff := cmp.Diff(want, BoardString(s.Engine(), true)); diff != "" {
		t.Errorf("BoardString() mismatch (-want +got):\n%s", diff)
	}

	plain := BoardString(s.Engine(), false)
	if strings.Contains(plain, "a b c") || strings.HasPrefix(plain, "8") {
		t.Errorf("BoardString(no coordinates) = %q; want no labels", plain)
	}
}

// TestStatusLine verifies the summary for each status
func TestStatusLine(t *testing.T) {
	tests := []struct {
		name  string
		moves []string
		want  string
	}{
		{"start", nil, "white to move"},
		{"after one move", []string{"e2e4"}, "black to move"},
		{"checkmate", []string{"c2c3", "d7d5", "b2b4", "e8a4"}, "checkmate, black wins"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := playTestGame(t, tt.moves...)
			if got := StatusLine(s); got != tt.want {
				t.Errorf("StatusLine() = %q; want %q", got, tt.want)
			}
		})
	}
}

// TestWriteMoves verifies capture marking
func TestWriteMoves(t *testing.T) {
	var buf bytes.Buffer
	moves := []engine.CandidateMove{
		{To: chess.Sq(4, 4)},
		{To: chess.Sq(3, 4), Capture: engine.PieceID(7)},
	}
	if err := WriteMoves(&buf, chess.Sq(4, 3), moves); err != nil {
		t.Fatalf("WriteMoves failed: %v", err)
	}
	if got, want := buf.String(), "e4: e5 xd5\n"; got != want {
		t.Errorf("WriteMoves() = %q; want %q", got, want)
	}
}

// TestWriteDivide verifies the perft listing and total
func TestWriteDivide(t *testing.T) {
	entries := engine.Divide(engine.New().Position(), chess.White, 2)

	var buf bytes.Buffer
	if err := WriteDivide(&buf, entries); err != nil {
		t.Fatalf("WriteDivide failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "e2e4: 20\n") {
		t.Error("missing e2e4 line")
	}
	if !strings.HasSuffix(out, "Nodes searched: 400\n") {
		t.Errorf("WriteDivide() total line wrong: %q", out)
	}
}

// TestBoardWriter_WriteState verifies the board writer adds the FEN when verbose
func TestBoardWriter_WriteState(t *testing.T) {
	s := playTestGame(t, "e2e4")

	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithVerbosity(2).Build()
	writer := NewWriter(&buf, cfg)
	if err := writer.WriteState(s); err != nil {
		t.Fatalf("WriteState failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "black to move") {
		t.Error("missing status line")
	}
	if !strings.Contains(out, s.FEN()) {
		t.Error("missing FEN line at verbosity 2")
	}
}

// TestFENWriter verifies one line per state
func TestFENWriter(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithOutputFormat(config.FEN).Build()
	writer := NewWriter(&buf, cfg)

	writer.WriteState(game.New())
	writer.WriteState(playTestGame(t, "e2e4"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || lines[0] != engine.InitialFEN {
		t.Errorf("FEN output = %q; want two lines starting with the initial FEN", lines)
	}
}

// TestJSONWriter_Batch verifies that batched states are written as an array
func TestJSONWriter_Batch(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()
	writer := NewJSONWriter(&buf, cfg)

	s := game.New()
	writer.WriteState(s)
	s.PlayText("e2e4")
	writer.WriteState(s)

	if buf.Len() != 0 {
		t.Error("JSON writer should buffer until Close")
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(out.States) != 2 {
		t.Fatalf("len(States) = %d; want 2", len(out.States))
	}
	if out.States[0].Ply != 0 || out.States[1].Ply != 1 {
		t.Errorf("plies = %d, %d; want 0, 1", out.States[0].Ply, out.States[1].Ply)
	}
}

// TestJSONWriter_Single verifies immediate output
func TestJSONWriter_Single(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithOutputFormat(config.JSON).WithMoves(true).Build()
	writer := NewWriter(&buf, cfg)

	if err := writer.WriteState(playTestGame(t, "e2e4", "d7d5")); err != nil {
		t.Fatalf("WriteState failed: %v", err)
	}

	var state JSONState
	if err := json.Unmarshal(buf.Bytes(), &state); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if state.Turn != "white" || state.Status != "active" || len(state.Pieces) != 32 {
		t.Errorf("state = %+v; want white to move with 32 pieces", state)
	}
	if diff := cmp.Diff([]string{"e5", "d5"}, state.Moves["e4"]); diff != "" {
		t.Errorf("Moves[e4] mismatch (-want +got):\n%s", diff)
	}
	want := []JSONMove{
		{Ply: 1, Colour: "white", Piece: "pawn", From: "e2", To: "e4", UCI: "e2e4"},
		{Ply: 2, Colour: "black", Piece: "pawn", From: "d7", To: "d5", UCI: "d7d5"},
	}
	if diff := cmp.Diff(want, state.History); diff != "" {
		t.Errorf("History mismatch (-want +got):\n%s", diff)
	}
}

// TestOutcomeToJSON verifies promotion and capture fields
func TestOutcomeToJSON(t *testing.T) {
	s, err := game.NewFromFEN("1r5k/P7/8/8/8/8/8/K7 w - - 0 1")
	if err != nil {
		t.Fatalf("NewFromFEN failed: %v", err)
	}
	out, err := s.PlayText("a7b8n")
	if err != nil {
		t.Fatalf("PlayText failed: %v", err)
	}

	jo := OutcomeToJSON(out)
	if jo.UCI != "a7b8n" || jo.Promotion != "knight" {
		t.Errorf("UCI, Promotion = %q, %q; want a7b8n, knight", jo.UCI, jo.Promotion)
	}
	if jo.Captured == nil || jo.Captured.Kind != "rook" || jo.Captured.Square != "b8" {
		t.Errorf("Captured = %+v; want rook on b8", jo.Captured)
	}
	if jo.Piece.Kind != "knight" || jo.Piece.Square != "b8" {
		t.Errorf("Piece = %+v; want knight on b8", jo.Piece)
	}
}

// TestDivideToJSON verifies the total
func TestDivideToJSON(t *testing.T) {
	entries := engine.Divide(engine.New().Position(), chess.White, 1)
	jd := DivideToJSON(engine.InitialFEN, 1, entries)
	if jd.Nodes != 20 || len(jd.Moves) != 20 {
		t.Errorf("DivideToJSON() = %d nodes, %d moves; want 20, 20", jd.Nodes, len(jd.Moves))
	}
}
