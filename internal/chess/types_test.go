package chess

import (
	"encoding/json"
	"testing"
)

func TestInBounds(t *testing.T) {
	tests := []struct {
		file, rank int
		want       bool
	}{
		{0, 0, true},
		{7, 7, true},
		{3, 4, true},
		{-1, 0, false},
		{0, -1, false},
		{8, 0, false},
		{0, 8, false},
		{-1, 8, false},
	}

	for _, tt := range tests {
		if got := InBounds(tt.file, tt.rank); got != tt.want {
			t.Errorf("InBounds(%d, %d) = %v; want %v", tt.file, tt.rank, got, tt.want)
		}
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		name    string
		want    Square
		wantErr bool
	}{
		{"a1", Sq(0, 0), false},
		{"h8", Sq(7, 7), false},
		{"e4", Sq(4, 3), false},
		{"D5", Sq(3, 4), false},
		{"i1", Square{}, true},
		{"a9", Square{}, true},
		{"a0", Square{}, true},
		{"e", Square{}, true},
		{"e44", Square{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSquare(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSquare(%q) error = %v; wantErr %v", tt.name, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %v; want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestSquareString(t *testing.T) {
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			sq := Sq(file, rank)
			back, err := ParseSquare(sq.String())
			if err != nil || back != sq {
				t.Errorf("ParseSquare(%q) = %v, %v; want %v", sq.String(), back, err, sq)
			}
		}
	}
	if got := Sq(8, 0).String(); got != "(8,0)" {
		t.Errorf("Sq(8, 0).String() = %q; want %q", got, "(8,0)")
	}
}

func TestSquareOffset(t *testing.T) {
	sq := Sq(4, 3).Offset(-1, 2)
	if sq != Sq(3, 5) {
		t.Errorf("Offset(-1, 2) = %v; want d6", sq)
	}
	if Sq(0, 0).Offset(-1, 0).Valid() {
		t.Error("Offset off the a-file reported Valid")
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in     string
		want   Kind
		wantOK bool
	}{
		{"queen", Queen, true},
		{"Q", Queen, true},
		{"n", Knight, true},
		{"Knight", Knight, true},
		{"pawn", Pawn, true},
		{"k", King, true},
		{"x", NoKind, false},
		{"", NoKind, false},
	}

	for _, tt := range tests {
		got, ok := ParseKind(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseKind(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestColourHelpers(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() is not an involution")
	}
	if ColourOffset(White) != 1 || ColourOffset(Black) != -1 {
		t.Error("ColourOffset() directions wrong")
	}
	if PawnStartRank(White) != 1 || PawnStartRank(Black) != 6 {
		t.Error("PawnStartRank() wrong")
	}
	if PromotionRank(White) != 7 || PromotionRank(Black) != 0 {
		t.Error("PromotionRank() wrong")
	}
	if !White.Valid() || !Black.Valid() || Colour(2).Valid() || Colour(-1).Valid() {
		t.Error("Valid() accepts only white and black")
	}
}

func TestIsPromotionKind(t *testing.T) {
	for _, k := range []Kind{Knight, Bishop, Rook, Queen} {
		if !IsPromotionKind(k) {
			t.Errorf("IsPromotionKind(%v) = false; want true", k)
		}
	}
	for _, k := range []Kind{NoKind, Pawn, King} {
		if IsPromotionKind(k) {
			t.Errorf("IsPromotionKind(%v) = true; want false", k)
		}
	}
}

func TestJSONNames(t *testing.T) {
	got, err := json.Marshal(struct {
		Kind   Kind   `json:"kind"`
		Colour Colour `json:"colour"`
	}{Knight, Black})
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	want := `{"kind":"knight","colour":"black"}`
	if string(got) != want {
		t.Errorf("json.Marshal() = %s; want %s", got, want)
	}
}
