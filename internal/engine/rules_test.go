package engine

import (
	"encoding/json"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// TestHasInsufficientMaterial tests various material configurations
func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool // true = insufficient material
	}{
		{"K vs K", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K", "4k3/8/8/8/8/8/8/4KB2 w - - 0 1", true},
		{"K+N vs K", "4k3/8/8/8/8/8/8/4KN2 w - - 0 1", true},
		{"K vs K+b", "4k1b1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K vs K+n", "4k1n1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K+B same color", "4kb2/8/8/8/8/8/8/2B1K3 w - - 0 1", true},
		{"K+R vs K", "4k3/8/8/8/8/8/8/4KR2 w - - 0 1", false},
		{"K+Q vs K", "4k3/8/8/8/8/8/8/4KQ2 w - - 0 1", false},
		{"K+P vs K", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"K+B vs K+B opposite color", "4kb2/8/8/8/8/8/8/3BK3 w - - 0 1", false},
		{"K+B+B vs K", "4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1", false},
		{"K+N vs K+N", "4kn2/8/8/8/8/8/8/4KN2 w - - 0 1", false},
		{"standard starting position", InitialFEN, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) error: %v", tt.fen, err)
			}

			got := HasInsufficientMaterial(board)
			if got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestAnalyzeDrawRules tests the move-count rules against the halfmove clock
func TestAnalyzeDrawRules(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want DrawRuleResult
	}{
		{"fresh game", InitialFEN, DrawRuleResult{}},
		{"99 half-moves", "4k3/8/8/8/8/8/8/R3K3 w - - 99 80", DrawRuleResult{}},
		{"fifty moves", "4k3/8/8/8/8/8/8/R3K3 w - - 100 80", DrawRuleResult{FiftyMoveRule: true}},
		{"seventy-five moves", "4k3/8/8/8/8/8/8/R3K3 w - - 150 100", DrawRuleResult{FiftyMoveRule: true, SeventyFiveMoveRule: true}},
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", DrawRuleResult{InsufficientMaterial: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeDrawRules(MustFEN(tt.fen))
			if got != tt.want {
				t.Errorf("AnalyzeDrawRules() = %+v, want %+v", got, tt.want)
			}
			if got.Any() != (tt.want != DrawRuleResult{}) {
				t.Errorf("Any() = %v for %+v", got.Any(), got)
			}
		})
	}
}

func TestDrawRuleResultJSON(t *testing.T) {
	data, err := json.Marshal(DrawRuleResult{FiftyMoveRule: true, InsufficientMaterial: true})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"fiftyMoveRule":true,"seventyFiveMoveRule":false,"insufficientMaterial":true}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

// TestIsLightSquare tests the isLightSquare function
func TestIsLightSquare(t *testing.T) {
	tests := []struct {
		square string
		want   bool
	}{
		{"a1", false},
		{"a2", true},
		{"h8", false},
		{"h1", true},
		{"e4", true},
		{"d4", false},
		{"b1", true},
		{"c3", false},
		{"a8", true},
	}

	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			got := isLightSquare(chess.MustParseCoordinate(tt.square))
			if got != tt.want {
				t.Errorf("isLightSquare(%s) = %v, want %v", tt.square, got, tt.want)
			}
		})
	}
}
