// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package compass

import (
	"errors"
	"math"
	"testing"
)

func TestScoreToGridPosition(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{-10, 0},
		{-8.01, 0},
		{-8, 1},
		{-0.01, 4},
		{0, 5},
		{1.99, 5},
		{2, 6},
		{9.99, 9},
		{10, 9},
		{25, 9},
		{-25, 0},
		{math.NaN(), 5},
	}

	for _, tt := range tests {
		if got := ScoreToGridPosition(tt.score); got != tt.want {
			t.Errorf("ScoreToGridPosition(%v) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestCalculateGridPosition(t *testing.T) {
	tests := []struct {
		name            string
		economic        float64
		social          float64
		want            GridPosition
		wantDescription string
	}{
		{
			name:            "far right authoritarian corner",
			economic:        10,
			social:          10,
			want:            GridPosition{X: 9, Y: 0, Block: 9, Quadrant: GridAuthoritarianRight, QuadrantBlock: 4},
			wantDescription: "Mild Conservative capitalist",
		},
		{
			name:            "far left libertarian corner",
			economic:        -10,
			social:          -10,
			want:            GridPosition{X: 0, Y: 9, Block: 90, Quadrant: GridLibertarianLeft, QuadrantBlock: 20},
			wantDescription: "Extreme Progressive socialist",
		},
		{
			name:            "origin",
			economic:        0,
			social:          0,
			want:            GridPosition{X: 5, Y: 4, Block: 45, Quadrant: GridAuthoritarianRight, QuadrantBlock: 20},
			wantDescription: "Extreme Conservative capitalist",
		},
		{
			name:            "slightly left and libertarian",
			economic:        -0.5,
			social:          -0.5,
			want:            GridPosition{X: 4, Y: 5, Block: 54, Quadrant: GridLibertarianLeft, QuadrantBlock: 4},
			wantDescription: "Mild Progressive socialist",
		},
		{
			name:            "top left corner",
			economic:        -10,
			social:          10,
			want:            GridPosition{X: 0, Y: 0, Block: 0, Quadrant: GridAuthoritarianLeft, QuadrantBlock: 0},
			wantDescription: "Mild Socialist with traditional values",
		},
		{
			name:            "bottom right corner",
			economic:        10,
			social:          -10,
			want:            GridPosition{X: 9, Y: 9, Block: 99, Quadrant: GridLibertarianRight, QuadrantBlock: 24},
			wantDescription: "Extreme Liberal capitalist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateGridPosition(tt.economic, tt.social)
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
			if d := got.Description(); d != tt.wantDescription {
				t.Errorf("Expected description %q, got %q", tt.wantDescription, d)
			}
		})
	}
}

func TestBlockRoundTrip(t *testing.T) {
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			block := y*GridSize + x
			p, err := BlockInfo(block)
			if err != nil {
				t.Fatalf("BlockInfo(%d): %v", block, err)
			}
			if p.X != x || p.Y != y || p.Block != block {
				t.Errorf("BlockInfo(%d) = %+v, want x=%d y=%d", block, p, x, y)
			}
			if p.QuadrantBlock < 0 || p.QuadrantBlock > 24 {
				t.Errorf("block %d: quadrant block %d out of range", block, p.QuadrantBlock)
			}

			// The centre of the cell must map back to the same block
			cx, cy := CellCoordinates(block)
			if got := GridIDFromCoordinates(float64(cx), float64(cy)); got != block {
				t.Errorf("CellCoordinates(%d) = (%d,%d) maps to block %d", block, cx, cy, got)
			}
		}
	}
}

func TestBlockInfo_OutOfRange(t *testing.T) {
	for _, block := range []int{-1, 100, 1000} {
		if _, err := BlockInfo(block); !errors.Is(err, ErrBlockOutOfRange) {
			t.Errorf("BlockInfo(%d): expected ErrBlockOutOfRange, got %v", block, err)
		}
	}
}

func TestQuadrantBlocksAreUnique(t *testing.T) {
	seen := make(map[GridQuadrant]map[int]bool)
	for block := 0; block < GridCells; block++ {
		p, _ := BlockInfo(block)
		if seen[p.Quadrant] == nil {
			seen[p.Quadrant] = make(map[int]bool)
		}
		if seen[p.Quadrant][p.QuadrantBlock] {
			t.Errorf("quadrant %s: duplicate quadrant block %d", p.Quadrant, p.QuadrantBlock)
		}
		seen[p.Quadrant][p.QuadrantBlock] = true
	}
	for q, blocks := range seen {
		if len(blocks) != 25 {
			t.Errorf("quadrant %s: expected 25 cells, got %d", q, len(blocks))
		}
	}
}
