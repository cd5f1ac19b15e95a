// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package compass

import (
	"errors"
	"fmt"
	"math"
)

const (
	// GridSize is the number of cells per grid side.
	GridSize = 10
	// GridCells is the total number of blocks.
	GridCells = GridSize * GridSize

	subGridSize = GridSize / 2
)

var ErrBlockOutOfRange = errors.New("block out of range")

// GridPosition is a discrete cell on the 10x10 compass grid. Row 0 is the
// authoritarian edge, column 0 the economic left.
type GridPosition struct {
	X             int          `json:"x"`
	Y             int          `json:"y"`
	Block         int          `json:"block"`
	Quadrant      GridQuadrant `json:"quadrant"`
	QuadrantBlock int          `json:"quadrantBlock"`
}

// ScoreToGridPosition maps a score in [-10, 10] to a column or row index
// in [0, 9]. NaN is treated as the centre of the axis.
func ScoreToGridPosition(score float64) int {
	if math.IsNaN(score) {
		score = 0
	}
	s := clamp(score, -10, 10)
	pos := int(math.Floor((s + 10) / 2))
	// +10 floors to 10
	return max(0, min(GridSize-1, pos))
}

// CalculateGridPosition places a pair of scores on the grid. Higher
// social scores map to lower rows.
func CalculateGridPosition(economic, social float64) GridPosition {
	x := ScoreToGridPosition(economic)
	y := GridSize - 1 - ScoreToGridPosition(social)
	return positionOf(x, y)
}

func positionOf(x, y int) GridPosition {
	p := GridPosition{X: x, Y: y, Block: y*GridSize + x}

	switch {
	case x < subGridSize && y < subGridSize:
		p.Quadrant = GridAuthoritarianLeft
		p.QuadrantBlock = y*subGridSize + x
	case x >= subGridSize && y < subGridSize:
		p.Quadrant = GridAuthoritarianRight
		p.QuadrantBlock = y*subGridSize + (x - subGridSize)
	case x < subGridSize && y >= subGridSize:
		p.Quadrant = GridLibertarianLeft
		p.QuadrantBlock = (y-subGridSize)*subGridSize + x
	default:
		p.Quadrant = GridLibertarianRight
		p.QuadrantBlock = (y-subGridSize)*subGridSize + (x - subGridSize)
	}

	return p
}

// BlockInfo recovers the grid position of a block id.
func BlockInfo(block int) (GridPosition, error) {
	if block < 0 || block >= GridCells {
		return GridPosition{}, fmt.Errorf("%w: %d", ErrBlockOutOfRange, block)
	}
	return positionOf(block%GridSize, block/GridSize), nil
}

// CellCoordinates returns the compass coordinates at the centre of a
// block: x and y are odd values in [-9, 9].
func CellCoordinates(block int) (x, y int) {
	col := block % GridSize
	row := block / GridSize
	return col*2 - 9, 9 - row*2
}

var intensityLabels = []string{"Mild", "Moderate", "Strong", "Very Strong", "Extreme"}

var quadrantDescriptions = map[GridQuadrant]string{
	GridAuthoritarianLeft:  "Socialist with traditional values",
	GridAuthoritarianRight: "Conservative capitalist",
	GridLibertarianLeft:    "Progressive socialist",
	GridLibertarianRight:   "Liberal capitalist",
}

// Intensity is the sub-grid row, 0 (mild) to 4 (extreme).
func (p GridPosition) Intensity() int {
	return p.QuadrantBlock / subGridSize
}

// Description is a short English summary such as "Strong Liberal capitalist".
func (p GridPosition) Description() string {
	i := max(0, min(len(intensityLabels)-1, p.Intensity()))
	return intensityLabels[i] + " " + quadrantDescriptions[p.Quadrant]
}
