// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package compass

import (
	"errors"
	"fmt"
	"math"
)

// Quadrant is the categorical label attached to a scored result.
type Quadrant string

const (
	LibertarianLeft    Quadrant = "libertarian-left"
	LibertarianRight   Quadrant = "libertarian-right"
	AuthoritarianLeft  Quadrant = "authoritarian-left"
	AuthoritarianRight Quadrant = "authoritarian-right"
	Centrist           Quadrant = "centrist"
)

// CentristThreshold is the maximum absolute score on both axes that still
// counts as centrist.
const CentristThreshold = 1.0

var ErrUnknownQuadrant = errors.New("unknown quadrant")

var allQuadrants = []Quadrant{
	LibertarianLeft,
	LibertarianRight,
	AuthoritarianLeft,
	AuthoritarianRight,
	Centrist,
}

// Quadrants returns every quadrant in display order.
func Quadrants() []Quadrant {
	out := make([]Quadrant, len(allQuadrants))
	copy(out, allQuadrants)
	return out
}

// ParseQuadrant accepts only the five canonical values.
func ParseQuadrant(s string) (Quadrant, error) {
	for _, q := range allQuadrants {
		if string(q) == s {
			return q, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownQuadrant, s)
}

// GetQuadrant maps continuous scores to a label. The centrist band is
// checked first; a score of exactly zero falls on the negative side.
func GetQuadrant(economic, social float64) Quadrant {
	if math.Abs(economic) <= CentristThreshold && math.Abs(social) <= CentristThreshold {
		return Centrist
	}

	switch {
	case economic <= 0 && social <= 0:
		return LibertarianLeft
	case economic > 0 && social <= 0:
		return LibertarianRight
	case economic <= 0 && social > 0:
		return AuthoritarianLeft
	default:
		return AuthoritarianRight
	}
}

// GridQuadrant is the 4-way quadrant of a grid cell. The grid has no
// centrist cells.
type GridQuadrant string

const (
	GridAuthoritarianLeft  GridQuadrant = "authoritarian-left"
	GridAuthoritarianRight GridQuadrant = "authoritarian-right"
	GridLibertarianLeft    GridQuadrant = "libertarian-left"
	GridLibertarianRight   GridQuadrant = "libertarian-right"
)

// Quadrant converts a grid quadrant to the matching result quadrant.
func (g GridQuadrant) Quadrant() Quadrant {
	return Quadrant(g)
}
