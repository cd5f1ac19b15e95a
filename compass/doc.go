// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package compass implements quiz scoring and compass grid placement.

Everything here is pure: no I/O, no shared mutable state. The question
bank, figure list and avatar catalog are read-only after init, so every
function is safe to call concurrently.

# Scoring

Answers are Likert values in {-2, -1, 1, 2}. Reversed questions negate
the value before it is added to the question's axis:

	result := compass.CalculateScore(answers)
	// result.Economic, result.Social in [-10, 10], one decimal place

Each axis total is divided by its largest possible magnitude (2 per
question in the axis), scaled to ±10 and clamped. Unknown question ids
are skipped and never reported.

# Quadrants

GetQuadrant returns one of five labels. Both scores within ±1.0 yields
Centrist; otherwise zero counts as the negative side of an axis.

# Grid

CalculateGridPosition maps scores onto a 10x10 grid:

	x = floor((economic + 10) / 2)     0 = left, 9 = right
	y = 9 - floor((social + 10) / 2)   0 = authoritarian, 9 = libertarian
	block = y*10 + x

Each cell also reports its 4-way grid quadrant and its rank inside that
5x5 sub-grid.

# Figures

A FigureIndex holds curated political figures by block. Match returns
the figure in the same block, else the nearest one within 3.0 compass
units, else nil.
*/
package compass
