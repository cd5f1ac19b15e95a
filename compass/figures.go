// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package compass

import (
	"math"
	"sort"
)

// CloseMatchDistance is the largest Euclidean distance for a close match.
const CloseMatchDistance = 3.0

// PoliticalFigure is a curated public figure placed on the compass.
// X is economic, Y is social, both in compass units.
type PoliticalFigure struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Image string `json:"image"`
	Name  string `json:"name"`
}

// Block is the grid cell the figure occupies.
func (f PoliticalFigure) Block() int {
	return GridIDFromCoordinates(float64(f.X), float64(f.Y))
}

type MatchType string

const (
	MatchExact MatchType = "exact"
	MatchClose MatchType = "close"
)

type FigureMatch struct {
	Figure    PoliticalFigure `json:"figure"`
	MatchType MatchType       `json:"matchType"`
	Distance  float64         `json:"distance"`
}

var curatedFigures = []PoliticalFigure{
	// Authoritarian left
	{X: -9, Y: 6, Image: "tilvin.jpg", Name: "Tilvin Silva"},
	{X: -7, Y: 8, Image: "mathini.jpg", Name: "Sirimawo Bandaranyake"},
	{X: -5, Y: 8, Image: "dayan.jpg", Name: "Dayan Jayatilaka"},

	// Authoritarian right
	{X: 1, Y: 7, Image: "mahinda.jpeg", Name: "Mahinda Rajapaksa"},
	{X: 7, Y: 7, Image: "nalin.jpeg", Name: "Nalin De Silva"},
	{X: 7, Y: 5, Image: "thamalu.jpg", Name: "Thamalu Piyadigama"},
	{X: 1, Y: 4, Image: "upali_kohomban.jpg", Name: "Upali Kohomban"},
	{X: 9, Y: 9, Image: "JR.jpg", Name: "JR Jayawardena"},
	{X: 5, Y: 4, Image: "swrd.jpg", Name: "S.W.R.D. Bandaranaike"},
	{X: 8, Y: 6, Image: "eranda.jpg", Name: "Eranda Ginige"},
	{X: 5, Y: 3, Image: "anurudda.jpeg", Name: "Anuruddha Pradeep"},
	{X: 4, Y: 2, Image: "samila.jpeg", Name: "Samila Muthumini"},

	// Libertarian left
	{X: -2, Y: -1, Image: "bruno.jpeg", Name: "Bruno Diwakara"},
	{X: -4, Y: -5, Image: "wangeesa.jpeg", Name: "Vangeesa Sumanasekara"},
	{X: -9, Y: -2, Image: "pubudu_jagoda.jpg", Name: "Pubudu Jagoda"},
	{X: -9, Y: -8, Image: "melani.jpeg", Name: "Melani Gunathilake"},
	{X: -4, Y: -4, Image: "harini.jpg", Name: "Harini Amarasooriya"},
	{X: -9, Y: -7, Image: "sandakath.jpg", Name: "Sandakath Mahagamaarachchi"},
	{X: -2, Y: -5, Image: "nirmal_dewasiri.jpg", Name: "Nirmal Dewasiri"},
	{X: -7, Y: -6, Image: "deepthi.jpg", Name: "Deepthi Kumara"},
	{X: -5, Y: -5, Image: "anton.jpeg", Name: "Anton Fernando"},

	// Libertarian right
	{X: 4, Y: -3, Image: "sajithpremadasa.jpg", Name: "Sajith Premdasa"},
	{X: 7, Y: -4, Image: "ranil.jpg", Name: "Ranil Wickremesinghe"},
	{X: 7, Y: -1, Image: "iraj.jpg", Name: "Iraj"},
	{X: 7, Y: -8, Image: "chinthana.jpg", Name: "Chinthana Darmadasa"},
}

var defaultIndex = NewFigureIndex(curatedFigures)

// Figures returns a copy of the curated list.
func Figures() []PoliticalFigure {
	out := make([]PoliticalFigure, len(curatedFigures))
	copy(out, curatedFigures)
	return out
}

// GridIDFromCoordinates converts compass coordinates to a block using the
// same column and row mapping as user placement.
func GridIDFromCoordinates(x, y float64) int {
	return CalculateGridPosition(x, y).Block
}

// FigureIndex answers placement and matching queries over a fixed list of
// figures. It is read-only after construction and safe for concurrent use.
type FigureIndex struct {
	figures []PoliticalFigure
	blocks  []int
	byBlock map[int]int // block -> first figure in list order
}

func NewFigureIndex(figures []PoliticalFigure) *FigureIndex {
	idx := &FigureIndex{
		figures: make([]PoliticalFigure, len(figures)),
		blocks:  make([]int, len(figures)),
		byBlock: make(map[int]int, len(figures)),
	}
	copy(idx.figures, figures)
	for i, f := range idx.figures {
		b := f.Block()
		idx.blocks[i] = b
		if _, taken := idx.byBlock[b]; !taken {
			idx.byBlock[b] = i
		}
	}
	return idx
}

// Match finds the figure in the same cell as (x, y), or failing that the
// nearest figure within CloseMatchDistance. It returns nil when nothing
// is close enough.
func (idx *FigureIndex) Match(x, y float64) *FigureMatch {
	if i, ok := idx.byBlock[GridIDFromCoordinates(x, y)]; ok {
		return &FigureMatch{Figure: idx.figures[i], MatchType: MatchExact, Distance: 0}
	}

	best := -1
	bestDist := math.Inf(1)
	for i, f := range idx.figures {
		d := math.Hypot(float64(f.X)-x, float64(f.Y)-y)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 || bestDist > CloseMatchDistance {
		return nil
	}
	return &FigureMatch{Figure: idx.figures[best], MatchType: MatchClose, Distance: bestDist}
}

// Figures returns a copy of the indexed list in its original order.
func (idx *FigureIndex) Figures() []PoliticalFigure {
	out := make([]PoliticalFigure, len(idx.figures))
	copy(out, idx.figures)
	return out
}

// FigureAt returns the figure occupying block, if any.
func (idx *FigureIndex) FigureAt(block int) (PoliticalFigure, bool) {
	i, ok := idx.byBlock[block]
	if !ok {
		return PoliticalFigure{}, false
	}
	return idx.figures[i], true
}

func (idx *FigureIndex) Occupied(block int) bool {
	_, ok := idx.byBlock[block]
	return ok
}

// OccupiedBlocks lists every occupied block in ascending order.
func (idx *FigureIndex) OccupiedBlocks() []int {
	out := make([]int, 0, len(idx.byBlock))
	for b := range idx.byBlock {
		out = append(out, b)
	}
	sort.Ints(out)
	return out
}

// DefaultFigures is the index over the curated list.
func DefaultFigures() *FigureIndex {
	return defaultIndex
}

// FindMatchingFigure matches against the curated list.
func FindMatchingFigure(x, y float64) *FigureMatch {
	return defaultIndex.Match(x, y)
}
