// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package compass

import "math"

// MaxAnswerValue is the largest absolute Likert value.
const MaxAnswerValue = 2

// Answer is a forced-choice Likert response. There is no neutral option.
type Answer struct {
	QuestionID int `json:"questionId"`
	Value      int `json:"value"`
}

// ValidValue reports whether v is one of -2, -1, 1, 2.
func ValidValue(v int) bool {
	switch v {
	case -2, -1, 1, 2:
		return true
	}
	return false
}

// Result is a two-axis score in [-10, 10] with its label.
type Result struct {
	Economic float64  `json:"economic"`
	Social   float64  `json:"social"`
	Quadrant Quadrant `json:"quadrant"`
}

// GridPosition places the result on the 10x10 grid.
func (r Result) GridPosition() GridPosition {
	return CalculateGridPosition(r.Economic, r.Social)
}

// contribution is one answer's effect on its axis after reversal.
type contribution struct {
	question Question
	answer   int
	points   int
}

// resolve keeps the last answer per known question, in first-seen order.
func resolve(answers []Answer) []contribution {
	pos := make(map[int]int, len(answers))
	var out []contribution
	for _, a := range answers {
		q, ok := questionIndex[a.QuestionID]
		if !ok {
			continue
		}
		points := a.Value
		if q.Reversed {
			points = -points
		}
		c := contribution{question: q, answer: a.Value, points: points}
		if i, seen := pos[q.ID]; seen {
			out[i] = c
			continue
		}
		pos[q.ID] = len(out)
		out = append(out, c)
	}
	return out
}

// CalculateScore converts answers into normalized axis scores. Unknown
// question ids are skipped; an incomplete quiz still yields a score.
func CalculateScore(answers []Answer) Result {
	var economicTotal, socialTotal int
	for _, c := range resolve(answers) {
		switch c.question.Category {
		case Economic:
			economicTotal += c.points
		case Social:
			socialTotal += c.points
		}
	}

	economic := RoundTenth(normalize(economicTotal, AxisCount(Economic)))
	social := RoundTenth(normalize(socialTotal, AxisCount(Social)))

	return Result{
		Economic: economic,
		Social:   social,
		Quadrant: GetQuadrant(economic, social),
	}
}

// normalize scales a raw axis total to [-10, 10]. The divisor is the
// largest possible absolute total for the axis.
func normalize(total, axisQuestions int) float64 {
	n := axisQuestions * MaxAnswerValue
	if n == 0 {
		return 0
	}
	return clamp(float64(total)/float64(n)*10, -10, 10)
}

// RoundTenth rounds half up (toward +inf) to one decimal place.
func RoundTenth(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// BreakdownItem is one answered question in a score walkthrough.
type BreakdownItem struct {
	QuestionID int    `json:"questionId"`
	Question   string `json:"question"`
	Answer     int    `json:"answer"`
	Points     int    `json:"points"`
	Reversed   bool   `json:"isReversed"`
}

// ScoreBreakdown explains how a Result was reached.
type ScoreBreakdown struct {
	Economic     []BreakdownItem `json:"economicBreakdown"`
	Social       []BreakdownItem `json:"socialBreakdown"`
	Result       Result          `json:"finalScores"`
	GridPosition GridPosition    `json:"gridPosition"`
}

// Breakdown returns the per-question walkthrough for answers, with
// question text in lang.
func Breakdown(answers []Answer, lang string) ScoreBreakdown {
	b := ScoreBreakdown{
		Economic: []BreakdownItem{},
		Social:   []BreakdownItem{},
	}
	for _, c := range resolve(answers) {
		item := BreakdownItem{
			QuestionID: c.question.ID,
			Question:   c.question.Text.In(lang),
			Answer:     c.answer,
			Points:     c.points,
			Reversed:   c.question.Reversed,
		}
		if c.question.Category == Economic {
			b.Economic = append(b.Economic, item)
		} else {
			b.Social = append(b.Social, item)
		}
	}
	b.Result = CalculateScore(answers)
	b.GridPosition = b.Result.GridPosition()
	return b
}
