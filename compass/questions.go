// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package compass

import "math"

// Category is the axis a question contributes to.
type Category string

const (
	Economic Category = "economic"
	Social   Category = "social"
)

// DefaultQuestionsPerPage matches the quiz page size.
const DefaultQuestionsPerPage = 6

// LocalizedText holds the English and Sinhala rendering of a statement.
type LocalizedText struct {
	EN string `json:"en"`
	SI string `json:"si"`
}

// In returns the text for lang, falling back to English.
func (t LocalizedText) In(lang string) string {
	if lang == "si" && t.SI != "" {
		return t.SI
	}
	return t.EN
}

type Question struct {
	ID       int           `json:"id"`
	Text     LocalizedText `json:"text"`
	Category Category      `json:"category"`
	Reversed bool          `json:"reversed,omitempty"`
}

var (
	questionIndex = make(map[int]Question, len(bank))
	axisCounts    = make(map[Category]int, 2)
)

func init() {
	for _, q := range bank {
		questionIndex[q.ID] = q
		axisCounts[q.Category]++
	}
}

// Questions returns a copy of the bank in quiz order.
func Questions() []Question {
	out := make([]Question, len(bank))
	copy(out, bank)
	return out
}

func QuestionByID(id int) (Question, bool) {
	q, ok := questionIndex[id]
	return q, ok
}

// AxisCount returns how many bank questions belong to the axis.
func AxisCount(c Category) int {
	return axisCounts[c]
}

// QuestionsForPage returns the questions shown on a 1-based quiz page.
func QuestionsForPage(page, perPage int) []Question {
	if perPage <= 0 {
		perPage = DefaultQuestionsPerPage
	}
	if page < 1 {
		return []Question{}
	}
	start := (page - 1) * perPage
	if start >= len(bank) {
		return []Question{}
	}
	end := min(start+perPage, len(bank))
	out := make([]Question, end-start)
	copy(out, bank[start:end])
	return out
}

func TotalPages(perPage int) int {
	if perPage <= 0 {
		perPage = DefaultQuestionsPerPage
	}
	return (len(bank) + perPage - 1) / perPage
}

// answeredCount counts distinct bank questions that have an answer.
func answeredCount(answers []Answer) int {
	seen := make(map[int]struct{}, len(answers))
	for _, a := range answers {
		if _, ok := questionIndex[a.QuestionID]; ok {
			seen[a.QuestionID] = struct{}{}
		}
	}
	return len(seen)
}

// IsComplete reports whether every bank question has been answered.
func IsComplete(answers []Answer) bool {
	return answeredCount(answers) == len(bank)
}

// Progress is the answered share of the bank as a whole percentage.
func Progress(answers []Answer) int {
	if len(bank) == 0 {
		return 0
	}
	return int(math.Round(float64(answeredCount(answers)) / float64(len(bank)) * 100))
}
