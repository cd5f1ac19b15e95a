// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/lankacompass/server/compass"
	"github.com/lankacompass/server/i18n"
	"github.com/lankacompass/server/middleware"
	"github.com/lankacompass/server/models"
	"github.com/lankacompass/server/testutil"
)

func allAnswers(value int) []compass.Answer {
	questions := compass.Questions()
	answers := make([]compass.Answer, 0, len(questions))
	for _, q := range questions {
		answers = append(answers, compass.Answer{QuestionID: q.ID, Value: value})
	}
	return answers
}

func TestGetQuestions(t *testing.T) {
	handler := middleware.Locale(http.HandlerFunc(NewQuizHandler(compass.DefaultFigures()).GetQuestions))

	t.Run("first page in english", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/questions", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		body := w.Body.String()
		var resp models.QuestionsResponse
		testutil.AssertJSON(t, w, &resp)

		if resp.Language != "en" || resp.Page != 1 || resp.PerPage != compass.DefaultQuestionsPerPage {
			t.Errorf("Unexpected paging: %+v", resp)
		}
		if resp.TotalQuestions != 24 || resp.TotalPages != 4 {
			t.Errorf("Expected 24 questions over 4 pages, got %d over %d", resp.TotalQuestions, resp.TotalPages)
		}
		if len(resp.Questions) != compass.DefaultQuestionsPerPage {
			t.Fatalf("Expected %d questions, got %d", compass.DefaultQuestionsPerPage, len(resp.Questions))
		}
		first, _ := compass.QuestionByID(resp.Questions[0].ID)
		if resp.Questions[0].Text != first.Text.EN {
			t.Errorf("Expected English text, got %q", resp.Questions[0].Text)
		}
		if strings.Contains(body, "reversed") {
			t.Error("Reversed flag must not be exposed")
		}
	})

	t.Run("sinhala via query", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/questions?lang=si&page=4&perPage=6", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.QuestionsResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Language != "si" || resp.Page != 4 {
			t.Errorf("Unexpected response: lang=%s page=%d", resp.Language, resp.Page)
		}
		q, _ := compass.QuestionByID(resp.Questions[0].ID)
		if resp.Questions[0].Text != q.Text.SI {
			t.Errorf("Expected Sinhala text, got %q", resp.Questions[0].Text)
		}
	})

	t.Run("sinhala via accept-language", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/questions", nil)
		req.Header.Set("Accept-Language", "si-LK")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		var resp models.QuestionsResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Language != "si" {
			t.Errorf("Expected si, got %s", resp.Language)
		}
	})

	for _, bad := range []string{"page=0", "page=5", "perPage=0", "perPage=25", "page=x"} {
		t.Run("rejects "+bad, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/questions?"+bad, nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}
}

func TestScore(t *testing.T) {
	handler := middleware.Locale(http.HandlerFunc(NewQuizHandler(compass.DefaultFigures()).Score))

	t.Run("complete quiz", func(t *testing.T) {
		answers := allAnswers(2)
		req := testutil.MakeRequest("POST", "/api/score", models.ScoreRequest{Answers: answers}, nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.ScoreResponse
		testutil.AssertJSON(t, w, &resp)

		want := compass.CalculateScore(answers)
		if resp.Result != want {
			t.Errorf("Expected %+v, got %+v", want, resp.Result)
		}
		if resp.Grid != want.GridPosition() {
			t.Errorf("Expected grid %+v, got %+v", want.GridPosition(), resp.Grid)
		}
		if resp.QuadrantLabel != i18n.QuadrantLabel(string(want.Quadrant), "en") {
			t.Errorf("Unexpected label %q", resp.QuadrantLabel)
		}
		if resp.Economic != i18n.FormatScore(want.Economic) || resp.Social != i18n.FormatScore(want.Social) {
			t.Errorf("Unexpected formatted scores %s %s", resp.Economic, resp.Social)
		}
		if !resp.Complete || resp.Progress != 100 {
			t.Errorf("Expected complete at 100%%, got %v %d", resp.Complete, resp.Progress)
		}
		if resp.Breakdown != nil {
			t.Error("Breakdown should be omitted by default")
		}
	})

	t.Run("empty answers", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/api/score", models.ScoreRequest{}, nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.ScoreResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Result.Economic != 0 || resp.Result.Social != 0 || resp.Result.Quadrant != compass.Centrist {
			t.Errorf("Expected centrist origin, got %+v", resp.Result)
		}
		if resp.Complete || resp.Progress != 0 {
			t.Errorf("Expected incomplete at 0%%, got %v %d", resp.Complete, resp.Progress)
		}
		if resp.Economic != "0.0" {
			t.Errorf("Expected '0.0', got %q", resp.Economic)
		}
	})

	t.Run("sinhala label and breakdown", func(t *testing.T) {
		answers := allAnswers(-1)[:6]
		req := testutil.MakeRequest("POST", "/api/score?lang=si&breakdown=true", models.ScoreRequest{Answers: answers}, nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.ScoreResponse
		testutil.AssertJSON(t, w, &resp)
		want := compass.CalculateScore(answers)
		if resp.QuadrantLabel != i18n.QuadrantLabel(string(want.Quadrant), "si") {
			t.Errorf("Expected Sinhala label, got %q", resp.QuadrantLabel)
		}
		if resp.Progress != 25 {
			t.Errorf("Expected 25%% progress, got %d", resp.Progress)
		}
		if resp.Breakdown == nil || len(resp.Breakdown.Economic) != 6 {
			t.Fatalf("Expected breakdown with 6 economic items, got %+v", resp.Breakdown)
		}
	})

	t.Run("figure match", func(t *testing.T) {
		answers := allAnswers(2)
		result := compass.CalculateScore(answers)
		x, y := int(result.Economic), int(result.Social)
		idx := compass.NewFigureIndex([]compass.PoliticalFigure{{X: x, Y: y, Image: "test.jpg", Name: "Test Figure"}})
		h := NewQuizHandler(idx)

		req := testutil.MakeRequest("POST", "/api/score", models.ScoreRequest{Answers: answers}, nil)
		w := httptest.NewRecorder()
		h.Score(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.ScoreResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Match == nil {
			t.Fatal("Expected a figure match")
		}
		if resp.Match.Figure.Name != "Test Figure" {
			t.Errorf("Expected Test Figure, got %s", resp.Match.Figure.Name)
		}
	})

	testCases := []struct {
		name string
		body string
	}{
		{"neutral value", `{"answers":[{"questionId":1,"value":0}]}`},
		{"value too large", `{"answers":[{"questionId":1,"value":3}]}`},
		{"malformed", `{"answers":`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/score", strings.NewReader(tc.body))
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}

	t.Run("unknown question ignored", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/score", strings.NewReader(`{"answers":[{"questionId":999,"value":2}]}`))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.ScoreResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Result.Economic != 0 || resp.Progress != 0 {
			t.Errorf("Unknown question should not count, got %+v progress %d", resp.Result, resp.Progress)
		}
	})
}

func TestListFigures(t *testing.T) {
	handler := NewQuizHandler(compass.DefaultFigures())

	w := httptest.NewRecorder()
	handler.ListFigures(w, httptest.NewRequest("GET", "/api/figures", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.FiguresResponse
	testutil.AssertJSON(t, w, &resp)

	figures := compass.Figures()
	if len(resp.Figures) != len(figures) {
		t.Fatalf("Expected %d figures, got %d", len(figures), len(resp.Figures))
	}
	for i, f := range resp.Figures {
		if f.Name != figures[i].Name || f.Block != figures[i].Block() {
			t.Errorf("Figure %d: expected %s at %d, got %s at %d", i, figures[i].Name, figures[i].Block(), f.Name, f.Block)
		}
	}
}

func TestGetGridBlock(t *testing.T) {
	figures := compass.DefaultFigures()
	handler := NewQuizHandler(figures)

	get := func(block string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("GET", "/api/grid/"+block, nil)
		req.SetPathValue("block", block)
		w := httptest.NewRecorder()
		handler.GetGridBlock(w, req)
		return w
	}

	t.Run("occupied block", func(t *testing.T) {
		w := get("37")
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.GridBlockResponse
		testutil.AssertJSON(t, w, &resp)

		want, _ := compass.BlockInfo(37)
		if resp.GridPosition != want {
			t.Errorf("Expected %+v, got %+v", want, resp.GridPosition)
		}
		if resp.Description != want.Description() {
			t.Errorf("Expected %q, got %q", want.Description(), resp.Description)
		}
		fig, _ := figures.FigureAt(37)
		if resp.Figure == nil || resp.Figure.Name != fig.Name {
			t.Errorf("Expected figure %s, got %+v", fig.Name, resp.Figure)
		}
		x, y := compass.CellCoordinates(37)
		if resp.CellX != x || resp.CellY != y {
			t.Errorf("Expected cell (%d,%d), got (%d,%d)", x, y, resp.CellX, resp.CellY)
		}
	})

	t.Run("empty block", func(t *testing.T) {
		free := freeCells(t, 1)[0]
		w := get(strconv.Itoa(free))
		testutil.AssertStatus(t, w, http.StatusOK)
		if !strings.Contains(w.Body.String(), `"figure":null`) {
			t.Errorf("Expected null figure, got %s", w.Body.String())
		}
	})

	t.Run("out of range", func(t *testing.T) {
		testutil.AssertStatus(t, get("100"), http.StatusNotFound)
		testutil.AssertStatus(t, get("-1"), http.StatusNotFound)
	})

	t.Run("not a number", func(t *testing.T) {
		testutil.AssertStatus(t, get("abc"), http.StatusBadRequest)
	})
}

func TestListAvatars(t *testing.T) {
	handler := NewQuizHandler(compass.DefaultFigures())

	w := httptest.NewRecorder()
	handler.ListAvatars(w, httptest.NewRequest("GET", "/api/avatars", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.AvatarsResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Default != compass.DefaultAvatar {
		t.Errorf("Expected default %s, got %s", compass.DefaultAvatar, resp.Default)
	}
	if len(resp.Avatars) != len(compass.Avatars()) {
		t.Fatalf("Expected %d avatars, got %d", len(compass.Avatars()), len(resp.Avatars))
	}
	for _, a := range resp.Avatars {
		if a.URL != compass.AvatarURL(a.Filename) {
			t.Errorf("Avatar %s: unexpected URL %s", a.ID, a.URL)
		}
	}
}
