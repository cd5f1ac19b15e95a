// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/lankacompass/server/compass"
	"github.com/lankacompass/server/i18n"
	"github.com/lankacompass/server/middleware"
	"github.com/lankacompass/server/models"
)

// QuizHandler serves the question bank, scoring, and reference data.
// It holds no database state.
type QuizHandler struct {
	figures *compass.FigureIndex
}

func NewQuizHandler(figures *compass.FigureIndex) *QuizHandler {
	return &QuizHandler{figures: figures}
}

// GetQuestions handles GET /api/questions
// Text is localized; the reversed flag stays server side.
func (h *QuizHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	total := len(compass.Questions())

	perPage, err := intParam(q.Get("perPage"), compass.DefaultQuestionsPerPage, 1, total)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "perPage "+err.Error())
		return
	}
	totalPages := compass.TotalPages(perPage)
	page, err := intParam(q.Get("page"), 1, 1, totalPages)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "page "+err.Error())
		return
	}

	lang := middleware.LanguageFromContext(r.Context())
	pageQuestions := compass.QuestionsForPage(page, perPage)
	out := make([]models.LocalizedQuestion, 0, len(pageQuestions))
	for _, question := range pageQuestions {
		out = append(out, models.LocalizedQuestion{
			ID:       question.ID,
			Text:     question.Text.In(lang),
			Category: question.Category,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionsResponse{
		Questions:      out,
		Language:       lang,
		Page:           page,
		PerPage:        perPage,
		TotalPages:     totalPages,
		TotalQuestions: total,
	})
}

// Score handles POST /api/score
// ?breakdown=true adds the per-question walkthrough.
func (h *QuizHandler) Score(w http.ResponseWriter, r *http.Request) {
	var req models.ScoreRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	for _, a := range req.Answers {
		if !compass.ValidValue(a.Value) {
			middleware.ErrorResponse(w, http.StatusBadRequest,
				fmt.Sprintf("answer for question %d must be one of -2, -1, 1, 2", a.QuestionID))
			return
		}
	}

	lang := middleware.LanguageFromContext(r.Context())
	result := compass.CalculateScore(req.Answers)
	grid := result.GridPosition()

	resp := models.ScoreResponse{
		Result:        result,
		Grid:          grid,
		QuadrantLabel: i18n.QuadrantLabel(string(result.Quadrant), lang),
		Economic:      i18n.FormatScore(result.Economic),
		Social:        i18n.FormatScore(result.Social),
		Complete:      compass.IsComplete(req.Answers),
		Progress:      compass.Progress(req.Answers),
		Match:         h.figures.Match(result.Economic, result.Social),
	}

	if includeBreakdown, _ := strconv.ParseBool(r.URL.Query().Get("breakdown")); includeBreakdown {
		b := compass.Breakdown(req.Answers, lang)
		resp.Breakdown = &b
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// ListFigures handles GET /api/figures
func (h *QuizHandler) ListFigures(w http.ResponseWriter, r *http.Request) {
	figures := h.figures.Figures()
	out := make([]models.Figure, 0, len(figures))
	for _, f := range figures {
		out = append(out, models.Figure{PoliticalFigure: f, Block: f.Block()})
	}
	middleware.JSONResponse(w, http.StatusOK, models.FiguresResponse{Figures: out})
}

// GetGridBlock handles GET /api/grid/{block}
func (h *QuizHandler) GetGridBlock(w http.ResponseWriter, r *http.Request) {
	block, err := strconv.Atoi(r.PathValue("block"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "block must be an integer")
		return
	}

	pos, err := compass.BlockInfo(block)
	if errors.Is(err, compass.ErrBlockOutOfRange) {
		middleware.ErrorResponse(w, http.StatusNotFound, "block must be between 0 and 99")
		return
	}
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	cellX, cellY := compass.CellCoordinates(block)
	resp := models.GridBlockResponse{
		GridPosition: pos,
		Description:  pos.Description(),
		CellX:        cellX,
		CellY:        cellY,
	}
	if fig, ok := h.figures.FigureAt(block); ok {
		resp.Figure = &fig
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// ListAvatars handles GET /api/avatars
func (h *QuizHandler) ListAvatars(w http.ResponseWriter, r *http.Request) {
	avatars := compass.Avatars()
	out := make([]models.AvatarInfo, 0, len(avatars))
	for _, a := range avatars {
		out = append(out, models.AvatarInfo{Avatar: a, URL: compass.AvatarURL(a.Filename)})
	}
	middleware.JSONResponse(w, http.StatusOK, models.AvatarsResponse{
		Avatars: out,
		Default: compass.DefaultAvatar,
	})
}
