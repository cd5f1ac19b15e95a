package models

import (
	"time"

	"github.com/lankacompass/server/compass"
)

// Result listing modes
const (
	ModeRecent    = "recent"
	ModePaginated = "paginated"
)

// Request types

type SaveResultRequest struct {
	Name          string   `json:"name"`
	EconomicScore *float64 `json:"economicScore"`
	SocialScore   *float64 `json:"socialScore"`
	Quadrant      string   `json:"quadrant"`
	Avatar        string   `json:"avatar"`
}

type CreateSuggestionRequest struct {
	Name     string `json:"name"`
	Quadrant string `json:"quadrant,omitempty"`
	X        *int   `json:"x"`
	Y        *int   `json:"y"`
	GridID   *int   `json:"gridId"`
}

type ScoreRequest struct {
	Answers []compass.Answer `json:"answers"`
}

// Response types

type SaveResultResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	Message string `json:"message"`
}

type RecentResultsResponse struct {
	Results []UserResult `json:"results"`
}

type PaginatedResultsResponse struct {
	Results    []UserResult `json:"results"`
	Total      int          `json:"total"`
	TotalPages int          `json:"totalPages"`
	Page       int          `json:"page"`
}

type StatsResponse struct {
	TotalUsers        int            `json:"totalUsers"`
	TotalUsersDisplay string         `json:"totalUsersDisplay"`
	Distribution      map[string]int `json:"distribution"`
	AverageEconomic   float64        `json:"averageEconomic"`
	AverageSocial     float64        `json:"averageSocial"`
	AverageGrid       int            `json:"averageGrid"`
	Success           bool           `json:"success"`
}

type SuggestionsResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

type SuggestionResponse struct {
	Suggestion Suggestion `json:"suggestion"`
	Message    string     `json:"message"`
}

type QuestionsResponse struct {
	Questions      []LocalizedQuestion `json:"questions"`
	Language       string              `json:"language"`
	Page           int                 `json:"page"`
	PerPage        int                 `json:"perPage"`
	TotalPages     int                 `json:"totalPages"`
	TotalQuestions int                 `json:"totalQuestions"`
}

type ScoreResponse struct {
	Result        compass.Result          `json:"result"`
	Grid          compass.GridPosition    `json:"grid"`
	QuadrantLabel string                  `json:"quadrantLabel"`
	Economic      string                  `json:"economicDisplay"`
	Social        string                  `json:"socialDisplay"`
	Complete      bool                    `json:"complete"`
	Progress      int                     `json:"progress"`
	Match         *compass.FigureMatch    `json:"match"`
	Breakdown     *compass.ScoreBreakdown `json:"breakdown,omitempty"`
}

type FiguresResponse struct {
	Figures []Figure `json:"figures"`
}

type GridBlockResponse struct {
	compass.GridPosition
	Description string                   `json:"description"`
	CellX       int                      `json:"cellX"`
	CellY       int                      `json:"cellY"`
	Figure      *compass.PoliticalFigure `json:"figure"`
}

type AvatarsResponse struct {
	Avatars []AvatarInfo `json:"avatars"`
	Default string       `json:"default"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

// UserResult mirrors a user_results row.
type UserResult struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	EconomicScore float64              `json:"economic_score"`
	SocialScore   float64              `json:"social_score"`
	Quadrant      string               `json:"quadrant"`
	Avatar        string               `json:"avatar"`
	CreatedAt     time.Time            `json:"created_at"`
	CreatedAgo    string               `json:"created_ago"`
	Grid          compass.GridPosition `json:"grid"`
}

// Suggestion mirrors a politician_suggestions row.
type Suggestion struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Quadrant    string    `json:"quadrant"`
	X           int       `json:"x"`
	Y           int       `json:"y"`
	GridID      int       `json:"gridId"`
	Votes       int       `json:"votes"`
	SuggestedBy string    `json:"suggestedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

type LocalizedQuestion struct {
	ID       int              `json:"id"`
	Text     string           `json:"text"`
	Category compass.Category `json:"category"`
}

type Figure struct {
	compass.PoliticalFigure
	Block int `json:"block"`
}

type AvatarInfo struct {
	compass.Avatar
	URL string `json:"url"`
}
