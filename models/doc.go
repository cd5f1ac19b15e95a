// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SaveResultRequest: name, economicScore, socialScore, quadrant, avatar
  - CreateSuggestionRequest: name, quadrant (optional), x, y, gridId
  - ScoreRequest: answers ([{questionId, value}])

Numeric request fields are pointers so a missing value can be told apart
from zero.

# Response Types

Types for JSON responses:

  - SaveResultResponse: success, id, message
  - RecentResultsResponse / PaginatedResultsResponse: community results
  - StatsResponse: totals, quadrant distribution, averages
  - SuggestionsResponse / SuggestionResponse: grid suggestions
  - QuestionsResponse: one localized page of the question bank
  - ScoreResponse: result, grid position, labels, progress, figure match
  - FiguresResponse, GridBlockResponse, AvatarsResponse: reference data
  - ErrorResponse: error, message

# Domain Types

  - UserResult: a saved result row with computed grid and created_ago
  - Suggestion: a politician suggestion row
  - LocalizedQuestion: question text in the response language
  - Figure, AvatarInfo: catalog entries with derived block or URL
*/
package models
