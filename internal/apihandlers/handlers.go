package apihandlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"taxo/internal/app"
)

type APIHandler struct {
	App *app.App
}

func NewAPIHandler(appInstance *app.App) *APIHandler {
	return &APIHandler{App: appInstance}
}

type matchRequest struct {
	Suggestion string `json:"suggestion"`
}

type batchRequest struct {
	Suggestions []string `json:"suggestions"`
}

type validateRequest struct {
	Name string `json:"name"`
}

type suggestRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// MatchHandler matches one suggestion against the taxonomy snapshot.
// A blank suggestion is a valid request that resolves to "create new",
// mirroring the engine's degenerate-input semantics.
func (h *APIHandler) MatchHandler(c *gin.Context) {
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.App.CategoryService.Match(c.Request.Context(), req.Suggestion)
	if err != nil {
		Internal(c, fmt.Sprintf("MatchHandler: failed to match: %v", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": result})
}

// BatchMatchHandler matches a list of suggestions, one result per input
// in the same order.
func (h *APIHandler) BatchMatchHandler(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	results, err := h.App.CategoryService.MatchBatch(c.Request.Context(), req.Suggestions)
	if err != nil {
		Internal(c, fmt.Sprintf("BatchMatchHandler: failed to match: %v", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": results})
}

// TriageHandler batch-matches the suggestions and buckets the results
// into create/reuse/review groups.
func (h *APIHandler) TriageHandler(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	report, err := h.App.CategoryService.TriageSuggestions(c.Request.Context(), req.Suggestions)
	if err != nil {
		Internal(c, fmt.Sprintf("TriageHandler: failed to triage: %v", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": report})
}

// ValidateHandler checks a candidate category name against the naming
// rules. Validation failures are reported in the 200 body, not as HTTP
// errors; only a missing name field is a bad request.
func (h *APIHandler) ValidateHandler(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.Name == "" {
		BadRequest(c, "Missing required field: name")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": h.App.CategoryService.Validate(req.Name)})
}

// SuggestHandler runs the AI suggestion pipeline for a listing and
// returns both the raw suggestion and its match result.
func (h *APIHandler) SuggestHandler(c *gin.Context) {
	var req suggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.Title == "" {
		BadRequest(c, "Missing required field: title")
		return
	}
	if h.App.Suggester == nil {
		Unavailable(c, "No suggestion provider is configured")
		return
	}

	suggestion, match, err := h.App.CategoryService.SuggestAndMatch(c.Request.Context(), req.Title, req.Description)
	if err != nil {
		Internal(c, fmt.Sprintf("SuggestHandler: %v", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"suggestion": suggestion.Category,
		"confidence": suggestion.Confidence,
		"match":      match,
	}})
}
