package apihandlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxo/internal/app"
	"taxo/internal/services"
	"taxo/internal/taxonomy"
	"taxo/pkg/matching"
	"taxo/pkg/validation"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	snapshot := taxonomy.NewStaticProvider([]matching.Category{
		{Name: "Electronics", Slug: "electronics"},
		{Name: "Smartphones", Slug: "smartphones", ParentID: "electronics"},
	})
	appInstance := &app.App{
		CategoryService: services.NewCategoryService(snapshot, validation.NewValidator(validation.DefaultRules()), nil, 0),
	}
	handler := NewAPIHandler(appInstance)

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.POST("/match", handler.MatchHandler)
	v1.POST("/match/batch", handler.BatchMatchHandler)
	v1.POST("/triage", handler.TriageHandler)
	v1.POST("/validate", handler.ValidateHandler)
	v1.POST("/suggest", handler.SuggestHandler)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMatchHandler(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, "/api/v1/match", `{"suggestion": "smartphone"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data matching.MatchResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Data.Match)
	assert.Equal(t, "Smartphones", resp.Data.Match.Name)
	assert.False(t, resp.Data.ShouldCreateNew)
	assert.Greater(t, resp.Data.Confidence, 80)
}

func TestMatchHandler_BlankSuggestionIsCreateNew(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, "/api/v1/match", `{"suggestion": "  "}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data matching.MatchResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.Data.Match)
	assert.True(t, resp.Data.ShouldCreateNew)
	assert.Equal(t, 0, resp.Data.Confidence)
}

func TestMatchHandler_InvalidBody(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, "/api/v1/match", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "bad_request")
}

func TestBatchMatchHandler(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, "/api/v1/match/batch", `{"suggestions": ["Electronics", "Something Else Entirely"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []matching.MatchResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.False(t, resp.Data[0].ShouldCreateNew)
	assert.True(t, resp.Data[1].ShouldCreateNew)
}

func TestTriageHandler(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, "/api/v1/triage", `{"suggestions": ["Electronics", "Something Else Entirely"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data matching.TriageReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.ShouldReuse, 1)
	assert.Len(t, resp.Data.ShouldCreateNew, 1)
}

func TestValidateHandler(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, "/api/v1/validate", `{"name": "iPhones"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data validation.Result `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Data.Valid)
	require.NotEmpty(t, resp.Data.Errors)
	assert.Contains(t, resp.Data.Errors[len(resp.Data.Errors)-1], "brand-agnostic")
}

func TestValidateHandler_MissingName(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, "/api/v1/validate", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSuggestHandler_NoProvider(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, "/api/v1/suggest", `{"title": "Used phone"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "unavailable")
}
