package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magickal-mortalz/coven-service/internal/audit"
	"github.com/magickal-mortalz/coven-service/internal/repositories/sheet"
	"github.com/magickal-mortalz/coven-service/internal/services"
	"github.com/magickal-mortalz/coven-service/internal/tabular"
	"github.com/magickal-mortalz/coven-service/internal/utils"
	"github.com/magickal-mortalz/coven-service/internal/validator"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := sheet.NewSheetRepository(tabular.NewMemoryStore())
	require.NoError(t, repo.Initialize(context.Background()))

	slogLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	logger := utils.NewSlogLogger(slogLogger)

	manager := services.NewServiceManager(services.ServiceManagerDeps{
		Repo:      repo,
		Recorder:  audit.NopRecorder{},
		Validator: validator.New(),
		Logger:    slogLogger,
	})

	router := gin.New()
	SetupMiddleware(router, logger)
	NewHandlerManager(manager, logger).SetupRoutes(router)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestCreateAndFetchMember(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doJSON(t, router, http.MethodPost, "/api/v1/members", map[string]string{
		"email":      "willow@coven.example",
		"craft_name": "Willow",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, body["success"])
	memberID, _ := body["member_id"].(string)
	require.NotEmpty(t, memberID)

	rec, body = doJSON(t, router, http.MethodGet, "/api/v1/members/"+memberID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	member := body["member"].(map[string]interface{})
	assert.Equal(t, "Willow", member["craft_name"])
	assert.Equal(t, "Neophyte", member["current_degree"])
}

func TestCreateMemberValidationFailure(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doJSON(t, router, http.MethodPost, "/api/v1/members", map[string]string{
		"craft_name": "Nameless",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"])
}

func TestGetMemberNotFoundEnvelope(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doJSON(t, router, http.MethodGet, "/api/v1/members/MEM-MISSING", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["success"])
}

func TestAdvanceToConflict(t *testing.T) {
	router := newTestRouter(t)

	_, body := doJSON(t, router, http.MethodPost, "/api/v1/members", map[string]string{
		"email":      "rowan@coven.example",
		"craft_name": "Rowan",
	})
	memberID := body["member_id"].(string)
	advancePath := fmt.Sprintf("/api/v1/members/%s/advance", memberID)

	degrees := []string{
		"1st Degree Initiate",
		"2nd Degree Initiate",
		"3rd Degree Initiate",
		"High Priest/ess",
	}
	for _, want := range degrees {
		rec, body := doJSON(t, router, http.MethodPost, advancePath, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, want, body["new_degree"])
	}

	rec, body := doJSON(t, router, http.MethodPost, advancePath, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, false, body["success"])
}

func TestModuleStatusUpdateFlow(t *testing.T) {
	router := newTestRouter(t)

	_, body := doJSON(t, router, http.MethodPost, "/api/v1/members", map[string]string{
		"email":      "ivy@coven.example",
		"craft_name": "Ivy",
	})
	memberID := body["member_id"].(string)

	rec, body := doJSON(t, router, http.MethodGet, "/api/v1/members/"+memberID+"/progress", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	progress := body["progress"].(map[string]interface{})
	byYear := progress["by_year"].(map[string]interface{})
	year1 := byYear["1"].([]interface{})
	first := year1[0].(map[string]interface{})
	progressID := first["id"].(string)

	rec, _ = doJSON(t, router, http.MethodPut, "/api/v1/progress/"+progressID+"/status", map[string]string{
		"status": "Completed",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, body = doJSON(t, router, http.MethodPut, "/api/v1/progress/"+progressID+"/status", map[string]string{
		"status": "Transcended",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])
}

func TestGrimoireLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	_, body := doJSON(t, router, http.MethodPost, "/api/v1/members", map[string]string{
		"email":      "fern@coven.example",
		"craft_name": "Fern",
	})
	memberID := body["member_id"].(string)

	rec, body := doJSON(t, router, http.MethodPost, "/api/v1/members/"+memberID+"/grimoire", map[string]string{
		"title":    "Banishing Charm",
		"category": "spells",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	entryID := body["entry_id"].(string)

	rec, body = doJSON(t, router, http.MethodGet, "/api/v1/members/"+memberID+"/grimoire?category=spells", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	grimoire := body["grimoire"].(map[string]interface{})
	entries := grimoire["entries"].([]interface{})
	assert.Len(t, entries, 1)

	rec, _ = doJSON(t, router, http.MethodDelete, "/api/v1/grimoire/"+entryID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, router, http.MethodDelete, "/api/v1/grimoire/"+entryID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
