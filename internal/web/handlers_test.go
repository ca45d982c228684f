package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/capplan/internal/estimation"
	"github.com/alexanderramin/capplan/internal/repository"
	"github.com/alexanderramin/capplan/internal/service"
	"github.com/alexanderramin/capplan/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	scenarioRepo := repository.NewScenarioRepo(database)
	itemRepo := repository.NewItemRepo(database)
	settings := service.NewSettingsService(repository.NewSettingsRepo(database))

	return NewServer(Services{
		Scenarios: service.NewScenarioService(scenarioRepo),
		Items:     service.NewItemService(itemRepo, scenarioRepo, settings, uow),
		Settings:  settings,
		Estimate:  service.NewEstimateService(settings),
		Capacity:  service.NewCapacityService(scenarioRepo, itemRepo, settings),
		Import:    service.NewImportService(scenarioRepo, settings, uow),
	}, zerolog.Nop())
}

func doJSON(t *testing.T, s *Server, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w.Code, resp
}

func createScenario(t *testing.T, s *Server, ux, content float64) string {
	t.Helper()
	code, resp := doJSON(t, s, http.MethodPost, "/api/scenarios", map[string]any{
		"name": "2026 Q1", "ux_designers": ux, "content_designers": content,
	})
	require.Equal(t, http.StatusCreated, code, resp)
	return resp["scenario"].(map[string]any)["id"].(string)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	code, resp := doJSON(t, s, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, resp["success"])
}

func TestScenarioLifecycle(t *testing.T) {
	s := newTestServer(t)
	id := createScenario(t, s, 2, 1)

	code, resp := doJSON(t, s, http.MethodGet, "/api/scenarios/"+id, nil)
	require.Equal(t, http.StatusOK, code)
	sc := resp["scenario"].(map[string]any)
	assert.Equal(t, 26.0, sc["ux_capacity_weeks"])
	assert.Equal(t, 13.0, sc["weeks_per_period"])

	code, resp = doJSON(t, s, http.MethodPut, "/api/scenarios/"+id, map[string]any{"content_designers": 2})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 26.0, resp["scenario"].(map[string]any)["content_capacity_weeks"])

	code, resp = doJSON(t, s, http.MethodDelete, "/api/scenarios/"+id, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, resp["success"])

	code, _ = doJSON(t, s, http.MethodPost, "/api/scenarios/"+id+"/archive", nil)
	require.Equal(t, http.StatusOK, code)

	code, resp = doJSON(t, s, http.MethodGet, "/api/scenarios", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0.0, resp["count"])
	code, resp = doJSON(t, s, http.MethodGet, "/api/scenarios?all=true", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1.0, resp["count"])

	code, _ = doJSON(t, s, http.MethodDelete, "/api/scenarios/"+id, nil)
	require.Equal(t, http.StatusOK, code)
	code, _ = doJSON(t, s, http.MethodGet, "/api/scenarios/"+id, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCreateScenario_Errors(t *testing.T) {
	s := newTestServer(t)

	code, resp := doJSON(t, s, http.MethodPost, "/api/scenarios", map[string]any{"name": "", "ux_designers": 1})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, resp["error"], "name is required")

	code, _ = doJSON(t, s, http.MethodPost, "/api/scenarios", "{not json")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestItemsAndSummary(t *testing.T) {
	s := newTestServer(t)
	id := createScenario(t, s, 1, 1)

	code, resp := doJSON(t, s, http.MethodPost, "/api/scenarios/"+id+"/items", map[string]any{
		"name": "Checkout", "initiative": "Core", "priority": 1,
		"ux_scores": map[string]int{"productRisk": 4, "problemAmbiguity": 4, "discoveryDepth": 4},
	})
	require.Equal(t, http.StatusCreated, code, resp)
	item := resp["item"].(map[string]any)
	itemID := item["id"].(string)
	assert.Equal(t, "#1", item["key"])
	assert.Equal(t, "L", item["ux"].(map[string]any)["size_band"])

	code, resp = doJSON(t, s, http.MethodPut, "/api/items/"+itemID+"/scores/ux", map[string]any{
		"scores": map[string]int{"productRisk": 5, "problemAmbiguity": 5, "discoveryDepth": 5},
	})
	require.Equal(t, http.StatusOK, code, resp)
	assert.Equal(t, 16.0, resp["item"].(map[string]any)["ux"].(map[string]any)["work_weeks"])

	code, resp = doJSON(t, s, http.MethodGet, "/api/scenarios/"+id+"/summary", nil)
	require.Equal(t, http.StatusOK, code)
	sum := resp["summary"].(map[string]any)
	ux := sum["ux"].(map[string]any)
	assert.Equal(t, 16.0, ux["total_weeks"])
	assert.Equal(t, 3.0, ux["surplus_deficit"])
	assert.Equal(t, 2.0, ux["headcount_needed"])
	assert.Equal(t, 0.0, sum["cut_line_index"])

	code, _ = doJSON(t, s, http.MethodPut, "/api/items/"+itemID+"/scores/ux", map[string]any{
		"scores": map[string]int{"productRisk": 6},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	code, resp = doJSON(t, s, http.MethodPut, "/api/items/"+itemID+"/override/ux", map[string]any{"weeks": 1.5})
	require.Equal(t, http.StatusOK, code, resp)
	assert.Equal(t, 2.0, resp["item"].(map[string]any)["ux"].(map[string]any)["work_weeks"])

	code, _ = doJSON(t, s, http.MethodDelete, "/api/items/"+itemID, nil)
	require.Equal(t, http.StatusOK, code)
	code, _ = doJSON(t, s, http.MethodGet, "/api/items/"+itemID, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestSettingsEndpoints(t *testing.T) {
	s := newTestServer(t)

	code, resp := doJSON(t, s, http.MethodPut, "/api/settings/time_model.focusTimeRatio", map[string]any{"value": 0.5})
	require.Equal(t, http.StatusOK, code, resp)
	settings := resp["settings"].(map[string]any)
	assert.Equal(t, 0.5, settings["model"].(map[string]any)["focus_time_ratio"])

	code, _ = doJSON(t, s, http.MethodPut, "/api/settings/bogus.key", map[string]any{"value": 1})
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	code, _ = doJSON(t, s, http.MethodDelete, "/api/settings/time_model.focusTimeRatio", nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = doJSON(t, s, http.MethodDelete, "/api/settings/time_model.focusTimeRatio", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, resp = doJSON(t, s, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0.75, resp["settings"].(map[string]any)["model"].(map[string]any)["focus_time_ratio"])
}

func TestEstimateEndpoint(t *testing.T) {
	s := newTestServer(t)

	code, resp := doJSON(t, s, http.MethodPost, "/api/estimate", map[string]any{
		"role":   "content",
		"scores": map[string]int{"contentSurfaceArea": 3, "localizationScope": 3, "regulatoryReview": 3},
	})
	require.Equal(t, http.StatusOK, code, resp)
	est := resp["estimate"].(map[string]any)
	assert.Equal(t, "M", est["size_band"])
	assert.Equal(t, 3.0, est["work_weeks"])
	assert.Equal(t, true, est["scored"])

	code, _ = doJSON(t, s, http.MethodPost, "/api/estimate", map[string]any{"role": "qa"})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestImportEndpoints(t *testing.T) {
	s := newTestServer(t)

	code, resp := doJSON(t, s, http.MethodPost, "/api/import", `{
		"scenario": {"name": "Imported", "ux_designers": 1, "content_designers": 1},
		"items": [{"name": "One"}, {"name": "Two", "priority": 2}]
	}`)
	require.Equal(t, http.StatusCreated, code, resp)
	imp := resp["import"].(map[string]any)
	assert.Equal(t, 2.0, imp["item_count"])
	scenarioID := imp["scenario_id"].(string)

	code, resp = doJSON(t, s, http.MethodPost, "/api/scenarios/"+scenarioID+"/import", `{"items": [{"name": "Three"}]}`)
	require.Equal(t, http.StatusCreated, code, resp)

	code, resp = doJSON(t, s, http.MethodGet, "/api/scenarios/"+scenarioID+"/items", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 3.0, resp["count"])

	code, _ = doJSON(t, s, http.MethodPost, "/api/scenarios/"+scenarioID+"/import", `{"items": [{"name": ""}]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	code, _ = doJSON(t, s, http.MethodPost, "/api/import", `{"itemz": []}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusFor(repository.ErrNotFound))
	assert.Equal(t, http.StatusUnprocessableEntity, statusFor(service.ErrValidation))
	assert.Equal(t, http.StatusBadRequest, statusFor(service.ErrNotArchived))
	assert.Equal(t, http.StatusBadRequest, statusFor(fmt.Errorf("scenario %q: %w", "Q1", estimation.ErrOutOfRange)))
	assert.Equal(t, http.StatusInternalServerError, statusFor(assert.AnError))
}
