package trip

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc, _, _ := newTestService(t)

	router := gin.New()
	NewTripHandler(svc).RegisterRoutes(router)
	return router
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestComputeHandler(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/v1/trips/cost", seoulDubaiMiami())
	require.Equal(t, http.StatusOK, w.Code)

	var summary Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 8233.0, summary.GrandTotal)
	assert.Len(t, summary.Destinations, 3)
}

func TestComputeHandler_Invalid(t *testing.T) {
	router := newTestRouter(t)
	plan := seoulDubaiMiami()
	plan.MealsPerDay = 5

	w := postJSON(t, router, "/v1/trips/cost", plan)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")

	req := httptest.NewRequest(http.MethodPost, "/v1/trips/cost", bytes.NewBufferString(`{"legs":`))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestComputeHandler_AirportCodesOnly(t *testing.T) {
	router := newTestRouter(t)
	body := `{
  "legs": [
    {"from": {"code": "ICN"}, "to": {"code": "DXB"}, "departure_date": "2024-06-01"},
    {"from": {"code": "DXB"}, "to": {"code": "MIA"}, "departure_date": "2024-06-08"},
    {"from": {"code": "MIA"}, "to": {"code": "icn"}, "departure_date": "2024-06-15", "is_return": true}
  ],
  "meals_per_day": 2,
  "hotel_stars": 4
}`

	req := httptest.NewRequest(http.MethodPost, "/v1/trips/cost", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var summary Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 8233.0, summary.GrandTotal)
	assert.Equal(t, "Seoul", summary.Destinations[2].Destination.City)
	assert.Equal(t, "leg-1", summary.Destinations[0].LegID)

	w = postJSON(t, router, "/v1/trips/compare", map[string]any{
		"plans": []any{json.RawMessage(strings.Replace(body, `"DXB"}, "departure_date"`, `"XXX"}, "departure_date"`, 1))},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `unknown airport`)
}

func TestCompareHandler(t *testing.T) {
	router := newTestRouter(t)
	budget := seoulDubaiMiami()
	budget.HotelStars = 3

	w := postJSON(t, router, "/v1/trips/compare", CompareRequest{Plans: []Plan{seoulDubaiMiami(), budget}})
	require.Equal(t, http.StatusOK, w.Code)

	var result CompareResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 1, result.CheapestIndex)
}

func TestScheduleHandler_RoundTripsSummaryJSON(t *testing.T) {
	router := newTestRouter(t)
	summary := ComputeTripCost(seoulDubaiMiami())

	w := postJSON(t, router, "/v1/trips/schedule", summary)
	require.Equal(t, http.StatusOK, w.Code)

	var days []DaySchedule
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &days))
	assert.Equal(t, BuildSchedule(summary), days)
}

func TestRepriceHandler(t *testing.T) {
	router := newTestRouter(t)
	dubai := ComputeTripCost(seoulDubaiMiami()).Destinations[0]

	w := postJSON(t, router, "/v1/trips/reprice", map[string]any{
		"destination": dubai,
		"selection":   map[string]any{"meal_tiers": []string{}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp RepriceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0.0, resp.Food)
	assert.Equal(t, 843.0+354+1050, resp.Subtotal)
	assert.Equal(t, "AED", resp.LocalCurrency)
	assert.Equal(t, 5200.0, resp.LocalAmount)
}
