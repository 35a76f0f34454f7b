package airport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(as []Airport) []string {
	out := make([]string, len(as))
	for i, a := range as {
		out[i] = a.Code
	}
	return out
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty", query: "", want: []string{}},
		{name: "code", query: "icn", want: []string{"ICN"}},
		{name: "city", query: "SEOUL", want: []string{"ICN", "GMP"}},
		{name: "substring of city and name", query: "new", want: []string{"DEL", "JFK", "EWR", "LGA", "AKL"}},
		{name: "no match", query: "atlantis", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, codes(Search(tt.query)))
		})
	}
}

func TestSearch_CappedAtEight(t *testing.T) {
	got := Search("international")
	assert.Len(t, got, maxSearchResults)
	assert.Equal(t, "ICN", got[0].Code)
}

func TestByCode(t *testing.T) {
	a, ok := ByCode("dxb")
	require.True(t, ok)
	assert.Equal(t, "Dubai", a.City)
	assert.Equal(t, "Dubai (DXB)", a.Label())

	_, ok = ByCode("ZZZ")
	assert.False(t, ok)
	assert.Len(t, airports, 58)
}

func TestHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler().RegisterRoutes(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/airports?q=tokyo", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got []Airport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, []string{"NRT", "HND"}, codes(got))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/airports", nil))
	assert.Equal(t, "[]", w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/airports/XYZ", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
