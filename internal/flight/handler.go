package flight

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripcost/internal/apperr"
)

type FlightHandler struct {
	service *Service
}

func NewFlightHandler(s *Service) *FlightHandler {
	return &FlightHandler{
		service: s,
	}
}

func (h *FlightHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/v1/flights/search", h.SearchFlightsHandler)
	router.POST("/v1/flights/filter", h.FilterFlightsHandler)
	router.DELETE("/v1/flights/cache", h.InvalidateCacheHandler)
}

// SearchFlightsHandler godoc
// @Summary      Search flight options
// @Description  Deterministic flight offers for a route and date, ranked by priorities
// @Tags         flights
// @Accept       json
// @Produce      json
// @Param        request body SearchRequest true "Search Criteria"
// @Success      200 {object} FlightSearchResponse
// @Failure      400 {object} map[string]string
// @Router       /v1/flights/search [post]
func (h *FlightHandler) SearchFlightsHandler(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.BindError(c, err)
		return
	}

	response, err := h.service.SearchFlights(c.Request.Context(), req)
	if err != nil {
		apperr.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// FilterFlightsHandler godoc
// @Summary      Filter flight results
// @Description  Apply filters like price range, airline, or stops and an optional sort
// @Tags         flights
// @Accept       json
// @Produce      json
// @Param        request body FilterRequest true "Filter Criteria"
// @Success      200 {object} FlightSearchResponse
// @Failure      400 {object} map[string]string
// @Router       /v1/flights/filter [post]
func (h *FlightHandler) FilterFlightsHandler(c *gin.Context) {
	var req FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.BindError(c, err)
		return
	}

	response, err := h.service.FilterFlights(c.Request.Context(), req)
	if err != nil {
		apperr.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *FlightHandler) InvalidateCacheHandler(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.BindError(c, err)
		return
	}

	if err := h.service.InvalidateCache(c.Request.Context(), req); err != nil {
		apperr.SendError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
