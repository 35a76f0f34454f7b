package trip

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripcost/internal/apperr"
)

type TripHandler struct {
	service *Service
}

func NewTripHandler(s *Service) *TripHandler {
	return &TripHandler{
		service: s,
	}
}

func (h *TripHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/v1/trips/cost", h.ComputeHandler)
	router.POST("/v1/trips/compare", h.CompareHandler)
	router.POST("/v1/trips/schedule", h.ScheduleHandler)
	router.POST("/v1/trips/reprice", h.RepriceHandler)
}

type CompareRequest struct {
	Plans []Plan `json:"plans"`
}

type RepriceRequest struct {
	Destination DestinationCost `json:"destination"`
	Selection   Selection       `json:"selection"`
}

type RepriceResponse struct {
	Repriced
	LocalCurrency string  `json:"local_currency,omitempty"`
	LocalAmount   float64 `json:"local_amount,omitempty"`
}

// ComputeHandler godoc
// @Summary      Price a trip plan
// @Description  Flights, ground transport, food and hotels for every leg plus trip totals
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        request body Plan true "Trip plan"
// @Success      200 {object} Summary
// @Failure      400 {object} map[string]string
// @Router       /v1/trips/cost [post]
func (h *TripHandler) ComputeHandler(c *gin.Context) {
	var plan Plan
	if err := c.ShouldBindJSON(&plan); err != nil {
		apperr.BindError(c, err)
		return
	}

	summary, err := h.service.Compute(c.Request.Context(), plan)
	if err != nil {
		apperr.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// CompareHandler godoc
// @Summary      Compare trip plans
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        request body CompareRequest true "Plans"
// @Success      200 {object} CompareResult
// @Failure      400 {object} map[string]string
// @Router       /v1/trips/compare [post]
func (h *TripHandler) CompareHandler(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.BindError(c, err)
		return
	}

	result, err := h.service.Compare(c.Request.Context(), req.Plans)
	if err != nil {
		apperr.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ScheduleHandler godoc
// @Summary      Day-by-day schedule for a priced trip
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        request body Summary true "Trip summary"
// @Success      200 {array} DaySchedule
// @Failure      400 {object} map[string]string
// @Router       /v1/trips/schedule [post]
func (h *TripHandler) ScheduleHandler(c *gin.Context) {
	var summary Summary
	if err := c.ShouldBindJSON(&summary); err != nil {
		apperr.BindError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.service.Schedule(c.Request.Context(), summary))
}

// RepriceHandler godoc
// @Summary      Re-price one destination under a different selection
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        request body RepriceRequest true "Destination and selection"
// @Success      200 {object} RepriceResponse
// @Failure      400 {object} map[string]string
// @Router       /v1/trips/reprice [post]
func (h *TripHandler) RepriceHandler(c *gin.Context) {
	var req RepriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.BindError(c, err)
		return
	}

	r := h.service.Reprice(c.Request.Context(), req.Destination, req.Selection)
	resp := RepriceResponse{Repriced: r}
	if amount := r.LocalAmount(req.Destination); amount > 0 {
		resp.LocalCurrency = req.Destination.LocalCurrency
		resp.LocalAmount = amount
	}

	c.JSON(http.StatusOK, resp)
}
