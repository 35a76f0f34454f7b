package savedtrip

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripcost/internal/apperr"
	"tripcost/internal/trip"
)

type Handler struct {
	store *Store
}

func NewHandler(s *Store) *Handler {
	return &Handler{
		store: s,
	}
}

func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.GET("/v1/saved-trips", h.ListHandler)
	router.POST("/v1/saved-trips", h.SaveHandler)
	router.DELETE("/v1/saved-trips", h.ClearHandler)
	router.DELETE("/v1/saved-trips/:id", h.RemoveHandler)
}

// ListHandler godoc
// @Summary      List saved trips
// @Description  Newest first
// @Tags         saved-trips
// @Produce      json
// @Success      200 {array} SavedTrip
// @Failure      500 {object} map[string]string
// @Router       /v1/saved-trips [get]
func (h *Handler) ListHandler(c *gin.Context) {
	trips, err := h.store.List(c.Request.Context())
	if err != nil {
		apperr.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, trips)
}

// SaveHandler godoc
// @Summary      Save a priced trip
// @Tags         saved-trips
// @Accept       json
// @Produce      json
// @Param        request body trip.Summary true "Trip cost summary"
// @Success      201 {object} SavedTrip
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /v1/saved-trips [post]
func (h *Handler) SaveHandler(c *gin.Context) {
	var summary trip.Summary
	if err := c.ShouldBindJSON(&summary); err != nil {
		apperr.BindError(c, err)
		return
	}
	if len(summary.Destinations) == 0 {
		apperr.SendError(c, apperr.Validation("summary has no destinations", nil))
		return
	}

	saved, err := h.store.Save(c.Request.Context(), summary)
	if err != nil {
		apperr.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// RemoveHandler godoc
// @Summary      Delete one saved trip
// @Tags         saved-trips
// @Param        id path string true "Saved trip id"
// @Success      204
// @Failure      500 {object} map[string]string
// @Router       /v1/saved-trips/{id} [delete]
func (h *Handler) RemoveHandler(c *gin.Context) {
	if err := h.store.Remove(c.Request.Context(), c.Param("id")); err != nil {
		apperr.SendError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ClearHandler godoc
// @Summary      Delete every saved trip
// @Tags         saved-trips
// @Success      204
// @Failure      500 {object} map[string]string
// @Router       /v1/saved-trips [delete]
func (h *Handler) ClearHandler(c *gin.Context) {
	if err := h.store.Clear(c.Request.Context()); err != nil {
		apperr.SendError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
