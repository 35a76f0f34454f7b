package airport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripcost/internal/apperr"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.GET("/v1/airports", h.SearchHandler)
	router.GET("/v1/airports/:code", h.GetHandler)
}

// SearchHandler godoc
// @Summary      Search airports
// @Description  Case-insensitive substring match over code, city, country and name (max 8)
// @Tags         airports
// @Produce      json
// @Param        q query string false "Search text"
// @Success      200 {array} Airport
// @Router       /v1/airports [get]
func (h *Handler) SearchHandler(c *gin.Context) {
	c.JSON(http.StatusOK, Search(c.Query("q")))
}

// GetHandler godoc
// @Summary      Get airport by IATA code
// @Tags         airports
// @Produce      json
// @Param        code path string true "IATA code"
// @Success      200 {object} Airport
// @Failure      404 {object} map[string]string
// @Router       /v1/airports/{code} [get]
func (h *Handler) GetHandler(c *gin.Context) {
	a, ok := ByCode(c.Param("code"))
	if !ok {
		apperr.SendError(c, apperr.NotFound("airport not found"))
		return
	}
	c.JSON(http.StatusOK, a)
}
