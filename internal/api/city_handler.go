package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/munigo/civic-portal-api/internal/api/dto"
)

//go:generate mockery --name CityService --output ../mocks
type CityService interface {
	ListActive(ctx context.Context) ([]dto.CityResponse, error)
	Current(ctx context.Context) (*dto.CurrentCityResponse, error)
	ListBairros(ctx context.Context) ([]dto.BairroResponse, error)
}

type CityHandler struct {
	*BaseHandler
	service CityService
}

func NewCityHandler(service CityService) *CityHandler {
	return &CityHandler{service: service}
}

// ListCities List the active cities of the portal
// @Summary List cities
// @Description Get the list of cities where the portal is active
// @Tags    cities
// @Produce json
// @Success 200 {array} dto.CityResponse
// @Failure 500 {object} dto.Error
// @Router  /cities [get]
func (h *CityHandler) ListCities(c *gin.Context) {
	cities, err := h.service.ListActive(h.RequestCtx(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cities)
}

// CurrentCity Report the effective city for this request
// @Summary Current city
// @Description Get the city bound to this request and how it was resolved
// @Tags    cities
// @Produce json
// @Success 200 {object} dto.CurrentCityResponse
// @Failure 400 {object} dto.Error
// @Router  /cities/current [get]
func (h *CityHandler) CurrentCity(c *gin.Context) {
	current, err := h.service.Current(h.RequestCtx(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, current)
}

// ListBairros List the bairros of the active city
// @Summary List bairros
// @Description Get the bairros of the city bound to this request
// @Tags    cities
// @Produce json
// @Success 200 {array} dto.BairroResponse
// @Failure 400 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /cities/current/bairros [get]
func (h *CityHandler) ListBairros(c *gin.Context) {
	bairros, err := h.service.ListBairros(h.RequestCtx(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bairros)
}
