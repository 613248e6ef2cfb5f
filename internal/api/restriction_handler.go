package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/munigo/civic-portal-api/internal/api/dto"
)

//go:generate mockery --name RestrictionService --output ../mocks
type RestrictionService interface {
	Create(ctx context.Context, req dto.CreateRestrictionRequest) (*dto.RestrictionResponse, error)
	ListForUser(ctx context.Context, userID string) ([]dto.RestrictionResponse, error)
	Revoke(ctx context.Context, id string) error
}

type RestrictionHandler struct {
	*BaseHandler
	service RestrictionService
}

func NewRestrictionHandler(service RestrictionService) *RestrictionHandler {
	return &RestrictionHandler{service: service}
}

// CreateRestriction Place a restriction on a user
// @Summary Create restriction
// @Description Place a moderation restriction on a user, scoped to the active city unless marked global
// @Tags    restrictions
// @Accept  json
// @Produce json
// @Param   body body dto.CreateRestrictionRequest true "Restriction object"
// @Success 201 {object} dto.RestrictionResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /restrictions [post]
func (h *RestrictionHandler) CreateRestriction(c *gin.Context) {
	var req dto.CreateRestrictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	restriction, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, restriction)
}

// ListUserRestrictions List the restrictions placed on a user
// @Summary List user restrictions
// @Description Get every restriction recorded for a user
// @Tags    restrictions
// @Produce json
// @Param   user_id path string true "User ID"
// @Success 200 {array} dto.RestrictionResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /restrictions/users/{user_id} [get]
func (h *RestrictionHandler) ListUserRestrictions(c *gin.Context) {
	userID := c.Param("user_id")

	restrictions, err := h.service.ListForUser(h.RequestCtx(c), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, restrictions)
}

// RevokeRestriction Revoke an active restriction
// @Summary Revoke restriction
// @Description Revoke a restriction so it stops applying immediately
// @Tags    restrictions
// @Produce json
// @Param   id path string true "Restriction ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /restrictions/{id} [delete]
func (h *RestrictionHandler) RevokeRestriction(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.Revoke(h.RequestCtx(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Restriction revoked successfully"})
}
