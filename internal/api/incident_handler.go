package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/munigo/civic-portal-api/internal/api/dto"
	"github.com/munigo/civic-portal-api/internal/domain"
	"github.com/munigo/civic-portal-api/internal/tenancy"
	"github.com/munigo/civic-portal-api/pkg/utils"
)

//go:generate mockery --name IncidentService --output ../mocks
type IncidentService interface {
	List(ctx context.Context, filter *domain.TenancyIncidentFilter) ([]dto.IncidentResponse, error)
	GetStats(ctx context.Context, filter *domain.TenancyIncidentFilter) (*dto.GetIncidentStatsResponse, error)
	ScheduleArchive(ctx context.Context, cityID string, beforeDate time.Time) error
}

type IncidentHandler struct {
	*BaseHandler
	service IncidentService
}

func NewIncidentHandler(service IncidentService) *IncidentHandler {
	return &IncidentHandler{service: service}
}

// ListIncidents Get a list of tenancy incidents
// @Summary List incidents
// @Description Get tenancy incidents with filtering options; defaults to the active city
// @Tags    incidents
// @Produce json
// @Param   kind query string false "Filter by incident kind"
// @Param   severity query string false "Filter by severity"
// @Param   actor_id query string false "Filter by actor"
// @Param   city_id query string false "Filter by city (defaults to the active city)"
// @Param   start_time query string false "Filter by start time (RFC3339 or YYYY-MM-DD)"
// @Param   end_time query string false "Filter by end time (RFC3339 or YYYY-MM-DD)"
// @Param   limit query int false "Maximum results"
// @Param   offset query int false "Result offset"
// @Success 200 {array} dto.IncidentResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /incidents [get]
func (h *IncidentHandler) ListIncidents(c *gin.Context) {
	filter, err := incidentFilterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	incidents, err := h.service.List(h.RequestCtx(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, incidents)
}

// GetStats Get tenancy incident statistics
// @Summary Get incident statistics
// @Description Get incident counts grouped by kind and severity
// @Tags    incidents
// @Produce json
// @Param   city_id query string false "Filter by city (defaults to the active city)"
// @Param   start_time query string false "Filter by start time (RFC3339 or YYYY-MM-DD)"
// @Param   end_time query string false "Filter by end time (RFC3339 or YYYY-MM-DD)"
// @Success 200 {object} dto.GetIncidentStatsResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /incidents/stats [get]
func (h *IncidentHandler) GetStats(c *gin.Context) {
	filter, err := incidentFilterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	stats, err := h.service.GetStats(h.RequestCtx(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Cleanup Schedule archive and cleanup of old incidents
// @Summary Schedule incident cleanup
// @Description Enqueues an archive job for a city's incidents before the specified date
// @Tags    incidents
// @Produce json
// @Param   city_id query string false "City to clean up (defaults to the active city)"
// @Param   before_date query string true "Archive incidents before this date (RFC3339 or YYYY-MM-DD)"
// @Success 202 {object} map[string]interface{} "Cleanup operation scheduled"
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /incidents/cleanup [delete]
func (h *IncidentHandler) Cleanup(c *gin.Context) {
	ctx := h.RequestCtx(c)

	cityID := c.Query("city_id")
	if cityID == "" {
		cityID = tenancy.CityID(ctx)
	}
	if cityID == "" {
		c.JSON(http.StatusBadRequest, dto.Error{Code: tenancy.CodeCityRequired, Error: "city_id parameter is required"})
		return
	}

	beforeDateStr := c.Query("before_date")
	if beforeDateStr == "" {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "before_date parameter is required"})
		return
	}

	beforeDate, err := utils.ParseUserTime(beforeDateStr, true)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "Invalid before_date format: " + err.Error()})
		return
	}

	if beforeDate.After(time.Now()) {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "before_date cannot be in the future"})
		return
	}

	if err := h.service.ScheduleArchive(ctx, cityID, beforeDate); err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: "Failed to schedule cleanup: " + err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message":     "Cleanup operation scheduled successfully",
		"city_id":     cityID,
		"before_date": beforeDate.Format(time.RFC3339),
	})
}

func incidentFilterFromQuery(c *gin.Context) (*domain.TenancyIncidentFilter, error) {
	filter := &domain.TenancyIncidentFilter{
		CityID:   c.Query("city_id"),
		Kind:     domain.IncidentKind(c.Query("kind")),
		Severity: domain.SeverityLevel(c.Query("severity")),
		ActorID:  c.Query("actor_id"),
	}

	// Incidents default to the active city; admins may name another city
	// explicitly.
	if filter.CityID == "" {
		filter.CityID = tenancy.CityID(c.Request.Context())
	}

	if limit := c.Query("limit"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil {
			filter.Limit = n
		}
	}
	if offset := c.Query("offset"); offset != "" {
		if n, err := strconv.Atoi(offset); err == nil {
			filter.Offset = n
		}
	}

	if startTime := c.Query("start_time"); startTime != "" {
		t, err := utils.ParseUserTime(startTime, false)
		if err != nil {
			return nil, err
		}
		filter.StartTime = t
	}
	if endTime := c.Query("end_time"); endTime != "" {
		t, err := utils.ParseUserTime(endTime, true)
		if err != nil {
			return nil, err
		}
		filter.EndTime = t
	}

	return filter, nil
}
