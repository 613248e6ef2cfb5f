package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/munigo/civic-portal-api/internal/api/dto"
	"github.com/munigo/civic-portal-api/internal/domain"
)

//go:generate mockery --name ReportService --output ../mocks
type ReportService interface {
	Create(ctx context.Context, req dto.CreateReportRequest) (*dto.ReportResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ReportResponse, error)
	List(ctx context.Context, filter *domain.ReportFilter) ([]dto.ReportResponse, error)
	ListAllCities(ctx context.Context, filter *domain.ReportFilter) ([]dto.ReportResponse, error)
	UpdateStatus(ctx context.Context, id string, status string) (*dto.ReportResponse, error)
}

type ReportHandler struct {
	*BaseHandler
	service ReportService
}

func NewReportHandler(service ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// CreateReport Create a new citizen report
// @Summary Create report
// @Description Create a new citizen report in the active city
// @Tags    reports
// @Accept  json
// @Produce json
// @Param   body body dto.CreateReportRequest true "Report object"
// @Success 201 {object} dto.ReportResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 422 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /reports [post]
func (h *ReportHandler) CreateReport(c *gin.Context) {
	var req dto.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	report, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}

// GetReport Get a specific report by ID
// @Summary Get report
// @Description Get a report by its ID, scoped to the active city
// @Tags    reports
// @Produce json
// @Param   id path string true "Report ID"
// @Success 200 {object} dto.ReportResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /reports/{id} [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	id := c.Param("id")

	report, err := h.service.GetByID(h.RequestCtx(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// ListReports Get a list of reports in the active city
// @Summary List reports
// @Description Get a list of reports with filtering options, scoped to the active city
// @Tags    reports
// @Produce json
// @Param   page query int false "Page number"
// @Param   page_size query int false "Page size"
// @Param   bairro_id query string false "Filter by bairro"
// @Param   user_id query string false "Filter by reporting user"
// @Param   category query string false "Filter by category"
// @Param   status query string false "Filter by status"
// @Success 200 {array} dto.ReportResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /reports [get]
func (h *ReportHandler) ListReports(c *gin.Context) {
	filter := reportFilterFromQuery(c)

	reports, err := h.service.List(h.RequestCtx(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reports)
}

// ListAllCityReports Get reports across every city
// @Summary List reports across cities
// @Description Get reports from every city, for administrative reporting
// @Tags    reports
// @Produce json
// @Param   page query int false "Page number"
// @Param   page_size query int false "Page size"
// @Param   category query string false "Filter by category"
// @Param   status query string false "Filter by status"
// @Success 200 {array} dto.ReportResponse
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /reports/all [get]
func (h *ReportHandler) ListAllCityReports(c *gin.Context) {
	filter := reportFilterFromQuery(c)

	reports, err := h.service.ListAllCities(h.RequestCtx(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reports)
}

// UpdateReportStatus Update the status of a report
// @Summary Update report status
// @Description Update a report's status, rejecting writes to other cities
// @Tags    reports
// @Accept  json
// @Produce json
// @Param   id path string true "Report ID"
// @Param   body body dto.UpdateReportStatusRequest true "New status"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /reports/{id}/status [patch]
func (h *ReportHandler) UpdateReportStatus(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateReportStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	report, err := h.service.UpdateStatus(h.RequestCtx(c), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func reportFilterFromQuery(c *gin.Context) *domain.ReportFilter {
	filter := &domain.ReportFilter{
		BairroID: c.Query("bairro_id"),
		UserID:   c.Query("user_id"),
		Category: c.Query("category"),
		Status:   domain.ReportStatus(c.Query("status")),
	}

	if page := c.Query("page"); page != "" {
		if pageNum, err := strconv.Atoi(page); err == nil {
			filter.Page = pageNum
		}
	}
	if pageSize := c.Query("page_size"); pageSize != "" {
		if size, err := strconv.Atoi(pageSize); err == nil {
			filter.PageSize = size
		}
	}

	return filter
}
