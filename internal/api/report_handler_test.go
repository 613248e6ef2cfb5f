package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/munigo/civic-portal-api/internal/api/dto"
	"github.com/munigo/civic-portal-api/internal/domain"
	"github.com/munigo/civic-portal-api/internal/service"
	"github.com/munigo/civic-portal-api/internal/tenancy"
)

type ReportHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockReportService
	handler     *ReportHandler
}

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Create(ctx context.Context, req dto.CreateReportRequest) (*dto.ReportResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReportResponse), args.Error(1)
}

func (m *MockReportService) GetByID(ctx context.Context, id string) (*dto.ReportResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReportResponse), args.Error(1)
}

func (m *MockReportService) List(ctx context.Context, filter *domain.ReportFilter) ([]dto.ReportResponse, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]dto.ReportResponse), args.Error(1)
}

func (m *MockReportService) ListAllCities(ctx context.Context, filter *domain.ReportFilter) ([]dto.ReportResponse, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]dto.ReportResponse), args.Error(1)
}

func (m *MockReportService) UpdateStatus(ctx context.Context, id string, status string) (*dto.ReportResponse, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReportResponse), args.Error(1)
}

func (s *ReportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockService = new(MockReportService)
	s.handler = NewReportHandler(s.mockService)

	// Setup routes
	s.router.POST("/reports", s.handler.CreateReport)
	s.router.GET("/reports/:id", s.handler.GetReport)
	s.router.GET("/reports", s.handler.ListReports)
	s.router.PATCH("/reports/:id/status", s.handler.UpdateReportStatus)
}

func TestReportHandler(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}

func (s *ReportHandlerTestSuite) TestCreateReport_Success() {
	// Arrange
	req := dto.CreateReportRequest{
		BairroID:  "bairro1",
		Category:  "pothole",
		Title:     "Large pothole on Rua XV",
		Latitude:  -27.2406,
		Longitude: -48.6331,
	}
	created := &dto.ReportResponse{
		ID:       "report1",
		CityID:   "city1",
		BairroID: "bairro1",
		Category: "pothole",
		Title:    "Large pothole on Rua XV",
		Status:   string(domain.ReportStatusOpen),
	}

	s.mockService.On("Create", mock.Anything, mock.MatchedBy(func(r dto.CreateReportRequest) bool {
		return r.BairroID == req.BairroID &&
			r.Category == req.Category &&
			r.Title == req.Title
	})).Return(created, nil)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/reports", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	// Act
	s.handler.CreateReport(c)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	var response dto.ReportResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.Equal(created.ID, response.ID)
	s.Equal(created.CityID, response.CityID)
	s.mockService.AssertExpectations(s.T())
}

func (s *ReportHandlerTestSuite) TestCreateReport_MissingTitle() {
	// Arrange
	body := []byte(`{"category":"pothole"}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/reports", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	// Act
	s.handler.CreateReport(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Create")
}

func (s *ReportHandlerTestSuite) TestCreateReport_BairroMismatch() {
	// Arrange
	req := dto.CreateReportRequest{
		BairroID: "bairro-other-city",
		Category: "pothole",
		Title:    "Large pothole on Rua XV",
	}

	s.mockService.On("Create", mock.Anything, mock.Anything).Return(nil, tenancy.ErrBairroCityMismatch)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/reports", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	// Act
	s.handler.CreateReport(c)

	// Assert
	s.Equal(http.StatusUnprocessableEntity, w.Code)
	var response dto.Error
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.Equal(tenancy.CodeBairroCityMismatch, response.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *ReportHandlerTestSuite) TestCreateReport_UserRestricted() {
	// Arrange
	req := dto.CreateReportRequest{
		Category: "pothole",
		Title:    "Large pothole on Rua XV",
	}

	s.mockService.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrUserRestricted)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/reports", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	// Act
	s.handler.CreateReport(c)

	// Assert
	s.Equal(http.StatusForbidden, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *ReportHandlerTestSuite) TestGetReport_Success() {
	// Arrange
	reportID := "report1"
	expected := &dto.ReportResponse{
		ID:        reportID,
		CityID:    "city1",
		Category:  "pothole",
		Title:     "Large pothole on Rua XV",
		Status:    string(domain.ReportStatusOpen),
		CreatedAt: time.Now(),
	}

	s.mockService.On("GetByID", mock.Anything, reportID).Return(expected, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/reports/"+reportID, nil)
	c.Params = []gin.Param{{Key: "id", Value: reportID}}

	// Act
	s.handler.GetReport(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response dto.ReportResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.Equal(expected.ID, response.ID)
	s.mockService.AssertExpectations(s.T())
}

func (s *ReportHandlerTestSuite) TestGetReport_NotFound() {
	// Arrange
	s.mockService.On("GetByID", mock.Anything, "missing").Return(nil, service.ErrReportNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/reports/missing", nil)
	c.Params = []gin.Param{{Key: "id", Value: "missing"}}

	// Act
	s.handler.GetReport(c)

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *ReportHandlerTestSuite) TestListReports_Success() {
	// Arrange
	expected := []dto.ReportResponse{
		{ID: "report1", CityID: "city1", Category: "pothole", Status: string(domain.ReportStatusOpen)},
		{ID: "report2", CityID: "city1", Category: "lighting", Status: string(domain.ReportStatusInProgress)},
	}

	s.mockService.On("List", mock.Anything, mock.MatchedBy(func(f *domain.ReportFilter) bool {
		return f.Page == 2 && f.PageSize == 10 && f.Category == "pothole"
	})).Return(expected, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/reports?page=2&page_size=10&category=pothole", nil)

	// Act
	s.handler.ListReports(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response []dto.ReportResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.Len(response, 2)
	s.Equal(expected[0].ID, response[0].ID)
	s.mockService.AssertExpectations(s.T())
}

func (s *ReportHandlerTestSuite) TestUpdateReportStatus_Success() {
	// Arrange
	updated := &dto.ReportResponse{
		ID:     "report1",
		CityID: "city1",
		Status: string(domain.ReportStatusResolved),
	}

	s.mockService.On("UpdateStatus", mock.Anything, "report1", "RESOLVED").Return(updated, nil)

	body := []byte(`{"status":"RESOLVED"}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPatch, "/reports/report1/status", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = []gin.Param{{Key: "id", Value: "report1"}}

	// Act
	s.handler.UpdateReportStatus(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response dto.ReportResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.Equal(string(domain.ReportStatusResolved), response.Status)
	s.mockService.AssertExpectations(s.T())
}

func (s *ReportHandlerTestSuite) TestUpdateReportStatus_CrossTenant() {
	// Arrange
	s.mockService.On("UpdateStatus", mock.Anything, "report1", "RESOLVED").Return(nil, tenancy.ErrCrossTenantWrite)

	body := []byte(`{"status":"RESOLVED"}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPatch, "/reports/report1/status", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = []gin.Param{{Key: "id", Value: "report1"}}

	// Act
	s.handler.UpdateReportStatus(c)

	// Assert
	s.Equal(http.StatusForbidden, w.Code)
	var response dto.Error
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.Equal(tenancy.CodeCrossTenantWrite, response.Code)
	s.mockService.AssertExpectations(s.T())
}
