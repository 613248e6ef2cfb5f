package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/munigo/civic-portal-api/internal/api/dto"
	"github.com/munigo/civic-portal-api/internal/tenancy"
)

type CityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockCityService
	handler     *CityHandler
}

type MockCityService struct {
	mock.Mock
}

func (m *MockCityService) ListActive(ctx context.Context) ([]dto.CityResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]dto.CityResponse), args.Error(1)
}

func (m *MockCityService) Current(ctx context.Context) (*dto.CurrentCityResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CurrentCityResponse), args.Error(1)
}

func (m *MockCityService) ListBairros(ctx context.Context) ([]dto.BairroResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]dto.BairroResponse), args.Error(1)
}

func (s *CityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockService = new(MockCityService)
	s.handler = NewCityHandler(s.mockService)

	// Setup routes
	s.router.GET("/cities", s.handler.ListCities)
	s.router.GET("/cities/current", s.handler.CurrentCity)
	s.router.GET("/cities/current/bairros", s.handler.ListBairros)
}

func TestCityHandler(t *testing.T) {
	suite.Run(t, new(CityHandlerTestSuite))
}

func (s *CityHandlerTestSuite) TestListCities_Success() {
	// Arrange
	expected := []dto.CityResponse{
		{ID: "city1", Slug: "tijucas-sc", Name: "Tijucas", RegionCode: "SC"},
		{ID: "city2", Slug: "itapema-sc", Name: "Itapema", RegionCode: "SC"},
	}

	s.mockService.On("ListActive", mock.Anything).Return(expected, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/cities", nil)

	// Act
	s.handler.ListCities(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response []dto.CityResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.Len(response, 2)
	s.Equal(expected[0].Slug, response[0].Slug)
	s.mockService.AssertExpectations(s.T())
}

func (s *CityHandlerTestSuite) TestCurrentCity_Success() {
	// Arrange
	expected := &dto.CurrentCityResponse{
		City:   dto.CityResponse{ID: "city1", Slug: "tijucas-sc", Name: "Tijucas"},
		Source: string(tenancy.SourceHeader),
	}

	s.mockService.On("Current", mock.Anything).Return(expected, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/cities/current", nil)

	// Act
	s.handler.CurrentCity(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response dto.CurrentCityResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.Equal(expected.City.Slug, response.City.Slug)
	s.Equal(expected.Source, response.Source)
	s.mockService.AssertExpectations(s.T())
}

func (s *CityHandlerTestSuite) TestCurrentCity_Unbound() {
	// Arrange
	s.mockService.On("Current", mock.Anything).Return(nil, tenancy.ErrCityRequired)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/cities/current", nil)

	// Act
	s.handler.CurrentCity(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	var response dto.Error
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.Equal(tenancy.CodeCityRequired, response.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *CityHandlerTestSuite) TestListBairros_Success() {
	// Arrange
	expected := []dto.BairroResponse{
		{ID: "bairro1", CityID: "city1", Name: "Centro"},
		{ID: "bairro2", CityID: "city1", Name: "Universitários"},
	}

	s.mockService.On("ListBairros", mock.Anything).Return(expected, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/cities/current/bairros", nil)

	// Act
	s.handler.ListBairros(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response []dto.BairroResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.Len(response, 2)
	s.Equal(expected[0].Name, response[0].Name)
	s.mockService.AssertExpectations(s.T())
}
