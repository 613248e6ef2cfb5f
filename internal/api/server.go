package api

import (
	"github.com/gin-gonic/gin"

	"github.com/munigo/civic-portal-api/internal/domain"
	"github.com/munigo/civic-portal-api/internal/middleware"
	"github.com/munigo/civic-portal-api/internal/service"
	"github.com/munigo/civic-portal-api/internal/service/pubsub"
	"github.com/munigo/civic-portal-api/pkg/logger"
)

type Server struct {
	city        *CityHandler
	report      *ReportHandler
	restriction *RestrictionHandler
	incident    *IncidentHandler
	websocket   *WebSocketHandler
	auth        *middleware.AuthMiddleware
	tenant      *middleware.TenantMiddleware
	rateLimit   *middleware.RateLimitMiddleware
	validation  *middleware.ValidationMiddleware
}

func NewServer(
	cityService *service.CityService,
	reportService *service.ReportService,
	restrictionService *service.RestrictionService,
	incidentService *service.IncidentService,
	auth *middleware.AuthMiddleware,
	tenant *middleware.TenantMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	logger *logger.Logger,
	pubsub *pubsub.RedisPubSub,
) *Server {
	return &Server{
		city:        NewCityHandler(cityService),
		report:      NewReportHandler(reportService),
		restriction: NewRestrictionHandler(restrictionService),
		incident:    NewIncidentHandler(incidentService),
		websocket:   NewWebSocketHandler(logger, pubsub),
		auth:        auth,
		tenant:      tenant,
		rateLimit:   rateLimit,
		validation:  validation,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	// Apply security middleware first
	api.Use(s.validation.BlockSuspiciousPatterns())
	api.Use(s.validation.SanitizeInput())
	api.Use(s.validation.ValidateRequestSize(10 * 1024 * 1024)) // 10MB max
	api.Use(s.validation.ValidateContentType("application/json", "text/plain"))

	// Apply global rate limiting
	api.Use(s.rateLimit.GlobalRateLimit(10000)) // 10k requests per minute per IP

	{
		// Public city directory; no auth, but still tenant-resolved so
		// /cities/current reflects the effective binding.
		cities := api.Group("/cities", s.tenant.ResolveTenant())
		{
			cities.GET("", s.city.ListCities)
			cities.GET("/current", s.city.CurrentCity)
			cities.GET("/current/bairros", s.city.ListBairros)
		}

		reports := api.Group("/reports", s.auth.JWTAuth(), s.tenant.ResolveTenant(), s.rateLimit.CityRateLimit())
		{
			reports.GET("", s.report.ListReports)
			reports.GET("/:id", s.report.GetReport)
			reports.GET("/all", s.auth.RequireRole(domain.RoleAdmin), s.report.ListAllCityReports)

			// Mutations never land in the fallback city by accident.
			reports.POST("", s.tenant.RequireExplicitTenant(), s.report.CreateReport)
			reports.PATCH("/:id/status", s.tenant.RequireExplicitTenant(), s.auth.RequireRole(domain.RoleModerator, domain.RoleAdmin), s.report.UpdateReportStatus)
		}

		restrictions := api.Group("/restrictions", s.auth.JWTAuth(), s.tenant.ResolveTenant(), s.rateLimit.CityRateLimit(), s.auth.RequireRole(domain.RoleModerator, domain.RoleAdmin))
		{
			restrictions.POST("", s.tenant.RequireExplicitTenant(), s.restriction.CreateRestriction)
			restrictions.GET("/users/:user_id", s.restriction.ListUserRestrictions)
			restrictions.DELETE("/:id", s.restriction.RevokeRestriction)
		}

		incidents := api.Group("/incidents", s.auth.JWTAuth(), s.tenant.ResolveTenant(), s.auth.RequireRole(domain.RoleAdmin))
		{
			incidents.GET("", s.incident.ListIncidents)
			incidents.GET("/stats", s.incident.GetStats)
			incidents.DELETE("/cleanup", s.incident.Cleanup)
			incidents.GET("/stream", s.websocket.HandleWebSocket)
		}
	}
}

// StartWebSocketHub starts the WebSocket hub for streaming incidents
func (s *Server) StartWebSocketHub() {
	go s.websocket.Start()
}

// GetWebSocketHandler returns the WebSocket handler for shutdown wiring
func (s *Server) GetWebSocketHandler() *WebSocketHandler {
	return s.websocket
}
