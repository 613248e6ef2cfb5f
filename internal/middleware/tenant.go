package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/munigo/civic-portal-api/internal/config"
	"github.com/munigo/civic-portal-api/internal/tenancy"
	"github.com/munigo/civic-portal-api/pkg/logger"
)

// switchCityParam is the query parameter administrators use to switch
// their effective city for the session.
const switchCityParam = "switch_city"

type TenantMiddleware struct {
	resolver *tenancy.Resolver
	policies *tenancy.PolicySet
	config   *config.Config
	logger   *logger.Logger
}

func NewTenantMiddleware(resolver *tenancy.Resolver, policies *tenancy.PolicySet, config *config.Config, logger *logger.Logger) *TenantMiddleware {
	return &TenantMiddleware{
		resolver: resolver,
		policies: policies,
		config:   config,
		logger:   logger,
	}
}

// ResolveTenant binds the effective city to the request context. It runs the
// generic resolver (header, domain, fallback), then applies the role policy
// for the authenticated actor, so it must be registered after JWTAuth on
// authenticated routes.
func (m *TenantMiddleware) ResolveTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		actor := tenancy.ActorFromContext(ctx)

		// The path only participates in mismatch detection, and only when the
		// edge proxy preserves the public /{region}/{slug} prefix instead of
		// the rewritten /api/v1 one.
		resolution, err := m.resolver.Resolve(ctx, c.Request.Host, c.Request.URL.Path, c.GetHeader(m.config.CityHeaderName))
		if err != nil && actor == nil {
			m.logger.Warn("request rejected, no city available",
				zap.String("host", c.Request.Host),
				zap.String("path", c.Request.URL.Path))
			c.JSON(http.StatusBadRequest, gin.H{
				"code":  tenancy.CodeCityNotAvailable,
				"error": "No active city is available for this request",
			})
			c.Abort()
			return
		}

		resolution = m.policies.For(actor).Apply(ctx, tenancy.ApplyRequest{
			Resolution: resolution,
			Actor:      actor,
			SwitchSlug: c.Query(switchCityParam),
		})
		if resolution.City == nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"code":  tenancy.CodeCityNotAvailable,
				"error": "No active city is available for this request",
			})
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(tenancy.WithContext(ctx, &tenancy.Context{
			City:   resolution.City,
			Source: resolution.Source,
		}))

		// Echo the effective binding so clients can detect silent fallbacks.
		c.Header("X-City-Slug", resolution.City.Slug)
		c.Header("X-City-Timezone", resolution.City.Timezone)

		c.Next()
	}
}

// RequireExplicitTenant rejects requests that reached the fallback city
// without naming one. Mutating routes use this so content is never written
// into the default city by accident.
func (m *TenantMiddleware) RequireExplicitTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		tc := tenancy.FromContext(c.Request.Context())
		if tc == nil || tc.City == nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"code":  tenancy.CodeCityRequired,
				"error": "A city binding is required for this operation",
			})
			return
		}

		if tc.Source == tenancy.SourceFallback {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"code":  tenancy.CodeExplicitCityRequired,
				"error": "This operation requires an explicitly selected city",
			})
			return
		}

		c.Next()
	}
}
