package tenancy

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/munigo/civic-portal-api/internal/domain"
	"github.com/munigo/civic-portal-api/pkg/logger"
)

// Resolution is the outcome of tenant resolution for one request.
type Resolution struct {
	City   *domain.City
	Source Source
}

// Resolver determines the active city for a request from its host, path,
// and city header. Precedence: header, then domain mapping, then the
// configured default slug (tagged as fallback).
type Resolver struct {
	registry    Registry
	defaultSlug string
	reporter    *IncidentReporter
	logger      *logger.Logger
}

func NewResolver(registry Registry, defaultSlug string, reporter *IncidentReporter, logger *logger.Logger) *Resolver {
	return &Resolver{
		registry:    registry,
		defaultSlug: defaultSlug,
		reporter:    reporter,
		logger:      logger,
	}
}

// Resolve returns the city for the request and the resolution source.
// Returns ErrCityNotAvailable when nothing matches, including when the
// configured default itself is missing or inactive.
func (r *Resolver) Resolve(ctx context.Context, host, path, header string) (Resolution, error) {
	headerSlug := strings.TrimSpace(strings.ToLower(header))
	pathSlug := PathCitySlug(path)

	if headerSlug != "" {
		city, err := r.registry.ActiveBySlug(ctx, headerSlug)
		if err == nil {
			// A conflicting path slug is not an error, but it is an anomaly
			// worth recording: a client is sending mixed tenant signals.
			if pathSlug != "" && pathSlug != city.Slug {
				r.reporter.ReportMismatch(ctx, host, headerSlug, pathSlug)
			}
			return Resolution{City: city, Source: SourceHeader}, nil
		}
	}

	if city, err := r.registry.ActiveByDomain(ctx, stripPort(host)); err == nil {
		return Resolution{City: city, Source: SourceDomain}, nil
	}

	city, err := r.registry.ActiveBySlug(ctx, r.defaultSlug)
	if err != nil {
		r.logger.Warn("tenant resolution failed, default city unavailable",
			zap.String("host", host),
			zap.String("header_slug", headerSlug),
			zap.String("default_slug", r.defaultSlug))
		r.reporter.Report(ctx, &domain.TenancyIncident{
			Kind:        domain.IncidentResolutionFailure,
			Fingerprint: "resolution:" + stripPort(host),
			Host:        host,
			Path:        path,
			Message:     "no active city matches host, header, or default",
		})
		return Resolution{}, ErrCityNotAvailable
	}

	return Resolution{City: city, Source: SourceFallback}, nil
}

// PathCitySlug extracts the city slug from the leading path segments
// following the /{region}/{city-slug}/... convention. Returns empty string
// when the path does not follow the convention. The API itself mounts
// everything under /api/v1, which never matches: the convention applies to
// the public SPA URLs, so mismatch detection requires the edge proxy to
// forward the original path rather than the rewritten /api/v1 one.
func PathCitySlug(path string) string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return ""
	}

	parts := strings.Split(trimmed, "/")
	if len(parts) < 2 {
		return ""
	}

	// Region codes are two letters; anything else is an ordinary route.
	if len(parts[0]) != 2 {
		return ""
	}
	return strings.ToLower(parts[1])
}

func stripPort(host string) string {
	if idx := strings.LastIndex(host, ":"); idx != -1 {
		return host[:idx]
	}
	return host
}
