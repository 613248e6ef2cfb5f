package dto

import (
	"encoding/json"
	"time"
)

// CityResponse represents an active city in the portal
type CityResponse struct {
	ID         string  `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Slug       string  `json:"slug" example:"tijucas-sc"`
	Name       string  `json:"name" example:"Tijucas"`
	RegionCode string  `json:"region_code" example:"SC"`
	Domain     string  `json:"domain" example:"tijucas.munigo.com.br"`
	Timezone   string  `json:"timezone" example:"America/Sao_Paulo"`
	Latitude   float64 `json:"latitude" example:"-27.2406"`
	Longitude  float64 `json:"longitude" example:"-48.6331"`
}

// CurrentCityResponse reports the effective city binding for the request
type CurrentCityResponse struct {
	City   CityResponse `json:"city"`
	Source string       `json:"source" example:"header"`
}

type BairroResponse struct {
	ID     string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	CityID string `json:"city_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name   string `json:"name" example:"Centro"`
}

type ReportResponse struct {
	ID          string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	CityID      string    `json:"city_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	BairroID    string    `json:"bairro_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID      string    `json:"user_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Category    string    `json:"category" example:"pothole"`
	Title       string    `json:"title" example:"Large pothole on Rua XV"`
	Description string    `json:"description,omitempty" example:"Near the corner with Av. Brasil"`
	Status      string    `json:"status" example:"OPEN"`
	Latitude    float64   `json:"latitude" example:"-27.2406"`
	Longitude   float64   `json:"longitude" example:"-48.6331"`
	CreatedAt   time.Time `json:"created_at" example:"2025-07-17T21:20:48Z"`
	UpdatedAt   time.Time `json:"updated_at" example:"2025-07-17T21:20:48Z"`
}

type RestrictionResponse struct {
	ID             string     `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID         string     `json:"user_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Type           string     `json:"type" example:"MUTE"`
	ScopeModuleKey string     `json:"scope_module_key,omitempty" example:"reports"`
	ScopeCityID    *string    `json:"scope_city_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Reason         string     `json:"reason,omitempty" example:"Repeated spam reports"`
	StartsAt       time.Time  `json:"starts_at" example:"2025-07-17T21:20:48Z"`
	EndsAt         *time.Time `json:"ends_at,omitempty" example:"2025-08-17T21:20:48Z"`
	RevokedAt      *time.Time `json:"revoked_at,omitempty" example:"2025-07-20T21:20:48Z"`
	CreatedBy      string     `json:"created_by,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	CreatedAt      time.Time  `json:"created_at" example:"2025-07-17T21:20:48Z"`
}

// GetIncidentStatsResponse represents aggregated incident counts
type GetIncidentStatsResponse struct {
	TotalIncidents int64            `json:"total_incidents" example:"42"`
	KindCounts     map[string]int64 `json:"kind_counts" example:"HEADER_PATH_MISMATCH:30,INVALID_SWITCH:12"`
	SeverityCounts map[string]int64 `json:"severity_counts" example:"WARNING:38,CRITICAL:4"`
}

type IncidentResponse struct {
	ID          string          `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	CityID      string          `json:"city_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Kind        string          `json:"kind" example:"HEADER_PATH_MISMATCH"`
	Fingerprint string          `json:"fingerprint" example:"mismatch:tijucas.munigo.com.br:itapema-sc:tijucas-sc"`
	Severity    string          `json:"severity" example:"WARNING"`
	ActorID     string          `json:"actor_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Host        string          `json:"host,omitempty" example:"tijucas.munigo.com.br"`
	Path        string          `json:"path,omitempty" example:"/sc/tijucas-sc/reports"`
	Message     string          `json:"message" example:"header city disagrees with path city"`
	Details     json.RawMessage `json:"details,omitempty" swaggertype:"string" example:"{\"key\":\"value\"}"`
	OccurredAt  time.Time       `json:"occurred_at" example:"2025-07-17T21:20:48Z"`
}
