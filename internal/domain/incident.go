package domain

import (
	"encoding/json"
	"time"
)

type SeverityLevel string

const (
	SeverityInfo     SeverityLevel = "INFO"
	SeverityWarning  SeverityLevel = "WARNING"
	SeverityCritical SeverityLevel = "CRITICAL"
)

type IncidentKind string

const (
	IncidentHeaderPathMismatch IncidentKind = "HEADER_PATH_MISMATCH"
	IncidentInvalidSwitch      IncidentKind = "INVALID_SWITCH"
	IncidentStaleOverride      IncidentKind = "STALE_OVERRIDE"
	IncidentResolutionFailure  IncidentKind = "RESOLUTION_FAILURE"
	IncidentCrossTenantWrite   IncidentKind = "CROSS_TENANT_WRITE"
	IncidentUnscopedQuery      IncidentKind = "UNSCOPED_QUERY"
)

// TenancyIncident is a durable record of a tenancy anomaly. It is written
// by the incident reporter and asynchronously indexed into OpenSearch.
type TenancyIncident struct {
	ID          string          `gorm:"primaryKey;type:uuid" json:"id"`
	CityID      string          `gorm:"type:uuid;index" json:"city_id,omitempty"`
	Kind        IncidentKind    `gorm:"type:text;not null" json:"kind"`
	Fingerprint string          `gorm:"type:text;not null;index" json:"fingerprint"`
	Severity    SeverityLevel   `gorm:"type:text;not null;default:'WARNING'" json:"severity"`
	ActorID     string          `gorm:"type:uuid" json:"actor_id,omitempty"`
	Host        string          `gorm:"type:text" json:"host,omitempty"`
	Path        string          `gorm:"type:text" json:"path,omitempty"`
	Message     string          `gorm:"type:text;not null" json:"message"`
	Details     json.RawMessage `gorm:"type:jsonb" json:"details,omitempty"`
	OccurredAt  time.Time       `gorm:"type:timestamp with time zone;not null;default:CURRENT_TIMESTAMP" json:"occurred_at"`
	CreatedAt   time.Time       `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (TenancyIncident) TableName() string {
	return "tenancy_incidents"
}

type TenancyIncidentFilter struct {
	CityID    string        `json:"city_id"`
	Kind      IncidentKind  `json:"kind"`
	Severity  SeverityLevel `json:"severity"`
	ActorID   string        `json:"actor_id"`
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Limit     int           `json:"limit"`
	Offset    int           `json:"offset"`
}
