package dto

import (
	"time"
)

type CreateReportRequest struct {
	BairroID    string  `json:"bairro_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Category    string  `json:"category" binding:"required" example:"pothole"`
	Title       string  `json:"title" binding:"required" example:"Large pothole on Rua XV"`
	Description string  `json:"description" example:"Near the corner with Av. Brasil"`
	Latitude    float64 `json:"latitude" example:"-27.2406"`
	Longitude   float64 `json:"longitude" example:"-48.6331"`
}

type UpdateReportStatusRequest struct {
	Status string `json:"status" binding:"required" example:"IN_PROGRESS"`
}

type CreateRestrictionRequest struct {
	UserID         string     `json:"user_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Type           string     `json:"type" binding:"required" example:"MUTE"`
	ScopeModuleKey string     `json:"scope_module_key" example:"reports"`
	Global         bool       `json:"global" example:"false"`
	Reason         string     `json:"reason" example:"Repeated spam reports"`
	StartsAt       time.Time  `json:"starts_at" example:"2025-07-17T21:20:48Z"`
	EndsAt         *time.Time `json:"ends_at,omitempty" example:"2025-08-17T21:20:48Z"`
}

type ScheduleArchiveRequest struct {
	BeforeDate time.Time `json:"before_date" binding:"required" example:"2025-06-01T00:00:00Z"`
}
