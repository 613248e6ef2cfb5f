package domain

import (
	"time"
)

type ReportStatus string

const (
	ReportStatusOpen       ReportStatus = "OPEN"
	ReportStatusInProgress ReportStatus = "IN_PROGRESS"
	ReportStatusResolved   ReportStatus = "RESOLVED"
	ReportStatusRejected   ReportStatus = "REJECTED"
)

// Report is a citizen report (pothole, complaint, broken street light).
// Tenant-owned: CityID is mandatory and enforced by the tenancy scope.
type Report struct {
	ID          string       `gorm:"primaryKey;type:uuid" json:"id"`
	CityID      string       `gorm:"type:uuid;not null;index" json:"city_id"`
	BairroID    string       `gorm:"type:uuid" json:"bairro_id,omitempty"`
	UserID      string       `gorm:"type:uuid;not null" json:"user_id"`
	Category    string       `gorm:"type:text;not null" json:"category"`
	Title       string       `gorm:"type:text;not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	Status      ReportStatus `gorm:"type:text;not null;default:'OPEN'" json:"status"`
	Latitude    float64      `gorm:"type:double precision" json:"latitude"`
	Longitude   float64      `gorm:"type:double precision" json:"longitude"`
	CreatedAt   time.Time    `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	City        *City        `gorm:"foreignKey:CityID" json:"-"`
	Bairro      *Bairro      `gorm:"foreignKey:BairroID" json:"-"`
}

func (Report) TableName() string {
	return "reports"
}

// GetCityID and SetCityID satisfy tenancy.Owned.
func (r *Report) GetCityID() string       { return r.CityID }
func (r *Report) SetCityID(cityID string) { r.CityID = cityID }

// GetBairroID satisfies tenancy.BairroScoped.
func (r *Report) GetBairroID() string { return r.BairroID }

type ReportFilter struct {
	BairroID string       `json:"bairro_id"`
	UserID   string       `json:"user_id"`
	Category string       `json:"category"`
	Status   ReportStatus `json:"status"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
	Limit    int          `json:"limit"`
	Offset   int          `json:"offset"`
}
