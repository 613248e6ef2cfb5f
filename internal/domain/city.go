package domain

import (
	"time"
)

// City is the tenant of the portal. Every tenant-owned record carries its ID.
type City struct {
	ID         string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Slug       string    `gorm:"type:text;not null;unique" json:"slug"`
	Name       string    `gorm:"type:text;not null" json:"name"`
	RegionCode string    `gorm:"type:text;not null" json:"region_code"`
	Domain     string    `gorm:"type:text" json:"domain,omitempty"`
	Active     bool      `gorm:"not null;default:true" json:"active"`
	Latitude   float64   `gorm:"type:double precision" json:"latitude"`
	Longitude  float64   `gorm:"type:double precision" json:"longitude"`
	Timezone   string    `gorm:"type:text;not null;default:'America/Sao_Paulo'" json:"timezone"`
	CreatedAt  time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (City) TableName() string {
	return "cities"
}

// Bairro is a sub-region of a city, referenced by reports and other
// neighborhood-scoped records. Read-only from the portal's point of view.
type Bairro struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	CityID    string    `gorm:"type:uuid;not null" json:"city_id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	CreatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	City      *City     `gorm:"foreignKey:CityID" json:"-"`
}

func (Bairro) TableName() string {
	return "bairros"
}
