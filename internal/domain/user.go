package domain

import (
	"encoding/json"
	"time"
)

type User struct {
	ID         string          `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	HomeCityID *string         `gorm:"type:uuid" json:"home_city_id,omitempty"`
	Email      string          `gorm:"type:text;not null;unique" json:"email"`
	Name       string          `gorm:"type:text;not null" json:"name"`
	Roles      []string        `gorm:"type:text[];not null;default:'{member}'" json:"roles"`
	Active     bool            `gorm:"not null;default:true" json:"active"`
	Metadata   json.RawMessage `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt  time.Time       `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	HomeCity   *City           `gorm:"foreignKey:HomeCityID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
