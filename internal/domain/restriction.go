package domain

import (
	"slices"
	"time"
)

type RestrictionType string

const (
	RestrictionMute    RestrictionType = "MUTE"
	RestrictionPostBan RestrictionType = "POST_BAN"
	RestrictionShadow  RestrictionType = "SHADOW_BAN"
	RestrictionFullBan RestrictionType = "FULL_BAN"
)

// ValidRestrictionTypes contains every restriction type the portal recognizes.
var ValidRestrictionTypes = []RestrictionType{
	RestrictionMute,
	RestrictionPostBan,
	RestrictionShadow,
	RestrictionFullBan,
}

func IsValidRestrictionType(t string) bool {
	return slices.Contains(ValidRestrictionTypes, RestrictionType(t))
}

// Restriction is a moderation limit placed on a user. ScopeCityID nil means
// the restriction applies in every city; a concrete value pins it to one.
type Restriction struct {
	ID             string          `gorm:"primaryKey;type:uuid" json:"id"`
	UserID         string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Type           RestrictionType `gorm:"type:text;not null" json:"type"`
	ScopeModuleKey string          `gorm:"type:text" json:"scope_module_key,omitempty"`
	ScopeCityID    *string         `gorm:"type:uuid" json:"scope_city_id,omitempty"`
	Reason         string          `gorm:"type:text" json:"reason,omitempty"`
	StartsAt       time.Time       `gorm:"type:timestamp with time zone;not null" json:"starts_at"`
	EndsAt         *time.Time      `gorm:"type:timestamp with time zone" json:"ends_at,omitempty"`
	RevokedAt      *time.Time      `gorm:"type:timestamp with time zone" json:"revoked_at,omitempty"`
	CreatedBy      string          `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt      time.Time       `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	ScopeCity      *City           `gorm:"foreignKey:ScopeCityID" json:"-"`
}

func (Restriction) TableName() string {
	return "user_restrictions"
}

// ActiveAt reports whether the restriction is in effect at the given instant.
func (r *Restriction) ActiveAt(t time.Time) bool {
	if r.RevokedAt != nil && !r.RevokedAt.After(t) {
		return false
	}
	if r.StartsAt.After(t) {
		return false
	}
	if r.EndsAt != nil && !r.EndsAt.After(t) {
		return false
	}
	return true
}
