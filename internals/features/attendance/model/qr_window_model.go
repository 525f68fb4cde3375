package model

import (
	"time"

	"github.com/google/uuid"

	"restaurante_backend/internals/helpers/dbtime"
)

// QRWindowModel is a registered check-in token for a shift. Immutable after
// creation; expiry is the only soft lifecycle event. Historical windows stay
// around for audit, so no soft delete either.
type QRWindowModel struct {
	ID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	Token string    `gorm:"size:64;uniqueIndex;not null;column:token" json:"token"`
	Label string    `gorm:"size:120;column:label" json:"label"`

	// NULL means the default cutoff (09:10) applies.
	OnTimeUntil *dbtime.Tod `gorm:"type:time;column:on_time_until" json:"on_time_until,omitempty"`

	ExpiresAt *time.Time `gorm:"type:timestamptz;column:expires_at" json:"expires_at,omitempty"`

	CreatedBy *uuid.UUID `gorm:"type:uuid;column:created_by" json:"created_by,omitempty"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (QRWindowModel) TableName() string { return "qr_windows" }
