package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPunctual = "punctual"
	StatusLate     = "late"
)

// AttendanceModel is one check-in in the append-only ledger.
//
// LocalDay is the calendar date of MarkedAt in the deployment timezone,
// derived once at write time. The unique index over (user_id, local_day) is
// the authoritative duplicate guard: concurrent check-ins for the same user
// race on it and the loser's insert fails with a unique violation.
type AttendanceModel struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;column:user_id;uniqueIndex:uq_attendance_user_local_day" json:"user_id"`
	QRToken string    `gorm:"size:64;not null;column:qr_token" json:"qr_token"`

	MarkedAt time.Time `gorm:"type:timestamptz;not null;column:marked_at" json:"marked_at"`
	LocalDay time.Time `gorm:"type:date;not null;column:local_day;uniqueIndex:uq_attendance_user_local_day" json:"local_day"`
	Status   string    `gorm:"type:varchar(16);not null;column:status" json:"status"`

	LateReasonText     *string `gorm:"type:text;column:late_reason_text" json:"late_reason_text,omitempty"`
	LateReasonCategory *string `gorm:"size:40;column:late_reason_category" json:"late_reason_category,omitempty"`
	LateReasonScore    *int    `gorm:"column:late_reason_score" json:"late_reason_score,omitempty"`

	PhotoURL     *string    `gorm:"type:text;column:photo_url" json:"photo_url,omitempty"`
	PhotoSHA256  *string    `gorm:"size:64;column:photo_sha256;index:idx_attendance_photo_sha" json:"photo_sha256,omitempty"`
	PhotoTakenAt *time.Time `gorm:"type:timestamptz;column:photo_taken_at" json:"photo_taken_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AttendanceModel) TableName() string { return "attendance" }
