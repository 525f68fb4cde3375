package dto

import (
	"time"

	"github.com/google/uuid"
)

type MarkAttendanceRequest struct {
	QRToken        string `json:"qr_token" form:"qr_token" validate:"required"`
	LateReasonText string `json:"late_reason_text" form:"late_reason_text" validate:"omitempty,max=500"`
}

type MarkAttendanceResponse struct {
	Ok           bool      `json:"ok"`
	AttendanceID uuid.UUID `json:"attendance_id"`
	MarkedAt     time.Time `json:"marked_at"`
	Status       string    `json:"status"`
	PhotoURL     *string   `json:"photo_url,omitempty"`
}

type GenerateQRRequest struct {
	Label       string     `json:"label" validate:"omitempty,max=120"`
	OnTimeUntil string     `json:"on_time_until" validate:"omitempty"`
	ExpiresAt   *time.Time `json:"expires_at" validate:"omitempty"`
}

type GenerateQRResponse struct {
	ID                   uuid.UUID  `json:"id"`
	Token                string     `json:"token"`
	Label                string     `json:"label"`
	OnTimeUntil          *string    `json:"on_time_until"`
	EffectiveOnTimeUntil string     `json:"effective_on_time_until"`
	ExpiresAt            *time.Time `json:"expires_at,omitempty"`
	QRImage              string     `json:"qr_image"`
}
