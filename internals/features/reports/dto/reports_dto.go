package dto

import (
	"time"

	"github.com/google/uuid"
)

type DailySummaryRow struct {
	Day      time.Time `gorm:"column:day" json:"day"`
	Punctual int       `gorm:"column:punctual" json:"punctual"`
	Late     int       `gorm:"column:late" json:"late"`
	Absent   int       `gorm:"column:absent" json:"absent"`
}

type UserSummaryRow struct {
	UserID   uuid.UUID `gorm:"column:user_id" json:"user_id"`
	FullName string    `gorm:"column:full_name" json:"full_name"`
	Email    string    `gorm:"column:email" json:"email"`
	Punctual int       `gorm:"column:punctual" json:"punctual"`
	Late     int       `gorm:"column:late" json:"late"`
	Absent   int       `gorm:"column:absent" json:"absent"`
}
