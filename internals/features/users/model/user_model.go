package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin  = "ADMIN"
	RoleWorker = "WORKER"
)

// UserModel represents the users table. Workers check in; admins run the
// panel. Deleting a user cascades to their attendance rows.
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	Email    string    `gorm:"size:255;uniqueIndex;not null;column:email" json:"email" validate:"required,email"`
	Password string    `gorm:"not null;column:password" json:"-" validate:"required,min=8"`
	Role     string    `gorm:"type:varchar(20);not null;column:role" json:"role" validate:"required,oneof=ADMIN WORKER"`

	FullName   string `gorm:"size:120;column:full_name" json:"full_name"`
	Phone      string `gorm:"size:30;column:phone" json:"phone,omitempty"`
	EmployeeNo *int64 `gorm:"column:employee_no" json:"employee_no,omitempty"`
	Active     bool   `gorm:"not null;default:true;column:active" json:"active"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string { return "users" }
