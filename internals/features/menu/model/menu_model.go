package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MenuCategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	Name      string    `gorm:"size:120;not null;column:name" json:"name"`
	Slug      string    `gorm:"size:80;uniqueIndex;not null;column:slug" json:"slug"`
	SortOrder int       `gorm:"not null;default:100;column:sort_order" json:"sort_order"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (MenuCategoryModel) TableName() string { return "menu_categories" }

type MenuItemModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	CategoryID *uuid.UUID `gorm:"type:uuid;column:category_id" json:"category_id,omitempty"`
	Name       string     `gorm:"size:160;not null;column:name" json:"name"`
	Price      float64    `gorm:"type:numeric(10,2);not null;column:price" json:"price"`
	ImageURL   *string    `gorm:"type:text;column:image_url" json:"image_url,omitempty"`
	Active     bool       `gorm:"not null;default:true;column:active" json:"active"`
	SortOrder  int        `gorm:"not null;default:100;column:sort_order" json:"sort_order"`

	// Free-form labels for the menu UI ("picante", "vegetariano", ...).
	Tags datatypes.JSON `gorm:"type:jsonb;column:tags" json:"tags,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Category *MenuCategoryModel `gorm:"foreignKey:CategoryID;references:ID" json:"category,omitempty"`
}

func (MenuItemModel) TableName() string { return "menu_items" }
