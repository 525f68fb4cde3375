package dto

type CreateCategoryRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=120"`
	SortOrder *int   `json:"sort_order" validate:"omitempty,gte=0"`
}

type UpdateCategoryRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=2,max=120"`
	SortOrder *int    `json:"sort_order" validate:"omitempty,gte=0"`
}

// Item create/update come in as multipart form fields so the image can
// ride along; numbers arrive as strings.
type ItemFormRequest struct {
	Name       string   `form:"name"`
	Price      string   `form:"price"`
	CategoryID string   `form:"category_id"`
	SortOrder  string   `form:"sort_order"`
	Active     string   `form:"active"`
	Tags       []string `form:"tags"`
}
