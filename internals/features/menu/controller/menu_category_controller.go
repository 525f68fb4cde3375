package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"restaurante_backend/internals/features/menu/dto"
	"restaurante_backend/internals/features/menu/model"
	helper "restaurante_backend/internals/helpers"
)

type MenuCategoryController struct {
	DB *gorm.DB
}

func NewMenuCategoryController(db *gorm.DB) *MenuCategoryController {
	return &MenuCategoryController{DB: db}
}

/* ===================== LIST ===================== */
// GET /api/menu/categories — public; "Todos" is virtual on the front end
func (ctrl *MenuCategoryController) List(c *fiber.Ctx) error {
	var rows []model.MenuCategoryModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("sort_order ASC, created_at ASC").
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] list categories:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list categories")
	}
	return helper.JsonList(c, "", rows)
}

/* ===================== CREATE ===================== */
// POST /api/menu/categories
func (ctrl *MenuCategoryController) Create(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid category name")
	}

	order := 100
	if req.SortOrder != nil {
		order = *req.SortOrder
	}
	cat := model.MenuCategoryModel{
		Name:      req.Name,
		Slug:      helper.GenerateSlug(req.Name),
		SortOrder: order,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&cat).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "A category with a similar name already exists")
		}
		log.Println("[ERROR] create category:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create category")
	}
	return helper.JsonCreated(c, "Category created", cat)
}

/* ===================== UPDATE ===================== */
// PUT /api/menu/categories/:id
func (ctrl *MenuCategoryController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid category id")
	}

	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
		updates["slug"] = helper.GenerateSlug(*req.Name)
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.MenuCategoryModel{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "A category with a similar name already exists")
		}
		log.Println("[ERROR] update category:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update category")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Category not found")
	}

	var cat model.MenuCategoryModel
	if err := ctrl.DB.WithContext(c.UserContext()).Take(&cat, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update category")
	}
	return helper.JsonUpdated(c, "Category updated", cat)
}

/* ===================== DELETE ===================== */
// DELETE /api/menu/categories/:id — items keep living with category NULL
func (ctrl *MenuCategoryController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid category id")
	}
	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.MenuCategoryModel{}, "id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] delete category:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete category")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Category not found")
	}
	return helper.JsonDeleted(c, "Category deleted", fiber.Map{"id": id})
}
