package controller

import (
	"encoding/json"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"restaurante_backend/internals/features/menu/model"
	helper "restaurante_backend/internals/helpers"
	"restaurante_backend/internals/helpers/storage"
)

const maxItemImageBytes = 5 << 20

type MenuItemController struct {
	DB     *gorm.DB
	Images *storage.ImageStore
}

func NewMenuItemController(db *gorm.DB, images *storage.ImageStore) *MenuItemController {
	return &MenuItemController{DB: db, Images: images}
}

/* ===================== LIST ===================== */
// GET /api/menu/items?q=&category_id= — public
func (ctrl *MenuItemController) List(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.MenuItemModel{}).
		Preload("Category")

	if catID := strings.TrimSpace(c.Query("category_id")); catID != "" {
		id, err := uuid.Parse(catID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid category_id")
		}
		q = q.Where("category_id = ?", id)
	}
	if term := strings.TrimSpace(c.Query("q")); term != "" {
		q = q.Where("name ILIKE ?", "%"+term+"%")
	}

	var rows []model.MenuItemModel
	if err := q.Order("sort_order ASC, created_at DESC").Limit(500).Find(&rows).Error; err != nil {
		log.Println("[ERROR] list items:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list items")
	}
	return helper.JsonList(c, "", rows)
}

/* ===================== CREATE ===================== */
// POST /api/menu/items (multipart: image? + fields)
func (ctrl *MenuItemController) Create(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))
	price, priceErr := strconv.ParseFloat(c.FormValue("price"), 64)
	if name == "" || priceErr != nil || price < 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Name and price are required")
	}

	item := model.MenuItemModel{
		Name:      name,
		Price:     price,
		Active:    true,
		SortOrder: 100,
	}
	if v := strings.TrimSpace(c.FormValue("category_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid category_id")
		}
		item.CategoryID = &id
	}
	if v := c.FormValue("sort_order"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			item.SortOrder = n
		}
	}
	if v := c.FormValue("active"); v != "" {
		item.Active = v == "true" || v == "1"
	}
	if tags := formTags(c); tags != nil {
		item.Tags = tags
	}

	if url, err := ctrl.saveImage(c); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	} else if url != "" {
		item.ImageURL = &url
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&item).Error; err != nil {
		log.Println("[ERROR] create item:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create item")
	}
	return helper.JsonCreated(c, "Item created", item)
}

/* ===================== UPDATE ===================== */
// PUT /api/menu/items/:id (multipart: image? + fields)
func (ctrl *MenuItemController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid item id")
	}

	updates := map[string]any{}
	if v := strings.TrimSpace(c.FormValue("name")); v != "" {
		updates["name"] = v
	}
	if v := c.FormValue("price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil || p < 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid price")
		}
		updates["price"] = p
	}
	if v, set := formValueSet(c, "category_id"); set {
		if v == "" {
			updates["category_id"] = nil
		} else {
			cid, err := uuid.Parse(v)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "Invalid category_id")
			}
			updates["category_id"] = cid
		}
	}
	if v := c.FormValue("sort_order"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			updates["sort_order"] = n
		}
	}
	if v := c.FormValue("active"); v != "" {
		updates["active"] = v == "true" || v == "1"
	}
	if tags := formTags(c); tags != nil {
		updates["tags"] = tags
	}
	if url, err := ctrl.saveImage(c); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	} else if url != "" {
		updates["image_url"] = url
	}

	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.MenuItemModel{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		log.Println("[ERROR] update item:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update item")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Item not found")
	}

	var item model.MenuItemModel
	if err := ctrl.DB.WithContext(c.UserContext()).Preload("Category").Take(&item, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update item")
	}
	return helper.JsonUpdated(c, "Item updated", item)
}

/* ===================== DELETE ===================== */
// DELETE /api/menu/items/:id
func (ctrl *MenuItemController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid item id")
	}
	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.MenuItemModel{}, "id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] delete item:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete item")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Item not found")
	}
	return helper.JsonDeleted(c, "Item deleted", fiber.Map{"id": id})
}

// saveImage persists the optional "image" file; empty URL means no file
// was sent.
func (ctrl *MenuItemController) saveImage(c *fiber.Ctx) (string, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}
	if fh.Size > maxItemImageBytes {
		return "", fiber.NewError(fiber.StatusBadRequest, "Image is too large")
	}
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	saved, err := ctrl.Images.Save("menu", data)
	if err != nil {
		return "", err
	}
	return saved.PublicURL, nil
}

func formTags(c *fiber.Ctx) datatypes.JSON {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	tags, ok := form.Value["tags"]
	if !ok {
		return nil
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

// formValueSet distinguishes "field absent" from "field sent empty"
// (clearing the category).
func formValueSet(c *fiber.Ctx, key string) (string, bool) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return "", false
	}
	vals, ok := form.Value[key]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return strings.TrimSpace(vals[0]), true
}
