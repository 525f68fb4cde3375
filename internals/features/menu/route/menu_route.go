package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	menuCtrl "restaurante_backend/internals/features/menu/controller"
	"restaurante_backend/internals/helpers/storage"
)

// MenuPublicRoutes: catalog reads, no auth.
func MenuPublicRoutes(r fiber.Router, db *gorm.DB, images *storage.ImageStore) {
	catCtrl := menuCtrl.NewMenuCategoryController(db)
	itemCtrl := menuCtrl.NewMenuItemController(db, images)

	menu := r.Group("/menu")
	menu.Get("/categories", catCtrl.List)
	menu.Get("/items", itemCtrl.List)
}

// MenuAdminRoutes: catalog writes, admin only.
func MenuAdminRoutes(r fiber.Router, db *gorm.DB, images *storage.ImageStore) {
	catCtrl := menuCtrl.NewMenuCategoryController(db)
	itemCtrl := menuCtrl.NewMenuItemController(db, images)

	menu := r.Group("/menu")
	menu.Post("/categories", catCtrl.Create)
	menu.Put("/categories/:id", catCtrl.Update)
	menu.Delete("/categories/:id", catCtrl.Delete)

	menu.Post("/items", itemCtrl.Create)
	menu.Put("/items/:id", itemCtrl.Update)
	menu.Delete("/items/:id", itemCtrl.Delete)
}
