package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userCtrl "restaurante_backend/internals/features/users/controller"
	authService "restaurante_backend/internals/features/users/auth/service"
	"restaurante_backend/internals/middlewares"
)

// AuthRoutes mounts the public login endpoints.
func AuthRoutes(app fiber.Router, db *gorm.DB) {
	auth := app.Group("/auth", middlewares.LoginRateLimiter())
	auth.Post("/login", func(c *fiber.Ctx) error {
		return authService.Login(db, c)
	})
	auth.Post("/login-admin", func(c *fiber.Ctx) error {
		return authService.LoginAdmin(db, c)
	})
}

// UserAdminRoutes mounts user management on the admin group.
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userCtrl.NewUsersController(db)

	users := r.Group("/users")
	users.Get("/", ctrl.List)
	users.Post("/", ctrl.CreateWorker)
	users.Get("/export", ctrl.ExportCSV)
	users.Delete("/:id", ctrl.Delete)
	users.Get("/:id/attendance", ctrl.UserAttendance)
}
