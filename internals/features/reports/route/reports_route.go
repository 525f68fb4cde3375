package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportsCtrl "restaurante_backend/internals/features/reports/controller"
)

// ReportsAdminRoutes mounts the attendance reports on the admin group.
func ReportsAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := reportsCtrl.NewReportsController(db)

	reports := r.Group("/reports")
	reports.Get("/attendance/summary", ctrl.Summary)
	reports.Get("/attendance/by-user", ctrl.ByUser)
}
