package route

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceCtrl "restaurante_backend/internals/features/attendance/controller"
	"restaurante_backend/internals/helpers/storage"
	"restaurante_backend/internals/middlewares"
)

// AttendanceUserRoutes mounts worker check-in endpoints on an
// authenticated group.
func AttendanceUserRoutes(r fiber.Router, db *gorm.DB, loc *time.Location, images *storage.ImageStore) {
	ctrl := attendanceCtrl.NewAttendanceController(db, loc, images)

	att := r.Group("/attendance", middlewares.CheckinRateLimiter())
	att.Post("/mark", ctrl.Mark)
	att.Post("/mark-with-photo", ctrl.MarkWithPhoto)

	r.Get("/me/attendance", ctrl.MyAttendance)
}

// QRAdminRoutes mounts QR window administration on the admin group.
func QRAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attendanceCtrl.NewQRWindowController(db)

	qr := r.Group("/qr")
	qr.Post("/generate", ctrl.Generate)
	qr.Get("/windows", ctrl.List)
}
