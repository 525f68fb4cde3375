// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"restaurante_backend/internals/configs"
	attendanceRoute "restaurante_backend/internals/features/attendance/route"
	menuRoute "restaurante_backend/internals/features/menu/route"
	reportsRoute "restaurante_backend/internals/features/reports/route"
	userRoute "restaurante_backend/internals/features/users/route"
	"restaurante_backend/internals/helpers/storage"
	authMiddleware "restaurante_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	images := storage.NewImageStore(configs.UploadDir)
	if err := images.EnsureDirs("menu", "attendance"); err != nil {
		log.Printf("⚠️ upload dirs: %v", err)
	}
	app.Static("/uploads", configs.UploadDir)

	api := app.Group("/api")

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	userRoute.AuthRoutes(api, db)

	log.Println("[INFO] Setting up public menu routes...")
	menuRoute.MenuPublicRoutes(api, db, images)

	// ===================== PRIVATE (any active user) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := api.Group("",
		authMiddleware.AuthJWT(db, authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)
	attendanceRoute.AttendanceUserRoutes(private, db, configs.Timezone(), images)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := api.Group("",
		authMiddleware.AuthJWT(db, authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		authMiddleware.IsAdmin(),
	)
	attendanceRoute.QRAdminRoutes(admin, db)
	userRoute.UserAdminRoutes(admin, db)
	menuRoute.MenuAdminRoutes(admin, db, images)
	reportsRoute.ReportsAdminRoutes(admin, db)
}
