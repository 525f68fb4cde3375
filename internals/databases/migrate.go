package database

import (
	"log"

	attendanceModel "restaurante_backend/internals/features/attendance/model"
	menuModel "restaurante_backend/internals/features/menu/model"
	userModel "restaurante_backend/internals/features/users/model"
)

// Migrate keeps the schema in sync. AutoMigrate owns tables and indexes
// (including the (user_id, local_day) unique index that backs duplicate
// detection); the FK constraints below are added raw because GORM tags
// don't cover ON DELETE behavior across packages.
func Migrate() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&attendanceModel.QRWindowModel{},
		&attendanceModel.AttendanceModel{},
		&menuModel.MenuCategoryModel{},
		&menuModel.MenuItemModel{},
	); err != nil {
		log.Fatalf("❌ migration failed: %v", err)
	}

	stmts := []string{
		// attendance follows its user out of the system
		`DO $$ BEGIN
			ALTER TABLE attendance
				ADD CONSTRAINT attendance_user_id_fkey
				FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE;
		EXCEPTION WHEN duplicate_object THEN NULL; END $$;`,
		`DO $$ BEGIN
			ALTER TABLE qr_windows
				ADD CONSTRAINT qr_windows_created_by_fkey
				FOREIGN KEY (created_by) REFERENCES users(id) ON DELETE SET NULL;
		EXCEPTION WHEN duplicate_object THEN NULL; END $$;`,
		`DO $$ BEGIN
			ALTER TABLE menu_items
				ADD CONSTRAINT menu_items_category_id_fkey
				FOREIGN KEY (category_id) REFERENCES menu_categories(id) ON DELETE SET NULL;
		EXCEPTION WHEN duplicate_object THEN NULL; END $$;`,
	}
	for _, s := range stmts {
		if err := DB.Exec(s).Error; err != nil {
			log.Printf("⚠️ constraint migration: %v", err)
		}
	}

	log.Println("✅ Schema migrated.")
}
