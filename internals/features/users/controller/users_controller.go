package controller

import (
	"encoding/csv"
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceModel "restaurante_backend/internals/features/attendance/model"
	authService "restaurante_backend/internals/features/users/auth/service"
	"restaurante_backend/internals/features/users/dto"
	"restaurante_backend/internals/features/users/model"
	helper "restaurante_backend/internals/helpers"
)

type UsersController struct {
	DB *gorm.DB
}

func NewUsersController(db *gorm.DB) *UsersController {
	return &UsersController{DB: db}
}

/* ===================== CREATE WORKER ===================== */
// POST /api/users
func (ctrl *UsersController) CreateWorker(c *fiber.Ctx) error {
	var req dto.CreateWorkerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	hash, err := authService.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create worker")
	}

	u := model.UserModel{
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Password:   hash,
		Role:       model.RoleWorker,
		FullName:   strings.TrimSpace(req.FullName),
		Phone:      strings.TrimSpace(req.Phone),
		EmployeeNo: req.EmployeeNo,
		Active:     true,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		log.Println("[ERROR] create worker:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create worker")
	}

	return helper.JsonCreated(c, "Worker created", dto.UserLite{
		ID:         u.ID,
		Email:      u.Email,
		Role:       u.Role,
		FullName:   u.FullName,
		EmployeeNo: u.EmployeeNo,
		Active:     u.Active,
	})
}

/* ===================== LIST ===================== */
// GET /api/users?q=&role=
func (ctrl *UsersController) List(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.UserModel{})
	if term := strings.TrimSpace(c.Query("q")); term != "" {
		like := "%" + term + "%"
		q = q.Where("email ILIKE ? OR full_name ILIKE ?", like, like)
	}
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("role = ?", strings.ToUpper(role))
	}

	var rows []model.UserModel
	if err := q.Order("created_at DESC").Limit(500).Find(&rows).Error; err != nil {
		log.Println("[ERROR] list users:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list users")
	}
	return helper.JsonList(c, "", rows)
}

/* ===================== DELETE ===================== */
// DELETE /api/users/:id — attendance rows cascade via FK
func (ctrl *UsersController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.UserModel{}, "id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] delete user:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonDeleted(c, "User deleted", fiber.Map{"id": id})
}

/* ===================== EXPORT CSV ===================== */
// GET /api/users/export
func (ctrl *UsersController) ExportCSV(c *fiber.Ctx) error {
	var rows []model.UserModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("full_name ASC").
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] export users:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to export users")
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	_ = w.Write([]string{"id", "email", "full_name", "role", "employee_no", "active", "created_at"})
	for _, u := range rows {
		empNo := ""
		if u.EmployeeNo != nil {
			empNo = strconv.FormatInt(*u.EmployeeNo, 10)
		}
		_ = w.Write([]string{
			u.ID.String(),
			u.Email,
			u.FullName,
			u.Role,
			empNo,
			strconv.FormatBool(u.Active),
			u.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to export users")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="users.csv"`)
	return c.SendString(sb.String())
}

/* ===================== USER ATTENDANCE (ADMIN) ===================== */
// GET /api/users/:id/attendance
func (ctrl *UsersController) UserAttendance(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var rows []attendanceModel.AttendanceModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("user_id = ?", id).
		Order("marked_at DESC").
		Limit(180).
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] user attendance:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load attendance")
	}
	return helper.JsonList(c, "", rows)
}
