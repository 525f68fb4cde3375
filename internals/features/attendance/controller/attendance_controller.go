package controller

import (
	"errors"
	"io"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"restaurante_backend/internals/features/attendance/dto"
	"restaurante_backend/internals/features/attendance/model"
	"restaurante_backend/internals/features/attendance/repository"
	"restaurante_backend/internals/features/attendance/service"
	helper "restaurante_backend/internals/helpers"
	"restaurante_backend/internals/helpers/storage"
)

const maxPhotoBytes = 8 << 20 // multipart photo cap

type AttendanceController struct {
	DB      *gorm.DB
	Service *service.CheckinService
}

func NewAttendanceController(db *gorm.DB, loc *time.Location, images *storage.ImageStore) *AttendanceController {
	svc := service.NewCheckinService(
		repository.NewGormWindowRegistry(db),
		repository.NewGormLedger(db),
		loc,
		service.WithPhotoStore(repository.NewDiskPhotoStore(images)),
	)
	return &AttendanceController{DB: db, Service: svc}
}

/* ===================== MARK ===================== */
// POST /api/attendance/mark
func (ctrl *AttendanceController) Mark(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "qr_token is required")
	}

	res, err := ctrl.Service.MarkAttendance(c.UserContext(), userID, req.QRToken, req.LateReasonText)
	if err != nil {
		return writeCheckinError(c, err)
	}

	return helper.JsonOK(c, "Attendance registered", dto.MarkAttendanceResponse{
		Ok:           true,
		AttendanceID: res.AttendanceID,
		MarkedAt:     res.MarkedAt,
		Status:       res.Status,
	})
}

/* ===================== MARK WITH PHOTO ===================== */
// POST /api/attendance/mark-with-photo (multipart/form-data)
// Fields: photo (file), qr_token, late_reason_text?
func (ctrl *AttendanceController) MarkWithPhoto(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	req := dto.MarkAttendanceRequest{
		QRToken:        c.FormValue("qr_token"),
		LateReasonText: c.FormValue("late_reason_text"),
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "qr_token is required")
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Photo is required")
	}
	if fh.Size > maxPhotoBytes {
		return helper.JsonError(c, fiber.StatusBadRequest, "Photo is too large")
	}
	f, err := fh.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cannot read photo")
	}
	defer f.Close()
	photo, err := io.ReadAll(f)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cannot read photo")
	}

	res, err := ctrl.Service.MarkAttendanceWithPhoto(c.UserContext(), userID, req.QRToken, req.LateReasonText, photo)
	if err != nil {
		return writeCheckinError(c, err)
	}

	return helper.JsonOK(c, "Attendance registered", dto.MarkAttendanceResponse{
		Ok:           true,
		AttendanceID: res.AttendanceID,
		MarkedAt:     res.MarkedAt,
		Status:       res.Status,
		PhotoURL:     res.PhotoURL,
	})
}

/* ===================== MY ATTENDANCE ===================== */
// GET /api/me/attendance
func (ctrl *AttendanceController) MyAttendance(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []model.AttendanceModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("user_id = ?", userID).
		Order("marked_at DESC").
		Limit(60).
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] my attendance:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load attendance")
	}
	return helper.JsonList(c, "", rows)
}

// writeCheckinError maps decision outcomes to HTTP. Expected outcomes keep
// their machine-readable code; anything else is a storage failure, logged
// and surfaced without internal detail.
func writeCheckinError(c *fiber.Ctx, err error) error {
	var ce *service.CheckinError
	if errors.As(err, &ce) {
		switch ce {
		case service.ErrDuplicateAttendance:
			return helper.JsonErrorCode(c, fiber.StatusConflict, ce.Code, ce.Message)
		case service.ErrJustificationRequired:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success":               false,
				"message":               ce.Message,
				"error_code":            ce.Code,
				"require_justification": true,
			})
		default: // InvalidQR, ExpiredQR, DuplicatePhoto
			return helper.JsonErrorCode(c, fiber.StatusBadRequest, ce.Code, ce.Message)
		}
	}
	log.Println("[ERROR] attendance check-in:", err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register attendance")
}
