package controller

import (
	"crypto/rand"
	"encoding/base64"
	"log"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"restaurante_backend/internals/features/attendance/dto"
	"restaurante_backend/internals/features/attendance/model"
	helper "restaurante_backend/internals/helpers"
	"restaurante_backend/internals/helpers/dbtime"
)

type QRWindowController struct {
	DB *gorm.DB
}

func NewQRWindowController(db *gorm.DB) *QRWindowController {
	return &QRWindowController{DB: db}
}

/* ===================== GENERATE ===================== */
// POST /api/qr/generate
func (ctrl *QRWindowController) Generate(c *fiber.Ctx) error {
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.GenerateQRRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	label := strings.TrimSpace(req.Label)
	if label == "" {
		label = "Turno"
	}

	// Cutoff stays NULL when the admin sends nothing; the check-in path
	// falls back to the 09:10 default.
	var cutoff *dbtime.Tod
	if hhmm := normalizeTimeHHmm(req.OnTimeUntil); hhmm != "" {
		t, err := dbtime.Parse(hhmm)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "on_time_until must be HH:mm")
		}
		cutoff = &t
	}

	win := model.QRWindowModel{
		Token:       newToken(),
		Label:       label,
		OnTimeUntil: cutoff,
		ExpiresAt:   req.ExpiresAt,
		CreatedBy:   &adminID,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&win).Error; err != nil {
		log.Println("[ERROR] create qr window:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate QR")
	}

	png, err := qrcode.Encode(win.Token, qrcode.Medium, 256)
	if err != nil {
		log.Println("[ERROR] qr encode:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate QR")
	}

	var onTime *string
	effective := "09:10"
	if cutoff != nil {
		s := cutoff.Format("15:04")
		onTime = &s
		effective = s
	}

	return helper.JsonCreated(c, "QR generated", dto.GenerateQRResponse{
		ID:                   win.ID,
		Token:                win.Token,
		Label:                win.Label,
		OnTimeUntil:          onTime,
		EffectiveOnTimeUntil: effective,
		ExpiresAt:            win.ExpiresAt,
		QRImage:              "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
	})
}

/* ===================== LIST ===================== */
// GET /api/qr/windows
func (ctrl *QRWindowController) List(c *fiber.Ctx) error {
	var rows []model.QRWindowModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("created_at DESC").
		Limit(100).
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] list qr windows:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list QR windows")
	}
	return helper.JsonList(c, "", rows)
}

var (
	reHHmm     = regexp.MustCompile(`^\d{2}:\d{2}$`)
	reISOClock = regexp.MustCompile(`T(\d{2}:\d{2})`)
)

// normalizeTimeHHmm accepts "HH:mm" directly, or pulls the clock out of an
// ISO timestamp like "2025-09-26T09:10:00Z" that some clients send.
func normalizeTimeHHmm(input string) string {
	s := strings.TrimSpace(input)
	if s == "" {
		return ""
	}
	if reHHmm.MatchString(s) {
		return s
	}
	if m := reISOClock.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}

const tokenAlphabet = "1234567890abcdefghijklmnopqrstuvwxyz"

// newToken mirrors the 24-char lowercase token format the mobile app
// already scans.
func newToken() string {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		panic(err) // crypto/rand never fails on supported platforms
	}
	for i := range b {
		b[i] = tokenAlphabet[int(b[i])%len(tokenAlphabet)]
	}
	return string(b)
}
