package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"restaurante_backend/internals/features/reports/dto"
	helper "restaurante_backend/internals/helpers"
)

type ReportsController struct {
	DB *gorm.DB
}

func NewReportsController(db *gorm.DB) *ReportsController {
	return &ReportsController{DB: db}
}

// Reports read attendance.local_day and attendance.status as stored by the
// write path. Lateness is never recomputed here, so charts cannot disagree
// with what the check-in decided.

/* ===================== DAILY SUMMARY ===================== */
// GET /api/reports/attendance/summary?from=2025-09-22&to=2025-09-27
// Per day: punctual count, late count, absences (active workers with no
// record that day).
func (ctrl *ReportsController) Summary(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	const q = `
		WITH days AS (
			SELECT d::date AS day
			FROM generate_series(?::date, ?::date, '1 day') AS d
		),
		workers AS (
			SELECT id FROM users WHERE role = 'WORKER' AND active
		),
		att AS (
			SELECT user_id, local_day AS day, status FROM attendance
		)
		SELECT
			d.day,
			COUNT(*) FILTER (WHERE att.status = 'punctual') AS punctual,
			COUNT(*) FILTER (WHERE att.status = 'late')     AS late,
			COUNT(*) FILTER (WHERE att.user_id IS NULL)     AS absent
		FROM days d
		CROSS JOIN workers w
		LEFT JOIN att ON att.user_id = w.id AND att.day = d.day
		GROUP BY d.day
		ORDER BY d.day ASC`

	var rows []dto.DailySummaryRow
	if err := ctrl.DB.WithContext(c.UserContext()).Raw(q, from, to).Scan(&rows).Error; err != nil {
		log.Println("[ERROR] attendance summary:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build report")
	}
	return helper.JsonList(c, "", rows)
}

/* ===================== BY USER ===================== */
// GET /api/reports/attendance/by-user?from=2025-09-22&to=2025-09-27
func (ctrl *ReportsController) ByUser(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	const q = `
		WITH days AS (
			SELECT d::date AS day
			FROM generate_series(?::date, ?::date, '1 day') AS d
		),
		workers AS (
			SELECT id, full_name, email FROM users WHERE role = 'WORKER' AND active
		),
		calendar AS (
			SELECT w.id AS user_id, w.full_name, w.email, d.day
			FROM workers w CROSS JOIN days d
		),
		att AS (
			SELECT user_id, local_day AS day, status FROM attendance
		)
		SELECT
			cal.user_id,
			cal.full_name,
			cal.email,
			COUNT(*) FILTER (WHERE att.status = 'punctual') AS punctual,
			COUNT(*) FILTER (WHERE att.status = 'late')     AS late,
			COUNT(*) FILTER (WHERE att.user_id IS NULL)     AS absent
		FROM calendar cal
		LEFT JOIN att ON att.user_id = cal.user_id AND att.day = cal.day
		GROUP BY cal.user_id, cal.full_name, cal.email
		ORDER BY cal.full_name ASC`

	var rows []dto.UserSummaryRow
	if err := ctrl.DB.WithContext(c.UserContext()).Raw(q, from, to).Scan(&rows).Error; err != nil {
		log.Println("[ERROR] attendance by user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build report")
	}
	return helper.JsonList(c, "", rows)
}

func parseRange(c *fiber.Ctx) (string, string, error) {
	from := c.Query("from")
	to := c.Query("to")
	if _, err := time.Parse("2006-01-02", from); err != nil {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "from is required (YYYY-MM-DD)")
	}
	if _, err := time.Parse("2006-01-02", to); err != nil {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "to is required (YYYY-MM-DD)")
	}
	return from, to, nil
}
