package service

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"restaurante_backend/internals/configs"
	userDTO "restaurante_backend/internals/features/users/dto"
	userModel "restaurante_backend/internals/features/users/model"
	helper "restaurante_backend/internals/helpers"
)

// ========================== LOGIN ==========================
// POST /api/auth/login — ADMIN or WORKER
func Login(db *gorm.DB, c *fiber.Ctx) error {
	return login(db, c, false)
}

// POST /api/auth/login-admin — ADMIN only (separate panel flow)
func LoginAdmin(db *gorm.DB, c *fiber.Ctx) error {
	return login(db, c, true)
}

func login(db *gorm.DB, c *fiber.Ctx, adminOnly bool) error {
	var req userDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "email and password are required")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "email and password are required")
	}

	var u userModel.UserModel
	err := db.WithContext(c.UserContext()).
		Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		Take(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	if !u.Active {
		return helper.JsonError(c, fiber.StatusForbidden, "User is inactive")
	}
	if adminOnly && u.Role != userModel.RoleAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "Admin only")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := signToken(&u)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	return helper.JsonOK(c, "Login successful", userDTO.LoginResponse{
		Token: token,
		User: userDTO.UserLite{
			ID:         u.ID,
			Email:      u.Email,
			Role:       u.Role,
			FullName:   u.FullName,
			EmployeeNo: u.EmployeeNo,
			Active:     u.Active,
		},
	})
}

func signToken(u *userModel.UserModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   u.ID.String(),
		"role":  u.Role,
		"email": u.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(configs.JWTExpires).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(configs.JWTSecret))
}

// HashPassword is shared with the admin create-worker flow.
func HashPassword(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}
