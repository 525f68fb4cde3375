// file: internals/features/attendance/repository/attendance_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"restaurante_backend/internals/features/attendance/model"
	"restaurante_backend/internals/features/attendance/service"
	"restaurante_backend/internals/helpers/storage"
)

/* ===================== QR WINDOW REGISTRY ===================== */

type GormWindowRegistry struct {
	DB *gorm.DB
}

func NewGormWindowRegistry(db *gorm.DB) *GormWindowRegistry {
	return &GormWindowRegistry{DB: db}
}

func (r *GormWindowRegistry) FindByToken(ctx context.Context, token string) (*service.Window, error) {
	var m model.QRWindowModel
	err := r.DB.WithContext(ctx).Where("token = ?", token).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrWindowNotFound
		}
		return nil, err
	}
	return &service.Window{
		Token:     m.Token,
		Cutoff:    m.OnTimeUntil,
		ExpiresAt: m.ExpiresAt,
	}, nil
}

/* ===================== ATTENDANCE LEDGER ===================== */

type GormLedger struct {
	DB *gorm.DB
}

func NewGormLedger(db *gorm.DB) *GormLedger {
	return &GormLedger{DB: db}
}

func (r *GormLedger) ExistsForDay(ctx context.Context, userID uuid.UUID, day time.Time) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).
		Model(&model.AttendanceModel{}).
		Where("user_id = ? AND local_day = ?", userID, day).
		Count(&n).Error
	return n > 0, err
}

func (r *GormLedger) PhotoUsed(ctx context.Context, userID uuid.UUID, day time.Time, sha256Hex string) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).
		Model(&model.AttendanceModel{}).
		Where("user_id = ? AND local_day = ? AND photo_sha256 = ?", userID, day, sha256Hex).
		Count(&n).Error
	return n > 0, err
}

// Insert appends the record in a single statement. A unique violation on
// (user_id, local_day) from a concurrent check-in is remapped to
// service.ErrDuplicateDay so the decision procedure can report it exactly
// like the pre-check duplicate.
func (r *GormLedger) Insert(ctx context.Context, rec *model.AttendanceModel) error {
	err := r.DB.WithContext(ctx).Create(rec).Error
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return service.ErrDuplicateDay
	}
	return err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

/* ===================== PHOTO STORE ===================== */

// DiskPhotoStore adapts the shared image store to the service's
// PhotoStore contract (store bytes, get back a public reference).
type DiskPhotoStore struct {
	Images *storage.ImageStore
}

func NewDiskPhotoStore(images *storage.ImageStore) *DiskPhotoStore {
	return &DiskPhotoStore{Images: images}
}

func (p *DiskPhotoStore) Store(data []byte) (string, error) {
	saved, err := p.Images.Save("attendance", data)
	if err != nil {
		return "", err
	}
	return saved.PublicURL, nil
}
