package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"restaurante_backend/internals/features/attendance/model"
	"restaurante_backend/internals/helpers/dbtime"
)

// DefaultCutoff applies when a QR window has no cutoff of its own.
var DefaultCutoff, _ = dbtime.Parse("09:10")

// Window is the read-only view of a QR window the decision needs.
type Window struct {
	Token     string
	Cutoff    *dbtime.Tod
	ExpiresAt *time.Time
}

// ErrWindowNotFound is the registry's not-found signal.
var ErrWindowNotFound = errors.New("qr window not found")

// ErrDuplicateDay is the ledger's unique-violation signal for
// (user, local day). Storage adapters remap their native duplicate errors
// (Postgres 23505) to this.
var ErrDuplicateDay = errors.New("attendance already exists for user and day")

type WindowRegistry interface {
	FindByToken(ctx context.Context, token string) (*Window, error)
}

type Ledger interface {
	ExistsForDay(ctx context.Context, userID uuid.UUID, day time.Time) (bool, error)
	PhotoUsed(ctx context.Context, userID uuid.UUID, day time.Time, sha256Hex string) (bool, error)
	Insert(ctx context.Context, rec *model.AttendanceModel) error
}

// PhotoStore persists an attested photo and returns its public reference.
type PhotoStore interface {
	Store(data []byte) (string, error)
}

type CheckinResult struct {
	AttendanceID uuid.UUID
	MarkedAt     time.Time
	Status       string
	PhotoURL     *string
}

// CheckinService runs the check-in decision procedure. All fields are set
// at construction and never mutated, so one instance serves concurrent
// requests; conflict resolution lives in the ledger's unique index, not
// here.
type CheckinService struct {
	windows WindowRegistry
	ledger  Ledger
	photos  PhotoStore
	loc     *time.Location
	now     func() time.Time
}

type Option func(*CheckinService)

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) Option {
	return func(s *CheckinService) { s.now = now }
}

func WithPhotoStore(ps PhotoStore) Option {
	return func(s *CheckinService) { s.photos = ps }
}

func NewCheckinService(windows WindowRegistry, ledger Ledger, loc *time.Location, opts ...Option) *CheckinService {
	s := &CheckinService{
		windows: windows,
		ledger:  ledger,
		loc:     loc,
		now:     time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// MarkAttendance validates the QR window, rejects duplicates for the local
// day, decides lateness against the window cutoff and appends the ledger
// record. MarkedAt, LocalDay and Status all derive from one server-side
// instant, so the stored status always agrees with the stored timestamp.
func (s *CheckinService) MarkAttendance(ctx context.Context, userID uuid.UUID, qrToken, justification string) (*CheckinResult, error) {
	rec, err := s.decide(ctx, userID, qrToken, justification)
	if err != nil {
		return nil, err
	}
	return s.insert(ctx, rec)
}

// MarkAttendanceWithPhoto is the photo-attested variant: same decision,
// plus a content-hash guard against re-using the same image on the same
// day, and the persisted image reference on the record.
func (s *CheckinService) MarkAttendanceWithPhoto(ctx context.Context, userID uuid.UUID, qrToken, justification string, photo []byte) (*CheckinResult, error) {
	rec, err := s.decide(ctx, userID, qrToken, justification)
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256(photo)
	shaHex := hex.EncodeToString(sum[:])

	used, err := s.ledger.PhotoUsed(ctx, userID, rec.LocalDay, shaHex)
	if err != nil {
		return nil, err
	}
	if used {
		return nil, ErrDuplicatePhoto
	}

	ref, err := s.photos.Store(photo)
	if err != nil {
		return nil, err
	}

	takenAt := rec.MarkedAt
	rec.PhotoURL = &ref
	rec.PhotoSHA256 = &shaHex
	rec.PhotoTakenAt = &takenAt

	return s.insert(ctx, rec)
}

// decide runs steps 1-6: window lookup, expiry, duplicate pre-check,
// lateness, justification requirement, classification. It returns the
// ready-to-insert record; only the ledger write can still fail after this.
func (s *CheckinService) decide(ctx context.Context, userID uuid.UUID, qrToken, justification string) (*model.AttendanceModel, error) {
	w, err := s.windows.FindByToken(ctx, qrToken)
	if err != nil {
		if errors.Is(err, ErrWindowNotFound) {
			return nil, ErrInvalidQR
		}
		return nil, err
	}

	now := s.now()
	if w.ExpiresAt != nil && now.After(*w.ExpiresAt) {
		return nil, ErrExpiredQR
	}

	day := dbtime.LocalDay(now, s.loc)
	exists, err := s.ledger.ExistsForDay(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateAttendance
	}

	isLate := s.LatenessAt(now, w.Cutoff)

	rec := &model.AttendanceModel{
		UserID:   userID,
		QRToken:  qrToken,
		MarkedAt: now,
		LocalDay: day,
		Status:   model.StatusPunctual,
	}

	if isLate {
		if strings.TrimSpace(justification) == "" {
			return nil, ErrJustificationRequired
		}
		cls := ClassifyLateReason(justification)
		rec.Status = model.StatusLate
		rec.LateReasonText = &justification
		rec.LateReasonCategory = &cls.Category
		rec.LateReasonScore = &cls.Score
	}

	return rec, nil
}

// LatenessAt is the single cutoff comparison shared by the write path and
// anything that needs to re-derive lateness. Strictly greater-than: a
// check-in at the exact cutoff second is punctual.
func (s *CheckinService) LatenessAt(t time.Time, cutoff *dbtime.Tod) bool {
	c := DefaultCutoff
	if cutoff != nil {
		c = *cutoff
	}
	return dbtime.LocalTimeOfDay(t, s.loc).After(c)
}

func (s *CheckinService) insert(ctx context.Context, rec *model.AttendanceModel) (*CheckinResult, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if err := s.ledger.Insert(ctx, rec); err != nil {
		// A lost race surfaces as a unique violation; the caller must not
		// be able to tell it apart from the pre-check outcome.
		if errors.Is(err, ErrDuplicateDay) {
			return nil, ErrDuplicateAttendance
		}
		return nil, err
	}
	return &CheckinResult{
		AttendanceID: rec.ID,
		MarkedAt:     rec.MarkedAt,
		Status:       rec.Status,
		PhotoURL:     rec.PhotoURL,
	}, nil
}
