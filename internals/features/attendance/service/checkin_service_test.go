package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurante_backend/internals/features/attendance/model"
	"restaurante_backend/internals/helpers/dbtime"
)

// Lima has no DST, a fixed offset is equivalent and keeps tests hermetic.
var lima = time.FixedZone("-05", -5*60*60)

type fakeRegistry struct {
	windows map[string]*Window
}

func (f *fakeRegistry) FindByToken(_ context.Context, token string) (*Window, error) {
	w, ok := f.windows[token]
	if !ok {
		return nil, ErrWindowNotFound
	}
	return w, nil
}

type fakeLedger struct {
	existing  map[string]bool // userID|day
	usedPhoto map[string]bool // userID|day|sha
	insertErr error
	inserted  []*model.AttendanceModel
}

func dayKey(userID uuid.UUID, day time.Time) string {
	return userID.String() + "|" + day.Format("2006-01-02")
}

func (f *fakeLedger) ExistsForDay(_ context.Context, userID uuid.UUID, day time.Time) (bool, error) {
	return f.existing[dayKey(userID, day)], nil
}

func (f *fakeLedger) PhotoUsed(_ context.Context, userID uuid.UUID, day time.Time, sha string) (bool, error) {
	return f.usedPhoto[dayKey(userID, day)+"|"+sha], nil
}

func (f *fakeLedger) Insert(_ context.Context, rec *model.AttendanceModel) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, rec)
	f.existing[dayKey(rec.UserID, rec.LocalDay)] = true
	return nil
}

type fakePhotos struct {
	url    string
	stores int
}

func (f *fakePhotos) Store(_ []byte) (string, error) {
	f.stores++
	return f.url, nil
}

func newFixture(t *testing.T, now time.Time) (*CheckinService, *fakeLedger, *fakePhotos) {
	t.Helper()

	expires := now.Add(8 * time.Hour)
	customCutoff, err := dbtime.Parse("22:00")
	require.NoError(t, err)

	reg := &fakeRegistry{windows: map[string]*Window{
		"turno-manana": {Token: "turno-manana", ExpiresAt: &expires},
		"turno-noche":  {Token: "turno-noche", Cutoff: &customCutoff, ExpiresAt: &expires},
	}}
	ledger := &fakeLedger{
		existing:  map[string]bool{},
		usedPhoto: map[string]bool{},
	}
	photos := &fakePhotos{url: "/uploads/attendance/abc.webp"}

	svc := NewCheckinService(reg, ledger, lima,
		WithClock(func() time.Time { return now }),
		WithPhotoStore(photos),
	)
	return svc, ledger, photos
}

func at(hour, min, sec int) time.Time {
	return time.Date(2025, 9, 22, hour, min, sec, 0, lima)
}

func TestMarkAttendance_PunctualAtExactCutoff(t *testing.T) {
	now := at(9, 10, 0)
	svc, ledger, _ := newFixture(t, now)

	res, err := svc.MarkAttendance(context.Background(), uuid.New(), "turno-manana", "")
	require.NoError(t, err)

	assert.Equal(t, model.StatusPunctual, res.Status)
	assert.True(t, res.MarkedAt.Equal(now))
	require.Len(t, ledger.inserted, 1)
	rec := ledger.inserted[0]
	assert.Nil(t, rec.LateReasonText)
	assert.Nil(t, rec.LateReasonCategory)
}

func TestMarkAttendance_LateOneSecondPastCutoff(t *testing.T) {
	svc, ledger, _ := newFixture(t, at(9, 10, 1))

	res, err := svc.MarkAttendance(context.Background(), uuid.New(), "turno-manana", "Atasco en la avenida principal")
	require.NoError(t, err)

	assert.Equal(t, model.StatusLate, res.Status)
	require.Len(t, ledger.inserted, 1)
	rec := ledger.inserted[0]
	require.NotNil(t, rec.LateReasonCategory)
	assert.Equal(t, "Tráfico", *rec.LateReasonCategory)
	require.NotNil(t, rec.LateReasonScore)
	assert.Equal(t, 95, *rec.LateReasonScore)
	require.NotNil(t, rec.LateReasonText)
	assert.Equal(t, "Atasco en la avenida principal", *rec.LateReasonText)
}

func TestMarkAttendance_LateWithoutJustification(t *testing.T) {
	svc, ledger, _ := newFixture(t, at(9, 30, 0))

	_, err := svc.MarkAttendance(context.Background(), uuid.New(), "turno-manana", "   ")
	assert.ErrorIs(t, err, ErrJustificationRequired)
	assert.Empty(t, ledger.inserted, "a rejected check-in must not write")
}

func TestMarkAttendance_InvalidToken(t *testing.T) {
	svc, _, _ := newFixture(t, at(9, 0, 0))

	_, err := svc.MarkAttendance(context.Background(), uuid.New(), "no-such-token", "")
	assert.ErrorIs(t, err, ErrInvalidQR)
}

func TestMarkAttendance_ExpiredWindow(t *testing.T) {
	now := at(9, 0, 0)
	expired := now.Add(-time.Minute)
	reg := &fakeRegistry{windows: map[string]*Window{
		"viejo": {Token: "viejo", ExpiresAt: &expired},
	}}
	ledger := &fakeLedger{existing: map[string]bool{}, usedPhoto: map[string]bool{}}
	svc := NewCheckinService(reg, ledger, lima, WithClock(func() time.Time { return now }))

	_, err := svc.MarkAttendance(context.Background(), uuid.New(), "viejo", "")
	assert.ErrorIs(t, err, ErrExpiredQR)
}

func TestMarkAttendance_DuplicateSameDay(t *testing.T) {
	now := at(8, 0, 0)
	svc, ledger, _ := newFixture(t, now)
	userID := uuid.New()

	_, err := svc.MarkAttendance(context.Background(), userID, "turno-manana", "")
	require.NoError(t, err)

	_, err = svc.MarkAttendance(context.Background(), userID, "turno-manana", "")
	assert.ErrorIs(t, err, ErrDuplicateAttendance)
	assert.Len(t, ledger.inserted, 1, "at most one record per user per day")
}

// Two requests can both pass the pre-check; the loser of the insert race
// must see the same error as a plain duplicate.
func TestMarkAttendance_InsertRaceLooksLikeDuplicate(t *testing.T) {
	svc, ledger, _ := newFixture(t, at(8, 0, 0))
	ledger.insertErr = ErrDuplicateDay

	_, err := svc.MarkAttendance(context.Background(), uuid.New(), "turno-manana", "")
	assert.ErrorIs(t, err, ErrDuplicateAttendance)
}

func TestMarkAttendance_CustomWindowCutoff(t *testing.T) {
	// 21:30 is late for the default 09:10 cutoff but on time for the
	// night-shift window.
	svc, _, _ := newFixture(t, at(21, 30, 0))

	res, err := svc.MarkAttendance(context.Background(), uuid.New(), "turno-noche", "")
	require.NoError(t, err)
	assert.Equal(t, model.StatusPunctual, res.Status)
}

func TestMarkAttendance_RecordUsesOneInstant(t *testing.T) {
	now := at(9, 10, 1)
	svc, ledger, _ := newFixture(t, now)

	_, err := svc.MarkAttendance(context.Background(), uuid.New(), "turno-manana", "trafico")
	require.NoError(t, err)

	rec := ledger.inserted[0]
	assert.True(t, rec.MarkedAt.Equal(now))
	assert.Equal(t, dbtime.LocalDay(now, lima), rec.LocalDay)
	assert.Equal(t, model.StatusLate, rec.Status)
}

func TestMarkAttendanceWithPhoto_StoresHashAndURL(t *testing.T) {
	now := at(8, 45, 0)
	svc, ledger, photos := newFixture(t, now)

	res, err := svc.MarkAttendanceWithPhoto(context.Background(), uuid.New(), "turno-manana", "", []byte("jpeg-bytes"))
	require.NoError(t, err)

	assert.Equal(t, 1, photos.stores)
	require.NotNil(t, res.PhotoURL)
	assert.Equal(t, "/uploads/attendance/abc.webp", *res.PhotoURL)

	rec := ledger.inserted[0]
	require.NotNil(t, rec.PhotoSHA256)
	assert.Len(t, *rec.PhotoSHA256, 64)
	require.NotNil(t, rec.PhotoTakenAt)
	assert.True(t, rec.PhotoTakenAt.Equal(now))
}

func TestMarkAttendanceWithPhoto_ReusedPhotoRejected(t *testing.T) {
	now := at(8, 45, 0)
	svc, ledger, photos := newFixture(t, now)
	userID := uuid.New()

	// Same hash already recorded for this user and day.
	day := dbtime.LocalDay(now, lima)
	sha := "27ef5e9b2e9b9b3a3d0fdc1ecf0b7bb0b5bb2b6f3cbcf2cf8f0b9f5f0a1c2d3e"
	ledger.usedPhoto[dayKey(userID, day)+"|"+sha] = true

	// Not the hash of "jpeg-bytes", so this submission passes.
	res, err := svc.MarkAttendanceWithPhoto(context.Background(), userID, "turno-manana", "", []byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NotNil(t, res.PhotoURL)

	// Replaying the exact same bytes for another slot of the same user/day
	// collides on the recorded hash.
	other := &fakeLedger{existing: map[string]bool{}, usedPhoto: map[string]bool{}}
	rec := ledger.inserted[0]
	other.usedPhoto[dayKey(userID, day)+"|"+*rec.PhotoSHA256] = true
	svc2 := NewCheckinService(
		&fakeRegistry{windows: map[string]*Window{"turno-manana": {Token: "turno-manana"}}},
		other, lima,
		WithClock(func() time.Time { return now }),
		WithPhotoStore(photos),
	)
	_, err = svc2.MarkAttendanceWithPhoto(context.Background(), userID, "turno-manana", "", []byte("jpeg-bytes"))
	assert.ErrorIs(t, err, ErrDuplicatePhoto)
	assert.Empty(t, other.inserted)
}

func TestMarkAttendance_EveningStaysOnLocalDay(t *testing.T) {
	// 23:30 in Lima is 04:30 UTC the next day. The record must land on the
	// Lima date.
	now := at(23, 30, 0)
	svc, ledger, _ := newFixture(t, now)

	_, err := svc.MarkAttendance(context.Background(), uuid.New(), "turno-noche", "trafico en la via")
	require.NoError(t, err)

	want := time.Date(2025, 9, 22, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, want, ledger.inserted[0].LocalDay)
}
