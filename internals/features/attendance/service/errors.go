package service

// CheckinError is an expected, user-correctable check-in outcome. Anything
// that is not a *CheckinError is treated as a storage failure and surfaced
// generically.
type CheckinError struct {
	Code    string
	Message string
}

func (e *CheckinError) Error() string { return e.Message }

var (
	ErrInvalidQR = &CheckinError{
		Code:    "INVALID_QR",
		Message: "QR code is not valid",
	}
	ErrExpiredQR = &CheckinError{
		Code:    "EXPIRED_QR",
		Message: "QR code has expired",
	}
	ErrDuplicateAttendance = &CheckinError{
		Code:    "DUPLICATE_ATTENDANCE",
		Message: "Attendance already registered today",
	}
	ErrDuplicatePhoto = &CheckinError{
		Code:    "DUPLICATE_PHOTO",
		Message: "Photo already used today",
	}
	ErrJustificationRequired = &CheckinError{
		Code:    "JUSTIFICATION_REQUIRED",
		Message: "A justification is required for late check-in",
	}
)
