package errorvalues

import "errors"

var (
	ErrUserExists      = errors.New("such user already exists")
	ErrUserNotFound    = errors.New("user doesn't exists")
	ErrInvalidToken    = errors.New("invalid token")
	ErrInvalidIdentity = errors.New("identity token rejected")

	ErrSetupCompleted  = errors.New("semester setup already completed")
	ErrSetupIncomplete = errors.New("semester setup isn't completed")
	ErrValidation      = errors.New("validation error")

	ErrAttendanceExists         = errors.New("attendance already entered for this date")
	ErrAttendanceDateNotAllowed = errors.New("attendance can't be entered for this date")
	ErrMixedUserRecords         = errors.New("attendance records belong to different users")
)
