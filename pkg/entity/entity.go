package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID              uuid.UUID `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	Semester        int       `json:"semester,omitempty"`
	Subjects        []string  `json:"subjects"`
	StartDate       Date      `json:"startDate"`
	EndDate         Date      `json:"endDate"`
	Timetable       Timetable `json:"timetable,omitempty"`
	IsSetupComplete bool      `json:"isSetupComplete"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type AttendanceStatus string

const (
	StatusAttended    AttendanceStatus = "attended"
	StatusNotAttended AttendanceStatus = "not attended"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusAttended, StatusNotAttended:
		return true
	default:
		return false
	}
}

// PeriodEntry is the attendance of one timetable period. Period is 1-based.
type PeriodEntry struct {
	Subject string           `json:"subject"`
	Period  int              `json:"period"`
	Status  AttendanceStatus `json:"status"`
}

// AttendanceRecord is one user's log for one calendar day. At most one record
// exists per (UserID, Date); records are never changed after creation.
type AttendanceRecord struct {
	ID                uuid.UUID     `json:"id"`
	UserID            uuid.UUID     `json:"userId"`
	Date              Date          `json:"date"`
	IsHoliday         bool          `json:"isHoliday"`
	SubjectAttendance []PeriodEntry `json:"subjectAttendance"`
	CreatedAt         time.Time     `json:"createdAt"`
}

type SubjectStats struct {
	Total      int `json:"total"`
	Attended   int `json:"attended"`
	Percentage int `json:"percentage"`
}

type Stats struct {
	TotalClasses      int                     `json:"totalClasses"`
	AttendedClasses   int                     `json:"attendedClasses"`
	OverallPercentage int                     `json:"overallPercentage"`
	SubjectStats      map[string]SubjectStats `json:"subjectStats"`
}

type LeaderboardEntry struct {
	UserID          uuid.UUID `json:"userId"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Percentage      int       `json:"percentage"`
	TotalClasses    int       `json:"totalClasses"`
	AttendedClasses int       `json:"attendedClasses"`
}
