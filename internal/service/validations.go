package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/attendance/internal/error_values"
	"github.com/limbo/attendance/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

const maxSubjectLen = 100

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// Dates are validated as their ISO form so that `required` rejects zero dates
		validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
			d, ok := field.Interface().(entity.Date)
			if !ok || d.IsZero() {
				return ""
			}
			return d.String()
		}, entity.Date{})
		validate.RegisterValidation("subject_name", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if strings.TrimSpace(value) != value || value == "" || len(value) > maxSubjectLen {
				return false
			}
			for _, char := range value {
				if unicode.IsControl(char) {
					return false
				}
			}
			return true
		})
		validate.RegisterStructValidation(setupStructLevel, SetupRequest{})
		validate.RegisterStructValidation(periodEntryStructLevel, entity.PeriodEntry{})
		validate.RegisterStructValidation(enterAttendanceStructLevel, EnterAttendanceRequest{})
	})
}

func setupStructLevel(sl validator.StructLevel) {
	req := sl.Current().Interface().(SetupRequest)
	if !req.StartDate.IsZero() && !req.EndDate.IsZero() && !req.StartDate.Before(req.EndDate) {
		sl.ReportError(req.EndDate, "EndDate", "EndDate", "after_start", "")
	}
	known := make(map[string]struct{}, len(req.Subjects))
	for _, s := range req.Subjects {
		known[s] = struct{}{}
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		slots, ok := req.Timetable[wd]
		if wd == req.offDay {
			if ok && hasSubject(slots) {
				sl.ReportError(req.Timetable, "Timetable", "Timetable", "off_day_"+strings.ToLower(wd.String()), "")
			}
			continue
		}
		if !ok || len(slots) != entity.PeriodsPerDay {
			sl.ReportError(req.Timetable, "Timetable", "Timetable", "periods_"+strings.ToLower(wd.String()), "")
			continue
		}
		for _, slot := range slots {
			if slot == "" {
				continue
			}
			if _, ok := known[slot]; !ok {
				sl.ReportError(req.Timetable, "Timetable", "Timetable", "unknown_subject_"+strings.ToLower(wd.String()), slot)
				break
			}
		}
	}
}

func hasSubject(slots []string) bool {
	for _, s := range slots {
		if s != "" {
			return true
		}
	}
	return false
}

func periodEntryStructLevel(sl validator.StructLevel) {
	entry := sl.Current().Interface().(entity.PeriodEntry)
	if strings.TrimSpace(entry.Subject) == "" {
		sl.ReportError(entry.Subject, "Subject", "Subject", "required", "")
	}
	if entry.Period < 1 || entry.Period > entity.PeriodsPerDay {
		sl.ReportError(entry.Period, "Period", "Period", "period_range", "")
	}
	if !entry.Status.Valid() {
		sl.ReportError(entry.Status, "Status", "Status", "status", string(entry.Status))
	}
}

func enterAttendanceStructLevel(sl validator.StructLevel) {
	req := sl.Current().Interface().(EnterAttendanceRequest)
	if req.IsHoliday {
		return
	}
	if len(req.SubjectAttendance) == 0 {
		sl.ReportError(req.SubjectAttendance, "SubjectAttendance", "SubjectAttendance", "required", "")
		return
	}
	seen := make(map[int]struct{}, len(req.SubjectAttendance))
	for _, entry := range req.SubjectAttendance {
		if _, ok := seen[entry.Period]; ok {
			sl.ReportError(req.SubjectAttendance, "SubjectAttendance", "SubjectAttendance", "unique_period", fmt.Sprint(entry.Period))
			return
		}
		seen[entry.Period] = struct{}{}
	}
}

// validateStruct runs the validator and folds field errors into one ErrValidation.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		msgs := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("%s: failed on %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("%w: %s", errorvalues.ErrValidation, strings.Join(msgs, "; "))
	}
	return errors.New("validation unexpected error: " + err.Error())
}
