package report

import (
	"fmt"
	"time"

	"clinic-backend/internal/models"
)

const dateLayout = "2006-01-02"

// ValidationError marks a report request the engine refuses to run: missing
// or unparseable date range, or an unresolved entity selection. It is the
// only error kind the engine produces.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErrorf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// resolveWindow turns an inclusive YYYY-MM-DD pair into concrete bounds:
// start normalized to 00:00:00.000, end to 23:59:59.999. Both dates are
// required for windowed report types. An end before start is not an error;
// the returned bounds simply match nothing, yielding an empty report.
func resolveWindow(startDate, endDate string) (start, end time.Time, err error) {
	if startDate == "" || endDate == "" {
		return start, end, validationErrorf("start and end dates are required for this report type")
	}
	s, perr := time.ParseInLocation(dateLayout, startDate, time.Local)
	if perr != nil {
		return start, end, validationErrorf("invalid start date %q, expected YYYY-MM-DD", startDate)
	}
	e, perr := time.ParseInLocation(dateLayout, endDate, time.Local)
	if perr != nil {
		return start, end, validationErrorf("invalid end date %q, expected YYYY-MM-DD", endDate)
	}
	start = time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, s.Location())
	end = time.Date(e.Year(), e.Month(), e.Day(), 23, 59, 59, int(999*time.Millisecond), e.Location())
	return start, end, nil
}

func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// resolvePatient finds the selected patient for a patient-summary request.
func (s Snapshot) resolvePatient(id string) (int, error) {
	if id == "" {
		return -1, validationErrorf("a patient must be selected for a patient summary report")
	}
	for i := range s.Patients {
		if s.Patients[i].ID == id {
			return i, nil
		}
	}
	return -1, validationErrorf("patient %s not found", id)
}

// resolveDoctor finds the selected doctor for a doctor-summary request.
func (s Snapshot) resolveDoctor(id string) (int, error) {
	if id == "" {
		return -1, validationErrorf("a doctor must be selected for a doctor summary report")
	}
	for i := range s.Doctors {
		if s.Doctors[i].ID == id {
			return i, nil
		}
	}
	return -1, validationErrorf("doctor %s not found", id)
}

func (s Snapshot) doctorByID(id string) *models.Doctor {
	for i := range s.Doctors {
		if s.Doctors[i].ID == id {
			return &s.Doctors[i]
		}
	}
	return nil
}

func (s Snapshot) patientName(id string) string {
	for i := range s.Patients {
		if s.Patients[i].ID == id {
			return s.Patients[i].Name
		}
	}
	return deletedPatientLabel
}
