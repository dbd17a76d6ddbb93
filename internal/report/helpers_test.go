package report

import (
	"testing"
	"time"

	"clinic-backend/internal/models"
)

// Fixed clock for deterministic age math.
var testNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.Local)

func intPtr(v int) *int { return &v }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.Local)
}

func testPatient(id, name string, opts ...func(*models.Patient)) models.Patient {
	p := models.Patient{
		ID:          id,
		Name:        name,
		DOB:         "1990-01-15",
		Gender:      "male",
		Height:      175,
		Weight:      70,
		PrimaryCare: models.SpecialtyGeneral,
		CreatedAt:   day(2026, 3, 10),
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func testDoctor(id, name, specialty string) models.Doctor {
	return models.Doctor{ID: id, Name: name, Specialty: specialty, Color: "#3498db"}
}

func testLog(date time.Time, cost float64, paid bool) models.TreatmentLog {
	return models.TreatmentLog{ID: "log-" + date.Format("20060102"), Date: date, Treatment: "session", Cost: cost, Paid: paid}
}

func ratedTestLog(date time.Time, rating int, feedback string) models.TreatmentLog {
	l := testLog(date, 100, true)
	l.SatisfactionRating = intPtr(rating)
	l.Feedback = feedback
	return l
}

func windowReq(t ReportType, start, end string) Request {
	return Request{Type: t, StartDate: start, EndDate: end}
}

func mustGenerate(t *testing.T, snap Snapshot, req Request) *Generated {
	t.Helper()
	rep, err := generateAt(snap, req, testNow)
	if err != nil {
		t.Fatalf("generate %s: %v", req.Type, err)
	}
	return rep
}
