package report

import (
	"testing"
	"time"

	"clinic-backend/internal/models"
)

func TestResolveWindow(t *testing.T) {
	start, end, err := resolveWindow("2026-01-01", "2026-01-31")
	if err != nil {
		t.Fatalf("resolveWindow: %v", err)
	}
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
		t.Errorf("start not normalized to midnight: %v", start)
	}
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Errorf("end not normalized to end of day: %v", end)
	}
	if end.Nanosecond() != int(999*time.Millisecond) {
		t.Errorf("end millisecond = %d, want 999ms", end.Nanosecond())
	}
}

func TestResolveWindow_MissingDates(t *testing.T) {
	for _, pair := range [][2]string{{"", "2026-01-31"}, {"2026-01-01", ""}, {"", ""}} {
		if _, _, err := resolveWindow(pair[0], pair[1]); err == nil {
			t.Errorf("resolveWindow(%q, %q) expected a validation error", pair[0], pair[1])
		}
	}
}

func TestResolveWindow_Unparseable(t *testing.T) {
	if _, _, err := resolveWindow("01/02/2026", "2026-01-31"); err == nil {
		t.Error("expected validation error for non-ISO start date")
	}
	if _, _, err := resolveWindow("2026-01-01", "soon"); err == nil {
		t.Error("expected validation error for unparseable end date")
	}
}

func TestResolveWindow_EndBeforeStart_EmptyNotError(t *testing.T) {
	snap := Snapshot{Patients: []models.Patient{testPatient("p1", "Omar")}}

	rep := mustGenerate(t, snap, windowReq(ReportDemographics, "2026-04-01", "2026-03-01"))
	data := rep.Data.(*DemographicsReport)
	if data.TotalPatients != 0 {
		t.Errorf("reversed window should match nothing, got %d patients", data.TotalPatients)
	}
}

func TestResolveEntities(t *testing.T) {
	snap := Snapshot{
		Patients: []models.Patient{testPatient("p1", "Omar")},
		Doctors:  []models.Doctor{testDoctor("d1", "Dr. Reem", "general")},
	}

	if _, err := snap.resolvePatient(""); err == nil {
		t.Error("empty patient id must fail resolution")
	}
	if _, err := snap.resolvePatient("ghost"); err == nil {
		t.Error("unknown patient id must fail resolution")
	}
	if idx, err := snap.resolvePatient("p1"); err != nil || idx != 0 {
		t.Errorf("resolvePatient(p1) = (%d, %v)", idx, err)
	}
	if _, err := snap.resolveDoctor(""); err == nil {
		t.Error("empty doctor id must fail resolution")
	}
	if idx, err := snap.resolveDoctor("d1"); err != nil || idx != 0 {
		t.Errorf("resolveDoctor(d1) = (%d, %v)", idx, err)
	}
}
