package report

import (
	"math"
	"testing"

	"clinic-backend/internal/models"
)

// satisfactionSnap: Omar (physical therapy) has a rated log with a same-day,
// specialty-matching appointment with Dr. Reem; Layla (nutrition) has a rated
// log with no matching appointment at all.
func satisfactionSnap() Snapshot {
	return Snapshot{
		Patients: []models.Patient{
			testPatient("p1", "Omar", func(p *models.Patient) {
				p.PrimaryCare = models.SpecialtyPhysicalTherapy
				p.TreatmentHistory = []models.TreatmentLog{
					ratedTestLog(day(2026, 2, 3), 5, "excellent session"),
					ratedTestLog(day(2026, 2, 17), 2, "long wait"),
				}
			}),
			testPatient("p2", "Layla", func(p *models.Patient) {
				p.PrimaryCare = models.SpecialtyNutrition
				p.TreatmentHistory = []models.TreatmentLog{
					ratedTestLog(day(2026, 2, 10), 4, "helpful plan"),
				}
			}),
		},
		Doctors: []models.Doctor{
			{ID: "d1", Name: "Dr. Reem", Specialty: models.SpecialtyPhysicalTherapy, Color: "#3498db"},
			{ID: "d2", Name: "Dr. Sami", Specialty: models.SpecialtyGeneral, Color: "#e74c3c"},
		},
		Appointments: []models.Appointment{
			// Same patient, same day, specialty matches: attribution target.
			{ID: "a1", PatientID: "p1", DoctorID: "d1", Date: day(2026, 2, 3), Status: models.AppointmentCompleted},
			// Same day but wrong specialty: never credited.
			{ID: "a2", PatientID: "p1", DoctorID: "d2", Date: day(2026, 2, 17), Status: models.AppointmentCompleted},
		},
	}
}

func TestSatisfaction_OverallAverage(t *testing.T) {
	rep := mustGenerate(t, satisfactionSnap(), windowReq(ReportSatisfaction, "2026-02-01", "2026-02-28"))
	data := rep.Data.(*SatisfactionReport)

	if data.AverageRating == nil {
		t.Fatal("AverageRating nil with rated logs present")
	}
	want := (5.0 + 2.0 + 4.0) / 3.0
	if math.Abs(*data.AverageRating-want) > 1e-9 {
		t.Errorf("AverageRating = %v, want %v", *data.AverageRating, want)
	}
}

func TestSatisfaction_NoRatedLogsMeansNilAverage(t *testing.T) {
	snap := Snapshot{Patients: []models.Patient{
		testPatient("p1", "Omar", func(p *models.Patient) {
			p.TreatmentHistory = []models.TreatmentLog{testLog(day(2026, 2, 1), 100, true)}
		}),
	}}
	rep := mustGenerate(t, snap, windowReq(ReportSatisfaction, "2026-02-01", "2026-02-28"))
	data := rep.Data.(*SatisfactionReport)

	if data.AverageRating != nil {
		t.Errorf("AverageRating = %v, want nil (no data, not zero)", *data.AverageRating)
	}
}

func TestSatisfaction_DistributionCoversAllRatings(t *testing.T) {
	rep := mustGenerate(t, satisfactionSnap(), windowReq(ReportSatisfaction, "2026-02-01", "2026-02-28"))
	data := rep.Data.(*SatisfactionReport)

	if len(data.RatingDistribution) != 5 {
		t.Fatalf("distribution rows = %d, want 5", len(data.RatingDistribution))
	}
	sum := 0
	for i, row := range data.RatingDistribution {
		if row.Rating != i+1 {
			t.Errorf("row %d rating = %d", i, row.Rating)
		}
		sum += row.Count
	}
	if sum != 3 {
		t.Errorf("distribution sum = %d, want 3", sum)
	}
}

func TestSatisfaction_FeedbackHighlights(t *testing.T) {
	rep := mustGenerate(t, satisfactionSnap(), windowReq(ReportSatisfaction, "2026-02-01", "2026-02-28"))
	data := rep.Data.(*SatisfactionReport)

	// Two highs (5 then 4) followed by one low (2).
	if len(data.FeedbackHighlights) != 3 {
		t.Fatalf("highlights = %d, want 3", len(data.FeedbackHighlights))
	}
	if data.FeedbackHighlights[0].Rating != 5 || data.FeedbackHighlights[1].Rating != 4 {
		t.Errorf("high highlights out of order: %+v", data.FeedbackHighlights[:2])
	}
	if data.FeedbackHighlights[2].Rating != 2 {
		t.Errorf("low highlight rating = %d, want 2", data.FeedbackHighlights[2].Rating)
	}
}

func TestSatisfaction_HighlightsRequireFeedbackText(t *testing.T) {
	snap := satisfactionSnap()
	log := ratedTestLog(day(2026, 2, 20), 5, "")
	snap.Patients[0].TreatmentHistory = append(snap.Patients[0].TreatmentHistory, log)

	rep := mustGenerate(t, snap, windowReq(ReportSatisfaction, "2026-02-01", "2026-02-28"))
	data := rep.Data.(*SatisfactionReport)
	for _, h := range data.FeedbackHighlights {
		if h.Feedback == "" {
			t.Error("highlight without feedback text")
		}
	}
}

func TestSatisfaction_DoctorAttribution(t *testing.T) {
	rep := mustGenerate(t, satisfactionSnap(), windowReq(ReportSatisfaction, "2026-02-01", "2026-02-28"))
	data := rep.Data.(*SatisfactionReport)

	// Only the 5-rating resolves to a doctor: Layla's log has no appointment
	// at all, and Omar's 2-rating only has a wrong-specialty appointment.
	if len(data.SatisfactionByDoctor) != 1 {
		t.Fatalf("SatisfactionByDoctor rows = %d, want 1: %+v", len(data.SatisfactionByDoctor), data.SatisfactionByDoctor)
	}
	row := data.SatisfactionByDoctor[0]
	if row.DoctorName != "Dr. Reem" || row.Count != 1 || row.AverageRating != 5 {
		t.Errorf("attribution row = %+v", row)
	}
}

func TestSatisfaction_UnmatchedRatingStillInOverallAndSpecialty(t *testing.T) {
	rep := mustGenerate(t, satisfactionSnap(), windowReq(ReportSatisfaction, "2026-02-01", "2026-02-28"))
	data := rep.Data.(*SatisfactionReport)

	bySpec := map[string]SpecialtyRating{}
	for _, row := range data.SatisfactionBySpecialty {
		bySpec[row.Specialty] = row
	}
	// Layla's unmatched 4-rating contributes to the nutrition average.
	if row, ok := bySpec["Nutrition"]; !ok || row.Count != 1 || row.AverageRating != 4 {
		t.Errorf("Nutrition specialty row = %+v", row)
	}
}

func TestSatisfaction_AmbiguousMatchTakesFirst(t *testing.T) {
	snap := satisfactionSnap()
	// Second qualifying appointment on the same day with a different
	// physical therapy doctor: the first in slice order keeps the credit.
	snap.Doctors = append(snap.Doctors, models.Doctor{ID: "d3", Name: "Dr. Nour", Specialty: models.SpecialtyPhysicalTherapy, Color: "#9b59b6"})
	snap.Appointments = append(snap.Appointments, models.Appointment{
		ID: "a3", PatientID: "p1", DoctorID: "d3", Date: day(2026, 2, 3), Status: models.AppointmentCompleted,
	})

	rep := mustGenerate(t, snap, windowReq(ReportSatisfaction, "2026-02-01", "2026-02-28"))
	data := rep.Data.(*SatisfactionReport)

	if len(data.SatisfactionByDoctor) != 1 || data.SatisfactionByDoctor[0].DoctorName != "Dr. Reem" {
		t.Errorf("ambiguous same-day match should credit the first appointment: %+v", data.SatisfactionByDoctor)
	}
}
