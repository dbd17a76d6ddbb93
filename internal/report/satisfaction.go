package report

import (
	"sort"
	"time"

	"clinic-backend/internal/models"
)

// ratedLog pairs a rated treatment log with its owning patient.
type ratedLog struct {
	log     *models.TreatmentLog
	patient *models.Patient
}

// satisfactionReport aggregates rated treatment logs within the window:
// overall average, 1-5 distribution, highlighted feedback, and averages per
// care category and per doctor.
func satisfactionReport(snap Snapshot, start, end time.Time) *SatisfactionReport {
	rep := &SatisfactionReport{}

	var rated []ratedLog
	for i := range snap.Patients {
		p := &snap.Patients[i]
		for j := range p.TreatmentHistory {
			log := &p.TreatmentHistory[j]
			if log.SatisfactionRating == nil {
				continue
			}
			if !inWindow(log.Date, start, end) {
				continue
			}
			rated = append(rated, ratedLog{log: log, patient: p})
		}
	}

	sum := 0
	for _, r := range rated {
		sum += *r.log.SatisfactionRating
	}
	if len(rated) > 0 {
		avg := float64(sum) / float64(len(rated))
		rep.AverageRating = &avg
	}

	dist := map[int]int{}
	for _, r := range rated {
		dist[*r.log.SatisfactionRating]++
	}
	for rating := 1; rating <= 5; rating++ {
		rep.RatingDistribution = append(rep.RatingDistribution, RatingCount{Rating: rating, Count: dist[rating]})
	}

	rep.FeedbackHighlights = feedbackHighlights(rated)
	rep.SatisfactionBySpecialty = satisfactionBySpecialty(rated)
	rep.SatisfactionByDoctor = satisfactionByDoctor(snap, rated)

	return rep
}

// feedbackHighlights picks up to three high ratings (>=4, most favorable
// first) followed by up to three low ratings (<=2, lowest first). Logs
// without feedback text are skipped.
func feedbackHighlights(rated []ratedLog) []FeedbackHighlight {
	var high, low []ratedLog
	for _, r := range rated {
		if r.log.Feedback == "" {
			continue
		}
		switch rating := *r.log.SatisfactionRating; {
		case rating >= 4:
			high = append(high, r)
		case rating <= 2:
			low = append(low, r)
		}
	}
	sort.SliceStable(high, func(i, j int) bool {
		return *high[i].log.SatisfactionRating > *high[j].log.SatisfactionRating
	})
	sort.SliceStable(low, func(i, j int) bool {
		return *low[i].log.SatisfactionRating < *low[j].log.SatisfactionRating
	})
	if len(high) > 3 {
		high = high[:3]
	}
	if len(low) > 3 {
		low = low[:3]
	}

	var out []FeedbackHighlight
	for _, r := range append(high, low...) {
		out = append(out, FeedbackHighlight{
			PatientName: r.patient.Name,
			Feedback:    r.log.Feedback,
			Rating:      *r.log.SatisfactionRating,
			Date:        r.log.Date,
		})
	}
	return out
}

func satisfactionBySpecialty(rated []ratedLog) []SpecialtyRating {
	type acc struct {
		total, count int
	}
	byName := map[string]*acc{}
	var order []string
	for _, r := range rated {
		name := SpecialtyName(r.patient.PrimaryCare)
		a, seen := byName[name]
		if !seen {
			a = &acc{}
			byName[name] = a
			order = append(order, name)
		}
		a.total += *r.log.SatisfactionRating
		a.count++
	}

	var out []SpecialtyRating
	for _, name := range order {
		a := byName[name]
		out = append(out, SpecialtyRating{
			Specialty:     name,
			AverageRating: float64(a.total) / float64(a.count),
			Count:         a.count,
		})
	}
	return out
}

// attributeDoctor infers which doctor produced a rated log. Treatment logs
// carry no doctor reference, so the engine looks for an appointment of the
// same patient on the same calendar day whose doctor practices the patient's
// care category. Returns nil when no such appointment exists; the rating then
// still counts toward the overall and per-specialty averages, just not toward
// any doctor. When several same-day appointments qualify, the first match
// wins.
func attributeDoctor(snap Snapshot, r ratedLog) *models.Doctor {
	for i := range snap.Appointments {
		a := &snap.Appointments[i]
		if a.PatientID != r.patient.ID {
			continue
		}
		if !sameCalendarDay(a.Date, r.log.Date) {
			continue
		}
		doc := snap.doctorByID(a.DoctorID)
		if doc != nil && doc.Specialty == r.patient.PrimaryCare {
			return doc
		}
	}
	return nil
}

func satisfactionByDoctor(snap Snapshot, rated []ratedLog) []DoctorRating {
	type acc struct {
		total, count int
		color        string
	}
	byName := map[string]*acc{}
	var order []string
	for _, r := range rated {
		doc := attributeDoctor(snap, r)
		if doc == nil {
			continue
		}
		a, seen := byName[doc.Name]
		if !seen {
			a = &acc{color: doc.Color}
			byName[doc.Name] = a
			order = append(order, doc.Name)
		}
		a.total += *r.log.SatisfactionRating
		a.count++
	}

	var out []DoctorRating
	for _, name := range order {
		a := byName[name]
		out = append(out, DoctorRating{
			DoctorName:    name,
			AverageRating: float64(a.total) / float64(a.count),
			Count:         a.count,
			Color:         a.color,
		})
	}
	return out
}
