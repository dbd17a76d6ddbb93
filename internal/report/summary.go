package report

import (
	"sort"

	"clinic-backend/internal/models"
)

// patientSummary builds the full per-patient view: all appointments (oldest
// first) with doctor name/color attached, all treatment logs (oldest first),
// appointment and billing totals, and a nullable average satisfaction rating.
func patientSummary(snap Snapshot, patient *models.Patient) *PatientSummaryReport {
	rep := &PatientSummaryReport{Patient: *patient}

	var apps []*models.Appointment
	for i := range snap.Appointments {
		if snap.Appointments[i].PatientID == patient.ID {
			apps = append(apps, &snap.Appointments[i])
		}
	}
	sort.SliceStable(apps, func(i, j int) bool { return apps[i].Date.Before(apps[j].Date) })

	rep.TotalAppointments = len(apps)
	for _, a := range apps {
		switch a.Status {
		case models.AppointmentCompleted:
			rep.CompletedAppointments++
		case models.AppointmentCanceled:
			rep.CanceledAppointments++
		}

		detail := PatientAppointmentDetail{
			Date:        a.Date,
			DoctorName:  deletedDoctorLabel,
			Reason:      a.Reason,
			Status:      a.Status,
			DoctorColor: fallbackColor,
		}
		if doc := snap.doctorByID(a.DoctorID); doc != nil {
			detail.DoctorName = doc.Name
			detail.DoctorColor = doc.Color
		}
		rep.AppointmentsDetails = append(rep.AppointmentsDetails, detail)
	}

	logs := make([]models.TreatmentLog, len(patient.TreatmentHistory))
	copy(logs, patient.TreatmentHistory)
	sort.SliceStable(logs, func(i, j int) bool { return logs[i].Date.Before(logs[j].Date) })
	rep.TreatmentLogsDetails = logs

	ratingSum, ratingCount := 0, 0
	for i := range logs {
		rep.TotalBilled += logs[i].Cost
		if logs[i].Paid {
			rep.TotalPaid += logs[i].Cost
		} else {
			rep.TotalOutstanding += logs[i].Cost
		}
		if logs[i].SatisfactionRating != nil {
			ratingSum += *logs[i].SatisfactionRating
			ratingCount++
		}
	}
	if ratingCount > 0 {
		avg := float64(ratingSum) / float64(ratingCount)
		rep.AverageSatisfactionRating = &avg
	}

	return rep
}

// doctorSummary builds the per-doctor view: appointments newest first (five
// most recent highlighted), status counts, deduplicated treated patients with
// visit counts, and an average satisfaction rating attributed through the
// same same-day/same-specialty heuristic as the satisfaction report, scoped
// to this doctor's own appointments.
func doctorSummary(snap Snapshot, doctor *models.Doctor, includeAll bool) *DoctorSummaryReport {
	rep := &DoctorSummaryReport{Doctor: *doctor}

	var apps []*models.Appointment
	for i := range snap.Appointments {
		if snap.Appointments[i].DoctorID == doctor.ID {
			apps = append(apps, &snap.Appointments[i])
		}
	}
	sort.SliceStable(apps, func(i, j int) bool { return apps[i].Date.After(apps[j].Date) })

	rep.TotalAppointments = len(apps)

	treated := map[string]*TreatedPatient{}
	var treatedOrder []string
	ratingSum, ratingCount := 0, 0

	for _, a := range apps {
		switch a.Status {
		case models.AppointmentScheduled:
			rep.ScheduledAppointments++
		case models.AppointmentCompleted:
			rep.CompletedAppointments++
		case models.AppointmentCanceled:
			rep.CanceledAppointments++
		}

		detail := DoctorAppointmentDetail{
			Date:        a.Date,
			PatientName: snap.patientName(a.PatientID),
			Reason:      a.Reason,
			Status:      a.Status,
			PatientID:   a.PatientID,
		}
		if len(rep.RecentAppointments) < 5 {
			rep.RecentAppointments = append(rep.RecentAppointments, detail)
		}
		if includeAll {
			rep.AllAppointments = append(rep.AllAppointments, detail)
		}

		var patient *models.Patient
		for i := range snap.Patients {
			if snap.Patients[i].ID == a.PatientID {
				patient = &snap.Patients[i]
				break
			}
		}
		if patient == nil {
			continue
		}

		row, seen := treated[patient.ID]
		if !seen {
			row = &TreatedPatient{ID: patient.ID, Name: patient.Name}
			treated[patient.ID] = row
			treatedOrder = append(treatedOrder, patient.ID)
		}
		row.Count++

		// Same-day, same-specialty attribution over this doctor's own
		// appointments.
		if doctor.Specialty != patient.PrimaryCare {
			continue
		}
		for i := range patient.TreatmentHistory {
			log := &patient.TreatmentHistory[i]
			if log.SatisfactionRating != nil && sameCalendarDay(log.Date, a.Date) {
				ratingSum += *log.SatisfactionRating
				ratingCount++
			}
		}
	}

	if ratingCount > 0 {
		avg := float64(ratingSum) / float64(ratingCount)
		rep.AverageSatisfactionRating = &avg
	}

	for _, id := range treatedOrder {
		rep.TreatedPatients = append(rep.TreatedPatients, *treated[id])
	}
	sort.SliceStable(rep.TreatedPatients, func(i, j int) bool {
		return rep.TreatedPatients[i].Count > rep.TreatedPatients[j].Count
	})

	return rep
}
