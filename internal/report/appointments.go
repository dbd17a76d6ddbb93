package report

import (
	"sort"
	"time"
)

// appointmentReport aggregates appointments dated within the window.
// Appointments whose doctor no longer exists stay in the totals, status
// counts, month and patient series, but are excluded from the doctor- and
// specialty-keyed breakdowns.
func appointmentReport(snap Snapshot, start, end time.Time) *AppointmentReport {
	rep := &AppointmentReport{}

	byDoctor := map[string]*DoctorCount{}
	var doctorOrder []string
	bySpecialty := map[string]int{}
	var specialtyOrder []string
	byPatient := map[string]int{}
	var patientOrder []string
	byMonth := map[string]int{}

	for i := range snap.Appointments {
		a := &snap.Appointments[i]
		if !inWindow(a.Date, start, end) {
			continue
		}
		rep.TotalAppointments++
		switch a.Status {
		case "scheduled":
			rep.Scheduled++
		case "completed":
			rep.Completed++
		case "canceled":
			rep.Canceled++
		}

		if doc := snap.doctorByID(a.DoctorID); doc != nil {
			row, seen := byDoctor[doc.Name]
			if !seen {
				row = &DoctorCount{DoctorName: doc.Name, Color: doc.Color}
				byDoctor[doc.Name] = row
				doctorOrder = append(doctorOrder, doc.Name)
			}
			row.Count++

			name := SpecialtyName(doc.Specialty)
			if _, seen := bySpecialty[name]; !seen {
				specialtyOrder = append(specialtyOrder, name)
			}
			bySpecialty[name]++
		}

		patientName := snap.patientName(a.PatientID)
		if _, seen := byPatient[patientName]; !seen {
			patientOrder = append(patientOrder, patientName)
		}
		byPatient[patientName]++

		byMonth[monthKey(a.Date)]++
	}

	for _, name := range doctorOrder {
		rep.AppointmentsByDoctor = append(rep.AppointmentsByDoctor, *byDoctor[name])
	}
	for _, name := range patientOrder {
		rep.AppointmentsByPatient = append(rep.AppointmentsByPatient, PatientCount{PatientName: name, Count: byPatient[name]})
	}
	sort.SliceStable(rep.AppointmentsByPatient, func(i, j int) bool {
		return rep.AppointmentsByPatient[i].Count > rep.AppointmentsByPatient[j].Count
	})
	// Specialty colors are assigned by discovery order over the palette, so
	// distinct specialties get distinct, stable colors.
	for i, name := range specialtyOrder {
		rep.AppointmentsBySpecialty = append(rep.AppointmentsBySpecialty, SpecialtyColorCount{
			Specialty: name,
			Count:     bySpecialty[name],
			Color:     PaletteColor(i),
		})
	}
	rep.AppointmentsByMonth = sortedMonthCounts(byMonth)

	return rep
}
