package report

import "time"

// Generate dispatches a report request to its aggregator and wraps the result
// in a tagged payload. A *ValidationError (and no payload) is returned for a
// missing/invalid date range, a missing entity selection, or an unresolved
// entity id; the engine never produces a partial report.
func Generate(snap Snapshot, req Request) (*Generated, error) {
	return generateAt(snap, req, time.Now())
}

// generateAt pins "now" so age calculations are deterministic under test.
func generateAt(snap Snapshot, req Request, now time.Time) (*Generated, error) {
	if req.Type.Windowed() {
		start, end, err := resolveWindow(req.StartDate, req.EndDate)
		if err != nil {
			return nil, err
		}
		var data interface{}
		switch req.Type {
		case ReportDemographics:
			data = demographicsReport(snap, start, end, now)
		case ReportAppointments:
			data = appointmentReport(snap, start, end)
		case ReportFinancial:
			data = financialReport(snap, start, end)
		case ReportSatisfaction:
			data = satisfactionReport(snap, start, end)
		}
		return &Generated{Type: req.Type, Data: data}, nil
	}

	switch req.Type {
	case ReportPatientSummary:
		idx, err := snap.resolvePatient(req.PatientID)
		if err != nil {
			return nil, err
		}
		return &Generated{Type: req.Type, Data: patientSummary(snap, &snap.Patients[idx])}, nil
	case ReportDoctorSummary:
		idx, err := snap.resolveDoctor(req.DoctorID)
		if err != nil {
			return nil, err
		}
		return &Generated{Type: req.Type, Data: doctorSummary(snap, &snap.Doctors[idx], req.IncludeAllAppointments)}, nil
	}

	return nil, validationErrorf("unknown report type %q", string(req.Type))
}
