// Package export renders generated reports as Excel workbooks for download.
package export

import (
	"fmt"

	"clinic-backend/internal/report"

	"github.com/xuri/excelize/v2"
)

const dateFormat = "2006-01-02 15:04"

// Workbook builds an xlsx file for a generated report. The caller owns the
// returned file and must Close it.
func Workbook(gen *report.Generated) (*excelize.File, error) {
	f := excelize.NewFile()

	var err error
	switch data := gen.Data.(type) {
	case *report.DemographicsReport:
		err = writeDemographics(f, data)
	case *report.AppointmentReport:
		err = writeAppointments(f, data)
	case *report.FinancialReport:
		err = writeFinancial(f, data)
	case *report.SatisfactionReport:
		err = writeSatisfaction(f, data)
	case *report.PatientSummaryReport:
		err = writePatientSummary(f, data)
	case *report.DoctorSummaryReport:
		err = writeDoctorSummary(f, data)
	default:
		err = fmt.Errorf("unsupported report payload %T", gen.Data)
	}
	if err != nil {
		f.Close()
		return nil, err
	}

	f.DeleteSheet("Sheet1")
	return f, nil
}

// writeSheet fills a sheet with a header row followed by data rows.
func writeSheet(f *excelize.File, name string, header []interface{}, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return err
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func ratingCell(avg *float64) interface{} {
	if avg == nil {
		return "no data"
	}
	return *avg
}

func writeDemographics(f *excelize.File, data *report.DemographicsReport) error {
	summary := [][]interface{}{
		{"Total patients", data.TotalPatients},
		{"Male", data.MalePatients},
		{"Female", data.FemalePatients},
	}
	if err := writeSheet(f, "Summary", []interface{}{"Metric", "Value"}, summary); err != nil {
		return err
	}

	ages := make([][]interface{}, len(data.AgeDistribution))
	for i, row := range data.AgeDistribution {
		ages[i] = []interface{}{row.Label, row.Count}
	}
	if err := writeSheet(f, "Age Distribution", []interface{}{"Age Group", "Patients"}, ages); err != nil {
		return err
	}

	bmi := make([][]interface{}, len(data.BMIDistribution))
	for i, row := range data.BMIDistribution {
		bmi[i] = []interface{}{row.Label, row.Count}
	}
	if err := writeSheet(f, "BMI Distribution", []interface{}{"BMI Category", "Patients"}, bmi); err != nil {
		return err
	}

	specs := make([][]interface{}, len(data.PatientsBySpecialty))
	for i, row := range data.PatientsBySpecialty {
		specs[i] = []interface{}{row.Specialty, row.Count}
	}
	if err := writeSheet(f, "By Specialty", []interface{}{"Specialty", "Patients"}, specs); err != nil {
		return err
	}

	growth := make([][]interface{}, len(data.PatientGrowthByMonth))
	for i, row := range data.PatientGrowthByMonth {
		growth[i] = []interface{}{row.Month, row.Count}
	}
	return writeSheet(f, "Growth", []interface{}{"Month", "New Patients"}, growth)
}

func writeAppointments(f *excelize.File, data *report.AppointmentReport) error {
	summary := [][]interface{}{
		{"Total appointments", data.TotalAppointments},
		{"Scheduled", data.Scheduled},
		{"Completed", data.Completed},
		{"Canceled", data.Canceled},
	}
	if err := writeSheet(f, "Summary", []interface{}{"Metric", "Value"}, summary); err != nil {
		return err
	}

	byDoctor := make([][]interface{}, len(data.AppointmentsByDoctor))
	for i, row := range data.AppointmentsByDoctor {
		byDoctor[i] = []interface{}{row.DoctorName, row.Count}
	}
	if err := writeSheet(f, "By Doctor", []interface{}{"Doctor", "Appointments"}, byDoctor); err != nil {
		return err
	}

	byPatient := make([][]interface{}, len(data.AppointmentsByPatient))
	for i, row := range data.AppointmentsByPatient {
		byPatient[i] = []interface{}{row.PatientName, row.Count}
	}
	if err := writeSheet(f, "By Patient", []interface{}{"Patient", "Appointments"}, byPatient); err != nil {
		return err
	}

	bySpec := make([][]interface{}, len(data.AppointmentsBySpecialty))
	for i, row := range data.AppointmentsBySpecialty {
		bySpec[i] = []interface{}{row.Specialty, row.Count}
	}
	if err := writeSheet(f, "By Specialty", []interface{}{"Specialty", "Appointments"}, bySpec); err != nil {
		return err
	}

	byMonth := make([][]interface{}, len(data.AppointmentsByMonth))
	for i, row := range data.AppointmentsByMonth {
		byMonth[i] = []interface{}{row.Month, row.Count}
	}
	return writeSheet(f, "By Month", []interface{}{"Month", "Appointments"}, byMonth)
}

func writeFinancial(f *excelize.File, data *report.FinancialReport) error {
	summary := [][]interface{}{
		{"Total billed", data.TotalBilled},
		{"Total paid", data.TotalPaid},
		{"Outstanding", data.TotalOutstanding},
		{"Average treatment cost", data.AverageTreatmentCost},
		{"Collection rate (%)", data.CollectionRate},
	}
	if err := writeSheet(f, "Summary", []interface{}{"Metric", "Value"}, summary); err != nil {
		return err
	}

	bySpec := make([][]interface{}, len(data.RevenueBySpecialty))
	for i, row := range data.RevenueBySpecialty {
		bySpec[i] = []interface{}{row.Specialty, row.Revenue}
	}
	if err := writeSheet(f, "Revenue By Specialty", []interface{}{"Specialty", "Revenue"}, bySpec); err != nil {
		return err
	}

	byMonth := make([][]interface{}, len(data.MonthlyRevenue))
	for i, row := range data.MonthlyRevenue {
		byMonth[i] = []interface{}{row.Month, row.Revenue}
	}
	return writeSheet(f, "Monthly Revenue", []interface{}{"Month", "Revenue"}, byMonth)
}

func writeSatisfaction(f *excelize.File, data *report.SatisfactionReport) error {
	summary := [][]interface{}{
		{"Average rating", ratingCell(data.AverageRating)},
	}
	if err := writeSheet(f, "Summary", []interface{}{"Metric", "Value"}, summary); err != nil {
		return err
	}

	dist := make([][]interface{}, len(data.RatingDistribution))
	for i, row := range data.RatingDistribution {
		dist[i] = []interface{}{row.Rating, row.Count}
	}
	if err := writeSheet(f, "Distribution", []interface{}{"Rating", "Count"}, dist); err != nil {
		return err
	}

	highlights := make([][]interface{}, len(data.FeedbackHighlights))
	for i, row := range data.FeedbackHighlights {
		highlights[i] = []interface{}{row.PatientName, row.Rating, row.Feedback, row.Date.Format(dateFormat)}
	}
	if err := writeSheet(f, "Highlights", []interface{}{"Patient", "Rating", "Feedback", "Date"}, highlights); err != nil {
		return err
	}

	bySpec := make([][]interface{}, len(data.SatisfactionBySpecialty))
	for i, row := range data.SatisfactionBySpecialty {
		bySpec[i] = []interface{}{row.Specialty, row.AverageRating, row.Count}
	}
	if err := writeSheet(f, "By Specialty", []interface{}{"Specialty", "Average", "Ratings"}, bySpec); err != nil {
		return err
	}

	byDoctor := make([][]interface{}, len(data.SatisfactionByDoctor))
	for i, row := range data.SatisfactionByDoctor {
		byDoctor[i] = []interface{}{row.DoctorName, row.AverageRating, row.Count}
	}
	return writeSheet(f, "By Doctor", []interface{}{"Doctor", "Average", "Ratings"}, byDoctor)
}

func writePatientSummary(f *excelize.File, data *report.PatientSummaryReport) error {
	summary := [][]interface{}{
		{"Patient", data.Patient.Name},
		{"Total appointments", data.TotalAppointments},
		{"Completed", data.CompletedAppointments},
		{"Canceled", data.CanceledAppointments},
		{"Total billed", data.TotalBilled},
		{"Total paid", data.TotalPaid},
		{"Outstanding", data.TotalOutstanding},
		{"Average satisfaction", ratingCell(data.AverageSatisfactionRating)},
	}
	if err := writeSheet(f, "Summary", []interface{}{"Metric", "Value"}, summary); err != nil {
		return err
	}

	apps := make([][]interface{}, len(data.AppointmentsDetails))
	for i, row := range data.AppointmentsDetails {
		apps[i] = []interface{}{row.Date.Format(dateFormat), row.DoctorName, row.Reason, row.Status}
	}
	if err := writeSheet(f, "Appointments", []interface{}{"Date", "Doctor", "Reason", "Status"}, apps); err != nil {
		return err
	}

	logs := make([][]interface{}, len(data.TreatmentLogsDetails))
	for i, entry := range data.TreatmentLogsDetails {
		paid := "no"
		if entry.Paid {
			paid = "yes"
		}
		rating := interface{}("")
		if entry.SatisfactionRating != nil {
			rating = *entry.SatisfactionRating
		}
		logs[i] = []interface{}{entry.Date.Format(dateFormat), entry.Treatment, entry.Outcome, entry.Cost, paid, rating}
	}
	return writeSheet(f, "Treatment History", []interface{}{"Date", "Treatment", "Outcome", "Cost", "Paid", "Rating"}, logs)
}

func writeDoctorSummary(f *excelize.File, data *report.DoctorSummaryReport) error {
	summary := [][]interface{}{
		{"Doctor", data.Doctor.Name},
		{"Specialty", data.Doctor.Specialty},
		{"Total appointments", data.TotalAppointments},
		{"Scheduled", data.ScheduledAppointments},
		{"Completed", data.CompletedAppointments},
		{"Canceled", data.CanceledAppointments},
		{"Average satisfaction", ratingCell(data.AverageSatisfactionRating)},
	}
	if err := writeSheet(f, "Summary", []interface{}{"Metric", "Value"}, summary); err != nil {
		return err
	}

	apps := data.RecentAppointments
	sheet := "Recent Appointments"
	if len(data.AllAppointments) > 0 {
		apps = data.AllAppointments
		sheet = "Appointments"
	}
	rows := make([][]interface{}, len(apps))
	for i, row := range apps {
		rows[i] = []interface{}{row.Date.Format(dateFormat), row.PatientName, row.Reason, row.Status}
	}
	if err := writeSheet(f, sheet, []interface{}{"Date", "Patient", "Reason", "Status"}, rows); err != nil {
		return err
	}

	treated := make([][]interface{}, len(data.TreatedPatients))
	for i, row := range data.TreatedPatients {
		treated[i] = []interface{}{row.Name, row.Count}
	}
	return writeSheet(f, "Treated Patients", []interface{}{"Patient", "Visits"}, treated)
}
