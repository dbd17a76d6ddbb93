// Package report is the clinic's reporting/aggregation engine. It turns an
// immutable snapshot of the patient, doctor, and appointment collections into
// one of six statistical report payloads. The engine never mutates records,
// never touches the database, and computes everything synchronously per
// request.
package report

import (
	"time"

	"clinic-backend/internal/models"
)

// ReportType tags a report request and its resulting payload.
type ReportType string

const (
	ReportDemographics   ReportType = "demographics"
	ReportAppointments   ReportType = "appointments"
	ReportFinancial      ReportType = "financial"
	ReportSatisfaction   ReportType = "satisfaction"
	ReportPatientSummary ReportType = "patient-summary"
	ReportDoctorSummary  ReportType = "doctor-summary"
)

// Windowed reports whether the report type filters by date range (as opposed
// to selecting a single entity).
func (t ReportType) Windowed() bool {
	switch t {
	case ReportDemographics, ReportAppointments, ReportFinancial, ReportSatisfaction:
		return true
	}
	return false
}

// Request describes one report to generate. StartDate/EndDate (YYYY-MM-DD,
// inclusive) apply to windowed types; PatientID/DoctorID to the summary types.
type Request struct {
	Type      ReportType `json:"type"`
	StartDate string     `json:"start_date,omitempty"`
	EndDate   string     `json:"end_date,omitempty"`
	PatientID string     `json:"patient_id,omitempty"`
	DoctorID  string     `json:"doctor_id,omitempty"`
	// IncludeAllAppointments adds the full appointment list to a
	// doctor-summary on top of the recent five.
	IncludeAllAppointments bool `json:"include_all_appointments,omitempty"`
}

// Snapshot is the read-only input of the engine. Patients must carry their
// embedded treatment history.
type Snapshot struct {
	Patients     []models.Patient
	Doctors      []models.Doctor
	Appointments []models.Appointment
}

// Generated is the tagged result payload: Data's concrete type is determined
// by Type.
type Generated struct {
	Type ReportType  `json:"type"`
	Data interface{} `json:"data"`
}

// Labeled series rows, shaped for direct chart consumption.

type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type MonthCount struct {
	Month string `json:"month"` // YYYY-MM
	Count int    `json:"count"`
}

type SpecialtyCount struct {
	Specialty string `json:"specialty"`
	Count     int    `json:"count"`
}

type DemographicsReport struct {
	TotalPatients        int              `json:"total_patients"`
	MalePatients         int              `json:"male_patients"`
	FemalePatients       int              `json:"female_patients"`
	AgeDistribution      []LabelCount     `json:"age_distribution"`
	PatientsBySpecialty  []SpecialtyCount `json:"patients_by_specialty"`
	BMIDistribution      []LabelCount     `json:"bmi_distribution"`
	PatientGrowthByMonth []MonthCount     `json:"patient_growth_by_month"`
}

type DoctorCount struct {
	DoctorName string `json:"doctor_name"`
	Count      int    `json:"count"`
	Color      string `json:"color"`
}

type PatientCount struct {
	PatientName string `json:"patient_name"`
	Count       int    `json:"count"`
}

type SpecialtyColorCount struct {
	Specialty string `json:"specialty"`
	Count     int    `json:"count"`
	Color     string `json:"color"`
}

type AppointmentReport struct {
	TotalAppointments       int                   `json:"total_appointments"`
	Scheduled               int                   `json:"scheduled"`
	Completed               int                   `json:"completed"`
	Canceled                int                   `json:"canceled"`
	AppointmentsByDoctor    []DoctorCount         `json:"appointments_by_doctor"`
	AppointmentsByPatient   []PatientCount        `json:"appointments_by_patient"`
	AppointmentsByMonth     []MonthCount          `json:"appointments_by_month"`
	AppointmentsBySpecialty []SpecialtyColorCount `json:"appointments_by_specialty"`
}

type SpecialtyRevenue struct {
	Specialty string  `json:"specialty"`
	Revenue   float64 `json:"revenue"`
}

type MonthRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

type FinancialReport struct {
	TotalBilled          float64            `json:"total_billed"`
	TotalPaid            float64            `json:"total_paid"`
	TotalOutstanding     float64            `json:"total_outstanding"`
	RevenueBySpecialty   []SpecialtyRevenue `json:"revenue_by_specialty"`
	MonthlyRevenue       []MonthRevenue     `json:"monthly_revenue"`
	AverageTreatmentCost float64            `json:"average_treatment_cost"`
	CollectionRate       float64            `json:"collection_rate"`
}

type RatingCount struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

type FeedbackHighlight struct {
	PatientName string    `json:"patient_name"`
	Feedback    string    `json:"feedback"`
	Rating      int       `json:"rating"`
	Date        time.Time `json:"date"`
}

type SpecialtyRating struct {
	Specialty     string  `json:"specialty"`
	AverageRating float64 `json:"average_rating"`
	Count         int     `json:"count"`
}

type DoctorRating struct {
	DoctorName    string  `json:"doctor_name"`
	AverageRating float64 `json:"average_rating"`
	Count         int     `json:"count"`
	Color         string  `json:"color"`
}

type SatisfactionReport struct {
	// AverageRating is nil when no rated logs fall in the window: "no data",
	// not a computed zero.
	AverageRating           *float64            `json:"average_rating"`
	RatingDistribution      []RatingCount       `json:"rating_distribution"`
	FeedbackHighlights      []FeedbackHighlight `json:"feedback_highlights"`
	SatisfactionBySpecialty []SpecialtyRating   `json:"satisfaction_by_specialty"`
	SatisfactionByDoctor    []DoctorRating      `json:"satisfaction_by_doctor"`
}

type PatientAppointmentDetail struct {
	Date        time.Time `json:"date"`
	DoctorName  string    `json:"doctor_name"`
	Reason      string    `json:"reason"`
	Status      string    `json:"status"`
	DoctorColor string    `json:"doctor_color"`
}

type PatientSummaryReport struct {
	Patient                   models.Patient             `json:"patient"`
	TotalAppointments         int                        `json:"total_appointments"`
	CompletedAppointments     int                        `json:"completed_appointments"`
	CanceledAppointments      int                        `json:"canceled_appointments"`
	TotalBilled               float64                    `json:"total_billed"`
	TotalPaid                 float64                    `json:"total_paid"`
	TotalOutstanding          float64                    `json:"total_outstanding"`
	AverageSatisfactionRating *float64                   `json:"average_satisfaction_rating"`
	AppointmentsDetails       []PatientAppointmentDetail `json:"appointments_details"`
	TreatmentLogsDetails      []models.TreatmentLog      `json:"treatment_logs_details"`
}

type DoctorAppointmentDetail struct {
	Date        time.Time `json:"date"`
	PatientName string    `json:"patient_name"`
	Reason      string    `json:"reason"`
	Status      string    `json:"status"`
	PatientID   string    `json:"patient_id"`
}

type TreatedPatient struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type DoctorSummaryReport struct {
	Doctor                    models.Doctor             `json:"doctor"`
	TotalAppointments         int                       `json:"total_appointments"`
	ScheduledAppointments     int                       `json:"scheduled_appointments"`
	CompletedAppointments     int                       `json:"completed_appointments"`
	CanceledAppointments      int                       `json:"canceled_appointments"`
	AverageSatisfactionRating *float64                  `json:"average_satisfaction_rating"`
	RecentAppointments        []DoctorAppointmentDetail `json:"recent_appointments"`
	// AllAppointments is populated only when the request asks for the full
	// list; RecentAppointments always holds the latest five.
	AllAppointments []DoctorAppointmentDetail `json:"all_appointments,omitempty"`
	TreatedPatients []TreatedPatient          `json:"treated_patients"`
}
