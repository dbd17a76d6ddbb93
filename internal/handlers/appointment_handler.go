package handlers

import (
	"net/http"
	"time"

	"clinic-backend/internal/config"
	"clinic-backend/internal/models"
	"clinic-backend/internal/report"
	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func CreateAppointment(c *gin.Context) {
	var input models.CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid appointment input", err.Error())
		return
	}

	var patient models.Patient
	if err := config.DB.First(&patient, "id = ?", input.PatientID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Patient not found", nil)
		return
	}
	var doctor models.Doctor
	if err := config.DB.First(&doctor, "id = ?", input.DoctorID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Doctor not found", nil)
		return
	}

	appointment := models.Appointment{
		PatientID: input.PatientID,
		DoctorID:  input.DoctorID,
		Date:      input.Date,
		Reason:    input.Reason,
		Status:    models.AppointmentScheduled,
	}

	if err := config.DB.Create(&appointment).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to save appointment", nil)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Appointment scheduled", appointment)
}

// GetAppointments lists appointments with optional filters: ?doctor_id=,
// ?patient_id=, ?status=, ?date=YYYY-MM-DD (single day).
func GetAppointments(c *gin.Context) {
	var appointments []models.Appointment
	query := config.DB.Preload("Patient").Preload("Doctor").Order("date asc")

	if doctorID := c.Query("doctor_id"); doctorID != "" {
		query = query.Where("doctor_id = ?", doctorID)
	}
	if patientID := c.Query("patient_id"); patientID != "" {
		query = query.Where("patient_id = ?", patientID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if dateStr := c.Query("date"); dateStr != "" {
		day, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			utils.APIResponse(c, http.StatusBadRequest, false, "Invalid date, expected YYYY-MM-DD", nil)
			return
		}
		query = query.Where("date >= ? AND date < ?", day, day.AddDate(0, 0, 1))
	}

	query.Find(&appointments)

	page, size := pageParams(c)
	utils.APIResponse(c, http.StatusOK, true, "Appointments", utils.Paged{
		Items:      report.Paginate(appointments, page, size),
		Page:       page,
		PageSize:   size,
		TotalItems: len(appointments),
		TotalPages: report.PageCount(len(appointments), size),
	})
}

// UpdateAppointmentStatus moves a scheduled appointment to completed or
// canceled. Completed and canceled are terminal.
func UpdateAppointmentStatus(c *gin.Context) {
	id := c.Param("id")

	var appointment models.Appointment
	if err := config.DB.First(&appointment, "id = ?", id).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Appointment not found", nil)
		return
	}

	var input models.UpdateAppointmentStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid status input", err.Error())
		return
	}

	if !appointment.CanTransitionTo(input.Status) {
		utils.APIResponse(c, http.StatusBadRequest, false, "Appointment is already "+appointment.Status, nil)
		return
	}

	appointment.Status = input.Status
	if err := config.DB.Save(&appointment).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to update appointment", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Appointment "+input.Status, appointment)
}

func DeleteAppointment(c *gin.Context) {
	id := c.Param("id")

	var appointment models.Appointment
	if err := config.DB.First(&appointment, "id = ?", id).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Appointment not found", nil)
		return
	}

	if err := config.DB.Delete(&appointment).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to delete appointment", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Appointment deleted", nil)
}
