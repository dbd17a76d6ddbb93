package handlers

import (
	"net/http"

	"clinic-backend/internal/config"
	"clinic-backend/internal/models"
	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AddTreatmentLog appends a dated entry to a patient's treatment history.
func AddTreatmentLog(c *gin.Context) {
	patientID := c.Param("id")

	var patient models.Patient
	if err := config.DB.First(&patient, "id = ?", patientID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Patient not found", nil)
		return
	}

	var input models.CreateTreatmentLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid treatment log input", err.Error())
		return
	}

	entry := models.TreatmentLog{
		PatientID:          patient.ID,
		Date:               input.Date,
		Treatment:          input.Treatment,
		Outcome:            input.Outcome,
		Cost:               input.Cost,
		Paid:               input.Paid,
		SatisfactionRating: input.SatisfactionRating,
		Feedback:           input.Feedback,
	}

	if err := config.DB.Create(&entry).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to save treatment log", nil)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Treatment log added", entry)
}

// MarkTreatmentPaid settles an outstanding treatment log manually, for
// payments taken at the front desk rather than through the gateway.
func MarkTreatmentPaid(c *gin.Context) {
	logID := c.Param("logId")

	var entry models.TreatmentLog
	if err := config.DB.First(&entry, "id = ?", logID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Treatment log not found", nil)
		return
	}

	if entry.Paid {
		utils.APIResponse(c, http.StatusBadRequest, false, "Treatment already paid", nil)
		return
	}

	if err := config.DB.Model(&entry).Update("paid", true).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to update treatment log", nil)
		return
	}
	entry.Paid = true

	utils.APIResponse(c, http.StatusOK, true, "Treatment marked as paid", entry)
}
