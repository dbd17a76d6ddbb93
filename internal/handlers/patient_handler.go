package handlers

import (
	"net/http"
	"strconv"

	"clinic-backend/internal/config"
	"clinic-backend/internal/models"
	"clinic-backend/internal/report"
	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const defaultPageSize = 20

func pageParams(c *gin.Context) (page, size int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}
	return page, size
}

func CreatePatient(c *gin.Context) {
	var input models.CreatePatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid patient input", err.Error())
		return
	}

	patient := models.Patient{
		Name:           input.Name,
		Complaint:      input.Complaint,
		DOB:            input.DOB,
		Gender:         input.Gender,
		Phone:          input.Phone,
		Email:          input.Email,
		Address:        input.Address,
		Height:         input.Height,
		Weight:         input.Weight,
		MedicalHistory: input.MedicalHistory,
		Notes:          input.Notes,
		PrimaryCare:    input.PrimaryCare,
	}

	if err := config.DB.Create(&patient).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to save patient", nil)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Patient created", patient)
}

// GetPatients lists patients, optionally filtered by a name search, in pages.
func GetPatients(c *gin.Context) {
	search := c.Query("search")

	var patients []models.Patient
	query := config.DB.Order("created_at desc")
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	query.Find(&patients)

	page, size := pageParams(c)
	utils.APIResponse(c, http.StatusOK, true, "Patients", utils.Paged{
		Items:      report.Paginate(patients, page, size),
		Page:       page,
		PageSize:   size,
		TotalItems: len(patients),
		TotalPages: report.PageCount(len(patients), size),
	})
}

// GetPatient returns one patient with the full treatment history attached.
func GetPatient(c *gin.Context) {
	id := c.Param("id")

	var patient models.Patient
	err := config.DB.
		Preload("TreatmentHistory", func(db *gorm.DB) *gorm.DB { return db.Order("date asc") }).
		First(&patient, "id = ?", id).Error
	if err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Patient not found", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Patient detail", patient)
}

func UpdatePatient(c *gin.Context) {
	id := c.Param("id")

	var patient models.Patient
	if err := config.DB.First(&patient, "id = ?", id).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Patient not found", nil)
		return
	}

	var input models.CreatePatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid patient input", err.Error())
		return
	}

	patient.Name = input.Name
	patient.Complaint = input.Complaint
	patient.DOB = input.DOB
	patient.Gender = input.Gender
	patient.Phone = input.Phone
	patient.Email = input.Email
	patient.Address = input.Address
	patient.Height = input.Height
	patient.Weight = input.Weight
	patient.MedicalHistory = input.MedicalHistory
	patient.Notes = input.Notes
	patient.PrimaryCare = input.PrimaryCare

	if err := config.DB.Save(&patient).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to update patient", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Patient updated", patient)
}

// DeletePatient removes the record and its treatment history. Appointments
// keep their patient_id; reports show those under a fallback label.
func DeletePatient(c *gin.Context) {
	id := c.Param("id")

	var patient models.Patient
	if err := config.DB.First(&patient, "id = ?", id).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Patient not found", nil)
		return
	}

	config.DB.Where("patient_id = ?", id).Delete(&models.TreatmentLog{})
	if err := config.DB.Delete(&patient).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to delete patient", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Patient deleted", nil)
}
