package handlers

import (
	"net/http"

	"clinic-backend/internal/config"
	"clinic-backend/internal/models"
	"clinic-backend/internal/report"
	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CreateDoctor adds a doctor and assigns the next display color from the
// fixed palette based on how many doctors already exist.
func CreateDoctor(c *gin.Context) {
	var input models.CreateDoctorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid doctor input", err.Error())
		return
	}

	var existing int64
	config.DB.Model(&models.Doctor{}).Count(&existing)

	doctor := models.Doctor{
		Name:      input.Name,
		Specialty: input.Specialty,
		Phone:     input.Phone,
		Email:     input.Email,
		Color:     report.PaletteColor(int(existing)),
	}

	if err := config.DB.Create(&doctor).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to save doctor", nil)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Doctor created", doctor)
}

func GetDoctors(c *gin.Context) {
	specialty := c.Query("specialty")

	var doctors []models.Doctor
	query := config.DB.Order("created_at asc")
	if specialty != "" {
		query = query.Where("specialty = ?", specialty)
	}
	query.Find(&doctors)

	utils.APIResponse(c, http.StatusOK, true, "Doctors", doctors)
}

func GetDoctor(c *gin.Context) {
	id := c.Param("id")

	var doctor models.Doctor
	if err := config.DB.First(&doctor, "id = ?", id).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Doctor not found", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Doctor detail", doctor)
}

func UpdateDoctor(c *gin.Context) {
	id := c.Param("id")

	var doctor models.Doctor
	if err := config.DB.First(&doctor, "id = ?", id).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Doctor not found", nil)
		return
	}

	var input models.CreateDoctorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid doctor input", err.Error())
		return
	}

	doctor.Name = input.Name
	doctor.Specialty = input.Specialty
	doctor.Phone = input.Phone
	doctor.Email = input.Email

	if err := config.DB.Save(&doctor).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to update doctor", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Doctor updated", doctor)
}

// DeleteDoctor removes the doctor. Appointments keep their doctor_id;
// reports show those under a fallback label.
func DeleteDoctor(c *gin.Context) {
	id := c.Param("id")

	var doctor models.Doctor
	if err := config.DB.First(&doctor, "id = ?", id).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Doctor not found", nil)
		return
	}

	if err := config.DB.Delete(&doctor).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to delete doctor", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Doctor deleted", nil)
}
