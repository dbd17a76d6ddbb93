package handlers

import (
	"net/http"
	"time"

	"clinic-backend/internal/config"
	"clinic-backend/internal/models"
	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats powers the landing view: headline counts, today's
// schedule and the newest patient records.
func GetDashboardStats(c *gin.Context) {
	var totalPatients, totalDoctors, totalAppointments int64
	config.DB.Model(&models.Patient{}).Count(&totalPatients)
	config.DB.Model(&models.Doctor{}).Count(&totalDoctors)
	config.DB.Model(&models.Appointment{}).Count(&totalAppointments)

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var todaysAppointments []models.Appointment
	config.DB.Preload("Patient").Preload("Doctor").
		Where("date >= ? AND date < ?", dayStart, dayEnd).
		Order("date asc").
		Find(&todaysAppointments)

	type sumResult struct {
		Total float64
	}
	var revenueToday, outstanding sumResult
	config.DB.Table("treatment_logs").
		Where("paid = ? AND date >= ? AND date < ?", true, dayStart, dayEnd).
		Select("COALESCE(SUM(cost), 0) as total").
		Scan(&revenueToday)
	config.DB.Table("treatment_logs").
		Where("paid = ?", false).
		Select("COALESCE(SUM(cost), 0) as total").
		Scan(&outstanding)

	var recentPatients []models.Patient
	config.DB.Order("created_at desc").Limit(5).Find(&recentPatients)

	utils.APIResponse(c, http.StatusOK, true, "Dashboard", gin.H{
		"total_patients":      totalPatients,
		"total_doctors":       totalDoctors,
		"total_appointments":  totalAppointments,
		"todays_appointments": todaysAppointments,
		"revenue_today":       revenueToday.Total,
		"outstanding_balance": outstanding.Total,
		"recent_patients":     recentPatients,
	})
}
