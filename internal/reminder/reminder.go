// Package reminder runs the background sweep that pushes upcoming
// appointment notifications to staff devices.
package reminder

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"clinic-backend/internal/config"
	"clinic-backend/internal/models"
	"clinic-backend/pkg/utils"

	"github.com/sirupsen/logrus"
)

const defaultLeadHours = 24

func leadWindow() time.Duration {
	if raw := os.Getenv("REMINDER_LEAD_HOURS"); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			return time.Duration(hours) * time.Hour
		}
	}
	return defaultLeadHours * time.Hour
}

// Start launches the reminder loop. It sweeps once a minute until the
// context is canceled.
func Start(ctx context.Context, log *logrus.Logger) {
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sweep(ctx, log)
			}
		}
	}()
}

// sweep finds scheduled appointments entering the lead window that have not
// been reminded yet, notifies staff, and marks them sent.
func sweep(ctx context.Context, log *logrus.Logger) {
	now := time.Now()
	horizon := now.Add(leadWindow())

	var due []models.Appointment
	config.DB.Preload("Patient").Preload("Doctor").
		Where("status = ? AND reminder_sent = ? AND date > ? AND date <= ?",
			models.AppointmentScheduled, false, now, horizon).
		Find(&due)

	if len(due) == 0 {
		return
	}

	var staff []models.User
	config.DB.Where("fcm_token <> ''").Find(&staff)

	for _, appointment := range due {
		patientName := "a patient"
		if appointment.Patient != nil {
			patientName = appointment.Patient.Name
		}
		doctorName := "the clinic"
		if appointment.Doctor != nil {
			doctorName = appointment.Doctor.Name
		}

		title := "Upcoming appointment"
		body := fmt.Sprintf("%s with %s at %s",
			patientName, doctorName, appointment.Date.Format("Mon 15:04"))

		for _, user := range staff {
			if err := utils.SendNotification(ctx, user.FCMToken, title, body, map[string]string{
				"appointment_id": appointment.ID,
				"type":           "appointment_reminder",
			}); err != nil {
				log.WithError(err).WithField("appointment_id", appointment.ID).
					Warn("failed to push reminder")
			}
		}

		if err := config.DB.Model(&appointment).Update("reminder_sent", true).Error; err != nil {
			log.WithError(err).WithField("appointment_id", appointment.ID).
				Error("failed to mark reminder sent")
			continue
		}

		log.WithFields(logrus.Fields{
			"appointment_id": appointment.ID,
			"date":           appointment.Date,
		}).Info("appointment reminder sent")
	}
}
