package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment status values. Progression is monotonic: scheduled may become
// completed or canceled; nothing transitions out of completed or canceled.
const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCanceled  = "canceled"
)

type Appointment struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	PatientID string    `gorm:"size:36;index;not null" json:"patient_id"`
	DoctorID  string    `gorm:"size:36;index;not null" json:"doctor_id"`
	Date      time.Time `gorm:"index" json:"date"`
	Reason    string    `gorm:"type:text" json:"reason"`
	Status    string    `gorm:"size:20;default:scheduled" json:"status"`
	// ReminderSent is consumed by the reminder sweep only; the reporting
	// engine ignores it.
	ReminderSent bool      `gorm:"default:false" json:"reminder_sent"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// CanTransitionTo reports whether the status change respects the monotonic
// scheduled -> completed|canceled progression.
func (a *Appointment) CanTransitionTo(status string) bool {
	if a.Status != AppointmentScheduled {
		return false
	}
	return status == AppointmentCompleted || status == AppointmentCanceled
}

type CreateAppointmentInput struct {
	PatientID string    `json:"patient_id" binding:"required"`
	DoctorID  string    `json:"doctor_id" binding:"required"`
	Date      time.Time `json:"date" binding:"required"` // Format: 2025-11-20T08:00:00Z
	Reason    string    `json:"reason"`
}

type UpdateAppointmentStatusInput struct {
	Status string `json:"status" binding:"required,oneof=completed canceled"`
}
