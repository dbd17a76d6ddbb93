package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Patient is a clinic record. Treatment history is embedded: a TreatmentLog
// belongs to exactly one patient and carries no link to the appointment or
// doctor that produced it.
type Patient struct {
	ID             string  `gorm:"primaryKey;size:36" json:"id"`
	Name           string  `gorm:"size:100;not null" json:"name"`
	Complaint      string  `gorm:"type:text" json:"complaint"`
	DOB            string  `gorm:"type:date" json:"dob"` // Format YYYY-MM-DD
	Gender         string  `gorm:"type:enum('male','female')" json:"gender"`
	Phone          string  `gorm:"size:20" json:"phone"`
	Email          string  `gorm:"size:100" json:"email"`
	Address        string  `gorm:"type:text" json:"address"`
	Height         float64 `json:"height"` // cm
	Weight         float64 `json:"weight"` // kg
	MedicalHistory string  `gorm:"type:text" json:"medical_history"`
	Notes          string  `gorm:"type:text" json:"notes"`
	// PrimaryCare is the patient's care category, same closed set as Doctor.Specialty.
	PrimaryCare string    `gorm:"size:30;not null" json:"primary_care"`
	CreatedAt   time.Time `json:"created_at"`

	TreatmentHistory []TreatmentLog `gorm:"foreignKey:PatientID" json:"treatment_history,omitempty"`
}

func (p *Patient) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// TreatmentLog is a dated clinical/financial event. Logs are appended and
// never reordered; Paid is the only field mutated after creation.
type TreatmentLog struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	PatientID string    `gorm:"size:36;index;not null" json:"patient_id"`
	Date      time.Time `json:"date"`
	Treatment string    `gorm:"size:255" json:"treatment"`
	Outcome   string    `gorm:"type:text" json:"outcome"`
	Cost      float64   `json:"cost"`
	Paid      bool      `gorm:"default:false" json:"paid"`
	// SatisfactionRating is an optional 1-5 rating; nil means the patient
	// left no rating, which is distinct from any numeric value.
	SatisfactionRating *int      `json:"satisfaction_rating,omitempty"`
	Feedback           string    `gorm:"type:text" json:"feedback,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

func (t *TreatmentLog) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

type CreatePatientInput struct {
	Name           string  `json:"name" binding:"required"`
	Complaint      string  `json:"complaint"`
	DOB            string  `json:"dob" binding:"required"`
	Gender         string  `json:"gender" binding:"required,oneof=male female"`
	Phone          string  `json:"phone"`
	Email          string  `json:"email" binding:"omitempty,email"`
	Address        string  `json:"address"`
	Height         float64 `json:"height" binding:"min=0"`
	Weight         float64 `json:"weight" binding:"min=0"`
	MedicalHistory string  `json:"medical_history"`
	Notes          string  `json:"notes"`
	PrimaryCare    string  `json:"primary_care" binding:"required,oneof=general physical_therapy nutrition"`
}

type CreateTreatmentLogInput struct {
	Date               time.Time `json:"date" binding:"required"`
	Treatment          string    `json:"treatment" binding:"required"`
	Outcome            string    `json:"outcome"`
	Cost               float64   `json:"cost" binding:"min=0"`
	Paid               bool      `json:"paid"`
	SatisfactionRating *int      `json:"satisfaction_rating" binding:"omitempty,min=1,max=5"`
	Feedback           string    `json:"feedback"`
}
