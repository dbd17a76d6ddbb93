package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"clinic-backend/internal/config"
	"clinic-backend/internal/export"
	"clinic-backend/internal/report"
	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// loadSnapshot pulls the full clinic dataset the reporting engine works on.
// Treatment history rides along on each patient.
func loadSnapshot() report.Snapshot {
	var snap report.Snapshot
	config.DB.Preload("TreatmentHistory").Find(&snap.Patients)
	config.DB.Find(&snap.Doctors)
	config.DB.Find(&snap.Appointments)
	return snap
}

func reportRequest(c *gin.Context) report.Request {
	req := report.Request{
		Type:      report.ReportType(c.Query("type")),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		PatientID: c.Query("patient_id"),
		DoctorID:  c.Query("doctor_id"),
	}
	req.IncludeAllAppointments = c.Query("include_all") == "true"

	// Windowed reports default to the trailing 30 days.
	if req.Type.Windowed() && req.StartDate == "" && req.EndDate == "" {
		now := time.Now()
		req.EndDate = now.Format("2006-01-02")
		req.StartDate = now.AddDate(0, 0, -30).Format("2006-01-02")
	}
	return req
}

// GetReport generates a report over the current clinic data.
func GetReport(c *gin.Context) {
	req := reportRequest(c)

	generated, err := report.Generate(loadSnapshot(), req)
	if err != nil {
		var verr *report.ValidationError
		if errors.As(err, &verr) {
			utils.APIResponse(c, http.StatusBadRequest, false, verr.Message, nil)
			return
		}
		log.WithError(err).Error("report generation failed")
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to generate report", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Report generated", generated)
}

// ExportReport generates a report and streams it as an Excel workbook.
func ExportReport(c *gin.Context) {
	req := reportRequest(c)

	generated, err := report.Generate(loadSnapshot(), req)
	if err != nil {
		var verr *report.ValidationError
		if errors.As(err, &verr) {
			utils.APIResponse(c, http.StatusBadRequest, false, verr.Message, nil)
			return
		}
		log.WithError(err).Error("report generation failed")
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to generate report", nil)
		return
	}

	book, err := export.Workbook(generated)
	if err != nil {
		log.WithError(err).Error("report export failed")
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to build workbook", nil)
		return
	}
	defer book.Close()

	filename := fmt.Sprintf("%s-report-%s.xlsx", generated.Type, time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := book.Write(c.Writer); err != nil {
		log.WithError(err).Error("failed to stream workbook")
	}
}
