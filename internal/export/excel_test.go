package export

import (
	"testing"

	"clinic-backend/internal/report"
)

func TestWorkbook_Demographics(t *testing.T) {
	gen := &report.Generated{
		Type: report.ReportDemographics,
		Data: &report.DemographicsReport{
			TotalPatients:  2,
			MalePatients:   1,
			FemalePatients: 1,
			AgeDistribution: []report.LabelCount{
				{Label: "18-24", Count: 1},
				{Label: "25-34", Count: 1},
			},
		},
	}

	f, err := Workbook(gen)
	if err != nil {
		t.Fatalf("Workbook: %v", err)
	}
	defer f.Close()

	for _, sheet := range []string{"Summary", "Age Distribution", "BMI Distribution", "By Specialty", "Growth"} {
		if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
			t.Errorf("missing sheet %q", sheet)
		}
	}

	got, err := f.GetCellValue("Summary", "B2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if got != "2" {
		t.Errorf("total patients cell = %q, want 2", got)
	}
}

func TestWorkbook_SatisfactionNoData(t *testing.T) {
	gen := &report.Generated{
		Type: report.ReportSatisfaction,
		Data: &report.SatisfactionReport{},
	}

	f, err := Workbook(gen)
	if err != nil {
		t.Fatalf("Workbook: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Summary", "B2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if got != "no data" {
		t.Errorf("average rating cell = %q, want %q", got, "no data")
	}
}

func TestWorkbook_UnknownPayload(t *testing.T) {
	gen := &report.Generated{Type: report.ReportType("bogus"), Data: struct{}{}}
	if _, err := Workbook(gen); err == nil {
		t.Fatal("expected error for unsupported payload")
	}
}
