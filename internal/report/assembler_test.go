package report

import (
	"errors"
	"testing"
)

func TestGenerate_TagMatchesRequest(t *testing.T) {
	snap := summarySnap()
	cases := []Request{
		windowReq(ReportDemographics, "2026-01-01", "2026-12-31"),
		windowReq(ReportAppointments, "2026-01-01", "2026-12-31"),
		windowReq(ReportFinancial, "2026-01-01", "2026-12-31"),
		windowReq(ReportSatisfaction, "2026-01-01", "2026-12-31"),
		{Type: ReportPatientSummary, PatientID: "p1"},
		{Type: ReportDoctorSummary, DoctorID: "d1"},
	}
	for _, req := range cases {
		rep := mustGenerate(t, snap, req)
		if rep.Type != req.Type {
			t.Errorf("payload tagged %s for a %s request", rep.Type, req.Type)
		}
		if rep.Data == nil {
			t.Errorf("%s: nil data on success", req.Type)
		}
	}
}

func TestGenerate_MissingPatientSelection(t *testing.T) {
	rep, err := generateAt(summarySnap(), Request{Type: ReportPatientSummary}, testNow)
	if err == nil {
		t.Fatal("expected validation failure without a patient selection")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("error type = %T, want *ValidationError", err)
	}
	if rep != nil {
		t.Error("no payload may accompany a validation failure")
	}
}

func TestGenerate_UnresolvedDoctorID(t *testing.T) {
	_, err := generateAt(summarySnap(), Request{Type: ReportDoctorSummary, DoctorID: "ghost"}, testNow)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError for unknown doctor, got %v", err)
	}
}

func TestGenerate_UnknownType(t *testing.T) {
	_, err := generateAt(Snapshot{}, Request{Type: ReportType("bogus")}, testNow)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError for unknown type, got %v", err)
	}
}

func TestGenerate_RepeatedInvalidRequestSameError(t *testing.T) {
	req := Request{Type: ReportPatientSummary}
	_, err1 := generateAt(summarySnap(), req, testNow)
	_, err2 := generateAt(summarySnap(), req, testNow)
	if err1 == nil || err2 == nil || err1.Error() != err2.Error() {
		t.Errorf("invalid request not idempotent: %v vs %v", err1, err2)
	}
}

func TestGenerate_WindowedTypesRequireDates(t *testing.T) {
	for _, rt := range []ReportType{ReportDemographics, ReportAppointments, ReportFinancial, ReportSatisfaction} {
		if _, err := generateAt(Snapshot{}, Request{Type: rt}, testNow); err == nil {
			t.Errorf("%s: expected validation error without a window", rt)
		}
	}
}
