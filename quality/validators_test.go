package quality

import (
	"testing"

	"claritygate/normalization"
)

func batchOf(records ...normalization.VisitorRecord) *normalization.Batch {
	return &normalization.Batch{Records: records}
}

func reasonsFor(issues []Issue, index int) map[ReasonCode]bool {
	reasons := make(map[ReasonCode]bool)
	for _, issue := range issues {
		if issue.RecordIndex == index {
			reasons[issue.Reason] = true
		}
	}
	return reasons
}

func TestValidateCitizenMarkedPR(t *testing.T) {
	issues := Validate(batchOf(normalization.VisitorRecord{
		Nationality: "Singapore", Residency: "PR", IDType: "NRIC",
	}))

	reasons := reasonsFor(issues, 0)
	if !reasons[ReasonCitizenMarkedPR] {
		t.Error("expected citizen_marked_pr flag")
	}
}

func TestValidatePRWithoutNRIC(t *testing.T) {
	issues := Validate(batchOf(normalization.VisitorRecord{
		Nationality: "China", Residency: "PR", IDType: "PASSPORT",
	}))

	if !reasonsFor(issues, 0)[ReasonPRWithoutNRIC] {
		t.Error("expected pr_without_nric flag")
	}
}

func TestValidateFINForCitizenOrPR(t *testing.T) {
	issues := Validate(batchOf(normalization.VisitorRecord{
		Nationality: "Singapore", Residency: "", IDType: "FIN", WorkPermitExpiry: "2025-11-30",
	}))

	if !reasonsFor(issues, 0)[ReasonFINForCitizenOrPR] {
		t.Error("expected fin_for_citizen_or_pr flag")
	}
}

func TestValidateNRICForForeigner(t *testing.T) {
	issues := Validate(batchOf(normalization.VisitorRecord{
		Nationality: "Malaysia", Residency: "", IDType: "NRIC",
	}))

	if !reasonsFor(issues, 0)[ReasonNRICForForeigner] {
		t.Error("expected nric_for_foreigner flag")
	}
}

func TestValidateWorkPassMissingExpiry(t *testing.T) {
	for _, idType := range []string{"FIN", "WP"} {
		issues := Validate(batchOf(normalization.VisitorRecord{
			Nationality: "Malaysia", Residency: "", IDType: idType, WorkPermitExpiry: "",
		}))
		if !reasonsFor(issues, 0)[ReasonWorkPassMissingExpiry] {
			t.Errorf("expected work_pass_missing_expiry flag for %s", idType)
		}
	}

	issues := Validate(batchOf(normalization.VisitorRecord{
		Nationality: "Malaysia", Residency: "", IDType: "FIN", WorkPermitExpiry: "2025-11-30",
	}))
	if reasonsFor(issues, 0)[ReasonWorkPassMissingExpiry] {
		t.Error("unexpected work_pass_missing_expiry flag when expiry present")
	}
}

func TestValidateCleanRowHasNoIssues(t *testing.T) {
	issues := Validate(batchOf(normalization.VisitorRecord{
		Nationality: "Singapore", Residency: "", IDType: "NRIC", WorkPermitExpiry: "",
	}))
	if len(issues) != 0 {
		t.Errorf("clean citizen row flagged: %+v", issues)
	}

	issues = Validate(batchOf(normalization.VisitorRecord{
		Nationality: "Malaysia", Residency: "", IDType: "FIN", WorkPermitExpiry: "2025-11-30",
	}))
	if len(issues) != 0 {
		t.Errorf("clean work-pass row flagged: %+v", issues)
	}
}

// No record can trigger both the FIN rule and the NRIC rule: they are
// disjoint on the idType value.
func TestFINAndNRICRulesMutuallyExclusive(t *testing.T) {
	nationalities := []string{"Singapore", "Malaysia", "India", "China", ""}
	residencies := []string{"", "PR", "N"}
	idTypes := []string{"NRIC", "FIN", "WP", "PASSPORT"}

	for _, nat := range nationalities {
		for _, res := range residencies {
			for _, id := range idTypes {
				issues := Validate(batchOf(normalization.VisitorRecord{
					Nationality: nat, Residency: res, IDType: id,
				}))
				reasons := reasonsFor(issues, 0)
				if reasons[ReasonFINForCitizenOrPR] && reasons[ReasonNRICForForeigner] {
					t.Errorf("row (%q, %q, %q) flagged by both FIN and NRIC rules", nat, res, id)
				}
			}
		}
	}
}

func TestValidateFieldSets(t *testing.T) {
	issues := Validate(batchOf(normalization.VisitorRecord{
		Nationality: "Malaysia", Residency: "", IDType: "WP", WorkPermitExpiry: "",
	}))
	if len(issues) != 1 {
		t.Fatalf("issues = %d, want 1", len(issues))
	}

	want := []normalization.Field{normalization.FieldIDType, normalization.FieldWorkPermitExpiry}
	got := issues[0].Fields
	if len(got) != len(want) {
		t.Fatalf("fields = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("field %d = %s, want %s", i, got[i], want[i])
		}
	}
}
