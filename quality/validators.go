// Package quality flags cross-field inconsistencies in a cleaned visitor
// batch. Validation never mutates records and never rejects rows: every
// finding is an annotation the renderer turns into a cell highlight.
package quality

import (
	"claritygate/normalization"
)

// ReasonCode names the business rule behind an issue.
type ReasonCode string

const (
	ReasonCitizenMarkedPR       ReasonCode = "citizen_marked_pr"
	ReasonPRWithoutNRIC         ReasonCode = "pr_without_nric"
	ReasonFINForCitizenOrPR     ReasonCode = "fin_for_citizen_or_pr"
	ReasonNRICForForeigner      ReasonCode = "nric_for_foreigner"
	ReasonWorkPassMissingExpiry ReasonCode = "work_pass_missing_expiry"
	ReasonDuplicateFullName     ReasonCode = "duplicate_full_name"
)

// Issue is one finding against one record. A record may carry several.
type Issue struct {
	RecordIndex int
	Fields      []normalization.Field
	Reason      ReasonCode
}

// workPassTypes are the identification codes that require an expiry date.
var workPassTypes = map[string]bool{
	"FIN": true,
	"WP":  true,
}

// Validate evaluates the cross-field rules on every record and returns the
// flagged findings in record order. All rules read normalized values only.
func Validate(batch *normalization.Batch) []Issue {
	var issues []Issue
	for i := range batch.Records {
		issues = append(issues, validateRecord(i, &batch.Records[i])...)
	}
	return issues
}

func validateRecord(index int, rec *normalization.VisitorRecord) []Issue {
	var issues []Issue

	citizen := rec.Nationality == "Singapore"
	pr := normalization.IsPermanentResident(rec.Residency)

	// Citizens should not also be flagged PR.
	if citizen && rec.Residency == "PR" {
		issues = append(issues, Issue{
			RecordIndex: index,
			Fields:      []normalization.Field{normalization.FieldNationality, normalization.FieldResidency},
			Reason:      ReasonCitizenMarkedPR,
		})
	}

	// PR holders should present NRIC-type identification.
	if rec.IDType != "NRIC" && rec.Residency == "PR" {
		issues = append(issues, Issue{
			RecordIndex: index,
			Fields:      []normalization.Field{normalization.FieldIDType, normalization.FieldResidency},
			Reason:      ReasonPRWithoutNRIC,
		})
	}

	// FIN is for neither citizens nor PRs; NRIC implies citizen or PR.
	// The two rules are disjoint by construction on the idType value.
	if rec.IDType == "FIN" && (citizen || pr) {
		issues = append(issues, Issue{
			RecordIndex: index,
			Fields:      []normalization.Field{normalization.FieldIDType, normalization.FieldNationality, normalization.FieldResidency},
			Reason:      ReasonFINForCitizenOrPR,
		})
	}
	if rec.IDType == "NRIC" && !(citizen || pr) {
		issues = append(issues, Issue{
			RecordIndex: index,
			Fields:      []normalization.Field{normalization.FieldIDType, normalization.FieldNationality, normalization.FieldResidency},
			Reason:      ReasonNRICForForeigner,
		})
	}

	// Work-pass holders must carry an expiry date.
	if workPassTypes[rec.IDType] && rec.WorkPermitExpiry == "" {
		issues = append(issues, Issue{
			RecordIndex: index,
			Fields:      []normalization.Field{normalization.FieldIDType, normalization.FieldWorkPermitExpiry},
			Reason:      ReasonWorkPassMissingExpiry,
		})
	}

	return issues
}

// ValidateAll runs the rule table plus the duplicate-name detector and
// returns the combined findings.
func ValidateAll(batch *normalization.Batch) []Issue {
	issues := Validate(batch)
	issues = append(issues, DetectDuplicateNames(batch)...)
	return issues
}
