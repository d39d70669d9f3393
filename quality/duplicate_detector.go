package quality

import (
	"claritygate/normalization"
)

// DetectDuplicateNames scans the full ordered batch for records sharing an
// identical normalized full name. Every member of a duplicate group is
// flagged, the first occurrence included, so operators see the whole pair
// (or triple) rather than just the repeats. Findings come back in record
// order.
func DetectDuplicateNames(batch *normalization.Batch) []Issue {
	groups := make(map[string][]int)
	for i, rec := range batch.Records {
		if rec.FullName == "" {
			continue
		}
		groups[rec.FullName] = append(groups[rec.FullName], i)
	}

	var issues []Issue
	for i, rec := range batch.Records {
		if rec.FullName == "" || len(groups[rec.FullName]) < 2 {
			continue
		}
		issues = append(issues, Issue{
			RecordIndex: i,
			Fields:      []normalization.Field{normalization.FieldFullName},
			Reason:      ReasonDuplicateFullName,
		})
	}
	return issues
}
