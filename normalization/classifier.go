package normalization

import "strings"

// Sort-priority classes, in facility clearance order: domestic first, then
// permanent residents, then the two named foreign-worker source countries,
// then everyone else.
const (
	ClassSingapore = 1
	ClassResident  = 2
	ClassMalaysia  = 3
	ClassIndia     = 4
	ClassOther     = 5
)

// IsPermanentResident reports whether the residency value indicates
// permanent-resident status, case-insensitively.
func IsPermanentResident(residency string) bool {
	switch strings.ToLower(strings.TrimSpace(residency)) {
	case "yes", "y", "pr":
		return true
	}
	return false
}

// ClassifyRecord derives the ordinal sort class from nationality and
// residency. The precedence is fixed policy: the Singapore check comes
// before the residency check, so a citizen mis-marked as PR still lands in
// class 1; the residency check comes before the named-country checks.
func ClassifyRecord(nationality, residency string) int {
	nat := strings.ToLower(strings.TrimSpace(nationality))
	switch {
	case nat == "singapore":
		return ClassSingapore
	case IsPermanentResident(residency):
		return ClassResident
	case nat == "malaysia":
		return ClassMalaysia
	case nat == "india":
		return ClassIndia
	default:
		return ClassOther
	}
}
