package normalization

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Pre-compiled expressions for the per-column transforms.
var (
	pteLtdRe         = regexp.MustCompile(`(?i)\bPTE\s+LTD\b`)
	plateSeparatorRe = regexp.MustCompile(`[/,]`)
	plateSpacingRe   = regexp.MustCompile(`\s*;\s*`)
	whitespaceRe     = regexp.MustCompile(`\s+`)
	nonDigitRe       = regexp.MustCompile(`\D`)
)

// nationalitySynonyms collapses demonyms to country names before title
// casing. Values are final, already in display form.
var nationalitySynonyms = map[string]string{
	"chinese":     "China",
	"singaporean": "Singapore",
	"malaysian":   "Malaysia",
	"indian":      "India",
}

// MobileNumberLength is the fixed digit count of a normalized mobile number.
const MobileNumberLength = 8

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// NormalizeCompanyName rewrites any case variant of "PTE LTD" to the literal
// "Pte Ltd" and leaves all other text unchanged.
func NormalizeCompanyName(s string) string {
	return pteLtdRe.ReplaceAllString(s, "Pte Ltd")
}

// NormalizeNationality maps known demonyms to country names and title-cases
// the result. Unmapped values are title-cased as-is.
func NormalizeNationality(s string) string {
	v := strings.ToLower(strings.TrimSpace(s))
	if country, ok := nationalitySynonyms[v]; ok {
		return country
	}
	return titleCase(v)
}

// NormalizeResidency collapses the residency column to its canonical
// tri-state: "PR", "", or an unrecognized literal. The negative vocabulary
// maps to the empty string. Unrecognized alphabetic values are uppercased,
// anything else is passed through trimmed.
func NormalizeResidency(s string) string {
	trimmed := strings.TrimSpace(s)
	v := strings.ToLower(trimmed)
	switch v {
	case "pr", "yes", "y":
		return "PR"
	case "n", "no", "na", "", "nan":
		return ""
	}
	if isAlphabetic(v) {
		return strings.ToUpper(v)
	}
	return trimmed
}

// NormalizeIDType uppercases the identification type. "fin" in any case
// becomes the rule-significant literal "FIN".
func NormalizeIDType(s string) string {
	v := strings.TrimSpace(s)
	if strings.EqualFold(v, "fin") {
		return "FIN"
	}
	return strings.ToUpper(v)
}

// NormalizeVehiclePlates rewrites the plate list to a semicolon-delimited
// token list: "/" and "," become ";", spacing around ";" collapses, all
// remaining whitespace is stripped. Token order is preserved and duplicates
// are kept; deduplication happens only at summary time.
func NormalizeVehiclePlates(s string) string {
	v := plateSeparatorRe.ReplaceAllString(s, ";")
	v = plateSpacingRe.ReplaceAllString(v, ";")
	v = whitespaceRe.ReplaceAllString(v, "")
	// Textual null placeholder from loosely exported sheets.
	if strings.EqualFold(v, "nan") {
		return ""
	}
	return v
}

// NormalizeFullName title-cases the whole name. First/last derivation is a
// separate step so corrections to the full name re-derive both parts.
func NormalizeFullName(s string) string {
	return titleCase(strings.TrimSpace(s))
}

// SplitFullName splits a normalized full name at the first space only. The
// remainder, including any further spaces, is the last-name part. A name
// with no space yields an empty last part.
func SplitFullName(fullName string) (first, last string) {
	if i := strings.Index(fullName, " "); i >= 0 {
		return fullName[:i], fullName[i+1:]
	}
	return fullName, ""
}

// NormalizeIDSuffix keeps the last 4 characters of the identifier value.
// The suffix is never checksum-validated.
func NormalizeIDSuffix(s string) string {
	v := strings.TrimSpace(s)
	runes := []rune(v)
	if len(runes) > 4 {
		return string(runes[len(runes)-4:])
	}
	return v
}

// NormalizeMobileNumber strips all non-digits and forces the result to
// exactly 8 digits. Excess trailing zeros are treated as export artifacts
// and dropped; any other excess keeps the last 8 digits. Short values are
// left-padded with zeros.
func NormalizeMobileNumber(s string) string {
	d := nonDigitRe.ReplaceAllString(s, "")
	if len(d) > MobileNumberLength {
		extra := len(d) - MobileNumberLength
		if strings.HasSuffix(d, strings.Repeat("0", extra)) {
			d = d[:len(d)-extra]
		} else {
			d = d[len(d)-MobileNumberLength:]
		}
	}
	if len(d) < MobileNumberLength {
		d = strings.Repeat("0", MobileNumberLength-len(d)) + d
	}
	return d
}

// NormalizeGender maps single-letter codes to "Male"/"Female" and
// title-cases the spelled-out forms. Unrecognized values pass through
// unchanged.
func NormalizeGender(s string) string {
	v := strings.ToUpper(strings.TrimSpace(s))
	switch v {
	case "M", "MALE":
		return "Male"
	case "F", "FEMALE":
		return "Female"
	}
	return s
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
