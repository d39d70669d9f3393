package normalization

import "testing"

func TestNormalizeCompanyName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ACME PTE LTD", "ACME Pte Ltd"},
		{"Acme pte  ltd", "Acme Pte Ltd"},
		{"Acme Pte Ltd", "Acme Pte Ltd"},
		{"Acme Private Limited", "Acme Private Limited"},
		{"COMPETE LTDA", "COMPETE LTDA"}, // no word boundary match
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeCompanyName(tt.in); got != tt.want {
			t.Errorf("NormalizeCompanyName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeNationality(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  CHINESE ", "China"},
		{"malaysian", "Malaysia"},
		{"Singaporean", "Singapore"},
		{"indian", "India"},
		{"french", "French"},
		{"united kingdom", "United Kingdom"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeNationality(tt.in); got != tt.want {
			t.Errorf("NormalizeNationality(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeResidency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"pr", "PR"},
		{"Yes", "PR"},
		{" y ", "PR"},
		{"no", ""},
		{"n", ""},
		{"NA", ""},
		{"", ""},
		{"nan", ""},
		{"maybe", "MAYBE"},
		{"x1", "x1"}, // not alphabetic, passed through
	}
	for _, tt := range tests {
		if got := NormalizeResidency(tt.in); got != tt.want {
			t.Errorf("NormalizeResidency(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeIDType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"fin", "FIN"},
		{" Fin ", "FIN"},
		{"nric", "NRIC"},
		{"wp", "WP"},
		{"passport", "PASSPORT"},
	}
	for _, tt := range tests {
		if got := NormalizeIDType(tt.in); got != tt.want {
			t.Errorf("NormalizeIDType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeVehiclePlates(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"SBA123, SBA123/SBC456", "SBA123;SBA123;SBC456"},
		{"SBA 123 ; SBC456", "SBA123;SBC456"},
		{"nan", ""},
		{"", ""},
		{"SKV9876B", "SKV9876B"},
	}
	for _, tt := range tests {
		if got := NormalizeVehiclePlates(tt.in); got != tt.want {
			t.Errorf("NormalizeVehiclePlates(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeFullNameAndSplit(t *testing.T) {
	full := NormalizeFullName("john tan wei ming")
	if full != "John Tan Wei Ming" {
		t.Fatalf("NormalizeFullName = %q, want %q", full, "John Tan Wei Ming")
	}

	first, last := SplitFullName(full)
	if first != "John" || last != "Tan Wei Ming" {
		t.Errorf("SplitFullName(%q) = (%q, %q), want (John, Tan Wei Ming)", full, first, last)
	}

	first, last = SplitFullName("Madonna")
	if first != "Madonna" || last != "" {
		t.Errorf("SplitFullName single word = (%q, %q), want (Madonna, \"\")", first, last)
	}
}

func TestNormalizeIDSuffix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"S1234567A", "567A"},
		{"567A", "567A"},
		{"7A", "7A"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeIDSuffix(tt.in); got != tt.want {
			t.Errorf("NormalizeIDSuffix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeMobileNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+65 9123-4567", "91234567"},
		{"123", "00000123"},
		{"912345670000", "91234567"}, // excess trailing zeros dropped
		{"6591234567", "91234567"},   // excess without zeros keeps last 8
		{"", "00000000"},
		{"91234567", "91234567"},
	}
	for _, tt := range tests {
		got := NormalizeMobileNumber(tt.in)
		if got != tt.want {
			t.Errorf("NormalizeMobileNumber(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if len(got) != MobileNumberLength {
			t.Errorf("NormalizeMobileNumber(%q) length = %d, want %d", tt.in, len(got), MobileNumberLength)
		}
	}
}

func TestNormalizeGender(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"M", "Male"},
		{"f", "Female"},
		{"MALE", "Male"},
		{"female", "Female"},
		{"unknown", "unknown"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeGender(tt.in); got != tt.want {
			t.Errorf("NormalizeGender(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// Each normalizer must be idempotent on its own output.
func TestNormalizersIdempotent(t *testing.T) {
	inputs := []string{"ACME PTE LTD", "  chinese ", "yes", "fin", "SBA123, SBC456/SKV1", "john tan", "+65 9123 4567", "m", "S1234567A"}

	stringFns := map[string]func(string) string{
		"company":     NormalizeCompanyName,
		"nationality": NormalizeNationality,
		"residency":   NormalizeResidency,
		"id_type":     NormalizeIDType,
		"plates":      NormalizeVehiclePlates,
		"full_name":   NormalizeFullName,
		"mobile":      NormalizeMobileNumber,
		"gender":      NormalizeGender,
		"id_suffix":   NormalizeIDSuffix,
		"expiry":      NormalizeExpiryDate,
	}

	for name, fn := range stringFns {
		for _, in := range inputs {
			once := fn(in)
			twice := fn(once)
			if once != twice {
				t.Errorf("%s not idempotent: %q -> %q -> %q", name, in, once, twice)
			}
		}
	}
}
