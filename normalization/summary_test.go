package normalization

import "testing"

func TestSummarizeVehicles(t *testing.T) {
	batch := &Batch{Records: []VisitorRecord{
		{CompanyName: "Acme", VehiclePlates: NormalizeVehiclePlates("SBA123, SBA123/SBC456")},
		{CompanyName: "Acme", VehiclePlates: NormalizeVehiclePlates("sbc456")},
		{CompanyName: "Acme", VehiclePlates: ""},
	}}

	sum := Summarize(batch)

	// Case variants collapse, duplicates collapse, roster sorts lexically.
	if sum.Vehicles != "SBA123;SBC456" {
		t.Errorf("Vehicles = %q, want %q", sum.Vehicles, "SBA123;SBC456")
	}
	if sum.VisitorCount != 3 {
		t.Errorf("VisitorCount = %d, want 3", sum.VisitorCount)
	}
}

func TestSummarizeCountsOnlyRowsWithCompany(t *testing.T) {
	batch := &Batch{Records: []VisitorRecord{
		{CompanyName: "Acme"},
		{CompanyName: ""},
		{CompanyName: "  "},
		{CompanyName: "Beta"},
	}}

	sum := Summarize(batch)
	if sum.VisitorCount != 2 {
		t.Errorf("VisitorCount = %d, want 2", sum.VisitorCount)
	}
	if sum.Vehicles != "" {
		t.Errorf("Vehicles = %q, want empty", sum.Vehicles)
	}
}
