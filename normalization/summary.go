package normalization

import (
	"sort"
	"strings"
)

// Summary carries the batch-level figures derived from the cleaned records.
type Summary struct {
	// Vehicles is the deduplicated, lexically sorted plate roster, joined
	// with ";". Empty when no record carries a plate.
	Vehicles string
	// VisitorCount counts records with a non-empty company name, the proxy
	// for real rows.
	VisitorCount int
}

// Summarize derives the vehicle roster and visitor count from the batch.
// Plates are uppercased before deduplication so case variants of the same
// plate collapse to one roster entry.
func Summarize(batch *Batch) Summary {
	seen := make(map[string]struct{})
	var plates []string
	var visitors int

	for _, rec := range batch.Records {
		if strings.TrimSpace(rec.CompanyName) != "" {
			visitors++
		}
		for _, token := range strings.Split(rec.VehiclePlates, ";") {
			plate := strings.ToUpper(strings.TrimSpace(token))
			if plate == "" {
				continue
			}
			if _, ok := seen[plate]; ok {
				continue
			}
			seen[plate] = struct{}{}
			plates = append(plates, plate)
		}
	}

	sort.Strings(plates)
	return Summary{
		Vehicles:     strings.Join(plates, ";"),
		VisitorCount: visitors,
	}
}
