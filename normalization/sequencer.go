package normalization

import "sort"

// Sequence orders the batch by the composite key (company name, sort class,
// nationality, full name), all ascending with lexical string comparison,
// then assigns serial numbers 1..N by final position. The sort is stable:
// records with identical keys keep their original relative order.
func Sequence(records []VisitorRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := &records[i], &records[j]
		if a.CompanyName != b.CompanyName {
			return a.CompanyName < b.CompanyName
		}
		if a.SortClass != b.SortClass {
			return a.SortClass < b.SortClass
		}
		if a.Nationality != b.Nationality {
			return a.Nationality < b.Nationality
		}
		return a.FullName < b.FullName
	})

	for i := range records {
		records[i].SerialNumber = i + 1
	}
}
