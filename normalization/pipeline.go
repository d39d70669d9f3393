package normalization

import "strings"

// Raw column positions in the uploaded sheet. Identifier and expiry are the
// pair subject to the batch-level swap correction.
const (
	colVehiclePlates = 1
	colCompanyName   = 2
	colFullName      = 3
	colIDType        = 6
	colIDSuffix      = 7
	colExpiry        = 8
	colNationality   = 9
	colResidency     = 10
	colGender        = 11
	colMobileNumber  = 12
)

// SwapDecision is the batch-level pre-pass result for the identifier/expiry
// column correction. It is computed once from the full input and threaded
// into per-row normalization so the heuristic stays auditable in isolation.
type SwapDecision struct {
	// SwapIDAndExpiry is true when the identifier column carries dates
	// (detected by a "-" anywhere in the column), meaning the source file
	// has the identifier and work-permit-expiry columns reversed.
	SwapIDAndExpiry bool
}

// DetectColumnSwap scans the identifier column of the whole batch. A "-" in
// any identifier cell marks the common column-order mistake where identifier
// and expiry are reversed; the swap then applies to every row.
func DetectColumnSwap(rows []RawRow) SwapDecision {
	for _, row := range rows {
		if strings.Contains(row.Cell(colIDSuffix), "-") {
			return SwapDecision{SwapIDAndExpiry: true}
		}
	}
	return SwapDecision{}
}

// Pipeline runs the full normalization stage for one batch: blank-row
// removal, the column-swap pre-pass, per-column transforms, classification,
// ordering and serial renumbering. It is stateless and safe to reuse.
type Pipeline struct{}

// NewPipeline creates a normalization pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Run normalizes the raw rows into an ordered batch. Rows that are blank in
// every data column are dropped; nothing else is ever removed.
func (p *Pipeline) Run(rows []RawRow) *Batch {
	kept := rows[:0:0]
	for _, row := range rows {
		if !isBlankDataRow(row) {
			kept = append(kept, row)
		}
	}

	swap := DetectColumnSwap(kept)

	batch := &Batch{Records: make([]VisitorRecord, 0, len(kept))}
	for _, row := range kept {
		batch.Records = append(batch.Records, normalizeRow(row, swap))
	}

	Sequence(batch.Records)
	return batch
}

// normalizeRow applies the per-column transforms to one raw row. The swap
// decision reroutes the identifier/expiry cells before any transform runs.
func normalizeRow(row RawRow, swap SwapDecision) VisitorRecord {
	idCell := row.Cell(colIDSuffix)
	expiryCell := row.Cell(colExpiry)
	if swap.SwapIDAndExpiry {
		idCell, expiryCell = expiryCell, idCell
	}

	rec := VisitorRecord{
		VehiclePlates:    NormalizeVehiclePlates(row.Cell(colVehiclePlates)),
		CompanyName:      NormalizeCompanyName(row.Cell(colCompanyName)),
		FullName:         NormalizeFullName(row.Cell(colFullName)),
		IDType:           NormalizeIDType(row.Cell(colIDType)),
		IDSuffix:         NormalizeIDSuffix(idCell),
		WorkPermitExpiry: NormalizeExpiryDate(expiryCell),
		Nationality:      NormalizeNationality(row.Cell(colNationality)),
		Residency:        NormalizeResidency(row.Cell(colResidency)),
		Gender:           NormalizeGender(row.Cell(colGender)),
		MobileNumber:     NormalizeMobileNumber(row.Cell(colMobileNumber)),
	}
	rec.FirstName, rec.LastName = SplitFullName(rec.FullName)
	rec.SortClass = ClassifyRecord(rec.Nationality, rec.Residency)
	return rec
}

// isBlankDataRow reports whether all data columns (full name through mobile
// number) are empty. Such rows are blank trailing rows in the source sheet,
// not real visitors.
func isBlankDataRow(row RawRow) bool {
	for col := colFullName; col <= colMobileNumber; col++ {
		if strings.TrimSpace(row.Cell(col)) != "" {
			return false
		}
	}
	return true
}
