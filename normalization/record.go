package normalization

// ColumnCount is the fixed width of the Visitor List sheet.
const ColumnCount = 13

// ColumnHeaders holds the 13 canonical column labels in storage order.
var ColumnHeaders = [ColumnCount]string{
	"S/N",
	"Vehicle Plate Number",
	"Company Full Name",
	"Full Name As Per NRIC",
	"First Name as per NRIC",
	"Middle and Last Name as per NRIC",
	"Identification Type",
	"IC (Last 3 digits and suffix) 123A",
	"Work Permit Expiry Date",
	"Nationality (Country Name)",
	"PR",
	"Gender",
	"Mobile Number",
}

// Field identifies a VisitorRecord field for issue reporting and for mapping
// issues back to sheet cells.
type Field string

const (
	FieldSerialNumber     Field = "serial_number"
	FieldVehiclePlates    Field = "vehicle_plates"
	FieldCompanyName      Field = "company_name"
	FieldFullName         Field = "full_name"
	FieldFirstName        Field = "first_name"
	FieldLastName         Field = "last_name"
	FieldIDType           Field = "id_type"
	FieldIDSuffix         Field = "id_suffix"
	FieldWorkPermitExpiry Field = "work_permit_expiry"
	FieldNationality      Field = "nationality"
	FieldResidency        Field = "residency"
	FieldGender           Field = "gender"
	FieldMobileNumber     Field = "mobile_number"
)

// fieldColumns maps each field to its zero-based sheet column.
var fieldColumns = map[Field]int{
	FieldSerialNumber:     0,
	FieldVehiclePlates:    1,
	FieldCompanyName:      2,
	FieldFullName:         3,
	FieldFirstName:        4,
	FieldLastName:         5,
	FieldIDType:           6,
	FieldIDSuffix:         7,
	FieldWorkPermitExpiry: 8,
	FieldNationality:      9,
	FieldResidency:        10,
	FieldGender:           11,
	FieldMobileNumber:     12,
}

// ColumnIndex returns the zero-based sheet column for the field, or -1 for an
// unknown field.
func (f Field) ColumnIndex() int {
	if idx, ok := fieldColumns[f]; ok {
		return idx
	}
	return -1
}

// RawRow is one line of the uploaded sheet, position-addressed, at most 13
// cells. Trailing cells may be missing when the source row is short.
type RawRow []string

// Cell returns the cell at the given column, or "" when the row is shorter.
func (r RawRow) Cell(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// VisitorRecord is the canonical cleaned entity for one visitor.
type VisitorRecord struct {
	SerialNumber  int    // 1-based, assigned after final ordering
	VehiclePlates string // semicolon-joined plate tokens, order preserved
	CompanyName   string
	FullName      string
	FirstName     string // derived from FullName, never edited independently
	LastName      string // derived from FullName, never edited independently
	IDType        string
	IDSuffix      string // last 3-4 characters of the identifier
	// WorkPermitExpiry holds the expiry in ISO form (2006-01-02), or "" when
	// the source value was absent or unparsable.
	WorkPermitExpiry string
	Nationality      string
	Residency        string // "PR", "", or an unrecognized literal kept verbatim
	Gender           string
	MobileNumber     string // exactly 8 digits

	// SortClass is the ordering bucket derived from nationality/residency.
	// It is a sort key only and is never written to the sheet.
	SortClass int
}

// Batch is the full set of visitor records derived from one uploaded
// workbook, processed together.
type Batch struct {
	Records []VisitorRecord
}
