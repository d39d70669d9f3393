package normalization

import (
	"strconv"
	"strings"
	"time"
)

// ISODateLayout is the canonical storage form for the work permit expiry.
const ISODateLayout = "2006-01-02"

// expiryLayouts are the accepted textual date forms, tried in order.
var expiryLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02/01/2006",
	"02.01.2006",
	"2006/01/02",
	"2-Jan-06",
	"02 Jan 2006",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2, 2006",
}

// NormalizeExpiryDate parses the work permit expiry with a forgiving parser
// and returns it in ISO form. Unparsable or empty values come back as ""
// (absent), never as an error; a bad date degrades the cell, not the batch.
func NormalizeExpiryDate(s string) string {
	v := strings.TrimSpace(s)
	if v == "" || v == "########" {
		return ""
	}

	// Excel serial dates survive as plain numbers in loosely typed sheets.
	if num, err := strconv.ParseFloat(v, 64); err == nil {
		if num <= 0 {
			return ""
		}
		excelEpoch := time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)
		return excelEpoch.AddDate(0, 0, int(num)).Format(ISODateLayout)
	}

	for _, layout := range expiryLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format(ISODateLayout)
		}
	}

	return ""
}
