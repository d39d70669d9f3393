// Package clearance estimates the earliest gate-clearance date for a visitor
// list submission. The calendar rule is fixed facility policy: submissions
// at or after the daily cutoff count as next-day, weekends never count as
// working days, and processing takes two working days.
package clearance

import "time"

// CutoffHour is the local hour (Asia/Singapore) after which a submission is
// treated as made the next day.
const CutoffHour = 15

// workingDays is the fixed processing time in working days.
const workingDays = 2

// singapore is the facility time zone; the offset fallback covers
// containers without tzdata.
var singapore = loadSingapore()

func loadSingapore() *time.Location {
	loc, err := time.LoadLocation("Asia/Singapore")
	if err != nil {
		return time.FixedZone("SGT", 8*60*60)
	}
	return loc
}

// Now returns the current instant in the facility time zone.
func Now() time.Time {
	return time.Now().In(singapore)
}

// Estimate is the computed clearance schedule for one submission instant.
type Estimate struct {
	// SubmittedAt is the submission instant in facility time.
	SubmittedAt time.Time
	// EffectiveDate is the working day the submission counts from, after
	// the cutoff and weekend rolls.
	EffectiveDate time.Time
	// ClearanceDate is the earliest date the visitors can clear the gate.
	ClearanceDate time.Time
}

// EstimateClearance applies the facility calendar rule to a submission
// instant. The input may be in any zone; it is converted to facility time
// first.
func EstimateClearance(submittedAt time.Time) Estimate {
	local := submittedAt.In(singapore)

	effective := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, singapore)
	if local.Hour() >= CutoffHour {
		effective = effective.AddDate(0, 0, 1)
	}
	effective = rollForwardPastWeekend(effective)

	clearance := effective
	for counted := 0; counted < workingDays; {
		clearance = clearance.AddDate(0, 0, 1)
		if isWorkingDay(clearance) {
			counted++
		}
	}
	clearance = rollForwardPastWeekend(clearance)

	return Estimate{
		SubmittedAt:   local,
		EffectiveDate: effective,
		ClearanceDate: clearance,
	}
}

func isWorkingDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

func rollForwardPastWeekend(t time.Time) time.Time {
	for !isWorkingDay(t) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}
