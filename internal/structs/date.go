package structs

import (
	"encoding/json"
	"time"
)

// DateLayout is the only accepted deadline format.
const DateLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// Date is a calendar day with no time component.
// The zero-time is always midnight UTC so subtraction yields whole days.
type Date struct {
	time.Time
}

// NewDate returns the civil date of t in t's own location.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current civil date in loc.
func Today(now time.Time, loc *time.Location) Date {
	if loc == nil {
		loc = time.Local
	}
	return NewDate(now.In(loc))
}

// ParseDate parses s strictly as YYYY-MM-DD. Single-digit months or days,
// out-of-range values and trailing text are rejected.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return NewDate(t), nil
}

// DaysSince returns the signed number of calendar days from other to d.
// Unix seconds cover the whole four-digit year range, unlike time.Duration.
func (d Date) DaysSince(other Date) int {
	return int((d.Unix() - other.Unix()) / secondsPerDay)
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// MarshalJSON encodes the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a strict "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
