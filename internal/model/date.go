package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Date is a calendar date without a time component. Stored as a DATE
// column and rendered as "2006-01-02" in JSON.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) String() string {
	return d.Format(time.DateOnly)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("scan date: unsupported type %T", src)
	}
}

func (d Date) Equal(o Date) bool  { return d.Time.Equal(o.Time) }
func (d Date) Before(o Date) bool { return d.Time.Before(o.Time) }
func (d Date) After(o Date) bool  { return d.Time.After(o.Time) }

// At combines the date with a wall-clock time. An empty or malformed
// time of day resolves to midnight.
func (d Date) At(t TimeOfDay) time.Time {
	return d.Time.Add(t.sinceMidnight())
}

// TimeOfDay is a wall-clock time in "15:04" form (seconds optional).
type TimeOfDay string

func (t TimeOfDay) parse() (time.Time, error) {
	if strings.Count(string(t), ":") == 2 {
		return time.Parse(time.TimeOnly, string(t))
	}
	return time.Parse("15:04", string(t))
}

func (t TimeOfDay) Valid() bool {
	_, err := t.parse()
	return err == nil
}

func (t TimeOfDay) sinceMidnight() time.Duration {
	parsed, err := t.parse()
	if err != nil {
		return 0
	}
	return time.Duration(parsed.Hour())*time.Hour +
		time.Duration(parsed.Minute())*time.Minute +
		time.Duration(parsed.Second())*time.Second
}

// After reports whether t is strictly later in the day than o.
func (t TimeOfDay) After(o TimeOfDay) bool {
	return t.sinceMidnight() > o.sinceMidnight()
}
