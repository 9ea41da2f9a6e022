// Package hijri renders Gregorian times as Umm al-Qura Hijri dates, the
// calendar used for Saudi business documents. Storage stays Gregorian;
// this package only produces the Hijri representation.
package hijri

import (
	"fmt"
	"time"

	gohijri "github.com/hablullah/go-hijri"
)

// Date is an Umm al-Qura calendar date.
type Date struct {
	Year  int64
	Month int64
	Day   int64
}

var monthNames = [12]string{
	"Muharram", "Safar", "Rabi' al-Awwal", "Rabi' al-Thani",
	"Jumada al-Ula", "Jumada al-Akhirah", "Rajab", "Sha'ban",
	"Ramadan", "Shawwal", "Dhu al-Qa'dah", "Dhu al-Hijjah",
}

// FromTime converts a Gregorian time to its Umm al-Qura date.
func FromTime(t time.Time) (Date, error) {
	uq, err := gohijri.CreateUmmAlQuraDate(t)
	if err != nil {
		return Date{}, fmt.Errorf("hijri: convert %s: %w", t.Format("2006-01-02"), err)
	}
	return Date{Year: uq.Year, Month: uq.Month, Day: uq.Day}, nil
}

// String returns the date as "1447-03-09".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// MonthName returns the transliterated month name, or "" for an invalid month.
func (d Date) MonthName() string {
	if d.Month < 1 || d.Month > 12 {
		return ""
	}
	return monthNames[d.Month-1]
}

// Long returns the date as "9 Rabi' al-Awwal 1447 AH".
func (d Date) Long() string {
	return fmt.Sprintf("%d %s %d AH", d.Day, d.MonthName(), d.Year)
}

// FormatTime is a convenience for DTOs: the short Hijri rendering of t,
// or "" when the conversion fails (dates outside the Umm al-Qura tables).
func FormatTime(t time.Time) string {
	d, err := FromTime(t)
	if err != nil {
		return ""
	}
	return d.String()
}
