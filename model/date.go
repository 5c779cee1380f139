package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/iand/gdate"
)

// Date is a historical date of any precision, from a precise day down to
// "about 1541", "before 1200" or a span of years.
type Date struct {
	Date  gdate.Date
	Basis DateBasis
}

type DateBasis int

const (
	BasisRecorded       DateBasis = 0 // date comes from a written record or inscription
	BasisTraditional    DateBasis = 1 // date handed down by local tradition
	BasisArchaeological DateBasis = 2 // date estimated from excavation evidence
)

func (b DateBasis) Qualifier() string {
	switch b {
	case BasisTraditional:
		return "traditional"
	case BasisArchaeological:
		return "archaeological"
	default:
		return ""
	}
}

// ParseBasis reads the basis field used in content bundles. Unrecognised
// values fall back to a recorded basis.
func ParseBasis(s string) DateBasis {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "traditional":
		return BasisTraditional
	case "archaeological":
		return BasisArchaeological
	default:
		return BasisRecorded
	}
}

func UnknownDate() *Date {
	return &Date{
		Date: &gdate.Unknown{},
	}
}

func PreciseDate(y, m, d int) *Date {
	if m < 1 || m > 12 {
		panic("month must be between 1 and 12")
	}
	return &Date{
		Date: &gdate.Precise{Y: y, M: m, D: d},
	}
}

func Year(y int) *Date {
	return &Date{
		Date: &gdate.Year{Y: y},
	}
}

func AboutYear(y int) *Date {
	return &Date{
		Date: &gdate.AboutYear{Y: y},
	}
}

func BeforeYear(y int) *Date {
	return &Date{
		Date: &gdate.BeforeYear{Y: y},
	}
}

func AfterYear(y int) *Date {
	return &Date{
		Date: &gdate.AfterYear{Y: y},
	}
}

func YearRange(l, u int) *Date {
	return &Date{
		Date: &gdate.YearRange{Lower: l, Upper: u},
	}
}

var (
	dateYear   = regexp.MustCompile(`^(\d{1,4})$`)
	dateAbout  = regexp.MustCompile(`^(?:c\.?|circa|about|abt\.?)\s*(\d{1,4})$`)
	dateBefore = regexp.MustCompile(`^(?:before|bef\.?)\s+(\d{1,4})$`)
	dateAfter  = regexp.MustCompile(`^(?:after|aft\.?)\s+(\d{1,4})$`)
	dateRange  = regexp.MustCompile(`^(\d{1,4})\s*[-\x{2013}]\s*(\d{1,4})$`)
	dateISO    = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	dateBCE    = regexp.MustCompile(`^(?:c\.?\s*|about\s+)?(\d{1,5})\s*(?:bce|bc)$`)
)

// ParseDate reads the date shorthand used in content bundles: "1541",
// "c1541", "about 1541", "before 1200", "after 600", "1556-1605",
// "1634-05-12" and "c. 2600 BCE". The empty string is the unknown date.
func ParseDate(s string) (*Date, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return UnknownDate(), nil
	}

	atoi := func(m string) int {
		n, _ := strconv.Atoi(m)
		return n
	}

	if m := dateBCE.FindStringSubmatch(s); m != nil {
		return AboutYear(-atoi(m[1])), nil
	}
	if m := dateISO.FindStringSubmatch(s); m != nil {
		mo, d := atoi(m[2]), atoi(m[3])
		if mo < 1 || mo > 12 || d < 1 || d > 31 {
			return nil, fmt.Errorf("date %q: month or day out of range", s)
		}
		return PreciseDate(atoi(m[1]), mo, d), nil
	}
	if m := dateYear.FindStringSubmatch(s); m != nil {
		return Year(atoi(m[1])), nil
	}
	if m := dateAbout.FindStringSubmatch(s); m != nil {
		return AboutYear(atoi(m[1])), nil
	}
	if m := dateBefore.FindStringSubmatch(s); m != nil {
		return BeforeYear(atoi(m[1])), nil
	}
	if m := dateAfter.FindStringSubmatch(s); m != nil {
		return AfterYear(atoi(m[1])), nil
	}
	if m := dateRange.FindStringSubmatch(s); m != nil {
		lower, upper := atoi(m[1]), atoi(m[2])
		if upper < lower {
			return nil, fmt.Errorf("date %q: range ends before it starts", s)
		}
		return YearRange(lower, upper), nil
	}

	return nil, fmt.Errorf("unrecognised date %q", s)
}

// IsUnknown reports whether d is an Unknown date
func (d *Date) IsUnknown() bool {
	if d == nil {
		return true
	}

	_, ok := d.Date.(*gdate.Unknown)
	return ok
}

func (d *Date) String() string {
	if d == nil {
		return "unknown"
	}

	qual := d.Basis.Qualifier()
	if qual != "" {
		qual += " "
	}

	return qual + d.Date.String()
}

// When phrases the date for use in prose.
func (d *Date) When() string {
	if d == nil || d.IsUnknown() {
		return "on an unknown date"
	}

	if s, ok := d.WhenYear(); ok {
		return s
	}
	return d.Date.Occurrence()
}

func (d *Date) WhenYear() (string, bool) {
	yr, ok := d.Year()
	if !ok {
		return "", false
	}

	name := strconv.Itoa(yr)
	if yr < 0 {
		name = strconv.Itoa(-yr) + " BCE"
	}

	switch d.Date.(type) {
	case *gdate.BeforeYear:
		return "before " + name, true
	case *gdate.AfterYear:
		return "after " + name, true
	case *gdate.AboutYear:
		return "about " + name, true
	case *gdate.YearRange:
		return "between " + name + " and " + rangeUpperName(d.Date), true
	default:
		return "in " + name, true
	}
}

func rangeUpperName(d gdate.Date) string {
	yr, ok := d.(*gdate.YearRange)
	if !ok {
		return ""
	}
	if yr.Upper < 0 {
		return strconv.Itoa(-yr.Upper) + " BCE"
	}
	return strconv.Itoa(yr.Upper)
}

// Year returns the year the date falls in, taking the lower bound of a
// range so ranged founding dates still bucket into an era.
func (d *Date) Year() (int, bool) {
	if d == nil {
		return 0, false
	}

	if yearer, ok := gdate.AsYear(d.Date); ok {
		return yearer.Year(), true
	}
	if yr, ok := d.Date.(*gdate.YearRange); ok {
		return yr.Lower, true
	}
	return 0, false
}

func (d *Date) SortsBefore(other *Date) bool {
	if d == nil {
		return false
	}
	if other == nil {
		return true
	}

	return gdate.SortsBefore(d.Date, other.Date)
}

// YearsSince returns the whole years elapsed between the date and today.
func (d *Date) YearsSince() (int, bool) {
	if d.IsUnknown() {
		return 0, false
	}

	now := time.Now()
	dt := &gdate.Precise{
		Y: now.Year(),
		M: int(now.Month()),
		D: now.Day(),
	}

	in := gdate.IntervalBetween(d.Date, dt)
	if gdate.IsUnknownInterval(in) {
		return 0, false
	}
	if yi, ok := gdate.AsYearsInterval(in); ok {
		return yi.Years(), true
	}
	return 0, false
}
