// Package calendar implements the validated proleptic Gregorian dates used
// for episode codes, their day ordinals and the median fallback estimate.
package calendar

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/mydehq/stampname/internal/types"
)

const (
	minYear = 1
	maxYear = 9999

	// Ordinal of 1970-01-01 when 0001-01-01 is day 1
	unixEpochOrdinal = 719163
	secondsPerDay    = 24 * 60 * 60
)

// Date is a real calendar date in years 1..9999
type Date struct {
	Year  int
	Month int
	Day   int
}

// New validates and returns the date y-m-d
func New(y, m, d int) (Date, error) {
	invalid := types.ErrInvalidDate{
		Year:  strconv.Itoa(y),
		Month: strconv.Itoa(m),
		Day:   strconv.Itoa(d),
	}
	if y < minYear || y > maxYear || m < 1 || m > 12 || d < 1 {
		return Date{}, invalid
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return Date{}, invalid
	}
	return Date{Year: y, Month: m, Day: d}, nil
}

// Parse converts digit strings such as "2023", "04", "15" into a validated date
func Parse(y, m, d string) (Date, error) {
	invalid := types.ErrInvalidDate{Year: y, Month: m, Day: d}

	yi, err := strconv.Atoi(y)
	if err != nil {
		return Date{}, invalid
	}
	mi, err := strconv.Atoi(m)
	if err != nil {
		return Date{}, invalid
	}
	di, err := strconv.Atoi(d)
	if err != nil {
		return Date{}, invalid
	}

	date, err := New(yi, mi, di)
	if err != nil {
		return Date{}, invalid
	}
	return date, nil
}

func (d Date) time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// Ordinal returns the day count where 0001-01-01 is day 1
func (d Date) Ordinal() int {
	return int(d.time().Unix()/secondsPerDay) + unixEpochOrdinal
}

// FromOrdinal is the inverse of Ordinal
func FromOrdinal(n int) (Date, error) {
	t := time.Unix(int64(n-unixEpochOrdinal)*secondsPerDay, 0).UTC()
	if n < 1 || t.Year() > maxYear {
		return Date{}, fmt.Errorf("ordinal %d out of range", n)
	}
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, nil
}

// AddDays returns the date n days later
func (d Date) AddDays(n int) (Date, error) {
	t := d.time().AddDate(0, 0, n)
	if t.Year() < minYear || t.Year() > maxYear {
		return Date{}, types.ErrDateOutOfRange{}
	}
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, nil
}

// Before reports whether d is earlier than other
func (d Date) Before(other Date) bool {
	return d.Ordinal() < other.Ordinal()
}

// Code formats the episode code, e.g. "S2023E0415"
func (d Date) Code() string {
	return fmt.Sprintf("S%dE%02d%02d", d.Year, d.Month, d.Day)
}

// String formats the date as ISO 8601
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Median returns the median date of pool. For an even-sized pool the two
// middle ordinals are averaged and truncated to a whole day. The second
// result is false when pool is empty.
func Median(pool []Date) (Date, bool) {
	if len(pool) == 0 {
		return Date{}, false
	}

	ordinals := make([]int, len(pool))
	for i, d := range pool {
		ordinals[i] = d.Ordinal()
	}
	slices.Sort(ordinals)

	mid := len(ordinals) / 2
	median := ordinals[mid]
	if len(ordinals)%2 == 0 {
		median = (ordinals[mid-1] + ordinals[mid]) / 2
	}

	// The mean of two valid ordinals is itself valid.
	d, _ := FromOrdinal(median)
	return d, true
}
