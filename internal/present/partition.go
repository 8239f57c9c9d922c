// ABOUTME: Splits a collection into records published on the reference date and all others
// ABOUTME: Malformed records are skipped and reported instead of aborting the whole page

package present

import (
	"errors"
	"fmt"
	"time"

	"github.com/harper/newsroom/internal/models"
	"github.com/harper/newsroom/internal/timeutil"
)

// RecordError describes a record that could not be used.
type RecordError struct {
	Index int
	Title string
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d (%q): %v", e.Index, e.Title, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// Period selects which side of a partition to show.
type Period string

const (
	PeriodAll      Period = "all"
	PeriodToday    Period = "today"
	PeriodPrevious Period = "previous"
)

// ParsePeriod converts a period string to a Period.
// Supported values: "all", "today", "previous"; empty means all.
func ParsePeriod(s string) (Period, bool) {
	switch Period(s) {
	case "", PeriodAll:
		return PeriodAll, true
	case PeriodToday:
		return PeriodToday, true
	case PeriodPrevious:
		return PeriodPrevious, true
	default:
		return "", false
	}
}

// PartitionByDate splits records by the calendar date of their published field.
// Records published on ref's date go to today, all others to previous; input
// order is kept in both. A record whose published field is missing or does
// not match models.PublishedLayout is left out of both lists and reported in
// the returned error, which joins one *RecordError per skipped record.
func PartitionByDate(records models.Collection, ref time.Time) (today, previous models.Collection, err error) {
	today = models.Collection{}
	previous = models.Collection{}

	var errs []error
	for i, record := range records {
		published, perr := record.PublishedAt()
		if perr != nil {
			errs = append(errs, &RecordError{Index: i, Title: record.Title(), Err: perr})
			continue
		}

		if timeutil.SameDay(published, ref) {
			today = append(today, record)
		} else {
			previous = append(previous, record)
		}
	}

	return today, previous, errors.Join(errs...)
}

// Select returns the records of the given period.
func Select(records models.Collection, ref time.Time, period Period) (models.Collection, error) {
	if period == PeriodAll {
		return records, nil
	}

	today, previous, err := PartitionByDate(records, ref)
	if period == PeriodToday {
		return today, err
	}
	return previous, err
}
