package models

import "time"

// DateRange represents a date range with start and end dates
type DateRange struct {
	Start time.Time
	End   time.Time
}

// IsZero reports whether the range covers no dates at all.
func (dr DateRange) IsZero() bool {
	return dr.Start.IsZero() && dr.End.IsZero()
}

// Merge combines this date range with another, returning the overall range
func (dr DateRange) Merge(other DateRange) DateRange {
	start := dr.Start
	end := dr.End

	// Handle zero times
	if dr.Start.IsZero() {
		start = other.Start
	} else if !other.Start.IsZero() && other.Start.Before(start) {
		start = other.Start
	}

	if dr.End.IsZero() {
		end = other.End
	} else if !other.End.IsZero() && other.End.After(end) {
		end = other.End
	}

	return DateRange{Start: start, End: end}
}

func dateRangeOf(transactions []Transaction) DateRange {
	var dr DateRange
	for _, tx := range transactions {
		dr = dr.Merge(DateRange{Start: tx.Date, End: tx.Date})
	}
	return dr
}

// Statement holds every transaction parsed from one export file, in file
// order, together with the account they were booked on.
type Statement struct {
	AccountID    string
	Transactions []Transaction
}

// DateRange returns the posting dates covered by the statement. The zero
// range is returned for a statement without transactions.
func (s *Statement) DateRange() DateRange {
	return dateRangeOf(s.Transactions)
}

// Group is a renderable slice of a statement: either the whole statement or
// the transactions of one calendar month.
type Group struct {
	// Month is the "YYYYMM" key of the calendar month, or "" when the group
	// spans the whole statement.
	Month        string
	AccountID    string
	Transactions []Transaction
}

// DateRange returns the posting dates covered by the group.
func (g Group) DateRange() DateRange {
	return dateRangeOf(g.Transactions)
}
