package model

import "time"

// VisitRecord is the aggregate state of one tracked name: how many times it
// has been seen and when it was last seen. Names are case-sensitive unique
// keys; there is never more than one record per name.
type VisitRecord struct {
	Name     string
	Count    int64
	LastSeen time.Time
}

// VisitReceipt captures a record's state as it was *before* a visit was
// recorded. A zero PreviousLastSeen means the name had never been seen.
type VisitReceipt struct {
	Name             string
	PreviousCount    int64
	PreviousLastSeen time.Time
}

// First reports whether the visit that produced this receipt was the
// name's first.
func (r VisitReceipt) First() bool {
	return r.PreviousCount == 0
}
