package model

import "fmt"

// SortOrder selects how listings of visit records are ranked.
type SortOrder string

const (
	OrderByLastSeen SortOrder = "last-seen"
	OrderByVisits   SortOrder = "visits"
)

// ParseSortOrder maps a user-supplied order name to a SortOrder. Used at
// the CLI boundary so everything past it carries a validated value.
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(s) {
	case OrderByLastSeen, OrderByVisits:
		return SortOrder(s), nil
	default:
		return "", fmt.Errorf("unknown sort order %q (expected %q or %q)", s, OrderByLastSeen, OrderByVisits)
	}
}
