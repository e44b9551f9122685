package driven

import (
	"context"
	"time"

	"github.com/ericfisherdev/nametrack/internal/domain/model"
)

// VisitStore defines the driven port for visit record persistence.
//
// RecordVisit atomically creates the record for name (count 1) or increments
// its count, setting last_seen to now in either case, and returns the state
// the record had before this call. The returned receipt must correspond to
// the same row that was updated: under concurrent calls for the same name no
// increment may be lost, and the final count always equals the number of
// recorded visits.
//
// ListTop returns up to limit records ranked descending by the given order;
// an empty registry yields an empty slice, not an error.
//
// ClearAll removes every record and is idempotent.
type VisitStore interface {
	RecordVisit(ctx context.Context, name string, now time.Time) (model.VisitReceipt, error)
	ListTop(ctx context.Context, limit int, order model.SortOrder) ([]model.VisitRecord, error)
	ClearAll(ctx context.Context) error
}
