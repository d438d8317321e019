package ports

import (
	"context"
	"time"

	"salary-aggregation-service/internal/salaries/core/domain"
)

type TotalsFilter struct {
	From        time.Time // inclusive
	To          time.Time // inclusive
	Granularity domain.Granularity
}

// SalaryTotalsReaderPort returns the sparse grouped sum: one BucketTotal per
// bucket label that has at least one record in [From, To]. Order is not
// significant.
type SalaryTotalsReaderPort interface {
	SumByBucket(ctx context.Context, f TotalsFilter) ([]domain.BucketTotal, error)
}
