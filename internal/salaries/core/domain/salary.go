package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payout is a single salary record of the flat collection ({dt, value}).
type Payout struct {
	ID        uuid.UUID
	Timestamp time.Time
	Amount    decimal.Decimal
}

type AggregationRequest struct {
	Start       time.Time
	End         time.Time
	Granularity Granularity
}

// BucketTotal is one row of the sparse grouped sum.
type BucketTotal struct {
	Label string
	Sum   decimal.Decimal
}

// AggregationResult is the dense series; Dataset[i] belongs to Labels[i].
type AggregationResult struct {
	Dataset []decimal.Decimal
	Labels  []string
}
