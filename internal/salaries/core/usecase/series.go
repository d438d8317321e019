package usecase

import (
	"github.com/shopspring/decimal"

	"salary-aggregation-service/internal/salaries/core/domain"
)

// Materialize emits a label and a total for every bucket from the one holding
// req.Start to the one holding req.End. Buckets missing from totals read as
// zero.
//
// The walk is anchored at the bucket start of req.Start, so a partial first
// bucket never pushes the bucket holding req.End out of the series.
func Materialize(req domain.AggregationRequest, totals map[string]decimal.Decimal) (*domain.AggregationResult, error) {
	anchor, err := req.Granularity.Floor(req.Start)
	if err != nil {
		return nil, err
	}

	res := &domain.AggregationResult{
		Dataset: []decimal.Decimal{},
		Labels:  []string{},
	}

	for i := 0; ; i++ {
		current, err := req.Granularity.Step(anchor, i)
		if err != nil {
			return nil, err
		}
		if current.After(req.End) {
			break
		}

		label, err := req.Granularity.Label(current)
		if err != nil {
			return nil, err
		}

		sum, ok := totals[label]
		if !ok {
			sum = decimal.Zero
		}

		res.Labels = append(res.Labels, label)
		res.Dataset = append(res.Dataset, sum)
	}

	return res, nil
}
