package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"salary-aggregation-service/internal/salaries/core/domain"
	"salary-aggregation-service/internal/salaries/core/ports"
)

var (
	ErrInvalidGroupType = errors.New("invalid group type")
	ErrInvalidRange     = errors.New("invalid date range")
	ErrQueryFailure     = errors.New("query failure")
)

type AggregateInput struct {
	From      time.Time
	To        time.Time
	GroupType string // "hour" / "day" / "month"
}

type AggregateSalariesUseCase struct {
	reader ports.SalaryTotalsReaderPort
}

func NewAggregateSalariesUseCase(reader ports.SalaryTotalsReaderPort) *AggregateSalariesUseCase {
	return &AggregateSalariesUseCase{reader: reader}
}

// Execute validates the input, runs exactly one grouped query and turns the
// sparse totals into a dense, gap-filled series.
func (uc *AggregateSalariesUseCase) Execute(ctx context.Context, in AggregateInput) (*domain.AggregationResult, error) {
	req, err := ValidateAggregation(in)
	if err != nil {
		return nil, err
	}

	rows, err := uc.reader.SumByBucket(ctx, ports.TotalsFilter{
		From:        req.Start,
		To:          req.End,
		Granularity: req.Granularity,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailure, err)
	}

	totals := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		if sum, ok := totals[row.Label]; ok {
			totals[row.Label] = sum.Add(row.Sum)
			continue
		}
		totals[row.Label] = row.Sum
	}

	return Materialize(req, totals)
}

// ValidateAggregation checks the group type first, then requires the range to
// be strictly increasing. Equal bounds are rejected.
func ValidateAggregation(in AggregateInput) (domain.AggregationRequest, error) {
	g, err := domain.ParseGranularity(in.GroupType)
	if err != nil {
		return domain.AggregationRequest{}, fmt.Errorf("%w: %q", ErrInvalidGroupType, in.GroupType)
	}

	if !in.To.After(in.From) {
		return domain.AggregationRequest{}, ErrInvalidRange
	}

	return domain.AggregationRequest{
		Start:       in.From,
		End:         in.To,
		Granularity: g,
	}, nil
}
