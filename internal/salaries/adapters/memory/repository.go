package memory

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"salary-aggregation-service/internal/salaries/core/domain"
	"salary-aggregation-service/internal/salaries/core/ports"
)

// SalaryRepository keeps payouts in memory. Data is lost on restart.
// Useful for tests and local runs.
type SalaryRepository struct {
	mu      sync.RWMutex
	payouts []domain.Payout
}

func NewSalaryRepository() *SalaryRepository {
	return &SalaryRepository{
		payouts: make([]domain.Payout, 0, 1024),
	}
}

var (
	_ ports.SalaryTotalsReaderPort = (*SalaryRepository)(nil)
	_ ports.PayoutRepositoryPort   = (*SalaryRepository)(nil)
)

func (r *SalaryRepository) InsertPayout(ctx context.Context, p *domain.Payout) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.payouts = append(r.payouts, *p)
	return nil
}

// SumByBucket groups the payouts in [From, To] by bucket label.
func (r *SalaryRepository) SumByBucket(ctx context.Context, f ports.TotalsFilter) ([]domain.BucketTotal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	sums := make(map[string]decimal.Decimal)
	var order []string

	for _, p := range r.payouts {
		if p.Timestamp.Before(f.From) || p.Timestamp.After(f.To) {
			continue
		}

		label, err := f.Granularity.Label(p.Timestamp)
		if err != nil {
			return nil, err
		}

		sum, ok := sums[label]
		if !ok {
			order = append(order, label)
			sum = decimal.Zero
		}
		sums[label] = sum.Add(p.Amount)
	}

	totals := make([]domain.BucketTotal, 0, len(order))
	for _, label := range order {
		totals = append(totals, domain.BucketTotal{Label: label, Sum: sums[label]})
	}

	return totals, nil
}

func (r *SalaryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.payouts)
}
