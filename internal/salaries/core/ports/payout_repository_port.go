package ports

import (
	"context"

	"salary-aggregation-service/internal/salaries/core/domain"
)

type PayoutRepositoryPort interface {
	InsertPayout(ctx context.Context, p *domain.Payout) error
}
