package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"salary-aggregation-service/internal/salaries/core/domain"
	"salary-aggregation-service/internal/salaries/core/ports"
)

var (
	ErrInvalidPayout  = errors.New("invalid payout")
	ErrNegativeAmount = errors.New("amount cannot be negative")
)

type RecordPayoutUseCase struct {
	repo  ports.PayoutRepositoryPort
	newID func() uuid.UUID
}

func NewRecordPayoutUseCase(repo ports.PayoutRepositoryPort) *RecordPayoutUseCase {
	return &RecordPayoutUseCase{repo: repo, newID: uuid.New}
}

type RecordPayoutInput struct {
	Timestamp time.Time
	Amount    decimal.Decimal
}

func (uc *RecordPayoutUseCase) Execute(ctx context.Context, in RecordPayoutInput) (*domain.Payout, error) {
	if err := uc.validateInput(in); err != nil {
		return nil, err
	}

	p := &domain.Payout{
		ID:        uc.newID(),
		Timestamp: domain.Naive(in.Timestamp),
		Amount:    in.Amount,
	}

	if err := uc.repo.InsertPayout(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

type BulkRecordInput struct {
	Payouts []RecordPayoutInput
}

type BulkRecordResult struct {
	Recorded int
}

// BulkRecord validates every payout before storing any of them. A store error
// stops the batch; Recorded tells how many made it.
func (uc *RecordPayoutUseCase) BulkRecord(ctx context.Context, in BulkRecordInput) (BulkRecordResult, error) {
	var res BulkRecordResult

	for _, p := range in.Payouts {
		if err := uc.validateInput(p); err != nil {
			return res, err
		}
	}

	for _, p := range in.Payouts {
		if _, err := uc.Execute(ctx, p); err != nil {
			return res, err
		}
		res.Recorded++
	}

	return res, nil
}

func (uc *RecordPayoutUseCase) validateInput(in RecordPayoutInput) error {
	if in.Timestamp.IsZero() {
		return ErrInvalidPayout
	}

	if in.Amount.IsNegative() {
		return ErrNegativeAmount
	}

	return nil
}
