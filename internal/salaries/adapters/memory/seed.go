package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"salary-aggregation-service/internal/salaries/core/domain"
)

type seedRecord struct {
	DT    string          `json:"dt"`
	Value decimal.Decimal `json:"value"`
}

// LoadSeedFile reads a JSON array of {"dt": ..., "value": ...} records into
// the repository and returns how many were loaded.
func (r *SalaryRepository) LoadSeedFile(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	return r.LoadSeed(ctx, f)
}

func (r *SalaryRepository) LoadSeed(ctx context.Context, src io.Reader) (int, error) {
	var records []seedRecord
	if err := json.NewDecoder(src).Decode(&records); err != nil {
		return 0, fmt.Errorf("decode seed: %w", err)
	}

	for i, rec := range records {
		ts, err := domain.ParseDateTime(rec.DT)
		if err != nil {
			return i, fmt.Errorf("seed record %d: %w", i, err)
		}

		p := &domain.Payout{ID: uuid.New(), Timestamp: ts, Amount: rec.Value}
		if err := r.InsertPayout(ctx, p); err != nil {
			return i, err
		}
	}

	return len(records), nil
}
