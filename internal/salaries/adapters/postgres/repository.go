package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"salary-aggregation-service/internal/salaries/core/domain"
	"salary-aggregation-service/internal/salaries/core/ports"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

const DefaultTable = "salaries"

// to_char patterns producing the same labels as domain.Granularity.Label.
var bucketPatterns = map[domain.Granularity]string{
	domain.Hour:  `YYYY-MM-DD"T"HH24":00:00"`,
	domain.Day:   `YYYY-MM-DD"T00:00:00"`,
	domain.Month: `YYYY-MM"-01T00:00:00"`,
}

// SalaryRepository stores payouts in a flat table (id, dt, value). dt is a
// TIMESTAMP WITHOUT TIME ZONE, so bound times are compared by wall clock.
type SalaryRepository struct {
	db    DB
	table string
}

func NewSalaryRepository(db DB, table string) *SalaryRepository {
	if table == "" {
		table = DefaultTable
	}
	return &SalaryRepository{db: db, table: table}
}

var (
	_ ports.SalaryTotalsReaderPort = (*SalaryRepository)(nil)
	_ ports.PayoutRepositoryPort   = (*SalaryRepository)(nil)
)

func (r *SalaryRepository) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
    id    UUID PRIMARY KEY,
    dt    TIMESTAMP WITHOUT TIME ZONE NOT NULL,
    value NUMERIC NOT NULL
)`, pq.QuoteIdentifier(r.table)),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s (dt)`,
			pq.QuoteIdentifier(r.table+"_dt_idx"), pq.QuoteIdentifier(r.table)),
	}

	for _, stmt := range stmts {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (r *SalaryRepository) SumByBucket(ctx context.Context, f ports.TotalsFilter) ([]domain.BucketTotal, error) {
	pattern, ok := bucketPatterns[f.Granularity]
	if !ok {
		// usecase validation should have caught this already
		return nil, fmt.Errorf("unsupported granularity: %s", f.Granularity)
	}

	query := fmt.Sprintf(`
SELECT
    to_char(dt, $3) AS bucket,
    SUM(value) AS total
FROM %s
WHERE dt BETWEEN $1 AND $2
GROUP BY bucket
`, pq.QuoteIdentifier(r.table))

	rows, err := r.db.QueryContext(ctx, query, f.From, f.To, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []domain.BucketTotal

	for rows.Next() {
		var label string
		var sum decimal.Decimal

		if err := rows.Scan(&label, &sum); err != nil {
			return nil, err
		}

		totals = append(totals, domain.BucketTotal{Label: label, Sum: sum})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return totals, nil
}

func (r *SalaryRepository) InsertPayout(ctx context.Context, p *domain.Payout) error {
	query := fmt.Sprintf(`INSERT INTO %s (id, dt, value) VALUES ($1, $2, $3)`, pq.QuoteIdentifier(r.table))

	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Timestamp,
		p.Amount,
	)
	return err
}
