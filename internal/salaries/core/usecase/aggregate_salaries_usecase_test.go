package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"salary-aggregation-service/internal/salaries/core/domain"
	"salary-aggregation-service/internal/salaries/core/ports"
	"salary-aggregation-service/internal/salaries/core/usecase"
)

// fakeTotalsReader fakes SalaryTotalsReaderPort for tests.
type fakeTotalsReader struct {
	SumFn      func(ctx context.Context, f ports.TotalsFilter) ([]domain.BucketTotal, error)
	lastFilter ports.TotalsFilter
	calls      int
}

func (f *fakeTotalsReader) SumByBucket(ctx context.Context, flt ports.TotalsFilter) ([]domain.BucketTotal, error) {
	f.calls++
	f.lastFilter = flt
	if f.SumFn != nil {
		return f.SumFn(ctx, flt)
	}
	return nil, nil
}

func at(s string) time.Time {
	t, err := time.Parse(domain.LabelLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func floats(ds []decimal.Decimal) []float64 {
	out := make([]float64, len(ds))
	for i, d := range ds {
		out[i] = d.InexactFloat64()
	}
	return out
}

// ------------------------------------------------------------
// SUCCESS: hourly scenario with a gap at the first bucket
// ------------------------------------------------------------

func TestAggregateSalaries_HourScenario(t *testing.T) {
	reader := &fakeTotalsReader{
		SumFn: func(ctx context.Context, flt ports.TotalsFilter) ([]domain.BucketTotal, error) {
			return []domain.BucketTotal{
				{Label: "2021-12-31T04:00:00", Sum: decimal.NewFromInt(512)},
				{Label: "2021-12-31T03:00:00", Sum: decimal.NewFromInt(295)},
			}, nil
		},
	}

	uc := usecase.NewAggregateSalariesUseCase(reader)

	out, err := uc.Execute(context.Background(), usecase.AggregateInput{
		From:      at("2021-12-31T02:00:00"),
		To:        at("2021-12-31T04:00:00"),
		GroupType: "hour",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantLabels := []string{"2021-12-31T02:00:00", "2021-12-31T03:00:00", "2021-12-31T04:00:00"}
	if !reflect.DeepEqual(out.Labels, wantLabels) {
		t.Fatalf("unexpected labels: %v", out.Labels)
	}
	if got := floats(out.Dataset); !reflect.DeepEqual(got, []float64{0, 295, 512}) {
		t.Fatalf("unexpected dataset: %v", got)
	}

	if reader.calls != 1 {
		t.Fatalf("expected exactly one query, got %d", reader.calls)
	}
	if reader.lastFilter.Granularity != domain.Hour {
		t.Fatalf("expected granularity=hour, got %s", reader.lastFilter.Granularity)
	}
	if !reader.lastFilter.From.Equal(at("2021-12-31T02:00:00")) || !reader.lastFilter.To.Equal(at("2021-12-31T04:00:00")) {
		t.Fatalf("unexpected filter range: %+v", reader.lastFilter)
	}
}

// ------------------------------------------------------------
// SUCCESS: duplicate labels from the store are summed
// ------------------------------------------------------------

func TestAggregateSalaries_DuplicateLabelsSummed(t *testing.T) {
	reader := &fakeTotalsReader{
		SumFn: func(ctx context.Context, flt ports.TotalsFilter) ([]domain.BucketTotal, error) {
			return []domain.BucketTotal{
				{Label: "2022-09-01T00:00:00", Sum: decimal.RequireFromString("10.25")},
				{Label: "2022-09-01T00:00:00", Sum: decimal.RequireFromString("0.5")},
			}, nil
		},
	}

	uc := usecase.NewAggregateSalariesUseCase(reader)

	out, err := uc.Execute(context.Background(), usecase.AggregateInput{
		From:      at("2022-09-01T00:00:00"),
		To:        at("2022-09-02T00:00:00"),
		GroupType: "day",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := floats(out.Dataset); !reflect.DeepEqual(got, []float64{10.75, 0}) {
		t.Fatalf("unexpected dataset: %v", got)
	}
}

// ------------------------------------------------------------
// IDEMPOTENCE
// ------------------------------------------------------------

func TestAggregateSalaries_Idempotent(t *testing.T) {
	reader := &fakeTotalsReader{
		SumFn: func(ctx context.Context, flt ports.TotalsFilter) ([]domain.BucketTotal, error) {
			return []domain.BucketTotal{
				{Label: "2022-10-01T00:00:00", Sum: decimal.NewFromInt(300)},
			}, nil
		},
	}

	uc := usecase.NewAggregateSalariesUseCase(reader)
	in := usecase.AggregateInput{
		From:      at("2022-09-01T00:00:00"),
		To:        at("2022-12-31T23:59:00"),
		GroupType: "month",
	}

	first, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first.Labels, second.Labels) || !reflect.DeepEqual(floats(first.Dataset), floats(second.Dataset)) {
		t.Fatalf("results differ: %+v vs %+v", first, second)
	}
	if got := floats(first.Dataset); !reflect.DeepEqual(got, []float64{0, 300, 0, 0}) {
		t.Fatalf("unexpected dataset: %v", got)
	}
}

// ------------------------------------------------------------
// VALIDATION: invalid group type, no query issued
// ------------------------------------------------------------

func TestAggregateSalaries_InvalidGroupType(t *testing.T) {
	reader := &fakeTotalsReader{}
	uc := usecase.NewAggregateSalariesUseCase(reader)

	out, err := uc.Execute(context.Background(), usecase.AggregateInput{
		From:      at("2022-09-01T00:00:00"),
		To:        at("2022-12-31T23:59:00"),
		GroupType: "invalid_type",
	})
	if !errors.Is(err, usecase.ErrInvalidGroupType) {
		t.Fatalf("expected ErrInvalidGroupType, got %v", err)
	}
	if out != nil {
		t.Fatalf("expected nil result on error")
	}
	if reader.calls != 0 {
		t.Fatalf("repository should not be called on invalid group type")
	}
}

// ------------------------------------------------------------
// VALIDATION: equal and reversed bounds
// ------------------------------------------------------------

func TestAggregateSalaries_InvalidRange(t *testing.T) {
	cases := map[string]usecase.AggregateInput{
		"equal": {
			From:      at("2022-09-01T00:00:00"),
			To:        at("2022-09-01T00:00:00"),
			GroupType: "day",
		},
		"reversed": {
			From:      at("2022-09-01T00:00:00"),
			To:        at("2022-08-31T23:59:00"),
			GroupType: "day",
		},
	}

	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			reader := &fakeTotalsReader{}
			uc := usecase.NewAggregateSalariesUseCase(reader)

			_, err := uc.Execute(context.Background(), in)
			if !errors.Is(err, usecase.ErrInvalidRange) {
				t.Fatalf("expected ErrInvalidRange, got %v", err)
			}
			if reader.calls != 0 {
				t.Fatalf("repository should not be called on invalid range")
			}
		})
	}
}

func TestValidateAggregation_GroupTypeCheckedFirst(t *testing.T) {
	_, err := usecase.ValidateAggregation(usecase.AggregateInput{
		From:      at("2022-09-01T00:00:00"),
		To:        at("2022-09-01T00:00:00"),
		GroupType: "week",
	})
	if !errors.Is(err, usecase.ErrInvalidGroupType) {
		t.Fatalf("expected ErrInvalidGroupType, got %v", err)
	}
}

// ------------------------------------------------------------
// REPOSITORY ERROR
// ------------------------------------------------------------

func TestAggregateSalaries_QueryFailure(t *testing.T) {
	reader := &fakeTotalsReader{
		SumFn: func(ctx context.Context, f ports.TotalsFilter) ([]domain.BucketTotal, error) {
			return []domain.BucketTotal{{Label: "x", Sum: decimal.NewFromInt(1)}}, errors.New("db failure")
		},
	}

	uc := usecase.NewAggregateSalariesUseCase(reader)

	out, err := uc.Execute(context.Background(), usecase.AggregateInput{
		From:      at("2022-09-01T00:00:00"),
		To:        at("2022-09-02T00:00:00"),
		GroupType: "day",
	})
	if !errors.Is(err, usecase.ErrQueryFailure) {
		t.Fatalf("expected ErrQueryFailure, got %v", err)
	}
	if !strings.Contains(err.Error(), "db failure") {
		t.Fatalf("expected raw error text to be kept, got %q", err.Error())
	}
	if out != nil {
		t.Fatalf("expected nil result on error")
	}
}
