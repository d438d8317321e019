package fiber

import "github.com/shopspring/decimal"

// AggregateRequest represents the salary aggregation query
// @Description Salary aggregation query
type AggregateRequest struct {
	DtFrom    string `json:"dt_from" example:"2022-09-01T00:00:00"`
	DtUpto    string `json:"dt_upto" example:"2022-12-31T23:59:00"`
	GroupType string `json:"group_type" example:"month" enums:"hour,day,month"`
}

type AggregateResponse struct {
	Dataset []float64 `json:"dataset"`
	Labels  []string  `json:"labels"`
}

type ErrorResponse struct {
	Detail string `json:"detail" example:"Invalid group type. Must be 'hour', 'day' or 'month'."`
}

// RecordPayoutRequest represents a single salary payout
// @Description Salary payout DTO
type RecordPayoutRequest struct {
	Dt    string          `json:"dt" example:"2022-09-01T10:00:00"`
	Value decimal.Decimal `json:"value" swaggertype:"number" example:"1500"`
}

type PayoutResponse struct {
	ID    string  `json:"id"`
	Dt    string  `json:"dt"`
	Value float64 `json:"value"`
}

type BulkRecordPayoutsRequest struct {
	Payouts []RecordPayoutRequest `json:"payouts"`
}

type BulkRecordPayoutsResponse struct {
	Recorded int `json:"recorded"`
}
