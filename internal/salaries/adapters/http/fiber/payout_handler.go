package fiber

import (
	"context"
	"errors"
	"net/http"

	"salary-aggregation-service/internal/salaries/core/domain"
	"salary-aggregation-service/internal/salaries/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type RecordPayoutUseCase interface {
	Execute(ctx context.Context, in usecase.RecordPayoutInput) (*domain.Payout, error)
	BulkRecord(ctx context.Context, in usecase.BulkRecordInput) (usecase.BulkRecordResult, error)
}

type PayoutHandler struct {
	recordUC RecordPayoutUseCase
}

func NewPayoutHandler(recordUC RecordPayoutUseCase) *PayoutHandler {
	return &PayoutHandler{recordUC: recordUC}
}

// CreatePayout godoc
// @Summary Record a salary payout
// @Description Stores a single {dt, value} record in the salary collection
// @Tags Salaries
// @Accept json
// @Produce json
// @Param request body RecordPayoutRequest true "Payout"
// @Success 201 {object} PayoutResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /salaries [post]
func (h *PayoutHandler) CreatePayout(c *fiber.Ctx) error {
	var req RecordPayoutRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Detail: detailInvalidJSON})
	}

	input, err := toRecordInput(req)
	if err != nil {
		return c.Status(http.StatusUnprocessableEntity).JSON(ErrorResponse{Detail: "dt: " + err.Error()})
	}

	p, err := h.recordUC.Execute(c.UserContext(), input)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(PayoutResponse{
		ID:    p.ID.String(),
		Dt:    p.Timestamp.Format(domain.LabelLayout),
		Value: p.Amount.InexactFloat64(),
	})
}

// BulkCreatePayouts godoc
// @Summary Bulk record salary payouts
// @Description Validates every payout first, then stores them one by one
// @Tags Salaries
// @Accept json
// @Produce json
// @Param request body BulkRecordPayoutsRequest true "Bulk payout payload"
// @Success 201 {object} BulkRecordPayoutsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /salaries/bulk [post]
func (h *PayoutHandler) BulkCreatePayouts(c *fiber.Ctx) error {
	var req BulkRecordPayoutsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Detail: detailInvalidJSON})
	}

	if len(req.Payouts) == 0 {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Detail: "payouts list is required"})
	}

	inputs := make([]usecase.RecordPayoutInput, len(req.Payouts))
	for i, p := range req.Payouts {
		in, err := toRecordInput(p)
		if err != nil {
			return c.Status(http.StatusUnprocessableEntity).JSON(ErrorResponse{Detail: "dt: " + err.Error()})
		}
		inputs[i] = in
	}

	result, err := h.recordUC.BulkRecord(c.UserContext(), usecase.BulkRecordInput{Payouts: inputs})
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(BulkRecordPayoutsResponse{Recorded: result.Recorded})
}

func (h *PayoutHandler) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidPayout),
		errors.Is(err, usecase.ErrNegativeAmount):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Detail: err.Error()})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{Detail: err.Error()})
	}
}

func toRecordInput(req RecordPayoutRequest) (usecase.RecordPayoutInput, error) {
	ts, err := domain.ParseDateTime(req.Dt)
	if err != nil {
		return usecase.RecordPayoutInput{}, err
	}
	return usecase.RecordPayoutInput{Timestamp: ts, Amount: req.Value}, nil
}
