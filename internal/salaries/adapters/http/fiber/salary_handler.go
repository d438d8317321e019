package fiber

import (
	"context"
	"errors"
	"log"
	"net/http"

	"salary-aggregation-service/internal/salaries/core/domain"
	"salary-aggregation-service/internal/salaries/core/usecase"

	"github.com/gofiber/fiber/v2"
)

const (
	detailInvalidGroupType = "Invalid group type. Must be 'hour', 'day' or 'month'."
	detailInvalidRange     = "Invalid date range. dt_upto must be later than dt_from."
	detailInvalidJSON      = "Invalid JSON body."
)

type AggregateSalariesUseCase interface {
	Execute(ctx context.Context, in usecase.AggregateInput) (*domain.AggregationResult, error)
}

type SalaryHandler struct {
	uc AggregateSalariesUseCase
}

func NewSalaryHandler(uc AggregateSalariesUseCase) *SalaryHandler {
	return &SalaryHandler{uc: uc}
}

// Aggregate godoc
// @Summary Aggregate salaries by period
// @Description Returns a gap-filled series of salary totals, one per hour/day/month bucket in [dt_from, dt_upto]
// @Tags Salaries
// @Accept json
// @Produce json
// @Param request body AggregateRequest true "Aggregation query"
// @Success 200 {object} AggregateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /salaries/aggregate [post]
func (h *SalaryHandler) Aggregate(c *fiber.Ctx) error {
	var req AggregateRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Detail: detailInvalidJSON})
	}

	from, err := domain.ParseDateTime(req.DtFrom)
	if err != nil {
		return c.Status(http.StatusUnprocessableEntity).JSON(ErrorResponse{Detail: "dt_from: " + err.Error()})
	}
	upto, err := domain.ParseDateTime(req.DtUpto)
	if err != nil {
		return c.Status(http.StatusUnprocessableEntity).JSON(ErrorResponse{Detail: "dt_upto: " + err.Error()})
	}

	res, err := h.uc.Execute(c.UserContext(), usecase.AggregateInput{
		From:      from,
		To:        upto,
		GroupType: req.GroupType,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidGroupType):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Detail: detailInvalidGroupType})
		case errors.Is(err, usecase.ErrInvalidRange):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Detail: detailInvalidRange})
		default:
			log.Printf("salary aggregation failed: %v", err)
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{Detail: err.Error()})
		}
	}

	resp := AggregateResponse{
		Dataset: make([]float64, 0, len(res.Dataset)),
		Labels:  res.Labels,
	}
	for _, sum := range res.Dataset {
		resp.Dataset = append(resp.Dataset, sum.InexactFloat64())
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// Health godoc
// @Summary Liveness probe
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func Health(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{"status": "ok"})
}
