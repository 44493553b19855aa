package queries

import (
	"context"
	"encoding/json"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/pricing"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetFeeQuoteQueryHandler loads a restaurant's persisted rule-set document,
// parses it and runs the fee calculator against the query's cart facts.
type GetFeeQuoteQueryHandler struct {
	db         *gorm.DB
	calculator services.FeeCalculator
	clock      kernel.Clock
}

// NewGetFeeQuoteQueryHandler creates a handler for fee-quote queries.
func NewGetFeeQuoteQueryHandler(
	db *gorm.DB,
	calculator services.FeeCalculator,
	clock kernel.Clock,
) GetFeeQuoteQueryHandler {
	return GetFeeQuoteQueryHandler{db: db, calculator: calculator, clock: clock}
}

// Handle executes the fee-quote query. The quote is evaluated at the
// clock's current instant; scheduled-order quoting at a future instant is a
// client concern and not supported here.
func (h GetFeeQuoteQueryHandler) Handle(
	ctx context.Context,
	query GetFeeQuoteQuery,
) (GetFeeQuoteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetFeeQuoteQueryResponse{}, err
	}

	var document []byte
	result := h.db.WithContext(ctx).Raw(`
		SELECT rule_set
		FROM restaurants
		WHERE id = ?
	`, query.RestaurantID().Bytes()).Scan(&document)
	if result.Error != nil {
		return GetFeeQuoteQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetFeeQuoteQueryResponse{}, errs.NewObjectNotFoundError(
			"restaurant", query.RestaurantID().String())
	}

	var draft pricing.RuleSetDraft
	if err := json.Unmarshal(document, &draft); err != nil {
		return GetFeeQuoteQueryResponse{}, errs.NewValueIsInvalidErrorWithCause(
			"rule set document", err)
	}

	ruleSet, fieldErrors := draft.Parse()
	if len(fieldErrors) > 0 {
		return GetFeeQuoteQueryResponse{}, errs.NewValueIsInvalidErrorWithCause(
			"rule set document",
			errors.New(fieldErrors[0].Error()),
		)
	}

	quoteContext, err := pricing.NewQuoteContext(
		query.Subtotal(), query.DistanceKm(), h.clock.Now(), query.IsHoliday())
	if err != nil {
		return GetFeeQuoteQueryResponse{}, err
	}

	breakdown, err := h.calculator.Calculate(ruleSet, quoteContext)
	if err != nil {
		return GetFeeQuoteQueryResponse{}, err
	}

	return GetFeeQuoteQueryResponse{
		BaseFee:           breakdown.BaseFee.String(),
		DistanceFee:       breakdown.DistanceFee.String(),
		PeakSurcharge:     breakdown.PeakSurcharge.String(),
		WeekendSurcharge:  breakdown.WeekendSurcharge.String(),
		HolidaySurcharge:  breakdown.HolidaySurcharge.String(),
		MinOrderSurcharge: breakdown.MinOrderSurcharge.String(),
		Total:             breakdown.Total.String(),
		Waived:            breakdown.Waived,
	}, nil
}
