package commands

import (
	"context"
	"log/slog"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/ports"
)

// ChangeOrderStatusCommandHandler handles order lifecycle transitions.
//
// The write is a compare-and-set: the repository update is conditional on
// the status the order was loaded with, so two staff members racing on the
// same order result in exactly one winner. The loser gets a version-invalid
// error and is expected to re-fetch the order and re-evaluate.
//
// After the transaction commits, a status-changed event is published.
// Publishing is best-effort: a broker failure is logged, never surfaced,
// because the state change is already durable.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	clock      kernel.Clock
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	clock kernel.Clock,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
	}
}

// Handle processes the status transition command.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	from := aggregate.Status()
	now := h.clock.Now()

	if err := aggregate.TransitionTo(cmd.Requested(), cmd.Role(), now); err != nil {
		return err
	}

	if err := orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	event := ports.StatusChangedEventOf(aggregate, from, cmd.Role(), now.UTC().Format(time.RFC3339))
	if err := h.publisher.PublishOrderStatusChanged(ctx, event); err != nil {
		slog.ErrorContext(ctx, "failed to publish order status change",
			slog.String("order_id", event.OrderID),
			slog.String("to", event.To),
			slog.Any("error", err))
	}

	return nil
}
