package eventbus

import (
	"context"
	"errors"
	"fmt"

	"github.com/grachmannico95/ledger-engine/internal/domain"
	"github.com/grachmannico95/ledger-engine/internal/ledger"
	"github.com/grachmannico95/ledger-engine/pkg/logger"
	"github.com/grachmannico95/ledger-engine/pkg/retry"
)

// ActionConsumer applies live action events to a shared ledger in the order
// they were published. It always runs on a single worker: a dispute must never
// overtake the deposit it refers to.
type ActionConsumer struct {
	engine ledger.Processor
	repo   domain.Repository
	logger *logger.Logger
}

func NewActionConsumer(engine ledger.Processor, repo domain.Repository, log *logger.Logger) *ActionConsumer {
	return &ActionConsumer{
		engine: engine,
		repo:   repo,
		logger: log,
	}
}

func (ac *ActionConsumer) Consume(ctx context.Context, event Event) error {
	processed, err := ac.repo.IsEventProcessed(ctx, event.ID)
	if err != nil {
		ac.logger.Error(ctx, "Failed to check event processed status",
			"event_id", event.ID,
			"error", err,
		)
		return err
	}

	if processed {
		ac.logger.Debug(ctx, "Event already processed, skipping",
			"event_id", event.ID,
		)
		return nil
	}

	payload, ok := event.Payload.(ActionEvent)
	if !ok {
		ac.logger.Error(ctx, "Invalid payload type for action event",
			"event_id", event.ID,
		)
		return retry.Permanent(fmt.Errorf("invalid payload type %T", event.Payload))
	}

	// Mark first: a replayed event must never apply the same action twice.
	err = ac.repo.MarkEventProcessed(ctx, event.ID)
	if errors.Is(err, domain.ErrDuplicateEvent) {
		return nil
	}
	if err != nil {
		ac.logger.Error(ctx, "Failed to mark event as processed",
			"event_id", event.ID,
			"error", err,
		)
		return err
	}

	action := payload.Action
	err = ac.engine.Process(ctx, action)
	if err != nil {
		ac.logger.Warn(ctx, "Action rejected",
			"event_id", event.ID,
			"type", action.Kind,
			"client", action.ClientID,
			"tx", action.TransactionID,
			"error", err,
		)
		return retry.Permanent(err)
	}

	ac.logger.Debug(ctx, "Action applied",
		"event_id", event.ID,
		"type", action.Kind,
		"client", action.ClientID,
		"tx", action.TransactionID,
	)

	return nil
}

func (ac *ActionConsumer) GetWorkerCount() int {
	return 1
}
