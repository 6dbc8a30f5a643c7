package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dan13ram/mint-queue/app"
	"github.com/dan13ram/mint-queue/models"
	"github.com/dan13ram/mint-queue/queue"
	log "github.com/sirupsen/logrus"
)

var ErrNotActionable = errors.New("payment event does not request a mint")

// Trigger asks the dispatcher to advance the queue now.
type Trigger interface {
	Fire(ctx context.Context) error
}

type EnqueueHandler struct {
	store           queue.Store
	trigger         Trigger
	defaultContract string
}

// Enqueue records a mint request for a verified payment. A redelivered
// payment returns the existing record with created set to false. A paid
// event that fails validation is stored as a failed record so the gateway
// stops redelivering it; without an event id it is returned as
// ErrInvalidEvent.
func (h *EnqueueHandler) Enqueue(ctx context.Context, event *Event) (*models.MintRequest, bool, error) {
	if !event.Actionable() {
		app.Metrics.IncEnqueue("ignored")
		return nil, false, ErrNotActionable
	}
	if err := event.Validate(); err != nil {
		if strings.TrimSpace(event.EventID) == "" {
			app.Metrics.IncEnqueue("invalid")
			return nil, false, err
		}
		return h.reject(ctx, event, err)
	}

	req := event.MintRequest(h.defaultContract)
	logger := log.WithFields(log.Fields{"event_id": event.EventID, "external_ref": req.ExternalRef})

	record, created, err := h.store.InsertIfAbsent(ctx, req)
	if err != nil {
		app.Metrics.IncEnqueue("error")
		return nil, false, fmt.Errorf("error enqueueing mint request: %w", err)
	}

	if !created {
		app.Metrics.IncEnqueue("duplicate")
		logger.WithField("request_id", record.RequestID()).Info("[ENQUEUE] ", queue.ErrDuplicateRequest)
		return record, false, nil
	}

	app.Metrics.IncEnqueue("created")
	logger.WithField("request_id", record.RequestID()).Info("[ENQUEUE] Enqueued mint request")

	if h.trigger != nil {
		if err := h.trigger.Fire(ctx); err != nil {
			logger.Warn("[ENQUEUE] Error triggering dispatch: ", err)
		}
	}

	return record, true, nil
}

func (h *EnqueueHandler) reject(ctx context.Context, event *Event, reason error) (*models.MintRequest, bool, error) {
	req := event.RejectedRequest(reason)
	logger := log.WithFields(log.Fields{"event_id": event.EventID, "external_ref": req.ExternalRef})

	record, created, err := h.store.InsertIfAbsent(ctx, req)
	if err != nil {
		app.Metrics.IncEnqueue("error")
		return nil, false, fmt.Errorf("error recording rejected payment: %w", err)
	}

	app.Metrics.IncEnqueue("rejected")
	if created {
		logger.WithField("request_id", record.RequestID()).Warn("[ENQUEUE] Rejected payment event: ", reason)
	}
	return record, created, nil
}

func NewEnqueueHandler(store queue.Store, trigger Trigger) *EnqueueHandler {
	return &EnqueueHandler{
		store:           store,
		trigger:         trigger,
		defaultContract: app.Config.Ethereum.MintContractAddress,
	}
}
