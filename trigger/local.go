package trigger

import (
	"context"
	"errors"

	"github.com/dan13ram/mint-queue/app"
	log "github.com/sirupsen/logrus"
)

// Local wakes an in-process runner service.
type Local struct {
	service app.Triggerable
}

func (l *Local) Fire(ctx context.Context) error {
	if l.service == nil {
		return nil
	}
	l.service.Trigger()
	log.Debug("[TRIGGER] Woke local service")
	return nil
}

func NewLocal(service app.Service) *Local {
	triggerable, ok := service.(app.Triggerable)
	if !ok {
		log.Debug("[TRIGGER] Service cannot be triggered")
		return &Local{}
	}
	return &Local{service: triggerable}
}

type Firer interface {
	Fire(ctx context.Context) error
}

// Fanout fires every trigger and joins their errors.
type Fanout []Firer

func (f Fanout) Fire(ctx context.Context) error {
	var errs []error
	for _, t := range f {
		if err := t.Fire(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
