package events

import (
	"context"
	"errors"

	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
)

// Fanout publishes every event to each sink in order and joins their errors.
type Fanout []Sink

func (f Fanout) Publish(ctx context.Context, event model.Event) error {
	var errs []error
	for _, sink := range f {
		if err := sink.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Observed counts deliveries of a sink by event kind and outcome.
type Observed struct {
	Sink    Sink
	Metrics Metrics
}

func (o Observed) Publish(ctx context.Context, event model.Event) error {
	err := o.Sink.Publish(ctx, event)
	o.Metrics.Observe(string(event.Kind), err)
	return err
}
