package notify

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/kingdom-randomizer/internal/errors"
)

// Context keys set on published events
const (
	ContextSessionID = "session_id"
	ContextKingdomID = "kingdom_id"
	ContextCardIDs   = "card_ids"
	ContextError     = "error"
	ContextErrorCode = "error_code"
)

// Config holds the dependencies for the bus notifier
type Config struct {
	EventBus events.EventBus
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.EventBus == nil {
		vb.RequiredField("event_bus")
	}
	return vb.Build()
}

// BusNotifier publishes notifications on an rpg-toolkit event bus
type BusNotifier struct {
	bus events.EventBus
}

// Ensure BusNotifier implements Notifier
var _ Notifier = (*BusNotifier)(nil)

// NewBusNotifier creates a notifier publishing to cfg.EventBus
func NewBusNotifier(cfg *Config) (*BusNotifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &BusNotifier{bus: cfg.EventBus}, nil
}

// Notify publishes n. Publish errors are logged and dropped.
func (b *BusNotifier) Notify(ctx context.Context, n Notification) {
	var source core.Entity
	if n.Kingdom != nil {
		source = n.Kingdom
	}

	event := events.NewGameEvent(n.Topic(), source, nil)
	event.Context().Set(ContextSessionID, n.SessionID)
	if n.Kingdom != nil {
		event.Context().Set(ContextKingdomID, n.Kingdom.ID)
		event.Context().Set(ContextCardIDs, n.Kingdom.CardIDs())
	}
	if n.Err != nil {
		event.Context().Set(ContextError, n.Err.Error())
		event.Context().Set(ContextErrorCode, string(errors.GetCode(n.Err)))
	}

	if n.Failed {
		slog.Warn("kingdom operation failed",
			"event", n.Type,
			"session_id", n.SessionID,
			"code", errors.GetCode(n.Err),
			"error", n.Err)
	} else {
		slog.Info("kingdom operation succeeded",
			"event", n.Type,
			"session_id", n.SessionID)
	}

	if err := b.bus.Publish(ctx, event); err != nil {
		slog.Error("failed to publish notification",
			"topic", n.Topic(),
			"error", err)
	}
}

// Subscribe registers fn for notifications of eventType, both successful and
// failed. It returns the subscription ids.
func (b *BusNotifier) Subscribe(eventType EventType, fn events.HandlerFunc) []string {
	base := Notification{Type: eventType}
	failed := Notification{Type: eventType, Failed: true}
	return []string{
		b.bus.SubscribeFunc(base.Topic(), 0, fn),
		b.bus.SubscribeFunc(failed.Topic(), 0, fn),
	}
}

// Unsubscribe removes subscriptions returned by Subscribe
func (b *BusNotifier) Unsubscribe(ids ...string) error {
	for _, id := range ids {
		if err := b.bus.Unsubscribe(id); err != nil {
			return errors.Wrapf(err, "failed to unsubscribe %s", id)
		}
	}
	return nil
}

// Nop discards every notification
type Nop struct{}

// Notify does nothing
func (Nop) Notify(context.Context, Notification) {}
