// Package notify reports randomization outcomes to observers. Delivery is
// fire-and-forget: a failing observer never changes the outcome of the
// operation that triggered it.
package notify

//go:generate mockgen -destination=mock/mock_notifier.go -package=notifymock github.com/KirkDiggler/kingdom-randomizer/internal/notify Notifier

import (
	"context"

	"github.com/KirkDiggler/kingdom-randomizer/internal/entities"
)

// EventType names the operation that produced a notification
type EventType string

// Event types
const (
	EventRandomizeKingdom   EventType = "randomize_kingdom"
	EventRandomizePartial   EventType = "randomize_partial"
	EventRandomizeSupply    EventType = "randomize_supply"
	EventRandomizeAddons    EventType = "randomize_addons"
	EventLoadFullKingdom    EventType = "load_full_kingdom_from_url"
	EventLoadPartialKingdom EventType = "load_partial_kingdom_from_url"
)

// Topic prefix for events published on the bus
const topicPrefix = "kingdom."

// Notification describes one finished operation
type Notification struct {
	Type      EventType
	Failed    bool
	SessionID string

	// Kingdom is the resulting kingdom on success
	Kingdom *entities.Kingdom

	// Err is set when Failed is true
	Err error
}

// Topic returns the bus topic for the notification
func (n Notification) Topic() string {
	topic := topicPrefix + string(n.Type)
	if n.Failed {
		topic += ".failed"
	}
	return topic
}

// Notifier delivers notifications
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}
