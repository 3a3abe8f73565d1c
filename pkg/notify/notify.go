// Package notify runs the delivery status notifications callers may request.
//
// Only actions registered here can run. Callers pick one by name; there is
// no way to pass a command line or any other executable payload.
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"octosupply/pkg/logger"
	"octosupply/pkg/supply"
)

// ErrUnknownAction is returned for names outside the allow-list.
var ErrUnknownAction = errors.New("unknown notify action")

// Event describes a delivery status change.
type Event struct {
	DeliveryID     int             `json:"deliveryId"`
	PreviousStatus string          `json:"previousStatus"`
	Status         string          `json:"status"`
	Delivery       supply.Delivery `json:"delivery"`
	At             time.Time       `json:"at"`
}

// Notifier delivers an Event and reports a short human readable outcome.
type Notifier interface {
	Notify(ctx context.Context, ev Event) (string, error)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, ev Event) (string, error)

// Notify calls f.
func (f NotifierFunc) Notify(ctx context.Context, ev Event) (string, error) { return f(ctx, ev) }

// Registry maps action names to notifiers.
type Registry struct {
	actions map[string]Notifier
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{actions: make(map[string]Notifier)}
}

// Register makes n available under name.
func (r *Registry) Register(name string, n Notifier) {
	r.actions[name] = n
}

// Lookup returns the notifier registered under name.
func (r *Registry) Lookup(name string) (Notifier, error) {
	n, ok := r.actions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return n, nil
}

// Names lists registered actions in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.actions))
	for name := range r.actions {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Log writes the event to the service log.
func Log(log *logger.Logger) Notifier {
	return NotifierFunc(func(ctx context.Context, ev Event) (string, error) {
		log.Info(ctx, "delivery status changed",
			"delivery_id", ev.DeliveryID,
			"previous_status", ev.PreviousStatus,
			"status", ev.Status)
		return fmt.Sprintf("logged delivery %d status %s", ev.DeliveryID, ev.Status), nil
	})
}

// publisher is the subset of *redis.Client Publish needs.
type publisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// Publish sends the event as JSON on a Redis pub/sub channel.
func Publish(client publisher, channel string) Notifier {
	return NotifierFunc(func(ctx context.Context, ev Event) (string, error) {
		payload, err := json.Marshal(ev)
		if err != nil {
			return "", fmt.Errorf("encode event: %w", err)
		}
		n, err := client.Publish(ctx, channel, payload).Result()
		if err != nil {
			return "", fmt.Errorf("publish to %s: %w", channel, err)
		}
		return fmt.Sprintf("published delivery %d status %s to %s (%d subscribers)", ev.DeliveryID, ev.Status, channel, n), nil
	})
}
