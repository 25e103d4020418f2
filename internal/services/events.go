package services

import (
	"encoding/json"
	"log"
	"time"
)

// EventPublisher sends a serialized catalog event to the message broker.
// Implemented by pkg/rabbitmq.Client; services accept nil when no broker is
// configured.
type EventPublisher interface {
	Publish(body []byte) error
}

// CatalogEvent describes a change to a catalog entity, e.g.
// {"event":"seller.created","entity":"seller","id":"..."}.
type CatalogEvent struct {
	Event      string    `json:"event"`
	Entity     string    `json:"entity"`
	ID         string    `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// publishEvent emits a catalog event, fire-and-forget. Publishing problems are
// logged and never surfaced to the caller: the persistence write already
// succeeded and the API response must not depend on the broker.
func publishEvent(publisher EventPublisher, event, entity, id string) {
	if publisher == nil {
		return
	}

	body, err := json.Marshal(CatalogEvent{
		Event:      event,
		Entity:     entity,
		ID:         id,
		OccurredAt: time.Now(),
	})
	if err != nil {
		log.Printf("Failed to marshal %s event for %s %s: %v", event, entity, id, err)
		return
	}

	if err := publisher.Publish(body); err != nil {
		log.Printf("Warning: failed to publish %s event for %s %s: %v", event, entity, id, err)
	}
}
