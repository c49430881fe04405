// Package queue publishes domain events about filmes, cinemas and sessoes to
// a message broker so other services can react without polling the database.
package queue

import (
	"time"

	"github.com/google/uuid"
)

const (
	ResourceFilme  = "filme"
	ResourceCinema = "cinema"
	ResourceSessao = "sessao"

	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Resource   string    `json:"resource"`
	ResourceID string    `json:"resource_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data,omitempty"`
}

// NewEvent builds an event of type "<resource>.<action>".
func NewEvent(resource, action, resourceID string, data any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       resource + "." + action,
		Resource:   resource,
		ResourceID: resourceID,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
}
