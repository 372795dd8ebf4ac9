// Package events publishes change notifications for store mutations.
package events

import (
	"context"
	"encoding/json"
	"time"
)

// Change is emitted after a transaction or savings goal is mutated.
type Change struct {
	Username     string                 `json:"username"`
	Action       string                 `json:"action"`
	ResourceType string                 `json:"resource_type"`
	ResourceID   string                 `json:"resource_id"`
	Changes      map[string]interface{} `json:"changes,omitempty"`
	Timestamp    time.Time              `json:"timestamp"`
}

// NewChange creates a change stamped with the current time.
func NewChange(username, action, resourceType, resourceID string, changes map[string]interface{}) Change {
	return Change{
		Username:     username,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Changes:      changes,
		Timestamp:    time.Now().UTC(),
	}
}

// ToJSON converts the change to JSON bytes
func (c Change) ToJSON() ([]byte, error) {
	return json.Marshal(c)
}

// ChangeFromJSON decodes a change published by this package.
func ChangeFromJSON(data []byte) (Change, error) {
	var c Change
	err := json.Unmarshal(data, &c)
	return c, err
}

// Publisher delivers changes to interested consumers.
type Publisher interface {
	Publish(ctx context.Context, change Change) error
	Close() error
}

// NopPublisher drops every change. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Change) error { return nil }
func (NopPublisher) Close() error                         { return nil }
