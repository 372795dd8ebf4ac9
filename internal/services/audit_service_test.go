package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/wasimadildev/begded-planner/internal/events"
	"github.com/wasimadildev/begded-planner/internal/models"
	"github.com/wasimadildev/begded-planner/internal/testutil"
)

type recordingPublisher struct {
	mu      sync.Mutex
	changes []events.Change
	err     error
}

var _ events.Publisher = (*recordingPublisher)(nil)

func (p *recordingPublisher) Publish(_ context.Context, change events.Change) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.changes = append(p.changes, change)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func TestAuditLog(t *testing.T) {
	t.Run("writes_row_and_publishes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		pub := &recordingPublisher{}
		svc := NewAuditService(db, pub)

		svc.Log("alice", "CREATE", "savings_goal", "g1", "127.0.0.1", map[string]interface{}{"title": "Trip"})

		var logs []models.AuditLog
		if err := db.Find(&logs).Error; err != nil {
			t.Fatalf("query audit logs: %v", err)
		}
		if len(logs) != 1 {
			t.Fatalf("expected 1 audit log, got %d", len(logs))
		}
		entry := logs[0]
		if entry.ID == "" || entry.Username != "alice" || entry.Action != "CREATE" || entry.ResourceID != "g1" {
			t.Errorf("unexpected audit log %+v", entry)
		}
		var changes map[string]interface{}
		if err := json.Unmarshal([]byte(entry.Changes), &changes); err != nil || changes["title"] != "Trip" {
			t.Errorf("unexpected changes %q", entry.Changes)
		}

		if len(pub.changes) != 1 || pub.changes[0].ResourceType != "savings_goal" {
			t.Errorf("expected one published change, got %+v", pub.changes)
		}
	})

	t.Run("nil_db_still_publishes", func(t *testing.T) {
		pub := &recordingPublisher{}
		svc := NewAuditService(nil, pub)
		svc.Log("bob", "DELETE", "transaction", "t1", "", nil)
		if len(pub.changes) != 1 {
			t.Errorf("expected one published change, got %d", len(pub.changes))
		}
	})

	t.Run("publish_failure_is_swallowed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuditService(db, &recordingPublisher{err: errors.New("broker down")})

		svc.Log("bob", "DELETE", "transaction", "t1", "", nil)

		var count int64
		db.Model(&models.AuditLog{}).Count(&count)
		if count != 1 {
			t.Errorf("expected audit row despite publish failure, got %d", count)
		}
	})

	t.Run("nil_publisher_defaults_to_nop", func(t *testing.T) {
		svc := NewAuditService(nil, nil)
		svc.Log("bob", "DELETE", "transaction", "t1", "", nil)
	})
}
