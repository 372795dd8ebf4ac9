package services

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/wasimadildev/begded-planner/internal/events"
	"github.com/wasimadildev/begded-planner/internal/logger"
	"github.com/wasimadildev/begded-planner/internal/models"
)

const auditPublishTimeout = 5 * time.Second

// auditService records mutations in the audit_logs table and forwards them
// as change events.
type auditService struct {
	db        *gorm.DB
	publisher events.Publisher
}

// NewAuditService creates a new AuditServicer. A nil db skips the table
// write; a nil publisher skips the event.
func NewAuditService(db *gorm.DB, publisher events.Publisher) AuditServicer {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &auditService{db: db, publisher: publisher}
}

// Log records an audit event. Errors are logged but never propagate
// to avoid disrupting the main operation.
func (s *auditService) Log(username, action, resourceType, resourceID, ipAddress string, changes map[string]interface{}) {
	log := logger.Get()

	if s.db != nil {
		var changesJSON string
		if changes != nil {
			data, err := json.Marshal(changes)
			if err != nil {
				log.Errorw("failed to marshal audit log changes", "error", err, "action", action)
				changesJSON = "{}"
			} else {
				changesJSON = string(data)
			}
		}

		entry := &models.AuditLog{
			Username:     username,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			IPAddress:    ipAddress,
			Changes:      changesJSON,
		}
		if err := s.db.Create(entry).Error; err != nil {
			log.Errorw("failed to create audit log entry",
				"error", err,
				"username", username,
				"action", action,
				"resource_type", resourceType,
				"resource_id", resourceID,
			)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), auditPublishTimeout)
	defer cancel()
	change := events.NewChange(username, action, resourceType, resourceID, changes)
	if err := s.publisher.Publish(ctx, change); err != nil {
		log.Warnw("failed to publish change event", "error", err, "action", action, "resource_id", resourceID)
	}
}
