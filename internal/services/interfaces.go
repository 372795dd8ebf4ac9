package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/wasimadildev/begded-planner/internal/models"
)

// TransactionServicer owns one session's ordered transaction list.
type TransactionServicer interface {
	Load(ctx context.Context) error
	Add(ctx context.Context, tx models.Transaction) (*models.Transaction, error)
	Delete(ctx context.Context, id string) error
	List() []models.Transaction
	Snapshot() ([]models.Transaction, uint64)
}

// SavingsGoalServicer owns one session's ordered savings goal list and its
// durable copy.
type SavingsGoalServicer interface {
	Load(ctx context.Context) error
	Loaded() bool
	Add(ctx context.Context, goal models.SavingsGoal) (*models.SavingsGoal, error)
	Contribute(ctx context.Context, id string, delta decimal.Decimal) (*models.SavingsGoal, error)
	Delete(ctx context.Context, id string) error
	List() []models.SavingsGoal
}

// AnalyticsServicer derives aggregate totals from a transaction store.
type AnalyticsServicer interface {
	Summary(username string, transactions TransactionServicer) Analytics
	Invalidate(username string)
}

// SessionServicer hands out the per-user stores.
type SessionServicer interface {
	Open(ctx context.Context, user models.User) (*Session, error)
	Get(username string) (*Session, bool)
	Close(username string)
}

// AuthServicer verifies credentials.
type AuthServicer interface {
	Authenticate(username, password string) (*models.User, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(username, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
