package services

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"

	apperrors "github.com/wasimadildev/begded-planner/internal/errors"
	"github.com/wasimadildev/begded-planner/internal/kvstore"
	"github.com/wasimadildev/begded-planner/internal/logger"
	"github.com/wasimadildev/begded-planner/internal/models"
)

// TransactionsKey is the storage key of the persisted transaction list.
const TransactionsKey = "transactions"

// storeVersions hands out versions that are unique across every store in the
// process, so a (user, version) pair never names two different lists.
var storeVersions atomic.Uint64

// transactionService holds transactions newest-insertion first.
type transactionService struct {
	mu      sync.RWMutex
	items   []models.Transaction
	ids     map[string]struct{}
	version uint64
	kv      kvstore.Store
}

// NewTransactionService creates an empty transaction store. When kv is nil
// the store lives only as long as the session.
func NewTransactionService(kv kvstore.Store) TransactionServicer {
	return &transactionService{
		ids:     make(map[string]struct{}),
		version: storeVersions.Add(1),
		kv:      kv,
	}
}

// Load rehydrates the list from the key-value store when persistence is enabled.
func (s *transactionService) Load(ctx context.Context) error {
	if s.kv == nil {
		return nil
	}

	raw, found, err := s.kv.Get(ctx, TransactionsKey)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrPersistenceRead, err)
	}
	if !found {
		return nil
	}

	var items []models.Transaction
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logger.Get().Warnw("discarding unreadable transactions payload", "error", err)
		return apperrors.Wrap(apperrors.ErrPersistenceRead, err)
	}

	ids := make(map[string]struct{}, len(items))
	for _, tx := range items {
		ids[tx.ID] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.ids = ids
	s.version = storeVersions.Add(1)
	return nil
}

// Add validates tx and inserts it at the head of the list. Ids must be
// unique; a duplicate is rejected without touching the list.
func (s *transactionService) Add(ctx context.Context, tx models.Transaction) (*models.Transaction, error) {
	if err := tx.Validate(); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.ids[tx.ID]; exists {
		return nil, apperrors.ErrDuplicateTransaction
	}

	items := make([]models.Transaction, 0, len(s.items)+1)
	items = append(items, tx)
	s.items = append(items, s.items...)
	s.ids[tx.ID] = struct{}{}
	s.version = storeVersions.Add(1)

	added := tx
	return &added, s.persistLocked(ctx)
}

// Delete removes the transaction with the given id. Unknown ids are ignored.
func (s *transactionService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.ids[id]; !exists {
		return nil
	}

	items := make([]models.Transaction, 0, len(s.items)-1)
	for _, tx := range s.items {
		if tx.ID != id {
			items = append(items, tx)
		}
	}
	s.items = items
	delete(s.ids, id)
	s.version = storeVersions.Add(1)

	return s.persistLocked(ctx)
}

// List returns a copy of the transactions in store order.
func (s *transactionService) List() []models.Transaction {
	items, _ := s.Snapshot()
	return items
}

// Snapshot returns a copy of the list together with its current version.
// The version changes on every mutation.
func (s *transactionService) Snapshot() ([]models.Transaction, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.Transaction, len(s.items))
	copy(items, s.items)
	return items, s.version
}

// persistLocked writes the whole list. The caller holds s.mu, so writes are
// issued one at a time in mutation order. A failed write leaves the in-memory
// list as mutated.
func (s *transactionService) persistLocked(ctx context.Context) error {
	if s.kv == nil {
		return nil
	}

	items := s.items
	if items == nil {
		items = []models.Transaction{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrPersistenceWrite, err)
	}
	if err := s.kv.Set(ctx, TransactionsKey, string(data)); err != nil {
		logger.Get().Errorw("failed to persist transactions", "error", err, "count", len(items))
		return apperrors.Wrap(apperrors.ErrPersistenceWrite, err)
	}
	return nil
}
