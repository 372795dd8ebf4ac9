package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"github.com/wasimadildev/begded-planner/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// SequentialIDs returns an id generator yielding prefix-1, prefix-2, ...
func SequentialIDs(prefix string) func() string {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	}
}

// NewTestTransaction builds a valid transaction with a unique id.
func NewTestTransaction(txType models.TransactionType, amount string) models.Transaction {
	n := nextID()
	return models.Transaction{
		ID:       fmt.Sprintf("tx-%d", n),
		Title:    fmt.Sprintf("Test Transaction %d", n),
		Amount:   decimal.RequireFromString(amount),
		Category: "Other",
		Type:     txType,
		Date:     "2024-01-01",
	}
}

// NewTestGoal builds a valid savings goal with a unique id and zero progress.
func NewTestGoal(target string) models.SavingsGoal {
	n := nextID()
	return models.SavingsGoal{
		ID:           fmt.Sprintf("goal-%d", n),
		Title:        fmt.Sprintf("Test Goal %d", n),
		TargetAmount: decimal.RequireFromString(target),
		Deadline:     "2030-12-31",
		Category:     "Travel",
	}
}

// ErrStoreUnavailable is returned by FlakyStore when a failure is armed.
var ErrStoreUnavailable = errors.New("store unavailable")

// FlakyStore is an in-memory key-value store whose reads and writes can be
// made to fail. It records every successful write.
type FlakyStore struct {
	mu        sync.Mutex
	values    map[string]string
	FailGet   bool
	FailSet   bool
	SetCalls  int
	lastWrite string
}

// NewFlakyStore creates an empty FlakyStore.
func NewFlakyStore() *FlakyStore {
	return &FlakyStore{values: make(map[string]string)}
}

func (s *FlakyStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailGet {
		return "", false, ErrStoreUnavailable
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *FlakyStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SetCalls++
	if s.FailSet {
		return ErrStoreUnavailable
	}
	s.values[key] = value
	s.lastWrite = value
	return nil
}

func (s *FlakyStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// Raw returns the value stored under key without failure injection.
func (s *FlakyStore) Raw(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// Put stores value under key without failure injection.
func (s *FlakyStore) Put(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Writes returns the number of Set calls, successful or not.
func (s *FlakyStore) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.SetCalls
}
