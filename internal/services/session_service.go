package services

import (
	"context"
	"sync"

	"github.com/wasimadildev/begded-planner/internal/kvstore"
	"github.com/wasimadildev/begded-planner/internal/logger"
	"github.com/wasimadildev/begded-planner/internal/models"
)

// Session is the state owned by one authenticated user.
type Session struct {
	User         models.User
	Transactions TransactionServicer
	Goals        SavingsGoalServicer

	// Warnings holds load problems to show the user, such as an unreadable
	// goal payload that was replaced by an empty list.
	Warnings []string
}

// sessionService keeps one Session per username.
type sessionService struct {
	mu                  sync.Mutex
	sessions            map[string]*Session
	kv                  kvstore.Store
	analytics           AnalyticsServicer
	persistTransactions bool
}

// NewSessionService creates a SessionServicer. Every session persists under
// its own key prefix in kv.
func NewSessionService(kv kvstore.Store, analytics AnalyticsServicer, persistTransactions bool) SessionServicer {
	return &sessionService{
		sessions:            make(map[string]*Session),
		kv:                  kv,
		analytics:           analytics,
		persistTransactions: persistTransactions,
	}
}

// Open returns the user's session, creating and loading it on first use.
// Load failures become session warnings; they never prevent the session.
func (s *sessionService) Open(ctx context.Context, user models.User) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[user.Username]; ok {
		return session, nil
	}

	scoped := kvstore.Namespaced(s.kv, "user:"+user.Username+":")
	var txStore kvstore.Store
	if s.persistTransactions {
		txStore = scoped
	}

	session := &Session{
		User:         user,
		Transactions: NewTransactionService(txStore),
		Goals:        NewSavingsGoalService(scoped),
	}

	if err := session.Goals.Load(ctx); err != nil {
		session.Warnings = append(session.Warnings, err.Error())
	}
	if err := session.Transactions.Load(ctx); err != nil {
		session.Warnings = append(session.Warnings, err.Error())
	}

	logger.Get().Infow("session opened",
		"username", user.Username,
		"goals", len(session.Goals.List()),
		"transactions", len(session.Transactions.List()),
		"warnings", len(session.Warnings),
	)

	s.sessions[user.Username] = session
	return session, nil
}

// Get returns an already opened session.
func (s *sessionService) Get(username string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[username]
	return session, ok
}

// Close discards the user's session. Durable goal data is kept.
func (s *sessionService) Close(username string) {
	s.mu.Lock()
	delete(s.sessions, username)
	s.mu.Unlock()

	if s.analytics != nil {
		s.analytics.Invalidate(username)
	}
}
