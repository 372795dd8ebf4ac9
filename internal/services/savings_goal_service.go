package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	apperrors "github.com/wasimadildev/begded-planner/internal/errors"
	"github.com/wasimadildev/begded-planner/internal/kvstore"
	"github.com/wasimadildev/begded-planner/internal/logger"
	"github.com/wasimadildev/begded-planner/internal/models"
)

// SavingsGoalsKey is the storage key of the persisted goal list.
const SavingsGoalsKey = "savingsGoals"

// savingsGoalService keeps goals newest first and mirrors every mutation to
// a single key in the key-value store.
type savingsGoalService struct {
	mu     sync.RWMutex
	goals  []models.SavingsGoal
	loaded bool
	kv     kvstore.Store
}

// NewSavingsGoalService creates a goal store over kv. Load must complete
// before any mutation is accepted.
func NewSavingsGoalService(kv kvstore.Store) SavingsGoalServicer {
	return &savingsGoalService{kv: kv}
}

// Load reads the persisted goal list. A missing key yields an empty list.
// An unreadable or malformed payload also yields an empty list and is
// reported as ErrPersistenceRead; the store still counts as loaded. Later
// calls are no-ops.
func (s *savingsGoalService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return nil
	}
	s.loaded = true

	raw, found, err := s.kv.Get(ctx, SavingsGoalsKey)
	if err != nil {
		logger.Get().Errorw("failed to read savings goals", "error", err)
		return apperrors.Wrap(apperrors.ErrPersistenceRead, err)
	}
	if !found {
		return nil
	}

	goals, err := decodeGoals(raw)
	if err != nil {
		logger.Get().Warnw("discarding malformed savings goals payload", "error", err)
		return apperrors.Wrap(apperrors.ErrPersistenceRead, err)
	}
	s.goals = goals
	return nil
}

// decodeGoals parses a persisted list and checks the stored invariants.
func decodeGoals(raw string) ([]models.SavingsGoal, error) {
	var goals []models.SavingsGoal
	if err := json.Unmarshal([]byte(raw), &goals); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(goals))
	for _, g := range goals {
		if g.ID == "" {
			return nil, fmt.Errorf("goal without id")
		}
		if _, dup := seen[g.ID]; dup {
			return nil, fmt.Errorf("duplicate goal id %q", g.ID)
		}
		seen[g.ID] = struct{}{}
		if !g.TargetAmount.IsPositive() {
			return nil, fmt.Errorf("goal %q has non-positive target", g.ID)
		}
		if g.CurrentAmount.IsNegative() || g.CurrentAmount.GreaterThan(g.TargetAmount) {
			return nil, fmt.Errorf("goal %q has current amount outside [0, target]", g.ID)
		}
	}
	return goals, nil
}

// Loaded reports whether Load has completed.
func (s *savingsGoalService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Add validates goal, resets its progress to zero and inserts it first.
func (s *savingsGoalService) Add(ctx context.Context, goal models.SavingsGoal) (*models.SavingsGoal, error) {
	if err := goal.Validate(); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	goal.CurrentAmount = decimal.Zero

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return nil, apperrors.ErrGoalsNotLoaded
	}
	if s.indexOf(goal.ID) >= 0 {
		return nil, apperrors.ErrDuplicateGoal
	}

	goals := make([]models.SavingsGoal, 0, len(s.goals)+1)
	goals = append(goals, goal)
	s.goals = append(goals, s.goals...)

	added := goal
	return &added, s.persistLocked(ctx)
}

// Contribute adds delta to the goal's current amount, capped at its target.
// An unknown id is a no-op returning (nil, nil).
func (s *savingsGoalService) Contribute(ctx context.Context, id string, delta decimal.Decimal) (*models.SavingsGoal, error) {
	if !delta.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, models.ErrNonPositiveDelta.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return nil, apperrors.ErrGoalsNotLoaded
	}
	i := s.indexOf(id)
	if i < 0 {
		return nil, nil
	}

	goals := make([]models.SavingsGoal, len(s.goals))
	copy(goals, s.goals)
	goals[i] = goals[i].Contribute(delta)
	s.goals = goals

	updated := goals[i]
	return &updated, s.persistLocked(ctx)
}

// Delete removes the goal with the given id. Unknown ids are ignored.
func (s *savingsGoalService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return apperrors.ErrGoalsNotLoaded
	}
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	goals := make([]models.SavingsGoal, 0, len(s.goals)-1)
	goals = append(goals, s.goals[:i]...)
	s.goals = append(goals, s.goals[i+1:]...)

	return s.persistLocked(ctx)
}

// List returns a copy of the goals in store order.
func (s *savingsGoalService) List() []models.SavingsGoal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	goals := make([]models.SavingsGoal, len(s.goals))
	copy(goals, s.goals)
	return goals
}

func (s *savingsGoalService) indexOf(id string) int {
	for i := range s.goals {
		if s.goals[i].ID == id {
			return i
		}
	}
	return -1
}

// persistLocked rewrites the whole list under SavingsGoalsKey. Holding s.mu
// serializes writes, so the durable copy always ends at the latest state.
// A failed write is returned but the in-memory mutation stands.
func (s *savingsGoalService) persistLocked(ctx context.Context) error {
	goals := s.goals
	if goals == nil {
		goals = []models.SavingsGoal{}
	}
	data, err := json.Marshal(goals)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrPersistenceWrite, err)
	}
	if err := s.kv.Set(ctx, SavingsGoalsKey, string(data)); err != nil {
		logger.Get().Errorw("failed to persist savings goals", "error", err, "count", len(goals))
		return apperrors.Wrap(apperrors.ErrPersistenceWrite, err)
	}
	return nil
}
