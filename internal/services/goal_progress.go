package services

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wasimadildev/begded-planner/internal/models"
)

var hundred = decimal.NewFromInt(100)

// GoalProgress is the derived display state of one savings goal.
type GoalProgress struct {
	ProgressPercent float64         `json:"progress_percent"`
	Remaining       decimal.Decimal `json:"remaining"`
	IsCompleted     bool            `json:"is_completed"`
	DaysRemaining   int             `json:"days_remaining"`
	IsOverdue       bool            `json:"is_overdue"`
}

// CalculateGoalProgress derives progress for goal as of now. DaysRemaining
// is the number of started days until the deadline; zero or less means the
// goal is overdue.
func CalculateGoalProgress(goal models.SavingsGoal, now time.Time) GoalProgress {
	p := GoalProgress{
		Remaining:   goal.TargetAmount.Sub(goal.CurrentAmount),
		IsCompleted: goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount),
	}

	if goal.TargetAmount.IsPositive() {
		p.ProgressPercent = goal.CurrentAmount.Div(goal.TargetAmount).Mul(hundred).InexactFloat64()
	}

	deadline, err := models.ParseDate(goal.Deadline)
	if err == nil {
		p.DaysRemaining = int(math.Ceil(deadline.Sub(now).Hours() / 24))
	}
	p.IsOverdue = p.DaysRemaining <= 0
	return p
}
