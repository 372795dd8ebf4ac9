package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SavingsGoal is a target amount to be reached by a deadline through contributions.
//
// CurrentAmount is kept within [0, TargetAmount] by the goal store.
type SavingsGoal struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      string          `json:"deadline"`
	Category      string          `json:"category"`
}

// Validate checks the fields a caller supplies when creating a goal.
func (g SavingsGoal) Validate() error {
	if strings.TrimSpace(g.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(g.Title) == "" {
		return ErrEmptyTitle
	}
	if !g.TargetAmount.IsPositive() {
		return ErrNonPositiveTarget
	}
	if _, err := ParseDate(g.Deadline); err != nil {
		return ErrInvalidDeadline
	}
	return nil
}

// Contribute returns the goal with delta added to CurrentAmount, capped at TargetAmount.
func (g SavingsGoal) Contribute(delta decimal.Decimal) SavingsGoal {
	g.CurrentAmount = decimal.Min(g.TargetAmount, g.CurrentAmount.Add(delta))
	return g
}
