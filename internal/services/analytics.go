package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/wasimadildev/begded-planner/internal/cache"
	"github.com/wasimadildev/begded-planner/internal/models"
)

// CategoryStat holds per-category totals split by transaction type.
type CategoryStat struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// Analytics summarizes a full transaction list.
type Analytics struct {
	TotalIncome      decimal.Decimal         `json:"total_income"`
	TotalExpense     decimal.Decimal         `json:"total_expense"`
	Balance          decimal.Decimal         `json:"balance"`
	TransactionCount int                     `json:"transaction_count"`
	CategoryStats    map[string]CategoryStat `json:"category_stats"`
}

// ComputeAnalytics totals income and expense overall and per category.
// It always runs over the complete list, never a filtered view.
func ComputeAnalytics(txs []models.Transaction) Analytics {
	result := Analytics{
		TotalIncome:      decimal.Zero,
		TotalExpense:     decimal.Zero,
		TransactionCount: len(txs),
		CategoryStats:    make(map[string]CategoryStat),
	}

	for _, tx := range txs {
		stat, ok := result.CategoryStats[tx.Category]
		if !ok {
			stat = CategoryStat{Income: decimal.Zero, Expense: decimal.Zero}
		}
		switch tx.Type {
		case models.TransactionTypeIncome:
			result.TotalIncome = result.TotalIncome.Add(tx.Amount)
			stat.Income = stat.Income.Add(tx.Amount)
		case models.TransactionTypeExpense:
			result.TotalExpense = result.TotalExpense.Add(tx.Amount)
			stat.Expense = stat.Expense.Add(tx.Amount)
		}
		result.CategoryStats[tx.Category] = stat
	}

	result.Balance = result.TotalIncome.Sub(result.TotalExpense)
	return result
}

// analyticsService memoizes ComputeAnalytics per user and store version.
type analyticsService struct {
	cache *cache.LRU[Analytics]
}

// NewAnalyticsService creates an AnalyticsServicer backed by c.
func NewAnalyticsService(c *cache.LRU[Analytics]) AnalyticsServicer {
	return &analyticsService{cache: c}
}

// Summary returns the analytics of the store's current contents. The result
// may be shared with other callers and must not be modified.
func (s *analyticsService) Summary(username string, transactions TransactionServicer) Analytics {
	txs, version := transactions.Snapshot()
	key := fmt.Sprintf("%s:%d", username, version)

	if cached, ok := s.cache.Get(key); ok {
		return cached
	}
	result := ComputeAnalytics(txs)
	s.cache.Set(key, result)
	return result
}

// Invalidate drops every cached summary for username.
func (s *analyticsService) Invalidate(username string) {
	s.cache.DeletePrefix(username + ":")
}
