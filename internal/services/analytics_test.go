package services

import (
	"context"
	"testing"
	"time"

	"github.com/wasimadildev/begded-planner/internal/cache"
	"github.com/wasimadildev/begded-planner/internal/models"
	"github.com/wasimadildev/begded-planner/internal/testutil"
)

func TestComputeAnalytics(t *testing.T) {
	t.Run("totals_and_categories", func(t *testing.T) {
		salary := testutil.NewTestTransaction(models.TransactionTypeIncome, "100")
		rent := testutil.NewTestTransaction(models.TransactionTypeExpense, "40")
		lunch := testutil.NewTestTransaction(models.TransactionTypeExpense, "10")
		lunch.Category = "Food"

		a := ComputeAnalytics([]models.Transaction{salary, rent, lunch})

		testutil.AssertDecimal(t, "total income", a.TotalIncome, "100")
		testutil.AssertDecimal(t, "total expense", a.TotalExpense, "50")
		testutil.AssertDecimal(t, "balance", a.Balance, "50")
		testutil.AssertDecimal(t, "food expense", a.CategoryStats["Food"].Expense, "10")
		testutil.AssertDecimal(t, "food income", a.CategoryStats["Food"].Income, "0")
		testutil.AssertDecimal(t, "other income", a.CategoryStats["Other"].Income, "100")
		testutil.AssertDecimal(t, "other expense", a.CategoryStats["Other"].Expense, "40")
		if a.TransactionCount != 3 {
			t.Errorf("expected 3 transactions, got %d", a.TransactionCount)
		}
	})

	t.Run("empty", func(t *testing.T) {
		a := ComputeAnalytics(nil)
		testutil.AssertDecimal(t, "balance", a.Balance, "0")
		if len(a.CategoryStats) != 0 {
			t.Errorf("expected no categories, got %v", a.CategoryStats)
		}
	})

	t.Run("negative_balance", func(t *testing.T) {
		a := ComputeAnalytics([]models.Transaction{
			testutil.NewTestTransaction(models.TransactionTypeIncome, "10.10"),
			testutil.NewTestTransaction(models.TransactionTypeExpense, "20.20"),
		})
		testutil.AssertDecimal(t, "balance", a.Balance, "-10.10")
	})

	t.Run("decimal_amounts_exact", func(t *testing.T) {
		var txs []models.Transaction
		for i := 0; i < 10; i++ {
			txs = append(txs, testutil.NewTestTransaction(models.TransactionTypeIncome, "0.1"))
		}
		testutil.AssertDecimal(t, "total income", ComputeAnalytics(txs).TotalIncome, "1")
	})
}

func TestAnalyticsService(t *testing.T) {
	ctx := context.Background()

	t.Run("memoized_per_version", func(t *testing.T) {
		lru := cache.NewLRU[Analytics](10, time.Minute)
		svc := NewAnalyticsService(lru)
		store := NewTransactionService(nil)
		_, _ = store.Add(ctx, testutil.NewTestTransaction(models.TransactionTypeIncome, "100"))

		first := svc.Summary("alice", store)
		second := svc.Summary("alice", store)
		if lru.Len() != 1 {
			t.Errorf("expected 1 cached entry, got %d", lru.Len())
		}
		if !first.Balance.Equal(second.Balance) || first.TransactionCount != second.TransactionCount {
			t.Errorf("expected identical results, got %+v and %+v", first, second)
		}

		_, _ = store.Add(ctx, testutil.NewTestTransaction(models.TransactionTypeExpense, "30"))
		third := svc.Summary("alice", store)
		testutil.AssertDecimal(t, "balance", third.Balance, "70")
		if lru.Len() != 2 {
			t.Errorf("expected 2 cached entries, got %d", lru.Len())
		}
	})

	t.Run("invalidate_drops_user_entries", func(t *testing.T) {
		lru := cache.NewLRU[Analytics](10, time.Minute)
		svc := NewAnalyticsService(lru)
		svc.Summary("alice", NewTransactionService(nil))
		svc.Summary("bob", NewTransactionService(nil))

		svc.Invalidate("alice")
		if lru.Len() != 1 {
			t.Errorf("expected only bob's entry left, got %d", lru.Len())
		}
	})
}
