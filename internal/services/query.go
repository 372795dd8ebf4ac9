package services

import (
	"slices"
	"strings"
	"time"

	"github.com/wasimadildev/begded-planner/internal/models"
)

// TransactionQuery selects and orders transactions for display.
// Zero values mean no search, FilterAll and SortNewest.
type TransactionQuery struct {
	Search string
	Type   models.FilterType
	Sort   models.SortType
}

// QueryTransactions runs search, then the type filter, then a stable sort.
// The input slice is not modified.
func QueryTransactions(txs []models.Transaction, q TransactionQuery) []models.Transaction {
	result := make([]models.Transaction, 0, len(txs))

	needle := strings.ToLower(strings.TrimSpace(q.Search))
	for _, tx := range txs {
		if needle != "" && !matchesSearch(tx, needle) {
			continue
		}
		if !matchesType(tx, q.Type) {
			continue
		}
		result = append(result, tx)
	}

	sortTransactions(result, q.Sort)
	return result
}

func matchesSearch(tx models.Transaction, needle string) bool {
	return strings.Contains(strings.ToLower(tx.Title), needle) ||
		strings.Contains(strings.ToLower(tx.Category), needle)
}

func matchesType(tx models.Transaction, filter models.FilterType) bool {
	switch filter {
	case models.FilterIncome:
		return tx.Type == models.TransactionTypeIncome
	case models.FilterExpense:
		return tx.Type == models.TransactionTypeExpense
	default:
		return true
	}
}

// sortTransactions orders txs in place. Equal keys keep their current order.
// Dates that do not parse sort as the zero time.
func sortTransactions(txs []models.Transaction, order models.SortType) {
	switch order {
	case models.SortHighest:
		slices.SortStableFunc(txs, func(a, b models.Transaction) int {
			return b.Amount.Cmp(a.Amount)
		})
	case models.SortLowest:
		slices.SortStableFunc(txs, func(a, b models.Transaction) int {
			return a.Amount.Cmp(b.Amount)
		})
	case models.SortOldest:
		sortByDate(txs, false)
	default:
		sortByDate(txs, true)
	}
}

func sortByDate(txs []models.Transaction, newestFirst bool) {
	type keyed struct {
		tx   models.Transaction
		date time.Time
	}

	keys := make([]keyed, len(txs))
	for i, tx := range txs {
		d, _ := models.ParseDate(tx.Date)
		keys[i] = keyed{tx: tx, date: d}
	}

	slices.SortStableFunc(keys, func(a, b keyed) int {
		c := a.date.Compare(b.date)
		if newestFirst {
			return -c
		}
		return c
	})

	for i := range keys {
		txs[i] = keys[i].tx
	}
}
