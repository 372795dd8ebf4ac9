package models

// FilterType restricts a transaction listing by type.
type FilterType string

const (
	FilterAll     FilterType = "all"
	FilterIncome  FilterType = "income"
	FilterExpense FilterType = "expense"
)

// SortType orders a transaction listing.
type SortType string

const (
	SortNewest  SortType = "newest"
	SortOldest  SortType = "oldest"
	SortHighest SortType = "highest"
	SortLowest  SortType = "lowest"
)

// Valid reports whether f is a known filter.
func (f FilterType) Valid() bool {
	switch f {
	case FilterAll, FilterIncome, FilterExpense:
		return true
	}
	return false
}

// Valid reports whether s is a known sort order.
func (s SortType) Valid() bool {
	switch s {
	case SortNewest, SortOldest, SortHighest, SortLowest:
		return true
	}
	return false
}
