package models

// SuggestedCategories lists the categories offered when recording a transaction
// of each type. The stores accept any category string.
var SuggestedCategories = map[TransactionType][]string{
	TransactionTypeIncome: {
		"Salary", "Freelance", "Investment", "Gift", "Other",
	},
	TransactionTypeExpense: {
		"Food", "Transport", "Shopping", "Bills", "Entertainment", "Health", "Education", "Other",
	},
}
