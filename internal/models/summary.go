package models

// AccountSummary aggregates a member snapshot with recent activity and
// monthly totals for a selected (year, month). It is derived per request
// and never persisted.
type AccountSummary struct {
	Member                    Member               `json:"member"`
	RecentTransactions        []Transaction        `json:"recent_transactions"`
	RecentBalanceTransactions []BalanceTransaction `json:"recent_balance_transactions"`
	TotalSpentThisMonth       Money                `json:"total_spent_this_month"`
	TotalPatronageThisMonth   Money                `json:"total_patronage_this_month"`
	SelectedYear              int                  `json:"selected_year"`
	SelectedMonth             int                  `json:"selected_month"`
}
