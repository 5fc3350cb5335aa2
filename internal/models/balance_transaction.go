package models

import "time"

// Balance transaction types. Deposits and utang movements are recorded by
// the kiosk and the admin panel; the mobile app only reads them.
const (
	BalanceTypeDeposit      = "deposit"
	BalanceTypeDeduction    = "deduction"
	BalanceTypeUtangPayment = "utang_payment"
	BalanceTypeUtangAdded   = "utang_added"
)

var balanceTypeDisplay = map[string]string{
	BalanceTypeDeposit:      "Deposit",
	BalanceTypeDeduction:    "Deduction",
	BalanceTypeUtangPayment: "Utang Payment",
	BalanceTypeUtangAdded:   "Utang Added",
}

// BalanceTypeDisplay returns the human label for a balance transaction type.
func BalanceTypeDisplay(t string) string {
	if d, ok := balanceTypeDisplay[t]; ok {
		return d
	}
	return t
}

// BalanceTransaction records one movement of a member's account balance or
// utang balance, with the before/after values at the time it was applied.
type BalanceTransaction struct {
	ID                     int       `json:"id"`
	TransactionType        string    `json:"transaction_type"`
	TransactionTypeDisplay string    `json:"transaction_type_display"`
	Amount                 Money     `json:"amount"`
	BalanceBefore          Money     `json:"balance_before"`
	BalanceAfter           Money     `json:"balance_after"`
	UtangBefore            Money     `json:"utang_before"`
	UtangAfter             Money     `json:"utang_after"`
	Notes                  string    `json:"notes"`
	CreatedAt              time.Time `json:"created_at"`
}
