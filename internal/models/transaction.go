package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods accepted at the kiosk.
const (
	PaymentMethodCash   = "cash"
	PaymentMethodDebit  = "debit"
	PaymentMethodCredit = "credit"
)

// Transaction statuses.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

var paymentMethodDisplay = map[string]string{
	PaymentMethodCash:   "Cash",
	PaymentMethodDebit:  "Debit (Member Account)",
	PaymentMethodCredit: "Credit (Utang)",
}

var statusDisplay = map[string]string{
	StatusPending:   "Pending",
	StatusCompleted: "Completed",
	StatusCancelled: "Cancelled",
}

// PaymentMethodDisplay returns the human label for a payment method code.
func PaymentMethodDisplay(method string) string {
	if d, ok := paymentMethodDisplay[method]; ok {
		return d
	}
	return method
}

// StatusDisplay returns the human label for a transaction status code.
func StatusDisplay(status string) string {
	if d, ok := statusDisplay[status]; ok {
		return d
	}
	return status
}

// Transaction is one completed kiosk sale attributed to a member. Records
// are immutable once written; this API surface only reads them.
type Transaction struct {
	ID                   int               `json:"id"`
	TransactionNumber    string            `json:"transaction_number" example:"TXN-20260801-0007"`
	Subtotal             Money             `json:"subtotal"`
	VatableSale          Money             `json:"vatable_sale"`
	VATAmount            Money             `json:"vat_amount"`
	TotalAmount          Money             `json:"total_amount"`
	PaymentMethod        string            `json:"payment_method"`
	PaymentMethodDisplay string            `json:"payment_method_display"`
	AmountPaid           Money             `json:"amount_paid"`
	AmountFromBalance    Money             `json:"amount_from_balance"`
	AmountToUtang        Money             `json:"amount_to_utang"`
	PatronageAmount      Money             `json:"patronage_amount"`
	PatronageRate        decimal.Decimal   `json:"patronage_rate"`
	Status               string            `json:"status"`
	StatusDisplay        string            `json:"status_display"`
	Notes                string            `json:"notes"`
	CreatedAt            time.Time         `json:"created_at"`
	Items                []TransactionItem `json:"items"`
}

// TransactionItem is one line of a kiosk sale.
type TransactionItem struct {
	ID             int       `json:"id"`
	ProductName    string    `json:"product_name"`
	ProductBarcode string    `json:"product_barcode"`
	UnitPrice      Money     `json:"unit_price"`
	Quantity       int       `json:"quantity"`
	TotalPrice     Money     `json:"total_price"`
	VATAmount      Money     `json:"vat_amount"`
	VatableSale    Money     `json:"vatable_sale"`
	CreatedAt      time.Time `json:"created_at"`
}
