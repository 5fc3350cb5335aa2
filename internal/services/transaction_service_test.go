package services

import (
	"database/sql/driver"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coopkiosk/backend/internal/models"
)

var transactionColumns = []string{
	"id", "transaction_number", "subtotal", "vatable_sale", "vat_amount", "total_amount",
	"payment_method", "amount_paid", "amount_from_balance", "amount_to_utang",
	"patronage_amount", "patronage_rate", "status", "notes", "created_at",
}

var itemColumns = []string{
	"id", "transaction_id", "product_name", "product_barcode", "unit_price",
	"quantity", "total_price", "vat_amount", "vatable_sale", "created_at",
}

var balanceColumns = []string{
	"id", "transaction_type", "amount", "balance_before", "balance_after",
	"utang_before", "utang_after", "notes", "created_at",
}

func transactionRow(id int, number string) []driver.Value {
	return []driver.Value{
		id, number, "100.00", "89.29", "10.71", "100.00",
		"debit", "0.00", "100.00", "0.00",
		"5.00", "0.0500", "completed", "",
		time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestTransactionService_ListTransactions(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	service := NewTransactionService(db)

	t.Run("no session in context", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/mobile/transactions/", nil)
		w := httptest.NewRecorder()
		service.ListTransactions(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects oversized limit", func(t *testing.T) {
		r := authed(httptest.NewRequest("GET", "/api/mobile/transactions/?limit=1000", nil), 7)
		w := httptest.NewRecorder()
		service.ListTransactions(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects zero page", func(t *testing.T) {
		r := authed(httptest.NewRequest("GET", "/api/mobile/transactions/?page=0", nil), 7)
		w := httptest.NewRecorder()
		service.ListTransactions(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("page with items and metadata", func(t *testing.T) {
		rows := sqlmock.NewRows(transactionColumns).
			AddRow(transactionRow(21, "TXN-20260801-0021")...).
			AddRow(transactionRow(20, "TXN-20260801-0020")...)
		mock.ExpectQuery("FROM transactions").
			WithArgs(7, 20, 20).
			WillReturnRows(rows)
		mock.ExpectQuery("FROM transaction_items").
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(itemColumns).AddRow(
				1, 21, "Rice 5kg", "4800000000001", "50.00",
				2, "100.00", "10.71", "89.29",
				time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM transactions`).
			WithArgs(7).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(45))

		r := authed(httptest.NewRequest("GET", "/api/mobile/transactions/?page=2&limit=20", nil), 7)
		w := httptest.NewRecorder()
		service.ListTransactions(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Success      bool                 `json:"success"`
			Transactions []models.Transaction `json:"transactions"`
			Pagination   models.Pagination    `json:"pagination"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		require.Len(t, resp.Transactions, 2)
		assert.Equal(t, "TXN-20260801-0021", resp.Transactions[0].TransactionNumber)
		assert.Equal(t, "Debit (Member Account)", resp.Transactions[0].PaymentMethodDisplay)
		assert.Equal(t, "Completed", resp.Transactions[0].StatusDisplay)
		require.Len(t, resp.Transactions[0].Items, 1)
		assert.Equal(t, "Rice 5kg", resp.Transactions[0].Items[0].ProductName)
		assert.Empty(t, resp.Transactions[1].Items)

		assert.Equal(t, models.Pagination{
			Page: 2, Limit: 20, Total: 45, HasNext: true, HasPrevious: true,
		}, resp.Pagination)
	})

	t.Run("last page reports no next", func(t *testing.T) {
		mock.ExpectQuery("FROM transactions").
			WithArgs(7, 20, 40).
			WillReturnRows(sqlmock.NewRows(transactionColumns).
				AddRow(transactionRow(1, "TXN-20260701-0001")...))
		mock.ExpectQuery("FROM transaction_items").
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(itemColumns))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM transactions`).
			WithArgs(7).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(41))

		r := authed(httptest.NewRequest("GET", "/api/mobile/transactions/?page=3&limit=20", nil), 7)
		w := httptest.NewRecorder()
		service.ListTransactions(w, r)

		var resp struct {
			Pagination models.Pagination `json:"pagination"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Pagination.HasNext)
		assert.True(t, resp.Pagination.HasPrevious)
	})
}

func TestTransactionService_ListBalanceTransactions(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	service := NewTransactionService(db)

	mock.ExpectQuery("FROM balance_transactions").
		WithArgs(7, 10, 0).
		WillReturnRows(sqlmock.NewRows(balanceColumns).
			AddRow(5, "utang_payment", "25.00", "150.00", "150.00", "50.00", "25.00", "paid at kiosk",
				time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)).
			AddRow(4, "deposit", "100.00", "50.00", "150.00", "50.00", "50.00", "",
				time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC)))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM balance_transactions`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	r := authed(httptest.NewRequest("GET", "/api/mobile/balance-transactions/?page=1&limit=10", nil), 7)
	w := httptest.NewRecorder()
	service.ListBalanceTransactions(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success             bool                        `json:"success"`
		BalanceTransactions []models.BalanceTransaction `json:"balance_transactions"`
		Pagination          models.Pagination           `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.BalanceTransactions, 2)
	assert.Equal(t, "Utang Payment", resp.BalanceTransactions[0].TransactionTypeDisplay)
	assert.Equal(t, "25.00", resp.BalanceTransactions[0].Amount.String())
	assert.False(t, resp.Pagination.HasNext)
	assert.False(t, resp.Pagination.HasPrevious)
}
