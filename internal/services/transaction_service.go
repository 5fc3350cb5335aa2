package services

import (
	"database/sql"
	"log"
	"net/http"
	"strconv"

	"github.com/coopkiosk/backend/internal/middleware"
	"github.com/coopkiosk/backend/internal/models"
)

// TransactionService serves paginated transaction and balance-transaction
// history for the authenticated member.
type TransactionService struct {
	db        *sql.DB
	validator *ValidationHelper
}

func NewTransactionService(db *sql.DB) *TransactionService {
	return &TransactionService{
		db:        db,
		validator: NewValidationHelper(),
	}
}

type pageQuery struct {
	Page  int `validate:"min=1"`
	Limit int `validate:"min=1,max=100"`
}

func parsePageQuery(r *http.Request) pageQuery {
	q := pageQuery{Page: 1, Limit: 20}
	if v := r.URL.Query().Get("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			q.Page = p
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if l, err := strconv.Atoi(v); err == nil {
			q.Limit = l
		}
	}
	return q
}

// ListTransactions returns one page of transaction history
// @Summary List transactions
// @Description Completed transactions for the current member, newest first
// @Tags transactions
// @Produce json
// @Param page query int false "Page number, 1-indexed (default: 1)"
// @Param limit query int false "Page size (default: 20, max: 100)"
// @Success 200 {object} map[string]interface{} "Transactions with pagination metadata"
// @Failure 400 {object} ErrorResponse "Invalid pagination parameters"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Router /transactions/ [get]
func (ts *TransactionService) ListTransactions(w http.ResponseWriter, r *http.Request) {
	memberID, ok := middleware.MemberID(r.Context())
	if !ok {
		SendErrorResponse(w, "Authentication required", http.StatusUnauthorized, nil)
		return
	}

	q := parsePageQuery(r)
	if err := ts.validator.ValidateStruct(&q); err != nil {
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	offset := (q.Page - 1) * q.Limit
	transactions, err := fetchTransactionsPage(ts.db, memberID, q.Limit, offset)
	if err != nil {
		log.Printf("[TRANSACTION] Failed to fetch transactions for member %d: %v", memberID, err)
		SendErrorResponse(w, "Failed to fetch transactions", http.StatusInternalServerError, nil)
		return
	}

	total, err := countCompletedTransactions(ts.db, memberID)
	if err != nil {
		log.Printf("[TRANSACTION] Failed to count transactions for member %d: %v", memberID, err)
		SendErrorResponse(w, "Failed to fetch transactions", http.StatusInternalServerError, nil)
		return
	}

	SendJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"transactions": transactions,
		"pagination":   models.NewPagination(q.Page, q.Limit, total),
	})
}

// ListBalanceTransactions returns one page of balance history
// @Summary List balance transactions
// @Description Deposits, deductions and utang movements for the current member, newest first
// @Tags transactions
// @Produce json
// @Param page query int false "Page number, 1-indexed (default: 1)"
// @Param limit query int false "Page size (default: 20, max: 100)"
// @Success 200 {object} map[string]interface{} "Balance transactions with pagination metadata"
// @Failure 400 {object} ErrorResponse "Invalid pagination parameters"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Router /balance-transactions/ [get]
func (ts *TransactionService) ListBalanceTransactions(w http.ResponseWriter, r *http.Request) {
	memberID, ok := middleware.MemberID(r.Context())
	if !ok {
		SendErrorResponse(w, "Authentication required", http.StatusUnauthorized, nil)
		return
	}

	q := parsePageQuery(r)
	if err := ts.validator.ValidateStruct(&q); err != nil {
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	offset := (q.Page - 1) * q.Limit
	balanceTxs, err := fetchBalanceTransactionsPage(ts.db, memberID, q.Limit, offset)
	if err != nil {
		log.Printf("[TRANSACTION] Failed to fetch balance transactions for member %d: %v", memberID, err)
		SendErrorResponse(w, "Failed to fetch balance transactions", http.StatusInternalServerError, nil)
		return
	}

	total, err := countBalanceTransactions(ts.db, memberID)
	if err != nil {
		log.Printf("[TRANSACTION] Failed to count balance transactions for member %d: %v", memberID, err)
		SendErrorResponse(w, "Failed to fetch balance transactions", http.StatusInternalServerError, nil)
		return
	}

	SendJSON(w, http.StatusOK, map[string]interface{}{
		"success":              true,
		"balance_transactions": balanceTxs,
		"pagination":           models.NewPagination(q.Page, q.Limit, total),
	})
}
