package services

import (
	"database/sql"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/coopkiosk/backend/internal/middleware"
	"github.com/coopkiosk/backend/internal/models"
)

// Number of recent records embedded in the account summary.
const summaryRecentCount = 10

// AccountService serves the authenticated member's account snapshot and
// monthly summary.
type AccountService struct {
	db *sql.DB
}

func NewAccountService(db *sql.DB) *AccountService {
	return &AccountService{db: db}
}

// GetAccount returns the member snapshot
// @Summary Get account info
// @Description Current member's account information
// @Tags account
// @Produce json
// @Success 200 {object} map[string]interface{} "Member snapshot"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Router /account/ [get]
func (s *AccountService) GetAccount(w http.ResponseWriter, r *http.Request) {
	memberID, ok := middleware.MemberID(r.Context())
	if !ok {
		SendErrorResponse(w, "Authentication required", http.StatusUnauthorized, nil)
		return
	}

	member, err := fetchMemberByID(s.db, memberID)
	if err != nil {
		if err == sql.ErrNoRows {
			SendErrorResponse(w, "Member account not found", http.StatusNotFound, nil)
			return
		}
		log.Printf("[ACCOUNT] Failed to fetch member %d: %v", memberID, err)
		SendErrorResponse(w, "Failed to fetch account", http.StatusInternalServerError, nil)
		return
	}

	SendJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"member":  member,
	})
}

// GetSummary returns the account summary for a month
// @Summary Get account summary
// @Description Member snapshot, 10 most recent transactions and balance transactions, and monthly spend/patronage totals
// @Tags account
// @Produce json
// @Param year query int false "Year (default: current)"
// @Param month query int false "Month 1-12 (default: current; out-of-range falls back to current)"
// @Success 200 {object} map[string]interface{} "Account summary"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Router /account/summary/ [get]
func (s *AccountService) GetSummary(w http.ResponseWriter, r *http.Request) {
	memberID, ok := middleware.MemberID(r.Context())
	if !ok {
		SendErrorResponse(w, "Authentication required", http.StatusUnauthorized, nil)
		return
	}

	member, err := fetchMemberByID(s.db, memberID)
	if err != nil {
		if err == sql.ErrNoRows {
			SendErrorResponse(w, "Member account not found", http.StatusNotFound, nil)
			return
		}
		log.Printf("[ACCOUNT] Failed to fetch member %d: %v", memberID, err)
		SendErrorResponse(w, "Failed to fetch account", http.StatusInternalServerError, nil)
		return
	}

	now := time.Now()
	year := now.Year()
	month := int(now.Month())
	if v := r.URL.Query().Get("year"); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			year = y
		}
	}
	if v := r.URL.Query().Get("month"); v != "" {
		if m, err := strconv.Atoi(v); err == nil && m >= 1 && m <= 12 {
			month = m
		}
	}

	recentTx, err := fetchTransactionsPage(s.db, memberID, summaryRecentCount, 0)
	if err != nil {
		log.Printf("[ACCOUNT] Failed to fetch recent transactions for member %d: %v", memberID, err)
		SendErrorResponse(w, "Failed to fetch account summary", http.StatusInternalServerError, nil)
		return
	}

	recentBalanceTx, err := fetchBalanceTransactionsPage(s.db, memberID, summaryRecentCount, 0)
	if err != nil {
		log.Printf("[ACCOUNT] Failed to fetch recent balance transactions for member %d: %v", memberID, err)
		SendErrorResponse(w, "Failed to fetch account summary", http.StatusInternalServerError, nil)
		return
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)

	spent, patronage, err := monthlyTotals(s.db, memberID, start, end)
	if err != nil {
		log.Printf("[ACCOUNT] Failed to compute monthly totals for member %d: %v", memberID, err)
		SendErrorResponse(w, "Failed to fetch account summary", http.StatusInternalServerError, nil)
		return
	}

	SendJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"summary": models.AccountSummary{
			Member:                    *member,
			RecentTransactions:        recentTx,
			RecentBalanceTransactions: recentBalanceTx,
			TotalSpentThisMonth:       spent,
			TotalPatronageThisMonth:   patronage,
			SelectedYear:              year,
			SelectedMonth:             month,
		},
	})
}
