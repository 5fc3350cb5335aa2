package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/coopkiosk/backend/internal/models"
)

// DefaultPageLimit is the page size the app uses for incremental loads and
// the embedded "recent" views.
const DefaultPageLimit = 10

type accountResponse struct {
	Success bool          `json:"success"`
	Member  models.Member `json:"member"`
}

type summaryResponse struct {
	Success bool                  `json:"success"`
	Summary models.AccountSummary `json:"summary"`
}

type transactionsResponse struct {
	Success      bool                 `json:"success"`
	Transactions []models.Transaction `json:"transactions"`
	Pagination   models.Pagination    `json:"pagination"`
}

type balanceTransactionsResponse struct {
	Success             bool                        `json:"success"`
	BalanceTransactions []models.BalanceTransaction `json:"balance_transactions"`
	Pagination          models.Pagination           `json:"pagination"`
}

// Account fetches the current member snapshot.
func (c *Client) Account(ctx context.Context) (*models.Member, error) {
	var out accountResponse
	if err := c.do(ctx, http.MethodGet, accountPath, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Member, nil
}

// Summary fetches the account summary. Zero year/month means the server's
// current month.
func (c *Client) Summary(ctx context.Context, year, month int) (*models.AccountSummary, error) {
	query := url.Values{}
	if year > 0 {
		query.Set("year", strconv.Itoa(year))
	}
	if month > 0 {
		query.Set("month", strconv.Itoa(month))
	}

	var out summaryResponse
	if err := c.do(ctx, http.MethodGet, summaryPath, query, nil, &out); err != nil {
		return nil, err
	}
	return &out.Summary, nil
}

func pageQuery(page, limit int) url.Values {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	return query
}

// Transactions fetches one page of transaction history.
func (c *Client) Transactions(ctx context.Context, page, limit int) ([]models.Transaction, models.Pagination, error) {
	var out transactionsResponse
	if err := c.do(ctx, http.MethodGet, transactionsPath, pageQuery(page, limit), nil, &out); err != nil {
		return nil, models.Pagination{}, err
	}
	return out.Transactions, out.Pagination, nil
}

// BalanceTransactions fetches one page of balance history.
func (c *Client) BalanceTransactions(ctx context.Context, page, limit int) ([]models.BalanceTransaction, models.Pagination, error) {
	var out balanceTransactionsResponse
	if err := c.do(ctx, http.MethodGet, balanceTransactionsPath, pageQuery(page, limit), nil, &out); err != nil {
		return nil, models.Pagination{}, err
	}
	return out.BalanceTransactions, out.Pagination, nil
}

// TransactionPager returns a pager over the member's transaction history.
func (c *Client) TransactionPager(limit int) *Pager[models.Transaction] {
	return NewPager(c.Transactions, limit)
}

// BalanceTransactionPager returns a pager over the member's balance history.
func (c *Client) BalanceTransactionPager(limit int) *Pager[models.BalanceTransaction] {
	return NewPager(c.BalanceTransactions, limit)
}
