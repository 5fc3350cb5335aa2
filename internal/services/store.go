package services

import (
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/coopkiosk/backend/internal/models"
)

// Row-level data access shared by the mobile services. The schema is owned
// by the kiosk; this API surface only reads from it.

const memberColumns = `
	m.id, m.rfid_card_number, m.first_name, m.last_name,
	COALESCE(m.email, ''), COALESCE(m.phone, ''), COALESCE(mt.name, ''),
	m.balance, m.utang_balance, m.total_patronage,
	m.is_active, m.date_joined, m.last_transaction
`

func scanMember(row *sql.Row, m *models.Member) error {
	err := row.Scan(
		&m.ID, &m.RFIDCardNumber, &m.FirstName, &m.LastName,
		&m.Email, &m.Phone, &m.MemberTypeName,
		&m.Balance, &m.UtangBalance, &m.TotalPatronage,
		&m.IsActive, &m.DateJoined, &m.LastTransaction,
	)
	if err != nil {
		return err
	}
	m.FullName = m.FirstName + " " + m.LastName
	return nil
}

type memberCredentials struct {
	models.Member
	PinHash string
}

func fetchMemberByUsername(db *sql.DB, username string) (*memberCredentials, error) {
	row := db.QueryRow(`
		SELECT `+memberColumns+`, COALESCE(m.pin_hash, '')
		FROM members m
		LEFT JOIN member_types mt ON m.member_type_id = mt.id
		WHERE m.username = $1`, username)

	var mc memberCredentials
	err := row.Scan(
		&mc.ID, &mc.RFIDCardNumber, &mc.FirstName, &mc.LastName,
		&mc.Email, &mc.Phone, &mc.MemberTypeName,
		&mc.Balance, &mc.UtangBalance, &mc.TotalPatronage,
		&mc.IsActive, &mc.DateJoined, &mc.LastTransaction,
		&mc.PinHash,
	)
	if err != nil {
		return nil, err
	}
	mc.FullName = mc.FirstName + " " + mc.LastName
	return &mc, nil
}

func fetchMemberByID(db *sql.DB, id int) (*models.Member, error) {
	row := db.QueryRow(`
		SELECT `+memberColumns+`
		FROM members m
		LEFT JOIN member_types mt ON m.member_type_id = mt.id
		WHERE m.id = $1`, id)

	var m models.Member
	if err := scanMember(row, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// fetchTransactionsPage returns one page of a member's completed
// transactions, newest first, with line items attached.
func fetchTransactionsPage(db *sql.DB, memberID, limit, offset int) ([]models.Transaction, error) {
	rows, err := db.Query(`
		SELECT id, transaction_number, subtotal, vatable_sale, vat_amount, total_amount,
		       payment_method, amount_paid, amount_from_balance, amount_to_utang,
		       patronage_amount, patronage_rate, status, COALESCE(notes, ''), created_at
		FROM transactions
		WHERE member_id = $1 AND status = 'completed'
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, memberID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	var ids []int64
	for rows.Next() {
		var tx models.Transaction
		err := rows.Scan(
			&tx.ID, &tx.TransactionNumber, &tx.Subtotal, &tx.VatableSale, &tx.VATAmount,
			&tx.TotalAmount, &tx.PaymentMethod, &tx.AmountPaid, &tx.AmountFromBalance,
			&tx.AmountToUtang, &tx.PatronageAmount, &tx.PatronageRate, &tx.Status,
			&tx.Notes, &tx.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		tx.PaymentMethodDisplay = models.PaymentMethodDisplay(tx.PaymentMethod)
		tx.StatusDisplay = models.StatusDisplay(tx.Status)
		tx.Items = []models.TransactionItem{}
		transactions = append(transactions, tx)
		ids = append(ids, int64(tx.ID))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return transactions, nil
	}
	if err := attachTransactionItems(db, transactions, ids); err != nil {
		return nil, err
	}
	return transactions, nil
}

func attachTransactionItems(db *sql.DB, transactions []models.Transaction, ids []int64) error {
	rows, err := db.Query(`
		SELECT id, transaction_id, product_name, product_barcode, unit_price,
		       quantity, total_price, vat_amount, vatable_sale, created_at
		FROM transaction_items
		WHERE transaction_id = ANY($1)
		ORDER BY id`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	byID := make(map[int]*models.Transaction, len(transactions))
	for i := range transactions {
		byID[transactions[i].ID] = &transactions[i]
	}

	for rows.Next() {
		var item models.TransactionItem
		var txID int
		err := rows.Scan(
			&item.ID, &txID, &item.ProductName, &item.ProductBarcode, &item.UnitPrice,
			&item.Quantity, &item.TotalPrice, &item.VATAmount, &item.VatableSale,
			&item.CreatedAt,
		)
		if err != nil {
			return err
		}
		if tx, ok := byID[txID]; ok {
			tx.Items = append(tx.Items, item)
		}
	}
	return rows.Err()
}

func countCompletedTransactions(db *sql.DB, memberID int) (int, error) {
	var total int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM transactions WHERE member_id = $1 AND status = 'completed'`,
		memberID).Scan(&total)
	return total, err
}

func fetchBalanceTransactionsPage(db *sql.DB, memberID, limit, offset int) ([]models.BalanceTransaction, error) {
	rows, err := db.Query(`
		SELECT id, transaction_type, amount, balance_before, balance_after,
		       utang_before, utang_after, COALESCE(notes, ''), created_at
		FROM balance_transactions
		WHERE member_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, memberID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txs := []models.BalanceTransaction{}
	for rows.Next() {
		var bt models.BalanceTransaction
		err := rows.Scan(
			&bt.ID, &bt.TransactionType, &bt.Amount, &bt.BalanceBefore, &bt.BalanceAfter,
			&bt.UtangBefore, &bt.UtangAfter, &bt.Notes, &bt.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		bt.TransactionTypeDisplay = models.BalanceTypeDisplay(bt.TransactionType)
		txs = append(txs, bt)
	}
	return txs, rows.Err()
}

func countBalanceTransactions(db *sql.DB, memberID int) (int, error) {
	var total int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM balance_transactions WHERE member_id = $1`,
		memberID).Scan(&total)
	return total, err
}

// monthlyTotals sums completed spending and patronage over [start, end).
func monthlyTotals(db *sql.DB, memberID int, start, end time.Time) (spent, patronage models.Money, err error) {
	err = db.QueryRow(`
		SELECT COALESCE(SUM(total_amount), 0), COALESCE(SUM(patronage_amount), 0)
		FROM transactions
		WHERE member_id = $1 AND status = 'completed'
		  AND created_at >= $2 AND created_at < $3`,
		memberID, start, end).Scan(&spent, &patronage)
	return spent, patronage, err
}
