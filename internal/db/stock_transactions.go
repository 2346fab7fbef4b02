package db

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const stockTransactionColumns = `id, politician_id, stock_name, trade_date, trade_type, amount::text, related_bill, potential_conflict`

type CreateStockTransactionParams struct {
	PoliticianID      int64
	StockName         string
	TradeDate         time.Time
	TradeType         string
	Amount            string
	RelatedBill       *string
	PotentialConflict bool
}

func (q *Queries) CreateStockTransaction(ctx context.Context, arg CreateStockTransactionParams) (StockTransaction, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO stock_transactions (politician_id, stock_name, trade_date, trade_type, amount, related_bill, potential_conflict)
		VALUES ($1, $2, $3, $4, $5::numeric, $6, $7)
		RETURNING `+stockTransactionColumns,
		arg.PoliticianID, arg.StockName, arg.TradeDate, arg.TradeType, arg.Amount, arg.RelatedBill, arg.PotentialConflict,
	)
	return scanStockTransaction(row)
}

func scanStockTransaction(row interface{ Scan(dest ...any) error }) (StockTransaction, error) {
	var t StockTransaction
	err := row.Scan(
		&t.ID,
		&t.PoliticianID,
		&t.StockName,
		&t.TradeDate,
		&t.TradeType,
		&t.Amount,
		&t.RelatedBill,
		&t.PotentialConflict,
	)
	return t, err
}

func (q *Queries) ListStockTransactionsForPolitician(ctx context.Context, politicianID int64) ([]StockTransaction, error) {
	rows, err := q.db.Query(ctx, `
		SELECT `+stockTransactionColumns+`
		FROM stock_transactions
		WHERE politician_id = $1
		ORDER BY trade_date DESC, id`,
		politicianID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectStockTransactions(rows)
}

type ListStockTransactionsParams struct {
	PoliticianID *int64
	StockName    *string
	Limit        int32
	Offset       int32
}

// ListStockTransactions is the corpus-wide listing with optional filters.
// StockName matches case-insensitively on a substring.
func (q *Queries) ListStockTransactions(ctx context.Context, arg ListStockTransactionsParams) ([]StockTransaction, error) {
	conditions := make([]string, 0, 2)
	args := make([]any, 0, 4)

	if arg.PoliticianID != nil {
		args = append(args, *arg.PoliticianID)
		conditions = append(conditions, fmt.Sprintf("politician_id = $%d", len(args)))
	}
	if arg.StockName != nil {
		args = append(args, "%"+*arg.StockName+"%")
		conditions = append(conditions, fmt.Sprintf("stock_name ILIKE $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	args = append(args, arg.Limit)
	limitPos := len(args)
	args = append(args, arg.Offset)
	offsetPos := len(args)

	rows, err := q.db.Query(ctx, fmt.Sprintf(`
		SELECT %s
		FROM stock_transactions
		%s
		ORDER BY trade_date DESC, id
		LIMIT $%d OFFSET $%d`,
		stockTransactionColumns, where, limitPos, offsetPos,
	), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectStockTransactions(rows)
}

func collectStockTransactions(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]StockTransaction, error) {
	transactions := make([]StockTransaction, 0)
	for rows.Next() {
		var t StockTransaction
		if err := rows.Scan(
			&t.ID,
			&t.PoliticianID,
			&t.StockName,
			&t.TradeDate,
			&t.TradeType,
			&t.Amount,
			&t.RelatedBill,
			&t.PotentialConflict,
		); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
