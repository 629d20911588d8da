package transaction

import (
	"context"
	"errors"
	"spendlog/internal/core/domain/transaction"
	"spendlog/internal/core/domain/user"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type PgxTransactionRepository struct {
	db DBTX
}

func NewPgxRepository(db DBTX) *PgxTransactionRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxTransactionRepository{db: db}
}

func (r *PgxTransactionRepository) Create(
	ctx context.Context,
	input transaction.CreateInput,
) (t transaction.Transaction, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO transaction (created_by, text, amount, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_by, text, amount, created_at`,
		int64(input.CreatedBy),
		input.Text,
		int64(input.Amount),
		input.CreatedAt,
	)
	return scanTransaction(row)
}

func (r *PgxTransactionRepository) GetByID(
	ctx context.Context,
	id transaction.ID,
) (t transaction.Transaction, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, created_by, text, amount, created_at FROM transaction WHERE id = $1`,
		int64(id),
	)
	t, err = scanTransaction(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return t, transaction.ErrTransactionDoesNotExist
	}
	return t, err
}

func (r *PgxTransactionRepository) ListByUser(
	ctx context.Context,
	userID user.ID,
) ([]transaction.Transaction, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, created_by, text, amount, created_at FROM transaction
		 WHERE created_by = $1
		 ORDER BY created_at DESC, id DESC`,
		int64(userID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := make([]transaction.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *PgxTransactionRepository) Delete(ctx context.Context, id transaction.ID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM transaction WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return transaction.ErrTransactionDoesNotExist
	}
	return nil
}

func scanTransaction(row pgx.Row) (t transaction.Transaction, err error) {
	var (
		id        int64
		createdBy int64
		text      string
		amount    int64
		createdAt time.Time
	)
	err = row.Scan(&id, &createdBy, &text, &amount, &createdAt)
	if err != nil {
		return t, err
	}
	return transaction.Transaction{
		ID:        transaction.ID(id),
		CreatedBy: user.ID(createdBy),
		Text:      text,
		Amount:    transaction.Amount(amount),
		CreatedAt: createdAt,
	}, nil
}
