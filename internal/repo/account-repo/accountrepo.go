package accountrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/velozapp/veloz/internal/domain"
	"github.com/velozapp/veloz/internal/pg"
	"go.uber.org/zap"
)

const accountColumns = `id, owner_type, owner_id, balance, total_earned, total_liquidated, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanAccount(row pgx.Row) (*domain.CreditAccount, error) {
	var account domain.CreditAccount
	err := row.Scan(&account.ID, &account.OwnerType, &account.OwnerID,
		&account.Balance, &account.TotalEarned, &account.TotalLiquidated, &account.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *Repository) Get(ctx context.Context, ownerType string, ownerID int) (*domain.CreditAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM credit_accounts WHERE owner_type = $1 AND owner_id = $2`
	account, err := scanAccount(r.db.QueryRow(ctx, query, ownerType, ownerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get credit account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

// GetForUpdate row-locks the account so concurrent postings serialize and
// the balance_before/balance_after chain stays gapless.
func (r *Repository) GetForUpdate(ctx context.Context, ownerType string, ownerID int) (*domain.CreditAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM credit_accounts WHERE owner_type = $1 AND owner_id = $2 FOR UPDATE`
	account, err := scanAccount(r.db.QueryRow(ctx, query, ownerType, ownerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to lock credit account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) Create(ctx context.Context, ownerType string, ownerID int) (*domain.CreditAccount, error) {
	query := `
        INSERT INTO credit_accounts (owner_type, owner_id, balance, total_earned, total_liquidated)
        VALUES ($1, $2, 0, 0, 0)
        RETURNING ` + accountColumns
	account, err := scanAccount(r.db.QueryRow(ctx, query, ownerType, ownerID))
	if err != nil {
		zap.L().Error("failed to create credit account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) UpdateTotals(ctx context.Context, account *domain.CreditAccount) error {
	query := `
        UPDATE credit_accounts
        SET balance = $1, total_earned = $2, total_liquidated = $3
        WHERE id = $4
    `
	_, err := r.db.Exec(ctx, query, account.Balance, account.TotalEarned, account.TotalLiquidated, account.ID)
	if err != nil {
		zap.L().Error("failed to update credit account", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) InsertTransaction(ctx context.Context, transaction *domain.CreditTransaction) error {
	query := `
        INSERT INTO credit_transactions (account_id, type, amount, balance_before, balance_after, order_id, batch_id, note, actor_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		transaction.AccountID, transaction.Type, transaction.Amount,
		transaction.BalanceBefore, transaction.BalanceAfter,
		transaction.OrderID, transaction.BatchID, transaction.Note,
		transaction.ActorID, transaction.CreatedAt).Scan(&transaction.ID)
	if err != nil {
		zap.L().Error("failed to insert credit transaction", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) HasOrderTransactions(ctx context.Context, orderID int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM credit_transactions WHERE order_id = $1)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, orderID).Scan(&exists); err != nil {
		zap.L().Error("failed to check order transactions", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) ListTransactions(ctx context.Context, accountID, limit, offset int) ([]domain.CreditTransaction, error) {
	query := `
        SELECT id, account_id, type, amount, balance_before, balance_after, order_id, batch_id, note, actor_id, created_at
        FROM credit_transactions
        WHERE account_id = $1
        ORDER BY created_at DESC, id DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		zap.L().Error("failed to list credit transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.CreditTransaction
	for rows.Next() {
		var t domain.CreditTransaction
		err := rows.Scan(&t.ID, &t.AccountID, &t.Type, &t.Amount, &t.BalanceBefore, &t.BalanceAfter,
			&t.OrderID, &t.BatchID, &t.Note, &t.ActorID, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, nil
}
