package coderepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/velozapp/veloz/internal/domain"
	"github.com/velozapp/veloz/internal/pg"
	"go.uber.org/zap"
)

const codeColumns = `id, code, amount, status, rider_hint, created_by, created_at, redeemed_by, redeemed_at, voided_by, voided_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanCode(row pgx.Row) (*domain.RechargeCode, error) {
	var code domain.RechargeCode
	err := row.Scan(&code.ID, &code.Code, &code.Amount, &code.Status, &code.RiderHint,
		&code.CreatedBy, &code.CreatedAt, &code.RedeemedBy, &code.RedeemedAt,
		&code.VoidedBy, &code.VoidedAt)
	if err != nil {
		return nil, err
	}
	return &code, nil
}

func (r *Repository) FindByCode(ctx context.Context, code string) (*domain.RechargeCode, error) {
	query := `SELECT ` + codeColumns + ` FROM recharge_codes WHERE code = $1`
	rc, err := scanCode(r.db.QueryRow(ctx, query, code))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find recharge code", zap.Error(err))
		return nil, err
	}
	return rc, nil
}

func (r *Repository) Insert(ctx context.Context, code *domain.RechargeCode) error {
	query := `
        INSERT INTO recharge_codes (code, amount, status, rider_hint, created_by, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		code.Code, code.Amount, code.Status, code.RiderHint, code.CreatedBy, code.CreatedAt).Scan(&code.ID)
	if err != nil {
		zap.L().Error("can't insert recharge code", zap.Error(err))
		return err
	}
	return nil
}

// MarkRedeemed flips a pending code to redeemed. The status predicate makes
// the flip conditional: the loser of a race affects zero rows and gets false
// back.
func (r *Repository) MarkRedeemed(ctx context.Context, codeID, redeemerID int) (bool, error) {
	query := `
        UPDATE recharge_codes
        SET status = 'redeemed', redeemed_by = $1, redeemed_at = now()
        WHERE id = $2 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, redeemerID, codeID)
	if err != nil {
		zap.L().Error("can't redeem recharge code", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) MarkVoided(ctx context.Context, codeID, actorID int) (bool, error) {
	query := `
        UPDATE recharge_codes
        SET status = 'voided', voided_by = $1, voided_at = now()
        WHERE id = $2 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, actorID, codeID)
	if err != nil {
		zap.L().Error("can't void recharge code", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
