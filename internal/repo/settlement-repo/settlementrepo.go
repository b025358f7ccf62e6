package settlementrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/velozapp/veloz/internal/domain"
	"github.com/velozapp/veloz/internal/pg"
	"github.com/velozapp/veloz/internal/service/settlementservice"
	"go.uber.org/zap"
)

const settlementColumns = `id, entity_type, entity_id, period_start, period_end, orders_count, gross_sales, cash_collected, pos_collected, digital_collected, delivery_fees, commission, bonuses, fuel_reimbursement, net_payout, status, notes, paid_at, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanSettlement(row pgx.Row) (*domain.Settlement, error) {
	var s domain.Settlement
	err := row.Scan(&s.ID, &s.EntityType, &s.EntityID, &s.PeriodStart, &s.PeriodEnd,
		&s.OrdersCount, &s.GrossSales, &s.CashCollected, &s.POSCollected, &s.DigitalCollected,
		&s.DeliveryFees, &s.Commission, &s.Bonuses, &s.FuelReimbursement, &s.NetPayout,
		&s.Status, &s.Notes, &s.PaidAt, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// FindOverlapping returns any settlement of the same entity whose period
// intersects [start, end].
func (r *Repository) FindOverlapping(ctx context.Context, entityType string, entityID int, start, end time.Time) (*domain.Settlement, error) {
	query := `SELECT ` + settlementColumns + ` FROM settlements
        WHERE entity_type = $1 AND entity_id = $2
          AND period_start <= $4::date AND period_end >= $3::date
        LIMIT 1`
	settlement, err := scanSettlement(r.db.QueryRow(ctx, query, entityType, entityID, start, end))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't check settlement overlap", zap.Error(err))
		return nil, err
	}
	return settlement, nil
}

func (r *Repository) Insert(ctx context.Context, settlement *domain.Settlement) error {
	query := `
        INSERT INTO settlements (entity_type, entity_id, period_start, period_end, orders_count, gross_sales, cash_collected, pos_collected, digital_collected, delivery_fees, commission, bonuses, fuel_reimbursement, net_payout, status, notes, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		settlement.EntityType, settlement.EntityID, settlement.PeriodStart, settlement.PeriodEnd,
		settlement.OrdersCount, settlement.GrossSales, settlement.CashCollected,
		settlement.POSCollected, settlement.DigitalCollected, settlement.DeliveryFees,
		settlement.Commission, settlement.Bonuses, settlement.FuelReimbursement,
		settlement.NetPayout, settlement.Status, settlement.Notes, settlement.CreatedAt).Scan(&settlement.ID)
	if err != nil {
		zap.L().Error("can't insert settlement", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Settlement, error) {
	query := `SELECT ` + settlementColumns + ` FROM settlements WHERE id = $1`
	settlement, err := scanSettlement(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find settlement", zap.Error(err))
		return nil, err
	}
	return settlement, nil
}

func (r *Repository) Update(ctx context.Context, settlement *domain.Settlement) error {
	query := `
        UPDATE settlements
        SET status = $1, fuel_reimbursement = $2, net_payout = $3, notes = $4, paid_at = $5
        WHERE id = $6
    `
	_, err := r.db.Exec(ctx, query,
		settlement.Status, settlement.FuelReimbursement, settlement.NetPayout,
		settlement.Notes, settlement.PaidAt, settlement.ID)
	if err != nil {
		zap.L().Error("can't update settlement", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) List(ctx context.Context, filter settlementservice.ListFilter) ([]domain.Settlement, error) {
	query := `SELECT ` + settlementColumns + ` FROM settlements
        WHERE ($1 = '' OR entity_type = $1)
          AND ($2 = 0 OR entity_id = $2)
          AND ($3 = '' OR status = $3)
          AND ($4 = '' OR to_char(period_start, 'YYYY-MM') = $4)
        ORDER BY period_start DESC, id DESC
        LIMIT $5 OFFSET $6`

	rows, err := r.db.Query(ctx, query,
		filter.EntityType, filter.EntityID, filter.Status, filter.Month, filter.Limit, filter.Offset)
	if err != nil {
		zap.L().Error("can't list settlements", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var settlements []domain.Settlement
	for rows.Next() {
		settlement, err := scanSettlement(rows)
		if err != nil {
			zap.L().Error("can't scan settlement row", zap.Error(err))
			return nil, err
		}
		settlements = append(settlements, *settlement)
	}
	return settlements, nil
}
