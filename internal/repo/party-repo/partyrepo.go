// Package partyrepo resolves rider and restaurant commission profiles.
// Order rows reference these parties by bare id (soft references); every
// component that needs a rate or pay type goes through this lookup instead
// of joining ad hoc.
package partyrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/velozapp/veloz/internal/domain"
	"github.com/velozapp/veloz/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetRider(ctx context.Context, id int) (*domain.Rider, error) {
	query := `
        SELECT id, name, pay_type, commission_rate, fixed_salary, city_id, created_at
        FROM riders
        WHERE id = $1
    `
	var rider domain.Rider
	err := r.db.QueryRow(ctx, query, id).Scan(&rider.ID, &rider.Name, &rider.PayType,
		&rider.CommissionRate, &rider.FixedSalary, &rider.CityID, &rider.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find rider", zap.Error(err))
		return nil, err
	}
	return &rider, nil
}

func (r *Repository) GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	query := `
        SELECT id, name, commission_rate, commission_mode, city_id, created_at
        FROM restaurants
        WHERE id = $1
    `
	var restaurant domain.Restaurant
	err := r.db.QueryRow(ctx, query, id).Scan(&restaurant.ID, &restaurant.Name,
		&restaurant.CommissionRate, &restaurant.CommissionMode, &restaurant.CityID, &restaurant.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find restaurant", zap.Error(err))
		return nil, err
	}
	return &restaurant, nil
}
