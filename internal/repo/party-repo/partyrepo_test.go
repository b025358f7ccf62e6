package partyrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/velozapp/veloz/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_GetRider(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		riderID   int
		mockSetup func()
		expectErr bool
		result    *domain.Rider
	}{
		{
			name:    "Existing rider is returned",
			riderID: 42,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "pay_type", "commission_rate", "fixed_salary", "city_id", "created_at"}).
					AddRow(42, "Karim", "commission", 0.20, int64(0), 1, createdAt)
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, name, pay_type, commission_rate, fixed_salary, city_id, created_at
        FROM riders
        WHERE id = $1
    `)).
					WithArgs(42).
					WillReturnRows(rows)
			},
			result: &domain.Rider{
				ID:             42,
				Name:           "Karim",
				PayType:        "commission",
				CommissionRate: 0.20,
				CityID:         1,
				CreatedAt:      createdAt,
			},
		},
		{
			name:    "Missing rider returns nil",
			riderID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, name, pay_type, commission_rate, fixed_salary, city_id, created_at
        FROM riders
        WHERE id = $1
    `)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:    "Database error",
			riderID: 42,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, name, pay_type, commission_rate, fixed_salary, city_id, created_at
        FROM riders
        WHERE id = $1
    `)).
					WithArgs(42).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetRider(context.Background(), tt.riderID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_GetRestaurant(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Existing restaurant is returned", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "name", "commission_rate", "commission_mode", "city_id", "created_at"}).
			AddRow(7, "Shawarma Palace", 0.15, "order", 1, createdAt)
		mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, name, commission_rate, commission_mode, city_id, created_at
        FROM restaurants
        WHERE id = $1
    `)).
			WithArgs(7).
			WillReturnRows(rows)

		restaurant, err := repo.GetRestaurant(context.Background(), 7)
		assert.NoError(t, err)
		assert.Equal(t, "Shawarma Palace", restaurant.Name)
		assert.Equal(t, 0.15, restaurant.CommissionRate)
	})

	t.Run("Missing restaurant returns nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, name, commission_rate, commission_mode, city_id, created_at
        FROM restaurants
        WHERE id = $1
    `)).
			WithArgs(99).
			WillReturnError(pgx.ErrNoRows)

		restaurant, err := repo.GetRestaurant(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, restaurant)
	})
}
