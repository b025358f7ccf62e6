package orderrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/velozapp/veloz/internal/domain"
	"github.com/velozapp/veloz/internal/pg"
	"go.uber.org/zap"
)

const orderColumns = `id, code, restaurant_id, rider_id, city_id, status, subtotal, delivery_fee, service_fee, discount, total, payment_method, actual_payment_method, delivery_proof_url, payment_proof_url, reject_reason, created_at, delivered_at, cancelled_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(
		&order.ID, &order.Code, &order.RestaurantID, &order.RiderID, &order.CityID,
		&order.Status, &order.Subtotal, &order.DeliveryFee, &order.ServiceFee,
		&order.Discount, &order.Total, &order.PaymentMethod, &order.ActualPaymentMethod,
		&order.DeliveryProofURL, &order.PaymentProofURL, &order.RejectReason,
		&order.CreatedAt, &order.DeliveredAt, &order.CancelledAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

// FindByIDForUpdate row-locks the order; must run inside a transaction so
// racing transitions serialize on the same row.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 FOR UPDATE`
	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) Update(ctx context.Context, order *domain.Order) error {
	query := `
        UPDATE orders
        SET status = $1, rider_id = $2, service_fee = $3, total = $4,
            actual_payment_method = $5, delivery_proof_url = $6, payment_proof_url = $7,
            reject_reason = $8, delivered_at = $9, cancelled_at = $10
        WHERE id = $11
    `
	_, err := r.db.Exec(ctx, query,
		order.Status, order.RiderID, order.ServiceFee, order.Total,
		order.ActualPaymentMethod, order.DeliveryProofURL, order.PaymentProofURL,
		order.RejectReason, order.DeliveredAt, order.CancelledAt, order.ID)
	if err != nil {
		zap.L().Error("failed to update order", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) AppendHistory(ctx context.Context, transition *domain.StatusTransition) error {
	query := `
        INSERT INTO order_status_history (order_id, from_status, to_status, actor_id, notes, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.Exec(ctx, query,
		transition.OrderID, transition.FromStatus, transition.ToStatus,
		transition.ActorID, transition.Notes, transition.CreatedAt)
	if err != nil {
		zap.L().Error("failed to append order history", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) History(ctx context.Context, orderID int) ([]domain.StatusTransition, error) {
	query := `
        SELECT id, order_id, from_status, to_status, actor_id, notes, created_at
        FROM order_status_history
        WHERE order_id = $1
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't get order history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var history []domain.StatusTransition
	for rows.Next() {
		var t domain.StatusTransition
		err := rows.Scan(&t.ID, &t.OrderID, &t.FromStatus, &t.ToStatus, &t.ActorID, &t.Notes, &t.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan history row", zap.Error(err))
			return nil, err
		}
		history = append(history, t)
	}
	return history, nil
}

// FindDeliveredForEntity returns delivered orders for one rider or
// restaurant with delivery date inside [from, to], both inclusive.
func (r *Repository) FindDeliveredForEntity(ctx context.Context, entityType string, entityID int, from, to time.Time) ([]domain.Order, error) {
	column := "rider_id"
	if entityType == "restaurant" {
		column = "restaurant_id"
	}
	query := `SELECT ` + orderColumns + ` FROM orders
        WHERE ` + column + ` = $1 AND status = 'delivered'
          AND delivered_at::date BETWEEN $2::date AND $3::date
        ORDER BY delivered_at ASC`

	rows, err := r.db.Query(ctx, query, entityID, from, to)
	if err != nil {
		zap.L().Error("can't get delivered orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *Repository) FindDeliveredForRiderOn(ctx context.Context, riderID int, date time.Time) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
        WHERE rider_id = $1 AND status = 'delivered' AND delivered_at::date = $2::date
        ORDER BY delivered_at ASC`

	rows, err := r.db.Query(ctx, query, riderID, date)
	if err != nil {
		zap.L().Error("can't get rider deliveries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *Repository) RidersWithDeliveriesOn(ctx context.Context, date time.Time) ([]int, error) {
	query := `
        SELECT DISTINCT rider_id
        FROM orders
        WHERE status = 'delivered' AND rider_id IS NOT NULL AND delivered_at::date = $1::date
        ORDER BY rider_id
    `
	rows, err := r.db.Query(ctx, query, date)
	if err != nil {
		zap.L().Error("can't list riders with deliveries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var riderIDs []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		riderIDs = append(riderIDs, id)
	}
	return riderIDs, nil
}

func (r *Repository) ItemsByOrderID(ctx context.Context, orderID int) ([]domain.OrderItem, error) {
	query := `
        SELECT id, order_id, name, quantity, unit_price, total, commission_rate
        FROM order_items
        WHERE order_id = $1
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't get order items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.Name, &item.Quantity, &item.UnitPrice, &item.Total, &item.CommissionRate)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func collectOrders(rows pgx.Rows) ([]domain.Order, error) {
	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}
