package reportrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/velozapp/veloz/internal/domain"
	"github.com/velozapp/veloz/internal/pg"
	"go.uber.org/zap"
)

const reportColumns = `id, rider_id, report_date, declared_cash, declared_pos, declared_digital, expected_cash, expected_pos, expected_digital, discrepancy, flagged, status, note, reviewed_by, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanReport(row pgx.Row) (*domain.DailyCashReport, error) {
	var report domain.DailyCashReport
	err := row.Scan(&report.ID, &report.RiderID, &report.ReportDate,
		&report.DeclaredCash, &report.DeclaredPOS, &report.DeclaredDigital,
		&report.ExpectedCash, &report.ExpectedPOS, &report.ExpectedDigital,
		&report.Discrepancy, &report.Flagged, &report.Status, &report.Note,
		&report.ReviewedBy, &report.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *Repository) FindByRiderAndDate(ctx context.Context, riderID int, date time.Time) (*domain.DailyCashReport, error) {
	query := `SELECT ` + reportColumns + ` FROM daily_cash_reports WHERE rider_id = $1 AND report_date = $2::date`
	report, err := scanReport(r.db.QueryRow(ctx, query, riderID, date))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find cash report", zap.Error(err))
		return nil, err
	}
	return report, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.DailyCashReport, error) {
	query := `SELECT ` + reportColumns + ` FROM daily_cash_reports WHERE id = $1`
	report, err := scanReport(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find cash report", zap.Error(err))
		return nil, err
	}
	return report, nil
}

func (r *Repository) Insert(ctx context.Context, report *domain.DailyCashReport) error {
	query := `
        INSERT INTO daily_cash_reports (rider_id, report_date, declared_cash, declared_pos, declared_digital, expected_cash, expected_pos, expected_digital, discrepancy, flagged, status, note, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		report.RiderID, report.ReportDate,
		report.DeclaredCash, report.DeclaredPOS, report.DeclaredDigital,
		report.ExpectedCash, report.ExpectedPOS, report.ExpectedDigital,
		report.Discrepancy, report.Flagged, report.Status, report.Note, report.CreatedAt).Scan(&report.ID)
	if err != nil {
		zap.L().Error("can't insert cash report", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, report *domain.DailyCashReport) error {
	query := `
        UPDATE daily_cash_reports
        SET status = $1, note = $2, reviewed_by = $3
        WHERE id = $4
    `
	_, err := r.db.Exec(ctx, query, report.Status, report.Note, report.ReviewedBy, report.ID)
	if err != nil {
		zap.L().Error("can't update cash report", zap.Error(err))
		return err
	}
	return nil
}
