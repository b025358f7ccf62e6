package reportrepo

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

var reportCols = []string{
	"id", "rider_id", "report_date", "declared_cash", "declared_pos", "declared_digital",
	"expected_cash", "expected_pos", "expected_digital", "discrepancy", "flagged",
	"status", "note", "reviewed_by", "created_at",
}

var reportDate = time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

func addReportRow(rows *pgxmock.Rows, r *domain.DailyCashReport) *pgxmock.Rows {
	return rows.AddRow(r.ID, r.RiderID, r.ReportDate,
		r.DeclaredCash, r.DeclaredPOS, r.DeclaredDigital,
		r.ExpectedCash, r.ExpectedPOS, r.ExpectedDigital,
		r.Discrepancy, r.Flagged, r.Status, r.Note, r.ReviewedBy, r.CreatedAt)
}

func sample() *domain.DailyCashReport {
	return &domain.DailyCashReport{
		ID:           55,
		RiderID:      42,
		ReportDate:   reportDate,
		DeclaredCash: 9400,
		ExpectedCash: 10000,
		Discrepancy:  -600,
		Flagged:      true,
		Status:       "submitted",
		CreatedAt:    reportDate.Add(20 * time.Hour),
	}
}

func TestRepository_FindByRiderAndDate(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Existing report is returned",
			mockSetup: func() {
				rows := addReportRow(pgxmock.NewRows(reportCols), sample())
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, rider_id, report_date, declared_cash, declared_pos, declared_digital, expected_cash, expected_pos, expected_digital, discrepancy, flagged, status, note, reviewed_by, created_at FROM daily_cash_reports WHERE rider_id = $1 AND report_date = $2::date`)).
					WithArgs(42, reportDate).
					WillReturnRows(rows)
			},
			found: true,
		},
		{
			name: "Missing report returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, rider_id, report_date, declared_cash, declared_pos, declared_digital, expected_cash, expected_pos, expected_digital, discrepancy, flagged, status, note, reviewed_by, created_at FROM daily_cash_reports WHERE rider_id = $1 AND report_date = $2::date`)).
					WithArgs(42, reportDate).
					WillReturnError(pgx.ErrNoRows)
			},
			found: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, rider_id, report_date, declared_cash, declared_pos, declared_digital, expected_cash, expected_pos, expected_digital, discrepancy, flagged, status, note, reviewed_by, created_at FROM daily_cash_reports WHERE rider_id = $1 AND report_date = $2::date`)).
					WithArgs(42, reportDate).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			report, err := repo.FindByRiderAndDate(context.Background(), 42, reportDate)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.found {
				assert.NotNil(t, report)
				assert.Equal(t, int64(-600), report.Discrepancy)
				assert.True(t, report.Flagged)
			} else {
				assert.Nil(t, report)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Existing report is returned", func(t *testing.T) {
		rows := addReportRow(pgxmock.NewRows(reportCols), sample())
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, rider_id, report_date, declared_cash, declared_pos, declared_digital, expected_cash, expected_pos, expected_digital, discrepancy, flagged, status, note, reviewed_by, created_at FROM daily_cash_reports WHERE id = $1`)).
			WithArgs(55).
			WillReturnRows(rows)

		report, err := repo.FindByID(context.Background(), 55)
		assert.NoError(t, err)
		assert.Equal(t, 42, report.RiderID)
	})

	t.Run("Missing report returns nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, rider_id, report_date, declared_cash, declared_pos, declared_digital, expected_cash, expected_pos, expected_digital, discrepancy, flagged, status, note, reviewed_by, created_at FROM daily_cash_reports WHERE id = $1`)).
			WithArgs(99).
			WillReturnError(pgx.ErrNoRows)

		report, err := repo.FindByID(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, report)
	})
}

func TestRepository_Insert(t *testing.T) {
	repo, mock := NewMock(t)
	report := sample()
	report.ID = 0

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Insert returns generated id",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO daily_cash_reports (rider_id, report_date, declared_cash, declared_pos, declared_digital, expected_cash, expected_pos, expected_digital, discrepancy, flagged, status, note, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id
    `)).
					WithArgs(report.RiderID, report.ReportDate,
						report.DeclaredCash, report.DeclaredPOS, report.DeclaredDigital,
						report.ExpectedCash, report.ExpectedPOS, report.ExpectedDigital,
						report.Discrepancy, report.Flagged, report.Status, report.Note, report.CreatedAt).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(55))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO daily_cash_reports (rider_id, report_date, declared_cash, declared_pos, declared_digital, expected_cash, expected_pos, expected_digital, discrepancy, flagged, status, note, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id
    `)).
					WithArgs(report.RiderID, report.ReportDate,
						report.DeclaredCash, report.DeclaredPOS, report.DeclaredDigital,
						report.ExpectedCash, report.ExpectedPOS, report.ExpectedDigital,
						report.Discrepancy, report.Flagged, report.Status, report.Note, report.CreatedAt).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Insert(context.Background(), report)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 55, report.ID)
			}
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	reviewedBy := 7

	mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE daily_cash_reports
        SET status = $1, note = $2, reviewed_by = $3
        WHERE id = $4
    `)).
		WithArgs("approved", "", pgxmock.AnyArg(), 55).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Update(context.Background(), &domain.DailyCashReport{
		ID:         55,
		Status:     "approved",
		ReviewedBy: &reviewedBy,
	})
	assert.NoError(t, err)
}
