package service

import (
	"github.com/velozapp/veloz/internal/handlers/credits"
	"github.com/velozapp/veloz/internal/handlers/orders"
	"github.com/velozapp/veloz/internal/handlers/reports"
	"github.com/velozapp/veloz/internal/handlers/settlements"

	"github.com/velozapp/veloz/internal/config"
	"github.com/velozapp/veloz/internal/pg"
	"github.com/velozapp/veloz/internal/repo"
	creditservice "github.com/velozapp/veloz/internal/service/creditservice"
	orderservice "github.com/velozapp/veloz/internal/service/orderservice"
	reconcileservice "github.com/velozapp/veloz/internal/service/reconcileservice"
	settlementservice "github.com/velozapp/veloz/internal/service/settlementservice"
)

type Services struct {
	OrderService      orders.Service
	CreditService     credits.Service
	SettlementService settlements.Service
	ReportService     reports.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, cfg *config.Config) *Services {
	creditService := creditservice.New(repo.AccountRepo, repo.CodeRepo, repo.PartyRepo, repo.OrderRepo, txManager)
	orderService := orderservice.New(repo.OrderRepo, creditService, txManager, orderservice.Config{
		CardCommissionRate: cfg.CardCommissionRate,
		TaxRate:            cfg.TaxRate,
	})
	settlementService := settlementservice.New(repo.OrderRepo, repo.SettlementRepo, repo.PartyRepo, txManager)
	reportService := reconcileservice.New(repo.OrderRepo, repo.ReportRepo, txManager, cfg.CashTolerance)

	return &Services{
		OrderService:      orderService,
		CreditService:     creditService,
		SettlementService: settlementService,
		ReportService:     reportService,
	}
}
