package repo

import (
	"github.com/velozapp/veloz/internal/pg"
	accountrepo "github.com/velozapp/veloz/internal/repo/account-repo"
	coderepo "github.com/velozapp/veloz/internal/repo/code-repo"
	orderrepo "github.com/velozapp/veloz/internal/repo/order-repo"
	partyrepo "github.com/velozapp/veloz/internal/repo/party-repo"
	reportrepo "github.com/velozapp/veloz/internal/repo/report-repo"
	settlementrepo "github.com/velozapp/veloz/internal/repo/settlement-repo"
	"github.com/velozapp/veloz/internal/service/creditservice"
	"github.com/velozapp/veloz/internal/service/orderservice"
	"github.com/velozapp/veloz/internal/service/reconcileservice"
	"github.com/velozapp/veloz/internal/service/settlementservice"
)

// OrderRepository is the full surface the concrete order repo implements;
// each service consumes only its own slice of it.
type OrderRepository interface {
	orderservice.Repo
	settlementservice.OrderRepo
	reconcileservice.OrderRepo
	creditservice.ItemsRepo
}

type Repositories struct {
	OrderRepo      OrderRepository
	AccountRepo    creditservice.AccountRepo
	CodeRepo       creditservice.CodeRepo
	PartyRepo      creditservice.PartyRepo
	SettlementRepo settlementservice.Repo
	ReportRepo     reconcileservice.Repo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		OrderRepo:      orderrepo.New(conn),
		AccountRepo:    accountrepo.New(conn),
		CodeRepo:       coderepo.New(conn),
		PartyRepo:      partyrepo.New(conn),
		SettlementRepo: settlementrepo.New(conn),
		ReportRepo:     reportrepo.New(conn),
	}
}
