package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/velozapp/veloz/docs"
	creditshandlers "github.com/velozapp/veloz/internal/handlers/credits"
	ordershandlers "github.com/velozapp/veloz/internal/handlers/orders"
	reportshandlers "github.com/velozapp/veloz/internal/handlers/reports"
	settlementshandlers "github.com/velozapp/veloz/internal/handlers/settlements"
	"github.com/velozapp/veloz/internal/service"
	"github.com/velozapp/veloz/pkg/auth"
)

type OrderHandler interface {
	Transition(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Coverage(w http.ResponseWriter, r *http.Request)
}

type SettlementHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type CreditHandler interface {
	Redeem(w http.ResponseWriter, r *http.Request)
	GenerateCode(w http.ResponseWriter, r *http.Request)
	VoidCode(w http.ResponseWriter, r *http.Request)
	Adjust(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	ListTransactions(w http.ResponseWriter, r *http.Request)
}

type ReportHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
	Overview(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	OrderHandler      OrderHandler
	SettlementHandler SettlementHandler
	CreditHandler     CreditHandler
	ReportHandler     ReportHandler
}

func New(s *service.Services, coverage ordershandlers.CoverageChecker) *Handlers {
	return &Handlers{
		OrderHandler:      ordershandlers.New(s.OrderService, coverage),
		SettlementHandler: settlementshandlers.New(s.SettlementService),
		CreditHandler:     creditshandlers.New(s.CreditService),
		ReportHandler:     reportshandlers.New(s.ReportService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metricsMiddleware,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/coverage", h.OrderHandler.Coverage)
			r.Post("/{id}/transition", h.OrderHandler.Transition)
			r.Get("/{id}", h.OrderHandler.GetOrder)
			r.Get("/{id}/history", h.OrderHandler.History)
		})

		r.Route("/settlements", func(r chi.Router) {
			r.Use(auth.RequireRole(auth.RoleAdmin, auth.RoleAgent))
			r.Post("/", h.SettlementHandler.Create)
			r.Get("/", h.SettlementHandler.List)
			r.Patch("/{id}", h.SettlementHandler.UpdateStatus)
		})

		r.Route("/credits", func(r chi.Router) {
			r.Post("/redeem", h.CreditHandler.Redeem)
			r.Get("/{type}/{id}", h.CreditHandler.GetBalance)
			r.Get("/{type}/{id}/transactions", h.CreditHandler.ListTransactions)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireRole(auth.RoleAdmin))
				r.Post("/codes", h.CreditHandler.GenerateCode)
				r.Post("/codes/{code}/void", h.CreditHandler.VoidCode)
				r.Post("/adjust", h.CreditHandler.Adjust)
			})
		})

		r.Route("/reports", func(r chi.Router) {
			r.Post("/", h.ReportHandler.Submit)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireRole(auth.RoleAdmin, auth.RoleAgent))
				r.Patch("/{id}", h.ReportHandler.Review)
				r.Get("/overview", h.ReportHandler.Overview)
			})
		})
	})

	return r
}
