package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/digimarket/docs"
	"github.com/GlebRadaev/digimarket/internal/config"
	"github.com/GlebRadaev/digimarket/internal/domain"
	"github.com/GlebRadaev/digimarket/internal/dto"
	balancehandlers "github.com/GlebRadaev/digimarket/internal/handlers/balance"
	keyhandlers "github.com/GlebRadaev/digimarket/internal/handlers/keys"
	ordershandlers "github.com/GlebRadaev/digimarket/internal/handlers/orders"
	promohandlers "github.com/GlebRadaev/digimarket/internal/handlers/promos"
	withdrawalhandlers "github.com/GlebRadaev/digimarket/internal/handlers/withdrawals"
	"github.com/GlebRadaev/digimarket/internal/service"
	"github.com/GlebRadaev/digimarket/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type OrderHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
	ConfirmPayment(w http.ResponseWriter, r *http.Request)
	LeaveReview(w http.ResponseWriter, r *http.Request)
	GetSales(w http.ResponseWriter, r *http.Request)
	GetPendingOrders(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type WithdrawalHandler interface {
	RequestWithdrawal(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
	GetPendingWithdrawals(w http.ResponseWriter, r *http.Request)
	ApproveWithdrawal(w http.ResponseWriter, r *http.Request)
	RejectWithdrawal(w http.ResponseWriter, r *http.Request)
}

type KeyHandler interface {
	AddKeys(w http.ResponseWriter, r *http.Request)
	GetKeys(w http.ResponseWriter, r *http.Request)
}

type PromoHandler interface {
	CreatePromo(w http.ResponseWriter, r *http.Request)
	ListPromos(w http.ResponseWriter, r *http.Request)
	UpdatePromo(w http.ResponseWriter, r *http.Request)
	DeletePromo(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	OrderHandler      OrderHandler
	BalanceHandler    BalanceHandler
	WithdrawalHandler WithdrawalHandler
	KeyHandler        KeyHandler
	PromoHandler      PromoHandler
	JWTService        *auth.JWTService
}

func New(s *service.Services, cfg *config.Config) *Handlers {
	support := dto.SupportContactDTO{
		Phone:    cfg.SupportPhone,
		Telegram: cfg.SupportTelegram,
	}
	return &Handlers{
		OrderHandler:      ordershandlers.New(s.OrderService, support),
		BalanceHandler:    balancehandlers.New(s.BalanceService),
		WithdrawalHandler: withdrawalhandlers.New(s.WithdrawalService),
		KeyHandler:        keyhandlers.New(s.KeyService),
		PromoHandler:      promohandlers.New(s.PromoService),
		JWTService:        auth.NewJWTService(cfg.JWTSecret),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Use(h.JWTService.AuthMiddleware)

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", h.OrderHandler.CreateOrder)
			r.Get("/", h.OrderHandler.GetOrders)
			r.Route("/{orderNumber}", func(r chi.Router) {
				r.Get("/", h.OrderHandler.GetOrder)
				r.Post("/confirm-payment", h.OrderHandler.ConfirmPayment)
				r.Post("/review", h.OrderHandler.LeaveReview)
			})
		})

		r.Route("/seller", func(r chi.Router) {
			r.Use(auth.RequireRole(domain.RoleSeller, domain.RoleAdmin))
			r.Get("/dashboard", h.BalanceHandler.GetDashboard)
			r.Get("/balance", h.BalanceHandler.GetBalance)
			r.Get("/sales", h.OrderHandler.GetSales)
			r.Route("/withdrawal", func(r chi.Router) {
				r.Post("/", h.WithdrawalHandler.RequestWithdrawal)
				r.Get("/", h.WithdrawalHandler.GetWithdrawals)
			})
			r.Post("/products/{productID}/keys", h.KeyHandler.AddKeys)
			r.Get("/products/{productID}/keys", h.KeyHandler.GetKeys)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.RequireRole(domain.RoleAdmin))
			r.Get("/orders/pending", h.OrderHandler.GetPendingOrders)
			r.Route("/withdrawals", func(r chi.Router) {
				r.Get("/pending", h.WithdrawalHandler.GetPendingWithdrawals)
				r.Post("/{withdrawalID}/approve", h.WithdrawalHandler.ApproveWithdrawal)
				r.Post("/{withdrawalID}/reject", h.WithdrawalHandler.RejectWithdrawal)
			})
			r.Route("/promo-codes", func(r chi.Router) {
				r.Post("/", h.PromoHandler.CreatePromo)
				r.Get("/", h.PromoHandler.ListPromos)
				r.Put("/{promoID}", h.PromoHandler.UpdatePromo)
				r.Delete("/{promoID}", h.PromoHandler.DeletePromo)
			})
		})
	})

	return r
}
