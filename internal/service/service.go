package service

import (
	"github.com/GlebRadaev/digimarket/internal/handlers/balance"
	"github.com/GlebRadaev/digimarket/internal/handlers/keys"
	"github.com/GlebRadaev/digimarket/internal/handlers/orders"
	"github.com/GlebRadaev/digimarket/internal/handlers/promos"
	"github.com/GlebRadaev/digimarket/internal/handlers/withdrawals"

	"github.com/GlebRadaev/digimarket/internal/repo"
	balanceservice "github.com/GlebRadaev/digimarket/internal/service/balanceservice"
	keyservice "github.com/GlebRadaev/digimarket/internal/service/keyservice"
	orderservice "github.com/GlebRadaev/digimarket/internal/service/orderservice"
	promoservice "github.com/GlebRadaev/digimarket/internal/service/promoservice"
	withdrawalservice "github.com/GlebRadaev/digimarket/internal/service/withdrawalservice"
)

type Services struct {
	OrderService      orders.Service
	BalanceService    balance.Service
	WithdrawalService withdrawals.Service
	KeyService        keys.Service
	PromoService      promos.Service
}

func New(repo *repo.Repositories) *Services {
	balanceService := balanceservice.New(repo.UserRepo, repo.WithdrawalRepo, repo.OrderRepo)
	promoService := promoservice.New(repo.PromoRepo)
	keyService := keyservice.New(repo.KeyRepo, repo.ProductRepo)
	orderService := orderservice.New(
		repo.OrderRepo,
		repo.ProductRepo,
		repo.ReviewRepo,
		repo.UserRepo,
		promoService,
		keyService,
		balanceService,
		repo.TxManager,
	)
	withdrawalService := withdrawalservice.New(repo.WithdrawalRepo, balanceService, repo.TxManager)

	return &Services{
		OrderService:      orderService,
		BalanceService:    balanceService,
		WithdrawalService: withdrawalService,
		KeyService:        keyService,
		PromoService:      promoService,
	}
}
