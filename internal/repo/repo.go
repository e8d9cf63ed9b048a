package repo

import (
	"github.com/GlebRadaev/digimarket/internal/pg"
	keyrepo "github.com/GlebRadaev/digimarket/internal/repo/key-repo"
	orderrepo "github.com/GlebRadaev/digimarket/internal/repo/order-repo"
	productrepo "github.com/GlebRadaev/digimarket/internal/repo/product-repo"
	promorepo "github.com/GlebRadaev/digimarket/internal/repo/promo-repo"
	reviewrepo "github.com/GlebRadaev/digimarket/internal/repo/review-repo"
	userrepo "github.com/GlebRadaev/digimarket/internal/repo/user-repo"
	withdrawalrepo "github.com/GlebRadaev/digimarket/internal/repo/withdrawal-repo"
	"github.com/GlebRadaev/digimarket/internal/service/balanceservice"
	"github.com/GlebRadaev/digimarket/internal/service/keyservice"
	"github.com/GlebRadaev/digimarket/internal/service/orderservice"
	"github.com/GlebRadaev/digimarket/internal/service/promoservice"
	"github.com/GlebRadaev/digimarket/internal/service/withdrawalservice"
)

// UserRepo backs both the balance ledger and seller ratings.
type UserRepo interface {
	balanceservice.BalanceRepo
	orderservice.SellerRatingRepo
}

type OrderRepo interface {
	orderservice.Repo
	balanceservice.StatsRepo
}

type WithdrawalRepo interface {
	withdrawalservice.Repo
	balanceservice.WithdrawalRepo
}

type Repositories struct {
	UserRepo       UserRepo
	OrderRepo      OrderRepo
	ProductRepo    orderservice.ProductRepo
	ReviewRepo     orderservice.ReviewRepo
	KeyRepo        keyservice.Repo
	PromoRepo      promoservice.Repo
	WithdrawalRepo WithdrawalRepo
	TxManager      pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:       userrepo.New(conn),
		OrderRepo:      orderrepo.New(conn),
		ProductRepo:    productrepo.New(conn),
		ReviewRepo:     reviewrepo.New(conn),
		KeyRepo:        keyrepo.New(conn),
		PromoRepo:      promorepo.New(conn),
		WithdrawalRepo: withdrawalrepo.New(conn),
		TxManager:      txManager,
	}
}
