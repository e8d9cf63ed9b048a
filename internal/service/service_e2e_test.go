package service

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/digimarket/internal/domain"
	"github.com/GlebRadaev/digimarket/internal/pg"
	"github.com/GlebRadaev/digimarket/internal/repo"
	"github.com/GlebRadaev/digimarket/internal/service/orderservice"
	"github.com/GlebRadaev/digimarket/internal/service/promoservice"
)

// SettlementSuite drives the services against a real Postgres. It runs only
// when TEST_DATABASE_URI points at a disposable database.
type SettlementSuite struct {
	suite.Suite
	ctx      context.Context
	pool     *pgxpool.Pool
	services *Services
}

func TestSettlement(t *testing.T) {
	if os.Getenv("TEST_DATABASE_URI") == "" {
		t.Skip("TEST_DATABASE_URI is not set")
	}
	suite.Run(t, &SettlementSuite{})
}

func (s *SettlementSuite) SetupSuite() {
	s.ctx = context.Background()

	pool, err := pgxpool.New(s.ctx, os.Getenv("TEST_DATABASE_URI"))
	s.Require().NoError(err)
	s.Require().NoError(pg.RunMigrations(pool))
	s.pool = pool

	s.services = New(repo.New(pg.New(pool), pg.NewTXManager(pool)))
}

func (s *SettlementSuite) TearDownSuite() {
	s.pool.Close()
}

func (s *SettlementSuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, `
		TRUNCATE withdrawals, reviews, orders, promo_codes, product_keys, products, users RESTART IDENTITY CASCADE
	`)
	s.Require().NoError(err)
}

func (s *SettlementSuite) user(role string, balance string) int {
	amount := decimal.RequireFromString(balance)
	name := uuid.NewString()[:20]
	var id int
	err := s.pool.QueryRow(s.ctx, `
		INSERT INTO users (username, email, role, balance) VALUES ($1, $2, $3, $4) RETURNING id
	`, name, name+"@example.com", role, amount).Scan(&id)
	s.Require().NoError(err)
	return id
}

func (s *SettlementSuite) product(sellerID int, price string, autoDelivery bool) int {
	amount := decimal.RequireFromString(price)
	var id int
	err := s.pool.QueryRow(s.ctx, `
		INSERT INTO products (seller_id, title, price, status, auto_delivery)
		VALUES ($1, 'Game key', $2, 'approved', $3) RETURNING id
	`, sellerID, amount, autoDelivery).Scan(&id)
	s.Require().NoError(err)
	return id
}

func (s *SettlementSuite) balance(userID int) decimal.Decimal {
	summary, err := s.services.BalanceService.GetSummary(s.ctx, userID)
	s.Require().NoError(err)
	return summary.Balance
}

func (s *SettlementSuite) TestConfirmDeliversKeyAndCreditsSeller() {
	seller := s.user(domain.RoleSeller, "0")
	buyer := s.user(domain.RoleBuyer, "0")
	productID := s.product(seller, "100.00", true)

	added, err := s.services.KeyService.AddKeys(s.ctx, seller, productID, []string{"KEY1"})
	s.Require().NoError(err)
	s.Equal(1, added)

	order, err := s.services.OrderService.CreateOrder(s.ctx, orderservice.CreateInput{
		BuyerID:   buyer,
		ProductID: productID,
		Quantity:  1,
	})
	s.Require().NoError(err)
	s.Equal(domain.OrderPending, order.Status)

	confirmed, err := s.services.OrderService.ConfirmPayment(s.ctx, order.OrderNumber, buyer)
	s.Require().NoError(err)
	s.Equal(domain.OrderCompleted, confirmed.Status)
	s.Require().NotNil(confirmed.DeliveredKey)
	s.Equal("KEY1", *confirmed.DeliveredKey)
	s.True(decimal.RequireFromString("85").Equal(s.balance(seller)))

	_, err = s.services.OrderService.ConfirmPayment(s.ctx, order.OrderNumber, buyer)
	s.ErrorIs(err, domain.ErrInvalidState)
	s.True(decimal.RequireFromString("85").Equal(s.balance(seller)))
}

func (s *SettlementSuite) TestPromoDiscountsAndCountsUse() {
	admin := s.user(domain.RoleAdmin, "0")
	seller := s.user(domain.RoleSeller, "0")
	buyer := s.user(domain.RoleBuyer, "0")
	productID := s.product(seller, "200.00", false)

	_, err := s.services.PromoService.Create(s.ctx, admin, promoservice.CreateInput{
		Code:            "SAVE10",
		DiscountPercent: 10,
		MaxUses:         domain.UnlimitedUses,
		MinOrderAmount:  decimal.NewFromInt(50),
	})
	s.Require().NoError(err)

	order, err := s.services.OrderService.CreateOrder(s.ctx, orderservice.CreateInput{
		BuyerID:   buyer,
		ProductID: productID,
		Quantity:  1,
		PromoCode: "save10",
	})
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(20).Equal(order.DiscountAmount))
	s.True(decimal.NewFromInt(180).Equal(order.TotalPrice))

	promos, err := s.services.PromoService.List(s.ctx, domain.Page{Limit: 10})
	s.Require().NoError(err)
	s.Require().Len(promos, 1)
	s.Equal(1, promos[0].CurrentUses)
}

func (s *SettlementSuite) TestWithdrawalBeyondBalanceIsRejected() {
	seller := s.user(domain.RoleSeller, "50.00")

	_, _, err := s.services.WithdrawalService.RequestWithdrawal(s.ctx, seller, decimal.NewFromInt(80), "wallet")
	s.ErrorIs(err, domain.ErrInsufficientBalance)
	s.True(decimal.NewFromInt(50).Equal(s.balance(seller)))

	pending, err := s.services.WithdrawalService.ListWithdrawals(s.ctx, seller, domain.Page{Limit: 10})
	s.Require().NoError(err)
	s.Empty(pending)
}

func (s *SettlementSuite) TestRejectedWithdrawalIsRefunded() {
	admin := s.user(domain.RoleAdmin, "0")
	seller := s.user(domain.RoleSeller, "50.00")

	withdrawal, newBalance, err := s.services.WithdrawalService.RequestWithdrawal(s.ctx, seller, decimal.NewFromInt(30), "wallet")
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(20).Equal(newBalance))

	summary, err := s.services.BalanceService.GetSummary(s.ctx, seller)
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(30).Equal(summary.PendingWithdrawal))

	rejected, err := s.services.WithdrawalService.Reject(s.ctx, withdrawal.ID, admin, "wallet blocked")
	s.Require().NoError(err)
	s.Equal(domain.WithdrawalRejected, rejected.Status)
	s.True(decimal.NewFromInt(50).Equal(s.balance(seller)))

	_, err = s.services.WithdrawalService.Approve(s.ctx, withdrawal.ID, admin)
	s.ErrorIs(err, domain.ErrInvalidState)
}

func (s *SettlementSuite) TestConcurrentConfirmationsNeverShareKeys() {
	const keysInStock, orders = 3, 6

	seller := s.user(domain.RoleSeller, "0")
	buyer := s.user(domain.RoleBuyer, "0")
	productID := s.product(seller, "10.00", true)

	_, err := s.services.KeyService.AddKeys(s.ctx, seller, productID, []string{"K1", "K2", "K3"})
	s.Require().NoError(err)

	numbers := make([]string, orders)
	for i := range numbers {
		order, err := s.services.OrderService.CreateOrder(s.ctx, orderservice.CreateInput{
			BuyerID:   buyer,
			ProductID: productID,
			Quantity:  1,
		})
		s.Require().NoError(err)
		numbers[i] = order.OrderNumber
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	delivered := map[string]bool{}
	outOfStock := 0
	for _, number := range numbers {
		wg.Add(1)
		go func(number string) {
			defer wg.Done()
			order, err := s.services.OrderService.ConfirmPayment(s.ctx, number, buyer)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				delivered[*order.DeliveredKey] = true
			case errors.Is(err, domain.ErrOutOfStock):
				outOfStock++
			default:
				s.Failf("unexpected confirm error", "%v", err)
			}
		}(number)
	}
	wg.Wait()

	s.Len(delivered, keysInStock)
	s.Equal(orders-keysInStock, outOfStock)
	s.True(decimal.RequireFromString("25.50").Equal(s.balance(seller)))
}
