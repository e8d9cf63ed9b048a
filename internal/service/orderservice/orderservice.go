package orderservice

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ShiraazMoollatjie/goluhn"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/digimarket/internal/domain"
	"github.com/GlebRadaev/digimarket/internal/pg"
	"github.com/GlebRadaev/digimarket/pkg/validate"
)

type Repo interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
	LockByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
	ConfirmPayment(ctx context.Context, orderID int, deliveredKey *string, earnings decimal.Decimal, fee decimal.Decimal) (*domain.Order, error)
	ListByBuyer(ctx context.Context, buyerID int, page domain.Page) ([]domain.Order, error)
	ListBySeller(ctx context.Context, sellerID int, page domain.Page) ([]domain.Order, error)
	ListPendingPayment(ctx context.Context, page domain.Page) ([]domain.Order, error)
}

type ProductRepo interface {
	FindByID(ctx context.Context, productID int) (*domain.Product, error)
	IncrementSales(ctx context.Context, productID int) error
	RecomputeRating(ctx context.Context, productID int) (*domain.RatingSummary, error)
}

type ReviewRepo interface {
	FindByOrderID(ctx context.Context, orderID int) (*domain.Review, error)
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
}

type SellerRatingRepo interface {
	RecomputeRating(ctx context.Context, sellerID int) (*domain.RatingSummary, error)
}

type PromoEngine interface {
	Redeem(ctx context.Context, code string, orderTotal decimal.Decimal) (*domain.PromoCode, decimal.Decimal, error)
}

type KeyInventory interface {
	ClaimOne(ctx context.Context, productID int, userID int) (*domain.ProductKey, error)
}

type Ledger interface {
	ApplyDelta(ctx context.Context, userID int, amount decimal.Decimal) (decimal.Decimal, error)
}

type Service struct {
	repo        Repo
	productRepo ProductRepo
	reviewRepo  ReviewRepo
	sellerRepo  SellerRatingRepo
	promos      PromoEngine
	keys        KeyInventory
	ledger      Ledger
	txManager   pg.TXManager
	now         func() time.Time
}

func New(
	repo Repo,
	productRepo ProductRepo,
	reviewRepo ReviewRepo,
	sellerRepo SellerRatingRepo,
	promos PromoEngine,
	keys KeyInventory,
	ledger Ledger,
	txManager pg.TXManager,
) *Service {
	return &Service{
		repo:        repo,
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
		sellerRepo:  sellerRepo,
		promos:      promos,
		keys:        keys,
		ledger:      ledger,
		txManager:   txManager,
		now:         time.Now,
	}
}

// SellerShare is the part of an order total credited to the seller. The rest
// is the platform fee.
var SellerShare = decimal.RequireFromString("0.85")

// MaxOrderTotal is the largest amount an order total column holds.
var MaxOrderTotal = decimal.RequireFromString("99999999.99")

var (
	ErrOrderNotFound           = fmt.Errorf("order %w", domain.ErrNotFound)
	ErrProductNotFound         = fmt.Errorf("product %w", domain.ErrNotFound)
	ErrProductNotAvailable     = fmt.Errorf("product not available: %w", domain.ErrNotFound)
	ErrNotOrderBuyer           = fmt.Errorf("order belongs to another buyer: %w", domain.ErrForbidden)
	ErrNotOrderParticipant     = fmt.Errorf("order belongs to other users: %w", domain.ErrForbidden)
	ErrPaymentAlreadyConfirmed = fmt.Errorf("payment already confirmed: %w", domain.ErrInvalidState)
	ErrPaymentNotConfirmed     = fmt.Errorf("payment not confirmed: %w", domain.ErrInvalidState)
	ErrAlreadyReviewed         = fmt.Errorf("order already reviewed: %w", domain.ErrInvalidState)
	ErrInvalidQuantity         = fmt.Errorf("quantity must be at least 1: %w", domain.ErrValidation)
	ErrInvalidPhone            = fmt.Errorf("invalid phone number: %w", domain.ErrValidation)
	ErrOrderTotalTooLarge      = fmt.Errorf("order total exceeds %s: %w", MaxOrderTotal.StringFixed(2), domain.ErrValidation)
	ErrInvalidRating           = fmt.Errorf("rating must be between 1 and 5: %w", domain.ErrValidation)
)

// SplitPayment divides total into the seller's earnings and the platform fee.
func SplitPayment(total decimal.Decimal) (earnings, fee decimal.Decimal) {
	earnings = total.Mul(SellerShare).Round(2)
	return earnings, total.Sub(earnings)
}

type CreateInput struct {
	BuyerID    int
	ProductID  int
	Quantity   int
	PromoCode  string
	BuyerPhone string
}

func (s *Service) CreateOrder(ctx context.Context, in CreateInput) (*domain.Order, error) {
	if in.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	var phone *string
	if p := strings.TrimSpace(in.BuyerPhone); p != "" {
		if !validate.IsPhone(p) {
			return nil, ErrInvalidPhone
		}
		phone = &p
	}

	product, err := s.productRepo.FindByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if product.Status != domain.ProductApproved {
		return nil, ErrProductNotAvailable
	}

	total := product.Price.Mul(decimal.NewFromInt(int64(in.Quantity)))
	if total.GreaterThan(MaxOrderTotal) {
		return nil, ErrOrderTotalTooLarge
	}

	order := &domain.Order{
		BuyerID:    in.BuyerID,
		SellerID:   product.SellerID,
		ProductID:  product.ID,
		Quantity:   in.Quantity,
		Price:      product.Price,
		TotalPrice: total,
		BuyerPhone: phone,
		Status:     domain.OrderPending,
	}

	var created *domain.Order
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if in.PromoCode != "" {
			promo, discount, err := s.promos.Redeem(ctx, in.PromoCode, order.TotalPrice)
			if err != nil {
				return err
			}
			if promo != nil {
				order.PromoCodeID = &promo.ID
				order.DiscountAmount = discount
				order.TotalPrice = order.TotalPrice.Sub(discount)
			}
		}

		number, err := s.nextOrderNumber()
		if err != nil {
			return err
		}
		order.OrderNumber = number

		created, err = s.repo.Create(ctx, order)
		return err
	})
	if err != nil {
		zap.L().Error("failed to create order", zap.Int("buyer_id", in.BuyerID), zap.Int("product_id", in.ProductID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("order created",
		zap.String("order_number", created.OrderNumber),
		zap.String("total", created.TotalPrice.StringFixed(2)),
	)
	return created, nil
}

// nextOrderNumber builds ZVR-<millis><luhn>-<16 hex>. The random part comes
// from a UUID and the column is unique, so clashes fail loudly.
func (s *Service) nextOrderNumber() (string, error) {
	_, stamped, err := goluhn.Calculate(strconv.FormatInt(s.now().UnixMilli(), 10))
	if err != nil {
		return "", err
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:16]
	return validate.OrderNumberPrefix + "-" + stamped + "-" + suffix, nil
}

// ConfirmPayment completes a pending order on the buyer's word. Key claim,
// order update, sales counter and seller credit commit together or not at
// all.
func (s *Service) ConfirmPayment(ctx context.Context, orderNumber string, buyerID int) (*domain.Order, error) {
	var confirmed *domain.Order
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.repo.LockByOrderNumber(ctx, orderNumber)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}
		if order.BuyerID != buyerID {
			return ErrNotOrderBuyer
		}
		if order.PaymentConfirmed {
			return ErrPaymentAlreadyConfirmed
		}

		product, err := s.productRepo.FindByID(ctx, order.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return ErrProductNotFound
		}

		var deliveredKey *string
		if product.AutoDelivery {
			key, err := s.keys.ClaimOne(ctx, product.ID, buyerID)
			if err != nil {
				return err
			}
			deliveredKey = &key.KeyValue
		}

		earnings, fee := SplitPayment(order.TotalPrice)
		confirmed, err = s.repo.ConfirmPayment(ctx, order.ID, deliveredKey, earnings, fee)
		if err != nil {
			return err
		}
		if confirmed == nil {
			return ErrPaymentAlreadyConfirmed
		}

		if err := s.productRepo.IncrementSales(ctx, product.ID); err != nil {
			return err
		}
		_, err = s.ledger.ApplyDelta(ctx, order.SellerID, earnings)
		return err
	})
	if err != nil {
		zap.L().Info("payment confirmation failed", zap.String("order_number", orderNumber), zap.Error(err))
		return nil, err
	}

	zap.L().Info("payment confirmed",
		zap.String("order_number", orderNumber),
		zap.String("seller_earnings", confirmed.SellerEarnings.StringFixed(2)),
		zap.Bool("key_delivered", confirmed.DeliveredKey != nil),
	)
	return confirmed, nil
}

type ReviewInput struct {
	OrderNumber string
	BuyerID     int
	Rating      int
	Comment     string
}

// LeaveReview stores the buyer's review and recomputes product and seller
// ratings from all of their reviews.
func (s *Service) LeaveReview(ctx context.Context, in ReviewInput) (*domain.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, ErrInvalidRating
	}

	var created *domain.Review
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.repo.FindByOrderNumber(ctx, in.OrderNumber)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}
		if order.BuyerID != in.BuyerID {
			return ErrNotOrderBuyer
		}
		if !order.PaymentConfirmed {
			return ErrPaymentNotConfirmed
		}

		existing, err := s.reviewRepo.FindByOrderID(ctx, order.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrAlreadyReviewed
		}

		created, err = s.reviewRepo.Create(ctx, &domain.Review{
			OrderID:   order.ID,
			BuyerID:   order.BuyerID,
			SellerID:  order.SellerID,
			ProductID: order.ProductID,
			Rating:    in.Rating,
			Comment:   strings.TrimSpace(in.Comment),
		})
		if err != nil {
			if pg.IsUniqueViolation(err) {
				return ErrAlreadyReviewed
			}
			return err
		}

		if _, err := s.productRepo.RecomputeRating(ctx, order.ProductID); err != nil {
			return err
		}
		_, err = s.sellerRepo.RecomputeRating(ctx, order.SellerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetOrder returns the order and its review, if any, to the order's buyer or
// seller.
func (s *Service) GetOrder(ctx context.Context, orderNumber string, userID int) (*domain.Order, *domain.Review, error) {
	order, err := s.repo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, nil, err
	}
	if order == nil {
		return nil, nil, ErrOrderNotFound
	}
	if order.BuyerID != userID && order.SellerID != userID {
		return nil, nil, ErrNotOrderParticipant
	}
	if !order.PaymentConfirmed {
		return order, nil, nil
	}
	review, err := s.reviewRepo.FindByOrderID(ctx, order.ID)
	if err != nil {
		return nil, nil, err
	}
	return order, review, nil
}

func (s *Service) ListMyOrders(ctx context.Context, buyerID int, page domain.Page) ([]domain.Order, error) {
	return s.repo.ListByBuyer(ctx, buyerID, page)
}

func (s *Service) ListSales(ctx context.Context, sellerID int, page domain.Page) ([]domain.Order, error) {
	return s.repo.ListBySeller(ctx, sellerID, page)
}

func (s *Service) ListPendingPayment(ctx context.Context, page domain.Page) ([]domain.Order, error) {
	return s.repo.ListPendingPayment(ctx, page)
}
