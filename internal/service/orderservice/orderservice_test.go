package orderservice

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/digimarket/internal/domain"
	"github.com/GlebRadaev/digimarket/internal/pg"
	"github.com/GlebRadaev/digimarket/pkg/validate"
)

type mocks struct {
	repo      *MockRepo
	products  *MockProductRepo
	reviews   *MockReviewRepo
	sellers   *MockSellerRatingRepo
	promos    *MockPromoEngine
	keys      *MockKeyInventory
	ledger    *MockLedger
	txManager *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		repo:      NewMockRepo(ctrl),
		products:  NewMockProductRepo(ctrl),
		reviews:   NewMockReviewRepo(ctrl),
		sellers:   NewMockSellerRatingRepo(ctrl),
		promos:    NewMockPromoEngine(ctrl),
		keys:      NewMockKeyInventory(ctrl),
		ledger:    NewMockLedger(ctrl),
		txManager: pg.NewMockTXManager(ctrl),
	}
	service := New(m.repo, m.products, m.reviews, m.sellers, m.promos, m.keys, m.ledger, m.txManager)
	return service, m
}

func (m *mocks) expectTx() {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
}

func TestSplitPayment(t *testing.T) {
	tests := []struct {
		total            string
		expectedEarnings string
		expectedFee      string
	}{
		{total: "100.00", expectedEarnings: "85.00", expectedFee: "15.00"},
		{total: "180.00", expectedEarnings: "153.00", expectedFee: "27.00"},
		{total: "9.99", expectedEarnings: "8.49", expectedFee: "1.50"},
		{total: "0.01", expectedEarnings: "0.01", expectedFee: "0.00"},
		{total: "0", expectedEarnings: "0.00", expectedFee: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.total, func(t *testing.T) {
			earnings, fee := SplitPayment(decimal.RequireFromString(tt.total))
			assert.Equal(t, tt.expectedEarnings, earnings.StringFixed(2))
			assert.Equal(t, tt.expectedFee, fee.StringFixed(2))
		})
	}
}

func TestCreateOrder(t *testing.T) {
	service, m := NewMock(t)
	approved := &domain.Product{ID: 10, SellerID: 2, Price: decimal.RequireFromString("100.00"), Status: domain.ProductApproved}

	tests := []struct {
		name          string
		input         CreateInput
		prepareMock   func()
		checkOrder    func(t *testing.T, order *domain.Order)
		expectedError error
	}{
		{
			name:  "Order without promo code",
			input: CreateInput{BuyerID: 5, ProductID: 10, Quantity: 1},
			prepareMock: func() {
				m.products.EXPECT().FindByID(gomock.Any(), 10).Return(approved, nil)
				m.expectTx()
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, o *domain.Order) (*domain.Order, error) {
						o.ID = 1
						return o, nil
					})
			},
			checkOrder: func(t *testing.T, order *domain.Order) {
				assert.Equal(t, 1, order.ID)
				assert.Equal(t, 2, order.SellerID)
				assert.Equal(t, domain.OrderPending, order.Status)
				assert.False(t, order.PaymentConfirmed)
				assert.Equal(t, "100.00", order.TotalPrice.StringFixed(2))
				assert.Nil(t, order.PromoCodeID)
				assert.Nil(t, order.BuyerPhone)
				assert.True(t, validate.IsOrderNumber(order.OrderNumber), order.OrderNumber)
			},
		},
		{
			name:  "Percent promo code reduces the total",
			input: CreateInput{BuyerID: 5, ProductID: 10, Quantity: 2, PromoCode: "SAVE10", BuyerPhone: "+7 (999) 123-45-67"},
			prepareMock: func() {
				m.products.EXPECT().FindByID(gomock.Any(), 10).Return(approved, nil)
				m.expectTx()
				m.promos.EXPECT().Redeem(gomock.Any(), "SAVE10", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, total decimal.Decimal) (*domain.PromoCode, decimal.Decimal, error) {
						assert.Equal(t, "200.00", total.StringFixed(2))
						return &domain.PromoCode{ID: 7, Code: "SAVE10", DiscountPercent: 10}, decimal.RequireFromString("20.00"), nil
					})
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, o *domain.Order) (*domain.Order, error) {
						o.ID = 2
						return o, nil
					})
			},
			checkOrder: func(t *testing.T, order *domain.Order) {
				assert.Equal(t, "180.00", order.TotalPrice.StringFixed(2))
				assert.Equal(t, "20.00", order.DiscountAmount.StringFixed(2))
				require.NotNil(t, order.PromoCodeID)
				assert.Equal(t, 7, *order.PromoCodeID)
				require.NotNil(t, order.BuyerPhone)
				assert.Equal(t, "+7 (999) 123-45-67", *order.BuyerPhone)
			},
		},
		{
			name:  "Inapplicable promo code is ignored",
			input: CreateInput{BuyerID: 5, ProductID: 10, Quantity: 1, PromoCode: "EXPIRED"},
			prepareMock: func() {
				m.products.EXPECT().FindByID(gomock.Any(), 10).Return(approved, nil)
				m.expectTx()
				m.promos.EXPECT().Redeem(gomock.Any(), "EXPIRED", gomock.Any()).Return(nil, decimal.Zero, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, o *domain.Order) (*domain.Order, error) {
						return o, nil
					})
			},
			checkOrder: func(t *testing.T, order *domain.Order) {
				assert.Equal(t, "100.00", order.TotalPrice.StringFixed(2))
				assert.Nil(t, order.PromoCodeID)
			},
		},
		{
			name:          "Zero quantity",
			input:         CreateInput{BuyerID: 5, ProductID: 10, Quantity: 0},
			prepareMock:   func() {},
			expectedError: ErrInvalidQuantity,
		},
		{
			name:          "Malformed phone",
			input:         CreateInput{BuyerID: 5, ProductID: 10, Quantity: 1, BuyerPhone: "call me"},
			prepareMock:   func() {},
			expectedError: ErrInvalidPhone,
		},
		{
			name:          "Phone too long",
			input:         CreateInput{BuyerID: 5, ProductID: 10, Quantity: 1, BuyerPhone: "+7 " + strings.Repeat("9", 30)},
			prepareMock:   func() {},
			expectedError: ErrInvalidPhone,
		},
		{
			name:  "Total overflows the price column",
			input: CreateInput{BuyerID: 5, ProductID: 10, Quantity: 2000000000},
			prepareMock: func() {
				m.products.EXPECT().FindByID(gomock.Any(), 10).Return(approved, nil)
			},
			expectedError: ErrOrderTotalTooLarge,
		},
		{
			name:  "Largest storable total",
			input: CreateInput{BuyerID: 5, ProductID: 13, Quantity: 3},
			prepareMock: func() {
				m.products.EXPECT().FindByID(gomock.Any(), 13).
					Return(&domain.Product{ID: 13, SellerID: 2, Price: decimal.RequireFromString("33333333.33"), Status: domain.ProductApproved}, nil)
				m.expectTx()
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, o *domain.Order) (*domain.Order, error) {
						return o, nil
					})
			},
			checkOrder: func(t *testing.T, order *domain.Order) {
				assert.Equal(t, "99999999.99", order.TotalPrice.StringFixed(2))
			},
		},
		{
			name:  "Unknown product",
			input: CreateInput{BuyerID: 5, ProductID: 11, Quantity: 1},
			prepareMock: func() {
				m.products.EXPECT().FindByID(gomock.Any(), 11).Return(nil, nil)
			},
			expectedError: ErrProductNotFound,
		},
		{
			name:  "Product awaiting moderation",
			input: CreateInput{BuyerID: 5, ProductID: 12, Quantity: 1},
			prepareMock: func() {
				m.products.EXPECT().FindByID(gomock.Any(), 12).Return(&domain.Product{ID: 12, Status: domain.ProductPending}, nil)
			},
			expectedError: ErrProductNotAvailable,
		},
		{
			name:  "Store error on insert",
			input: CreateInput{BuyerID: 5, ProductID: 10, Quantity: 1},
			prepareMock: func() {
				m.products.EXPECT().FindByID(gomock.Any(), 10).Return(approved, nil)
				m.expectTx()
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			order, err := service.CreateOrder(context.Background(), tt.input)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, order)
				return
			}
			require.NoError(t, err)
			tt.checkOrder(t, order)
		})
	}
}

func TestNextOrderNumberIsUnique(t *testing.T) {
	service, _ := NewMock(t)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		number, err := service.nextOrderNumber()
		require.NoError(t, err)
		assert.True(t, validate.IsOrderNumber(number), number)
		assert.False(t, seen[number])
		seen[number] = true
	}
}

func TestConfirmPayment(t *testing.T) {
	service, m := NewMock(t)
	total := decimal.RequireFromString("100.00")
	pending := func() *domain.Order {
		return &domain.Order{ID: 1, OrderNumber: "ZVR-17000000000001-0123456789ABCDEF", BuyerID: 5, SellerID: 2,
			ProductID: 10, TotalPrice: total, Status: domain.OrderPending}
	}
	autoDelivery := &domain.Product{ID: 10, SellerID: 2, AutoDelivery: true, Status: domain.ProductApproved}
	manual := &domain.Product{ID: 10, SellerID: 2, Status: domain.ProductApproved}
	number := "ZVR-17000000000001-0123456789ABCDEF"

	tests := []struct {
		name          string
		buyerID       int
		prepareMock   func()
		checkOrder    func(t *testing.T, order *domain.Order)
		expectedError error
	}{
		{
			name:    "Auto delivery claims a key and credits the seller",
			buyerID: 5,
			prepareMock: func() {
				m.expectTx()
				m.repo.EXPECT().LockByOrderNumber(gomock.Any(), number).Return(pending(), nil)
				m.products.EXPECT().FindByID(gomock.Any(), 10).Return(autoDelivery, nil)
				m.keys.EXPECT().ClaimOne(gomock.Any(), 10, 5).Return(&domain.ProductKey{ID: 1, KeyValue: "KEY1"}, nil)
				m.repo.EXPECT().ConfirmPayment(gomock.Any(), 1, gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ int, key *string, earnings, fee decimal.Decimal) (*domain.Order, error) {
						assert.Equal(t, "85.00", earnings.StringFixed(2))
						assert.Equal(t, "15.00", fee.StringFixed(2))
						o := pending()
						o.PaymentConfirmed = true
						o.Status = domain.OrderCompleted
						o.DeliveredKey = key
						o.SellerEarnings = earnings
						o.PlatformFee = fee
						return o, nil
					})
				m.products.EXPECT().IncrementSales(gomock.Any(), 10).Return(nil)
				m.ledger.EXPECT().ApplyDelta(gomock.Any(), 2, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ int, amount decimal.Decimal) (decimal.Decimal, error) {
						assert.Equal(t, "85.00", amount.StringFixed(2))
						return amount, nil
					})
			},
			checkOrder: func(t *testing.T, order *domain.Order) {
				assert.True(t, order.PaymentConfirmed)
				assert.Equal(t, domain.OrderCompleted, order.Status)
				require.NotNil(t, order.DeliveredKey)
				assert.Equal(t, "KEY1", *order.DeliveredKey)
			},
		},
		{
			name:    "Manual delivery attaches no key",
			buyerID: 5,
			prepareMock: func() {
				m.expectTx()
				m.repo.EXPECT().LockByOrderNumber(gomock.Any(), number).Return(pending(), nil)
				m.products.EXPECT().FindByID(gomock.Any(), 10).Return(manual, nil)
				m.repo.EXPECT().ConfirmPayment(gomock.Any(), 1, nil, gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ int, key *string, earnings, fee decimal.Decimal) (*domain.Order, error) {
						o := pending()
						o.PaymentConfirmed = true
						o.Status = domain.OrderCompleted
						return o, nil
					})
				m.products.EXPECT().IncrementSales(gomock.Any(), 10).Return(nil)
				m.ledger.EXPECT().ApplyDelta(gomock.Any(), 2, gomock.Any()).Return(decimal.RequireFromString("85.00"), nil)
			},
			checkOrder: func(t *testing.T, order *domain.Order) {
				assert.True(t, order.PaymentConfirmed)
				assert.Nil(t, order.DeliveredKey)
			},
		},
		{
			name:    "Second confirmation is rejected",
			buyerID: 5,
			prepareMock: func() {
				m.expectTx()
				confirmed := pending()
				confirmed.PaymentConfirmed = true
				m.repo.EXPECT().LockByOrderNumber(gomock.Any(), number).Return(confirmed, nil)
			},
			expectedError: ErrPaymentAlreadyConfirmed,
		},
		{
			name:    "Out of stock leaves the order unconfirmed",
			buyerID: 5,
			prepareMock: func() {
				m.expectTx()
				m.repo.EXPECT().LockByOrderNumber(gomock.Any(), number).Return(pending(), nil)
				m.products.EXPECT().FindByID(gomock.Any(), 10).Return(autoDelivery, nil)
				m.keys.EXPECT().ClaimOne(gomock.Any(), 10, 5).Return(nil, domain.ErrOutOfStock)
			},
			expectedError: domain.ErrOutOfStock,
		},
		{
			name:    "Another buyer",
			buyerID: 6,
			prepareMock: func() {
				m.expectTx()
				m.repo.EXPECT().LockByOrderNumber(gomock.Any(), number).Return(pending(), nil)
			},
			expectedError: ErrNotOrderBuyer,
		},
		{
			name:    "Unknown order",
			buyerID: 5,
			prepareMock: func() {
				m.expectTx()
				m.repo.EXPECT().LockByOrderNumber(gomock.Any(), number).Return(nil, nil)
			},
			expectedError: ErrOrderNotFound,
		},
		{
			name:    "Confirmed concurrently",
			buyerID: 5,
			prepareMock: func() {
				m.expectTx()
				m.repo.EXPECT().LockByOrderNumber(gomock.Any(), number).Return(pending(), nil)
				m.products.EXPECT().FindByID(gomock.Any(), 10).Return(manual, nil)
				m.repo.EXPECT().ConfirmPayment(gomock.Any(), 1, nil, gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			expectedError: ErrPaymentAlreadyConfirmed,
		},
		{
			name:    "Ledger failure aborts",
			buyerID: 5,
			prepareMock: func() {
				m.expectTx()
				m.repo.EXPECT().LockByOrderNumber(gomock.Any(), number).Return(pending(), nil)
				m.products.EXPECT().FindByID(gomock.Any(), 10).Return(manual, nil)
				m.repo.EXPECT().ConfirmPayment(gomock.Any(), 1, nil, gomock.Any(), gomock.Any()).Return(pending(), nil)
				m.products.EXPECT().IncrementSales(gomock.Any(), 10).Return(nil)
				m.ledger.EXPECT().ApplyDelta(gomock.Any(), 2, gomock.Any()).Return(decimal.Zero, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			order, err := service.ConfirmPayment(context.Background(), number, tt.buyerID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, order)
				return
			}
			require.NoError(t, err)
			tt.checkOrder(t, order)
		})
	}
}

func TestLeaveReview(t *testing.T) {
	service, m := NewMock(t)
	number := "ZVR-17000000000001-0123456789ABCDEF"
	completed := &domain.Order{ID: 1, OrderNumber: number, BuyerID: 5, SellerID: 2, ProductID: 10, PaymentConfirmed: true}
	unpaid := &domain.Order{ID: 1, OrderNumber: number, BuyerID: 5, SellerID: 2, ProductID: 10}

	tests := []struct {
		name          string
		input         ReviewInput
		prepareMock   func()
		expectedError error
	}{
		{
			name:  "Review stored and ratings recomputed",
			input: ReviewInput{OrderNumber: number, BuyerID: 5, Rating: 4, Comment: " fine "},
			prepareMock: func() {
				m.expectTx()
				m.repo.EXPECT().FindByOrderNumber(gomock.Any(), number).Return(completed, nil)
				m.reviews.EXPECT().FindByOrderID(gomock.Any(), 1).Return(nil, nil)
				m.reviews.EXPECT().Create(gomock.Any(), &domain.Review{
					OrderID: 1, BuyerID: 5, SellerID: 2, ProductID: 10, Rating: 4, Comment: "fine",
				}).DoAndReturn(func(_ context.Context, r *domain.Review) (*domain.Review, error) {
					r.ID = 3
					return r, nil
				})
				m.products.EXPECT().RecomputeRating(gomock.Any(), 10).Return(&domain.RatingSummary{ReviewsCount: 1}, nil)
				m.sellers.EXPECT().RecomputeRating(gomock.Any(), 2).Return(&domain.RatingSummary{ReviewsCount: 1}, nil)
			},
		},
		{
			name:          "Rating out of range",
			input:         ReviewInput{OrderNumber: number, BuyerID: 5, Rating: 6},
			prepareMock:   func() {},
			expectedError: ErrInvalidRating,
		},
		{
			name:  "Not the buyer",
			input: ReviewInput{OrderNumber: number, BuyerID: 2, Rating: 5},
			prepareMock: func() {
				m.expectTx()
				m.repo.EXPECT().FindByOrderNumber(gomock.Any(), number).Return(completed, nil)
			},
			expectedError: ErrNotOrderBuyer,
		},
		{
			name:  "Payment not confirmed",
			input: ReviewInput{OrderNumber: number, BuyerID: 5, Rating: 5},
			prepareMock: func() {
				m.expectTx()
				m.repo.EXPECT().FindByOrderNumber(gomock.Any(), number).Return(unpaid, nil)
			},
			expectedError: ErrPaymentNotConfirmed,
		},
		{
			name:  "Already reviewed",
			input: ReviewInput{OrderNumber: number, BuyerID: 5, Rating: 5},
			prepareMock: func() {
				m.expectTx()
				m.repo.EXPECT().FindByOrderNumber(gomock.Any(), number).Return(completed, nil)
				m.reviews.EXPECT().FindByOrderID(gomock.Any(), 1).Return(&domain.Review{ID: 3}, nil)
			},
			expectedError: ErrAlreadyReviewed,
		},
		{
			name:  "Concurrent review hits the unique index",
			input: ReviewInput{OrderNumber: number, BuyerID: 5, Rating: 5},
			prepareMock: func() {
				m.expectTx()
				m.repo.EXPECT().FindByOrderNumber(gomock.Any(), number).Return(completed, nil)
				m.reviews.EXPECT().FindByOrderID(gomock.Any(), 1).Return(nil, nil)
				m.reviews.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, &pgconn.PgError{Code: pgerrcode.UniqueViolation})
			},
			expectedError: ErrAlreadyReviewed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			review, err := service.LeaveReview(context.Background(), tt.input)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, review)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 3, review.ID)
		})
	}
}

func TestGetOrder(t *testing.T) {
	service, m := NewMock(t)
	number := "ZVR-17000000000001-0123456789ABCDEF"
	completed := &domain.Order{ID: 1, OrderNumber: number, BuyerID: 5, SellerID: 2, PaymentConfirmed: true}
	review := &domain.Review{ID: 3, OrderID: 1, Rating: 5}

	m.repo.EXPECT().FindByOrderNumber(gomock.Any(), number).Return(completed, nil)
	m.reviews.EXPECT().FindByOrderID(gomock.Any(), 1).Return(review, nil)
	order, gotReview, err := service.GetOrder(context.Background(), number, 5)
	require.NoError(t, err)
	assert.Equal(t, completed, order)
	assert.Equal(t, review, gotReview)

	m.repo.EXPECT().FindByOrderNumber(gomock.Any(), number).Return(&domain.Order{ID: 1, BuyerID: 5, SellerID: 2}, nil)
	order, gotReview, err = service.GetOrder(context.Background(), number, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, order.ID)
	assert.Nil(t, gotReview)

	m.repo.EXPECT().FindByOrderNumber(gomock.Any(), number).Return(completed, nil)
	_, _, err = service.GetOrder(context.Background(), number, 9)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	m.repo.EXPECT().FindByOrderNumber(gomock.Any(), number).Return(nil, nil)
	_, _, err = service.GetOrder(context.Background(), number, 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListings(t *testing.T) {
	service, m := NewMock(t)
	page := domain.Page{Limit: 20, Offset: 20}
	orders := []domain.Order{{ID: 1}, {ID: 2}}

	m.repo.EXPECT().ListByBuyer(gomock.Any(), 5, page).Return(orders, nil)
	got, err := service.ListMyOrders(context.Background(), 5, page)
	assert.NoError(t, err)
	assert.Equal(t, orders, got)

	m.repo.EXPECT().ListBySeller(gomock.Any(), 2, page).Return(orders, nil)
	got, err = service.ListSales(context.Background(), 2, page)
	assert.NoError(t, err)
	assert.Equal(t, orders, got)

	m.repo.EXPECT().ListPendingPayment(gomock.Any(), page).Return(nil, errors.New("db error"))
	_, err = service.ListPendingPayment(context.Background(), page)
	assert.EqualError(t, err, "db error")
}
