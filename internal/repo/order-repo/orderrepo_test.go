package orderrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/digimarket/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

var (
	created = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	price   = decimal.RequireFromString("100.00")
	zero    = decimal.RequireFromString("0.00")
)

func pendingOrder() *domain.Order {
	return &domain.Order{
		ID:             1,
		OrderNumber:    "ZVR-17000000000001-0123456789ABCDEF",
		BuyerID:        7,
		SellerID:       2,
		ProductID:      10,
		Quantity:       1,
		Price:          price,
		TotalPrice:     price,
		DiscountAmount: zero,
		Status:         domain.OrderPending,
		SellerEarnings: zero,
		PlatformFee:    zero,
		CreatedAt:      created,
		UpdatedAt:      created,
	}
}

func orderRow(o *domain.Order) *pgxmock.Rows {
	var promo, phone, confirmedAt, key any
	if o.PromoCodeID != nil {
		promo = o.PromoCodeID
	}
	if o.BuyerPhone != nil {
		phone = o.BuyerPhone
	}
	if o.PaymentConfirmedAt != nil {
		confirmedAt = o.PaymentConfirmedAt
	}
	if o.DeliveredKey != nil {
		key = o.DeliveredKey
	}
	return pgxmock.NewRows(orderColumns).AddRow(
		o.ID, o.OrderNumber, o.BuyerID, o.SellerID, o.ProductID, o.Quantity, o.Price, o.TotalPrice,
		promo, o.DiscountAmount, phone, o.Status, o.PaymentConfirmed, confirmedAt,
		key, o.SellerEarnings, o.PlatformFee, o.CreatedAt, o.UpdatedAt,
	)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`INSERT INTO orders (order_number, buyer_id, seller_id, product_id, quantity, price, total_price, promo_code_id, discount_amount, buyer_phone, status)`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Order saved",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("ZVR-1", 7, 2, 10, 2, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), "pending").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(11, created, created))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			order := &domain.Order{
				OrderNumber: "ZVR-1", BuyerID: 7, SellerID: 2, ProductID: 10, Quantity: 2,
				Price: price, TotalPrice: price.Mul(decimal.NewFromInt(2)), Status: domain.OrderPending,
			}
			result, err := repo.Create(context.Background(), order)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 11, result.ID)
				assert.Equal(t, created, result.CreatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByOrderNumber(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`FROM orders WHERE order_number = $1`)
	expected := pendingOrder()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Order
	}{
		{
			name: "Order found",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(expected.OrderNumber).WillReturnRows(orderRow(expected))
			},
			result: expected,
		},
		{
			name: "Order not found",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(expected.OrderNumber).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(expected.OrderNumber).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByOrderNumber(context.Background(), expected.OrderNumber)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_LockByOrderNumber(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`FROM orders WHERE order_number = $1 FOR UPDATE`)
	phone := "+79991234567"
	promo := 3
	expected := pendingOrder()
	expected.BuyerPhone = &phone
	expected.PromoCodeID = &promo

	mock.ExpectQuery(query).WithArgs(expected.OrderNumber).WillReturnRows(orderRow(expected))
	result, err := repo.LockByOrderNumber(context.Background(), expected.OrderNumber)
	assert.NoError(t, err)
	assert.Equal(t, expected, result)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ConfirmPayment(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`WHERE id = $1 AND payment_confirmed = FALSE RETURNING id, order_number`)
	key := "KEY1"
	confirmedAt := created.Add(time.Minute)
	earnings := decimal.RequireFromString("85.00")
	fee := decimal.RequireFromString("15.00")

	completed := pendingOrder()
	completed.Status = domain.OrderCompleted
	completed.PaymentConfirmed = true
	completed.PaymentConfirmedAt = &confirmedAt
	completed.DeliveredKey = &key
	completed.SellerEarnings = earnings
	completed.PlatformFee = fee

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Order
	}{
		{
			name: "Pending order is completed",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1, "completed", &key, pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnRows(orderRow(completed))
			},
			result: completed,
		},
		{
			name: "Already confirmed",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1, "completed", &key, pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1, "completed", &key, pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ConfirmPayment(context.Background(), 1, &key, earnings, fee)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Lists(t *testing.T) {
	repo, mock := NewMock(t)
	expected := pendingOrder()
	page := domain.Page{Limit: 20, Offset: 0}

	tests := []struct {
		name  string
		query string
		arg   any
		call  func() ([]domain.Order, error)
	}{
		{
			name:  "By buyer",
			query: `FROM orders WHERE buyer_id = $1 ORDER BY created_at DESC, id`,
			arg:   7,
			call:  func() ([]domain.Order, error) { return repo.ListByBuyer(context.Background(), 7, page) },
		},
		{
			name:  "By seller",
			query: `FROM orders WHERE seller_id = $1 ORDER BY created_at DESC, id`,
			arg:   2,
			call:  func() ([]domain.Order, error) { return repo.ListBySeller(context.Background(), 2, page) },
		},
		{
			name:  "Pending payment",
			query: `FROM orders WHERE payment_confirmed = $1 ORDER BY created_at ASC, id`,
			arg:   false,
			call:  func() ([]domain.Order, error) { return repo.ListPendingPayment(context.Background(), page) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(tt.query)).WithArgs(tt.arg).WillReturnRows(orderRow(expected))
			orders, err := tt.call()
			assert.NoError(t, err)
			assert.Equal(t, []domain.Order{*expected}, orders)

			mock.ExpectQuery(regexp.QuoteMeta(tt.query)).WithArgs(tt.arg).WillReturnError(errors.New("database error"))
			_, err = tt.call()
			assert.Error(t, err)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_SellerStats(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`COUNT(*) FILTER (WHERE status = 'completed') AS completed_orders`)
	revenue := decimal.RequireFromString("270.00")

	mock.ExpectQuery(query).WithArgs(2).
		WillReturnRows(pgxmock.NewRows([]string{"total_orders", "completed_orders", "total_revenue"}).AddRow(4, 3, revenue))
	stats, err := repo.SellerStats(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, &domain.SellerStats{TotalOrders: 4, CompletedOrders: 3, TotalRevenue: revenue}, stats)

	mock.ExpectQuery(query).WithArgs(2).WillReturnError(errors.New("database error"))
	_, err = repo.SellerStats(context.Background(), 2)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
