package orderrepo

import (
	"context"
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/digimarket/internal/domain"
	"github.com/GlebRadaev/digimarket/internal/pg"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var orderColumns = []string{
	"id", "order_number", "buyer_id", "seller_id", "product_id", "quantity", "price", "total_price",
	"promo_code_id", "discount_amount", "buyer_phone", "status", "payment_confirmed", "payment_confirmed_at",
	"delivered_key", "seller_earnings", "platform_fee", "created_at", "updated_at",
}

var returningOrder = " RETURNING " + strings.Join(orderColumns, ", ")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.BuyerID, &o.SellerID, &o.ProductID, &o.Quantity, &o.Price, &o.TotalPrice,
		&o.PromoCodeID, &o.DiscountAmount, &o.BuyerPhone, &o.Status, &o.PaymentConfirmed, &o.PaymentConfirmedAt,
		&o.DeliveredKey, &o.SellerEarnings, &o.PlatformFee, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	query := `
		INSERT INTO orders (order_number, buyer_id, seller_id, product_id, quantity, price, total_price,
			promo_code_id, discount_amount, buyer_phone, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		order.OrderNumber, order.BuyerID, order.SellerID, order.ProductID, order.Quantity, order.Price,
		order.TotalPrice, order.PromoCodeID, order.DiscountAmount, order.BuyerPhone, order.Status,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save order", zap.String("order_number", order.OrderNumber), zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	return r.findByOrderNumber(ctx, orderNumber, "")
}

// LockByOrderNumber loads the order and keeps it locked until the
// surrounding transaction ends, serialising concurrent confirmations.
func (r *Repository) LockByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	return r.findByOrderNumber(ctx, orderNumber, "FOR UPDATE")
}

func (r *Repository) findByOrderNumber(ctx context.Context, orderNumber, suffix string) (*domain.Order, error) {
	builder := psql.Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"order_number": orderNumber})
	if suffix != "" {
		builder = builder.Suffix(suffix)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find order", zap.String("order_number", orderNumber), zap.Error(err))
		return nil, err
	}
	return order, nil
}

// ConfirmPayment completes a not yet confirmed order. It returns nil when the
// order was confirmed already.
func (r *Repository) ConfirmPayment(ctx context.Context, orderID int, deliveredKey *string, earnings, fee decimal.Decimal) (*domain.Order, error) {
	query := `
		UPDATE orders
		SET payment_confirmed = TRUE,
			payment_confirmed_at = NOW(),
			status = $2,
			delivered_key = $3,
			seller_earnings = $4,
			platform_fee = $5,
			updated_at = NOW()
		WHERE id = $1 AND payment_confirmed = FALSE
	` + returningOrder
	order, err := scanOrder(r.db.QueryRow(ctx, query, orderID, domain.OrderCompleted, deliveredKey, earnings, fee))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't confirm order payment", zap.Int("order_id", orderID), zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) ListByBuyer(ctx context.Context, buyerID int, page domain.Page) ([]domain.Order, error) {
	return r.list(ctx, squirrel.Eq{"buyer_id": buyerID}, "created_at DESC", page)
}

func (r *Repository) ListBySeller(ctx context.Context, sellerID int, page domain.Page) ([]domain.Order, error) {
	return r.list(ctx, squirrel.Eq{"seller_id": sellerID}, "created_at DESC", page)
}

func (r *Repository) ListPendingPayment(ctx context.Context, page domain.Page) ([]domain.Order, error) {
	return r.list(ctx, squirrel.Eq{"payment_confirmed": false}, "created_at ASC", page)
}

func (r *Repository) list(ctx context.Context, where squirrel.Sqlizer, orderBy string, page domain.Page) ([]domain.Order, error) {
	query, args, err := psql.Select(orderColumns...).
		From("orders").
		Where(where).
		OrderBy(orderBy, "id").
		Limit(page.Limit).
		Offset(page.Offset).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (r *Repository) SellerStats(ctx context.Context, sellerID int) (*domain.SellerStats, error) {
	query := `
		SELECT COUNT(*) AS total_orders,
			COUNT(*) FILTER (WHERE status = 'completed') AS completed_orders,
			COALESCE(SUM(total_price) FILTER (WHERE status = 'completed'), 0) AS total_revenue
		FROM orders
		WHERE seller_id = $1
	`
	var stats domain.SellerStats
	err := r.db.QueryRow(ctx, query, sellerID).Scan(&stats.TotalOrders, &stats.CompletedOrders, &stats.TotalRevenue)
	if err != nil {
		zap.L().Error("can't get seller stats", zap.Int("seller_id", sellerID), zap.Error(err))
		return nil, err
	}
	return &stats, nil
}
