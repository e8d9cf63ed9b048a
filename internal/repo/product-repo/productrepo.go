package productrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/digimarket/internal/domain"
	"github.com/GlebRadaev/digimarket/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByID(ctx context.Context, productID int) (*domain.Product, error) {
	query := `
		SELECT id, seller_id, title, price, status, auto_delivery, sales_count, rating, reviews_count
		FROM products
		WHERE id = $1
	`
	var p domain.Product
	err := r.db.QueryRow(ctx, query, productID).Scan(
		&p.ID, &p.SellerID, &p.Title, &p.Price, &p.Status, &p.AutoDelivery, &p.SalesCount, &p.Rating, &p.ReviewsCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find product", zap.Int("product_id", productID), zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) IncrementSales(ctx context.Context, productID int) error {
	query := `
		UPDATE products
		SET sales_count = sales_count + 1, updated_at = NOW()
		WHERE id = $1
	`
	if _, err := r.db.Exec(ctx, query, productID); err != nil {
		zap.L().Error("can't increment product sales", zap.Int("product_id", productID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) RecomputeRating(ctx context.Context, productID int) (*domain.RatingSummary, error) {
	query := `
		UPDATE products
		SET rating = s.rating, reviews_count = s.reviews_count, updated_at = NOW()
		FROM (
			SELECT COALESCE(AVG(rating), 0)::DECIMAL(3, 2) AS rating, COUNT(*) AS reviews_count
			FROM reviews
			WHERE product_id = $1
		) s
		WHERE products.id = $1
		RETURNING products.rating, products.reviews_count
	`
	var summary domain.RatingSummary
	err := r.db.QueryRow(ctx, query, productID).Scan(&summary.Rating, &summary.ReviewsCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't recompute product rating", zap.Int("product_id", productID), zap.Error(err))
		return nil, err
	}
	return &summary, nil
}
