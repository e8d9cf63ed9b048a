package reviewrepo

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

func (r *Repository) FindByOrderID(ctx context.Context, orderID int) (*domain.Review, error) {
	query := `
		SELECT id, order_id, buyer_id, seller_id, product_id, rating, comment, created_at
		FROM reviews
		WHERE order_id = $1
	`
	var rv domain.Review
	err := r.db.QueryRow(ctx, query, orderID).Scan(
		&rv.ID, &rv.OrderID, &rv.BuyerID, &rv.SellerID, &rv.ProductID, &rv.Rating, &rv.Comment, &rv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find review", zap.Int("order_id", orderID), zap.Error(err))
		return nil, err
	}
	return &rv, nil
}

// Create stores the review. The unique index on order_id rejects a second
// review of the same order even when two requests race.
func (r *Repository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	query := `
		INSERT INTO reviews (order_id, buyer_id, seller_id, product_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		review.OrderID, review.BuyerID, review.SellerID, review.ProductID, review.Rating, review.Comment,
	).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		zap.L().Error("can't save review", zap.Int("order_id", review.OrderID), zap.Error(err))
		return nil, err
	}
	return review, nil
}
