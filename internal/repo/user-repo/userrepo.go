package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
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

func (r *Repository) FindByID(ctx context.Context, userID int) (*domain.User, error) {
	query := `
		SELECT id, role, balance, rating, reviews_count
		FROM users
		WHERE id = $1
	`
	var user domain.User
	err := r.db.QueryRow(ctx, query, userID).Scan(&user.ID, &user.Role, &user.Balance, &user.Rating, &user.ReviewsCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// LockBalance reads the balance and holds the row lock until the surrounding
// transaction ends.
func (r *Repository) LockBalance(ctx context.Context, userID int) (*domain.User, error) {
	query := `
		SELECT id, balance
		FROM users
		WHERE id = $1
		FOR UPDATE
	`
	var user domain.User
	err := r.db.QueryRow(ctx, query, userID).Scan(&user.ID, &user.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock user balance", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// ApplyDelta adds delta to the stored balance in a single statement. It has
// no lower bound; callers that debit check sufficiency first.
func (r *Repository) ApplyDelta(ctx context.Context, userID int, delta decimal.Decimal) (*domain.User, error) {
	query := `
		UPDATE users
		SET balance = balance + $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, balance
	`
	var user domain.User
	err := r.db.QueryRow(ctx, query, delta, userID).Scan(&user.ID, &user.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't apply balance delta", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) RecomputeRating(ctx context.Context, sellerID int) (*domain.RatingSummary, error) {
	query := `
		UPDATE users
		SET rating = s.rating, reviews_count = s.reviews_count, updated_at = NOW()
		FROM (
			SELECT COALESCE(AVG(rating), 0)::DECIMAL(3, 2) AS rating, COUNT(*) AS reviews_count
			FROM reviews
			WHERE seller_id = $1
		) s
		WHERE users.id = $1
		RETURNING users.rating, users.reviews_count
	`
	var summary domain.RatingSummary
	err := r.db.QueryRow(ctx, query, sellerID).Scan(&summary.Rating, &summary.ReviewsCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't recompute seller rating", zap.Int("seller_id", sellerID), zap.Error(err))
		return nil, err
	}
	return &summary, nil
}
