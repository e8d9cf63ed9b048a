package promorepo

import (
	"context"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/digimarket/internal/domain"
	"github.com/GlebRadaev/digimarket/internal/pg"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var promoColumns = []string{
	"id", "code", "discount_percent", "discount_amount", "max_uses", "current_uses",
	"min_order_amount", "valid_from", "valid_until", "is_active", "created_by", "created_at",
}

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanPromo(row pgx.Row) (*domain.PromoCode, error) {
	var p domain.PromoCode
	err := row.Scan(
		&p.ID, &p.Code, &p.DiscountPercent, &p.DiscountAmount, &p.MaxUses, &p.CurrentUses,
		&p.MinOrderAmount, &p.ValidFrom, &p.ValidUntil, &p.IsActive, &p.CreatedBy, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindValidByCode returns the code only when it is active, inside its
// validity window at now, below its use cap and its minimum order amount is
// covered by orderTotal.
func (r *Repository) FindValidByCode(ctx context.Context, code string, orderTotal decimal.Decimal, now time.Time) (*domain.PromoCode, error) {
	query := `
		SELECT id, code, discount_percent, discount_amount, max_uses, current_uses,
			min_order_amount, valid_from, valid_until, is_active, created_by, created_at
		FROM promo_codes
		WHERE code = $1
			AND is_active = TRUE
			AND (valid_from IS NULL OR valid_from <= $3)
			AND (valid_until IS NULL OR valid_until >= $3)
			AND (max_uses = -1 OR current_uses < max_uses)
			AND min_order_amount <= $2
	`
	promo, err := scanPromo(r.db.QueryRow(ctx, query, code, orderTotal, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find promo code", zap.String("code", code), zap.Error(err))
		return nil, err
	}
	return promo, nil
}

// IncrementUses consumes one use of the code. It reports false when the cap
// was reached in the meantime.
func (r *Repository) IncrementUses(ctx context.Context, promoID int) (bool, error) {
	query := `
		UPDATE promo_codes
		SET current_uses = current_uses + 1
		WHERE id = $1 AND (max_uses = -1 OR current_uses < max_uses)
	`
	tag, err := r.db.Exec(ctx, query, promoID)
	if err != nil {
		zap.L().Error("can't increment promo code uses", zap.Int("promo_id", promoID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) Create(ctx context.Context, promo *domain.PromoCode) (*domain.PromoCode, error) {
	query := `
		INSERT INTO promo_codes (code, discount_percent, discount_amount, max_uses, min_order_amount,
			valid_from, valid_until, is_active, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, current_uses, created_at
	`
	err := r.db.QueryRow(ctx, query,
		promo.Code, promo.DiscountPercent, promo.DiscountAmount, promo.MaxUses, promo.MinOrderAmount,
		promo.ValidFrom, promo.ValidUntil, promo.IsActive, promo.CreatedBy,
	).Scan(&promo.ID, &promo.CurrentUses, &promo.CreatedAt)
	if err != nil {
		zap.L().Error("can't save promo code", zap.String("code", promo.Code), zap.Error(err))
		return nil, err
	}
	return promo, nil
}

func (r *Repository) List(ctx context.Context, page domain.Page) ([]domain.PromoCode, error) {
	query, args, err := psql.Select(promoColumns...).
		From("promo_codes").
		OrderBy("created_at DESC", "id DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list promo codes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	promos := make([]domain.PromoCode, 0)
	for rows.Next() {
		promo, err := scanPromo(rows)
		if err != nil {
			zap.L().Error("can't scan promo code row", zap.Error(err))
			return nil, err
		}
		promos = append(promos, *promo)
	}
	return promos, rows.Err()
}

func (r *Repository) SetActive(ctx context.Context, promoID int, active bool) (*domain.PromoCode, error) {
	query := `
		UPDATE promo_codes
		SET is_active = $2
		WHERE id = $1
		RETURNING id, code, discount_percent, discount_amount, max_uses, current_uses,
			min_order_amount, valid_from, valid_until, is_active, created_by, created_at
	`
	promo, err := scanPromo(r.db.QueryRow(ctx, query, promoID, active))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't update promo code", zap.Int("promo_id", promoID), zap.Error(err))
		return nil, err
	}
	return promo, nil
}

func (r *Repository) Delete(ctx context.Context, promoID int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM promo_codes WHERE id = $1`, promoID)
	if err != nil {
		zap.L().Error("can't delete promo code", zap.Int("promo_id", promoID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
