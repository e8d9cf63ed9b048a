package keyrepo

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/digimarket/internal/domain"
	"github.com/GlebRadaev/digimarket/internal/pg"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var keyColumns = []string{"id", "product_id", "key_value", "is_used", "used_by", "used_at", "created_at"}

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// ClaimOne marks the oldest unused key of the product as used by userID and
// returns it. Rows locked by a concurrent claim are skipped, so two buyers
// never receive the same key. It returns nil when no key is left.
func (r *Repository) ClaimOne(ctx context.Context, productID, userID int) (*domain.ProductKey, error) {
	query := `
		UPDATE product_keys
		SET is_used = TRUE, used_by = $2, used_at = NOW()
		WHERE id = (
			SELECT id
			FROM product_keys
			WHERE product_id = $1 AND is_used = FALSE
			ORDER BY created_at, id
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, product_id, key_value, is_used, used_by, used_at, created_at
	`
	var k domain.ProductKey
	err := r.db.QueryRow(ctx, query, productID, userID).Scan(
		&k.ID, &k.ProductID, &k.KeyValue, &k.IsUsed, &k.UsedBy, &k.UsedAt, &k.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't claim product key", zap.Int("product_id", productID), zap.Error(err))
		return nil, err
	}
	return &k, nil
}

func (r *Repository) AddKeys(ctx context.Context, productID int, values []string) (int, error) {
	builder := psql.Insert("product_keys").Columns("product_id", "key_value")
	for _, v := range values {
		builder = builder.Values(productID, v)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't add product keys", zap.Int("product_id", productID), zap.Error(err))
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (r *Repository) CountUnused(ctx context.Context, productID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM product_keys
		WHERE product_id = $1 AND is_used = FALSE
	`
	var count int
	if err := r.db.QueryRow(ctx, query, productID).Scan(&count); err != nil {
		zap.L().Error("can't count unused keys", zap.Int("product_id", productID), zap.Error(err))
		return 0, err
	}
	return count, nil
}

// UsageHistory lists claimed keys, most recent first.
func (r *Repository) UsageHistory(ctx context.Context, productID int, page domain.Page) ([]domain.ProductKey, error) {
	query, args, err := psql.Select(keyColumns...).
		From("product_keys").
		Where(squirrel.And{
			squirrel.Eq{"product_id": productID},
			squirrel.Eq{"is_used": true},
		}).
		OrderBy("used_at DESC", "id DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get key usage history", zap.Int("product_id", productID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	keys := make([]domain.ProductKey, 0)
	for rows.Next() {
		var k domain.ProductKey
		if err := rows.Scan(&k.ID, &k.ProductID, &k.KeyValue, &k.IsUsed, &k.UsedBy, &k.UsedAt, &k.CreatedAt); err != nil {
			zap.L().Error("can't scan product key row", zap.Error(err))
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
