package withdrawalrepo

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/digimarket/internal/domain"
	"github.com/GlebRadaev/digimarket/internal/pg"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var withdrawalColumns = []string{
	"id", "seller_id", "amount", "wallet_address", "status", "reject_reason", "requested_at", "processed_at", "processed_by",
}

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanWithdrawal(row pgx.Row) (*domain.Withdrawal, error) {
	var w domain.Withdrawal
	err := row.Scan(&w.ID, &w.SellerID, &w.Amount, &w.WalletAddress, &w.Status, &w.RejectReason, &w.RequestedAt, &w.ProcessedAt, &w.ProcessedBy)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *Repository) CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error) {
	query := `
		INSERT INTO withdrawals (seller_id, amount, wallet_address, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, requested_at
	`
	err := r.db.QueryRow(ctx, query, withdrawal.SellerID, withdrawal.Amount, withdrawal.WalletAddress, withdrawal.Status).
		Scan(&withdrawal.ID, &withdrawal.RequestedAt)
	if err != nil {
		zap.L().Error("can't save withdrawal", zap.Error(err))
		return nil, err
	}
	return withdrawal, nil
}

func (r *Repository) FindByID(ctx context.Context, withdrawalID int) (*domain.Withdrawal, error) {
	query, args, err := psql.Select(withdrawalColumns...).
		From("withdrawals").
		Where(squirrel.Eq{"id": withdrawalID}).
		ToSql()
	if err != nil {
		return nil, err
	}
	w, err := scanWithdrawal(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find withdrawal", zap.Int("withdrawal_id", withdrawalID), zap.Error(err))
		return nil, err
	}
	return w, nil
}

// Resolve moves a pending withdrawal to status. It returns nil when the
// withdrawal does not exist or was processed already.
func (r *Repository) Resolve(ctx context.Context, withdrawalID int, status string, adminID int, reason *string) (*domain.Withdrawal, error) {
	query, args, err := psql.Update("withdrawals").
		Set("status", status).
		Set("processed_by", adminID).
		Set("processed_at", squirrel.Expr("NOW()")).
		Set("reject_reason", reason).
		Where(squirrel.Eq{"id": withdrawalID, "status": domain.WithdrawalPending}).
		Suffix("RETURNING id, seller_id, amount, wallet_address, status, reject_reason, requested_at, processed_at, processed_by").
		ToSql()
	if err != nil {
		return nil, err
	}
	w, err := scanWithdrawal(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't resolve withdrawal", zap.Int("withdrawal_id", withdrawalID), zap.Error(err))
		return nil, err
	}
	return w, nil
}

func (r *Repository) GetWithdrawalsBySellerID(ctx context.Context, sellerID int, page domain.Page) ([]domain.Withdrawal, error) {
	return r.list(ctx, squirrel.Eq{"seller_id": sellerID}, "requested_at DESC", page)
}

func (r *Repository) GetPendingWithdrawals(ctx context.Context, page domain.Page) ([]domain.Withdrawal, error) {
	return r.list(ctx, squirrel.Eq{"status": domain.WithdrawalPending}, "requested_at ASC", page)
}

func (r *Repository) CountPending(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM withdrawals WHERE status = 'pending'`
	var count int
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		zap.L().Error("failed to count pending withdrawals", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) list(ctx context.Context, where squirrel.Sqlizer, orderBy string, page domain.Page) ([]domain.Withdrawal, error) {
	query, args, err := psql.Select(withdrawalColumns...).
		From("withdrawals").
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
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	withdrawals := make([]domain.Withdrawal, 0)
	for rows.Next() {
		wd, err := scanWithdrawal(rows)
		if err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, *wd)
	}
	return withdrawals, rows.Err()
}

func (r *Repository) TotalPending(ctx context.Context, sellerID int) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM withdrawals
		WHERE seller_id = $1 AND status = 'pending'
	`
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, sellerID).Scan(&total); err != nil {
		zap.L().Error("failed to sum pending withdrawals", zap.Int("seller_id", sellerID), zap.Error(err))
		return decimal.Zero, err
	}
	return total, nil
}
