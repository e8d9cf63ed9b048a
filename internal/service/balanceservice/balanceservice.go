package balanceservice

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/digimarket/internal/domain"
)

type BalanceRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	LockBalance(ctx context.Context, userID int) (*domain.User, error)
	ApplyDelta(ctx context.Context, userID int, delta decimal.Decimal) (*domain.User, error)
}

type WithdrawalRepo interface {
	TotalPending(ctx context.Context, sellerID int) (decimal.Decimal, error)
}

type StatsRepo interface {
	SellerStats(ctx context.Context, sellerID int) (*domain.SellerStats, error)
}

type Service struct {
	balanceRepo    BalanceRepo
	withdrawalRepo WithdrawalRepo
	statsRepo      StatsRepo
}

func New(balanceRepo BalanceRepo, withdrawalRepo WithdrawalRepo, statsRepo StatsRepo) *Service {
	return &Service{
		balanceRepo:    balanceRepo,
		withdrawalRepo: withdrawalRepo,
		statsRepo:      statsRepo,
	}
}

var (
	ErrUserNotFound = fmt.Errorf("user %w", domain.ErrNotFound)
)

// ApplyDelta adds amount (negative to debit) to the user's balance and
// returns the new balance. The ledger itself enforces no lower bound.
func (s *Service) ApplyDelta(ctx context.Context, userID int, amount decimal.Decimal) (decimal.Decimal, error) {
	user, err := s.balanceRepo.ApplyDelta(ctx, userID, amount)
	if err != nil {
		zap.L().Error("failed to apply balance delta", zap.Int("user_id", userID), zap.Error(err))
		return decimal.Zero, err
	}
	if user == nil {
		return decimal.Zero, ErrUserNotFound
	}
	zap.L().Info("balance changed",
		zap.Int("user_id", userID),
		zap.String("delta", amount.StringFixed(2)),
		zap.String("balance", user.Balance.StringFixed(2)),
	)
	return user.Balance, nil
}

func (s *Service) GetBalance(ctx context.Context, userID int) (decimal.Decimal, error) {
	user, err := s.balanceRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return decimal.Zero, err
	}
	if user == nil {
		return decimal.Zero, ErrUserNotFound
	}
	return user.Balance, nil
}

// LockBalance reads the balance under a row lock. It is meant to be called
// inside a transaction that goes on to debit the same user.
func (s *Service) LockBalance(ctx context.Context, userID int) (decimal.Decimal, error) {
	user, err := s.balanceRepo.LockBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to lock balance", zap.Error(err))
		return decimal.Zero, err
	}
	if user == nil {
		return decimal.Zero, ErrUserNotFound
	}
	return user.Balance, nil
}

func (s *Service) GetSummary(ctx context.Context, sellerID int) (*domain.BalanceSummary, error) {
	var summary domain.BalanceSummary

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		balance, err := s.GetBalance(gCtx, sellerID)
		summary.Balance = balance
		return err
	})
	g.Go(func() error {
		pending, err := s.withdrawalRepo.TotalPending(gCtx, sellerID)
		summary.PendingWithdrawal = pending
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *Service) GetDashboard(ctx context.Context, sellerID int) (*domain.SellerDashboard, error) {
	var dashboard domain.SellerDashboard

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := s.statsRepo.SellerStats(gCtx, sellerID)
		if err != nil {
			return err
		}
		dashboard.Stats = *stats
		return nil
	})
	g.Go(func() error {
		summary, err := s.GetSummary(gCtx, sellerID)
		if err != nil {
			return err
		}
		dashboard.Balance = summary.Balance
		dashboard.PendingWithdrawal = summary.PendingWithdrawal
		return nil
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to build seller dashboard", zap.Int("seller_id", sellerID), zap.Error(err))
		return nil, err
	}
	return &dashboard, nil
}
