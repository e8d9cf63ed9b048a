package withdrawalservice

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/digimarket/internal/domain"
	"github.com/GlebRadaev/digimarket/internal/pg"
)

type Repo interface {
	CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error)
	FindByID(ctx context.Context, withdrawalID int) (*domain.Withdrawal, error)
	Resolve(ctx context.Context, withdrawalID int, status string, adminID int, reason *string) (*domain.Withdrawal, error)
	GetWithdrawalsBySellerID(ctx context.Context, sellerID int, page domain.Page) ([]domain.Withdrawal, error)
	GetPendingWithdrawals(ctx context.Context, page domain.Page) ([]domain.Withdrawal, error)
	CountPending(ctx context.Context) (int, error)
}

type Ledger interface {
	LockBalance(ctx context.Context, userID int) (decimal.Decimal, error)
	ApplyDelta(ctx context.Context, userID int, amount decimal.Decimal) (decimal.Decimal, error)
}

type Service struct {
	repo      Repo
	ledger    Ledger
	txManager pg.TXManager
}

func New(repo Repo, ledger Ledger, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		ledger:    ledger,
		txManager: txManager,
	}
}

// MaxWalletLen bounds the stored wallet address.
const MaxWalletLen = 200

var (
	ErrInvalidAmount       = fmt.Errorf("amount must be positive with at most two decimal places: %w", domain.ErrValidation)
	ErrInvalidWallet       = fmt.Errorf("wallet address longer than %d characters: %w", MaxWalletLen, domain.ErrValidation)
	ErrInsufficientBalance = fmt.Errorf("insufficient balance: %w", domain.ErrInsufficientBalance)
	ErrWithdrawalNotFound  = fmt.Errorf("withdrawal %w", domain.ErrNotFound)
	ErrAlreadyProcessed    = fmt.Errorf("withdrawal already processed: %w", domain.ErrInvalidState)
)

// RequestWithdrawal reserves amount from the seller's balance and queues the
// payout for an admin. The debit and the record commit together.
func (s *Service) RequestWithdrawal(ctx context.Context, sellerID int, amount decimal.Decimal, wallet string) (*domain.Withdrawal, decimal.Decimal, error) {
	if !amount.IsPositive() || !amount.Equal(amount.Round(2)) {
		return nil, decimal.Zero, ErrInvalidAmount
	}
	wallet = strings.TrimSpace(wallet)
	if utf8.RuneCountInString(wallet) > MaxWalletLen {
		return nil, decimal.Zero, ErrInvalidWallet
	}

	var (
		created    *domain.Withdrawal
		newBalance decimal.Decimal
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.ledger.LockBalance(ctx, sellerID)
		if err != nil {
			return err
		}
		if balance.LessThan(amount) {
			return ErrInsufficientBalance
		}

		newBalance, err = s.ledger.ApplyDelta(ctx, sellerID, amount.Neg())
		if err != nil {
			return err
		}
		created, err = s.repo.CreateWithdrawal(ctx, &domain.Withdrawal{
			SellerID:      sellerID,
			Amount:        amount,
			WalletAddress: wallet,
			Status:        domain.WithdrawalPending,
		})
		return err
	})
	if err != nil {
		zap.L().Info("withdrawal request failed", zap.Int("seller_id", sellerID), zap.String("amount", amount.StringFixed(2)), zap.Error(err))
		return nil, decimal.Zero, err
	}

	zap.L().Info("withdrawal requested", zap.Int("withdrawal_id", created.ID), zap.Int("seller_id", sellerID))
	return created, newBalance, nil
}

// Approve finalises a pending withdrawal. The funds left the balance at
// request time, so the ledger is not touched.
func (s *Service) Approve(ctx context.Context, withdrawalID, adminID int) (*domain.Withdrawal, error) {
	w, err := s.resolve(ctx, withdrawalID, domain.WithdrawalApproved, adminID, nil)
	if err != nil {
		return nil, err
	}
	zap.L().Info("withdrawal approved", zap.Int("withdrawal_id", withdrawalID), zap.Int("admin_id", adminID))
	return w, nil
}

// Reject closes a pending withdrawal and returns its amount to the seller.
func (s *Service) Reject(ctx context.Context, withdrawalID, adminID int, reason string) (*domain.Withdrawal, error) {
	var reasonPtr *string
	if r := strings.TrimSpace(reason); r != "" {
		reasonPtr = &r
	}

	var rejected *domain.Withdrawal
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		w, err := s.resolve(ctx, withdrawalID, domain.WithdrawalRejected, adminID, reasonPtr)
		if err != nil {
			return err
		}
		if _, err := s.ledger.ApplyDelta(ctx, w.SellerID, w.Amount); err != nil {
			return err
		}
		rejected = w
		return nil
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("withdrawal rejected", zap.Int("withdrawal_id", withdrawalID), zap.Int("admin_id", adminID))
	return rejected, nil
}

func (s *Service) resolve(ctx context.Context, withdrawalID int, status string, adminID int, reason *string) (*domain.Withdrawal, error) {
	w, err := s.repo.Resolve(ctx, withdrawalID, status, adminID, reason)
	if err != nil {
		return nil, err
	}
	if w != nil {
		return w, nil
	}

	existing, err := s.repo.FindByID(ctx, withdrawalID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrWithdrawalNotFound
	}
	return nil, ErrAlreadyProcessed
}

func (s *Service) ListWithdrawals(ctx context.Context, sellerID int, page domain.Page) ([]domain.Withdrawal, error) {
	return s.repo.GetWithdrawalsBySellerID(ctx, sellerID, page)
}

// ListPending returns one page of the admin queue and the size of the whole
// queue.
func (s *Service) ListPending(ctx context.Context, page domain.Page) ([]domain.Withdrawal, int, error) {
	withdrawals, err := s.repo.GetPendingWithdrawals(ctx, page)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountPending(ctx)
	if err != nil {
		return nil, 0, err
	}
	return withdrawals, total, nil
}
