package promoservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/digimarket/internal/domain"
	"github.com/GlebRadaev/digimarket/internal/pg"
)

type Repo interface {
	FindValidByCode(ctx context.Context, code string, orderTotal decimal.Decimal, now time.Time) (*domain.PromoCode, error)
	IncrementUses(ctx context.Context, promoID int) (bool, error)
	Create(ctx context.Context, promo *domain.PromoCode) (*domain.PromoCode, error)
	List(ctx context.Context, page domain.Page) ([]domain.PromoCode, error)
	SetActive(ctx context.Context, promoID int, active bool) (*domain.PromoCode, error)
	Delete(ctx context.Context, promoID int) (bool, error)
}

type Service struct {
	repo Repo
	now  func() time.Time
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

var (
	ErrPromoNotFound   = fmt.Errorf("promo code %w", domain.ErrNotFound)
	ErrPromoCodeExists = fmt.Errorf("promo code already exists: %w", domain.ErrInvalidState)
	ErrEmptyCode       = fmt.Errorf("promo code is required: %w", domain.ErrValidation)
	ErrInvalidPercent  = fmt.Errorf("discount percent must be between 0 and 100: %w", domain.ErrValidation)
	ErrInvalidAmount   = fmt.Errorf("discount amount must not be negative: %w", domain.ErrValidation)
	ErrNoDiscount      = fmt.Errorf("either discount percent or discount amount is required: %w", domain.ErrValidation)
	ErrInvalidMaxUses  = fmt.Errorf("max uses must be positive or -1: %w", domain.ErrValidation)
	ErrInvalidWindow   = fmt.Errorf("valid until is before valid from: %w", domain.ErrValidation)
)

var hundred = decimal.NewFromInt(100)

// NormalizeCode is the canonical form codes are stored and looked up in.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Lookup returns the code when it can be applied to an order of orderTotal
// right now, nil otherwise.
func (s *Service) Lookup(ctx context.Context, code string, orderTotal decimal.Decimal) (*domain.PromoCode, error) {
	code = NormalizeCode(code)
	if code == "" {
		return nil, nil
	}
	now := s.now()
	promo, err := s.repo.FindValidByCode(ctx, code, orderTotal, now)
	if err != nil {
		return nil, err
	}
	if promo == nil || !promo.Eligible(now, orderTotal) {
		return nil, nil
	}
	return promo, nil
}

// ApplyDiscount computes the discount of promo on total. A percent discount
// wins over a flat one; the result never drives the total below zero.
func ApplyDiscount(promo *domain.PromoCode, total decimal.Decimal) (discount, final decimal.Decimal) {
	if promo.DiscountPercent > 0 {
		discount = total.Mul(decimal.NewFromInt(int64(promo.DiscountPercent))).Div(hundred).Round(2)
	} else {
		discount = promo.DiscountAmount
	}
	if discount.GreaterThan(total) {
		zap.L().Warn("promo discount exceeds order total, capping",
			zap.String("code", promo.Code),
			zap.String("discount", discount.StringFixed(2)),
			zap.String("total", total.StringFixed(2)),
		)
		discount = total
	}
	return discount, total.Sub(discount)
}

func (s *Service) IncrementUses(ctx context.Context, promoID int) (bool, error) {
	return s.repo.IncrementUses(ctx, promoID)
}

// Redeem looks the code up against orderTotal and consumes one use of it.
// It returns a nil promo when the code is unknown, ineligible, or its last
// use was taken concurrently. Call it inside the order-creating transaction.
func (s *Service) Redeem(ctx context.Context, code string, orderTotal decimal.Decimal) (*domain.PromoCode, decimal.Decimal, error) {
	promo, err := s.Lookup(ctx, code, orderTotal)
	if err != nil {
		return nil, decimal.Zero, err
	}
	if promo == nil {
		zap.L().Info("promo code not applicable", zap.String("code", NormalizeCode(code)))
		return nil, decimal.Zero, nil
	}
	ok, err := s.repo.IncrementUses(ctx, promo.ID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	if !ok {
		zap.L().Info("promo code exhausted", zap.String("code", promo.Code))
		return nil, decimal.Zero, nil
	}
	promo.CurrentUses++
	discount, _ := ApplyDiscount(promo, orderTotal)
	return promo, discount, nil
}

type CreateInput struct {
	Code            string
	DiscountPercent int
	DiscountAmount  decimal.Decimal
	MaxUses         int
	MinOrderAmount  decimal.Decimal
	ValidFrom       *time.Time
	ValidUntil      *time.Time
}

func (in CreateInput) validate() error {
	switch {
	case NormalizeCode(in.Code) == "":
		return ErrEmptyCode
	case in.DiscountPercent < 0 || in.DiscountPercent > 100:
		return ErrInvalidPercent
	case in.DiscountAmount.IsNegative():
		return ErrInvalidAmount
	case in.DiscountPercent == 0 && in.DiscountAmount.IsZero():
		return ErrNoDiscount
	case in.MaxUses == 0 || in.MaxUses < domain.UnlimitedUses:
		return ErrInvalidMaxUses
	case in.ValidFrom != nil && in.ValidUntil != nil && in.ValidUntil.Before(*in.ValidFrom):
		return ErrInvalidWindow
	}
	return nil
}

func (s *Service) Create(ctx context.Context, adminID int, in CreateInput) (*domain.PromoCode, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	promo := &domain.PromoCode{
		Code:            NormalizeCode(in.Code),
		DiscountPercent: in.DiscountPercent,
		DiscountAmount:  in.DiscountAmount,
		MaxUses:         in.MaxUses,
		MinOrderAmount:  in.MinOrderAmount,
		ValidFrom:       in.ValidFrom,
		ValidUntil:      in.ValidUntil,
		IsActive:        true,
		CreatedBy:       &adminID,
	}
	created, err := s.repo.Create(ctx, promo)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, ErrPromoCodeExists
		}
		return nil, err
	}
	zap.L().Info("promo code created", zap.String("code", created.Code), zap.Int("admin_id", adminID))
	return created, nil
}

func (s *Service) List(ctx context.Context, page domain.Page) ([]domain.PromoCode, error) {
	return s.repo.List(ctx, page)
}

func (s *Service) SetActive(ctx context.Context, promoID int, active bool) (*domain.PromoCode, error) {
	promo, err := s.repo.SetActive(ctx, promoID, active)
	if err != nil {
		return nil, err
	}
	if promo == nil {
		return nil, ErrPromoNotFound
	}
	return promo, nil
}

func (s *Service) Delete(ctx context.Context, promoID int) error {
	deleted, err := s.repo.Delete(ctx, promoID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPromoNotFound
	}
	return nil
}
