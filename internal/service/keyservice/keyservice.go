package keyservice

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/digimarket/internal/domain"
)

type Repo interface {
	ClaimOne(ctx context.Context, productID int, userID int) (*domain.ProductKey, error)
	AddKeys(ctx context.Context, productID int, values []string) (int, error)
	CountUnused(ctx context.Context, productID int) (int, error)
	UsageHistory(ctx context.Context, productID int, page domain.Page) ([]domain.ProductKey, error)
}

type ProductRepo interface {
	FindByID(ctx context.Context, productID int) (*domain.Product, error)
}

type Service struct {
	repo        Repo
	productRepo ProductRepo
}

func New(repo Repo, productRepo ProductRepo) *Service {
	return &Service{
		repo:        repo,
		productRepo: productRepo,
	}
}

const historySize = 20

var (
	ErrOutOfStock      = fmt.Errorf("no keys left for product: %w", domain.ErrOutOfStock)
	ErrProductNotFound = fmt.Errorf("product %w", domain.ErrNotFound)
	ErrNotProductOwner = fmt.Errorf("product belongs to another seller: %w", domain.ErrForbidden)
	ErrNoKeys          = fmt.Errorf("at least one non-empty key is required: %w", domain.ErrValidation)
)

// ClaimOne hands the oldest unused key of the product to userID.
func (s *Service) ClaimOne(ctx context.Context, productID, userID int) (*domain.ProductKey, error) {
	key, err := s.repo.ClaimOne(ctx, productID, userID)
	if err != nil {
		return nil, err
	}
	if key == nil {
		zap.L().Warn("product out of stock", zap.Int("product_id", productID))
		return nil, ErrOutOfStock
	}
	return key, nil
}

func (s *Service) AddKeys(ctx context.Context, sellerID, productID int, keys []string) (int, error) {
	if err := s.checkOwner(ctx, sellerID, productID); err != nil {
		return 0, err
	}

	values := cleanKeys(keys)
	if len(values) == 0 {
		return 0, ErrNoKeys
	}
	added, err := s.repo.AddKeys(ctx, productID, values)
	if err != nil {
		return 0, err
	}
	zap.L().Info("product keys added", zap.Int("product_id", productID), zap.Int("count", added))
	return added, nil
}

// GetInventory reports the unused key count and the most recent claims.
func (s *Service) GetInventory(ctx context.Context, sellerID, productID int) (*domain.KeyInventory, error) {
	if err := s.checkOwner(ctx, sellerID, productID); err != nil {
		return nil, err
	}

	var inventory domain.KeyInventory
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := s.repo.CountUnused(gCtx, productID)
		inventory.UnusedCount = count
		return err
	})
	g.Go(func() error {
		history, err := s.repo.UsageHistory(gCtx, productID, domain.Page{Limit: historySize})
		inventory.History = history
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &inventory, nil
}

func (s *Service) checkOwner(ctx context.Context, sellerID, productID int) error {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	if product.SellerID != sellerID {
		return ErrNotProductOwner
	}
	return nil
}

// cleanKeys trims keys and drops blanks and repeats, keeping input order.
func cleanKeys(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	values := make([]string, 0, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		values = append(values, k)
	}
	return values
}
