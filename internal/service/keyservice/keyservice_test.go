package keyservice

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/digimarket/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockProductRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	productRepo := NewMockProductRepo(ctrl)
	service := New(repo, productRepo)
	return service, repo, productRepo
}

func TestClaimOne(t *testing.T) {
	service, repo, _ := NewMock(t)

	t.Run("Keys are handed out until the pool is empty", func(t *testing.T) {
		const n = 3
		for i := 1; i <= n; i++ {
			repo.EXPECT().ClaimOne(gomock.Any(), 10, 5).
				Return(&domain.ProductKey{ID: i, ProductID: 10, KeyValue: fmt.Sprintf("KEY%d", i), IsUsed: true}, nil)
		}
		repo.EXPECT().ClaimOne(gomock.Any(), 10, 5).Return(nil, nil)

		seen := make(map[string]bool)
		for i := 0; i < n; i++ {
			key, err := service.ClaimOne(context.Background(), 10, 5)
			require.NoError(t, err)
			assert.False(t, seen[key.KeyValue])
			seen[key.KeyValue] = true
		}
		_, err := service.ClaimOne(context.Background(), 10, 5)
		assert.ErrorIs(t, err, domain.ErrOutOfStock)
	})

	t.Run("Store error", func(t *testing.T) {
		repo.EXPECT().ClaimOne(gomock.Any(), 11, 5).Return(nil, errors.New("db error"))
		_, err := service.ClaimOne(context.Background(), 11, 5)
		assert.EqualError(t, err, "db error")
	})
}

func TestAddKeys(t *testing.T) {
	service, repo, productRepo := NewMock(t)
	product := &domain.Product{ID: 10, SellerID: 2}

	tests := []struct {
		name          string
		sellerID      int
		keys          []string
		prepareMock   func()
		expectedCount int
		expectedError error
	}{
		{
			name:     "Keys are cleaned before insert",
			sellerID: 2,
			keys:     []string{" KEY1 ", "", "KEY2", "KEY1", "  "},
			prepareMock: func() {
				productRepo.EXPECT().FindByID(gomock.Any(), 10).Return(product, nil)
				repo.EXPECT().AddKeys(gomock.Any(), 10, []string{"KEY1", "KEY2"}).Return(2, nil)
			},
			expectedCount: 2,
		},
		{
			name:     "Only blank keys",
			sellerID: 2,
			keys:     []string{" ", ""},
			prepareMock: func() {
				productRepo.EXPECT().FindByID(gomock.Any(), 10).Return(product, nil)
			},
			expectedError: ErrNoKeys,
		},
		{
			name:     "Product of another seller",
			sellerID: 3,
			keys:     []string{"KEY1"},
			prepareMock: func() {
				productRepo.EXPECT().FindByID(gomock.Any(), 10).Return(product, nil)
			},
			expectedError: ErrNotProductOwner,
		},
		{
			name:     "Unknown product",
			sellerID: 2,
			keys:     []string{"KEY1"},
			prepareMock: func() {
				productRepo.EXPECT().FindByID(gomock.Any(), 10).Return(nil, nil)
			},
			expectedError: ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			count, err := service.AddKeys(context.Background(), tt.sellerID, 10, tt.keys)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCount, count)
		})
	}
}

func TestGetInventory(t *testing.T) {
	service, repo, productRepo := NewMock(t)
	history := []domain.ProductKey{{ID: 1, ProductID: 10, KeyValue: "KEY1", IsUsed: true}}

	productRepo.EXPECT().FindByID(gomock.Any(), 10).Return(&domain.Product{ID: 10, SellerID: 2}, nil)
	repo.EXPECT().CountUnused(gomock.Any(), 10).Return(4, nil)
	repo.EXPECT().UsageHistory(gomock.Any(), 10, domain.Page{Limit: historySize}).Return(history, nil)

	inventory, err := service.GetInventory(context.Background(), 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 4, inventory.UnusedCount)
	assert.Equal(t, history, inventory.History)

	productRepo.EXPECT().FindByID(gomock.Any(), 10).Return(&domain.Product{ID: 10, SellerID: 2}, nil)
	_, err = service.GetInventory(context.Background(), 9, 10)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
