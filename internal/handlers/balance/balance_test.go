package balance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/digimarket/internal/domain"
	"github.com/GlebRadaev/digimarket/internal/dto"
	balanceservice "github.com/GlebRadaev/digimarket/internal/service/balanceservice"
	"github.com/GlebRadaev/digimarket/pkg/auth"
)

func NewMock(t *testing.T) (*BalanceHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.BalanceResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().
					GetSummary(context.WithValue(context.Background(), auth.UserIDKey, 2), 2).
					Return(&domain.BalanceSummary{
						Balance:           decimal.RequireFromString("170"),
						PendingWithdrawal: decimal.RequireFromString("30.5"),
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceResponseDTO{
				Balance:           "170.00",
				PendingWithdrawal: "30.50",
			},
		},
		{
			name: "Unknown seller",
			prepareMock: func() {
				service.EXPECT().
					GetSummary(context.WithValue(context.Background(), auth.UserIDKey, 2), 2).
					Return(nil, balanceservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					GetSummary(context.WithValue(context.Background(), auth.UserIDKey, 2), 2).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/seller/balance", nil)
			r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 2))
			w := httptest.NewRecorder()
			handler.GetBalance(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestGetDashboardHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().
		GetDashboard(gomock.Any(), 2).
		Return(&domain.SellerDashboard{
			Stats: domain.SellerStats{
				TotalOrders:     3,
				CompletedOrders: 2,
				TotalRevenue:    decimal.RequireFromString("200"),
			},
			Balance:           decimal.RequireFromString("170"),
			PendingWithdrawal: decimal.Zero,
		}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/seller/dashboard", nil)
	r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 2))
	w := httptest.NewRecorder()
	handler.GetDashboard(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.DashboardResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, dto.DashboardResponseDTO{
		TotalOrders:       3,
		CompletedOrders:   2,
		TotalRevenue:      "200.00",
		Balance:           "170.00",
		PendingWithdrawal: "0.00",
	}, body)
}
