package balance

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/digimarket/internal/domain"
	"github.com/GlebRadaev/digimarket/internal/dto"
	"github.com/GlebRadaev/digimarket/pkg/auth"
	"github.com/GlebRadaev/digimarket/pkg/utils"
)

type Service interface {
	GetSummary(ctx context.Context, sellerID int) (*domain.BalanceSummary, error)
	GetDashboard(ctx context.Context, sellerID int) (*domain.SellerDashboard, error)
}

type BalanceHandler struct {
	balanceService Service
}

func New(balanceService Service) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
	}
}

// GetBalance godoc
//
//	@Summary		Get seller balance
//	@Description	Current balance and the sum reserved by pending withdrawals. The reserved sum has already left the balance.
//	@Tags			Seller
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Access denied"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/seller/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	summary, err := h.balanceService.GetSummary(r.Context(), userID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Balance:           summary.Balance.StringFixed(2),
		PendingWithdrawal: summary.PendingWithdrawal.StringFixed(2),
	})
}

// GetDashboard godoc
//
//	@Summary		Get seller dashboard
//	@Description	Order counters, completed revenue and balance figures of the authenticated seller.
//	@Tags			Seller
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.DashboardResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Access denied"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/seller/dashboard [get]
func (h *BalanceHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	dashboard, err := h.balanceService.GetDashboard(r.Context(), userID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DashboardResponseDTO{
		TotalOrders:       dashboard.Stats.TotalOrders,
		CompletedOrders:   dashboard.Stats.CompletedOrders,
		TotalRevenue:      dashboard.Stats.TotalRevenue.StringFixed(2),
		Balance:           dashboard.Balance.StringFixed(2),
		PendingWithdrawal: dashboard.PendingWithdrawal.StringFixed(2),
	})
}
