package withdrawals

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/digimarket/internal/domain"
	"github.com/GlebRadaev/digimarket/internal/dto"
	"github.com/GlebRadaev/digimarket/pkg/auth"
	"github.com/GlebRadaev/digimarket/pkg/utils"
)

type Service interface {
	RequestWithdrawal(ctx context.Context, sellerID int, amount decimal.Decimal, wallet string) (*domain.Withdrawal, decimal.Decimal, error)
	Approve(ctx context.Context, withdrawalID int, adminID int) (*domain.Withdrawal, error)
	Reject(ctx context.Context, withdrawalID int, adminID int, reason string) (*domain.Withdrawal, error)
	ListWithdrawals(ctx context.Context, sellerID int, page domain.Page) ([]domain.Withdrawal, error)
	ListPending(ctx context.Context, page domain.Page) ([]domain.Withdrawal, int, error)
}

const TotalCountHeader = "X-Total-Count"

type WithdrawalHandler struct {
	withdrawalService Service
}

func New(withdrawalService Service) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalService: withdrawalService,
	}
}

func withdrawalIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "withdrawalID"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid withdrawal id")
		return 0, false
	}
	return id, true
}

// RequestWithdrawal godoc
//
//	@Summary		Request a withdrawal
//	@Description	Reserve the amount from the seller balance and queue the payout for admin approval.
//	@Tags			Seller
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawalRequestDTO			true	"Withdrawal payload"
//	@Success		201		{object}	dto.WithdrawalCreatedResponseDTO	"Withdrawal requested"
//	@Failure		400		{object}	utils.Response						"Invalid amount"
//	@Failure		402		{object}	utils.Response						"Insufficient balance"
//	@Failure		403		{object}	utils.Response						"Access denied"
//	@Failure		500		{object}	utils.Response						"Internal server error"
//	@Router			/api/seller/withdrawal [post]
func (h *WithdrawalHandler) RequestWithdrawal(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	withdrawal, balance, err := h.withdrawalService.RequestWithdrawal(r.Context(), userID, req.Amount, req.WalletAddress)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.WithdrawalCreatedResponseDTO{
		Message:    "Withdrawal requested",
		Withdrawal: dto.NewWithdrawalDTO(withdrawal),
		NewBalance: balance.StringFixed(2),
	})
}

// GetWithdrawals godoc
//
//	@Summary		List my withdrawals
//	@Description	Withdrawals of the authenticated seller, newest first.
//	@Tags			Seller
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page	query		int	false	"Page number"	default(1)
//	@Param			limit	query		int	false	"Page size"		default(20)
//	@Success		200		{array}		dto.WithdrawalDTO
//	@Failure		403		{object}	utils.Response	"Access denied"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/seller/withdrawal [get]
func (h *WithdrawalHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	withdrawals, err := h.withdrawalService.ListWithdrawals(r.Context(), userID, utils.ParsePage(r))
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalDTOs(withdrawals))
}

// GetPendingWithdrawals godoc
//
//	@Summary		List pending withdrawals
//	@Description	Withdrawals waiting for a decision, oldest first. X-Total-Count carries the size of the whole queue.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page	query		int	false	"Page number"	default(1)
//	@Param			limit	query		int	false	"Page size"		default(20)
//	@Success		200		{array}		dto.WithdrawalDTO
//	@Header			200		{integer}	X-Total-Count	"Pending withdrawals in total"
//	@Failure		403		{object}	utils.Response	"Access denied"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/pending [get]
func (h *WithdrawalHandler) GetPendingWithdrawals(w http.ResponseWriter, r *http.Request) {
	withdrawals, total, err := h.withdrawalService.ListPending(r.Context(), utils.ParsePage(r))
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	w.Header().Set(TotalCountHeader, strconv.Itoa(total))
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalDTOs(withdrawals))
}

// ApproveWithdrawal godoc
//
//	@Summary		Approve a withdrawal
//	@Description	Finalise a pending withdrawal. The balance is not changed.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			withdrawalID	path		int	true	"Withdrawal id"
//	@Success		200				{object}	dto.WithdrawalDTO
//	@Failure		400				{object}	utils.Response	"Invalid withdrawal id"
//	@Failure		404				{object}	utils.Response	"Withdrawal not found"
//	@Failure		409				{object}	utils.Response	"Withdrawal already processed"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{withdrawalID}/approve [post]
func (h *WithdrawalHandler) ApproveWithdrawal(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)
	id, ok := withdrawalIDParam(w, r)
	if !ok {
		return
	}

	withdrawal, err := h.withdrawalService.Approve(r.Context(), id, adminID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalDTO(withdrawal))
}

// RejectWithdrawal godoc
//
//	@Summary		Reject a withdrawal
//	@Description	Close a pending withdrawal and return its amount to the seller balance.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			withdrawalID	path		int								true	"Withdrawal id"
//	@Param			request			body		dto.RejectWithdrawalRequestDTO	false	"Rejection reason"
//	@Success		200				{object}	dto.WithdrawalDTO
//	@Failure		400				{object}	utils.Response	"Invalid withdrawal id"
//	@Failure		404				{object}	utils.Response	"Withdrawal not found"
//	@Failure		409				{object}	utils.Response	"Withdrawal already processed"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{withdrawalID}/reject [post]
func (h *WithdrawalHandler) RejectWithdrawal(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)
	id, ok := withdrawalIDParam(w, r)
	if !ok {
		return
	}

	var req dto.RejectWithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	withdrawal, err := h.withdrawalService.Reject(r.Context(), id, adminID, req.Reason)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalDTO(withdrawal))
}
