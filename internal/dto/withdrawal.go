package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/digimarket/internal/domain"
)

type WithdrawalRequestDTO struct {
	Amount        decimal.Decimal `json:"amount" swaggertype:"number" example:"80.5"`
	WalletAddress string          `json:"wallet_address,omitempty" example:"TQn9Y2khEsLJW1ChVWFMSMeRDow5KcbLSE"`
}

type WithdrawalDTO struct {
	ID            int        `json:"id" example:"1"`
	SellerID      int        `json:"seller_id" example:"2"`
	Amount        string     `json:"amount" example:"80.50"`
	WalletAddress string     `json:"wallet_address" example:"TQn9Y2khEsLJW1ChVWFMSMeRDow5KcbLSE"`
	Status        string     `json:"status" example:"pending"`
	RejectReason  *string    `json:"reject_reason,omitempty" example:"wallet blocked"`
	RequestedAt   time.Time  `json:"requested_at" example:"2024-05-01T12:00:00Z"`
	ProcessedAt   *time.Time `json:"processed_at,omitempty" example:"2024-05-02T09:00:00Z"`
	ProcessedBy   *int       `json:"processed_by,omitempty" example:"1"`
}

func NewWithdrawalDTO(w *domain.Withdrawal) WithdrawalDTO {
	return WithdrawalDTO{
		ID:            w.ID,
		SellerID:      w.SellerID,
		Amount:        w.Amount.StringFixed(2),
		WalletAddress: w.WalletAddress,
		Status:        w.Status,
		RejectReason:  w.RejectReason,
		RequestedAt:   w.RequestedAt,
		ProcessedAt:   w.ProcessedAt,
		ProcessedBy:   w.ProcessedBy,
	}
}

func NewWithdrawalDTOs(withdrawals []domain.Withdrawal) []WithdrawalDTO {
	response := make([]WithdrawalDTO, len(withdrawals))
	for i := range withdrawals {
		response[i] = NewWithdrawalDTO(&withdrawals[i])
	}
	return response
}

type WithdrawalCreatedResponseDTO struct {
	Message    string        `json:"message" example:"Withdrawal requested"`
	Withdrawal WithdrawalDTO `json:"withdrawal"`
	NewBalance string        `json:"new_balance" example:"19.50"`
}

type RejectWithdrawalRequestDTO struct {
	Reason string `json:"reason,omitempty" example:"wallet blocked"`
}
