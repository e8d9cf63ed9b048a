package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/digimarket/internal/domain"
)

type CreatePromoRequestDTO struct {
	Code            string          `json:"code" example:"SAVE10"`
	DiscountPercent int             `json:"discount_percent,omitempty" example:"10"`
	DiscountAmount  decimal.Decimal `json:"discount_amount" swaggertype:"number" example:"0"`
	MaxUses         *int            `json:"max_uses,omitempty" example:"100"`
	MinOrderAmount  decimal.Decimal `json:"min_order_amount" swaggertype:"number" example:"50"`
	ValidFrom       *time.Time      `json:"valid_from,omitempty" example:"2024-05-01T00:00:00Z"`
	ValidUntil      *time.Time      `json:"valid_until,omitempty" example:"2024-06-01T00:00:00Z"`
}

type SetPromoActiveRequestDTO struct {
	IsActive *bool `json:"is_active" example:"false"`
}

type PromoDTO struct {
	ID              int        `json:"id" example:"7"`
	Code            string     `json:"code" example:"SAVE10"`
	DiscountPercent int        `json:"discount_percent" example:"10"`
	DiscountAmount  string     `json:"discount_amount" example:"0.00"`
	MaxUses         int        `json:"max_uses" example:"100"`
	CurrentUses     int        `json:"current_uses" example:"12"`
	MinOrderAmount  string     `json:"min_order_amount" example:"50.00"`
	ValidFrom       *time.Time `json:"valid_from,omitempty" example:"2024-05-01T00:00:00Z"`
	ValidUntil      *time.Time `json:"valid_until,omitempty" example:"2024-06-01T00:00:00Z"`
	IsActive        bool       `json:"is_active" example:"true"`
	CreatedAt       time.Time  `json:"created_at" example:"2024-04-30T10:00:00Z"`
}

func NewPromoDTO(p *domain.PromoCode) PromoDTO {
	return PromoDTO{
		ID:              p.ID,
		Code:            p.Code,
		DiscountPercent: p.DiscountPercent,
		DiscountAmount:  p.DiscountAmount.StringFixed(2),
		MaxUses:         p.MaxUses,
		CurrentUses:     p.CurrentUses,
		MinOrderAmount:  p.MinOrderAmount.StringFixed(2),
		ValidFrom:       p.ValidFrom,
		ValidUntil:      p.ValidUntil,
		IsActive:        p.IsActive,
		CreatedAt:       p.CreatedAt,
	}
}

func NewPromoDTOs(promos []domain.PromoCode) []PromoDTO {
	response := make([]PromoDTO, len(promos))
	for i := range promos {
		response[i] = NewPromoDTO(&promos[i])
	}
	return response
}
