package dto

import (
	"time"

	"github.com/GlebRadaev/digimarket/internal/domain"
)

type CreateOrderRequestDTO struct {
	ProductID  int    `json:"product_id" example:"10"`
	Quantity   int    `json:"quantity,omitempty" example:"1"`
	PromoCode  string `json:"promo_code,omitempty" example:"SAVE10"`
	BuyerPhone string `json:"buyer_phone,omitempty" example:"+7 999 123-45-67"`
}

type SupportContactDTO struct {
	Phone    string `json:"phone,omitempty" example:"+7 800 000-00-00"`
	Telegram string `json:"telegram,omitempty" example:"@zvr_support"`
}

type CreateOrderResponseDTO struct {
	Message string            `json:"message" example:"Order created. Contact support to pay for it."`
	Order   OrderDTO          `json:"order"`
	Support SupportContactDTO `json:"support"`
}

type OrderDTO struct {
	OrderNumber        string     `json:"order_number" example:"ZVR-17000000000001-0123456789ABCDEF"`
	BuyerID            int        `json:"buyer_id" example:"5"`
	SellerID           int        `json:"seller_id" example:"2"`
	ProductID          int        `json:"product_id" example:"10"`
	Quantity           int        `json:"quantity" example:"1"`
	Price              string     `json:"price" example:"100.00"`
	TotalPrice         string     `json:"total_price" example:"90.00"`
	DiscountAmount     string     `json:"discount_amount" example:"10.00"`
	PromoCodeID        *int       `json:"promo_code_id,omitempty" example:"7"`
	BuyerPhone         *string    `json:"buyer_phone,omitempty" example:"+7 999 123-45-67"`
	Status             string     `json:"status" example:"completed"`
	PaymentConfirmed   bool       `json:"payment_confirmed" example:"true"`
	PaymentConfirmedAt *time.Time `json:"payment_confirmed_at,omitempty" example:"2024-05-01T12:00:00Z"`
	DeliveredKey       *string    `json:"delivered_key" example:"AAAA-BBBB-CCCC"`
	SellerEarnings     string     `json:"seller_earnings" example:"76.50"`
	PlatformFee        string     `json:"platform_fee" example:"13.50"`
	CreatedAt          time.Time  `json:"created_at" example:"2024-05-01T11:58:00Z"`
}

func NewOrderDTO(o *domain.Order) OrderDTO {
	return OrderDTO{
		OrderNumber:        o.OrderNumber,
		BuyerID:            o.BuyerID,
		SellerID:           o.SellerID,
		ProductID:          o.ProductID,
		Quantity:           o.Quantity,
		Price:              o.Price.StringFixed(2),
		TotalPrice:         o.TotalPrice.StringFixed(2),
		DiscountAmount:     o.DiscountAmount.StringFixed(2),
		PromoCodeID:        o.PromoCodeID,
		BuyerPhone:         o.BuyerPhone,
		Status:             o.Status,
		PaymentConfirmed:   o.PaymentConfirmed,
		PaymentConfirmedAt: o.PaymentConfirmedAt,
		DeliveredKey:       o.DeliveredKey,
		SellerEarnings:     o.SellerEarnings.StringFixed(2),
		PlatformFee:        o.PlatformFee.StringFixed(2),
		CreatedAt:          o.CreatedAt,
	}
}

func NewOrderDTOs(orders []domain.Order) []OrderDTO {
	response := make([]OrderDTO, len(orders))
	for i := range orders {
		response[i] = NewOrderDTO(&orders[i])
	}
	return response
}

type ConfirmPaymentResponseDTO struct {
	Message      string   `json:"message" example:"Payment confirmed"`
	Order        OrderDTO `json:"order"`
	DeliveredKey *string  `json:"delivered_key" example:"AAAA-BBBB-CCCC"`
}

type ReviewRequestDTO struct {
	Rating  int    `json:"rating" example:"5"`
	Comment string `json:"comment,omitempty" example:"Key worked instantly"`
}

type ReviewDTO struct {
	ID        int       `json:"id" example:"3"`
	Rating    int       `json:"rating" example:"5"`
	Comment   string    `json:"comment" example:"Key worked instantly"`
	CreatedAt time.Time `json:"created_at" example:"2024-05-01T12:10:00Z"`
}

func NewReviewDTO(r *domain.Review) *ReviewDTO {
	if r == nil {
		return nil
	}
	return &ReviewDTO{
		ID:        r.ID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

type GetOrderResponseDTO struct {
	Order  OrderDTO   `json:"order"`
	Review *ReviewDTO `json:"review,omitempty"`
}
