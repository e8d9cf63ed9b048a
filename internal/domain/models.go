package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

const (
	ProductPending  = "pending"
	ProductApproved = "approved"
	ProductRejected = "rejected"
)

const (
	OrderPending   = "pending"
	OrderCompleted = "completed"
)

const (
	WithdrawalPending  = "pending"
	WithdrawalApproved = "approved"
	WithdrawalRejected = "rejected"
)

type User struct {
	ID           int             `db:"id"`
	Role         string          `db:"role"`
	Balance      decimal.Decimal `db:"balance"`
	Rating       decimal.Decimal `db:"rating"`
	ReviewsCount int             `db:"reviews_count"`
}

type Product struct {
	ID           int             `db:"id"`
	SellerID     int             `db:"seller_id"`
	Title        string          `db:"title"`
	Price        decimal.Decimal `db:"price"`
	Status       string          `db:"status"`
	AutoDelivery bool            `db:"auto_delivery"`
	SalesCount   int             `db:"sales_count"`
	Rating       decimal.Decimal `db:"rating"`
	ReviewsCount int             `db:"reviews_count"`
}

type ProductKey struct {
	ID        int        `db:"id"`
	ProductID int        `db:"product_id"`
	KeyValue  string     `db:"key_value"`
	IsUsed    bool       `db:"is_used"`
	UsedBy    *int       `db:"used_by"`
	UsedAt    *time.Time `db:"used_at"`
	CreatedAt time.Time  `db:"created_at"`
}

type PromoCode struct {
	ID              int             `db:"id"`
	Code            string          `db:"code"`
	DiscountPercent int             `db:"discount_percent"`
	DiscountAmount  decimal.Decimal `db:"discount_amount"`
	MaxUses         int             `db:"max_uses"`
	CurrentUses     int             `db:"current_uses"`
	MinOrderAmount  decimal.Decimal `db:"min_order_amount"`
	ValidFrom       *time.Time      `db:"valid_from"`
	ValidUntil      *time.Time      `db:"valid_until"`
	IsActive        bool            `db:"is_active"`
	CreatedBy       *int            `db:"created_by"`
	CreatedAt       time.Time       `db:"created_at"`
}

// UnlimitedUses marks a promo code without a usage cap.
const UnlimitedUses = -1

// Eligible reports whether the code can be applied to an order of the given
// total at moment now. Nil window bounds are open.
func (p *PromoCode) Eligible(now time.Time, orderTotal decimal.Decimal) bool {
	if !p.IsActive {
		return false
	}
	if p.ValidFrom != nil && now.Before(*p.ValidFrom) {
		return false
	}
	if p.ValidUntil != nil && now.After(*p.ValidUntil) {
		return false
	}
	if p.MaxUses != UnlimitedUses && p.CurrentUses >= p.MaxUses {
		return false
	}
	return p.MinOrderAmount.LessThanOrEqual(orderTotal)
}

type Order struct {
	ID                 int             `db:"id"`
	OrderNumber        string          `db:"order_number"`
	BuyerID            int             `db:"buyer_id"`
	SellerID           int             `db:"seller_id"`
	ProductID          int             `db:"product_id"`
	Quantity           int             `db:"quantity"`
	Price              decimal.Decimal `db:"price"`
	TotalPrice         decimal.Decimal `db:"total_price"`
	PromoCodeID        *int            `db:"promo_code_id"`
	DiscountAmount     decimal.Decimal `db:"discount_amount"`
	BuyerPhone         *string         `db:"buyer_phone"`
	Status             string          `db:"status"`
	PaymentConfirmed   bool            `db:"payment_confirmed"`
	PaymentConfirmedAt *time.Time      `db:"payment_confirmed_at"`
	DeliveredKey       *string         `db:"delivered_key"`
	SellerEarnings     decimal.Decimal `db:"seller_earnings"`
	PlatformFee        decimal.Decimal `db:"platform_fee"`
	CreatedAt          time.Time       `db:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at"`
}

type Review struct {
	ID        int       `db:"id"`
	OrderID   int       `db:"order_id"`
	BuyerID   int       `db:"buyer_id"`
	SellerID  int       `db:"seller_id"`
	ProductID int       `db:"product_id"`
	Rating    int       `db:"rating"`
	Comment   string    `db:"comment"`
	CreatedAt time.Time `db:"created_at"`
}

type Withdrawal struct {
	ID            int             `db:"id"`
	SellerID      int             `db:"seller_id"`
	Amount        decimal.Decimal `db:"amount"`
	WalletAddress string          `db:"wallet_address"`
	Status        string          `db:"status"`
	RejectReason  *string         `db:"reject_reason"`
	RequestedAt   time.Time       `db:"requested_at"`
	ProcessedAt   *time.Time      `db:"processed_at"`
	ProcessedBy   *int            `db:"processed_by"`
}

// RatingSummary is the recomputed aggregate for a product or seller.
type RatingSummary struct {
	Rating       decimal.Decimal `db:"rating"`
	ReviewsCount int             `db:"reviews_count"`
}

type SellerStats struct {
	TotalOrders     int             `db:"total_orders"`
	CompletedOrders int             `db:"completed_orders"`
	TotalRevenue    decimal.Decimal `db:"total_revenue"`
}

type SellerDashboard struct {
	Stats             SellerStats
	Balance           decimal.Decimal
	PendingWithdrawal decimal.Decimal
}

type BalanceSummary struct {
	Balance           decimal.Decimal
	PendingWithdrawal decimal.Decimal
}

type Page struct {
	Limit  uint64
	Offset uint64
}

type KeyInventory struct {
	UnusedCount int
	History     []ProductKey
}
