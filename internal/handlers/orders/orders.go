package orders

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/digimarket/internal/domain"
	"github.com/GlebRadaev/digimarket/internal/dto"
	orderservice "github.com/GlebRadaev/digimarket/internal/service/orderservice"
	"github.com/GlebRadaev/digimarket/pkg/auth"
	"github.com/GlebRadaev/digimarket/pkg/utils"
	"github.com/GlebRadaev/digimarket/pkg/validate"
)

type Service interface {
	CreateOrder(ctx context.Context, in orderservice.CreateInput) (*domain.Order, error)
	ConfirmPayment(ctx context.Context, orderNumber string, buyerID int) (*domain.Order, error)
	LeaveReview(ctx context.Context, in orderservice.ReviewInput) (*domain.Review, error)
	GetOrder(ctx context.Context, orderNumber string, userID int) (*domain.Order, *domain.Review, error)
	ListMyOrders(ctx context.Context, buyerID int, page domain.Page) ([]domain.Order, error)
	ListSales(ctx context.Context, sellerID int, page domain.Page) ([]domain.Order, error)
	ListPendingPayment(ctx context.Context, page domain.Page) ([]domain.Order, error)
}

type OrderHandler struct {
	orderService Service
	support      dto.SupportContactDTO
}

func New(orderService Service, support dto.SupportContactDTO) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		support:      support,
	}
}

// orderNumberParam extracts the order number path parameter and rejects
// malformed ones before they reach the store.
func orderNumberParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	orderNumber := chi.URLParam(r, "orderNumber")
	if !validate.IsOrderNumber(orderNumber) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order number")
		return "", false
	}
	return orderNumber, true
}

// CreateOrder godoc
//
//	@Summary		Create an order
//	@Description	Create a pending order for an approved product. An applicable promo code lowers the total and consumes one of its uses.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateOrderRequestDTO	true	"Order payload"
//	@Success		201		{object}	dto.CreateOrderResponseDTO	"Order created"
//	@Failure		400		{object}	utils.Response				"Invalid request"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		404		{object}	utils.Response				"Product not found or not available"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProductID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "product_id is required")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	order, err := h.orderService.CreateOrder(r.Context(), orderservice.CreateInput{
		BuyerID:    userID,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		PromoCode:  req.PromoCode,
		BuyerPhone: req.BuyerPhone,
	})
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateOrderResponseDTO{
		Message: "Order created. Contact support to pay for it.",
		Order:   dto.NewOrderDTO(order),
		Support: h.support,
	})
}

// GetOrders godoc
//
//	@Summary		List my orders
//	@Description	Orders placed by the authenticated user, newest first.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page	query		int	false	"Page number"	default(1)
//	@Param			limit	query		int	false	"Page size"		default(20)
//	@Success		200		{array}		dto.OrderDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	orders, err := h.orderService.ListMyOrders(r.Context(), userID, utils.ParsePage(r))
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderDTOs(orders))
}

// GetOrder godoc
//
//	@Summary		Get an order
//	@Description	Order details with its review. Visible to the order's buyer and seller only.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			orderNumber	path		string	true	"Order number"
//	@Success		200			{object}	dto.GetOrderResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid order number"
//	@Failure		403			{object}	utils.Response	"Not a participant of the order"
//	@Failure		404			{object}	utils.Response	"Order not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{orderNumber} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	orderNumber, ok := orderNumberParam(w, r)
	if !ok {
		return
	}

	order, review, err := h.orderService.GetOrder(r.Context(), orderNumber, userID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.GetOrderResponseDTO{
		Order:  dto.NewOrderDTO(order),
		Review: dto.NewReviewDTO(review),
	})
}

// ConfirmPayment godoc
//
//	@Summary		Confirm order payment
//	@Description	Buyer attests the payment. Auto-delivery products get a key attached; the seller is credited 85% of the total.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			orderNumber	path		string	true	"Order number"
//	@Success		200			{object}	dto.ConfirmPaymentResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid order number"
//	@Failure		403			{object}	utils.Response	"Not the buyer of the order"
//	@Failure		404			{object}	utils.Response	"Order not found"
//	@Failure		409			{object}	utils.Response	"Payment already confirmed or product out of stock"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{orderNumber}/confirm-payment [post]
func (h *OrderHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	orderNumber, ok := orderNumberParam(w, r)
	if !ok {
		return
	}

	order, err := h.orderService.ConfirmPayment(r.Context(), orderNumber, userID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ConfirmPaymentResponseDTO{
		Message:      "Payment confirmed",
		Order:        dto.NewOrderDTO(order),
		DeliveredKey: order.DeliveredKey,
	})
}

// LeaveReview godoc
//
//	@Summary		Review an order
//	@Description	One review per paid order, by its buyer. Product and seller ratings are recomputed.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			orderNumber	path		string					true	"Order number"
//	@Param			request		body		dto.ReviewRequestDTO	true	"Review payload"
//	@Success		201			{object}	dto.ReviewDTO
//	@Failure		400			{object}	utils.Response	"Invalid request"
//	@Failure		403			{object}	utils.Response	"Not the buyer of the order"
//	@Failure		404			{object}	utils.Response	"Order not found"
//	@Failure		409			{object}	utils.Response	"Already reviewed or not paid"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{orderNumber}/review [post]
func (h *OrderHandler) LeaveReview(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	orderNumber, ok := orderNumberParam(w, r)
	if !ok {
		return
	}

	var req dto.ReviewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	review, err := h.orderService.LeaveReview(r.Context(), orderservice.ReviewInput{
		OrderNumber: orderNumber,
		BuyerID:     userID,
		Rating:      req.Rating,
		Comment:     req.Comment,
	})
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewReviewDTO(review))
}

// GetSales godoc
//
//	@Summary		List my sales
//	@Description	Orders of the authenticated seller, newest first.
//	@Tags			Seller
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page	query		int	false	"Page number"	default(1)
//	@Param			limit	query		int	false	"Page size"		default(20)
//	@Success		200		{array}		dto.OrderDTO
//	@Failure		403		{object}	utils.Response	"Access denied"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/seller/sales [get]
func (h *OrderHandler) GetSales(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	orders, err := h.orderService.ListSales(r.Context(), userID, utils.ParsePage(r))
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderDTOs(orders))
}

// GetPendingOrders godoc
//
//	@Summary		List orders awaiting payment
//	@Description	Unpaid orders, oldest first.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page	query		int	false	"Page number"	default(1)
//	@Param			limit	query		int	false	"Page size"		default(20)
//	@Success		200		{array}		dto.OrderDTO
//	@Failure		403		{object}	utils.Response	"Access denied"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/orders/pending [get]
func (h *OrderHandler) GetPendingOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListPendingPayment(r.Context(), utils.ParsePage(r))
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderDTOs(orders))
}
