package promos

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/digimarket/internal/domain"
	"github.com/GlebRadaev/digimarket/internal/dto"
	promoservice "github.com/GlebRadaev/digimarket/internal/service/promoservice"
	"github.com/GlebRadaev/digimarket/pkg/auth"
	"github.com/GlebRadaev/digimarket/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, adminID int, in promoservice.CreateInput) (*domain.PromoCode, error)
	List(ctx context.Context, page domain.Page) ([]domain.PromoCode, error)
	SetActive(ctx context.Context, promoID int, active bool) (*domain.PromoCode, error)
	Delete(ctx context.Context, promoID int) error
}

type PromoHandler struct {
	promoService Service
}

func New(promoService Service) *PromoHandler {
	return &PromoHandler{
		promoService: promoService,
	}
}

func promoIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "promoID"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid promo code id")
		return 0, false
	}
	return id, true
}

// CreatePromo godoc
//
//	@Summary		Create a promo code
//	@Description	Percent discounts win over flat ones. max_uses defaults to -1 (unlimited).
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePromoRequestDTO	true	"Promo code"
//	@Success		201		{object}	dto.PromoDTO
//	@Failure		400		{object}	utils.Response	"Invalid promo code"
//	@Failure		409		{object}	utils.Response	"Promo code already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/promo-codes [post]
func (h *PromoHandler) CreatePromo(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreatePromoRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	maxUses := domain.UnlimitedUses
	if req.MaxUses != nil {
		maxUses = *req.MaxUses
	}

	promo, err := h.promoService.Create(r.Context(), adminID, promoservice.CreateInput{
		Code:            req.Code,
		DiscountPercent: req.DiscountPercent,
		DiscountAmount:  req.DiscountAmount,
		MaxUses:         maxUses,
		MinOrderAmount:  req.MinOrderAmount,
		ValidFrom:       req.ValidFrom,
		ValidUntil:      req.ValidUntil,
	})
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewPromoDTO(promo))
}

// ListPromos godoc
//
//	@Summary		List promo codes
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page	query		int	false	"Page number"	default(1)
//	@Param			limit	query		int	false	"Page size"		default(20)
//	@Success		200		{array}		dto.PromoDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/promo-codes [get]
func (h *PromoHandler) ListPromos(w http.ResponseWriter, r *http.Request) {
	promos, err := h.promoService.List(r.Context(), utils.ParsePage(r))
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPromoDTOs(promos))
}

// UpdatePromo godoc
//
//	@Summary		Activate or deactivate a promo code
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			promoID	path		int							true	"Promo code id"
//	@Param			request	body		dto.SetPromoActiveRequestDTO	true	"New state"
//	@Success		200		{object}	dto.PromoDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		404		{object}	utils.Response	"Promo code not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/promo-codes/{promoID} [put]
func (h *PromoHandler) UpdatePromo(w http.ResponseWriter, r *http.Request) {
	id, ok := promoIDParam(w, r)
	if !ok {
		return
	}

	var req dto.SetPromoActiveRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IsActive == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "is_active is required")
		return
	}

	promo, err := h.promoService.SetActive(r.Context(), id, *req.IsActive)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPromoDTO(promo))
}

// DeletePromo godoc
//
//	@Summary		Delete a promo code
//	@Description	Orders that used the code keep their discount; their promo reference is cleared.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			promoID	path		int	true	"Promo code id"
//	@Success		200		{object}	utils.Response	"Promo code deleted"
//	@Failure		400		{object}	utils.Response	"Invalid promo code id"
//	@Failure		404		{object}	utils.Response	"Promo code not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/promo-codes/{promoID} [delete]
func (h *PromoHandler) DeletePromo(w http.ResponseWriter, r *http.Request) {
	id, ok := promoIDParam(w, r)
	if !ok {
		return
	}

	if err := h.promoService.Delete(r.Context(), id); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithError(w, http.StatusOK, "Promo code deleted")
}
