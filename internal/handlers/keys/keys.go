package keys

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/digimarket/internal/domain"
	"github.com/GlebRadaev/digimarket/internal/dto"
	"github.com/GlebRadaev/digimarket/pkg/auth"
	"github.com/GlebRadaev/digimarket/pkg/utils"
)

type Service interface {
	AddKeys(ctx context.Context, sellerID int, productID int, keys []string) (int, error)
	GetInventory(ctx context.Context, sellerID int, productID int) (*domain.KeyInventory, error)
}

type KeyHandler struct {
	keyService Service
}

func New(keyService Service) *KeyHandler {
	return &KeyHandler{
		keyService: keyService,
	}
}

func productIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return 0, false
	}
	return id, true
}

// AddKeys godoc
//
//	@Summary		Upload product keys
//	@Description	Add delivery keys to an auto-delivery product. Keys are trimmed; blanks and repeats are dropped.
//	@Tags			Seller
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			productID	path		int						true	"Product id"
//	@Param			request		body		dto.AddKeysRequestDTO	true	"Keys"
//	@Success		201			{object}	dto.AddKeysResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request"
//	@Failure		403			{object}	utils.Response	"Product belongs to another seller"
//	@Failure		404			{object}	utils.Response	"Product not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/seller/products/{productID}/keys [post]
func (h *KeyHandler) AddKeys(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}

	var req dto.AddKeysRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	added, err := h.keyService.AddKeys(r.Context(), userID, productID, req.Keys)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.AddKeysResponseDTO{Added: added})
}

// GetKeys godoc
//
//	@Summary		Get key inventory
//	@Description	Unused key count and the latest claimed keys of a product.
//	@Tags			Seller
//	@Security		BearerAuth
//	@Produce		json
//	@Param			productID	path		int	true	"Product id"
//	@Success		200			{object}	dto.KeyInventoryResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid product id"
//	@Failure		403			{object}	utils.Response	"Product belongs to another seller"
//	@Failure		404			{object}	utils.Response	"Product not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/seller/products/{productID}/keys [get]
func (h *KeyHandler) GetKeys(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}

	inventory, err := h.keyService.GetInventory(r.Context(), userID, productID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewKeyInventoryDTO(inventory))
}
