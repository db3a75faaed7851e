package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"shopcatalog/internal/domain"
)

// createShopRequest is the body for POST /shops.
type createShopRequest struct {
	Title string `json:"title" validate:"required"`
}

// handleCreateShop handles POST /shops.
func (s *Server) handleCreateShop(w http.ResponseWriter, r *http.Request) {
	var req createShopRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if fieldErrs := s.validate.Validate(req); fieldErrs != nil {
		writeJSON(w, http.StatusBadRequest, fieldErrs)
		return
	}

	created, err := s.shops.Create(r.Context(), req.Title)
	if err != nil {
		respondError(w, r, err, "Shop")
		return
	}

	writeJSON(w, http.StatusCreated, shopToResponse(created))
}

// handleListShops handles GET /shops. Each shop nests its products with
// their tags.
func (s *Server) handleListShops(w http.ResponseWriter, r *http.Request) {
	shops, err := s.shops.List(r.Context())
	if err != nil {
		respondError(w, r, err, "Shop")
		return
	}

	out := make([]shopResponse, len(shops))
	for i, shop := range shops {
		out[i] = shopToResponse(shop)
	}
	writeJSON(w, http.StatusOK, out)
}

// handleGetShop handles GET /shop/{title}.
func (s *Server) handleGetShop(w http.ResponseWriter, r *http.Request) {
	shop, err := s.shops.GetByTitle(r.Context(), chi.URLParam(r, "title"))
	if err != nil {
		respondError(w, r, err, "Shop")
		return
	}

	writeJSON(w, http.StatusOK, shopToResponse(shop))
}

// handleDeleteShop handles DELETE /shop/{title}. Deleting an absent shop
// is a 404, matching GET; deleting a shop that still has products is a 409.
func (s *Server) handleDeleteShop(w http.ResponseWriter, r *http.Request) {
	if err := s.shops.Delete(r.Context(), chi.URLParam(r, "title")); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			// Conflict here means dependent products, not a duplicate title.
			writeMessage(w, http.StatusConflict, "Shop still has products")
			return
		}
		respondError(w, r, err, "Shop")
		return
	}

	writeMessage(w, http.StatusOK, "Shop deleted")
}
