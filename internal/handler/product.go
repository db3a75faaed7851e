package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"shopcatalog/internal/domain"
)

// createProductRequest is the body for POST /products.
// Cost and ShopID are pointers so that an explicit zero is distinguishable
// from a missing field; tag_ids is optional and unknown IDs are skipped.
type createProductRequest struct {
	Title  string   `json:"title" validate:"required"`
	Cost   *float64 `json:"cost" validate:"required,gte=0"`
	ShopID *int64   `json:"shop_id" validate:"required"`
	TagIDs []int64  `json:"tag_ids"`
}

// handleCreateProduct handles POST /products.
func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if fieldErrs := s.validate.Validate(req); fieldErrs != nil {
		writeJSON(w, http.StatusBadRequest, fieldErrs)
		return
	}

	product := domain.Product{
		Title:  req.Title,
		Cost:   *req.Cost,
		ShopID: *req.ShopID,
	}

	created, err := s.products.Create(r.Context(), product, req.TagIDs)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// The only lookup on this path is resolving shop_id.
			writeMessage(w, http.StatusNotFound, "Shop not found")
			return
		}
		respondError(w, r, err, "Product")
		return
	}

	writeJSON(w, http.StatusCreated, productToResponse(created))
}

// handleListProducts handles GET /products.
func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.products.List(r.Context())
	if err != nil {
		respondError(w, r, err, "Product")
		return
	}

	writeJSON(w, http.StatusOK, productsToResponse(products))
}

// handleGetProduct handles GET /product/{title}.
func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := s.products.GetByTitle(r.Context(), chi.URLParam(r, "title"))
	if err != nil {
		respondError(w, r, err, "Product")
		return
	}

	writeJSON(w, http.StatusOK, productToResponse(product))
}

// handleDeleteProduct handles DELETE /product/{title}. Deleting an absent
// product is a 404, matching GET.
func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.products.Delete(r.Context(), chi.URLParam(r, "title")); err != nil {
		respondError(w, r, err, "Product")
		return
	}

	writeMessage(w, http.StatusOK, "Product deleted")
}

// handleLinkTag handles POST /product/{title}/tags/{tag_id}.
// Linking an already-linked pair succeeds without modifying state.
func (s *Server) handleLinkTag(w http.ResponseWriter, r *http.Request) {
	title, tagID, ok := linkParams(w, r)
	if !ok {
		return
	}

	if err := s.products.LinkTag(r.Context(), title, tagID); err != nil {
		respondError(w, r, err, linkEntity(err))
		return
	}

	writeMessage(w, http.StatusOK, "Tag linked to product")
}

// handleUnlinkTag handles DELETE /product/{title}/tags/{tag_id}.
// Unlinking an absent pair succeeds as a no-op.
func (s *Server) handleUnlinkTag(w http.ResponseWriter, r *http.Request) {
	title, tagID, ok := linkParams(w, r)
	if !ok {
		return
	}

	if err := s.products.UnlinkTag(r.Context(), title, tagID); err != nil {
		respondError(w, r, err, linkEntity(err))
		return
	}

	writeMessage(w, http.StatusOK, "Tag unlinked from product")
}

// linkParams extracts and validates the path parameters of the link routes.
func linkParams(w http.ResponseWriter, r *http.Request) (title string, tagID int64, ok bool) {
	title = chi.URLParam(r, "title")
	tagID, err := strconv.ParseInt(chi.URLParam(r, "tagID"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "tag_id must be an integer")
		return "", 0, false
	}
	return title, tagID, true
}

// linkEntity names the side of the pair that failed to resolve.
func linkEntity(err error) string {
	if errors.Is(err, domain.ErrTagNotFound) {
		return "Tag"
	}
	return "Product"
}
