package handler

import "shopcatalog/internal/domain"

// Response shapes. Products always embed their owning shop as a summary
// (no products list, which would recurse) and their tags in insertion
// order; shops embed their full product list.

type tagResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type shopSummary struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type productResponse struct {
	ID    int64         `json:"id"`
	Title string        `json:"title"`
	Cost  float64       `json:"cost"`
	Shop  *shopSummary  `json:"shop,omitempty"`
	Tags  []tagResponse `json:"tags"`
}

type shopResponse struct {
	ID       int64             `json:"id"`
	Title    string            `json:"title"`
	Products []productResponse `json:"products"`
}

func tagToResponse(t domain.Tag) tagResponse {
	return tagResponse{ID: t.ID, Name: t.Name}
}

func tagsToResponse(tags []domain.Tag) []tagResponse {
	out := make([]tagResponse, len(tags))
	for i, t := range tags {
		out[i] = tagToResponse(t)
	}
	return out
}

func productToResponse(p domain.Product) productResponse {
	resp := productResponse{
		ID:    p.ID,
		Title: p.Title,
		Cost:  p.Cost,
		Tags:  tagsToResponse(p.Tags),
	}
	if p.Shop != nil {
		resp.Shop = &shopSummary{ID: p.Shop.ID, Title: p.Shop.Title}
	}
	return resp
}

func productsToResponse(products []domain.Product) []productResponse {
	out := make([]productResponse, len(products))
	for i, p := range products {
		out[i] = productToResponse(p)
	}
	return out
}

func shopToResponse(s domain.Shop) shopResponse {
	return shopResponse{
		ID:       s.ID,
		Title:    s.Title,
		Products: productsToResponse(s.Products),
	}
}
