package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shopcatalog/internal/domain"
	"shopcatalog/internal/repo"
)

// ProductService implements business logic for Product operations,
// including the product↔tag link management exposed under
// /product/{title}/tags/{tag_id}.
type ProductService struct {
	products repo.ProductRepo
	tags     repo.TagRepo
}

// NewProductService constructs a ProductService backed by the provided repos.
func NewProductService(products repo.ProductRepo, tags repo.TagRepo) *ProductService {
	return &ProductService{products: products, tags: tags}
}

// Create validates and persists a new product, linking any resolvable
// tag IDs atomically with the insert. The returned product carries its
// owning shop and tags for the response body.
func (s *ProductService) Create(ctx context.Context, product domain.Product, tagIDs []int64) (domain.Product, error) {
	product.Title = strings.TrimSpace(product.Title)
	if product.Title == "" {
		return domain.Product{}, fmt.Errorf("service.ProductService.Create: %w: title is required", domain.ErrValidation)
	}
	if product.Cost < 0 {
		return domain.Product{}, fmt.Errorf("service.ProductService.Create: %w: cost must not be negative", domain.ErrValidation)
	}

	created, err := s.products.Create(ctx, product, tagIDs)
	if err != nil {
		return domain.Product{}, fmt.Errorf("service.ProductService.Create: %w", err)
	}

	// The body is assembled from the insert itself, not a re-read: a
	// concurrent delete must not turn a committed create into a 404.
	tags, err := s.tags.ListByProduct(ctx, created.ID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("service.ProductService.Create: %w", err)
	}
	created.Tags = tags
	return created, nil
}

// GetByTitle returns a product with its owning shop and its tags in
// insertion order.
func (s *ProductService) GetByTitle(ctx context.Context, title string) (domain.Product, error) {
	product, err := s.products.GetByTitle(ctx, title)
	if err != nil {
		return domain.Product{}, fmt.Errorf("service.ProductService.GetByTitle: %w", err)
	}

	tags, err := s.tags.ListByProduct(ctx, product.ID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("service.ProductService.GetByTitle: %w", err)
	}
	product.Tags = tags
	return product, nil
}

// List returns all products with shops and tags populated.
func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ProductService.List: %w", err)
	}

	ids := make([]int64, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	tagsByProduct, err := s.tags.ListByProducts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("service.ProductService.List: %w", err)
	}

	for i := range products {
		products[i].Tags = tagsByProduct[products[i].ID]
		if products[i].Tags == nil {
			products[i].Tags = []domain.Tag{}
		}
	}
	return products, nil
}

// Delete removes a product by title; its association rows cascade away.
func (s *ProductService) Delete(ctx context.Context, title string) error {
	if err := s.products.Delete(ctx, title); err != nil {
		return fmt.Errorf("service.ProductService.Delete: %w", err)
	}
	return nil
}

// LinkTag adds the tag to the product's association set. Both sides must
// resolve; a pair that is already linked is a no-op success.
func (s *ProductService) LinkTag(ctx context.Context, title string, tagID int64) error {
	product, tag, err := s.resolvePair(ctx, title, tagID)
	if err != nil {
		return fmt.Errorf("service.ProductService.LinkTag: %w", err)
	}

	if err := s.tags.Link(ctx, product.ID, tag.ID); err != nil {
		return fmt.Errorf("service.ProductService.LinkTag: %w", err)
	}
	return nil
}

// UnlinkTag removes the tag from the product's association set. Both
// sides must resolve; an absent pair is a no-op success.
func (s *ProductService) UnlinkTag(ctx context.Context, title string, tagID int64) error {
	product, tag, err := s.resolvePair(ctx, title, tagID)
	if err != nil {
		return fmt.Errorf("service.ProductService.UnlinkTag: %w", err)
	}

	if err := s.tags.Unlink(ctx, product.ID, tag.ID); err != nil {
		return fmt.Errorf("service.ProductService.UnlinkTag: %w", err)
	}
	return nil
}

// resolvePair looks up the product by title and the tag by ID, so link and
// unlink report which side is missing before touching the association set.
func (s *ProductService) resolvePair(ctx context.Context, title string, tagID int64) (domain.Product, domain.Tag, error) {
	product, err := s.products.GetByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Product{}, domain.Tag{}, domain.ErrProductNotFound
		}
		return domain.Product{}, domain.Tag{}, err
	}
	tag, err := s.tags.GetByID(ctx, tagID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Product{}, domain.Tag{}, domain.ErrTagNotFound
		}
		return domain.Product{}, domain.Tag{}, err
	}
	return product, tag, nil
}
