package service

import (
	"context"
	"fmt"
	"strings"

	"shopcatalog/internal/domain"
	"shopcatalog/internal/repo"
)

// ShopService implements business logic for Shop operations.
// Read paths assemble the nested view: each shop carries its products,
// and each product carries its tags in insertion order.
type ShopService struct {
	shops    repo.ShopRepo
	products repo.ProductRepo
	tags     repo.TagRepo
}

// NewShopService constructs a ShopService backed by the provided repos.
func NewShopService(shops repo.ShopRepo, products repo.ProductRepo, tags repo.TagRepo) *ShopService {
	return &ShopService{shops: shops, products: products, tags: tags}
}

// Create validates and persists a new shop.
func (s *ShopService) Create(ctx context.Context, title string) (domain.Shop, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Shop{}, fmt.Errorf("service.ShopService.Create: %w: title is required", domain.ErrValidation)
	}

	shop, err := s.shops.Create(ctx, title)
	if err != nil {
		return domain.Shop{}, fmt.Errorf("service.ShopService.Create: %w", err)
	}
	return shop, nil
}

// GetByTitle returns a shop with its products and their tags populated.
func (s *ShopService) GetByTitle(ctx context.Context, title string) (domain.Shop, error) {
	shop, err := s.shops.GetByTitle(ctx, title)
	if err != nil {
		return domain.Shop{}, fmt.Errorf("service.ShopService.GetByTitle: %w", err)
	}

	if err := s.attachProducts(ctx, []*domain.Shop{&shop}); err != nil {
		return domain.Shop{}, fmt.Errorf("service.ShopService.GetByTitle: %w", err)
	}
	return shop, nil
}

// List returns all shops with their products and tags populated.
func (s *ShopService) List(ctx context.Context) ([]domain.Shop, error) {
	shops, err := s.shops.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ShopService.List: %w", err)
	}

	refs := make([]*domain.Shop, len(shops))
	for i := range shops {
		refs[i] = &shops[i]
	}
	if err := s.attachProducts(ctx, refs); err != nil {
		return nil, fmt.Errorf("service.ShopService.List: %w", err)
	}
	return shops, nil
}

// Delete removes a shop by title. A shop that still has products is not
// deleted; the repo reports that as domain.ErrConflict.
func (s *ShopService) Delete(ctx context.Context, title string) error {
	if err := s.shops.Delete(ctx, title); err != nil {
		return fmt.Errorf("service.ShopService.Delete: %w", err)
	}
	return nil
}

// attachProducts loads the products for every given shop in one query and
// their tags in a second, then distributes them. Two round trips total,
// independent of the number of shops.
func (s *ShopService) attachProducts(ctx context.Context, shops []*domain.Shop) error {
	if len(shops) == 0 {
		return nil
	}

	shopIDs := make([]int64, len(shops))
	for i, shop := range shops {
		shopIDs[i] = shop.ID
	}

	products, err := s.products.ListByShopIDs(ctx, shopIDs)
	if err != nil {
		return err
	}

	productIDs := make([]int64, len(products))
	for i, p := range products {
		productIDs[i] = p.ID
	}
	tagsByProduct, err := s.tags.ListByProducts(ctx, productIDs)
	if err != nil {
		return err
	}

	byShop := map[int64][]domain.Product{}
	for _, p := range products {
		p.Tags = tagsByProduct[p.ID]
		if p.Tags == nil {
			p.Tags = []domain.Tag{}
		}
		byShop[p.ShopID] = append(byShop[p.ShopID], p)
	}

	for _, shop := range shops {
		shop.Products = byShop[shop.ID]
		if shop.Products == nil {
			shop.Products = []domain.Product{}
		}
	}
	return nil
}
