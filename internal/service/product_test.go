package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopcatalog/internal/domain"
	"shopcatalog/internal/service"
)

func TestProductService_Create_ReturnsNestedView(t *testing.T) {
	// getByTitleFn stays unassigned: the 201 body must be assembled from
	// the insert result, never a by-title re-read that a concurrent delete
	// could turn into a NotFound.
	products := &mockProductRepo{
		createFn: func(_ context.Context, product domain.Product, tagIDs []int64) (domain.Product, error) {
			require.Equal(t, "Widget", product.Title)
			require.Equal(t, []int64{5}, tagIDs)
			product.ID = 10
			product.Shop = &domain.Shop{ID: 1, Title: "Acme"}
			return product, nil
		},
	}
	tags := &mockTagRepo{
		listByProductFn: func(_ context.Context, productID int64) ([]domain.Tag, error) {
			require.Equal(t, int64(10), productID)
			return []domain.Tag{{ID: 5, Name: "sale"}}, nil
		},
	}
	svc := service.NewProductService(products, tags)

	got, err := svc.Create(context.Background(),
		domain.Product{Title: " Widget ", Cost: 9.99, ShopID: 1}, []int64{5})

	require.NoError(t, err)
	require.NotNil(t, got.Shop)
	assert.Equal(t, "Acme", got.Shop.Title)
	require.Len(t, got.Tags, 1)
	assert.Equal(t, "sale", got.Tags[0].Name)
}

func TestProductService_Create_EmptyTitle(t *testing.T) {
	svc := service.NewProductService(&mockProductRepo{}, &mockTagRepo{})

	_, err := svc.Create(context.Background(), domain.Product{Title: "  ", Cost: 1, ShopID: 1}, nil)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProductService_Create_NegativeCost(t *testing.T) {
	svc := service.NewProductService(&mockProductRepo{}, &mockTagRepo{})

	_, err := svc.Create(context.Background(), domain.Product{Title: "Widget", Cost: -1, ShopID: 1}, nil)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProductService_Create_UnknownShop(t *testing.T) {
	products := &mockProductRepo{
		createFn: func(context.Context, domain.Product, []int64) (domain.Product, error) {
			return domain.Product{}, domain.ErrNotFound
		},
	}
	svc := service.NewProductService(products, &mockTagRepo{})

	_, err := svc.Create(context.Background(), domain.Product{Title: "Widget", Cost: 1, ShopID: 99}, nil)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductService_GetByTitle_PopulatesTags(t *testing.T) {
	products := &mockProductRepo{
		getByTitleFn: func(context.Context, string) (domain.Product, error) {
			return domain.Product{ID: 10, Title: "Widget"}, nil
		},
	}
	tags := &mockTagRepo{
		listByProductFn: func(context.Context, int64) ([]domain.Tag, error) {
			return []domain.Tag{{ID: 5, Name: "sale"}, {ID: 6, Name: "new"}}, nil
		},
	}
	svc := service.NewProductService(products, tags)

	got, err := svc.GetByTitle(context.Background(), "Widget")

	require.NoError(t, err)
	require.Len(t, got.Tags, 2)
	assert.Equal(t, "sale", got.Tags[0].Name)
}

func TestProductService_List_PopulatesTags(t *testing.T) {
	products := &mockProductRepo{
		listFn: func(context.Context) ([]domain.Product, error) {
			return []domain.Product{{ID: 10, Title: "Anvil"}, {ID: 11, Title: "Widget"}}, nil
		},
	}
	tags := &mockTagRepo{
		listByProductsFn: func(_ context.Context, productIDs []int64) (map[int64][]domain.Tag, error) {
			require.Equal(t, []int64{10, 11}, productIDs)
			return map[int64][]domain.Tag{11: {{ID: 5, Name: "sale"}}}, nil
		},
	}
	svc := service.NewProductService(products, tags)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.NotNil(t, got[0].Tags, "untagged product gets an empty slice, not nil")
	assert.Empty(t, got[0].Tags)
	require.Len(t, got[1].Tags, 1)
}

func TestProductService_LinkTag(t *testing.T) {
	linked := false
	products := &mockProductRepo{
		getByTitleFn: func(context.Context, string) (domain.Product, error) {
			return domain.Product{ID: 10, Title: "Widget"}, nil
		},
	}
	tags := &mockTagRepo{
		getByIDFn: func(_ context.Context, id int64) (domain.Tag, error) {
			require.Equal(t, int64(5), id)
			return domain.Tag{ID: 5, Name: "sale"}, nil
		},
		linkFn: func(_ context.Context, productID, tagID int64) error {
			require.Equal(t, int64(10), productID)
			require.Equal(t, int64(5), tagID)
			linked = true
			return nil
		},
	}
	svc := service.NewProductService(products, tags)

	require.NoError(t, svc.LinkTag(context.Background(), "Widget", 5))
	assert.True(t, linked)
}

func TestProductService_LinkTag_UnknownProduct(t *testing.T) {
	products := &mockProductRepo{
		getByTitleFn: func(context.Context, string) (domain.Product, error) {
			return domain.Product{}, domain.ErrNotFound
		},
	}
	svc := service.NewProductService(products, &mockTagRepo{})

	err := svc.LinkTag(context.Background(), "Nothing", 5)

	require.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductService_LinkTag_UnknownTag(t *testing.T) {
	products := &mockProductRepo{
		getByTitleFn: func(context.Context, string) (domain.Product, error) {
			return domain.Product{ID: 10}, nil
		},
	}
	tags := &mockTagRepo{
		getByIDFn: func(context.Context, int64) (domain.Tag, error) {
			return domain.Tag{}, domain.ErrNotFound
		},
	}
	svc := service.NewProductService(products, tags)

	err := svc.LinkTag(context.Background(), "Widget", 99)

	require.ErrorIs(t, err, domain.ErrTagNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductService_UnlinkTag(t *testing.T) {
	products := &mockProductRepo{
		getByTitleFn: func(context.Context, string) (domain.Product, error) {
			return domain.Product{ID: 10}, nil
		},
	}
	tags := &mockTagRepo{
		getByIDFn: func(context.Context, int64) (domain.Tag, error) {
			return domain.Tag{ID: 5}, nil
		},
		unlinkFn: func(_ context.Context, productID, tagID int64) error {
			require.Equal(t, int64(10), productID)
			require.Equal(t, int64(5), tagID)
			return nil
		},
	}
	svc := service.NewProductService(products, tags)

	assert.NoError(t, svc.UnlinkTag(context.Background(), "Widget", 5))
}

func TestProductService_UnlinkTag_UnknownTag(t *testing.T) {
	products := &mockProductRepo{
		getByTitleFn: func(context.Context, string) (domain.Product, error) {
			return domain.Product{ID: 10}, nil
		},
	}
	tags := &mockTagRepo{
		getByIDFn: func(context.Context, int64) (domain.Tag, error) {
			return domain.Tag{}, domain.ErrNotFound
		},
	}
	svc := service.NewProductService(products, tags)

	err := svc.UnlinkTag(context.Background(), "Widget", 99)

	require.ErrorIs(t, err, domain.ErrTagNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
