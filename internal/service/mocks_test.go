package service_test

import (
	"context"

	"github.com/google/uuid"

	"shopcatalog/internal/domain"
	"shopcatalog/internal/repo"
	"shopcatalog/internal/service"
)

// Func-field mocks: each test assigns only the functions it expects the
// service to call. Calling an unassigned function panics with a nil
// dereference, which is exactly the failure we want for an unexpected call.

type mockUserRepo struct {
	createFn        func(ctx context.Context, username, passwordHash string) (domain.User, error)
	getByUsernameFn func(ctx context.Context, username string) (domain.User, error)
}

var _ repo.UserRepo = (*mockUserRepo)(nil)

func (m *mockUserRepo) Create(ctx context.Context, username, passwordHash string) (domain.User, error) {
	return m.createFn(ctx, username, passwordHash)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	return m.getByUsernameFn(ctx, username)
}

type mockShopRepo struct {
	createFn     func(ctx context.Context, title string) (domain.Shop, error)
	getByTitleFn func(ctx context.Context, title string) (domain.Shop, error)
	listFn       func(ctx context.Context) ([]domain.Shop, error)
	deleteFn     func(ctx context.Context, title string) error
}

var _ repo.ShopRepo = (*mockShopRepo)(nil)

func (m *mockShopRepo) Create(ctx context.Context, title string) (domain.Shop, error) {
	return m.createFn(ctx, title)
}

func (m *mockShopRepo) GetByTitle(ctx context.Context, title string) (domain.Shop, error) {
	return m.getByTitleFn(ctx, title)
}

func (m *mockShopRepo) List(ctx context.Context) ([]domain.Shop, error) {
	return m.listFn(ctx)
}

func (m *mockShopRepo) Delete(ctx context.Context, title string) error {
	return m.deleteFn(ctx, title)
}

type mockProductRepo struct {
	createFn        func(ctx context.Context, product domain.Product, tagIDs []int64) (domain.Product, error)
	getByTitleFn    func(ctx context.Context, title string) (domain.Product, error)
	listFn          func(ctx context.Context) ([]domain.Product, error)
	listByShopIDsFn func(ctx context.Context, shopIDs []int64) ([]domain.Product, error)
	deleteFn        func(ctx context.Context, title string) error
}

var _ repo.ProductRepo = (*mockProductRepo)(nil)

func (m *mockProductRepo) Create(ctx context.Context, product domain.Product, tagIDs []int64) (domain.Product, error) {
	return m.createFn(ctx, product, tagIDs)
}

func (m *mockProductRepo) GetByTitle(ctx context.Context, title string) (domain.Product, error) {
	return m.getByTitleFn(ctx, title)
}

func (m *mockProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	return m.listFn(ctx)
}

func (m *mockProductRepo) ListByShopIDs(ctx context.Context, shopIDs []int64) ([]domain.Product, error) {
	return m.listByShopIDsFn(ctx, shopIDs)
}

func (m *mockProductRepo) Delete(ctx context.Context, title string) error {
	return m.deleteFn(ctx, title)
}

type mockTagRepo struct {
	createFn         func(ctx context.Context, name string) (domain.Tag, error)
	getByNameFn      func(ctx context.Context, name string) (domain.Tag, error)
	getByIDFn        func(ctx context.Context, id int64) (domain.Tag, error)
	listFn           func(ctx context.Context) ([]domain.Tag, error)
	deleteFn         func(ctx context.Context, name string) error
	linkFn           func(ctx context.Context, productID, tagID int64) error
	unlinkFn         func(ctx context.Context, productID, tagID int64) error
	listByProductFn  func(ctx context.Context, productID int64) ([]domain.Tag, error)
	listByProductsFn func(ctx context.Context, productIDs []int64) (map[int64][]domain.Tag, error)
}

var _ repo.TagRepo = (*mockTagRepo)(nil)

func (m *mockTagRepo) Create(ctx context.Context, name string) (domain.Tag, error) {
	return m.createFn(ctx, name)
}

func (m *mockTagRepo) GetByName(ctx context.Context, name string) (domain.Tag, error) {
	return m.getByNameFn(ctx, name)
}

func (m *mockTagRepo) GetByID(ctx context.Context, id int64) (domain.Tag, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockTagRepo) List(ctx context.Context) ([]domain.Tag, error) {
	return m.listFn(ctx)
}

func (m *mockTagRepo) Delete(ctx context.Context, name string) error {
	return m.deleteFn(ctx, name)
}

func (m *mockTagRepo) Link(ctx context.Context, productID, tagID int64) error {
	return m.linkFn(ctx, productID, tagID)
}

func (m *mockTagRepo) Unlink(ctx context.Context, productID, tagID int64) error {
	return m.unlinkFn(ctx, productID, tagID)
}

func (m *mockTagRepo) ListByProduct(ctx context.Context, productID int64) ([]domain.Tag, error) {
	return m.listByProductFn(ctx, productID)
}

func (m *mockTagRepo) ListByProducts(ctx context.Context, productIDs []int64) (map[int64][]domain.Tag, error) {
	return m.listByProductsFn(ctx, productIDs)
}

type mockTokenIssuer struct {
	issueFn func(userID uuid.UUID) (string, error)
}

var _ service.TokenIssuer = (*mockTokenIssuer)(nil)

func (m *mockTokenIssuer) Issue(userID uuid.UUID) (string, error) {
	return m.issueFn(userID)
}
