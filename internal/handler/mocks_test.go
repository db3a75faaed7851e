package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"shopcatalog/internal/domain"
	"shopcatalog/internal/handler"
)

// Func-field mocks for the servicer interfaces. Tests assign only the
// functions they expect to be called; an unexpected call panics.

type mockAuthService struct {
	registerFn func(ctx context.Context, username, password string) (domain.User, error)
	loginFn    func(ctx context.Context, username, password string) (string, error)
}

var _ handler.AuthServicer = (*mockAuthService)(nil)

func (m *mockAuthService) Register(ctx context.Context, username, password string) (domain.User, error) {
	return m.registerFn(ctx, username, password)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (string, error) {
	return m.loginFn(ctx, username, password)
}

type mockShopService struct {
	createFn     func(ctx context.Context, title string) (domain.Shop, error)
	getByTitleFn func(ctx context.Context, title string) (domain.Shop, error)
	listFn       func(ctx context.Context) ([]domain.Shop, error)
	deleteFn     func(ctx context.Context, title string) error
}

var _ handler.ShopServicer = (*mockShopService)(nil)

func (m *mockShopService) Create(ctx context.Context, title string) (domain.Shop, error) {
	return m.createFn(ctx, title)
}

func (m *mockShopService) GetByTitle(ctx context.Context, title string) (domain.Shop, error) {
	return m.getByTitleFn(ctx, title)
}

func (m *mockShopService) List(ctx context.Context) ([]domain.Shop, error) {
	return m.listFn(ctx)
}

func (m *mockShopService) Delete(ctx context.Context, title string) error {
	return m.deleteFn(ctx, title)
}

type mockProductService struct {
	createFn     func(ctx context.Context, product domain.Product, tagIDs []int64) (domain.Product, error)
	getByTitleFn func(ctx context.Context, title string) (domain.Product, error)
	listFn       func(ctx context.Context) ([]domain.Product, error)
	deleteFn     func(ctx context.Context, title string) error
	linkTagFn    func(ctx context.Context, title string, tagID int64) error
	unlinkTagFn  func(ctx context.Context, title string, tagID int64) error
}

var _ handler.ProductServicer = (*mockProductService)(nil)

func (m *mockProductService) Create(ctx context.Context, product domain.Product, tagIDs []int64) (domain.Product, error) {
	return m.createFn(ctx, product, tagIDs)
}

func (m *mockProductService) GetByTitle(ctx context.Context, title string) (domain.Product, error) {
	return m.getByTitleFn(ctx, title)
}

func (m *mockProductService) List(ctx context.Context) ([]domain.Product, error) {
	return m.listFn(ctx)
}

func (m *mockProductService) Delete(ctx context.Context, title string) error {
	return m.deleteFn(ctx, title)
}

func (m *mockProductService) LinkTag(ctx context.Context, title string, tagID int64) error {
	return m.linkTagFn(ctx, title, tagID)
}

func (m *mockProductService) UnlinkTag(ctx context.Context, title string, tagID int64) error {
	return m.unlinkTagFn(ctx, title, tagID)
}

type mockTagService struct {
	createFn    func(ctx context.Context, name string) (domain.Tag, error)
	getByNameFn func(ctx context.Context, name string) (domain.Tag, error)
	listFn      func(ctx context.Context) ([]domain.Tag, error)
	deleteFn    func(ctx context.Context, name string) error
}

var _ handler.TagServicer = (*mockTagService)(nil)

func (m *mockTagService) Create(ctx context.Context, name string) (domain.Tag, error) {
	return m.createFn(ctx, name)
}

func (m *mockTagService) GetByName(ctx context.Context, name string) (domain.Tag, error) {
	return m.getByNameFn(ctx, name)
}

func (m *mockTagService) List(ctx context.Context) ([]domain.Tag, error) {
	return m.listFn(ctx)
}

func (m *mockTagService) Delete(ctx context.Context, name string) error {
	return m.deleteFn(ctx, name)
}

// deps bundles the mocks so tests only fill in what they use.
type deps struct {
	auth     *mockAuthService
	shops    *mockShopService
	products *mockProductService
	tags     *mockTagService
}

// passGate is the no-op replacement for the auth middleware. Route gating
// itself is covered by the tests building the tree with the real gate.
func passGate(next http.Handler) http.Handler { return next }

// newRouter builds the full route tree over the given mocks, wrapped in
// the given gate.
func newRouter(d deps, gate func(http.Handler) http.Handler) http.Handler {
	if d.auth == nil {
		d.auth = &mockAuthService{}
	}
	if d.shops == nil {
		d.shops = &mockShopService{}
	}
	if d.products == nil {
		d.products = &mockProductService{}
	}
	if d.tags == nil {
		d.tags = &mockTagService{}
	}
	return handler.NewServer(d.auth, d.shops, d.products, d.tags).Routes(gate)
}

// newTestRouter builds the route tree with gating disabled, for tests that
// exercise handler behavior rather than access control.
func newTestRouter(d deps) http.Handler {
	return newRouter(d, passGate)
}

// doRequest performs an in-memory request against the router and returns
// the recorded response.
func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals the recorded JSON body into a map for assertions.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
