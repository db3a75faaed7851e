// Package handler implements the HTTP handlers for the shop catalog API.
// All handlers are methods on Server. Methods are split into entity-specific
// files (auth.go, shop.go, product.go, tag.go) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"shopcatalog/internal/domain"
	"shopcatalog/internal/validation"
)

// AuthServicer defines the authentication operations the handlers depend on.
// Defining the interfaces here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject mocks without touching the database or service layer.
type AuthServicer interface {
	Register(ctx context.Context, username, password string) (domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}

// ShopServicer defines the business operations the shop handlers depend on.
type ShopServicer interface {
	Create(ctx context.Context, title string) (domain.Shop, error)
	GetByTitle(ctx context.Context, title string) (domain.Shop, error)
	List(ctx context.Context) ([]domain.Shop, error)
	Delete(ctx context.Context, title string) error
}

// ProductServicer defines the business operations the product handlers
// depend on, including the tag link management routes.
type ProductServicer interface {
	Create(ctx context.Context, product domain.Product, tagIDs []int64) (domain.Product, error)
	GetByTitle(ctx context.Context, title string) (domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Delete(ctx context.Context, title string) error
	LinkTag(ctx context.Context, title string, tagID int64) error
	UnlinkTag(ctx context.Context, title string, tagID int64) error
}

// TagServicer defines the business operations the tag handlers depend on.
type TagServicer interface {
	Create(ctx context.Context, name string) (domain.Tag, error)
	GetByName(ctx context.Context, name string) (domain.Tag, error)
	List(ctx context.Context) ([]domain.Tag, error)
	Delete(ctx context.Context, name string) error
}

// Server holds the dependencies shared by all handlers.
type Server struct {
	auth     AuthServicer
	shops    ShopServicer
	products ProductServicer
	tags     TagServicer
	validate *validation.Validator
}

// NewServer constructs the Server with all its dependencies.
func NewServer(auth AuthServicer, shops ShopServicer, products ProductServicer, tags TagServicer) *Server {
	return &Server{
		auth:     auth,
		shops:    shops,
		products: products,
		tags:     tags,
		validate: validation.New(),
	}
}

// Routes builds the chi router for the API. gate wraps every route except
// /healthz, /register, and /login; pass middleware.RequireAuth(tokens) in
// production and a pass-through in handler tests.
func (s *Server) Routes(gate func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)
	r.Post("/register", s.handleRegister)
	r.Post("/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(gate)

		r.Get("/shops", s.handleListShops)
		r.Post("/shops", s.handleCreateShop)
		r.Get("/shop/{title}", s.handleGetShop)
		r.Delete("/shop/{title}", s.handleDeleteShop)

		r.Get("/products", s.handleListProducts)
		r.Post("/products", s.handleCreateProduct)
		r.Get("/product/{title}", s.handleGetProduct)
		r.Delete("/product/{title}", s.handleDeleteProduct)
		r.Post("/product/{title}/tags/{tagID}", s.handleLinkTag)
		r.Delete("/product/{title}/tags/{tagID}", s.handleUnlinkTag)

		r.Get("/tags", s.handleListTags)
		r.Post("/tags", s.handleCreateTag)
		r.Get("/tag/{name}", s.handleGetTag)
		r.Delete("/tag/{name}", s.handleDeleteTag)
	})

	return r
}
