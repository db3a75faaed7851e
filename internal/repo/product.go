package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"shopcatalog/internal/domain"
)

// ProductRepo defines the persistence operations for Products.
// Reads join the owning shop so handlers can render the nested view
// without a second round trip.
type ProductRepo interface {
	// Create inserts a new product and links it to the given tags in a
	// single transaction. Tag IDs that do not resolve are skipped. The
	// returned product carries its owning shop, read inside the same
	// transaction. Returns domain.ErrConflict if the title is taken and
	// domain.ErrNotFound if shop_id does not reference an existing shop.
	Create(ctx context.Context, product domain.Product, tagIDs []int64) (domain.Product, error)

	// GetByTitle retrieves a single product by its unique title, with the
	// owning shop populated. Returns domain.ErrNotFound if absent.
	GetByTitle(ctx context.Context, title string) (domain.Product, error)

	// List returns all products ordered by title, each with its owning
	// shop populated.
	List(ctx context.Context) ([]domain.Product, error)

	// ListByShopIDs returns all products belonging to any of the given
	// shops, ordered by title. Shops are not populated — callers already
	// hold them.
	ListByShopIDs(ctx context.Context, shopIDs []int64) ([]domain.Product, error)

	// Delete removes a product by title; association rows cascade.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, title string) error
}

// pgProductRepo is the Postgres implementation of ProductRepo.
type pgProductRepo struct {
	db db
}

// NewProductRepo constructs a ProductRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewProductRepo(db db) ProductRepo {
	return &pgProductRepo{db: db}
}

// Create inserts the product row and its tag links atomically: either the
// product and all its resolvable links commit together or nothing does.
// On a pgx.Tx the inner Begin opens a savepoint, so tests composing repos
// inside one rolled-back transaction keep working.
func (r *pgProductRepo) Create(ctx context.Context, product domain.Product, tagIDs []int64) (domain.Product, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.Product{}, fmt.Errorf("repo.ProductRepo.Create: begin: %w", err)
	}
	defer tx.Rollback(ctx)

	const insertProduct = `
		INSERT INTO products (title, cost, shop_id)
		VALUES (@title, @cost, @shop_id)
		RETURNING id, title, cost, shop_id, created_at`

	args := pgx.NamedArgs{
		"title":   product.Title,
		"cost":    product.Cost,
		"shop_id": product.ShopID,
	}

	created, err := scanProduct(tx.QueryRow(ctx, insertProduct, args))
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return domain.Product{}, fmt.Errorf("repo.ProductRepo.Create: %w", domain.ErrConflict)
		}
		if isPgError(err, pgForeignKeyViolation) {
			return domain.Product{}, fmt.Errorf("repo.ProductRepo.Create: shop: %w", domain.ErrNotFound)
		}
		return domain.Product{}, fmt.Errorf("repo.ProductRepo.Create: %w", err)
	}

	// The FK guarantees the shop row exists within this transaction.
	const selectShop = `SELECT id, title, created_at FROM shops WHERE id = @shop_id`
	shop, err := scanShop(tx.QueryRow(ctx, selectShop, pgx.NamedArgs{"shop_id": created.ShopID}))
	if err != nil {
		return domain.Product{}, fmt.Errorf("repo.ProductRepo.Create: shop: %w", err)
	}
	created.Shop = &shop

	if len(tagIDs) > 0 {
		// SELECT ... FROM tags resolves only existing IDs, silently
		// skipping unknown ones; ON CONFLICT covers duplicate input IDs.
		const linkTags = `
			INSERT INTO product_tags (product_id, tag_id)
			SELECT @product_id, id FROM tags WHERE id = ANY(@tag_ids)
			ON CONFLICT (product_id, tag_id) DO NOTHING`

		_, err = tx.Exec(ctx, linkTags, pgx.NamedArgs{"product_id": created.ID, "tag_ids": tagIDs})
		if err != nil {
			return domain.Product{}, fmt.Errorf("repo.ProductRepo.Create: link tags: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Product{}, fmt.Errorf("repo.ProductRepo.Create: commit: %w", err)
	}
	return created, nil
}

func (r *pgProductRepo) GetByTitle(ctx context.Context, title string) (domain.Product, error) {
	const q = `
		SELECT p.id, p.title, p.cost, p.shop_id, p.created_at,
		       s.id, s.title, s.created_at
		FROM products p
		JOIN shops s ON s.id = p.shop_id
		WHERE p.title = @title`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"title": title})
	result, err := scanProductWithShop(row)
	if err != nil {
		return domain.Product{}, fmt.Errorf("repo.ProductRepo.GetByTitle: %w", err)
	}
	return result, nil
}

func (r *pgProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
		SELECT p.id, p.title, p.cost, p.shop_id, p.created_at,
		       s.id, s.title, s.created_at
		FROM products p
		JOIN shops s ON s.id = p.shop_id
		ORDER BY p.title`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ProductRepo.List: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		p, err := scanProductWithShop(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ProductRepo.List: scan: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ProductRepo.List: rows: %w", err)
	}
	return products, nil
}

func (r *pgProductRepo) ListByShopIDs(ctx context.Context, shopIDs []int64) ([]domain.Product, error) {
	if len(shopIDs) == 0 {
		return []domain.Product{}, nil
	}

	const q = `
		SELECT id, title, cost, shop_id, created_at
		FROM products
		WHERE shop_id = ANY(@shop_ids)
		ORDER BY title`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"shop_ids": shopIDs})
	if err != nil {
		return nil, fmt.Errorf("repo.ProductRepo.ListByShopIDs: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ProductRepo.ListByShopIDs: scan: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ProductRepo.ListByShopIDs: rows: %w", err)
	}
	return products, nil
}

func (r *pgProductRepo) Delete(ctx context.Context, title string) error {
	const q = `DELETE FROM products WHERE title = @title`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"title": title})
	if err != nil {
		return fmt.Errorf("repo.ProductRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ProductRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanProduct maps a product row without the shop join.
func scanProduct(s scanner) (domain.Product, error) {
	var p domain.Product
	err := s.Scan(&p.ID, &p.Title, &p.Cost, &p.ShopID, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, domain.ErrNotFound
		}
		return domain.Product{}, err
	}
	return p, nil
}

// scanProductWithShop maps a product row joined with its owning shop.
func scanProductWithShop(s scanner) (domain.Product, error) {
	var (
		p    domain.Product
		shop domain.Shop
	)
	err := s.Scan(&p.ID, &p.Title, &p.Cost, &p.ShopID, &p.CreatedAt,
		&shop.ID, &shop.Title, &shop.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, domain.ErrNotFound
		}
		return domain.Product{}, err
	}
	p.Shop = &shop
	return p, nil
}
