package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"shopcatalog/internal/domain"
)

// ShopRepo defines the persistence operations for Shops.
type ShopRepo interface {
	// Create inserts a new shop and returns the persisted record.
	// Returns domain.ErrConflict if a shop with the same title exists.
	Create(ctx context.Context, title string) (domain.Shop, error)

	// GetByTitle retrieves a single shop by its unique title.
	// Returns domain.ErrNotFound if no shop with that title exists.
	GetByTitle(ctx context.Context, title string) (domain.Shop, error)

	// List returns all shops ordered by title.
	List(ctx context.Context) ([]domain.Shop, error)

	// Delete removes a shop by title. Returns domain.ErrNotFound if it does
	// not exist and domain.ErrConflict if products still reference it.
	Delete(ctx context.Context, title string) error
}

// pgShopRepo is the Postgres implementation of ShopRepo.
type pgShopRepo struct {
	db db
}

// NewShopRepo constructs a ShopRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewShopRepo(db db) ShopRepo {
	return &pgShopRepo{db: db}
}

// Create inserts a new shop row. There is deliberately no existence
// pre-check: the unique constraint on title decides races between
// concurrent creates, and its violation is reported as ErrConflict.
func (r *pgShopRepo) Create(ctx context.Context, title string) (domain.Shop, error) {
	const q = `
		INSERT INTO shops (title)
		VALUES (@title)
		RETURNING id, title, created_at`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"title": title})
	result, err := scanShop(row)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return domain.Shop{}, fmt.Errorf("repo.ShopRepo.Create: %w", domain.ErrConflict)
		}
		return domain.Shop{}, fmt.Errorf("repo.ShopRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgShopRepo) GetByTitle(ctx context.Context, title string) (domain.Shop, error) {
	const q = `
		SELECT id, title, created_at
		FROM shops
		WHERE title = @title`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"title": title})
	result, err := scanShop(row)
	if err != nil {
		return domain.Shop{}, fmt.Errorf("repo.ShopRepo.GetByTitle: %w", err)
	}
	return result, nil
}

func (r *pgShopRepo) List(ctx context.Context) ([]domain.Shop, error) {
	const q = `
		SELECT id, title, created_at
		FROM shops
		ORDER BY title`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ShopRepo.List: %w", err)
	}
	defer rows.Close()

	shops := []domain.Shop{}
	for rows.Next() {
		s, err := scanShop(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ShopRepo.List: scan: %w", err)
		}
		shops = append(shops, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ShopRepo.List: rows: %w", err)
	}
	return shops, nil
}

// Delete removes a shop by title. The ON DELETE RESTRICT foreign key on
// products blocks deletion of a shop that still has products; that
// violation is reported as ErrConflict.
func (r *pgShopRepo) Delete(ctx context.Context, title string) error {
	const q = `DELETE FROM shops WHERE title = @title`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"title": title})
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return fmt.Errorf("repo.ShopRepo.Delete: shop has products: %w", domain.ErrConflict)
		}
		return fmt.Errorf("repo.ShopRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ShopRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanShop maps a single database row into a domain.Shop.
func scanShop(s scanner) (domain.Shop, error) {
	var shop domain.Shop
	err := s.Scan(&shop.ID, &shop.Title, &shop.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Shop{}, domain.ErrNotFound
		}
		return domain.Shop{}, err
	}
	return shop, nil
}
