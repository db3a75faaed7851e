package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"shopcatalog/internal/domain"
)

// TagRepo defines the persistence operations for Tags and the product_tags
// association set.
type TagRepo interface {
	// Create inserts a tag. Returns domain.ErrConflict if the name is taken.
	Create(ctx context.Context, name string) (domain.Tag, error)

	// GetByName retrieves a tag by its unique name.
	// Returns domain.ErrNotFound if absent.
	GetByName(ctx context.Context, name string) (domain.Tag, error)

	// GetByID retrieves a tag by primary key.
	// Returns domain.ErrNotFound if absent.
	GetByID(ctx context.Context, id int64) (domain.Tag, error)

	// List returns all tags ordered by name.
	List(ctx context.Context) ([]domain.Tag, error)

	// Delete removes a tag by name; association rows cascade.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, name string) error

	// Link adds (productID, tagID) to the association set. Idempotent —
	// linking an already-linked pair is a no-op, including under
	// concurrent callers: the composite primary key decides the race.
	// Returns domain.ErrProductNotFound or domain.ErrTagNotFound when the
	// corresponding side no longer exists.
	Link(ctx context.Context, productID, tagID int64) error

	// Unlink removes (productID, tagID) from the association set.
	// Unlinking an absent pair is a no-op.
	Unlink(ctx context.Context, productID, tagID int64) error

	// ListByProduct returns the tags linked to a product in insertion order.
	ListByProduct(ctx context.Context, productID int64) ([]domain.Tag, error)

	// ListByProducts returns the tags for each of the given products in
	// insertion order, keyed by product ID. Products with no tags are
	// absent from the map.
	ListByProducts(ctx context.Context, productIDs []int64) (map[int64][]domain.Tag, error)
}

// pgTagRepo is the Postgres implementation of TagRepo.
type pgTagRepo struct {
	db db
}

// NewTagRepo constructs a TagRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTagRepo(db db) TagRepo {
	return &pgTagRepo{db: db}
}

func (r *pgTagRepo) Create(ctx context.Context, name string) (domain.Tag, error) {
	const q = `
		INSERT INTO tags (name)
		VALUES (@name)
		RETURNING id, name, created_at`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"name": name})
	result, err := scanTag(row)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return domain.Tag{}, fmt.Errorf("repo.TagRepo.Create: %w", domain.ErrConflict)
		}
		return domain.Tag{}, fmt.Errorf("repo.TagRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgTagRepo) GetByName(ctx context.Context, name string) (domain.Tag, error) {
	const q = `
		SELECT id, name, created_at
		FROM tags
		WHERE name = @name`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"name": name})
	result, err := scanTag(row)
	if err != nil {
		return domain.Tag{}, fmt.Errorf("repo.TagRepo.GetByName: %w", err)
	}
	return result, nil
}

func (r *pgTagRepo) GetByID(ctx context.Context, id int64) (domain.Tag, error) {
	const q = `
		SELECT id, name, created_at
		FROM tags
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTag(row)
	if err != nil {
		return domain.Tag{}, fmt.Errorf("repo.TagRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgTagRepo) List(ctx context.Context) ([]domain.Tag, error) {
	const q = `
		SELECT id, name, created_at
		FROM tags
		ORDER BY name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TagRepo.List: %w", err)
	}
	defer rows.Close()

	tags := []domain.Tag{}
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TagRepo.List: scan: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TagRepo.List: rows: %w", err)
	}
	return tags, nil
}

func (r *pgTagRepo) Delete(ctx context.Context, name string) error {
	const q = `DELETE FROM tags WHERE name = @name`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"name": name})
	if err != nil {
		return fmt.Errorf("repo.TagRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TagRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// Link inserts the association pair. ON CONFLICT DO NOTHING makes repeats
// and concurrent duplicates no-ops; a foreign key violation means the
// product or tag vanished between the caller's lookup and this insert, and
// the constraint name says which side.
func (r *pgTagRepo) Link(ctx context.Context, productID, tagID int64) error {
	const q = `
		INSERT INTO product_tags (product_id, tag_id)
		VALUES (@product_id, @tag_id)
		ON CONFLICT (product_id, tag_id) DO NOTHING`

	_, err := r.db.Exec(ctx, q, pgx.NamedArgs{"product_id": productID, "tag_id": tagID})
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			if pgConstraint(err) == "product_tags_tag_id_fkey" {
				return fmt.Errorf("repo.TagRepo.Link: %w", domain.ErrTagNotFound)
			}
			return fmt.Errorf("repo.TagRepo.Link: %w", domain.ErrProductNotFound)
		}
		return fmt.Errorf("repo.TagRepo.Link: %w", err)
	}
	return nil
}

// Unlink deletes the association pair. Zero rows affected is success —
// unlinking an absent pair must leave the same end state as unlinking a
// present one twice.
func (r *pgTagRepo) Unlink(ctx context.Context, productID, tagID int64) error {
	const q = `
		DELETE FROM product_tags
		WHERE product_id = @product_id AND tag_id = @tag_id`

	_, err := r.db.Exec(ctx, q, pgx.NamedArgs{"product_id": productID, "tag_id": tagID})
	if err != nil {
		return fmt.Errorf("repo.TagRepo.Unlink: %w", err)
	}
	return nil
}

// ListByProduct returns the product's tags ordered by when they were linked.
// Tag ID breaks ties between links created in the same transaction.
func (r *pgTagRepo) ListByProduct(ctx context.Context, productID int64) ([]domain.Tag, error) {
	const q = `
		SELECT t.id, t.name, t.created_at
		FROM tags t
		JOIN product_tags pt ON pt.tag_id = t.id
		WHERE pt.product_id = @product_id
		ORDER BY pt.linked_at, t.id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"product_id": productID})
	if err != nil {
		return nil, fmt.Errorf("repo.TagRepo.ListByProduct: %w", err)
	}
	defer rows.Close()

	tags := []domain.Tag{}
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TagRepo.ListByProduct: scan: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TagRepo.ListByProduct: rows: %w", err)
	}
	return tags, nil
}

func (r *pgTagRepo) ListByProducts(ctx context.Context, productIDs []int64) (map[int64][]domain.Tag, error) {
	if len(productIDs) == 0 {
		return map[int64][]domain.Tag{}, nil
	}

	const q = `
		SELECT pt.product_id, t.id, t.name, t.created_at
		FROM tags t
		JOIN product_tags pt ON pt.tag_id = t.id
		WHERE pt.product_id = ANY(@product_ids)
		ORDER BY pt.linked_at, t.id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"product_ids": productIDs})
	if err != nil {
		return nil, fmt.Errorf("repo.TagRepo.ListByProducts: %w", err)
	}
	defer rows.Close()

	byProduct := map[int64][]domain.Tag{}
	for rows.Next() {
		var (
			productID int64
			t         domain.Tag
		)
		if err := rows.Scan(&productID, &t.ID, &t.Name, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("repo.TagRepo.ListByProducts: scan: %w", err)
		}
		byProduct[productID] = append(byProduct[productID], t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TagRepo.ListByProducts: rows: %w", err)
	}
	return byProduct, nil
}

// scanTag maps a single database row into a domain.Tag.
func scanTag(s scanner) (domain.Tag, error) {
	var t domain.Tag
	err := s.Scan(&t.ID, &t.Name, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Tag{}, domain.ErrNotFound
		}
		return domain.Tag{}, err
	}
	return t, nil
}
