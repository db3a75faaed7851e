package service

import (
	"context"
	"fmt"
	"strings"

	"shopcatalog/internal/domain"
	"shopcatalog/internal/repo"
)

// TagService implements business logic for Tag CRUD. The association set
// itself is managed through ProductService, which owns the link routes.
type TagService struct {
	tags repo.TagRepo
}

// NewTagService constructs a TagService backed by the provided TagRepo.
func NewTagService(tags repo.TagRepo) *TagService {
	return &TagService{tags: tags}
}

// Create validates and persists a new tag.
func (s *TagService) Create(ctx context.Context, name string) (domain.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Tag{}, fmt.Errorf("service.TagService.Create: %w: name is required", domain.ErrValidation)
	}

	tag, err := s.tags.Create(ctx, name)
	if err != nil {
		return domain.Tag{}, fmt.Errorf("service.TagService.Create: %w", err)
	}
	return tag, nil
}

// GetByName returns a single tag by its unique name.
func (s *TagService) GetByName(ctx context.Context, name string) (domain.Tag, error) {
	tag, err := s.tags.GetByName(ctx, name)
	if err != nil {
		return domain.Tag{}, fmt.Errorf("service.TagService.GetByName: %w", err)
	}
	return tag, nil
}

// List returns all tags.
func (s *TagService) List(ctx context.Context) ([]domain.Tag, error) {
	tags, err := s.tags.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TagService.List: %w", err)
	}
	return tags, nil
}

// Delete removes a tag by name; links to products cascade away.
func (s *TagService) Delete(ctx context.Context, name string) error {
	if err := s.tags.Delete(ctx, name); err != nil {
		return fmt.Errorf("service.TagService.Delete: %w", err)
	}
	return nil
}
