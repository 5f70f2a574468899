package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kugicode/catalog-service/internal/models"
	"github.com/kugicode/catalog-service/internal/repository"
	"github.com/kugicode/catalog-service/internal/session"
)

// CatalogService handles item CRUD and enforces ownership on the scoped
// operations. Reads are public; mutations that touch owned state require a
// session, passed in explicitly.
type CatalogService interface {
	ListAll(ctx context.Context) ([]models.Item, error)
	Create(ctx context.Context, sess *session.Session, name string, price float64) (*models.Item, error)
	GetByID(ctx context.Context, id string) (*models.Item, error)
	UpdateByID(ctx context.Context, id string, update models.ItemUpdate) (bool, error)
	ListMine(ctx context.Context, sess *session.Session) ([]models.Item, error)
	DeleteMine(ctx context.Context, sess *session.Session, id string) error
}

type catalogService struct {
	items repository.ItemRepository
}

// NewCatalogService creates a CatalogService instance.
func NewCatalogService(items repository.ItemRepository) CatalogService {
	return &catalogService{items: items}
}

// ListAll returns every item in the catalog. An empty catalog is an empty
// slice, not an error.
func (s *catalogService) ListAll(ctx context.Context) ([]models.Item, error) {
	items, err := s.items.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Create inserts a new item owned by the session's user. The owner is set
// once here and no operation ever reassigns it.
func (s *catalogService) Create(ctx context.Context, sess *session.Session, name string, price float64) (*models.Item, error) {
	if sess == nil {
		return nil, ErrAuthRequired
	}
	if name == "" || price <= 0 {
		return nil, ErrInvalidItem
	}

	item := &models.Item{Name: name, Price: price, Owner: sess.Username}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return item, nil
}

func (s *catalogService) GetByID(ctx context.Context, id string) (*models.Item, error) {
	item, err := s.items.FindByID(ctx, id)
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		return nil, ErrInvalidItemID
	case errors.Is(err, repository.ErrNotFound):
		return nil, ErrItemNotFound
	case err != nil:
		return nil, fmt.Errorf("get item %s: %w", id, err)
	}
	return item, nil
}

// UpdateByID merges the provided fields into the item. Any caller holding the
// id may update it; ownership is deliberately not checked here, matching the
// delete-by-owner asymmetry of the public surface. The returned bool reports
// whether the document actually changed.
func (s *catalogService) UpdateByID(ctx context.Context, id string, update models.ItemUpdate) (bool, error) {
	if update.IsEmpty() {
		return false, ErrEmptyUpdate
	}
	if update.Name != nil && *update.Name == "" {
		return false, ErrInvalidName
	}
	if update.Price != nil && *update.Price <= 0 {
		return false, ErrInvalidPrice
	}

	outcome, err := s.items.UpdateByID(ctx, id, update)
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		return false, ErrInvalidItemID
	case errors.Is(err, repository.ErrNotFound):
		return false, ErrItemNotFound
	case err != nil:
		return false, fmt.Errorf("update item %s: %w", id, err)
	}
	return outcome.Modified, nil
}

// ListMine returns the caller's items. Owning nothing yields an empty slice,
// consistent with ListAll.
func (s *catalogService) ListMine(ctx context.Context, sess *session.Session) ([]models.Item, error) {
	if sess == nil {
		return nil, ErrAuthRequired
	}

	items, err := s.items.FindByOwner(ctx, sess.Username)
	if err != nil {
		return nil, fmt.Errorf("list items for %q: %w", sess.Username, err)
	}
	return items, nil
}

// DeleteMine removes an item only when both id and owner match the caller,
// so another owner's item is indistinguishable from a missing one.
func (s *catalogService) DeleteMine(ctx context.Context, sess *session.Session, id string) error {
	if sess == nil {
		return ErrAuthRequired
	}

	err := s.items.DeleteOwned(ctx, id, sess.Username)
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		return ErrInvalidItemID
	case errors.Is(err, repository.ErrNotFound):
		return ErrItemNotFound
	case err != nil:
		return fmt.Errorf("delete item %s: %w", id, err)
	}
	return nil
}
