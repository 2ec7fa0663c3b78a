package service

import (
	"context"
	"fmt"

	"github.com/stockroom/inventory-api/internal/domain"
	"github.com/stockroom/inventory-api/internal/repository"
)

var (
	ErrItemNotFound      = repository.ErrItemNotFound
	ErrQuantityBelowZero = repository.ErrQuantityBelowZero
)

type ItemRepository interface {
	Create(ctx context.Context, item domain.Item) (domain.Item, error)
	FindAll(ctx context.Context, category string) ([]domain.Item, error)
	FindByID(ctx context.Context, id uint) (domain.Item, error)
	Update(ctx context.Context, id uint, patch domain.ItemPatch) (domain.Item, error)
	AdjustQuantity(ctx context.Context, id uint, delta int) (domain.Item, error)
	Delete(ctx context.Context, id uint) error
}

type ItemService struct {
	repo ItemRepository
}

func NewItemService(repo ItemRepository) *ItemService {
	return &ItemService{
		repo: repo,
	}
}

func (s *ItemService) CreateItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ItemService) ListItems(ctx context.Context, category string) ([]domain.Item, error) {
	items, err := s.repo.FindAll(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return items, nil
}

func (s *ItemService) GetItem(ctx context.Context, id uint) (domain.Item, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return item, nil
}

func (s *ItemService) UpdateItem(ctx context.Context, id uint, patch domain.ItemPatch) (domain.Item, error) {
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ItemService) AdjustQuantity(ctx context.Context, id uint, delta int) (domain.Item, error) {
	adjusted, err := s.repo.AdjustQuantity(ctx, id, delta)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.AdjustQuantity -> %w", err)
	}

	return adjusted, nil
}

func (s *ItemService) DeleteItem(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
