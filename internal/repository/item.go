package repository

import (
	"context"
	"fmt"

	"github.com/stockroom/inventory-api/internal/domain"
	"github.com/stockroom/inventory-api/internal/repository/dao"
)

var (
	ErrItemNotFound       = dao.ErrItemNotFound
	ErrQuantityBelowZero  = dao.ErrQuantityBelowZero
	ErrConstraintViolated = dao.ErrConstraintViolated
)

type ItemDAO interface {
	Insert(ctx context.Context, item dao.Item) (dao.Item, error)
	FindAll(ctx context.Context, category string) ([]dao.Item, error)
	FindByID(ctx context.Context, id uint) (dao.Item, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (dao.Item, error)
	AdjustQuantity(ctx context.Context, id uint, delta int) (dao.Item, error)
	Delete(ctx context.Context, id uint) error
}

type ItemRepository struct {
	dao ItemDAO
}

func NewItemRepository(dao ItemDAO) *ItemRepository {
	return &ItemRepository{
		dao: dao,
	}
}

func (r *ItemRepository) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	created, err := r.dao.Insert(ctx, dao.Item{
		Name:     item.Name,
		Quantity: item.Quantity,
		Price:    item.Price,
		Category: item.Category,
	})
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ItemRepository) FindAll(ctx context.Context, category string) ([]domain.Item, error) {
	found, err := r.dao.FindAll(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	items := make([]domain.Item, 0, len(found))
	for _, item := range found {
		items = append(items, r.daoToDomain(item))
	}

	return items, nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id uint) (domain.Item, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ItemRepository) Update(ctx context.Context, id uint, patch domain.ItemPatch) (domain.Item, error) {
	fields := map[string]interface{}{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Quantity != nil {
		fields["quantity"] = *patch.Quantity
	}
	if patch.Price != nil {
		fields["price"] = *patch.Price
	}
	if patch.Category != nil {
		fields["category"] = *patch.Category
	}

	updated, err := r.dao.Update(ctx, id, fields)
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ItemRepository) AdjustQuantity(ctx context.Context, id uint, delta int) (domain.Item, error) {
	adjusted, err := r.dao.AdjustQuantity(ctx, id, delta)
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.AdjustQuantity -> %w", err)
	}

	return r.daoToDomain(adjusted), nil
}

func (r *ItemRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ItemRepository) daoToDomain(i dao.Item) domain.Item {
	return domain.Item{
		ID:       i.ID,
		Name:     i.Name,
		Quantity: i.Quantity,
		Price:    i.Price,
		Category: i.Category,
	}
}
