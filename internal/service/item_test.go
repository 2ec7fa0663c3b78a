package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/stockroom/inventory-api/internal/domain"
	"github.com/stockroom/inventory-api/internal/repository"
	"github.com/stockroom/inventory-api/internal/service"
)

// MockItemRepository is a mock implementation of service.ItemRepository.
// Contexts are not part of the expectations.
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(_ context.Context, item domain.Item) (domain.Item, error) {
	args := m.Called(item)
	return args.Get(0).(domain.Item), args.Error(1)
}

func (m *MockItemRepository) FindAll(_ context.Context, category string) ([]domain.Item, error) {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemRepository) FindByID(_ context.Context, id uint) (domain.Item, error) {
	args := m.Called(id)
	return args.Get(0).(domain.Item), args.Error(1)
}

func (m *MockItemRepository) Update(_ context.Context, id uint, patch domain.ItemPatch) (domain.Item, error) {
	args := m.Called(id, patch)
	return args.Get(0).(domain.Item), args.Error(1)
}

func (m *MockItemRepository) AdjustQuantity(_ context.Context, id uint, delta int) (domain.Item, error) {
	args := m.Called(id, delta)
	return args.Get(0).(domain.Item), args.Error(1)
}

func (m *MockItemRepository) Delete(_ context.Context, id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestItemService_CreateItem(t *testing.T) {
	mockRepo := new(MockItemRepository)
	svc := service.NewItemService(mockRepo)

	item := domain.Item{Name: "Laptop", Quantity: 10, Price: 1200, Category: "Tech"}
	created := item
	created.ID = 1

	mockRepo.On("Create", item).Return(created, nil).Once()

	got, err := svc.CreateItem(context.Background(), item)

	assert.NoError(t, err)
	assert.Equal(t, created, got)
	mockRepo.AssertExpectations(t)
}

func TestItemService_CreateItem_RepositoryFailure(t *testing.T) {
	mockRepo := new(MockItemRepository)
	svc := service.NewItemService(mockRepo)

	item := domain.Item{Name: "Laptop", Quantity: 10, Price: 1200, Category: "Tech"}
	mockRepo.On("Create", item).Return(domain.Item{}, errors.New("connection refused")).Once()

	_, err := svc.CreateItem(context.Background(), item)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	mockRepo.AssertExpectations(t)
}

func TestItemService_ListItems(t *testing.T) {
	mockRepo := new(MockItemRepository)
	svc := service.NewItemService(mockRepo)

	expected := []domain.Item{
		{ID: 1, Name: "Laptop", Quantity: 10, Price: 1200, Category: "Tech"},
		{ID: 2, Name: "Desk", Quantity: 3, Price: 80, Category: "Furniture"},
	}
	mockRepo.On("FindAll", "").Return(expected, nil).Once()

	items, err := svc.ListItems(context.Background(), "")

	assert.NoError(t, err)
	assert.Equal(t, expected, items)
	mockRepo.AssertExpectations(t)
}

func TestItemService_GetItem_NotFound(t *testing.T) {
	mockRepo := new(MockItemRepository)
	svc := service.NewItemService(mockRepo)

	mockRepo.On("FindByID", uint(99)).Return(domain.Item{}, repository.ErrItemNotFound).Once()

	_, err := svc.GetItem(context.Background(), 99)

	assert.ErrorIs(t, err, service.ErrItemNotFound)
	mockRepo.AssertExpectations(t)
}

func TestItemService_AdjustQuantity_BelowZero(t *testing.T) {
	mockRepo := new(MockItemRepository)
	svc := service.NewItemService(mockRepo)

	mockRepo.On("AdjustQuantity", uint(1), -10).Return(domain.Item{}, repository.ErrQuantityBelowZero).Once()

	_, err := svc.AdjustQuantity(context.Background(), 1, -10)

	assert.ErrorIs(t, err, service.ErrQuantityBelowZero)
	mockRepo.AssertExpectations(t)
}

func TestItemService_DeleteItem(t *testing.T) {
	mockRepo := new(MockItemRepository)
	svc := service.NewItemService(mockRepo)

	mockRepo.On("Delete", uint(1)).Return(nil).Once()
	assert.NoError(t, svc.DeleteItem(context.Background(), 1))

	mockRepo.On("Delete", uint(2)).Return(repository.ErrItemNotFound).Once()
	assert.ErrorIs(t, svc.DeleteItem(context.Background(), 2), service.ErrItemNotFound)

	mockRepo.AssertExpectations(t)
}
