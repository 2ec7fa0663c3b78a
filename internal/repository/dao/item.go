package dao

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrItemNotFound       = errors.New("item not found")
	ErrQuantityBelowZero  = errors.New("quantity cannot drop below zero")
	ErrConstraintViolated = errors.New("item violates a database constraint")
)

type Item struct {
	ID       uint    `gorm:"primaryKey"`
	Name     string  `gorm:"size:100;not null"`
	Quantity int     `gorm:"not null"`
	Price    float64 `gorm:"not null"`
	Category string  `gorm:"size:50;not null"`
}

func (Item) TableName() string {
	return "items"
}

type ItemDAO struct {
	db *gorm.DB
}

func NewItemDAO(db *gorm.DB) *ItemDAO {
	return &ItemDAO{
		db: db,
	}
}

func (d *ItemDAO) Insert(ctx context.Context, item Item) (Item, error) {
	result := d.db.WithContext(ctx).Create(&item)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
			return Item{}, ErrConstraintViolated
		}

		return Item{}, result.Error
	}

	return item, nil
}

// FindAll returns items ordered by id. An empty category means no filter,
// anything else is matched exactly.
func (d *ItemDAO) FindAll(ctx context.Context, category string) ([]Item, error) {
	var items []Item

	query := d.db.WithContext(ctx).Order("id")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	result := query.Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

func (d *ItemDAO) FindByID(ctx context.Context, id uint) (Item, error) {
	var item Item

	result := d.db.WithContext(ctx).First(&item, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Item{}, ErrItemNotFound
		}

		return Item{}, result.Error
	}

	return item, nil
}

// Update applies only the given columns to the row identified by id.
func (d *ItemDAO) Update(ctx context.Context, id uint, fields map[string]interface{}) (Item, error) {
	var item Item

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}

			return err
		}

		if len(fields) == 0 {
			return nil
		}

		return tx.Model(&item).Updates(fields).Error
	})
	if err != nil {
		return Item{}, err
	}

	return item, nil
}

// AdjustQuantity applies a relative quantity change as a single conditional
// UPDATE so concurrent adjustments to the same item cannot lose updates or
// drive the quantity negative.
func (d *ItemDAO) AdjustQuantity(ctx context.Context, id uint, delta int) (Item, error) {
	var item Item

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Item{}).
			Where("id = ? AND quantity + ? >= 0", id, delta).
			UpdateColumn("quantity", gorm.Expr("quantity + ?", delta))
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&Item{}).Where("id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrItemNotFound
			}

			return ErrQuantityBelowZero
		}

		return tx.First(&item, id).Error
	})
	if err != nil {
		return Item{}, err
	}

	return item, nil
}

func (d *ItemDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Item{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}
