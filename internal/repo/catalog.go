package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/ufo_delivery/internal/models"
	"github.com/Skotchmaster/ufo_delivery/internal/transport"
)

func (r *GormRepo) GetItem(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	if err := r.DB.WithContext(ctx).Preload("Categories").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) GetItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := r.DB.WithContext(ctx).Preload("Categories").Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetItemsInCategory(ctx context.Context, categoryID uint) ([]models.Item, error) {
	var items []models.Item
	err := r.DB.WithContext(ctx).
		Preload("Categories").
		Joins("JOIN item_category ic ON ic.item_id = items.id").
		Where("ic.category_id = ?", categoryID).
		Order("items.id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategoriesByIDs returns only the categories that exist; unknown ids are
// dropped silently.
func (r *GormRepo) GetCategoriesByIDs(ctx context.Context, ids []uint) ([]models.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var categories []models.Category
	if err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *GormRepo) CreateItem(ctx context.Context, item *models.Item) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(item).Error
	})
}

// PatchItem applies only the populated fields. A present category list fully
// replaces the existing associations.
func (r *GormRepo) PatchItem(ctx context.Context, id uint, req transport.EditItemRequest) (*models.Item, error) {
	var item models.Item
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Categories").First(&item, id).Error; err != nil {
			return err
		}

		if req.Name != nil {
			item.Name = *req.Name
		}
		if req.Description != nil {
			item.Description = *req.Description
		}
		if req.Price != nil {
			item.Price = *req.Price
		}
		if req.ImagePath != nil {
			item.ImagePath = *req.ImagePath
		}
		if req.IsAvailable != nil {
			item.IsAvailable = *req.IsAvailable
		}

		if req.Categories != nil {
			var categories []models.Category
			if len(*req.Categories) > 0 {
				if err := tx.Where("id IN ?", *req.Categories).Find(&categories).Error; err != nil {
					return err
				}
			}
			if err := tx.Model(&item).Association("Categories").Replace(categories); err != nil {
				return err
			}
			item.Categories = categories
		}

		return tx.Omit("Categories").Save(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) DeleteItem(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := tx.First(&item, id).Error; err != nil {
			return err
		}

		if err := tx.Model(&item).Association("Categories").Clear(); err != nil {
			return err
		}
		if err := tx.Where("item_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}

		return tx.Delete(&item).Error
	})
}
