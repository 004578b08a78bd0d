package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Skotchmaster/ufo_delivery/internal/models"
)

func (r *GormRepo) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.DB.WithContext(ctx).
		Preload("Items").
		Preload("Items.Item").
		Preload("Items.Item.Categories").
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) GetOpenOrder(ctx context.Context, userID uint) (*models.Order, error) {
	var order models.Order
	err := r.DB.WithContext(ctx).
		Preload("Items").
		Preload("Items.Item").
		Preload("Items.Item.Categories").
		Where("user_id = ? AND is_placed = ?", userID, false).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) CreateOpenOrder(ctx context.Context, userID uint) (*models.Order, error) {
	order := models.Order{UserID: userID, IsPlaced: false}
	if err := r.DB.WithContext(ctx).Create(&order).Error; err != nil {
		return nil, err
	}
	order.Items = []models.OrderItem{}
	return &order, nil
}

func (r *GormRepo) GetOrderItem(ctx context.Context, orderID, itemID uint) (*models.OrderItem, error) {
	var line models.OrderItem
	err := r.DB.WithContext(ctx).
		Where("order_id = ? AND item_id = ?", orderID, itemID).
		First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// AddItemToOrder folds quantity: an existing line for (order, item) is
// incremented by one, otherwise a new line with quantity 1 is inserted.
func (r *GormRepo) AddItemToOrder(ctx context.Context, orderID, itemID uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var line models.OrderItem
		err := tx.Where("order_id = ? AND item_id = ?", orderID, itemID).First(&line).Error
		if err == nil {
			return tx.Model(&models.OrderItem{}).
				Where("order_id = ? AND item_id = ?", orderID, itemID).
				Update("quantity", line.Quantity+1).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		line = models.OrderItem{OrderID: orderID, ItemID: itemID, Quantity: 1}
		return tx.Create(&line).Error
	})
}

// RemoveItemFromOrder decrements the line quantity and deletes the row once
// it would drop to zero. gorm.ErrRecordNotFound is returned when no line for
// (order, item) exists.
func (r *GormRepo) RemoveItemFromOrder(ctx context.Context, orderID, itemID uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var line models.OrderItem
		if err := tx.Where("order_id = ? AND item_id = ?", orderID, itemID).First(&line).Error; err != nil {
			return err
		}

		if line.Quantity > 1 {
			return tx.Model(&models.OrderItem{}).
				Where("order_id = ? AND item_id = ?", orderID, itemID).
				Update("quantity", line.Quantity-1).Error
		}

		return tx.Where("order_id = ? AND item_id = ?", orderID, itemID).
			Delete(&models.OrderItem{}).Error
	})
}

func (r *GormRepo) PlaceOrder(ctx context.Context, orderID uint) error {
	return r.DB.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("is_placed", true).Error
}
