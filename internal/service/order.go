package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Skotchmaster/ufo_delivery/internal/events"
	"github.com/Skotchmaster/ufo_delivery/internal/logging"
	"github.com/Skotchmaster/ufo_delivery/internal/models"
	"github.com/Skotchmaster/ufo_delivery/internal/repo"
)

type OrderService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

// GetOrCreate returns the user's open order, creating an empty one when none
// exists. Two calls racing to create the first order are resolved by the
// partial unique index on orders: the loser re-reads the winner's row.
func (s *OrderService) GetOrCreate(ctx context.Context, userID uint) (*models.Order, error) {
	order, err := s.Repo.GetOpenOrder(ctx, userID)
	if err == nil {
		return order, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	order, err = s.Repo.CreateOpenOrder(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.Repo.GetOpenOrder(ctx, userID)
		}
		return nil, err
	}
	return order, nil
}

// AddItem adds one unit of the item to the user's open order, folding the
// quantity when a line for the item already exists.
func (s *OrderService) AddItem(ctx context.Context, userID, itemID uint) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "order.add_item", "user_id", userID, "item_id", itemID)

	if _, err := s.Repo.GetItem(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		l.Error("add_item failed", "status", 500, "error", err)
		return nil, err
	}

	order, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		l.Error("add_item failed", "status", 500, "error", err)
		return nil, err
	}

	if err := s.Repo.AddItemToOrder(ctx, order.ID, itemID); err != nil {
		l.Error("add_item failed", "status", 500, "error", err)
		return nil, err
	}

	return s.Repo.GetOrder(ctx, order.ID)
}

// RemoveItem removes one unit of the item from the order. The line is
// deleted entirely once its quantity would drop to zero.
func (s *OrderService) RemoveItem(ctx context.Context, orderID, itemID uint) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "order.remove_item", "order_id", orderID, "item_id", itemID)

	if err := s.Repo.RemoveItemFromOrder(ctx, orderID, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotInOrder
		}
		l.Error("remove_item failed", "status", 500, "error", err)
		return nil, err
	}

	return s.Repo.GetOrder(ctx, orderID)
}

// Place marks the user's open order as placed. The next interaction creates
// a fresh order.
func (s *OrderService) Place(ctx context.Context, userID uint) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "order.place", "user_id", userID)

	order, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		l.Error("place failed", "status", 500, "error", err)
		return nil, err
	}

	if len(order.Items) == 0 {
		l.Warn("place failed", "status", 400, "reason", "order is empty")
		return nil, ErrOrderIsEmpty
	}

	if err := s.Repo.PlaceOrder(ctx, order.ID); err != nil {
		l.Error("place failed", "status", 500, "error", err)
		return nil, err
	}

	placed, err := s.Repo.GetOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	event := map[string]interface{}{
		"type":     "order_placed",
		"order_id": placed.ID,
		"user_id":  userID,
		"lines":    len(placed.Items),
	}
	if err := s.Producer.PublishEvent(ctx, events.TopicOrderEvents, fmt.Sprint(placed.ID), event); err != nil {
		l.Error("kafka publish error", "error", err)
	}

	l.Info("place success", "order_id", placed.ID)
	return placed, nil
}
