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
	"github.com/Skotchmaster/ufo_delivery/internal/search"
	"github.com/Skotchmaster/ufo_delivery/internal/transport"
)

type CatalogService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
	Search   *search.Service
}

func (s *CatalogService) Get(ctx context.Context, id uint) (*models.Item, error) {
	item, err := s.Repo.GetItem(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// GetAll returns every item, or the items attached to the given category when
// categoryID is non-nil.
func (s *CatalogService) GetAll(ctx context.Context, categoryID *uint) ([]models.Item, error) {
	if categoryID != nil {
		return s.Repo.GetItemsInCategory(ctx, *categoryID)
	}
	return s.Repo.GetItems(ctx)
}

func (s *CatalogService) GetCategories(ctx context.Context) ([]models.Category, error) {
	return s.Repo.GetCategories(ctx)
}

// Create resolves the requested category ids to rows, silently dropping
// unknown ones. Availability defaults to true when the field is omitted.
func (s *CatalogService) Create(ctx context.Context, req transport.CreateItemRequest) (*models.Item, error) {
	l := logging.FromContext(ctx).With("svc", "catalog.create")

	categories, err := s.Repo.GetCategoriesByIDs(ctx, req.Categories)
	if err != nil {
		l.Error("create failed", "status", 500, "error", err)
		return nil, err
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	item := models.Item{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImagePath:   req.ImagePath,
		IsAvailable: isAvailable,
		Categories:  categories,
	}

	if err := s.Repo.CreateItem(ctx, &item); err != nil {
		l.Error("create failed", "status", 500, "error", err)
		return nil, err
	}

	s.afterItemChange(ctx, &item, "item_created")

	l.Info("create success", "item_id", item.ID)
	return &item, nil
}

func (s *CatalogService) Edit(ctx context.Context, id uint, req transport.EditItemRequest) (*models.Item, error) {
	l := logging.FromContext(ctx).With("svc", "catalog.edit", "item_id", id)

	item, err := s.Repo.PatchItem(ctx, id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		l.Error("edit failed", "status", 500, "error", err)
		return nil, err
	}

	s.afterItemChange(ctx, item, "item_updated")

	return item, nil
}

func (s *CatalogService) Delete(ctx context.Context, id uint) error {
	l := logging.FromContext(ctx).With("svc", "catalog.delete", "item_id", id)

	if err := s.Repo.DeleteItem(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		l.Error("delete failed", "status", 500, "error", err)
		return err
	}

	if err := s.Search.DeleteItem(ctx, id); err != nil {
		l.Error("search delete error", "error", err)
	}

	event := map[string]interface{}{
		"type":    "item_deleted",
		"item_id": id,
	}
	if err := s.Producer.PublishEvent(ctx, events.TopicItemEvents, fmt.Sprint(id), event); err != nil {
		l.Error("kafka publish error", "error", err)
	}

	l.Info("delete success")
	return nil
}

// afterItemChange refreshes the search index and publishes the domain event.
// Both are best-effort: failures are logged and never surfaced to the caller.
func (s *CatalogService) afterItemChange(ctx context.Context, item *models.Item, eventType string) {
	l := logging.FromContext(ctx)

	if err := s.Search.IndexItem(ctx, transport.ItemToDTO(item)); err != nil {
		l.Error("search index error", "error", err)
	}

	event := map[string]interface{}{
		"type":    eventType,
		"item_id": item.ID,
		"name":    item.Name,
	}
	if err := s.Producer.PublishEvent(ctx, events.TopicItemEvents, fmt.Sprint(item.ID), event); err != nil {
		l.Error("kafka publish error", "error", err)
	}
}
