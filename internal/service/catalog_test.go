package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/ufo_delivery/internal/transport"
)

func TestCatalogService_Get_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.Catalog.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestCatalogService_Create_DefaultsAndCategories(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	snacks := seedCategory(t, env.DB, "snacks")
	fuel := seedCategory(t, env.DB, "fuel")

	item, err := env.Catalog.Create(ctx, transport.CreateItemRequest{
		Name:        "saucer fuel",
		Description: "premium grade",
		Price:       9.99,
		ImagePath:   "/img/fuel.png",
		Categories:  []uint{snacks.ID, fuel.ID, 999},
	})
	require.NoError(t, err)

	assert.True(t, item.IsAvailable)
	// unknown category id 999 is dropped silently
	require.Len(t, item.Categories, 2)

	got, err := env.Catalog.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Len(t, got.Categories, 2)
}

func TestCatalogService_Create_ExplicitUnavailable(t *testing.T) {
	env := newTestEnv(t)

	unavailable := false
	item, err := env.Catalog.Create(context.Background(), transport.CreateItemRequest{
		Name:        "mystery box",
		Description: "out of stock",
		Price:       1,
		IsAvailable: &unavailable,
	})
	require.NoError(t, err)
	assert.False(t, item.IsAvailable)
}

func TestCatalogService_Edit_PartialUpdate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	item := seedItem(t, env.DB, "saucer fuel", 5)

	price := 9.99
	updated, err := env.Catalog.Edit(ctx, item.ID, transport.EditItemRequest{Price: &price})
	require.NoError(t, err)

	assert.Equal(t, 9.99, updated.Price)
	assert.Equal(t, item.Name, updated.Name)
	assert.Equal(t, item.Description, updated.Description)
	assert.Equal(t, item.IsAvailable, updated.IsAvailable)
}

func TestCatalogService_Edit_ReplacesCategories(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	snacks := seedCategory(t, env.DB, "snacks")
	fuel := seedCategory(t, env.DB, "fuel")

	item, err := env.Catalog.Create(ctx, transport.CreateItemRequest{
		Name:        "saucer fuel",
		Description: "premium grade",
		Price:       9.99,
		Categories:  []uint{snacks.ID},
	})
	require.NoError(t, err)

	newCategories := []uint{fuel.ID}
	updated, err := env.Catalog.Edit(ctx, item.ID, transport.EditItemRequest{Categories: &newCategories})
	require.NoError(t, err)

	require.Len(t, updated.Categories, 1)
	assert.Equal(t, fuel.ID, updated.Categories[0].ID)
}

func TestCatalogService_Edit_NotFound(t *testing.T) {
	env := newTestEnv(t)

	name := "ghost"
	_, err := env.Catalog.Edit(context.Background(), 42, transport.EditItemRequest{Name: &name})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestCatalogService_Delete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	item := seedItem(t, env.DB, "saucer fuel", 9.99)

	require.NoError(t, env.Catalog.Delete(ctx, item.ID))

	_, err := env.Catalog.Get(ctx, item.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestCatalogService_Delete_NotFound(t *testing.T) {
	env := newTestEnv(t)

	err := env.Catalog.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestCatalogService_GetAll_FiltersByCategory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	snacks := seedCategory(t, env.DB, "snacks")

	inCategory, err := env.Catalog.Create(ctx, transport.CreateItemRequest{
		Name:        "moon cheese",
		Description: "aged",
		Price:       3,
		Categories:  []uint{snacks.ID},
	})
	require.NoError(t, err)
	seedItem(t, env.DB, "saucer fuel", 9.99)

	all, err := env.Catalog.GetAll(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := env.Catalog.GetAll(ctx, &snacks.ID)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, inCategory.ID, filtered[0].ID)
}
