package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/ufo_delivery/internal/models"
	"github.com/Skotchmaster/ufo_delivery/internal/transport"
)

func registerUser(t *testing.T, env *testEnv, phone string) *models.User {
	t.Helper()

	user, err := env.Users.Register(context.Background(), transport.CreateUserRequest{
		Name:     "test_user",
		Phone:    phone,
		Password: "password",
	})
	require.NoError(t, err)
	return user
}

func TestOrderService_GetOrCreate_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := registerUser(t, env, "+1000")

	first, err := env.Orders.GetOrCreate(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, first.IsPlaced)
	assert.Empty(t, first.Items)

	second, err := env.Orders.GetOrCreate(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestOrderService_AddItem_FoldsQuantity(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := registerUser(t, env, "+1000")
	item := seedItem(t, env.DB, "saucer fuel", 9.99)

	order, err := env.Orders.AddItem(ctx, user.ID, item.ID)
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 1, order.Items[0].Quantity)
	assert.Equal(t, item.ID, order.Items[0].ItemID)
	assert.Equal(t, item.Name, order.Items[0].Item.Name)

	order, err = env.Orders.AddItem(ctx, user.ID, item.ID)
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestOrderService_AddItem_UnknownItem(t *testing.T) {
	env := newTestEnv(t)
	user := registerUser(t, env, "+1000")

	_, err := env.Orders.AddItem(context.Background(), user.ID, 42)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestOrderService_RemoveItem_DecrementsThenDeletes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := registerUser(t, env, "+1000")
	item := seedItem(t, env.DB, "saucer fuel", 9.99)

	_, err := env.Orders.AddItem(ctx, user.ID, item.ID)
	require.NoError(t, err)
	order, err := env.Orders.AddItem(ctx, user.ID, item.ID)
	require.NoError(t, err)
	require.Equal(t, 2, order.Items[0].Quantity)

	order, err = env.Orders.RemoveItem(ctx, order.ID, item.ID)
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 1, order.Items[0].Quantity)

	order, err = env.Orders.RemoveItem(ctx, order.ID, item.ID)
	require.NoError(t, err)
	assert.Empty(t, order.Items)

	_, err = env.Orders.RemoveItem(ctx, order.ID, item.ID)
	assert.ErrorIs(t, err, ErrItemNotInOrder)
}

func TestOrderService_Place_FlipsFlagAndStartsFresh(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := registerUser(t, env, "+1000")
	item := seedItem(t, env.DB, "saucer fuel", 9.99)

	order, err := env.Orders.AddItem(ctx, user.ID, item.ID)
	require.NoError(t, err)

	placed, err := env.Orders.Place(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, placed.ID)
	assert.True(t, placed.IsPlaced)
	require.Len(t, placed.Items, 1)

	fresh, err := env.Orders.GetOrCreate(ctx, user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, placed.ID, fresh.ID)
	assert.False(t, fresh.IsPlaced)
	assert.Empty(t, fresh.Items)
}

func TestOrderService_Place_EmptyOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := registerUser(t, env, "+1000")

	order, err := env.Orders.GetOrCreate(ctx, user.ID)
	require.NoError(t, err)

	_, err = env.Orders.Place(ctx, user.ID)
	assert.ErrorIs(t, err, ErrOrderIsEmpty)

	unchanged, err := env.Orders.GetOrCreate(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, unchanged.ID)
	assert.False(t, unchanged.IsPlaced)
}

func TestOrderService_OpenOrdersAreIsolatedPerUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerUser(t, env, "+1000")
	bob := registerUser(t, env, "+2000")
	item := seedItem(t, env.DB, "saucer fuel", 9.99)

	aliceOrder, err := env.Orders.AddItem(ctx, alice.ID, item.ID)
	require.NoError(t, err)

	bobOrder, err := env.Orders.GetOrCreate(ctx, bob.ID)
	require.NoError(t, err)

	assert.NotEqual(t, aliceOrder.ID, bobOrder.ID)
	assert.Empty(t, bobOrder.Items)
}
