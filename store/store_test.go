package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodhub-api/models"
)

func TestCartRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := New(NewMemoryStore())

	lines := []models.CartLine{
		{ItemID: 1, Name: "Jollof Rice", Category: "Rice", Price: 2500, Quantity: 2},
		{ItemID: 9, Name: "Meat Pie", Category: "Snacks", Price: 800, Quantity: 1},
	}
	st.SaveCart(ctx, lines)

	assert.Equal(t, lines, st.LoadCart(ctx))

	st.ClearCart(ctx)
	assert.Nil(t, st.LoadCart(ctx))
}

func TestMissingKeysLoadAsEmpty(t *testing.T) {
	ctx := context.Background()
	st := New(NewMemoryStore())

	assert.Nil(t, st.LoadCart(ctx))
	assert.Nil(t, st.LoadOrders(ctx))
	assert.Nil(t, st.LoadUnavailable(ctx))
	assert.Empty(t, st.LoadAdminWhatsApp(ctx))
}

func TestUnparseableValueLoadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStore()
	st := New(kv)

	require.NoError(t, kv.Set(ctx, "foodhub_cart", "{not json"))
	assert.Nil(t, st.LoadCart(ctx))

	require.NoError(t, kv.Set(ctx, "foodhub_orders", `"a plain string"`))
	assert.Nil(t, st.LoadOrders(ctx))
}

func TestUnknownSchemaVersionLoadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStore()
	st := New(kv)

	require.NoError(t, kv.Set(ctx, "foodhub_unavailable", `{"version":99,"data":[1,2,3]}`))
	assert.Nil(t, st.LoadUnavailable(ctx))
}

func TestCorruptPayloadLoadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStore()
	st := New(kv)

	require.NoError(t, kv.Set(ctx, "foodhub_unavailable", `{"version":1,"data":"not an id list"}`))
	assert.Nil(t, st.LoadUnavailable(ctx))
}

func TestOrdersRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := New(NewMemoryStore())

	orders := []models.Order{{
		OrderID:      "ORD-1700000000000-abcd1234",
		CustomerName: "Ada Obi",
		Items:        []models.OrderItem{{ItemID: 1, Name: "Jollof Rice", Price: 2500, Quantity: 2}},
		Subtotal:     5000,
		DeliveryFee:  500,
		Total:        5500,
		Status:       models.OrderStatusConfirmed,
	}}
	st.SaveOrders(ctx, orders)

	loaded := st.LoadOrders(ctx)
	require.Len(t, loaded, 1)
	assert.Equal(t, orders[0].OrderID, loaded[0].OrderID)
	assert.Equal(t, orders[0].Items, loaded[0].Items)
}

func TestAdminWhatsAppRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := New(NewMemoryStore())

	st.SaveAdminWhatsApp(ctx, "2349157286254")
	assert.Equal(t, "2349157286254", st.LoadAdminWhatsApp(ctx))

	st.SaveAdminWhatsApp(ctx, "")
	assert.Empty(t, st.LoadAdminWhatsApp(ctx))
}

func TestMemoryStoreRemove(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStore()

	require.NoError(t, kv.Set(ctx, "k", "v"))
	val, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)

	require.NoError(t, kv.Remove(ctx, "k"))
	val, err = kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Empty(t, val)
}
