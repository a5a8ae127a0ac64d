package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"beatforge/models"
)

func beat(id string, price float64) models.Product {
	return models.Product{ID: id, Title: "Beat " + id, Type: models.ProductTypeBeat, Price: price}
}

func TestCartAddIsIdempotentPerProduct(t *testing.T) {
	cart := NewCartService()

	require.True(t, cart.Add("s1", beat("p1", 10)))
	require.False(t, cart.Add("s1", beat("p1", 10)), "duplicate add must be a no-op")

	require.Equal(t, 1, cart.Count("s1"))
	require.Len(t, cart.Items("s1"), 1)
	require.Equal(t, 1, cart.Items("s1")[0].Quantity)
}

func TestCartRemoveAbsentIsNoOp(t *testing.T) {
	cart := NewCartService()
	cart.Add("s1", beat("p1", 10))

	cart.Remove("s1", "nope")
	require.Equal(t, 1, cart.Count("s1"))

	cart.Remove("s1", "p1")
	require.Equal(t, 0, cart.Count("s1"))
}

func TestCartTotalUsesEffectivePrice(t *testing.T) {
	cart := NewCartService()
	cart.Add("s1", beat("p1", 29.99))
	cart.Add("s1", models.Product{ID: "p2", Type: models.ProductTypeSamplePack, Price: 49.99, IsFree: true})
	cart.Add("s1", beat("p3", 10.01))

	require.InDelta(t, 40.00, cart.Total("s1"), 1e-9)
	require.Equal(t, 3, cart.Count("s1"))
}

func TestCartClear(t *testing.T) {
	cart := NewCartService()
	cart.Add("s1", beat("p1", 10))
	cart.Add("s1", beat("p2", 20))

	cart.Clear("s1")

	require.Equal(t, 0, cart.Count("s1"))
	require.Equal(t, 0.0, cart.Total("s1"))
	require.Empty(t, cart.Items("s1"))
}

func TestCartSessionsAreIsolated(t *testing.T) {
	cart := NewCartService()
	cart.Add("s1", beat("p1", 10))
	cart.Add("s2", beat("p2", 20))

	require.Equal(t, 1, cart.Count("s1"))
	require.Equal(t, 1, cart.Count("s2"))

	cart.Clear("s1")
	require.Equal(t, 0, cart.Count("s1"))
	require.Equal(t, 1, cart.Count("s2"))
}

func TestCartHoldsSnapshotNotReference(t *testing.T) {
	cart := NewCartService()
	p := beat("p1", 10)
	cart.Add("s1", p)

	// Mutating the caller's copy must not affect the cart's entry
	p.Price = 999

	require.Equal(t, 10.0, cart.Items("s1")[0].Product.Price)
}

func TestCartViewAggregates(t *testing.T) {
	cart := NewCartService()
	cart.Add("s1", beat("p1", 15))
	cart.Add("s1", beat("p2", 5))

	view := cart.View("s1")
	require.Equal(t, 2, view.Count)
	require.InDelta(t, 20.0, view.Total, 1e-9)
	require.Len(t, view.Items, 2)
}
