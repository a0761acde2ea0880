package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deliverOrder walks an order all the way to delivered.
func (f *fixture) deliverOrder(t *testing.T, orderID uint) {
	t.Helper()
	f.advanceToAwaitingCourier(t, orderID)
	delivery, err := f.delivery.AssignCourier(orderID, f.courier.ID)
	if err != nil {
		t.Fatalf("failed to assign courier: %v", err)
	}
	if err := f.delivery.MarkDelivered(context.Background(), delivery.ID, ""); err != nil {
		t.Fatalf("failed to mark delivered: %v", err)
	}
}

func TestDashboardStats(t *testing.T) {
	f := newFixture(t)

	f.placeOrder(t)

	processing := f.placeOrder(t)
	require.NoError(t, f.orders.ConfirmPayment(processing.OrderID))

	delivered := f.placeOrder(t)
	f.deliverOrder(t, delivered.OrderID)

	stats, err := f.dashboard.GetStats()
	require.NoError(t, err)
	assert.Equal(t, &DashboardStats{
		TotalOrders:          3,
		TotalCustomers:       1,
		TotalPackages:        2,
		AwaitingConfirmation: 1,
		Processing:           1,
		Delivered:            1,
		TotalRevenue:         150000,
	}, stats)
}

func TestDashboardStatsEmptyDatabase(t *testing.T) {
	f := newFixture(t)

	stats, err := f.dashboard.GetStats()
	require.NoError(t, err)
	assert.Zero(t, stats.TotalOrders)
	assert.Zero(t, stats.TotalRevenue)
	assert.Equal(t, int64(1), stats.TotalCustomers)
}

func TestTopPackagesOrdering(t *testing.T) {
	f := newFixture(t)

	// The buffet package sells three times, the box package once.
	for i := 0; i < 2; i++ {
		_, err := f.orders.CreateOrder(f.customer.ID, []CartItem{
			{PackageID: f.packages[0].ID, Subtotal: f.packages[0].Price},
		}, "COD")
		require.NoError(t, err)
	}
	f.placeOrder(t)

	top, err := f.dashboard.GetTopPackages(10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, f.packages[0].ID, top[0].PackageID)
	assert.Equal(t, int64(3), top[0].UnitsSold)
	assert.Equal(t, f.packages[1].ID, top[1].PackageID)
	assert.Equal(t, int64(1), top[1].UnitsSold)

	// Limit is applied after ordering; a non-positive limit falls back to five.
	top, err = f.dashboard.GetTopPackages(1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, f.packages[0].ID, top[0].PackageID)

	top, err = f.dashboard.GetTopPackages(0)
	require.NoError(t, err)
	assert.Len(t, top, 2)
}

func TestMonthlyRevenueBuckets(t *testing.T) {
	f := newFixture(t)

	placeAt := func(ts time.Time) uint {
		prev := nowFunc
		nowFunc = func() time.Time { return ts }
		defer func() { nowFunc = prev }()
		return f.placeOrder(t).OrderID
	}

	march := placeAt(time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC))
	alsoMarch := placeAt(time.Date(2025, time.March, 25, 9, 0, 0, 0, time.UTC))
	july := placeAt(time.Date(2025, time.July, 2, 18, 0, 0, 0, time.UTC))
	lastYear := placeAt(time.Date(2024, time.December, 31, 23, 0, 0, 0, time.UTC))
	for _, id := range []uint{march, alsoMarch, july, lastYear} {
		f.deliverOrder(t, id)
	}

	// Still awaiting confirmation; must not count as revenue.
	placeAt(time.Date(2025, time.May, 1, 10, 0, 0, 0, time.UTC))

	buckets, err := f.dashboard.GetMonthlyRevenue(2025)
	require.NoError(t, err)
	require.Len(t, buckets, 12)

	assert.Equal(t, "January", buckets[0].Label)
	assert.Zero(t, buckets[0].Revenue)
	assert.Equal(t, 3, buckets[2].Month)
	assert.Equal(t, "March", buckets[2].Label)
	assert.Equal(t, int64(300000), buckets[2].Revenue)
	assert.Zero(t, buckets[4].Revenue)
	assert.Equal(t, int64(150000), buckets[6].Revenue)
	assert.Zero(t, buckets[11].Revenue)

	buckets, err = f.dashboard.GetMonthlyRevenue(2024)
	require.NoError(t, err)
	assert.Equal(t, int64(150000), buckets[11].Revenue)
}
