package services

import (
	"context"
	"testing"

	"mangan/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignCourier(t *testing.T) {
	f := newFixture(t)
	result := f.placeOrder(t)
	f.advanceToAwaitingCourier(t, result.OrderID)

	delivery, err := f.delivery.AssignCourier(result.OrderID, f.courier.ID)
	require.NoError(t, err)
	assert.Equal(t, result.OrderID, delivery.OrderID)
	assert.Equal(t, f.courier.ID, delivery.CourierID)
	assert.Equal(t, models.DeliveryShipping, delivery.Status)
	assert.False(t, delivery.DispatchedAt.IsZero())

	order, err := f.orders.GetOrderByID(result.OrderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderShipping, order.Status)
}

func TestAssignCourierRejectsSecondAssignment(t *testing.T) {
	f := newFixture(t)
	result := f.placeOrder(t)
	f.advanceToAwaitingCourier(t, result.OrderID)

	first, err := f.delivery.AssignCourier(result.OrderID, f.courier.ID)
	require.NoError(t, err)

	// A second assignment never gets past the shipping-state check, and even
	// if the state were forced back it would hit the one-delivery-per-order
	// rule. Either way the first delivery must survive untouched.
	_, err = f.delivery.AssignCourier(result.OrderID, f.courier.ID)
	require.Error(t, err)

	require.NoError(t, f.db.Model(&models.Order{}).
		Where("id = ?", result.OrderID).
		Update("status", models.OrderAwaitingCourier).Error)

	_, err = f.delivery.AssignCourier(result.OrderID, f.courier.ID)
	assert.ErrorIs(t, err, ErrDeliveryExists)

	current, err := f.delivery.GetDeliveryByID(first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.CourierID, current.CourierID)
	assert.Equal(t, models.DeliveryShipping, current.Status)

	var deliveryCount int64
	require.NoError(t, f.db.Model(&models.Delivery{}).Count(&deliveryCount).Error)
	assert.Equal(t, int64(1), deliveryCount)
}

func TestAssignCourierWrongOrderState(t *testing.T) {
	f := newFixture(t)
	result := f.placeOrder(t)

	_, err := f.delivery.AssignCourier(result.OrderID, f.courier.ID)
	var transition *InvalidTransitionError
	require.ErrorAs(t, err, &transition)
	assert.Equal(t, string(models.OrderAwaitingConfirmation), transition.From)
}

func TestAssignCourierRejectsNonCourier(t *testing.T) {
	f := newFixture(t)
	result := f.placeOrder(t)
	f.advanceToAwaitingCourier(t, result.OrderID)

	admin := &models.StaffUser{
		Name:         "Admin",
		Email:        "admin@example.com",
		PasswordHash: "x",
		Role:         models.RoleAdmin,
	}
	require.NoError(t, f.db.Create(admin).Error)

	_, err := f.delivery.AssignCourier(result.OrderID, admin.ID)
	assert.ErrorIs(t, err, ErrNotCourier)
}

func TestMarkDelivered(t *testing.T) {
	f := newFixture(t)
	result := f.placeOrder(t)
	f.advanceToAwaitingCourier(t, result.OrderID)
	delivery, err := f.delivery.AssignCourier(result.OrderID, f.courier.ID)
	require.NoError(t, err)

	require.NoError(t, f.delivery.MarkDelivered(context.Background(), delivery.ID, "data:image/jpeg;base64,yyy"))

	current, err := f.delivery.GetDeliveryByID(delivery.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryDelivered, current.Status)
	require.NotNil(t, current.ArrivedAt)
	assert.False(t, current.ArrivedAt.Before(current.DispatchedAt))
	assert.NotEmpty(t, current.DeliveryProofURL)
	assert.Equal(t, 1, f.images.uploads)

	order, err := f.orders.GetOrderByID(result.OrderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderDelivered, order.Status)

	// Delivered is terminal for the delivery as well.
	assert.ErrorIs(t, f.delivery.MarkDelivered(context.Background(), delivery.ID, ""), ErrOrderFinal)
}

func TestMarkDeliveredWithoutProof(t *testing.T) {
	f := newFixture(t)
	result := f.placeOrder(t)
	f.advanceToAwaitingCourier(t, result.OrderID)
	delivery, err := f.delivery.AssignCourier(result.OrderID, f.courier.ID)
	require.NoError(t, err)

	require.NoError(t, f.delivery.MarkDelivered(context.Background(), delivery.ID, ""))
	assert.Zero(t, f.images.uploads)
}

func TestCourierStats(t *testing.T) {
	f := newFixture(t)

	first := f.placeOrder(t)
	f.advanceToAwaitingCourier(t, first.OrderID)
	firstDelivery, err := f.delivery.AssignCourier(first.OrderID, f.courier.ID)
	require.NoError(t, err)
	require.NoError(t, f.delivery.MarkDelivered(context.Background(), firstDelivery.ID, ""))

	second := f.placeOrder(t)
	f.advanceToAwaitingCourier(t, second.OrderID)
	_, err = f.delivery.AssignCourier(second.OrderID, f.courier.ID)
	require.NoError(t, err)

	stats, err := f.delivery.GetCourierStats(f.courier.ID)
	require.NoError(t, err)
	assert.Equal(t, &CourierStats{TotalAssigned: 2, Shipping: 1, Delivered: 1}, stats)

	active, err := f.delivery.GetActiveDeliveriesByCourier(f.courier.ID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, second.OrderID, active[0].OrderID)
}

func TestFullOrderLifecycle(t *testing.T) {
	f := newFixture(t)

	result := f.placeOrder(t)
	require.NoError(t, f.orders.ConfirmPayment(result.OrderID))
	require.NoError(t, f.orders.MarkReadyForCourier(result.OrderID))

	awaiting, err := f.orders.GetAwaitingCourierOrders()
	require.NoError(t, err)
	require.Len(t, awaiting, 1)
	assert.Equal(t, result.OrderID, awaiting[0].ID)

	delivery, err := f.delivery.AssignCourier(result.OrderID, f.courier.ID)
	require.NoError(t, err)

	// Once assigned the order drops off the awaiting-courier queue.
	awaiting, err = f.orders.GetAwaitingCourierOrders()
	require.NoError(t, err)
	assert.Empty(t, awaiting)

	require.NoError(t, f.delivery.MarkDelivered(context.Background(), delivery.ID, "data:image/png;base64,zzz"))

	order, err := f.orders.GetOrderByTrackingCode(result.TrackingCode)
	require.NoError(t, err)
	assert.Equal(t, models.OrderDelivered, order.Status)
	require.NotNil(t, order.Delivery)
	assert.Equal(t, models.DeliveryDelivered, order.Delivery.Status)
}
