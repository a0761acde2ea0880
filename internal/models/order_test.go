package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{
		OrderAwaitingConfirmation,
		OrderProcessing,
		OrderAwaitingCourier,
		OrderShipping,
		OrderDelivered,
		OrderCancelled,
	} {
		assert.True(t, s.Valid(), "expected %q to be valid", s)
	}
	assert.False(t, OrderStatus("pending").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		allowed  bool
	}{
		{OrderAwaitingConfirmation, OrderProcessing, true},
		{OrderAwaitingConfirmation, OrderCancelled, true},
		{OrderAwaitingConfirmation, OrderAwaitingCourier, false},
		{OrderAwaitingConfirmation, OrderDelivered, false},
		{OrderProcessing, OrderAwaitingCourier, true},
		{OrderProcessing, OrderCancelled, true},
		{OrderProcessing, OrderShipping, false},
		{OrderProcessing, OrderAwaitingConfirmation, false},
		{OrderAwaitingCourier, OrderShipping, true},
		{OrderAwaitingCourier, OrderCancelled, true},
		{OrderAwaitingCourier, OrderDelivered, false},
		{OrderShipping, OrderDelivered, true},
		{OrderShipping, OrderCancelled, true},
		{OrderShipping, OrderAwaitingCourier, false},
		{OrderDelivered, OrderCancelled, false},
		{OrderDelivered, OrderShipping, false},
		{OrderCancelled, OrderAwaitingConfirmation, false},
		{OrderCancelled, OrderProcessing, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestStaffRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleOwner.Valid())
	assert.True(t, RoleCourier.Valid())
	assert.False(t, StaffRole("customer").Valid())
}
