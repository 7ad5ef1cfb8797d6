package models

import "testing"

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		allowed  bool
	}{
		{OrderStatusProcessing, OrderStatusConfirmed, true},
		{OrderStatusProcessing, OrderStatusFailed, true},
		{OrderStatusProcessing, OrderStatusProcessing, false},
		{OrderStatusConfirmed, OrderStatusProcessing, false},
		{OrderStatusConfirmed, OrderStatusFailed, false},
		{OrderStatusFailed, OrderStatusProcessing, false},
		{OrderStatusFailed, OrderStatusConfirmed, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	if OrderStatusProcessing.Terminal() {
		t.Error("Processing must not be terminal")
	}
	if !OrderStatusConfirmed.Terminal() {
		t.Error("Confirmed must be terminal")
	}
	if !OrderStatusFailed.Terminal() {
		t.Error("Failed must be terminal")
	}
}
