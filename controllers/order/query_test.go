package orderControllers

import (
	"errors"
	"testing"
	"time"

	"github.com/kavienanj/single-vendor-ecommerce/apperrors"
	"github.com/kavienanj/single-vendor-ecommerce/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrderByIDEnforcesOwnership(t *testing.T) {
	db := openTestDB(t)
	orderID := seedProcessingOrder(t, db, 1, seedItem{7, "Blue Hoodie M", 1, 10.00})

	_, err := GetOrderByID(db, orderID, 2, false)
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))

	// the owner and any admin may read it
	_, err = GetOrderByID(db, orderID, 1, false)
	assert.NoError(t, err)
	_, err = GetOrderByID(db, orderID, 2, true)
	assert.NoError(t, err)
}

func TestGetOrderByIDNotFound(t *testing.T) {
	db := openTestDB(t)

	_, err := GetOrderByID(db, 42, 1, false)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestGetOrderByIDJoinsLiveStock(t *testing.T) {
	db := openTestDB(t)
	seedVariant(t, db, 7, "Blue Hoodie M", 12.00, 3)
	orderID := seedProcessingOrder(t, db, 1,
		seedItem{7, "Blue Hoodie M", 2, 10.00}, // snapshotted below today's price
		seedItem{9, "Red Cap", 1, 5.00},        // variant without inventory row
	)

	detail, err := GetOrderByID(db, orderID, 1, false)
	require.NoError(t, err)
	require.Len(t, detail.Items, 2)

	assert.Equal(t, "Blue Hoodie M", detail.Items[0].VariantName)
	assert.Equal(t, 10.00, detail.Items[0].Price, "item keeps the checkout-time price")
	assert.Equal(t, 20.00, detail.Items[0].TotalPrice)
	assert.Equal(t, 3, detail.Items[0].QuantityAvailable, "stock is the live value")
	assert.Equal(t, 0, detail.Items[1].QuantityAvailable)
	assert.Equal(t, 25.00, detail.TotalAmount)
}

func TestGetUserOrdersNewestFirst(t *testing.T) {
	db := openTestDB(t)

	older := models.Order{
		CustomerID:    1,
		OrderRef:      "ref-older",
		OrderStatus:   models.OrderStatusProcessing,
		PurchasedTime: time.Now().Add(-time.Hour),
	}
	require.NoError(t, db.Create(&older).Error)
	newer := models.Order{
		CustomerID:    1,
		OrderRef:      "ref-newer",
		OrderStatus:   models.OrderStatusProcessing,
		PurchasedTime: time.Now(),
	}
	require.NoError(t, db.Create(&newer).Error)
	foreign := models.Order{
		CustomerID:    2,
		OrderRef:      "ref-foreign",
		OrderStatus:   models.OrderStatusProcessing,
		PurchasedTime: time.Now(),
	}
	require.NoError(t, db.Create(&foreign).Error)

	orders, err := GetUserOrders(db, 1)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, newer.OrderID, orders[0].OrderID)
	assert.Equal(t, older.OrderID, orders[1].OrderID)
}

func TestUpdateOrderStatusForwardOnly(t *testing.T) {
	db := openTestDB(t)
	orderID := seedProcessingOrder(t, db, 1, seedItem{7, "Blue Hoodie M", 1, 10.00})

	require.NoError(t, UpdateOrderStatus(db, orderID, models.OrderStatusConfirmed))

	// Terminal statuses never move again, in any direction.
	err := UpdateOrderStatus(db, orderID, models.OrderStatusProcessing)
	assert.True(t, apperrors.IsValidation(err))
	err = UpdateOrderStatus(db, orderID, models.OrderStatusFailed)
	assert.True(t, apperrors.IsValidation(err))

	var order models.Order
	require.NoError(t, db.First(&order, orderID).Error)
	assert.Equal(t, models.OrderStatusConfirmed, order.OrderStatus)
}

func TestUpdateOrderStatusNotFound(t *testing.T) {
	db := openTestDB(t)

	err := UpdateOrderStatus(db, 42, models.OrderStatusConfirmed)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestMapOrderStatus(t *testing.T) {
	status, err := mapOrderStatus("Confirmed")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusConfirmed, status)

	_, err = mapOrderStatus("shipped")
	assert.True(t, apperrors.IsValidation(err))
}
