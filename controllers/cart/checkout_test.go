package cartControllers

import (
	"errors"
	"testing"

	"github.com/kavienanj/single-vendor-ecommerce/apperrors"
	"github.com/kavienanj/single-vendor-ecommerce/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutMovesCartIntoOrder(t *testing.T) {
	db := openTestDB(t)
	seedVariant(t, db, 7, "Blue Hoodie M", 10.00, 5)
	seedVariant(t, db, 9, "Red Cap", 5.00, 5)
	require.NoError(t, AddToCart(db, 1, 7, 2))
	require.NoError(t, AddToCart(db, 1, 9, 1))

	orderID, err := Checkout(db, 1)
	require.NoError(t, err)
	require.NotZero(t, orderID)

	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order, orderID).Error)
	assert.Equal(t, uint(1), order.CustomerID)
	assert.Equal(t, models.OrderStatusProcessing, order.OrderStatus)
	assert.Equal(t, 25.00, order.TotalAmount)
	assert.False(t, order.PurchasedTime.IsZero())
	assert.NotEmpty(t, order.OrderRef)
	assert.Nil(t, order.DeliveryEstimate)

	require.Len(t, order.Items, 2)
	var itemTotal float64
	for _, item := range order.Items {
		itemTotal += item.Price * float64(item.Quantity)
	}
	assert.Equal(t, order.TotalAmount, itemTotal)

	var cartCount int64
	require.NoError(t, db.Model(&models.CartLine{}).Where("user_id = ?", 1).Count(&cartCount).Error)
	assert.Zero(t, cartCount, "checkout must clear the cart")
}

func TestCheckoutEmptyCartCreatesNothing(t *testing.T) {
	db := openTestDB(t)

	_, err := Checkout(db, 1)
	assert.True(t, errors.Is(err, apperrors.ErrEmptyCart))

	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.Zero(t, orderCount)
}

func TestCheckoutSnapshotsPrices(t *testing.T) {
	db := openTestDB(t)
	seedVariant(t, db, 7, "Blue Hoodie M", 10.00, 5)
	require.NoError(t, AddToCart(db, 1, 7, 2))

	orderID, err := Checkout(db, 1)
	require.NoError(t, err)

	// A later price change must not touch placed orders.
	require.NoError(t, db.Model(&models.Variant{}).
		Where("variant_id = ?", 7).
		Update("price", 99.99).Error)

	var item models.OrderItem
	require.NoError(t, db.Where("order_id = ?", orderID).First(&item).Error)
	assert.Equal(t, 10.00, item.Price)
	assert.Equal(t, "Blue Hoodie M", item.VariantName)

	var order models.Order
	require.NoError(t, db.First(&order, orderID).Error)
	assert.Equal(t, 20.00, order.TotalAmount)
}

func TestCheckoutDoesNotTouchInventory(t *testing.T) {
	db := openTestDB(t)
	seedVariant(t, db, 7, "Blue Hoodie M", 10.00, 5)
	require.NoError(t, AddToCart(db, 1, 7, 2))

	_, err := Checkout(db, 1)
	require.NoError(t, err)

	var inv models.Inventory
	require.NoError(t, db.First(&inv, "variant_id = ?", 7).Error)
	assert.Equal(t, 5, inv.QuantityAvailable)
}

func TestCheckoutTwiceNeedsANewCart(t *testing.T) {
	db := openTestDB(t)
	seedVariant(t, db, 7, "Blue Hoodie M", 10.00, 5)
	require.NoError(t, AddToCart(db, 1, 7, 2))

	_, err := Checkout(db, 1)
	require.NoError(t, err)

	_, err = Checkout(db, 1)
	assert.True(t, errors.Is(err, apperrors.ErrEmptyCart))

	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.EqualValues(t, 1, orderCount, "one cart snapshot yields exactly one order")
}

func TestCheckoutKeepsOtherUsersCarts(t *testing.T) {
	db := openTestDB(t)
	seedVariant(t, db, 7, "Blue Hoodie M", 10.00, 5)
	require.NoError(t, AddToCart(db, 1, 7, 2))
	require.NoError(t, AddToCart(db, 2, 7, 1))

	_, err := Checkout(db, 1)
	require.NoError(t, err)

	var otherCart int64
	require.NoError(t, db.Model(&models.CartLine{}).Where("user_id = ?", 2).Count(&otherCart).Error)
	assert.EqualValues(t, 1, otherCart)
}
