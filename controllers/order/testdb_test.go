package orderControllers

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/kavienanj/single-vendor-ecommerce/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Every connection of an in-memory SQLite DSN gets its own database;
	// pin the pool to one connection so all queries see the same schema.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Variant{},
		&models.Inventory{},
		&models.CartLine{},
		&models.Order{},
		&models.OrderItem{},
		&models.DeliveryLocation{},
	))
	return db
}

func seedVariant(t *testing.T, db *gorm.DB, variantID uint, name string, price float64, stock int) {
	t.Helper()

	product := models.Product{Title: name + " product", SKU: name + "-sku"}
	require.NoError(t, db.Create(&product).Error)
	require.NoError(t, db.Create(&models.Variant{
		VariantID: variantID,
		ProductID: product.ProductID,
		Name:      name,
		Price:     price,
	}).Error)
	require.NoError(t, db.Create(&models.Inventory{
		VariantID:         variantID,
		QuantityAvailable: stock,
	}).Error)
}

// seedLocation creates a delivery location with the given lead times.
func seedLocation(t *testing.T, db *gorm.DB, id uint, locType string, withStock, withoutStock int) {
	t.Helper()
	require.NoError(t, db.Create(&models.DeliveryLocation{
		DeliveryLocationID:       id,
		LocationName:             "Location " + locType,
		LocationType:             locType,
		WithStockDeliveryDays:    withStock,
		WithoutStockDeliveryDays: withoutStock,
	}).Error)
}

type seedItem struct {
	variantID uint
	name      string
	quantity  int
	price     float64
}

// seedProcessingOrder inserts an order in Processing state with its items,
// as checkout would have left it.
func seedProcessingOrder(t *testing.T, db *gorm.DB, customerID uint, items ...seedItem) uint {
	t.Helper()

	order := models.Order{
		CustomerID:    customerID,
		OrderRef:      time.Now().Format("20060102150405.000000000"),
		OrderStatus:   models.OrderStatusProcessing,
		PurchasedTime: time.Now(),
	}
	require.NoError(t, db.Create(&order).Error)

	var total float64
	for _, item := range items {
		require.NoError(t, db.Create(&models.OrderItem{
			OrderID:     order.OrderID,
			VariantID:   item.variantID,
			VariantName: item.name,
			Quantity:    item.quantity,
			Price:       item.price,
		}).Error)
		total += item.price * float64(item.quantity)
	}
	require.NoError(t, db.Model(&models.Order{}).
		Where("order_id = ?", order.OrderID).
		Update("total_amount", total).Error)

	return order.OrderID
}

func validInput(locationID uint) ProcessOrderInput {
	return ProcessOrderInput{
		Name:               "Jamie Perera",
		Phone:              "+94771234567",
		Email:              "jamie@example.com",
		Address:            "12 Galle Road, Colombo",
		DeliveryMethod:     models.DeliveryMethodDelivery,
		DeliveryLocationID: locationID,
		PaymentMethod:      models.PaymentMethodCashOnDelivery,
	}
}
