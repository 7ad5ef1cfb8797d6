package cartControllers

import (
	"testing"

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
