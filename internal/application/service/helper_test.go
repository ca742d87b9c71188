package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mobishop/pos-api/internal/domain/entity"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Product{},
		&entity.Invoice{},
		&entity.InvoiceItem{},
		&entity.InvoiceSequence{},
		&entity.ShopSettings{},
		&entity.IdempotencyKey{},
	))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, quantity, alert int) *entity.Product {
	t.Helper()

	product := &entity.Product{
		Name:          name,
		Quantity:      quantity,
		QuantityAlert: alert,
	}
	product.SetPriceFromDecimal(price)
	require.NoError(t, db.Create(product).Error)
	return product
}
