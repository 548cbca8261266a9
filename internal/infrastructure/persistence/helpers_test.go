package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopline/backend/internal/domain/catalog"
	"github.com/shopline/backend/internal/domain/customer"
	"github.com/shopline/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a migrated in-memory sqlite database
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *catalog.Category {
	t.Helper()
	c, err := catalog.NewCategory(name, "")
	require.NoError(t, err)
	c.AssignSlug(catalog.Slugify(name))
	require.NoError(t, NewGormCategoryRepository(db).Save(context.Background(), c))
	return c
}

func seedProduct(t *testing.T, db *gorm.DB, name, price string, category *catalog.Category) *catalog.Product {
	t.Helper()
	var catID *uuid.UUID
	if category != nil {
		catID = &category.ID
	}
	p, err := catalog.NewProduct(name, name+" description", decimal.RequireFromString(price), catID)
	require.NoError(t, err)
	p.AssignSlug(catalog.Slugify(name))
	require.NoError(t, NewGormProductRepository(db).Save(context.Background(), p))
	return p
}

func seedUser(t *testing.T, db *gorm.DB, email string) *customer.User {
	t.Helper()
	u, err := customer.NewUser(email, "user-"+email, "Test", "User", "")
	require.NoError(t, err)
	require.NoError(t, NewGormUserRepository(db).Create(context.Background(), u))
	return u
}

// at returns a fixed timestamp offset by minutes, for ordering assertions
func at(minutes int) time.Time {
	return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(minutes) * time.Minute)
}
