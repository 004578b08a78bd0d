package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/ufo_delivery/internal/models"
	"github.com/Skotchmaster/ufo_delivery/internal/repo"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection keeps the in-memory database alive across queries
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Item{},
		&models.Category{},
		&models.Order{},
		&models.OrderItem{},
	))

	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

type testEnv struct {
	DB      *gorm.DB
	Repo    *repo.GormRepo
	Users   *UserService
	Auth    *AuthService
	Catalog *CatalogService
	Orders  *OrderService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	r := &repo.GormRepo{DB: db}

	return &testEnv{
		DB:      db,
		Repo:    r,
		Users:   &UserService{Repo: r},
		Auth:    &AuthService{Repo: r, JWTSecret: []byte("test-jwt-secret"), AccessTokenTTL: 15 * time.Minute},
		Catalog: &CatalogService{Repo: r},
		Orders:  &OrderService{Repo: r},
	}
}

func seedItem(t *testing.T, db *gorm.DB, name string, price float64) models.Item {
	t.Helper()

	item := models.Item{
		Name:        name,
		Description: "test_description",
		Price:       price,
		ImagePath:   "/img/" + name + ".png",
		IsAvailable: true,
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func seedCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()

	category := models.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return category
}
