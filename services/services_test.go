package services

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-ops-backend/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Employee{}, &models.Guest{}, &models.Room{},
		&models.MenuGroup{}, &models.MenuItem{}, &models.Order{}, &models.OrderItem{}, &models.Book{}))
	return db
}

func seedRooms(t *testing.T, db *gorm.DB) []models.Room {
	t.Helper()
	rooms := []models.Room{
		{Number: 101, Floor: 1, Type: models.RoomSingle, IsOccupied: true, IsClean: true},
		{Number: 102, Floor: 1, Type: models.RoomDouble, IsOccupied: false, IsClean: true},
		{Number: 201, Floor: 2, Type: models.RoomSuite, IsOccupied: true, IsClean: true, IsOutOfOrder: true,
			Problems: []string{"broken shower", "no hot water"}},
		{Number: 202, Floor: 2, Type: models.RoomTwin, IsOccupied: true, IsClean: false},
	}
	for i := range rooms {
		require.NoError(t, db.Create(&rooms[i]).Error)
	}
	return rooms
}

var ctx = context.Background()
