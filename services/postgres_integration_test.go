//go:build integration

package services

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hotel-ops-backend/config"
	"hotel-ops-backend/models"
	"hotel-ops-backend/utils"
)

// setupPostgres starts a throwaway PostgreSQL container and returns a migrated connection.
func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:alpine",
		tcpostgres.WithDatabase("hotel"),
		tcpostgres.WithUsername("hotel"),
		tcpostgres.WithPassword("hotel"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := config.Open(postgres.Open(connStr), config.Settings{DBLogLevel: "silent", DBMaxOpenConns: 5})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func TestPostgres(t *testing.T) {
	db := setupPostgres(t)
	seedRooms(t, db)

	t.Run("json contains", func(t *testing.T) {
		rooms, _, _, err := NewRoomService(db, 20).List(ctx, url.Values{"problems": {"HOT water"}})
		require.NoError(t, err)
		assert.Equal(t, []int{201}, roomNumbers(rooms))
	})

	t.Run("duplicate key", func(t *testing.T) {
		err := db.Create(&models.Room{Number: 101, Floor: 1, Type: models.RoomSingle}).Error
		require.Error(t, err)
		assert.True(t, utils.IsDuplicateKey(err))
		assert.Equal(t, 409, utils.Normalize(err).StatusCode)
	})

	t.Run("bulk update", func(t *testing.T) {
		summary, err := NewHousekeepingService(db).RunTurnDown(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), summary.Matched)
		assert.Equal(t, int64(1), summary.Modified)
	})

	fx := newBookFixture(t, db)

	t.Run("increment", func(t *testing.T) {
		guest, err := NewGuestService(db, 20).AdjustBalance(ctx, fx.guest.ID, 12.5)
		require.NoError(t, err)
		assert.Equal(t, 12.5, guest.Balance)
	})

	t.Run("date filters", func(t *testing.T) {
		svc := NewBookService(db, 20)
		b := fx.book()
		b.CheckIn = time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC)
		b.CheckOut = time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
		require.NoError(t, svc.Create(ctx, b, fx.reception.ID))

		count := func(q url.Values) int64 {
			n, err := svc.Books.Count(ctx, BookFilter(q))
			require.NoError(t, err)
			return n
		}
		assert.Equal(t, int64(1), count(url.Values{"checkIn": {"2026-03-01"}}))
		assert.Equal(t, int64(0), count(url.Values{"checkIn": {"2026-03-02"}}))
		assert.Equal(t, int64(1), count(url.Values{"checkOutAfter": {"2026-03-03"}, "checkOutBefore": {"2026-03-05"}}))
		assert.Equal(t, int64(0), count(url.Values{"checkOutAfter": {"2026-03-05"}}))
	})
}
