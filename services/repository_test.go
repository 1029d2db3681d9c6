package services

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-ops-backend/models"
	"hotel-ops-backend/utils"
)

func TestRepositoryReads(t *testing.T) {
	db := newTestDB(t)
	rooms := seedRooms(t, db)
	repo := NewRepository[models.Room](db, "room")

	got, err := repo.GetOneByID(ctx, rooms[1].ID)
	require.NoError(t, err)
	assert.Equal(t, 102, got.Number)

	_, err = repo.GetOneByID(ctx, 999)
	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode)

	many, err := repo.GetManyByIDs(ctx, []uint{rooms[3].ID, rooms[0].ID, 999})
	require.NoError(t, err)
	assert.Equal(t, []int{101, 202}, roomNumbers(many))

	occupied := NewFilter().Eq("isOccupied", "is_occupied", true)
	n, err := repo.Count(ctx, occupied)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	second, err := repo.GetOne(ctx, occupied, 1)
	require.NoError(t, err)
	assert.Equal(t, 201, second.Number)

	_, err = repo.GetOne(ctx, occupied, 10)
	assert.Error(t, err)
}

func TestUpdateOneByID(t *testing.T) {
	db := newTestDB(t)
	rooms := seedRooms(t, db)
	repo := NewRepository[models.Room](db, "room")

	res, _, err := repo.UpdateOneByID(ctx, 999, map[string]any{"floor": 3})
	require.NoError(t, err)
	assert.Equal(t, UpdateNotFound, res)

	res, _, err = repo.UpdateOneByID(ctx, rooms[0].ID, map[string]any{"floor": 1})
	require.NoError(t, err)
	assert.Equal(t, UpdateUnchanged, res)

	res, room, err := repo.UpdateOneByID(ctx, rooms[0].ID, map[string]any{"floor": 3, "type": "suite"})
	require.NoError(t, err)
	assert.Equal(t, Updated, res)
	assert.Equal(t, models.RoomSuite, room.Type)

	stored, err := repo.GetOneByID(ctx, rooms[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Floor)

	// hooks run on the merged row
	_, _, err = repo.UpdateOneByID(ctx, rooms[0].ID, map[string]any{"type": "castle"})
	assert.Error(t, err)
}

func TestUpdateByFilter(t *testing.T) {
	db := newTestDB(t)
	seedRooms(t, db)
	repo := NewRepository[models.Room](db, "room")

	summary, err := repo.Update(ctx, NewFilter().Eq("floor", "floor", 2), map[string]any{"is_clean": false})
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.Matched)
	assert.Equal(t, int64(1), summary.Modified, "room 202 was already dirty")
	assert.Len(t, summary.IDs, 1)

	summary, err = repo.Update(ctx, NewFilter().Eq("floor", "floor", 9), map[string]any{"is_clean": false})
	require.NoError(t, err)
	assert.Zero(t, summary.Matched)
}

func TestUpdateByFilterSeveralColumns(t *testing.T) {
	db := newTestDB(t)
	seedRooms(t, db)
	repo := NewRepository[models.Room](db, "room")

	// room 101 is already occupied; only is_clean changes
	f := NewFilter().Eq("number", "number", 101)
	summary, err := repo.Update(ctx, f, map[string]any{"is_occupied": true, "is_clean": false})
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.Matched)
	assert.Equal(t, int64(1), summary.Modified)

	var room models.Room
	require.NoError(t, db.Where("number = ?", 101).Take(&room).Error)
	assert.True(t, room.IsOccupied)
	assert.False(t, room.IsClean)

	summary, err = repo.Update(ctx, f, map[string]any{"is_occupied": true, "is_clean": false})
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.Matched)
	assert.Zero(t, summary.Modified)
}

func TestIncrement(t *testing.T) {
	db := newTestDB(t)
	svc := NewGuestService(db, 20)
	guest := models.Guest{FirstName: "a", LastName: "b", PhoneNumber: "+254700000001", IDNumber: "X1", Nationality: "kenyan"}
	require.NoError(t, svc.Create(ctx, &guest))

	updated, err := svc.AdjustBalance(ctx, guest.ID, 250)
	require.NoError(t, err)
	assert.Equal(t, 250.0, updated.Balance)

	updated, err = svc.AdjustBalance(ctx, guest.ID, -100.5)
	require.NoError(t, err)
	assert.Equal(t, 149.5, updated.Balance)

	_, err = svc.AdjustBalance(ctx, 999, 1)
	assert.Error(t, err)
}
