package models

import (
	"errors"
	"net/http"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-ops-backend/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&Employee{}, &Guest{}, &Room{}, &MenuGroup{}, &MenuItem{}, &Order{}, &OrderItem{}, &Book{}))
	return db
}

func requireAppError(t *testing.T, err error, wantType utils.ErrorType, wantStatus int) {
	t.Helper()
	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, wantType, appErr.Type)
	assert.Equal(t, wantStatus, appErr.StatusCode)
}

func TestEmployeeHashesPassword(t *testing.T) {
	db := newTestDB(t)
	e := Employee{FirstName: " Jane ", LastName: "DOE", PhoneNumber: "+254711111111", Password: "secret1", Role: "reception"}
	require.NoError(t, db.Create(&e).Error)

	assert.Equal(t, "jane", e.FirstName)
	assert.Equal(t, RoleReception, e.Role)
	assert.True(t, utils.IsBcryptHash(e.Password))
	hash := e.Password

	// saving again must not hash the hash
	require.NoError(t, db.Save(&e).Error)
	assert.Equal(t, hash, e.Password)
	assert.True(t, utils.CheckPasswordHash("secret1", e.Password))
}

func TestEmployeeRejectsBadInput(t *testing.T) {
	db := newTestDB(t)

	err := db.Create(&Employee{FirstName: "a", LastName: "b", PhoneNumber: "call me", Password: "x", Role: RoleAdmin}).Error
	requireAppError(t, err, utils.ErrInvalidData, http.StatusBadRequest)

	err = db.Create(&Employee{FirstName: "a", LastName: "b", PhoneNumber: "0711111111", Password: "x", Role: "CHEF"}).Error
	requireAppError(t, err, utils.ErrIncorrectData, http.StatusUnprocessableEntity)
}

func TestRoomDefaultsProblems(t *testing.T) {
	db := newTestDB(t)
	r := Room{Number: 101, Floor: 1, Type: "single"}
	require.NoError(t, db.Create(&r).Error)
	assert.Equal(t, RoomSingle, r.Type)
	assert.NotNil(t, r.Problems)

	err := db.Create(&Room{Number: -1, Floor: 1, Type: RoomSingle}).Error
	requireAppError(t, err, utils.ErrInvalidData, http.StatusBadRequest)
}

func TestMenuItemChecksReferences(t *testing.T) {
	db := newTestDB(t)

	err := db.Create(&MenuItem{Name: "chips", Price: 100, GroupID: 9}).Error
	requireAppError(t, err, utils.ErrNotFound, http.StatusNotFound)

	group := MenuGroup{Name: "Sides", IsAvailable: true}
	require.NoError(t, db.Create(&group).Error)
	assert.Equal(t, "sides", group.Name)

	chips := MenuItem{Name: "Chips", Price: 100, GroupID: group.ID, IsAccompaniment: true}
	require.NoError(t, db.Create(&chips).Error)
	salad := MenuItem{Name: "Salad", Price: 80, GroupID: group.ID}
	require.NoError(t, db.Create(&salad).Error)

	err = db.Create(&MenuItem{Name: "fish", Price: 500, GroupID: group.ID,
		Accompaniments: datatypes.JSONSlice[uint]{salad.ID}}).Error
	requireAppError(t, err, utils.ErrInvalidData, http.StatusBadRequest)

	err = db.Create(&MenuItem{Name: "fish", Price: 500, GroupID: group.ID,
		Accompaniments: datatypes.JSONSlice[uint]{999}}).Error
	requireAppError(t, err, utils.ErrNotFound, http.StatusNotFound)

	fish := MenuItem{Name: "fish", Price: 500, GroupID: group.ID, Accompaniments: datatypes.JSONSlice[uint]{chips.ID}}
	require.NoError(t, db.Create(&fish).Error)
	assert.True(t, fish.HasAccompaniment(chips.ID))
}

func TestOrderChecksReferences(t *testing.T) {
	db := newTestDB(t)
	waiter := Employee{FirstName: "w", LastName: "w", PhoneNumber: "+254722222222", Password: "secret1", Role: RoleWaiter}
	require.NoError(t, db.Create(&waiter).Error)
	group := MenuGroup{Name: "mains"}
	require.NoError(t, db.Create(&group).Error)
	chips := MenuItem{Name: "chips", Price: 100, GroupID: group.ID, IsAccompaniment: true}
	require.NoError(t, db.Create(&chips).Error)
	fish := MenuItem{Name: "fish", Price: 500, GroupID: group.ID, Accompaniments: datatypes.JSONSlice[uint]{chips.ID}}
	require.NoError(t, db.Create(&fish).Error)

	err := db.Create(&Order{WaiterID: 99, Items: []OrderItem{{ItemID: fish.ID}}}).Error
	requireAppError(t, err, utils.ErrNotFound, http.StatusNotFound)

	missing := uint(77)
	err = db.Create(&Order{WaiterID: waiter.ID, CustomerID: &missing, Items: []OrderItem{{ItemID: fish.ID}}}).Error
	requireAppError(t, err, utils.ErrNotFound, http.StatusNotFound)

	err = db.Create(&Order{WaiterID: waiter.ID, Items: []OrderItem{{ItemID: 12345}}}).Error
	requireAppError(t, err, utils.ErrNotFound, http.StatusNotFound)

	err = db.Create(&Order{WaiterID: waiter.ID, Items: []OrderItem{{ItemID: chips.ID, AccompanimentID: &fish.ID}}}).Error
	requireAppError(t, err, utils.ErrInvalidData, http.StatusBadRequest)

	var count int64
	require.NoError(t, db.Model(&Order{}).Count(&count).Error)
	assert.Zero(t, count, "failed orders must be rolled back")

	order := Order{WaiterID: waiter.ID, TableNumber: 4, Items: []OrderItem{{ItemID: fish.ID, AccompanimentID: &chips.ID}}}
	require.NoError(t, db.Create(&order).Error)
	assert.Equal(t, OrderPending, order.Status)
	assert.False(t, order.PostedAt.IsZero())
	assert.Equal(t, ItemPending, order.Items[0].Status)
	assert.Equal(t, 500.0, order.Items[0].Price)
}

func TestBookChecksReceptionRole(t *testing.T) {
	db := newTestDB(t)
	reception := Employee{FirstName: "r", LastName: "r", PhoneNumber: "+254733333333", Password: "secret1", Role: RoleReception}
	waiter := Employee{FirstName: "w", LastName: "w", PhoneNumber: "+254744444444", Password: "secret1", Role: RoleWaiter}
	require.NoError(t, db.Create(&reception).Error)
	require.NoError(t, db.Create(&waiter).Error)
	guest := Guest{FirstName: "g", LastName: "g", PhoneNumber: "+254755555555", IDNumber: "A1", Nationality: "Kenyan"}
	require.NoError(t, db.Create(&guest).Error)
	room := Room{Number: 1, Floor: 0, Type: RoomDouble}
	require.NoError(t, db.Create(&room).Error)

	err := db.Create(&Book{ReceptionID: waiter.ID, GuestID: guest.ID, RoomID: room.ID, MealPlan: MealRoomOnly, RoomRate: 10}).Error
	requireAppError(t, err, utils.ErrUnauthorized, http.StatusForbidden)

	err = db.Create(&Book{ReceptionID: reception.ID, GuestID: guest.ID, RoomID: 404, MealPlan: MealRoomOnly, RoomRate: 10}).Error
	requireAppError(t, err, utils.ErrNotFound, http.StatusNotFound)

	err = db.Create(&Book{ReceptionID: reception.ID, GuestID: guest.ID, BillPayerID: 404, RoomID: room.ID, MealPlan: MealRoomOnly, RoomRate: 10}).Error
	requireAppError(t, err, utils.ErrNotFound, http.StatusNotFound)

	book := Book{ReceptionID: reception.ID, GuestID: guest.ID, RoomID: room.ID, MealPlan: MealHalfBoard, RoomRate: 100, MealFee: 25, MarketSource: " Booking.com "}
	require.NoError(t, db.Create(&book).Error)
	assert.Equal(t, 125.0, book.TotalFee)
	assert.Equal(t, guest.ID, book.BillPayerID)
	assert.Equal(t, reception.ID, book.LastUpdatedBy)
	assert.Equal(t, "booking.com", book.MarketSource)
	assert.False(t, book.CheckIn.IsZero())
}
