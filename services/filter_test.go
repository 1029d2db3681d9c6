package services

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-ops-backend/models"
)

func roomNumbers(rooms []models.Room) []int {
	out := make([]int, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, r.Number)
	}
	return out
}

func TestRoomFilter(t *testing.T) {
	db := newTestDB(t)
	seedRooms(t, db)
	svc := NewRoomService(db, 20)

	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{"no filter", "", []int{101, 102, 201, 202}},
		{"occupied", "isOccupied=true", []int{101, 201, 202}},
		{"vacant", "isOccupied=no", []int{102}},
		{"floor", "floor=2", []int{201, 202}},
		{"number range", "minNumber=102&maxNumber=201", []int{102, 201}},
		{"type", "type=suite", []int{201}},
		{"invalid type ignored", "type=castle", []int{101, 102, 201, 202}},
		{"problems contains", "problems=shower", []int{201}},
		{"combined", "isOccupied=yes&isClean=true&isOutOfOrder=false", []int{101}},
		{"sorted desc", "sort=number,desc", []int{202, 201, 102, 101}},
		{"skip and limit", "sort=number&skip=2&limit=2", []int{201, 202}},
		{"unknown sort ignored", "sort=password", []int{101, 102, 201, 202}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			rooms, _, _, err := svc.List(ctx, q)
			require.NoError(t, err)
			assert.Equal(t, tt.want, roomNumbers(rooms))
		})
	}
}

func TestRoomListTotal(t *testing.T) {
	db := newTestDB(t)
	seedRooms(t, db)
	svc := NewRoomService(db, 2)

	rooms, _, total, err := svc.List(ctx, url.Values{"isOccupied": {"true"}})
	require.NoError(t, err)
	assert.Len(t, rooms, 2, "one page")
	assert.Equal(t, int64(3), total, "every occupied room")

	rooms, _, total, err = svc.List(ctx, url.Values{"isOccupied": {"true"}, "page": {"2"}})
	require.NoError(t, err)
	assert.Equal(t, []int{202}, roomNumbers(rooms))
	assert.Equal(t, int64(3), total)
}

func TestGuestFilterMatchesAnyName(t *testing.T) {
	db := newTestDB(t)
	svc := NewGuestService(db, 20)
	for _, g := range []models.Guest{
		{FirstName: "Amina", LastName: "Otieno", PhoneNumber: "+254700000001", IDNumber: "ID1", Nationality: "kenyan", Balance: 50},
		{FirstName: "John", MiddleName: "Amos", LastName: "Kariuki", PhoneNumber: "+254700000002", IDNumber: "ID2", Nationality: "kenyan", Balance: 150},
		{FirstName: "Eva", LastName: "Smith", PhoneNumber: "+254700000003", IDNumber: "P9", Nationality: "british", Balance: 300},
	} {
		g := g
		require.NoError(t, svc.Create(ctx, &g))
	}

	guests, f, _, err := svc.List(ctx, url.Values{"name": {"am"}})
	require.NoError(t, err)
	assert.Len(t, guests, 2)
	assert.Equal(t, "am", f.Echo()["name"])

	guests, _, _, err = svc.List(ctx, url.Values{"minBalance": {"100"}, "maxBalance": {"300"}})
	require.NoError(t, err)
	assert.Len(t, guests, 2, "both bounds are inclusive")

	guests, _, _, err = svc.List(ctx, url.Values{"nationality": {"BRIT"}})
	require.NoError(t, err)
	require.Len(t, guests, 1)
	assert.Equal(t, "eva", guests[0].FirstName)
}

func TestContainsEscapesWildcards(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuGroupService(db, 20)
	for _, name := range []string{"100% juice", "100 juices"} {
		require.NoError(t, svc.Create(ctx, &models.MenuGroup{Name: name, IsAvailable: true}))
	}

	groups, _, _, err := svc.List(ctx, url.Values{"name": {"0%"}})
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "100% juice", groups[0].Name)
}

func TestFilterEcho(t *testing.T) {
	f := BookFilter(url.Values{"guestId": {"3"}, "mealPlan": {"half_board"}, "minRoomRate": {"10"}, "bogus": {"1"}})
	assert.Equal(t, 3, f.Len())
	assert.Equal(t, uint(3), f.Echo()["guestId"])
	assert.Equal(t, models.MealHalfBoard, f.Echo()["mealPlan"])
	assert.Equal(t, map[string]any{"min": 10.0, "max": nil}, f.Echo()["roomRate"])
}
