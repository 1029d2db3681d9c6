package services

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-ops-backend/models"
	"hotel-ops-backend/utils"
)

func TestGuestGetByIDOrIDNumber(t *testing.T) {
	db := newTestDB(t)
	svc := NewGuestService(db, 20)
	guest := models.Guest{FirstName: "a", LastName: "b", PhoneNumber: "+254700000001", IDNumber: "31234567", Nationality: "kenyan"}
	require.NoError(t, svc.Create(ctx, &guest))

	byID, err := svc.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, guest.ID, byID.ID)

	byNumber, err := svc.Get(ctx, "31234567")
	require.NoError(t, err)
	assert.Equal(t, guest.ID, byNumber.ID)

	_, err = svc.Get(ctx, "nope")
	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, utils.ErrNotFound, appErr.Type)
}

func TestGuestUpdateWhere(t *testing.T) {
	db := newTestDB(t)
	svc := NewGuestService(db, 20)
	for i, n := range []string{"+254700000001", "+254700000002"} {
		g := models.Guest{FirstName: "a", LastName: "b", PhoneNumber: n, IDNumber: []string{"A1", "B2"}[i], Nationality: "kenyan"}
		require.NoError(t, svc.Create(ctx, &g))
	}

	_, err := svc.UpdateWhere(ctx, GuestFilter(url.Values{}), map[string]any{"nationality": "Ugandan"})
	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, utils.ErrMissingData, appErr.Type)

	summary, err := svc.UpdateWhere(ctx, GuestFilter(url.Values{"nationality": {"kenyan"}}), map[string]any{"nationality": " Ugandan "})
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.Modified)

	guests, _, _, err := svc.List(ctx, url.Values{"nationality": {"ugandan"}})
	require.NoError(t, err)
	assert.Len(t, guests, 2)

	_, err = svc.UpdateWhere(ctx, GuestFilter(url.Values{"nationality": {"ugandan"}}), map[string]any{"phoneNumber": "bad"})
	assert.Error(t, err)

	// nationality already matches, lastName does not
	summary, err = svc.UpdateWhere(ctx, GuestFilter(url.Values{"idNumber": {"A1"}}),
		map[string]any{"nationality": "ugandan", "lastName": "Smith"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.Modified)

	guest, err := svc.Get(ctx, "A1")
	require.NoError(t, err)
	assert.Equal(t, "smith", guest.LastName)
	assert.Equal(t, "ugandan", guest.Nationality)
}
