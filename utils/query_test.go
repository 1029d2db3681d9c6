package utils

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBoolean(t *testing.T) {
	tests := []struct {
		in     any
		want   bool
		wantOK bool
	}{
		{"true", true, true},
		{"Yes", true, true},
		{"awo", true, true},
		{"1", true, true},
		{"valid", true, true},
		{"false", false, true},
		{"no", false, true},
		{"", false, false},
		{nil, false, false},
		{true, true, true},
		{0, false, true},
	}
	for _, tt := range tests {
		got, ok := ToBoolean(tt.in)
		assert.Equal(t, tt.want, got, "ToBoolean(%v)", tt.in)
		assert.Equal(t, tt.wantOK, ok, "ToBoolean(%v) ok", tt.in)
	}
}

func TestParseID(t *testing.T) {
	id, ok := ParseID("42")
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)

	for _, bad := range []string{"", "0", "-3", "abc", "1.5"} {
		_, ok := ParseID(bad)
		assert.False(t, ok, bad)
	}
}

func TestToDate(t *testing.T) {
	d, ok := ToDate("2024-05-06")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC), d)

	d, ok = ToDate("2024-05-06T07:08:09Z")
	require.True(t, ok)
	assert.Equal(t, 7, d.Hour())

	_, ok = ToDate("not a date")
	assert.False(t, ok)
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%d%l%x%", ContainsPattern("DLX"))
	assert.Equal(t, "%5%!%%", ContainsPattern("5%"))
	assert.Equal(t, "%a%!_%", ContainsPattern("a_"))
	assert.Equal(t, "%", ContainsPattern("  "))
}

func TestSortFields(t *testing.T) {
	valid := map[string]string{"number": "number", "isClean": "is_clean"}
	got := SortFields([]string{"number,desc", "isClean", "password", "number,reverse"}, valid)
	assert.Equal(t, []SortField{
		{Column: "number", Desc: true},
		{Column: "is_clean"},
		{Column: "number", Desc: true},
	}, got)
}

func TestPage(t *testing.T) {
	offset, limit := Page(url.Values{"page": {"3"}}, 20)
	assert.Equal(t, 40, offset)
	assert.Equal(t, 20, limit)

	offset, limit = Page(url.Values{"page": {"3"}, "skip": {"5"}, "limit": {"2"}}, 20)
	assert.Equal(t, 5, offset)
	assert.Equal(t, 2, limit)

	offset, limit = Page(url.Values{"page": {"zero"}}, 10)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 10, limit)
}

func TestPageClampsLargeValues(t *testing.T) {
	tests := []struct {
		name       string
		q          url.Values
		wantOffset int
		wantLimit  int
	}{
		{"huge page", url.Values{"page": {"1e300"}}, MaxOffset, 20},
		{"huge skip", url.Values{"skip": {"99999999999999999999"}}, MaxOffset, 20},
		{"huge limit", url.Values{"limit": {"1e19"}}, 0, MaxLimit},
		{"infinite limit ignored", url.Values{"limit": {"Inf"}}, 0, 20},
		{"fractional limit", url.Values{"limit": {"0.5"}}, 0, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := Page(tt.q, 20)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestParseNumberRejectsNonFinite(t *testing.T) {
	for _, s := range []string{"NaN", "nan", "Inf", "+Inf", "-Infinity", "1e400"} {
		_, ok := ParseNumber(s)
		assert.False(t, ok, s)
	}
	f, ok := ParseNumber(" -2.5 ")
	require.True(t, ok)
	assert.Equal(t, -2.5, f)
}

func TestFindDifferences(t *testing.T) {
	now := time.Now()
	before := map[string]any{"a": 1.0, "b": "x", "c": []any{1.0}, "d": now}
	after := map[string]any{"a": 1.0, "b": "y", "c": []any{1.0}, "d": now.UTC()}

	diff := FindDifferences(before, after)
	assert.Len(t, diff, 1)
	assert.Equal(t, map[string]any{"from": "x", "to": "y"}, diff["b"])
}
