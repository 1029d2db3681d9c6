package utils

import (
	"math"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

var truthy = map[string]bool{
	"true": true, "yes": true, "yeah": true, "yep": true, "awo": true,
	"correct": true, "valid": true, "1": true,
}

// ToBoolean reads a query/body flag. ok is false when the value is absent, so callers can
// tell "not given" from "false".
func ToBoolean(value any) (b bool, ok bool) {
	switch v := value.(type) {
	case nil:
		return false, false
	case bool:
		return v, true
	case *bool:
		if v == nil {
			return false, false
		}
		return *v, true
	case float64:
		return v > 0, true
	case int:
		return v > 0, true
	case string:
		if v == "" {
			return false, false
		}
		return truthy[strings.ToLower(strings.TrimSpace(v))], true
	}
	return false, false
}

// ParseNumber returns the float value of s when s is a finite number.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return finite(f)
}

// ParseID parses a positive integer identifier.
func ParseID(s string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

var dateConfig = &now.Config{
	WeekStartDay: time.Monday,
	TimeLocation: time.UTC,
	TimeFormats: []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		"2006-01-02",
		"2006/01/02",
	},
}

// ToDate parses s as a date in any of the accepted layouts.
func ToDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := dateConfig.Parse(s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// LikeEscape is the escape character used by patterns from ContainsPattern.
const LikeEscape = "!"

var likeEscaper = strings.NewReplacer(`!`, `!!`, `%`, `!%`, `_`, `!_`)

// ContainsPattern builds a case-insensitive LIKE pattern matching every value whose
// characters appear in order, e.g. "dlx" matches "deluxe".
func ContainsPattern(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return "%"
	}
	var sb strings.Builder
	sb.WriteByte('%')
	for _, r := range value {
		sb.WriteString(likeEscaper.Replace(string(r)))
		sb.WriteByte('%')
	}
	return sb.String()
}

// SortField is one ORDER BY term.
type SortField struct {
	Column string
	Desc   bool
}

var descendingWords = map[string]bool{"desc": true, "-1": true, "reverse": true, "descending": true}

// SortFields reads repeated sort=field[,direction] parameters. Fields not in valid are
// dropped; alias maps a public field name to its column.
func SortFields(values []string, valid map[string]string) []SortField {
	var out []SortField
	for _, raw := range values {
		parts := strings.Split(raw, ",")
		field := strings.TrimSpace(parts[0])
		column, ok := valid[field]
		if !ok {
			continue
		}
		desc := len(parts) > 1 && descendingWords[strings.ToLower(strings.TrimSpace(parts[1]))]
		out = append(out, SortField{Column: column, Desc: desc})
	}
	return out
}

// Paging bounds; larger values are clamped.
const (
	MaxOffset = 1_000_000_000
	MaxLimit  = 1000
)

// Page resolves offset and limit from page, skip and limit parameters. skip/limit win over
// page when both are given.
func Page(q url.Values, pageSize int) (offset, limit int) {
	limit = pageSize
	if p, ok := ParseNumber(q.Get("page")); ok && p >= 1 {
		offset = int(math.Min((p-1)*float64(pageSize), MaxOffset))
	}
	if s, ok := ParseNumber(q.Get("skip")); ok && s >= 0 {
		offset = int(math.Min(s, MaxOffset))
	}
	if l, ok := ParseNumber(q.Get("limit")); ok && l >= 1 {
		limit = int(math.Min(l, MaxLimit))
	}
	return offset, limit
}

// FindDifferences lists the keys whose values differ between before and after.
func FindDifferences(before, after map[string]any) map[string]map[string]any {
	diff := map[string]map[string]any{}
	for k, v := range before {
		if !equalValues(v, after[k]) {
			diff[k] = map[string]any{"from": v, "to": after[k]}
		}
	}
	return diff
}

func equalValues(a, b any) bool {
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Equal(tb)
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}
