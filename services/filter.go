package services

import (
	"net/url"
	"strings"
	"time"
	"unicode"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotel-ops-backend/models"
	"hotel-ops-backend/utils"
)

// Filter is an ordered list of WHERE conditions built from request parameters. Every value
// is bound as a parameter; column names only ever come from the translators below.
type Filter struct {
	conds []func(dialect string) clause.Expression
	echo  map[string]any
}

func NewFilter() *Filter {
	return &Filter{echo: map[string]any{}}
}

// Len is the number of conditions.
func (f *Filter) Len() int {
	if f == nil {
		return 0
	}
	return len(f.conds)
}

// Echo returns the accepted parameters, keyed by their public name.
func (f *Filter) Echo() map[string]any {
	if f == nil {
		return map[string]any{}
	}
	return f.echo
}

func (f *Filter) add(key string, value any, cond func(string) clause.Expression) *Filter {
	f.conds = append(f.conds, cond)
	f.echo[key] = value
	return f
}

func (f *Filter) Eq(key, column string, value any) *Filter {
	return f.add(key, value, func(string) clause.Expression {
		return clause.Eq{Column: clause.Column{Name: column}, Value: value}
	})
}

// Range adds min <= column <= max. A nil bound leaves that side open.
func (f *Filter) Range(key, column string, min, max any) *Filter {
	return f.add(key, map[string]any{"min": min, "max": max}, func(string) clause.Expression {
		var exprs []clause.Expression
		if min != nil {
			exprs = append(exprs, clause.Gte{Column: clause.Column{Name: column}, Value: min})
		}
		if max != nil {
			exprs = append(exprs, clause.Lte{Column: clause.Column{Name: column}, Value: max})
		}
		return clause.And(exprs...)
	})
}

// Contains matches column values holding the characters of value in order.
func (f *Filter) Contains(key, column, value string) *Filter {
	return f.add(key, value, func(string) clause.Expression {
		return likeExpr(column, "", utils.ContainsPattern(value))
	})
}

// AnyContains is Contains ORed across several columns.
func (f *Filter) AnyContains(key string, columns []string, value string) *Filter {
	return f.add(key, value, func(string) clause.Expression {
		exprs := make([]clause.Expression, 0, len(columns))
		for _, c := range columns {
			exprs = append(exprs, likeExpr(c, "", utils.ContainsPattern(value)))
		}
		return clause.Or(exprs...)
	})
}

// JSONContains matches against the text of a JSON column.
func (f *Filter) JSONContains(key, column, value string) *Filter {
	return f.add(key, value, func(dialect string) clause.Expression {
		cast := "TEXT"
		if dialect == "mysql" {
			cast = "CHAR"
		}
		return likeExpr(column, cast, utils.ContainsPattern(value))
	})
}

func likeExpr(column, cast, pattern string) clause.Expression {
	target := "?"
	if cast != "" {
		target = "CAST(? AS " + cast + ")"
	}
	return clause.Expr{
		SQL:  "LOWER(" + target + ") LIKE ? ESCAPE '" + utils.LikeEscape + "'",
		Vars: []interface{}{clause.Column{Name: column}, pattern},
	}
}

// Scope applies the filter; use it with db.Scopes.
func (f *Filter) Scope(db *gorm.DB) *gorm.DB {
	if f == nil {
		return db
	}
	dialect := db.Dialector.Name()
	for _, cond := range f.conds {
		db = db.Where(cond(dialect))
	}
	return db
}

// ListQuery bundles the filter, ordering and page of a list request.
type ListQuery struct {
	Filter *Filter
	Sort   []utils.SortField
	Offset int
	Limit  int
}

// NewListQuery reads sort and pagination parameters from q.
func NewListQuery(q url.Values, f *Filter, sortable map[string]string, pageSize int) ListQuery {
	offset, limit := utils.Page(q, pageSize)
	return ListQuery{
		Filter: f,
		Sort:   utils.SortFields(q["sort"], sortable),
		Offset: offset,
		Limit:  limit,
	}
}

// Scope applies filter, order and page.
func (lq ListQuery) Scope(db *gorm.DB) *gorm.DB {
	db = lq.Filter.Scope(db)
	for _, s := range lq.Sort {
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: s.Column}, Desc: s.Desc})
	}
	if len(lq.Sort) == 0 {
		db = db.Order("id")
	}
	if lq.Offset > 0 {
		db = db.Offset(lq.Offset)
	}
	if lq.Limit > 0 {
		db = db.Limit(lq.Limit)
	}
	return db
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// number reads key as an exact value, or minKey/maxKey as a range.
func (f *Filter) number(q url.Values, key, column string) {
	if v, ok := utils.ParseNumber(q.Get(key)); ok {
		f.Eq(key, column, v)
		return
	}
	var min, max any
	if v, ok := utils.ParseNumber(q.Get("min" + upperFirst(key))); ok {
		min = v
	}
	if v, ok := utils.ParseNumber(q.Get("max" + upperFirst(key))); ok {
		max = v
	}
	if min != nil || max != nil {
		f.Range(key, column, min, max)
	}
}

// date reads key as a calendar day, or beforeKey/afterKey as a closed range.
func (f *Filter) date(q url.Values, key, beforeKey, afterKey, column string) {
	if d, ok := utils.ToDate(q.Get(key)); ok {
		day := d.Truncate(24 * time.Hour)
		f.Range(key, column, day, day.Add(24*time.Hour-time.Nanosecond))
		return
	}
	var after, before any
	if d, ok := utils.ToDate(q.Get(afterKey)); ok {
		after = d
	}
	if d, ok := utils.ToDate(q.Get(beforeKey)); ok {
		before = d
	}
	if after != nil || before != nil {
		f.Range(key, column, after, before)
	}
}

func (f *Filter) boolean(q url.Values, key, column string) {
	if b, ok := utils.ToBoolean(q.Get(key)); ok {
		f.Eq(key, column, b)
	}
}

func (f *Filter) id(q url.Values, key, column string) {
	if id, ok := utils.ParseID(q.Get(key)); ok {
		f.Eq(key, column, id)
	}
}

func (f *Filter) text(q url.Values, key, column string) {
	if v := strings.TrimSpace(q.Get(key)); v != "" {
		f.Contains(key, column, v)
	}
}

// enum keeps value only when check accepts it; invalid values are ignored.
func (f *Filter) enum(q url.Values, key, column string, check func(string, string, bool) (bool, error)) {
	v := strings.ToUpper(strings.TrimSpace(q.Get(key)))
	if v == "" {
		return
	}
	if ok, _ := check(v, key, false); ok {
		f.Eq(key, column, v)
	}
}

var RoomSortFields = map[string]string{
	"number": "number", "floor": "floor", "type": "type",
	"isOccupied": "is_occupied", "isClean": "is_clean", "isOutOfOrder": "is_out_of_order",
}

func RoomFilter(q url.Values) *Filter {
	f := NewFilter()
	f.number(q, "number", "number")
	f.number(q, "floor", "floor")
	f.enum(q, "type", "type", models.IsValidRoomType)
	f.boolean(q, "isOccupied", "is_occupied")
	f.boolean(q, "isClean", "is_clean")
	f.boolean(q, "isOutOfOrder", "is_out_of_order")
	if v := strings.TrimSpace(q.Get("problems")); v != "" {
		f.JSONContains("problems", "problems", v)
	}
	return f
}

var GuestSortFields = map[string]string{
	"firstName": "first_name", "lastName": "last_name", "nationality": "nationality",
	"balance": "balance", "createdAt": "created_at",
}

func GuestFilter(q url.Values) *Filter {
	f := NewFilter()
	if v := strings.TrimSpace(q.Get("name")); v != "" {
		f.AnyContains("name", []string{"first_name", "middle_name", "last_name"}, v)
	}
	f.text(q, "phoneNumber", "phone_number")
	f.text(q, "idNumber", "id_number")
	f.text(q, "nationality", "nationality")
	f.number(q, "balance", "balance")
	return f
}

var MenuGroupSortFields = map[string]string{"name": "name", "isAvailable": "is_available"}

func MenuGroupFilter(q url.Values) *Filter {
	f := NewFilter()
	f.text(q, "name", "name")
	f.boolean(q, "isAvailable", "is_available")
	return f
}

var MenuItemSortFields = map[string]string{
	"name": "name", "price": "price", "groupId": "group_id", "isAvailable": "is_available",
}

func MenuItemFilter(q url.Values) *Filter {
	f := NewFilter()
	f.text(q, "name", "name")
	f.boolean(q, "isAvailable", "is_available")
	f.boolean(q, "isAccompaniment", "is_accompaniment")
	f.id(q, "groupId", "group_id")
	f.number(q, "price", "price")
	return f
}

var OrderSortFields = map[string]string{
	"postedAt": "posted_at", "status": "status", "tableNumber": "table_number",
}

func OrderFilter(q url.Values) *Filter {
	f := NewFilter()
	f.id(q, "waiterId", "waiter_id")
	f.id(q, "customerId", "customer_id")
	f.enum(q, "status", "status", models.IsValidOrderStatus)
	f.number(q, "tableNumber", "table_number")
	f.date(q, "postedAt", "postedBefore", "postedAfter", "posted_at")
	return f
}

var BookSortFields = map[string]string{
	"bookedAt": "booked_at", "checkIn": "check_in", "checkOut": "check_out",
	"roomRate": "room_rate", "totalFee": "total_fee",
}

func BookFilter(q url.Values) *Filter {
	f := NewFilter()
	f.id(q, "receptionId", "reception_id")
	f.id(q, "guestId", "guest_id")
	f.id(q, "roomId", "room_id")
	f.id(q, "billPayerId", "bill_payer_id")
	f.text(q, "marketSource", "market_source")
	f.enum(q, "mealPlan", "meal_plan", models.IsValidMealPlan)
	f.boolean(q, "isSettled", "is_settled")
	f.number(q, "roomRate", "room_rate")
	f.number(q, "mealFee", "meal_fee")
	f.number(q, "totalFee", "total_fee")
	f.number(q, "commission", "commission")
	f.date(q, "bookedAt", "bookedBefore", "bookedAfter", "booked_at")
	f.date(q, "occupiedDate", "occupiedBefore", "occupiedAfter", "occupied_date")
	f.date(q, "checkIn", "checkInBefore", "checkInAfter", "check_in")
	f.date(q, "checkOut", "checkOutBefore", "checkOutAfter", "check_out")
	return f
}
