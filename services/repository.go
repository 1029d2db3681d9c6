package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotel-ops-backend/utils"
)

// UpdateResult is the outcome of UpdateOneByID.
type UpdateResult int

const (
	UpdateNotFound UpdateResult = iota
	UpdateUnchanged
	Updated
)

// UpdateSummary reports a filter-wide update.
type UpdateSummary struct {
	Matched  int64  `json:"matched"`
	Modified int64  `json:"modified"`
	IDs      []uint `json:"ids"`
}

// Repository is the shared data access layer of every resource. Name is used in
// not-found messages.
type Repository[T any] struct {
	DB   *gorm.DB
	Name string
}

func NewRepository[T any](db *gorm.DB, name string) *Repository[T] {
	return &Repository[T]{DB: db, Name: name}
}

func (r *Repository[T]) db(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx)
}

func (r *Repository[T]) notFound(id uint) *utils.AppError {
	return utils.NotFound(r.Name, fmt.Sprintf("id=%d", id))
}

// InsertOne inserts row and its associations; hooks run first.
func (r *Repository[T]) InsertOne(ctx context.Context, row *T) error {
	return r.db(ctx).Create(row).Error
}

func (r *Repository[T]) GetOneByID(ctx context.Context, id uint, preload ...string) (*T, error) {
	q := r.db(ctx)
	for _, p := range preload {
		q = q.Preload(p)
	}
	var row T
	if err := q.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, r.notFound(id)
		}
		return nil, err
	}
	return &row, nil
}

func (r *Repository[T]) GetManyByIDs(ctx context.Context, ids []uint) ([]T, error) {
	rows := []T{}
	if len(ids) == 0 {
		return rows, nil
	}
	err := r.db(ctx).Where("id IN ?", ids).Order("id").Find(&rows).Error
	return rows, err
}

// GetOne returns the row at position skip among those matching f.
func (r *Repository[T]) GetOne(ctx context.Context, f *Filter, skip int) (*T, error) {
	var row T
	err := r.db(ctx).Scopes(f.Scope).Order("id").Offset(skip).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound(r.Name, "the provided filter")
		}
		return nil, err
	}
	return &row, nil
}

func (r *Repository[T]) GetMany(ctx context.Context, lq ListQuery, preload ...string) ([]T, error) {
	q := r.db(ctx).Scopes(lq.Scope)
	for _, p := range preload {
		q = q.Preload(p)
	}
	rows := []T{}
	err := q.Find(&rows).Error
	return rows, err
}

// List returns one page of rows with the number of rows matching the filter across all
// pages.
func (r *Repository[T]) List(ctx context.Context, lq ListQuery, preload ...string) ([]T, int64, error) {
	rows, err := r.GetMany(ctx, lq, preload...)
	if err != nil {
		return nil, 0, err
	}
	total, err := r.Count(ctx, lq.Filter)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *Repository[T]) Count(ctx context.Context, f *Filter) (int64, error) {
	var n int64
	err := r.db(ctx).Model(new(T)).Scopes(f.Scope).Count(&n).Error
	return n, err
}

// UpdateOneByID merges changes (keyed by JSON field name) into the stored row and saves it
// when anything differs. The row's hooks run on the merged value.
func (r *Repository[T]) UpdateOneByID(ctx context.Context, id uint, changes map[string]any) (UpdateResult, *T, error) {
	q := r.db(ctx)
	var row T
	if err := q.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UpdateNotFound, nil, nil
		}
		return UpdateNotFound, nil, err
	}

	before, err := toMap(row)
	if err != nil {
		return UpdateNotFound, nil, err
	}
	if err := mergeInto(&row, changes); err != nil {
		return UpdateNotFound, nil, err
	}
	after, err := toMap(row)
	if err != nil {
		return UpdateNotFound, nil, err
	}
	if len(utils.FindDifferences(before, after)) == 0 {
		return UpdateUnchanged, &row, nil
	}

	if err := q.Omit(clause.Associations).Save(&row).Error; err != nil {
		return UpdateNotFound, nil, err
	}
	return Updated, &row, nil
}

// Update sets columns on every row matching f. Rows already holding the values are
// counted as matched but not modified. Hooks do not run.
func (r *Repository[T]) Update(ctx context.Context, f *Filter, columns map[string]any) (UpdateSummary, error) {
	q := r.db(ctx)
	summary := UpdateSummary{IDs: []uint{}}

	var matched []uint
	if err := q.Model(new(T)).Scopes(f.Scope).Pluck("id", &matched).Error; err != nil {
		return summary, err
	}
	summary.Matched = int64(len(matched))
	if len(matched) == 0 {
		return summary, nil
	}

	var changed []uint
	if err := q.Model(new(T)).Where("id IN ?", matched).Where(differsFrom(columns)).Pluck("id", &changed).Error; err != nil {
		return summary, err
	}
	if len(changed) == 0 {
		return summary, nil
	}

	values := make(map[string]any, len(columns)+1)
	for k, v := range columns {
		values[k] = v
	}
	values["updated_at"] = time.Now()
	res := q.Model(new(T)).Session(&gorm.Session{SkipHooks: true}).Where("id IN ?", changed).Updates(values)
	if res.Error != nil {
		return summary, res.Error
	}
	summary.Modified = res.RowsAffected
	summary.IDs = changed
	return summary, nil
}

// differsFrom matches rows where at least one column does not hold its new value. NULL
// counts as different.
func differsFrom(columns map[string]any) clause.Expression {
	names := make([]string, 0, len(columns))
	for name := range columns {
		names = append(names, name)
	}
	sort.Strings(names)

	exprs := make([]clause.Expression, 0, len(names)*2)
	for _, name := range names {
		col := clause.Column{Name: name}
		exprs = append(exprs, clause.Neq{Column: col, Value: columns[name]}, clause.Eq{Column: col, Value: nil})
	}
	return clause.Or(exprs...)
}

// Increment adds amount to a numeric column of one row.
func (r *Repository[T]) Increment(ctx context.Context, id uint, column string, amount float64) (*T, error) {
	res := r.db(ctx).Model(new(T)).Where("id = ?", id).UpdateColumns(map[string]any{
		column:       gorm.Expr("? + ?", clause.Column{Name: column}, amount),
		"updated_at": time.Now(),
	})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, r.notFound(id)
	}
	return r.GetOneByID(ctx, id)
}

// mergeInto copies the JSON-named values of changes onto dst.
func mergeInto(dst any, changes map[string]any) error {
	raw, err := json.Marshal(changes)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

func toMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	err = json.Unmarshal(raw, &out)
	return out, err
}

// Patch is UpdateOneByID with a missing row reported as a 404. modified is false when the
// changes matched the stored values.
func (r *Repository[T]) Patch(ctx context.Context, id uint, changes map[string]any) (row *T, modified bool, err error) {
	res, row, err := r.UpdateOneByID(ctx, id, changes)
	if err != nil {
		return nil, false, err
	}
	if res == UpdateNotFound {
		return nil, false, r.notFound(id)
	}
	return row, res == Updated, nil
}
