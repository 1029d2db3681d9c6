package services

import (
	"context"
	"net/url"

	"gorm.io/gorm"

	"hotel-ops-backend/models"
)

type MenuGroupService struct {
	Groups   *Repository[models.MenuGroup]
	PageSize int
}

func NewMenuGroupService(db *gorm.DB, pageSize int) *MenuGroupService {
	return &MenuGroupService{Groups: NewRepository[models.MenuGroup](db, "menu group"), PageSize: pageSize}
}

func (s *MenuGroupService) Create(ctx context.Context, group *models.MenuGroup) error {
	return s.Groups.InsertOne(ctx, group)
}

func (s *MenuGroupService) GetByID(ctx context.Context, id uint) (*models.MenuGroup, error) {
	return s.Groups.GetOneByID(ctx, id)
}

func (s *MenuGroupService) List(ctx context.Context, q url.Values) ([]models.MenuGroup, *Filter, int64, error) {
	f := MenuGroupFilter(q)
	groups, total, err := s.Groups.List(ctx, NewListQuery(q, f, MenuGroupSortFields, s.PageSize))
	return groups, f, total, err
}

func (s *MenuGroupService) Update(ctx context.Context, id uint, changes map[string]any) (*models.MenuGroup, bool, error) {
	return s.Groups.Patch(ctx, id, changes)
}

type MenuItemService struct {
	Items    *Repository[models.MenuItem]
	PageSize int
}

func NewMenuItemService(db *gorm.DB, pageSize int) *MenuItemService {
	return &MenuItemService{Items: NewRepository[models.MenuItem](db, "menu item"), PageSize: pageSize}
}

// Create inserts item; the model hook checks the group and accompaniments.
func (s *MenuItemService) Create(ctx context.Context, item *models.MenuItem) error {
	return s.Items.InsertOne(ctx, item)
}

func (s *MenuItemService) GetByID(ctx context.Context, id uint) (*models.MenuItem, error) {
	return s.Items.GetOneByID(ctx, id)
}

// Accompaniments resolves the accompaniment ids of item.
func (s *MenuItemService) Accompaniments(ctx context.Context, item *models.MenuItem) ([]models.MenuItem, error) {
	return s.Items.GetManyByIDs(ctx, []uint(item.Accompaniments))
}

func (s *MenuItemService) List(ctx context.Context, q url.Values) ([]models.MenuItem, *Filter, int64, error) {
	f := MenuItemFilter(q)
	items, total, err := s.Items.List(ctx, NewListQuery(q, f, MenuItemSortFields, s.PageSize))
	return items, f, total, err
}

func (s *MenuItemService) Update(ctx context.Context, id uint, changes map[string]any) (*models.MenuItem, bool, error) {
	return s.Items.Patch(ctx, id, changes)
}
