package services

import (
	"context"
	"net/url"

	"gorm.io/gorm"

	"hotel-ops-backend/models"
)

type RoomService struct {
	DB       *gorm.DB
	Rooms    *Repository[models.Room]
	PageSize int
}

func NewRoomService(db *gorm.DB, pageSize int) *RoomService {
	return &RoomService{DB: db, Rooms: NewRepository[models.Room](db, "room"), PageSize: pageSize}
}

func (s *RoomService) Create(ctx context.Context, room *models.Room) error {
	return s.Rooms.InsertOne(ctx, room)
}

func (s *RoomService) GetByID(ctx context.Context, id uint) (*models.Room, error) {
	return s.Rooms.GetOneByID(ctx, id)
}

func (s *RoomService) List(ctx context.Context, q url.Values) ([]models.Room, *Filter, int64, error) {
	f := RoomFilter(q)
	rooms, total, err := s.Rooms.List(ctx, NewListQuery(q, f, RoomSortFields, s.PageSize))
	return rooms, f, total, err
}

// Update applies changes keyed by JSON field name (number, floor, type, flags, problems).
func (s *RoomService) Update(ctx context.Context, id uint, changes map[string]any) (*models.Room, bool, error) {
	return s.Rooms.Patch(ctx, id, changes)
}

// UpdateStatusWhere sets status columns on every room matched by f.
func (s *RoomService) UpdateStatusWhere(ctx context.Context, f *Filter, columns map[string]any) (UpdateSummary, error) {
	return s.Rooms.Update(ctx, f, columns)
}
