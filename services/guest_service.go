package services

import (
	"context"
	"errors"
	"log"
	"net/url"
	"strings"

	"gorm.io/gorm"

	"hotel-ops-backend/models"
	"hotel-ops-backend/utils"
)

// GuestColumns maps updatable guest fields to their columns.
var GuestColumns = map[string]string{
	"firstName":   "first_name",
	"middleName":  "middle_name",
	"lastName":    "last_name",
	"phoneNumber": "phone_number",
	"idNumber":    "id_number",
	"nationality": "nationality",
}

type GuestService struct {
	DB       *gorm.DB
	Guests   *Repository[models.Guest]
	PageSize int
}

func NewGuestService(db *gorm.DB, pageSize int) *GuestService {
	return &GuestService{DB: db, Guests: NewRepository[models.Guest](db, "guest"), PageSize: pageSize}
}

func (s *GuestService) Create(ctx context.Context, guest *models.Guest) error {
	log.Printf("➡️ GuestService.Create idNumber=%s", guest.IDNumber)
	return s.Guests.InsertOne(ctx, guest)
}

// Get resolves key as a numeric id first and falls back to the ID/passport number.
func (s *GuestService) Get(ctx context.Context, key string) (*models.Guest, error) {
	if id, ok := utils.ParseID(key); ok {
		guest, err := s.Guests.GetOneByID(ctx, id)
		if err == nil {
			return guest, nil
		}
		var appErr *utils.AppError
		if !errors.As(err, &appErr) || appErr.Type != utils.ErrNotFound {
			return nil, err
		}
	}

	byNumber := NewFilter().Eq("idNumber", "id_number", strings.TrimSpace(key))
	guest, err := s.Guests.GetOne(ctx, byNumber, 0)
	var appErr *utils.AppError
	if errors.As(err, &appErr) && appErr.Type == utils.ErrNotFound {
		return nil, utils.NotFound("guest", "id or idNumber="+key)
	}
	return guest, err
}

func (s *GuestService) List(ctx context.Context, q url.Values) ([]models.Guest, *Filter, int64, error) {
	f := GuestFilter(q)
	guests, total, err := s.Guests.List(ctx, NewListQuery(q, f, GuestSortFields, s.PageSize))
	return guests, f, total, err
}

func (s *GuestService) Update(ctx context.Context, id uint, changes map[string]any) (*models.Guest, bool, error) {
	return s.Guests.Patch(ctx, id, changes)
}

// UpdateWhere applies changes to every guest matched by f. An empty filter is refused so
// a request can not rewrite every guest at once.
func (s *GuestService) UpdateWhere(ctx context.Context, f *Filter, changes map[string]any) (UpdateSummary, error) {
	if f.Len() == 0 {
		return UpdateSummary{}, utils.MissingData("filter")
	}

	// hooks do not run on filter-wide updates, so normalize here
	var patch models.Guest
	if err := mergeInto(&patch, changes); err != nil {
		return UpdateSummary{}, err
	}
	patch.Normalize()
	normalized, err := toMap(patch)
	if err != nil {
		return UpdateSummary{}, err
	}

	columns := map[string]any{}
	for field := range changes {
		column, ok := GuestColumns[field]
		if !ok {
			continue
		}
		value, _ := normalized[field].(string)
		if value == "" && field != "middleName" {
			return UpdateSummary{}, utils.MissingData(field)
		}
		if field == "phoneNumber" && !models.IsValidPhoneNumber(value) {
			return UpdateSummary{}, utils.InvalidData(
				"phoneNumber: "+value+" is not a valid phone number",
				"phoneNumber must look like +254712345678 or 0712345678.")
		}
		columns[column] = value
	}
	if len(columns) == 0 {
		return UpdateSummary{}, utils.MissingData("updated info")
	}
	return s.Guests.Update(ctx, f, columns)
}

// AdjustBalance adds amount (negative to debit) to the guest's balance.
func (s *GuestService) AdjustBalance(ctx context.Context, id uint, amount float64) (*models.Guest, error) {
	log.Printf("➡️ GuestService.AdjustBalance id=%d amount=%v", id, amount)
	return s.Guests.Increment(ctx, id, "balance", amount)
}
