package services

import (
	"context"
	"log"
	"net/url"
	"time"

	"gorm.io/gorm"

	"hotel-ops-backend/models"
	"hotel-ops-backend/utils"
)

// BookMutableFields are the fields a replacement book may change.
var BookMutableFields = []string{
	"guestId", "roomId", "marketSource", "roomRate", "mealFee", "commission",
	"occupiedDate", "checkIn", "checkOut", "billPayerId",
}

type BookService struct {
	DB       *gorm.DB
	Books    *Repository[models.Book]
	PageSize int
}

func NewBookService(db *gorm.DB, pageSize int) *BookService {
	return &BookService{DB: db, Books: NewRepository[models.Book](db, "book"), PageSize: pageSize}
}

// Create registers a book on behalf of receptionID.
func (s *BookService) Create(ctx context.Context, book *models.Book, receptionID uint) error {
	book.ID = 0
	book.ReceptionID = receptionID
	book.LastUpdatedBy = receptionID
	book.ReplacedBookID = nil
	return s.Books.InsertOne(ctx, book)
}

func (s *BookService) GetByID(ctx context.Context, id uint) (*models.Book, error) {
	return s.Books.GetOneByID(ctx, id)
}

// List returns a 404 when nothing matches.
func (s *BookService) List(ctx context.Context, q url.Values) ([]models.Book, *Filter, int64, error) {
	f := BookFilter(q)
	books, total, err := s.Books.List(ctx, NewListQuery(q, f, BookSortFields, s.PageSize))
	if err != nil {
		return nil, f, 0, err
	}
	if len(books) == 0 {
		return nil, f, total, utils.NotFound("book", "the provided filter")
	}
	return books, f, total, nil
}

// Replace stores a new book carrying the changes and pointing back at id. The old book is
// kept untouched.
func (s *BookService) Replace(ctx context.Context, id uint, changes map[string]any, userID uint) (*models.Book, error) {
	update := map[string]any{}
	for _, field := range BookMutableFields {
		if v, ok := changes[field]; ok && v != nil {
			update[field] = v
		}
	}
	if len(update) == 0 {
		return nil, utils.MissingData("updated info")
	}

	var replacement models.Book
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := NewRepository[models.Book](tx, "book")
		old, err := repo.GetOneByID(ctx, id)
		if err != nil {
			return err
		}

		replacement = *old
		if err := mergeInto(&replacement, update); err != nil {
			return err
		}
		replacement.ApplyDefaults(replacement.BookedAt)

		before, err := toMap(old)
		if err != nil {
			return err
		}
		after, err := toMap(replacement)
		if err != nil {
			return err
		}
		if len(utils.FindDifferences(before, after)) == 0 {
			return utils.MissingData("different from the current data")
		}

		replacement.ID = 0
		replacement.CreatedAt = time.Time{}
		replacement.UpdatedAt = time.Time{}
		replacement.ReplacedBookID = &old.ID
		replacement.ReceptionID = userID
		replacement.LastUpdatedBy = userID
		return repo.InsertOne(ctx, &replacement)
	})
	if err != nil {
		return nil, err
	}
	log.Printf("✅ book %d replaced by %d", id, replacement.ID)
	return &replacement, nil
}
