package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-ops-backend/models"
	"hotel-ops-backend/services"
	"hotel-ops-backend/utils"
)

type BookController struct {
	BookSvc *services.BookService
}

func NewBookController(svc *services.BookService) *BookController {
	return &BookController{BookSvc: svc}
}

type bookInput struct {
	GuestID      uint     `json:"guestId" binding:"required"`
	RoomID       uint     `json:"roomId" binding:"required"`
	BillPayerID  uint     `json:"billPayerId"`
	MealPlan     string   `json:"mealPlan" binding:"required"`
	RoomRate     *float64 `json:"roomRate" binding:"required,gte=0"`
	MealFee      float64  `json:"mealFee" binding:"gte=0"`
	Commission   float64  `json:"commission" binding:"gte=0"`
	OccupiedDate *string  `json:"occupiedDate"`
	CheckIn      *string  `json:"checkIn"`
	CheckOut     *string  `json:"checkOut"`
	MarketSource string   `json:"marketSource"`
	AgentName    string   `json:"agentName"`
	AgentContact string   `json:"agentContact"`
}

type bookPatch struct {
	GuestID      *uint    `json:"guestId,omitempty"`
	RoomID       *uint    `json:"roomId,omitempty"`
	BillPayerID  *uint    `json:"billPayerId,omitempty"`
	MarketSource *string  `json:"marketSource,omitempty"`
	RoomRate     *float64 `json:"roomRate,omitempty"`
	MealFee      *float64 `json:"mealFee,omitempty"`
	Commission   *float64 `json:"commission,omitempty"`
	OccupiedDate *string  `json:"occupiedDate,omitempty"`
	CheckIn      *string  `json:"checkIn,omitempty"`
	CheckOut     *string  `json:"checkOut,omitempty"`
}

// CreateBook (POST /book). The caller is recorded as the reception employee.
func (ctrl *BookController) CreateBook(c *gin.Context) {
	var in bookInput
	if !bind(c, &in) {
		return
	}
	book := models.Book{
		GuestID:      in.GuestID,
		RoomID:       in.RoomID,
		BillPayerID:  in.BillPayerID,
		MealPlan:     in.MealPlan,
		RoomRate:     *in.RoomRate,
		MealFee:      in.MealFee,
		Commission:   in.Commission,
		MarketSource: in.MarketSource,
		AgentName:    in.AgentName,
		AgentContact: in.AgentContact,
	}
	dates := []struct {
		value *string
		name  string
		dst   *time.Time
	}{
		{in.OccupiedDate, "occupiedDate", &book.OccupiedDate},
		{in.CheckIn, "checkIn", &book.CheckIn},
		{in.CheckOut, "checkOut", &book.CheckOut},
	}
	for _, d := range dates {
		t, err := parseDate(d.value, d.name)
		if err != nil {
			fail(c, err)
			return
		}
		if t != nil {
			*d.dst = *t
		}
	}

	if err := ctrl.BookSvc.Create(c.Request.Context(), &book, userID(c)); err != nil {
		fail(c, err)
		return
	}
	created(c, book.ID, book)
}

// GetBook (GET /book/:id)
func (ctrl *BookController) GetBook(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	book, err := ctrl.BookSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, book)
}

// GetBooks (GET /book)
func (ctrl *BookController) GetBooks(c *gin.Context) {
	books, f, total, err := ctrl.BookSvc.List(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		fail(c, err)
		return
	}
	listed(c, books, len(books), total, f)
}

// UpdateBook (PATCH /book/:id) stores a replacement book instead of editing in place.
func (ctrl *BookController) UpdateBook(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in bookPatch
	changes, ok := patchBody(c, &in)
	if !ok {
		return
	}
	for _, name := range []string{"occupiedDate", "checkIn", "checkOut"} {
		s, isString := changes[name].(string)
		if !isString {
			continue
		}
		t, err := parseDate(&s, name)
		if err != nil {
			fail(c, err)
			return
		}
		changes[name] = t
	}

	book, err := ctrl.BookSvc.Replace(c.Request.Context(), id, changes, userID(c))
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"updatedBook": book,
		"update":      changes,
		"filter":      gin.H{"id": id},
	})
}
