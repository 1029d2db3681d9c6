package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"hotel-ops-backend/utils"
)

// Book is a room booking. Updating a book creates a new one pointing back through
// ReplacedBookID.
type Book struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ReceptionID uint   `gorm:"not null;index" json:"receptionId"`
	GuestID     uint   `gorm:"not null;index" json:"guestId"`
	RoomID      uint   `gorm:"not null;index" json:"roomId"`
	BillPayerID uint   `gorm:"not null;index" json:"billPayerId"`
	MealPlan    string `gorm:"type:varchar(30);not null" json:"mealPlan"`

	RoomRate   float64 `gorm:"not null" json:"roomRate"`
	MealFee    float64 `gorm:"not null" json:"mealFee"`
	TotalFee   float64 `gorm:"not null" json:"totalFee"`
	Commission float64 `gorm:"not null" json:"commission"`

	BookedAt     time.Time `gorm:"not null;index" json:"bookedAt"`
	OccupiedDate time.Time `gorm:"not null" json:"occupiedDate"`
	CheckIn      time.Time `gorm:"not null" json:"checkIn"`
	CheckOut     time.Time `gorm:"not null" json:"checkOut"`

	IsSettled      bool  `gorm:"not null" json:"isSettled"`
	ReplacedBookID *uint `gorm:"index" json:"replacedBookId"`
	LastUpdatedBy  uint  `gorm:"not null" json:"lastUpdatedBy"`

	MarketSource string `gorm:"type:varchar(60);not null" json:"marketSource"`
	AgentName    string `gorm:"type:varchar(120)" json:"agentName"`
	AgentContact string `gorm:"type:varchar(60)" json:"agentContact"`
}

// ApplyDefaults fills the derived and defaulted fields of a new book.
func (b *Book) ApplyDefaults(now time.Time) {
	if b.BillPayerID == 0 {
		b.BillPayerID = b.GuestID
	}
	if b.LastUpdatedBy == 0 {
		b.LastUpdatedBy = b.ReceptionID
	}
	for _, t := range []*time.Time{&b.BookedAt, &b.OccupiedDate, &b.CheckIn, &b.CheckOut} {
		if t.IsZero() {
			*t = now
		}
	}
	b.MarketSource = strings.ToLower(strings.TrimSpace(b.MarketSource))
	if b.MarketSource == "" {
		b.MarketSource = "walk-in"
	}
	b.TotalFee = b.RoomRate + b.MealFee
}

// BeforeSave checks the reception, guest, bill payer and room references.
func (b *Book) BeforeSave(tx *gorm.DB) error {
	b.ApplyDefaults(time.Now())

	if _, err := IsValidMealPlan(b.MealPlan, "mealPlan", true); err != nil {
		return err
	}
	if err := checkNonNegative(b.RoomRate, "roomRate"); err != nil {
		return err
	}
	if err := checkNonNegative(b.MealFee, "mealFee"); err != nil {
		return err
	}
	if err := checkNonNegative(b.Commission, "commission"); err != nil {
		return err
	}

	var reception Employee
	err := lookup(tx).Select("id", "role").Where("id = ?", b.ReceptionID).Take(&reception).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NotFound("reception/employee", fmt.Sprintf("id=%d", b.ReceptionID))
	}
	if err != nil {
		return err
	}
	if !reception.CanBook() {
		return utils.Forbidden(fmt.Sprintf("an employee with the role %s is not allowed to register a book.", reception.Role))
	}

	if err := mustExist(tx, &Guest{}, b.GuestID, "guest"); err != nil {
		return err
	}
	if err := mustExist(tx, &Guest{}, b.BillPayerID, "billPayer"); err != nil {
		return err
	}
	return mustExist(tx, &Room{}, b.RoomID, "room")
}
