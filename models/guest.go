package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Guest struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	FirstName   string `gorm:"type:varchar(100);not null" json:"firstName"`
	MiddleName  string `gorm:"type:varchar(100)" json:"middleName"`
	LastName    string `gorm:"type:varchar(100);not null" json:"lastName"`
	PhoneNumber string `gorm:"type:varchar(20);uniqueIndex;not null" json:"phoneNumber"`

	// ID card or passport number
	IDNumber    string `gorm:"column:id_number;type:varchar(50);uniqueIndex;not null" json:"idNumber"`
	Nationality string `gorm:"type:varchar(60);not null" json:"nationality"`

	Balance   float64 `gorm:"not null;default:0" json:"balance"`
	PrePaid   float64 `gorm:"not null;default:0" json:"prePaid"`
	PaidOnUse float64 `gorm:"not null;default:0" json:"paidOnUse"`
	PostPaid  float64 `gorm:"not null;default:0" json:"postPaid"`
}

func (g *Guest) BeforeSave(tx *gorm.DB) error {
	g.Normalize()
	if err := requireText(g.FirstName, "firstName"); err != nil {
		return err
	}
	if err := requireText(g.LastName, "lastName"); err != nil {
		return err
	}
	if err := requireText(g.IDNumber, "idNumber"); err != nil {
		return err
	}
	if err := requireText(g.Nationality, "nationality"); err != nil {
		return err
	}
	return checkPhone(g.PhoneNumber)
}

// Normalize trims every text field and lowercases names and nationality.
func (g *Guest) Normalize() {
	g.FirstName = normalizeName(g.FirstName)
	g.MiddleName = normalizeName(g.MiddleName)
	g.LastName = normalizeName(g.LastName)
	g.Nationality = normalizeName(g.Nationality)
	g.PhoneNumber = strings.TrimSpace(g.PhoneNumber)
	g.IDNumber = strings.TrimSpace(g.IDNumber)
}
