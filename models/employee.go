package models

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"hotel-ops-backend/utils"
)

type Employee struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	FirstName   string `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName    string `gorm:"type:varchar(100);not null" json:"lastName"`
	PhoneNumber string `gorm:"type:varchar(20);uniqueIndex;not null" json:"phoneNumber"`
	Password    string `gorm:"type:varchar(100);not null" json:"-"`
	IsAvailable bool   `gorm:"not null" json:"isAvailable"`
	Role        string `gorm:"type:varchar(40);not null;index" json:"role"`
}

// BeforeSave normalizes names, validates phone and role and hashes a plain password.
func (e *Employee) BeforeSave(tx *gorm.DB) error {
	e.FirstName = normalizeName(e.FirstName)
	e.LastName = normalizeName(e.LastName)
	e.PhoneNumber = strings.TrimSpace(e.PhoneNumber)
	e.Role = strings.ToUpper(strings.TrimSpace(e.Role))

	if err := requireText(e.FirstName, "firstName"); err != nil {
		return err
	}
	if err := requireText(e.LastName, "lastName"); err != nil {
		return err
	}
	if err := checkPhone(e.PhoneNumber); err != nil {
		return err
	}
	if _, err := IsValidEmployeeRole(e.Role, "role", true); err != nil {
		return err
	}
	if err := requireText(e.Password, "password"); err != nil {
		return err
	}
	if !utils.IsBcryptHash(e.Password) {
		hash, err := utils.HashPassword(e.Password)
		if err != nil {
			return err
		}
		e.Password = hash
	}
	return nil
}

// CanBook reports whether the employee's role may register books.
func (e *Employee) CanBook() bool {
	for _, r := range BookingRoles {
		if e.Role == r {
			return true
		}
	}
	return false
}
