package models

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-ops-backend/utils"
)

type MenuItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name            string  `gorm:"type:varchar(120);uniqueIndex;not null" json:"name"`
	Price           float64 `gorm:"not null" json:"price"`
	GroupID         uint    `gorm:"not null;index" json:"groupId"`
	IsAccompaniment bool    `gorm:"not null;index" json:"isAccompaniment"`
	IsAvailable     bool    `gorm:"not null" json:"isAvailable"`

	// ids of items that may be served alongside this one
	Accompaniments datatypes.JSONSlice[uint] `json:"accompaniments"`
}

// HasAccompaniment reports whether id is listed in the item's accompaniments.
func (m *MenuItem) HasAccompaniment(id uint) bool {
	for _, a := range m.Accompaniments {
		if a == id {
			return true
		}
	}
	return false
}

// BeforeSave checks the group reference and that every accompaniment is a menu item
// flagged as an accompaniment.
func (m *MenuItem) BeforeSave(tx *gorm.DB) error {
	m.Name = normalizeName(m.Name)
	if err := requireText(m.Name, "name"); err != nil {
		return err
	}
	if err := checkNonNegative(m.Price, "price"); err != nil {
		return err
	}
	if m.GroupID == 0 {
		return utils.MissingData("groupId")
	}
	if err := mustExist(tx, &MenuGroup{}, m.GroupID, "menu group"); err != nil {
		return err
	}
	if m.Accompaniments == nil {
		m.Accompaniments = datatypes.JSONSlice[uint]{}
	}
	if len(m.Accompaniments) == 0 {
		return nil
	}

	var found []MenuItem
	if err := lookup(tx).Select("id", "is_accompaniment").
		Where("id IN ?", []uint(m.Accompaniments)).Find(&found).Error; err != nil {
		return err
	}
	byID := make(map[uint]bool, len(found))
	for _, f := range found {
		byID[f.ID] = f.IsAccompaniment
	}
	for _, id := range m.Accompaniments {
		isAcc, ok := byID[id]
		if !ok {
			return utils.NotFound("accompaniment", fmt.Sprintf("id=%d", id))
		}
		if !isAcc {
			return utils.InvalidData(
				fmt.Sprintf("menu item %d is not an accompaniment", id),
				fmt.Sprintf("the menu item with id=%d is not flagged as an accompaniment. provide a valid accompaniment id and try again.", id))
		}
	}
	return nil
}
