package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-ops-backend/utils"
)

type Room struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Number int    `gorm:"uniqueIndex;not null" json:"number"`
	Floor  int    `gorm:"not null;index" json:"floor"`
	Type   string `gorm:"type:varchar(20);not null" json:"type"`

	IsOccupied   bool `gorm:"not null;index" json:"isOccupied"`
	IsClean      bool `gorm:"not null" json:"isClean"`
	IsOutOfOrder bool `gorm:"not null" json:"isOutOfOrder"`

	Problems datatypes.JSONSlice[string] `json:"problems"`
}

func (r *Room) BeforeSave(tx *gorm.DB) error {
	if r.Number <= 0 {
		return utils.InvalidData(
			fmt.Sprintf("number: %d is not a valid room number", r.Number),
			"number must be a positive integer.")
	}
	r.Type = strings.ToUpper(strings.TrimSpace(r.Type))
	if _, err := IsValidRoomType(r.Type, "type", true); err != nil {
		return err
	}
	if r.Problems == nil {
		r.Problems = datatypes.JSONSlice[string]{}
	}
	return nil
}
