package models

import (
	"time"

	"gorm.io/gorm"
)

type MenuGroup struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	IsAvailable bool   `gorm:"not null" json:"isAvailable"`
}

func (g *MenuGroup) BeforeSave(tx *gorm.DB) error {
	g.Name = normalizeName(g.Name)
	return requireText(g.Name, "name")
}
