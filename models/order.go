package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hotel-ops-backend/utils"
)

type Order struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	PostedAt    time.Time `gorm:"not null;index" json:"postedAt"`
	WaiterID    uint      `gorm:"not null;index" json:"waiterId"`
	CustomerID  *uint     `gorm:"index" json:"customerId"`
	Status      string    `gorm:"type:varchar(20);not null;index" json:"status"`
	TableNumber int       `gorm:"not null" json:"tableNumber"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// BeforeSave applies defaults and checks the waiter and customer references.
func (o *Order) BeforeSave(tx *gorm.DB) error {
	if o.PostedAt.IsZero() {
		o.PostedAt = time.Now()
	}
	if o.Status == "" {
		o.Status = OrderPending
	}
	if _, err := IsValidOrderStatus(o.Status, "status", true); err != nil {
		return err
	}
	if o.WaiterID == 0 {
		return utils.MissingData("waiterId")
	}
	if err := mustExist(tx, &Employee{}, o.WaiterID, "employee/waiter"); err != nil {
		return err
	}
	if o.CustomerID != nil {
		if err := mustExist(tx, &Guest{}, *o.CustomerID, "guest/customer"); err != nil {
			return err
		}
	}
	return nil
}

type OrderItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	OrderID         uint    `gorm:"not null;index" json:"orderId"`
	ItemID          uint    `gorm:"not null;index" json:"itemId"`
	AccompanimentID *uint   `json:"accompanimentId"`
	Status          string  `gorm:"type:varchar(20);not null" json:"status"`
	Price           float64 `gorm:"not null" json:"price"`
}

// BeforeSave checks the menu item reference and that the accompaniment is one the item
// allows.
func (i *OrderItem) BeforeSave(tx *gorm.DB) error {
	if i.Status == "" {
		i.Status = ItemPending
	}
	if _, err := IsValidOrderItemStatus(i.Status, "status", true); err != nil {
		return err
	}
	if i.ItemID == 0 {
		return utils.MissingData("itemId")
	}

	var item MenuItem
	err := lookup(tx).Select("id", "price", "accompaniments").Where("id = ?", i.ItemID).Take(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NotFound("menu item", fmt.Sprintf("id=%d", i.ItemID))
	}
	if err != nil {
		return err
	}
	if i.AccompanimentID != nil && !item.HasAccompaniment(*i.AccompanimentID) {
		return utils.InvalidData(
			fmt.Sprintf("accompanimentId: %d is not an accompaniment of item %d", *i.AccompanimentID, i.ItemID),
			fmt.Sprintf("the menu item with id=%d can not be served with accompaniment id=%d. pick one of %v.",
				i.ItemID, *i.AccompanimentID, []uint(item.Accompaniments)))
	}
	if i.ID == 0 {
		i.Price = item.Price
	}
	return nil
}
