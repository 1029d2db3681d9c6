package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"

	"gorm.io/gorm"

	"hotel-ops-backend/models"
	"hotel-ops-backend/utils"
)

type OrderService struct {
	DB       *gorm.DB
	Orders   *Repository[models.Order]
	PageSize int
}

func NewOrderService(db *gorm.DB, pageSize int) *OrderService {
	return &OrderService{DB: db, Orders: NewRepository[models.Order](db, "order"), PageSize: pageSize}
}

// Create inserts the order with its items in one transaction. Item prices are copied from
// the menu.
func (s *OrderService) Create(ctx context.Context, order *models.Order) error {
	if len(order.Items) == 0 {
		return utils.MissingData("items")
	}
	if err := s.Orders.InsertOne(ctx, order); err != nil {
		log.Printf("❌ OrderService.Create: %v", err)
		return err
	}
	log.Printf("✅ order %d posted by waiter %d with %d items", order.ID, order.WaiterID, len(order.Items))
	return nil
}

func (s *OrderService) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	return s.Orders.GetOneByID(ctx, id, "Items")
}

func (s *OrderService) List(ctx context.Context, q url.Values) ([]models.Order, *Filter, int64, error) {
	f := OrderFilter(q)
	orders, total, err := s.Orders.List(ctx, NewListQuery(q, f, OrderSortFields, s.PageSize), "Items")
	return orders, f, total, err
}

// AddItems appends items to an existing order.
func (s *OrderService) AddItems(ctx context.Context, id uint, items []models.OrderItem) (*models.Order, error) {
	if len(items) == 0 {
		return nil, utils.MissingData("items")
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Order{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return utils.NotFound("order", fmt.Sprintf("id=%d", id))
		}
		for i := range items {
			items[i].ID = 0
			items[i].OrderID = id
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *OrderService) UpdateStatus(ctx context.Context, id uint, status string) (*models.Order, bool, error) {
	if _, err := models.IsValidOrderStatus(status, "status", true); err != nil {
		return nil, false, err
	}
	order, modified, err := s.Orders.Patch(ctx, id, map[string]any{"status": status})
	if err != nil {
		return nil, false, err
	}
	order, err = s.GetByID(ctx, order.ID)
	return order, modified, err
}

// UpdateItemStatus changes the status of one line of an order.
func (s *OrderService) UpdateItemStatus(ctx context.Context, orderID, itemID uint, status string) (*models.OrderItem, error) {
	if _, err := models.IsValidOrderItemStatus(status, "status", true); err != nil {
		return nil, err
	}
	db := s.DB.WithContext(ctx)
	var item models.OrderItem
	err := db.Where("id = ? AND order_id = ?", itemID, orderID).Take(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFound("order item", fmt.Sprintf("id=%d in order %d", itemID, orderID))
	}
	if err != nil {
		return nil, err
	}
	item.Status = status
	if err := db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
