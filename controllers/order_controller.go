package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-ops-backend/models"
	"hotel-ops-backend/services"
	"hotel-ops-backend/utils"
)

type OrderController struct {
	OrderSvc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{OrderSvc: svc}
}

type orderItemInput struct {
	ItemID          uint  `json:"itemId" binding:"required"`
	AccompanimentID *uint `json:"accompanimentId"`
}

type orderInput struct {
	WaiterID    *uint            `json:"waiterId"`
	CustomerID  *uint            `json:"customerId"`
	TableNumber *int             `json:"tableNumber"`
	Items       []orderItemInput `json:"items" binding:"dive"`
}

type orderItemsInput struct {
	Items []orderItemInput `json:"items" binding:"dive"`
}

type statusInput struct {
	Status string `json:"status" binding:"required"`
}

func toOrderItems(in []orderItemInput) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(in))
	for _, i := range in {
		items = append(items, models.OrderItem{ItemID: i.ItemID, AccompanimentID: i.AccompanimentID})
	}
	return items
}

// CreateOrder (POST /order). waiterId defaults to the caller.
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var in orderInput
	if !bind(c, &in) {
		return
	}
	order := models.Order{
		WaiterID:    userID(c),
		CustomerID:  in.CustomerID,
		TableNumber: -1,
		Items:       toOrderItems(in.Items),
	}
	if in.WaiterID != nil {
		order.WaiterID = *in.WaiterID
	}
	if in.TableNumber != nil {
		order.TableNumber = *in.TableNumber
	}
	if err := ctrl.OrderSvc.Create(c.Request.Context(), &order); err != nil {
		fail(c, err)
		return
	}
	created(c, order.ID, order)
}

// GetOrder (GET /order/:id)
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	order, err := ctrl.OrderSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, order)
}

// GetOrders (GET /order)
func (ctrl *OrderController) GetOrders(c *gin.Context) {
	orders, f, total, err := ctrl.OrderSvc.List(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		fail(c, err)
		return
	}
	listed(c, orders, len(orders), total, f)
}

// AddItems (PATCH /order/:id) appends items to the order.
func (ctrl *OrderController) AddItems(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in orderItemsInput
	if !bind(c, &in) {
		return
	}
	order, err := ctrl.OrderSvc.AddItems(c.Request.Context(), id, toOrderItems(in.Items))
	if err != nil {
		fail(c, err)
		return
	}
	patched(c, id, order, true)
}

// UpdateStatus (PATCH /order/:id/status)
func (ctrl *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in statusInput
	if !bind(c, &in) {
		return
	}
	order, modified, err := ctrl.OrderSvc.UpdateStatus(c.Request.Context(), id, in.Status)
	if err != nil {
		fail(c, err)
		return
	}
	patched(c, id, order, modified)
}

// UpdateItemStatus (PATCH /order/:id/item/:itemId/status)
func (ctrl *OrderController) UpdateItemStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	itemID, ok := paramID(c, "itemId")
	if !ok {
		return
	}
	var in statusInput
	if !bind(c, &in) {
		return
	}
	item, err := ctrl.OrderSvc.UpdateItemStatus(c.Request.Context(), id, itemID, in.Status)
	if err != nil {
		fail(c, err)
		return
	}
	patched(c, itemID, item, true)
}
