package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"hotel-ops-backend/models"
	"hotel-ops-backend/services"
	"hotel-ops-backend/utils"
)

type MenuController struct {
	GroupSvc *services.MenuGroupService
	ItemSvc  *services.MenuItemService
}

func NewMenuController(groups *services.MenuGroupService, items *services.MenuItemService) *MenuController {
	return &MenuController{GroupSvc: groups, ItemSvc: items}
}

type menuGroupInput struct {
	Name        string `json:"name" binding:"required"`
	IsAvailable *bool  `json:"isAvailable"`
}

type menuGroupPatch struct {
	Name        *string `json:"name,omitempty"`
	IsAvailable *bool   `json:"isAvailable,omitempty"`
}

type menuItemInput struct {
	Name            string   `json:"name" binding:"required"`
	Price           *float64 `json:"price" binding:"required,gte=0"`
	GroupID         uint     `json:"groupId" binding:"required"`
	IsAccompaniment bool     `json:"isAccompaniment"`
	Accompaniments  []uint   `json:"accompaniments"`
	IsAvailable     *bool    `json:"isAvailable"`
}

type menuItemPatch struct {
	Name            *string  `json:"name,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	GroupID         *uint    `json:"groupId,omitempty"`
	IsAccompaniment *bool    `json:"isAccompaniment,omitempty"`
	Accompaniments  *[]uint  `json:"accompaniments,omitempty"`
	IsAvailable     *bool    `json:"isAvailable,omitempty"`
}

func availability(v *bool) bool {
	return v == nil || *v
}

// CreateGroup (POST /menu/group)
func (ctrl *MenuController) CreateGroup(c *gin.Context) {
	var in menuGroupInput
	if !bind(c, &in) {
		return
	}
	group := models.MenuGroup{Name: in.Name, IsAvailable: availability(in.IsAvailable)}
	if err := ctrl.GroupSvc.Create(c.Request.Context(), &group); err != nil {
		fail(c, err)
		return
	}
	created(c, group.ID, group)
}

// GetGroup (GET /menu/group/:id)
func (ctrl *MenuController) GetGroup(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	group, err := ctrl.GroupSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, group)
}

// GetGroups (GET /menu/group)
func (ctrl *MenuController) GetGroups(c *gin.Context) {
	groups, f, total, err := ctrl.GroupSvc.List(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		fail(c, err)
		return
	}
	listed(c, groups, len(groups), total, f)
}

// UpdateGroup (PATCH /menu/group/:id)
func (ctrl *MenuController) UpdateGroup(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	changes, ok := patchBody(c, &menuGroupPatch{})
	if !ok {
		return
	}
	group, modified, err := ctrl.GroupSvc.Update(c.Request.Context(), id, changes)
	if err != nil {
		fail(c, err)
		return
	}
	patched(c, id, group, modified)
}

// CreateItem (POST /menu/item)
func (ctrl *MenuController) CreateItem(c *gin.Context) {
	var in menuItemInput
	if !bind(c, &in) {
		return
	}
	item := models.MenuItem{
		Name:            in.Name,
		Price:           *in.Price,
		GroupID:         in.GroupID,
		IsAccompaniment: in.IsAccompaniment,
		Accompaniments:  datatypes.JSONSlice[uint](in.Accompaniments),
		IsAvailable:     availability(in.IsAvailable),
	}
	if err := ctrl.ItemSvc.Create(c.Request.Context(), &item); err != nil {
		fail(c, err)
		return
	}
	created(c, item.ID, item)
}

// GetItem (GET /menu/item/:id) also resolves the accompaniments.
func (ctrl *MenuController) GetItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	item, err := ctrl.ItemSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	accompaniments, err := ctrl.ItemSvc.Accompaniments(c.Request.Context(), item)
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, item, gin.H{"accompaniments": accompaniments})
}

// GetItems (GET /menu/item)
func (ctrl *MenuController) GetItems(c *gin.Context) {
	items, f, total, err := ctrl.ItemSvc.List(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		fail(c, err)
		return
	}
	listed(c, items, len(items), total, f)
}

// UpdateItem (PATCH /menu/item/:id)
func (ctrl *MenuController) UpdateItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	changes, ok := patchBody(c, &menuItemPatch{})
	if !ok {
		return
	}
	item, modified, err := ctrl.ItemSvc.Update(c.Request.Context(), id, changes)
	if err != nil {
		fail(c, err)
		return
	}
	patched(c, id, item, modified)
}
