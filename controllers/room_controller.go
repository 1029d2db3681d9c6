package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"hotel-ops-backend/models"
	"hotel-ops-backend/services"
	"hotel-ops-backend/utils"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

type roomInput struct {
	Number       int      `json:"number" binding:"required,gt=0"`
	Floor        *int     `json:"floor" binding:"required"`
	Type         string   `json:"type" binding:"required"`
	IsOccupied   bool     `json:"isOccupied"`
	IsClean      bool     `json:"isClean"`
	IsOutOfOrder bool     `json:"isOutOfOrder"`
	Problems     []string `json:"problems"`
}

type roomPatch struct {
	Number *int    `json:"number,omitempty"`
	Floor  *int    `json:"floor,omitempty"`
	Type   *string `json:"type,omitempty"`
}

type roomStatusPatch struct {
	IsOccupied   *bool `json:"isOccupied,omitempty"`
	IsClean      *bool `json:"isClean,omitempty"`
	IsOutOfOrder *bool `json:"isOutOfOrder,omitempty"`
}

type roomIssuePatch struct {
	IsOutOfOrder *bool     `json:"isOutOfOrder,omitempty"`
	Problems     *[]string `json:"problems,omitempty"`
}

var roomStatusColumns = map[string]string{
	"isOccupied":   "is_occupied",
	"isClean":      "is_clean",
	"isOutOfOrder": "is_out_of_order",
}

// CreateRoom (POST /room)
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var in roomInput
	if !bind(c, &in) {
		return
	}
	room := models.Room{
		Number:       in.Number,
		Floor:        *in.Floor,
		Type:         in.Type,
		IsOccupied:   in.IsOccupied,
		IsClean:      in.IsClean,
		IsOutOfOrder: in.IsOutOfOrder,
		Problems:     datatypes.JSONSlice[string](in.Problems),
	}
	if err := ctrl.RoomSvc.Create(c.Request.Context(), &room); err != nil {
		fail(c, err)
		return
	}
	created(c, room.ID, room)
}

// GetRoom (GET /room/:id)
func (ctrl *RoomController) GetRoom(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	room, err := ctrl.RoomSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// GetRooms (GET /room)
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, f, total, err := ctrl.RoomSvc.List(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		fail(c, err)
		return
	}
	listed(c, rooms, len(rooms), total, f)
}

func (ctrl *RoomController) patch(c *gin.Context, body interface{}) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	changes, ok := patchBody(c, body)
	if !ok {
		return
	}
	room, modified, err := ctrl.RoomSvc.Update(c.Request.Context(), id, changes)
	if err != nil {
		fail(c, err)
		return
	}
	patched(c, id, room, modified)
}

// UpdateRoom (PATCH /room/:id) changes number, floor or type.
func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	ctrl.patch(c, &roomPatch{})
}

// UpdateRoomStatus (PATCH /room/status/:id)
func (ctrl *RoomController) UpdateRoomStatus(c *gin.Context) {
	ctrl.patch(c, &roomStatusPatch{})
}

// ReportIssue (PATCH /room/issue/:id) sets the out-of-order flag and problem list.
func (ctrl *RoomController) ReportIssue(c *gin.Context) {
	ctrl.patch(c, &roomIssuePatch{})
}

// UpdateRoomsStatus (PATCH /room/status) applies the status body to every room matched
// by the query string.
func (ctrl *RoomController) UpdateRoomsStatus(c *gin.Context) {
	changes, ok := patchBody(c, &roomStatusPatch{})
	if !ok {
		return
	}
	columns := map[string]any{}
	for field, v := range changes {
		columns[roomStatusColumns[field]] = v
	}
	f := services.RoomFilter(c.Request.URL.Query())
	summary, err := ctrl.RoomSvc.UpdateStatusWhere(c.Request.Context(), f, columns)
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, summary, gin.H{"filter": f.Echo(), "update": changes})
}
