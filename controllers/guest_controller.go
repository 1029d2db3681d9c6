package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-ops-backend/models"
	"hotel-ops-backend/services"
	"hotel-ops-backend/utils"
)

type GuestController struct {
	GuestSvc *services.GuestService
}

func NewGuestController(svc *services.GuestService) *GuestController {
	return &GuestController{GuestSvc: svc}
}

type guestInput struct {
	FirstName   string `json:"firstName" binding:"required"`
	MiddleName  string `json:"middleName"`
	LastName    string `json:"lastName" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	IDNumber    string `json:"idNumber" binding:"required"`
	Nationality string `json:"nationality" binding:"required"`
}

type guestPatch struct {
	FirstName   *string `json:"firstName,omitempty"`
	MiddleName  *string `json:"middleName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	IDNumber    *string `json:"idNumber,omitempty"`
	Nationality *string `json:"nationality,omitempty"`
}

// CreateGuest (POST /guest)
func (ctrl *GuestController) CreateGuest(c *gin.Context) {
	var in guestInput
	if !bind(c, &in) {
		return
	}
	guest := models.Guest{
		FirstName:   in.FirstName,
		MiddleName:  in.MiddleName,
		LastName:    in.LastName,
		PhoneNumber: in.PhoneNumber,
		IDNumber:    in.IDNumber,
		Nationality: in.Nationality,
	}
	if err := ctrl.GuestSvc.Create(c.Request.Context(), &guest); err != nil {
		fail(c, err)
		return
	}
	created(c, guest.ID, guest)
}

// GetGuest (GET /guest/:id) accepts the numeric id or the ID/passport number.
func (ctrl *GuestController) GetGuest(c *gin.Context) {
	guest, err := ctrl.GuestSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

// GetGuests (GET /guest)
func (ctrl *GuestController) GetGuests(c *gin.Context) {
	guests, f, total, err := ctrl.GuestSvc.List(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		fail(c, err)
		return
	}
	listed(c, guests, len(guests), total, f)
}

// UpdateGuest (PATCH /guest/:id)
func (ctrl *GuestController) UpdateGuest(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	changes, ok := patchBody(c, &guestPatch{})
	if !ok {
		return
	}
	guest, modified, err := ctrl.GuestSvc.Update(c.Request.Context(), id, changes)
	if err != nil {
		fail(c, err)
		return
	}
	patched(c, id, guest, modified)
}

// UpdateGuests (PATCH /guest) applies the body to every guest matched by the query string.
func (ctrl *GuestController) UpdateGuests(c *gin.Context) {
	changes, ok := patchBody(c, &guestPatch{})
	if !ok {
		return
	}
	f := services.GuestFilter(c.Request.URL.Query())
	summary, err := ctrl.GuestSvc.UpdateWhere(c.Request.Context(), f, changes)
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, summary, gin.H{"filter": f.Echo(), "update": changes})
}

// AdjustBalance (PATCH /guest/balance/:id/:amount) adds amount to the balance.
func (ctrl *GuestController) AdjustBalance(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if _, err := utils.IsNumber(c.Param("amount"), "amount", true); err != nil {
		fail(c, err)
		return
	}
	amount, _ := utils.ParseNumber(c.Param("amount"))
	guest, err := ctrl.GuestSvc.AdjustBalance(c.Request.Context(), id, amount)
	if err != nil {
		fail(c, err)
		return
	}
	patched(c, id, guest, amount != 0)
}
