package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-ops-backend/middleware"
	"hotel-ops-backend/services"
	"hotel-ops-backend/utils"
)

type AuthController struct {
	AuthSvc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{AuthSvc: svc}
}

type loginInput struct {
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

// Register (POST /auth/register)
func (ctrl *AuthController) Register(c *gin.Context) {
	var in services.RegisterInput
	if !bind(c, &in) {
		return
	}
	employee, token, err := ctrl.AuthSvc.Register(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, employee, gin.H{"insertedId": employee.ID, "accessToken": token})
}

// Login (POST /auth/login)
func (ctrl *AuthController) Login(c *gin.Context) {
	var in loginInput
	if !bind(c, &in) {
		return
	}
	employee, token, err := ctrl.AuthSvc.Login(c.Request.Context(), in.PhoneNumber, in.Password)
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, employee, gin.H{"accessToken": token})
}

// Me (GET /auth/me)
func (ctrl *AuthController) Me(c *gin.Context) {
	claims := middleware.CurrentUser(c)
	employee, err := ctrl.AuthSvc.Me(c.Request.Context(), claims.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, employee, gin.H{"token": claims})
}
