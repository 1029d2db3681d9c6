package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotel-ops-backend/config"
	"hotel-ops-backend/controllers"
	"hotel-ops-backend/services"
)

// NewApp wires services and controllers on db and returns the router.
func NewApp(db *gorm.DB, s config.Settings) *gin.Engine {
	authService := services.NewAuthService(db, []byte(s.TokenKey), s.TokenTTL)
	roomService := services.NewRoomService(db, s.PageSize)
	guestService := services.NewGuestService(db, s.PageSize)
	groupService := services.NewMenuGroupService(db, s.PageSize)
	itemService := services.NewMenuItemService(db, s.PageSize)
	orderService := services.NewOrderService(db, s.PageSize)
	bookService := services.NewBookService(db, s.PageSize)

	ctl := Controllers{
		Auth:  controllers.NewAuthController(authService),
		Room:  controllers.NewRoomController(roomService),
		Guest: controllers.NewGuestController(guestService),
		Menu:  controllers.NewMenuController(groupService, itemService),
		Order: controllers.NewOrderController(orderService),
		Book:  controllers.NewBookController(bookService),
	}

	return SetupRouter(ctl, RouterOptions{
		CORSOrigins:           ParseCorsOrigins(s.CORSOrigins),
		Verifier:              authService,
		RegisterRequiresToken: s.RegisterRequiresToken,
	})
}
