package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-ops-backend/controllers"
	"hotel-ops-backend/middleware"
	"hotel-ops-backend/models"
)

// Controllers groups every resource controller the router serves.
type Controllers struct {
	Auth  *controllers.AuthController
	Room  *controllers.RoomController
	Guest *controllers.GuestController
	Menu  *controllers.MenuController
	Order *controllers.OrderController
	Book  *controllers.BookController
}

// RouterOptions configures SetupRouter.
type RouterOptions struct {
	CORSOrigins []string
	Verifier    middleware.TokenVerifier
	// RegisterRequiresToken restricts /auth/register to signed-in admins and managers.
	RegisterRequiresToken bool
}

// ParseCorsOrigins splits a comma separated CORS_ORIGINS value.
func ParseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(ctl Controllers, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(), middleware.ErrorHandler())

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "x-access-token"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	protected := middleware.VerifyToken(opts.Verifier)

	auth := r.Group("/auth")
	{
		if opts.RegisterRequiresToken {
			auth.POST("/register", protected,
				middleware.RequireRole(models.RoleAdmin, models.RoleGeneralManager, models.RoleManager),
				ctl.Auth.Register)
		} else {
			auth.POST("/register", ctl.Auth.Register)
		}
		auth.POST("/login", ctl.Auth.Login)
		auth.GET("/me", protected, ctl.Auth.Me)
	}

	rooms := r.Group("/room", protected)
	{
		rooms.POST("", ctl.Room.CreateRoom)
		rooms.GET("", ctl.Room.GetRooms)
		rooms.GET("/:id", ctl.Room.GetRoom)
		rooms.PATCH("/status", ctl.Room.UpdateRoomsStatus)
		rooms.PATCH("/status/:id", ctl.Room.UpdateRoomStatus)
		rooms.PATCH("/issue/:id", ctl.Room.ReportIssue)
		rooms.PATCH("/:id", ctl.Room.UpdateRoom)
	}

	guests := r.Group("/guest", protected)
	{
		guests.POST("", ctl.Guest.CreateGuest)
		guests.GET("", ctl.Guest.GetGuests)
		guests.GET("/:id", ctl.Guest.GetGuest)
		guests.PATCH("", ctl.Guest.UpdateGuests)
		guests.PATCH("/balance/:id/:amount", ctl.Guest.AdjustBalance)
		guests.PATCH("/:id", ctl.Guest.UpdateGuest)
	}

	menu := r.Group("/menu", protected)
	{
		groups := menu.Group("/group")
		groups.POST("", ctl.Menu.CreateGroup)
		groups.GET("", ctl.Menu.GetGroups)
		groups.GET("/:id", ctl.Menu.GetGroup)
		groups.PATCH("/:id", ctl.Menu.UpdateGroup)

		items := menu.Group("/item")
		items.POST("", ctl.Menu.CreateItem)
		items.GET("", ctl.Menu.GetItems)
		items.GET("/:id", ctl.Menu.GetItem)
		items.PATCH("/:id", ctl.Menu.UpdateItem)
	}

	orders := r.Group("/order", protected)
	{
		orders.POST("", ctl.Order.CreateOrder)
		orders.GET("", ctl.Order.GetOrders)
		orders.GET("/:id", ctl.Order.GetOrder)
		orders.PATCH("/:id", ctl.Order.AddItems)
		orders.PATCH("/:id/status", ctl.Order.UpdateStatus)
		orders.PATCH("/:id/item/:itemId/status", ctl.Order.UpdateItemStatus)
	}

	books := r.Group("/book", protected)
	{
		books.POST("", ctl.Book.CreateBook)
		books.GET("", ctl.Book.GetBooks)
		books.GET("/:id", ctl.Book.GetBook)
		books.PATCH("/:id", ctl.Book.UpdateBook)
	}

	r.NoRoute(middleware.NoRoute(r))

	return r
}
