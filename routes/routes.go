package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-backoffice/controllers"
	"hotel-backoffice/middleware"
	"hotel-backoffice/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
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

func SetupRouter(
	auth *services.AuthService,
	ac *controllers.AuthController,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	vc *controllers.InvoiceController,
	ivc *controllers.InventoryController,
	ckc *controllers.InventoryCheckController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	api.POST("/auth/login", ac.Login)

	protected := api.Group("")
	protected.Use(middleware.RequireAuth(auth))
	{
		rooms := protected.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.POST("", rc.CreateRoom)
			rooms.GET("/:id", rc.GetRoom)
			rooms.PATCH("/:id", rc.UpdateRoom)
			rooms.PUT("/:id", rc.UpdateRoom)
			rooms.DELETE("/:id", rc.DeleteRoom)
			rooms.PATCH("/:id/status", rc.UpdateRoomStatus)
			rooms.GET("/:id/status-logs", rc.GetRoomStatusLogs)
			rooms.POST("/:id/check-in", rc.CheckInRoom)
			rooms.POST("/:id/walk-in", rc.WalkInCheckIn)
			rooms.POST("/:id/check-out", rc.CheckOutRoom)
		}

		roomTypes := protected.Group("/room-types")
		{
			roomTypes.GET("", controllers.GetRoomTypes)
			roomTypes.POST("", controllers.CreateRoomType)
			roomTypes.DELETE("/:id", controllers.DeleteRoomType)
		}

		bookings := protected.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)

			// ต้องอยู่ก่อน /:id
			bookings.GET("/search", bc.SearchBookings)

			bookings.GET("/:id", bc.GetBooking)
			bookings.PATCH("/:id", bc.UpdateBooking)
			bookings.DELETE("/:id", bc.DeleteBooking)
		}

		invoices := protected.Group("/invoices")
		{
			invoices.GET("", vc.GetInvoices)
			invoices.POST("", vc.CreateInvoice)
			invoices.GET("/:id", vc.GetInvoice)
			invoices.PATCH("/:id", vc.UpdateInvoice)
			invoices.DELETE("/:id", vc.DeleteInvoice)
			invoices.POST("/:id/items", vc.AddInvoiceItems)
			invoices.POST("/:id/checkout", vc.CheckoutInvoice)
			invoices.POST("/:id/cancel", vc.CancelInvoice)
		}

		inventory := protected.Group("/inventory")
		{
			items := inventory.Group("/items")
			{
				items.GET("", ivc.GetItems)
				items.POST("", ivc.CreateItem)
				items.GET("/:id", ivc.GetItem)
				items.PATCH("/:id", ivc.UpdateItem)
				items.DELETE("/:id", ivc.DeleteItem)
			}

			checks := inventory.Group("/checks")
			{
				checks.GET("", ckc.GetChecks)
				checks.POST("", ckc.CreateCheck)
				checks.GET("/:id", ckc.GetCheck)
				checks.PATCH("/:id", ckc.UpdateCheck)
				checks.DELETE("/:id", ckc.DeleteCheck)
				checks.POST("/:id/balance", ckc.BalanceCheck)
			}
		}
	}

	return r
}
