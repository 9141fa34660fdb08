package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tanakrit-dev/restaurant-order-api/controllers"
	"github.com/tanakrit-dev/restaurant-order-api/middlewares"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, bcryptCost int) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(db, bcryptCost)
	menuCtrl := controllers.NewMenuController(db)
	orderCtrl := controllers.NewOrderController(db)
	paymentCtrl := controllers.NewPaymentController(db)
	restaurantCtrl := controllers.NewRestaurantController(db)
	shippingCtrl := controllers.NewShippingController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	// Credential endpoints are public but throttled.
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/login", userCtrl.Login)
		public.POST("/api/users", userCtrl.Register)
	}

	r.POST("/logout", middlewares.AuthMiddleware(), userCtrl.Logout)

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/profile", userCtrl.GetProfile)

		api.GET("/users", userCtrl.GetAllUsers)
		api.GET("/users/:id", userCtrl.GetUserByID)
		api.PUT("/users/:id", userCtrl.UpdateUser)
		api.DELETE("/users/:id", userCtrl.DeleteUser)

		api.GET("/menus", menuCtrl.GetAllMenus)
		api.POST("/menus", menuCtrl.CreateMenu)
		api.GET("/menus/:id", menuCtrl.GetMenuByID)
		api.PUT("/menus/:id", menuCtrl.UpdateMenu)
		api.DELETE("/menus/:id", menuCtrl.DeleteMenu)

		api.GET("/orders", orderCtrl.GetAllOrders)
		api.GET("/orders/summary", orderCtrl.GetOrderSummary)
		api.POST("/orders", orderCtrl.CreateOrder)
		api.GET("/orders/:id", orderCtrl.GetOrderByID)
		api.PUT("/orders/:id", orderCtrl.UpdateOrder)
		api.DELETE("/orders/:id", orderCtrl.DeleteOrder)

		api.GET("/payments", paymentCtrl.GetAllPayments)
		api.POST("/payments", paymentCtrl.CreatePayment)
		api.GET("/payments/:id", paymentCtrl.GetPaymentByID)
		api.PUT("/payments/:id", paymentCtrl.UpdatePayment)
		api.DELETE("/payments/:id", paymentCtrl.DeletePayment)

		api.GET("/restaurants", restaurantCtrl.GetAllRestaurants)
		api.POST("/restaurants", restaurantCtrl.CreateRestaurant)
		api.GET("/restaurants/:id", restaurantCtrl.GetRestaurantByID)
		api.PUT("/restaurants/:id", restaurantCtrl.UpdateRestaurant)
		api.DELETE("/restaurants/:id", restaurantCtrl.DeleteRestaurant)

		api.GET("/shippings", shippingCtrl.GetAllShippings)
		api.POST("/shippings", shippingCtrl.CreateShipping)
		api.GET("/shippings/:id", shippingCtrl.GetShippingByID)
		api.PUT("/shippings/:id", shippingCtrl.UpdateShipping)
		api.DELETE("/shippings/:id", shippingCtrl.DeleteShipping)
	}

	return r
}
