package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-delivery-app/controllers"
	"github.com/yeremiapane/food-delivery-app/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	// Middleware harus terdaftar sebelum route: gin membekukan handler
	// chain tiap route saat registrasi.
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(db)
	restaurantCtrl := controllers.NewRestaurantController(db)
	menuItemCtrl := controllers.NewMenuItemController(db)
	cartCtrl := controllers.NewCartController(db)
	orderCtrl := controllers.NewOrderController(db)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "food delivery api"})
	})
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      CUSTOMER ROUTES (login required)
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/profile", userCtrl.GetProfile)

		// Katalog (read-only untuk customer)
		auth.GET("/restaurants", restaurantCtrl.GetAllRestaurants)
		auth.GET("/restaurants/:restaurant_id", restaurantCtrl.GetRestaurantByID)
		auth.GET("/restaurants/:restaurant_id/menu-items", menuItemCtrl.GetMenuItems)
		auth.GET("/menu-items/:menu_item_id", menuItemCtrl.GetMenuItemByID)

		// Cart
		auth.POST("/cart/items/:menu_item_id", cartCtrl.AddToCart)
		auth.GET("/cart", cartCtrl.GetCart)
		auth.PATCH("/cart/items/:item_id", cartCtrl.UpdateCartItem)
		auth.DELETE("/cart/items/:item_id", cartCtrl.RemoveCartItem)

		// Checkout & riwayat order
		auth.POST("/checkout", orderCtrl.CheckoutCart)
		auth.GET("/orders", orderCtrl.GetOrderHistory)
		auth.GET("/orders/:order_id", orderCtrl.GetOrderByID)
		auth.GET("/order-history", orderCtrl.GetOrderHistory)
	}

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminOnly())
	{
		admin.POST("/restaurants", restaurantCtrl.CreateRestaurant)
		admin.GET("/restaurants", restaurantCtrl.GetAllRestaurants)
		admin.PATCH("/restaurants/:restaurant_id", restaurantCtrl.UpdateRestaurant)
		admin.DELETE("/restaurants/:restaurant_id", restaurantCtrl.DeleteRestaurant)

		admin.POST("/restaurants/:restaurant_id/menu-items", menuItemCtrl.CreateMenuItem)
		admin.PATCH("/menu-items/:menu_item_id", menuItemCtrl.UpdateMenuItem)
		admin.DELETE("/menu-items/:menu_item_id", menuItemCtrl.DeleteMenuItem)

		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)
	}

	return r
}
